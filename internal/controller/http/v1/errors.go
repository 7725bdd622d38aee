package httpv1

import (
	"errors"
	"net/http"

	"github.com/Egor213/LogiBoard/internal/controller/http/validators"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// validationResponse writes a 400 carrying the per-field problems of err.
func validationResponse(c echo.Context, err error) error {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "validation failed",
			Fields:  verr.Fields,
		})
	}
	return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
}

func fieldErrors(err error) map[string]string {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return map[string]string{}
}
