package httpv1

import (
	"net/http"

	logginghelper "github.com/Egor213/LogiBoard/internal/controller/common/logging"
	"github.com/Egor213/LogiBoard/internal/controller/http/validators"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/service"
	"github.com/Egor213/LogiBoard/internal/view"
	"github.com/labstack/echo/v4"
)

type LogController struct {
	logService service.Log
}

func NewLogController(ls service.Log) *LogController {
	return &LogController{
		logService: ls,
	}
}

func (lc *LogController) Form(c echo.Context) error {
	return c.Render(http.StatusOK, view.RegisterPage, view.RegisterData{
		Form:   domain.LogRegistration{Level: domain.LevelInfo.String()},
		Levels: domain.LogLevels,
	})
}

func (lc *LogController) Submit(c echo.Context) error {
	reg := domain.LogRegistration{
		Service:   c.FormValue("service"),
		Level:     c.FormValue("level"),
		Message:   c.FormValue("message"),
		Timestamp: c.FormValue("timestamp"),
	}
	data := view.RegisterData{Levels: domain.LogLevels}

	if err := validators.ValidateRegistration(&reg); err != nil {
		logginghelper.LogInvalid(&reg, err)
		data.Form = reg
		data.Errors = fieldErrors(err)
		return c.Render(http.StatusUnprocessableEntity, view.RegisterPage, data)
	}

	logginghelper.LogReceived(&reg, requestID(c))

	entry, err := lc.logService.RegisterLog(c.Request().Context(), reg)
	if err != nil {
		logginghelper.LogError(&reg, err)
		data.Form = reg
		data.Notice = "Failed to register log, please try again"
		return c.Render(http.StatusBadGateway, view.RegisterPage, data)
	}

	logginghelper.LogRegistered(entry, requestID(c))
	return c.Redirect(http.StatusSeeOther, "/?registered=1")
}

func (lc *LogController) Create(c echo.Context) error {
	var reg domain.LogRegistration
	if err := c.Bind(&reg); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid body"})
	}
	if err := validators.ValidateRegistration(&reg); err != nil {
		logginghelper.LogInvalid(&reg, err)
		return validationResponse(c, err)
	}

	logginghelper.LogReceived(&reg, requestID(c))

	entry, err := lc.logService.RegisterLog(c.Request().Context(), reg)
	if err != nil {
		logginghelper.LogError(&reg, err)
		return c.JSON(http.StatusBadGateway, errorResponse{Message: "log service rejected the registration"})
	}

	logginghelper.LogRegistered(entry, requestID(c))
	return c.JSON(http.StatusCreated, entry)
}
