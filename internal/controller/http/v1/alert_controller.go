package httpv1

import (
	"net/http"
	"strconv"

	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
	"github.com/Egor213/LogiBoard/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type AlertController struct {
	dashboard    service.Dashboard
	alertService service.Alert
}

func NewAlertController(ds service.Dashboard, as service.Alert) *AlertController {
	return &AlertController{
		dashboard:    ds,
		alertService: as,
	}
}

type alertsResponse struct {
	Active   []domain.AlertView `json:"active"`
	Resolved []domain.AlertView `json:"resolved"`
	Loading  bool               `json:"loading"`
	Error    string             `json:"error,omitempty"`
}

func (ac *AlertController) GetAlerts(c echo.Context) error {
	f, err := requestFilter(c)
	if err != nil {
		return validationResponse(c, err)
	}
	v, err := ac.dashboard.View(f)
	if err != nil {
		return validationResponse(c, err)
	}
	return c.JSON(http.StatusOK, alertsResponse{
		Active:   v.ActiveAlerts,
		Resolved: v.ResolvedAlerts,
		Loading:  v.AlertsLoading,
		Error:    v.Errors[service.ResourceAlerts],
	})
}

func (ac *AlertController) GetHistory(c echo.Context) error {
	filter := repotypes.AlertEventFilter{
		Service: c.QueryParam("service"),
		Level:   c.QueryParam("level"),
		State:   c.QueryParam("state"),
	}

	switch domain.AlertState(filter.State) {
	case "", domain.AlertActivated, domain.AlertResolved:
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "validation failed",
			Fields:  map[string]string{"state": "must be activated or resolved"},
		})
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Message: "validation failed",
				Fields:  map[string]string{"limit": "must be a positive integer"},
			})
		}
		filter.Limit = limit
	}

	events, err := ac.alertService.GetAlertHistory(c.Request().Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to read alert history")
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "cannot read alert history"})
	}
	if events == nil {
		events = []domain.AlertEvent{}
	}
	return c.JSON(http.StatusOK, events)
}
