package httpv1

import (
	"time"

	"github.com/Egor213/LogiBoard/internal/service"
	"github.com/Egor213/LogiBoard/internal/view"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Registerer     prometheus.Registerer
	RefreshSeconds int
}

func ConfigureRouter(handler *echo.Echo, services *service.Services, cfg RouterConfig) error {
	renderer, err := view.New()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	handler.Renderer = renderer
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}

	handler.Use(middleware.Recover())
	handler.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	handler.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "logiboard",
		Registerer: cfg.Registerer,
	}))
	handler.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.Round(time.Microsecond).String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("Request failed")
				return nil
			}
			entry.Debug("Request handled")
			return nil
		},
	}))

	dc := NewDashboardController(services.Dashboard, cfg.RefreshSeconds)
	lc := NewLogController(services.Log)
	ac := NewAlertController(services.Dashboard, services.Alert)

	handler.GET("/", dc.Page)
	handler.GET("/register", lc.Form)
	handler.POST("/register", lc.Submit)

	api := handler.Group("/api/v1")
	api.GET("/dashboard", dc.GetDashboard)
	api.GET("/filter", dc.GetFilter)
	api.PUT("/filter", dc.PutFilter)
	api.GET("/services", dc.GetServices)
	api.GET("/alerts", ac.GetAlerts)
	api.GET("/alerts/history", ac.GetHistory)
	api.POST("/logs", lc.Create)

	return nil
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
