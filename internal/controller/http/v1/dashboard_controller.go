package httpv1

import (
	"net/http"

	"github.com/Egor213/LogiBoard/internal/controller/http/validators"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/service"
	"github.com/Egor213/LogiBoard/internal/view"
	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	dashboard      service.Dashboard
	refreshSeconds int
}

func NewDashboardController(ds service.Dashboard, refreshSeconds int) *DashboardController {
	return &DashboardController{
		dashboard:      ds,
		refreshSeconds: refreshSeconds,
	}
}

func pageTab(c echo.Context) string {
	switch tab := c.QueryParam("tab"); tab {
	case view.TabMetrics, view.TabAlerts:
		return tab
	default:
		return view.TabLogs
	}
}

// Page renders the dashboard for the client's filter. Passing service or
// level in the query selects a new filter; omitting both keeps the last one.
func (dc *DashboardController) Page(c echo.Context) error {
	data := view.DashboardData{
		Levels:         domain.LogLevels,
		Tab:            pageTab(c),
		Registered:     c.QueryParam("registered") == "1",
		RefreshSeconds: dc.refreshSeconds,
	}

	f, err := requestFilter(c)
	if err != nil {
		data.Notice = err.Error()
		f = cookieFilter(c)
	}

	v, err := dc.dashboard.View(f)
	if err != nil {
		data.Notice = err.Error()
		v = domain.DashboardView{Filter: f}
	}
	data.View = v
	return c.Render(http.StatusOK, view.DashboardPage, data)
}

func (dc *DashboardController) GetDashboard(c echo.Context) error {
	f, err := requestFilter(c)
	if err != nil {
		return validationResponse(c, err)
	}
	v, err := dc.dashboard.View(f)
	if err != nil {
		return validationResponse(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (dc *DashboardController) GetFilter(c echo.Context) error {
	return c.JSON(http.StatusOK, cookieFilter(c))
}

func (dc *DashboardController) PutFilter(c echo.Context) error {
	var f domain.Filter
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid body"})
	}
	if err := validators.ValidateFilter(&f); err != nil {
		return validationResponse(c, err)
	}
	rememberFilter(c, f)
	return c.JSON(http.StatusOK, f)
}

type servicesResponse struct {
	Services []string `json:"services"`
	Loading  bool     `json:"loading"`
	Error    string   `json:"error,omitempty"`
}

func (dc *DashboardController) GetServices(c echo.Context) error {
	v, err := dc.dashboard.View(domain.Filter{})
	if err != nil {
		return validationResponse(c, err)
	}
	return c.JSON(http.StatusOK, servicesResponse{
		Services: v.Services,
		Loading:  v.ServicesLoading,
		Error:    v.Errors[service.ResourceServices],
	})
}
