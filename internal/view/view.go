// Package view renders the dashboard and registration pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Egor213/LogiBoard/internal/domain"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/labstack/echo/v4"
)

const (
	DashboardPage = "dashboard.html"
	RegisterPage  = "register.html"
)

const (
	TabLogs    = "logs"
	TabMetrics = "metrics"
	TabAlerts  = "alerts"
)

//go:embed templates/*.html
var templatesFS embed.FS

type DashboardData struct {
	View       domain.DashboardView
	Levels     []domain.LogLevel
	Tab        string
	Registered bool
	Notice     string
	// RefreshSeconds drives the page auto refresh. Zero disables it.
	RefreshSeconds int
}

type RegisterData struct {
	Form   domain.LogRegistration
	Levels []domain.LogLevel
	Errors map[string]string
	Notice string
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"levelStyle":    LevelStyle,
		"severityStyle": SeverityStyle,
		"pie":           PieGradient,
		"barWidth":      BarWidth,
		"maxCount":      maxServiceCount,
		"levelTotal":    levelTotal,
		"share": func(count, total int) string {
			return fmt.Sprintf("%.1f%%", Share(count, total))
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
	}
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{DashboardPage, RegisterPage} {
		t, err := template.New(page).Funcs(funcs()).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		r.pages[page] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return errorsUtils.WrapPathErr(fmt.Errorf("unknown page %q", name))
	}
	return t.ExecuteTemplate(w, name, data)
}
