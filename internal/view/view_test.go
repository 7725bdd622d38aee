package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelStyle(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range domain.LogLevels {
		s := LevelStyle(l.String())
		assert.NotEqual(t, "level-unknown", s.Class, l)
		assert.NotEmpty(t, s.Icon)
		assert.NotEmpty(t, s.Label)
		assert.False(t, seen[s.Class], "duplicate class %s", s.Class)
		seen[s.Class] = true
	}

	unknown := LevelStyle("TRACE")
	assert.Equal(t, "level-unknown", unknown.Class)
	assert.Equal(t, "TRACE", unknown.Label)
	assert.Equal(t, fallbackColor, unknown.Color)

	assert.Equal(t, "Unknown", LevelStyle("").Label)
	assert.Equal(t, "level-unknown", LevelStyle("error").Class)
}

func TestSeverityStyle(t *testing.T) {
	seen := make(map[string]bool)
	for _, sev := range domain.Severities {
		s := SeverityStyle(sev)
		assert.NotEqual(t, "severity-unknown", s.Class, sev)
		assert.False(t, seen[s.Class])
		seen[s.Class] = true
	}
	assert.Equal(t, "severity-unknown", SeverityStyle("extreme").Class)
}

func TestPieGradient(t *testing.T) {
	assert.Equal(t, "background: conic-gradient(#e0e0e0 0% 100%)", string(PieGradient(nil)))

	got := string(PieGradient([]domain.LevelCount{
		{Level: "ERROR", Count: 1},
		{Level: "INFO", Count: 3},
	}))
	assert.Equal(t, "background: conic-gradient(#f44336 0.00% 25.00%, #2196f3 25.00% 100.00%)", got)
}

func TestShareAndBarWidth(t *testing.T) {
	assert.Equal(t, 0.0, Share(5, 0))
	assert.Equal(t, 50.0, Share(5, 10))
	assert.Equal(t, "width: 50.0%", string(BarWidth(5, 10)))
}

func TestRenderer_Dashboard(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	data := DashboardData{
		View: domain.DashboardView{
			Filter:   domain.Filter{Service: "auth"},
			Services: []string{"api", "auth"},
			Logs: []domain.LogEntry{
				{Service: "auth", Level: "ERROR", Count: 5, Timestamp: "2024-01-01T10:00:00"},
			},
			Summary:     domain.Summary{TotalLogs: 5, ErrorLogs: 5},
			ByLevel:     []domain.LevelCount{{Level: "ERROR", Count: 5}},
			TopServices: []domain.ServiceCount{{Service: "auth", Count: 5}},
			Errors:      map[string]string{"recentLogs": "log service unavailable <503>"},
		},
		Levels:         domain.LogLevels,
		Tab:            TabLogs,
		Registered:     true,
		RefreshSeconds: 5,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, DashboardPage, data, nil))
	body := buf.String()

	assert.Contains(t, body, `<option value="auth" selected>auth</option>`)
	assert.Contains(t, body, "Log registered.")
	assert.Contains(t, body, `content="5"`)
	assert.Contains(t, body, "conic-gradient(#f44336 0.00% 100.00%)")
	assert.Contains(t, body, "log service unavailable &lt;503&gt;")
	assert.Contains(t, body, "2024-01-01T10:00:00")
}

func TestRenderer_DashboardTabs(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	v := domain.DashboardView{
		Metrics: []domain.MetricGroup{{
			Service: "auth",
			Total:   3,
			Rows:    []domain.MetricData{{Service: "auth", Level: "ERROR", Count: 3}},
		}},
		ActiveAlerts: []domain.AlertView{{
			AlertData: domain.AlertData{Service: "auth", Level: "ERROR", Count: 250, Threshold: 100, Active: true},
			Severity:  domain.SeverityCritical,
			Overshoot: 150,
		}},
		LogsLoading: true,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, DashboardPage, DashboardData{View: v, Tab: TabMetrics}, nil))
	assert.Contains(t, buf.String(), "3 total")

	buf.Reset()
	require.NoError(t, r.Render(&buf, DashboardPage, DashboardData{View: v, Tab: TabAlerts}, nil))
	assert.Contains(t, buf.String(), "150.0%")
	assert.Contains(t, buf.String(), "severity-critical")
	assert.Contains(t, buf.String(), "Nothing resolved recently.")

	buf.Reset()
	require.NoError(t, r.Render(&buf, DashboardPage, DashboardData{View: v, Tab: TabLogs}, nil))
	assert.Contains(t, buf.String(), `class="skeleton"`)
	assert.NotContains(t, buf.String(), "http-equiv")
}

func TestRenderer_Register(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	data := RegisterData{
		Form:   domain.LogRegistration{Service: "", Level: "ERROR", Message: "keep <me>"},
		Levels: domain.LogLevels,
		Errors: map[string]string{"service": "is required"},
		Notice: "",
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, RegisterPage, data, nil))
	body := buf.String()

	assert.Contains(t, body, "Service is required")
	assert.Contains(t, body, "keep &lt;me&gt;")
	assert.Contains(t, body, `<option value="ERROR" selected>ERROR</option>`)
	assert.Equal(t, 1, strings.Count(body, " selected"))
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing.html", nil, nil))
}
