package domain

// DashboardView is everything a renderer needs for one dashboard frame.
// Resources that have not resolved yet contribute empty collections and set
// their Loading flag.
type DashboardView struct {
	Filter   Filter   `json:"filter"`
	Services []string `json:"services"`

	Logs        []LogEntry     `json:"logs"`
	Summary     Summary        `json:"summary"`
	ByLevel     []LevelCount   `json:"byLevel"`
	TopServices []ServiceCount `json:"topServices"`

	Metrics []MetricGroup `json:"metrics"`

	ActiveAlerts   []AlertView `json:"activeAlerts"`
	ResolvedAlerts []AlertView `json:"resolvedAlerts"`

	LogsLoading     bool `json:"logsLoading"`
	ServicesLoading bool `json:"servicesLoading"`
	MetricsLoading  bool `json:"metricsLoading"`
	AlertsLoading   bool `json:"alertsLoading"`

	// Errors maps a resource name to the last fetch error message.
	Errors map[string]string `json:"errors,omitempty"`
}
