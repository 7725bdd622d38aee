package domain

type MetricData struct {
	Service   string `json:"service"`
	Level     string `json:"level"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

// ServiceMetrics holds the per-level totals of one service.
type ServiceMetrics struct {
	Service string         `json:"service"`
	Metrics map[string]int `json:"metrics"`
}

// LevelMetrics holds the per-service totals of one level.
type LevelMetrics struct {
	Level   string         `json:"level"`
	Metrics map[string]int `json:"metrics"`
}

type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

type MetricGroup struct {
	Service string       `json:"service"`
	Total   int          `json:"total"`
	Rows    []MetricData `json:"rows"`
}

type Summary struct {
	TotalLogs   int `json:"totalLogs"`
	ErrorLogs   int `json:"errorLogs"`
	WarningLogs int `json:"warningLogs"`
	InfoLogs    int `json:"infoLogs"`
	DebugLogs   int `json:"debugLogs"`
}
