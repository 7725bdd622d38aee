package domain

type LogLevel string

const (
	LevelDebug    LogLevel = "DEBUG"
	LevelInfo     LogLevel = "INFO"
	LevelWarning  LogLevel = "WARNING"
	LevelError    LogLevel = "ERROR"
	LevelCritical LogLevel = "CRITICAL"
)

// LogLevels is the canonical display order of the known levels.
var LogLevels = []LogLevel{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}

func ParseLogLevel(s string) (LogLevel, bool) {
	for _, l := range LogLevels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func (l LogLevel) String() string {
	return string(l)
}

// LogEntry is an aggregated count of log lines for one service, level and
// minute bucket as reported by the log service.
type LogEntry struct {
	Service   string `json:"service"`
	Level     string `json:"level"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

type LogRegistration struct {
	Service   string `json:"service" validate:"required"`
	Level     string `json:"level" validate:"required,loglevel"`
	Message   string `json:"message" validate:"required"`
	Timestamp string `json:"timestamp"`
}

type Filter struct {
	Service string `json:"service"`
	Level   string `json:"level" validate:"omitempty,loglevel"`
}

func (f Filter) IsEmpty() bool {
	return f.Service == "" && f.Level == ""
}
