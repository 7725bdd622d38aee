package domain

import "time"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

type AlertData struct {
	ID        string `json:"id"`
	Service   string `json:"service"`
	Level     string `json:"level"`
	Count     int    `json:"count"`
	Threshold int    `json:"threshold"`
	Timestamp string `json:"timestamp"`
	Active    bool   `json:"active"`
}

// Key identifies an alert across polls. The log service does not always send
// an id, so the service/level/timestamp tuple is used as a fallback.
func (a AlertData) Key() string {
	if a.ID != "" {
		return a.ID
	}
	return a.Service + "|" + a.Level + "|" + a.Timestamp
}

type AlertView struct {
	AlertData
	Severity  Severity `json:"severity"`
	Overshoot float64  `json:"overshoot"`
}

type AlertState string

const (
	AlertActivated AlertState = "activated"
	AlertResolved  AlertState = "resolved"
)

type AlertEvent struct {
	ID         string     `db:"id" json:"id"`
	AlertKey   string     `db:"alert_key" json:"alertKey"`
	Service    string     `db:"service" json:"service"`
	Level      string     `db:"level" json:"level"`
	Count      int        `db:"count" json:"count"`
	Threshold  int        `db:"threshold" json:"threshold"`
	Severity   Severity   `db:"severity" json:"severity"`
	State      AlertState `db:"state" json:"state"`
	ObservedAt time.Time  `db:"observed_at" json:"observedAt"`
}
