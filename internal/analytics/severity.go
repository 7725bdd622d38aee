package analytics

import "github.com/Egor213/LogiBoard/internal/domain"

const (
	mediumRatio   = 1.0
	highRatio     = 1.5
	criticalRatio = 2.0

	DefaultResolvedAlerts = 5
)

// ClassifySeverity bins count/threshold. A non-positive threshold is breached
// by any occurrence, so it yields critical for count > 0 and low otherwise.
func ClassifySeverity(count, threshold int) domain.Severity {
	if threshold <= 0 {
		if count > 0 {
			return domain.SeverityCritical
		}
		return domain.SeverityLow
	}

	ratio := float64(count) / float64(threshold)
	switch {
	case ratio >= criticalRatio:
		return domain.SeverityCritical
	case ratio >= highRatio:
		return domain.SeverityHigh
	case ratio >= mediumRatio:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// Overshoot is how far count is above threshold, in percent.
func Overshoot(count, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	return (float64(count)/float64(threshold) - 1) * 100
}

func NewAlertView(a domain.AlertData) domain.AlertView {
	return domain.AlertView{
		AlertData: a,
		Severity:  ClassifySeverity(a.Count, a.Threshold),
		Overshoot: Overshoot(a.Count, a.Threshold),
	}
}

// SplitAlerts separates currently breaching alerts from resolved ones and
// keeps at most resolvedLimit resolved alerts.
func SplitAlerts(alerts []domain.AlertData, resolvedLimit int) (active, resolved []domain.AlertView) {
	active = []domain.AlertView{}
	resolved = []domain.AlertView{}
	for _, a := range alerts {
		if a.Active {
			active = append(active, NewAlertView(a))
			continue
		}
		if resolvedLimit < 0 || len(resolved) < resolvedLimit {
			resolved = append(resolved, NewAlertView(a))
		}
	}
	return active, resolved
}
