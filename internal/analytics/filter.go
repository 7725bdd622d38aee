// Package analytics derives everything the dashboard shows from the raw
// collections fetched from the log service. All functions are pure.
package analytics

import "github.com/Egor213/LogiBoard/internal/domain"

type entryKey struct {
	service   string
	level     string
	timestamp string
}

func keyOf(e domain.LogEntry) entryKey {
	return entryKey{service: e.Service, level: e.Level, timestamp: e.Timestamp}
}

// EffectiveLogs selects the working set for the current filter. With both
// filters set it joins byService and byLevel on the exact
// (service, level, timestamp) tuple, keeping byService order.
func EffectiveLogs(f domain.Filter, recent, byService, byLevel []domain.LogEntry) []domain.LogEntry {
	switch {
	case f.Service != "" && f.Level != "":
		return Intersect(byService, byLevel)
	case f.Service != "":
		return orEmpty(byService)
	case f.Level != "":
		return orEmpty(byLevel)
	default:
		return orEmpty(recent)
	}
}

func Intersect(left, right []domain.LogEntry) []domain.LogEntry {
	index := make(map[entryKey]struct{}, len(right))
	for _, e := range right {
		index[keyOf(e)] = struct{}{}
	}

	result := []domain.LogEntry{}
	for _, e := range left {
		if _, ok := index[keyOf(e)]; ok {
			result = append(result, e)
		}
	}
	return result
}

func orEmpty(logs []domain.LogEntry) []domain.LogEntry {
	if logs == nil {
		return []domain.LogEntry{}
	}
	return logs
}
