package analytics

import (
	"sort"

	"github.com/Egor213/LogiBoard/internal/domain"
)

const DefaultTopServices = 10

type Aggregates struct {
	ByLevel   []domain.LevelCount
	ByService []domain.ServiceCount
	Summary   domain.Summary
}

// Aggregate groups logs by level and by service and fills the summary cards
// in a single pass. Groups keep first-seen order. Summary buckets match the
// level exactly, so CRITICAL only counts towards the total.
func Aggregate(logs []domain.LogEntry) Aggregates {
	agg := Aggregates{
		ByLevel:   []domain.LevelCount{},
		ByService: []domain.ServiceCount{},
	}
	levelIdx := make(map[string]int)
	serviceIdx := make(map[string]int)

	for _, e := range logs {
		if i, ok := levelIdx[e.Level]; ok {
			agg.ByLevel[i].Count += e.Count
		} else {
			levelIdx[e.Level] = len(agg.ByLevel)
			agg.ByLevel = append(agg.ByLevel, domain.LevelCount{Level: e.Level, Count: e.Count})
		}

		if i, ok := serviceIdx[e.Service]; ok {
			agg.ByService[i].Count += e.Count
		} else {
			serviceIdx[e.Service] = len(agg.ByService)
			agg.ByService = append(agg.ByService, domain.ServiceCount{Service: e.Service, Count: e.Count})
		}

		agg.Summary.TotalLogs += e.Count
		switch domain.LogLevel(e.Level) {
		case domain.LevelError:
			agg.Summary.ErrorLogs += e.Count
		case domain.LevelWarning:
			agg.Summary.WarningLogs += e.Count
		case domain.LevelInfo:
			agg.Summary.InfoLogs += e.Count
		case domain.LevelDebug:
			agg.Summary.DebugLogs += e.Count
		}
	}

	return agg
}

// TopServices returns a copy sorted by count descending, ties kept in input
// order, truncated to n.
func TopServices(counts []domain.ServiceCount, n int) []domain.ServiceCount {
	top := make([]domain.ServiceCount, len(counts))
	copy(top, counts)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})

	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}
