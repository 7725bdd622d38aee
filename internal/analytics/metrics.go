package analytics

import (
	"sort"

	"github.com/Egor213/LogiBoard/internal/domain"
)

func levelRank(level string) int {
	for i, l := range domain.LogLevels {
		if string(l) == level {
			return i
		}
	}
	return len(domain.LogLevels)
}

// MetricRows expands a per-level map into table rows stamped with now.
// Known levels come first in canonical order, unknown ones alphabetically.
func MetricRows(sm domain.ServiceMetrics, now string) []domain.MetricData {
	rows := make([]domain.MetricData, 0, len(sm.Metrics))
	for level, count := range sm.Metrics {
		rows = append(rows, domain.MetricData{
			Service:   sm.Service,
			Level:     level,
			Count:     count,
			Timestamp: now,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		ri, rj := levelRank(rows[i].Level), levelRank(rows[j].Level)
		if ri != rj {
			return ri < rj
		}
		return rows[i].Level < rows[j].Level
	})
	return rows
}

// LevelMetricRows expands a per-service map for one level, busiest first.
func LevelMetricRows(lm domain.LevelMetrics, now string) []domain.MetricData {
	rows := make([]domain.MetricData, 0, len(lm.Metrics))
	for service, count := range lm.Metrics {
		rows = append(rows, domain.MetricData{
			Service:   service,
			Level:     lm.Level,
			Count:     count,
			Timestamp: now,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Service < rows[j].Service
	})
	return rows
}

func GroupMetrics(rows []domain.MetricData) []domain.MetricGroup {
	groups := []domain.MetricGroup{}
	idx := make(map[string]int)

	for _, m := range rows {
		i, ok := idx[m.Service]
		if !ok {
			i = len(groups)
			idx[m.Service] = i
			groups = append(groups, domain.MetricGroup{Service: m.Service})
		}
		groups[i].Rows = append(groups[i].Rows, m)
		groups[i].Total += m.Count
	}
	return groups
}
