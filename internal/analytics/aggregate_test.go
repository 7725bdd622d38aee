package analytics_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Egor213/LogiBoard/internal/analytics"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_RecentLogsScenario(t *testing.T) {
	logs := []domain.LogEntry{
		entry("api", "ERROR", 5, "2024-01-01T00:00:00"),
		entry("api", "INFO", 3, "2024-01-01T00:01:00"),
	}

	agg := analytics.Aggregate(logs)

	assert.Equal(t, []domain.LevelCount{{Level: "ERROR", Count: 5}, {Level: "INFO", Count: 3}}, agg.ByLevel)
	assert.Equal(t, domain.Summary{
		TotalLogs:   8,
		ErrorLogs:   5,
		WarningLogs: 0,
		InfoLogs:    3,
		DebugLogs:   0,
	}, agg.Summary)
}

func TestAggregate_CriticalAndUnknownOnlyInTotals(t *testing.T) {
	logs := []domain.LogEntry{
		entry("api", "CRITICAL", 4, "t1"),
		entry("api", "error", 2, "t1"),
		entry("api", "DEBUG", 1, "t1"),
	}

	agg := analytics.Aggregate(logs)

	assert.Equal(t, domain.Summary{TotalLogs: 7, DebugLogs: 1}, agg.Summary)
	assert.Equal(t, []domain.LevelCount{
		{Level: "CRITICAL", Count: 4},
		{Level: "error", Count: 2},
		{Level: "DEBUG", Count: 1},
	}, agg.ByLevel)
}

func TestAggregate_Empty(t *testing.T) {
	agg := analytics.Aggregate(nil)

	assert.Empty(t, agg.ByLevel)
	assert.Empty(t, agg.ByService)
	assert.Equal(t, domain.Summary{}, agg.Summary)
	assert.Empty(t, analytics.TopServices(agg.ByService, analytics.DefaultTopServices))
}

func TestTopServices(t *testing.T) {
	counts := []domain.ServiceCount{
		{Service: "a", Count: 1},
		{Service: "b", Count: 5},
		{Service: "c", Count: 5},
		{Service: "d", Count: 3},
	}

	got := analytics.TopServices(counts, 3)

	assert.Equal(t, []domain.ServiceCount{
		{Service: "b", Count: 5},
		{Service: "c", Count: 5},
		{Service: "d", Count: 3},
	}, got)
	assert.Equal(t, "a", counts[0].Service, "input must not be reordered")
}

func randomLogs(r *rand.Rand) []domain.LogEntry {
	levels := []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL", "TRACE"}
	n := r.Intn(60)
	logs := make([]domain.LogEntry, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, domain.LogEntry{
			Service:   fmt.Sprintf("svc-%d", r.Intn(15)),
			Level:     levels[r.Intn(len(levels))],
			Count:     r.Intn(100),
			Timestamp: fmt.Sprintf("2024-01-01T00:%02d:00", r.Intn(60)),
		})
	}
	return logs
}

func TestAggregate_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		logs := randomLogs(r)
		agg := analytics.Aggregate(logs)

		total := 0
		for _, e := range logs {
			total += e.Count
		}

		levelSum := 0
		for _, c := range agg.ByLevel {
			levelSum += c.Count
		}
		serviceSum := 0
		for _, c := range agg.ByService {
			serviceSum += c.Count
		}
		require.Equal(t, total, levelSum)
		require.Equal(t, total, serviceSum)
		require.Equal(t, total, agg.Summary.TotalLogs)

		top := analytics.TopServices(agg.ByService, analytics.DefaultTopServices)
		require.LessOrEqual(t, len(top), 10)
		for j := 1; j < len(top); j++ {
			require.GreaterOrEqual(t, top[j-1].Count, top[j].Count)
		}
	}
}
