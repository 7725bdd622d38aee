package analytics_test

import (
	"testing"

	"github.com/Egor213/LogiBoard/internal/analytics"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func entry(service, level string, count int, ts string) domain.LogEntry {
	return domain.LogEntry{Service: service, Level: level, Count: count, Timestamp: ts}
}

func TestEffectiveLogs(t *testing.T) {
	recent := []domain.LogEntry{entry("api", "INFO", 1, "t1"), entry("auth", "ERROR", 2, "t1")}
	byService := []domain.LogEntry{
		entry("api", "ERROR", 3, "t1"),
		entry("api", "INFO", 4, "t2"),
		entry("api", "ERROR", 5, "t3"),
	}
	byLevel := []domain.LogEntry{
		entry("auth", "ERROR", 2, "t1"),
		entry("api", "ERROR", 5, "t3"),
		entry("api", "ERROR", 3, "t1"),
	}

	testCases := []struct {
		name   string
		filter domain.Filter
		want   []domain.LogEntry
	}{
		{name: "no filter uses recent", filter: domain.Filter{}, want: recent},
		{name: "service only", filter: domain.Filter{Service: "api"}, want: byService},
		{name: "level only", filter: domain.Filter{Level: "ERROR"}, want: byLevel},
		{
			name:   "both joins on tuple keeping service order",
			filter: domain.Filter{Service: "api", Level: "ERROR"},
			want:   []domain.LogEntry{entry("api", "ERROR", 3, "t1"), entry("api", "ERROR", 5, "t3")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := analytics.EffectiveLogs(tc.filter, recent, byService, byLevel)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEffectiveLogs_DisjointSources(t *testing.T) {
	byService := []domain.LogEntry{entry("api", "ERROR", 3, "2024-01-01T00:00:00")}
	byLevel := []domain.LogEntry{entry("api", "ERROR", 3, "2024-01-01T00:01:00")}

	got := analytics.EffectiveLogs(domain.Filter{Service: "api", Level: "ERROR"}, nil, byService, byLevel)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEffectiveLogs_UnresolvedSourcesAreEmpty(t *testing.T) {
	assert.Equal(t, []domain.LogEntry{}, analytics.EffectiveLogs(domain.Filter{}, nil, nil, nil))
	assert.Equal(t, []domain.LogEntry{}, analytics.EffectiveLogs(domain.Filter{Service: "api"}, nil, nil, nil))
	assert.Equal(t, []domain.LogEntry{}, analytics.EffectiveLogs(domain.Filter{Service: "api", Level: "INFO"}, nil, nil, nil))
}

func TestIntersect_CountIsNotPartOfTheKey(t *testing.T) {
	left := []domain.LogEntry{entry("api", "ERROR", 3, "t1")}
	right := []domain.LogEntry{entry("api", "ERROR", 9, "t1")}

	assert.Equal(t, left, analytics.Intersect(left, right))
}
