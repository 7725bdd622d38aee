package analytics_test

import (
	"testing"

	"github.com/Egor213/LogiBoard/internal/analytics"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySeverity(t *testing.T) {
	testCases := []struct {
		name      string
		count     int
		threshold int
		want      domain.Severity
	}{
		{name: "below threshold", count: 99, threshold: 100, want: domain.SeverityLow},
		{name: "zero count", count: 0, threshold: 100, want: domain.SeverityLow},
		{name: "exactly 1.0", count: 100, threshold: 100, want: domain.SeverityMedium},
		{name: "just under 1.5", count: 149, threshold: 100, want: domain.SeverityMedium},
		{name: "exactly 1.5", count: 150, threshold: 100, want: domain.SeverityHigh},
		{name: "just under 2.0", count: 199, threshold: 100, want: domain.SeverityHigh},
		{name: "exactly 2.0", count: 200, threshold: 100, want: domain.SeverityCritical},
		{name: "far above", count: 1000, threshold: 3, want: domain.SeverityCritical},
		{name: "zero threshold with hits", count: 1, threshold: 0, want: domain.SeverityCritical},
		{name: "zero threshold without hits", count: 0, threshold: 0, want: domain.SeverityLow},
		{name: "negative threshold", count: 2, threshold: -5, want: domain.SeverityCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analytics.ClassifySeverity(tc.count, tc.threshold))
		})
	}
}

func TestClassifySeverity_Monotonic(t *testing.T) {
	rank := map[domain.Severity]int{}
	for i, s := range domain.Severities {
		rank[s] = i
	}

	for _, threshold := range []int{1, 3, 7, 100} {
		prev := -1
		for count := 0; count <= threshold*3; count++ {
			r := rank[analytics.ClassifySeverity(count, threshold)]
			require.GreaterOrEqual(t, r, prev, "count=%d threshold=%d", count, threshold)
			prev = r
		}
	}
}

func TestOvershoot(t *testing.T) {
	assert.InDelta(t, 50.0, analytics.Overshoot(150, 100), 1e-9)
	assert.InDelta(t, -1.0, analytics.Overshoot(99, 100), 1e-9)
	assert.Equal(t, 0.0, analytics.Overshoot(5, 0))
}

func TestSplitAlerts(t *testing.T) {
	alerts := []domain.AlertData{
		{ID: "a1", Count: 150, Threshold: 100, Active: true},
	}
	for i := 0; i < 7; i++ {
		alerts = append(alerts, domain.AlertData{ID: string(rune('r' + i)), Count: 10, Threshold: 100})
	}

	active, resolved := analytics.SplitAlerts(alerts, analytics.DefaultResolvedAlerts)

	require.Len(t, active, 1)
	assert.Equal(t, domain.SeverityHigh, active[0].Severity)
	assert.InDelta(t, 50.0, active[0].Overshoot, 1e-9)
	assert.Len(t, resolved, 5)
}

func TestSplitAlerts_Empty(t *testing.T) {
	active, resolved := analytics.SplitAlerts(nil, 5)

	assert.NotNil(t, active)
	assert.NotNil(t, resolved)
	assert.Empty(t, active)
	assert.Empty(t, resolved)
}
