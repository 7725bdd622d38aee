package timefmt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Egor213/LogiBoard/pkg/timefmt"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc instant shifted three hours back",
			in:   time.Date(2024, 1, 1, 12, 30, 15, 0, time.UTC),
			want: "2024-01-01T09:30:15",
		},
		{
			name: "fractional seconds dropped",
			in:   time.Date(2024, 1, 1, 12, 30, 15, 999_999_999, time.UTC),
			want: "2024-01-01T09:30:15",
		},
		{
			name: "crosses midnight",
			in:   time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC),
			want: "2024-02-29T22:00:00",
		},
		{
			name: "source zone is irrelevant",
			in:   time.Date(2024, 1, 1, 21, 30, 15, 0, time.FixedZone("JST", 9*60*60)),
			want: "2024-01-01T09:30:15",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := timefmt.Format(tc.in)
			assert.Equal(t, tc.want, got)
			assert.False(t, strings.Contains(got, "."))
			assert.False(t, strings.HasSuffix(got, "Z"))
		})
	}
}

func TestFormat_IgnoresLocal(t *testing.T) {
	orig := time.Local
	defer func() { time.Local = orig }()

	in := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	time.Local = time.FixedZone("X", 5*60*60)
	first := timefmt.Format(in)
	time.Local = time.FixedZone("Y", -8*60*60)
	second := timefmt.Format(in)

	assert.Equal(t, "2024-05-31T21:00:00", first)
	assert.Equal(t, first, second)
}

func TestNow(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 3, 0, 0, 500, time.UTC)
	assert.Equal(t, "2024-01-01T00:00:00", timefmt.Now(func() time.Time { return fixed }))
}
