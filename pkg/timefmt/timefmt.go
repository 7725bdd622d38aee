// Package timefmt renders timestamps the way the log service expects them:
// wall clock at a fixed UTC-03:00 offset, whole seconds, no zone suffix.
package timefmt

import "time"

const (
	Layout        = "2006-01-02T15:04:05"
	OffsetSeconds = -3 * 60 * 60
)

var zone = time.FixedZone("UTC-03", OffsetSeconds)

func Format(t time.Time) string {
	return t.Truncate(time.Second).In(zone).Format(Layout)
}

func Now(clock func() time.Time) string {
	if clock == nil {
		clock = time.Now
	}
	return Format(clock())
}
