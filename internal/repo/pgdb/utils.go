package pgdb

import (
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

const (
	defaultEventsLimit = 100
	maxEventsLimit     = 1000
)

func BuildAlertEventFilters(filter repotypes.AlertEventFilter) ([]sq.Sqlizer, uint64) {
	conds := []sq.Sqlizer{}

	if filter.Service != "" {
		conds = append(conds, sq.Eq{"service": filter.Service})
	}
	if filter.Level != "" {
		conds = append(conds, sq.Eq{"level": filter.Level})
	}
	if filter.State != "" {
		conds = append(conds, sq.Eq{"state": filter.State})
	}

	return conds, EventsLimit(filter.Limit)
}

func EventsLimit(limit int) uint64 {
	switch {
	case limit <= 0:
		return defaultEventsLimit
	case limit > maxEventsLimit:
		return maxEventsLimit
	default:
		return uint64(limit)
	}
}
