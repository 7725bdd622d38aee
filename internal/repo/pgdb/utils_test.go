package pgdb_test

import (
	"testing"

	"github.com/Egor213/LogiBoard/internal/repo/pgdb"
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAlertEventFilters(t *testing.T) {
	testCases := []struct {
		name      string
		filter    repotypes.AlertEventFilter
		wantWhere string
		wantArgs  []any
		wantLimit uint64
	}{
		{
			name:      "empty filter",
			filter:    repotypes.AlertEventFilter{},
			wantLimit: 100,
		},
		{
			name:      "service and state",
			filter:    repotypes.AlertEventFilter{Service: "api", State: "activated", Limit: 10},
			wantWhere: "(service = $1 AND state = $2)",
			wantArgs:  []any{"api", "activated"},
			wantLimit: 10,
		},
		{
			name:      "limit capped",
			filter:    repotypes.AlertEventFilter{Level: "ERROR", Limit: 5000},
			wantWhere: "(level = $1)",
			wantArgs:  []any{"ERROR"},
			wantLimit: 1000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds, limit := pgdb.BuildAlertEventFilters(tc.filter)
			assert.Equal(t, tc.wantLimit, limit)

			if tc.wantWhere == "" {
				assert.Empty(t, conds)
				return
			}

			sql, args, err := sq.And(conds).ToSql()
			require.NoError(t, err)
			sql, err = sq.Dollar.ReplacePlaceholders(sql)
			require.NoError(t, err)
			assert.Equal(t, tc.wantWhere, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
