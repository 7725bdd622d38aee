package pgdb

import (
	"context"

	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/repo/repoerrs"
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/Egor213/LogiBoard/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type AlertEventRepo struct {
	*postgres.Postgres
}

func NewAlertEventRepo(pg *postgres.Postgres) *AlertEventRepo {
	return &AlertEventRepo{pg}
}

func (r *AlertEventRepo) SaveEvent(ctx context.Context, event *domain.AlertEvent) error {
	sql, args, err := r.Builder.
		Insert("alert_events").
		Columns("id", "alert_key", "service", "level", "count", "threshold", "severity", "state", "observed_at").
		Values(event.ID, event.AlertKey, event.Service, event.Level, event.Count, event.Threshold,
			event.Severity, event.State, event.ObservedAt).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	_, err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return errorsUtils.WrapPathErr(repoerrs.ErrAlreadyExists)
		}
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (r *AlertEventRepo) GetEvents(ctx context.Context, filter repotypes.AlertEventFilter) ([]domain.AlertEvent, error) {
	conds, limit := BuildAlertEventFilters(filter)

	query := r.Builder.
		Select("id", "alert_key", "service", "level", "count", "threshold", "severity", "state", "observed_at").
		From("alert_events").
		OrderBy("observed_at DESC").
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AlertEvent])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return events, nil
}
