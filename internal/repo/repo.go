package repo

import (
	"context"

	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/repo/memdb"
	"github.com/Egor213/LogiBoard/internal/repo/pgdb"
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
	"github.com/Egor213/LogiBoard/internal/repo/webapi"
	"github.com/Egor213/LogiBoard/pkg/postgres"
)

type Log interface {
	GetRecentLogs(ctx context.Context, limit int) ([]domain.LogEntry, error)
	GetLogsByService(ctx context.Context, service string, limit int) ([]domain.LogEntry, error)
	GetLogsByLevel(ctx context.Context, level string, limit int) ([]domain.LogEntry, error)
	RegisterLog(ctx context.Context, reg *domain.LogRegistration) (domain.LogEntry, error)
}

type Metrics interface {
	GetServices(ctx context.Context) ([]string, error)
	GetServiceMetrics(ctx context.Context, service string) (domain.ServiceMetrics, error)
	GetLevelMetrics(ctx context.Context, level string) (domain.LevelMetrics, error)
	GetAllMetrics(ctx context.Context) ([]domain.MetricData, error)
}

type Alert interface {
	GetAlerts(ctx context.Context, filter domain.Filter) ([]domain.AlertData, error)
}

type AlertEvent interface {
	SaveEvent(ctx context.Context, event *domain.AlertEvent) error
	GetEvents(ctx context.Context, filter repotypes.AlertEventFilter) ([]domain.AlertEvent, error)
}

type Repositories struct {
	Log
	Metrics
	Alert
	AlertEvent
}

// NewRepositories wires the log service client and the alert journal. A nil
// pg keeps the journal in memory.
func NewRepositories(api *webapi.Client, pg *postgres.Postgres) *Repositories {
	var events AlertEvent = memdb.NewAlertEventRepo(memdb.DefaultCapacity)
	if pg != nil {
		events = pgdb.NewAlertEventRepo(pg)
	}
	return &Repositories{
		Log:        api,
		Metrics:    api,
		Alert:      api,
		AlertEvent: events,
	}
}
