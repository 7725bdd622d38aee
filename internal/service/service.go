package service

import (
	"context"
	"time"

	"github.com/Egor213/LogiBoard/internal/broker"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/metrics"
	"github.com/Egor213/LogiBoard/internal/repo"
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
)

type Dashboard interface {
	Start(ctx context.Context)
	Stop()
	View(f domain.Filter) (domain.DashboardView, error)
}

type Log interface {
	RegisterLog(ctx context.Context, reg domain.LogRegistration) (domain.LogEntry, error)
}

type Alert interface {
	Observe(ctx context.Context, filter domain.Filter, alerts []domain.AlertData)
	GetAlertHistory(ctx context.Context, filter repotypes.AlertEventFilter) ([]domain.AlertEvent, error)
}

// UpstreamObserver is told about the outcome of every remote fetch.
type UpstreamObserver interface {
	ObserveUpstream(resource string, err error)
}

type Services struct {
	Dashboard Dashboard
	Log       Log
	Alert     Alert
}

type ServicesDependencies struct {
	Repos     *repo.Repositories
	Producer  broker.Producer
	Counters  *metrics.Counters
	Upstream  UpstreamObserver
	Dashboard DashboardConfig
	Clock     func() time.Time
}

func NewServices(deps ServicesDependencies) *Services {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Producer == nil {
		deps.Producer = broker.Nop{}
	}

	alerts := NewAlertWatcher(deps.Repos.AlertEvent, deps.Producer, deps.Counters, deps.Clock)
	dashboard := NewDashboardService(deps.Repos, alerts, deps.Counters, deps.Upstream, deps.Dashboard)

	return &Services{
		Dashboard: dashboard,
		Log:       NewLogService(deps.Repos.Log, dashboard, deps.Counters, deps.Clock),
		Alert:     alerts,
	}
}
