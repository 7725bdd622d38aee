package service

import (
	"context"
	"sync"
	"time"

	"github.com/Egor213/LogiBoard/internal/analytics"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/metrics"
	"github.com/Egor213/LogiBoard/internal/poller"
	"github.com/Egor213/LogiBoard/internal/repo"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/Egor213/LogiBoard/pkg/timefmt"
)

const (
	ResourceRecentLogs     = "recentLogs"
	ResourceServiceLogs    = "serviceLogs"
	ResourceLevelLogs      = "levelLogs"
	ResourceServices       = "services"
	ResourceServiceMetrics = "serviceMetrics"
	ResourceLevelMetrics   = "levelMetrics"
	ResourceAllMetrics     = "allMetrics"
	ResourceAlerts         = "alerts"
)

type DashboardConfig struct {
	LogsInterval    time.Duration
	MetricsInterval time.Duration
	AlertsInterval  time.Duration
	// IdleTimeout stops filtered resources no view has read for this long.
	IdleTimeout time.Duration
	RecentLimit int
	FilterLimit int
	TopServices int
	// ResolvedAlerts caps the resolved alerts shown. Negative means no cap.
	ResolvedAlerts int

	// PollerOptions are appended to the options of every resource.
	PollerOptions []poller.Option
}

func (c DashboardConfig) withDefaults() DashboardConfig {
	if c.LogsInterval <= 0 {
		c.LogsInterval = 10 * time.Second
	}
	if c.MetricsInterval <= 0 {
		c.MetricsInterval = 10 * time.Second
	}
	if c.AlertsInterval <= 0 {
		c.AlertsInterval = 5 * time.Second
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 2 * time.Minute
	}
	if c.RecentLimit < 1 {
		c.RecentLimit = 100
	}
	if c.FilterLimit < 1 {
		c.FilterLimit = 50
	}
	if c.TopServices < 1 {
		c.TopServices = analytics.DefaultTopServices
	}
	if c.ResolvedAlerts == 0 {
		c.ResolvedAlerts = analytics.DefaultResolvedAlerts
	}
	return c
}

type logQuery struct {
	Value string
	Limit int
}

type none struct{}

func queryIsSet(q logQuery) bool { return q.Value != "" }

func stringIsSet(s string) bool { return s != "" }

type stopper interface {
	Stop()
}

// DashboardService polls every resource the dashboard is built from.
// Filtered resources live in pools keyed by their parameters, so each caller
// passes its own filter to View and never sees data fetched for another one.
type DashboardService struct {
	cfg      DashboardConfig
	counters *metrics.Counters
	upstream UpstreamObserver

	recent     *poller.Resource[int, []domain.LogEntry]
	services   *poller.Resource[none, []string]
	allMetrics *poller.Resource[none, []domain.MetricData]

	serviceLogs    *poller.Pool[logQuery, []domain.LogEntry]
	levelLogs      *poller.Pool[logQuery, []domain.LogEntry]
	serviceMetrics *poller.Pool[string, domain.ServiceMetrics]
	levelMetrics   *poller.Pool[string, domain.LevelMetrics]
	alerts         *poller.Pool[domain.Filter, []domain.AlertData]
}

func NewDashboardService(repos *repo.Repositories, alerts Alert, cnt *metrics.Counters, upstream UpstreamObserver, cfg DashboardConfig) *DashboardService {
	s := &DashboardService{
		cfg:      cfg.withDefaults(),
		counters: cnt,
		upstream: upstream,
	}

	opts := func(interval time.Duration) []poller.Option {
		o := []poller.Option{
			poller.WithInterval(interval),
			poller.WithObserver(s.observe),
		}
		return append(o, s.cfg.PollerOptions...)
	}
	idle := s.cfg.IdleTimeout

	s.recent = poller.New(ResourceRecentLogs, repos.Log.GetRecentLogs, opts(s.cfg.LogsInterval)...)

	s.services = poller.New(ResourceServices, func(ctx context.Context, _ none) ([]string, error) {
		return repos.Metrics.GetServices(ctx)
	}, opts(0)...)

	s.allMetrics = poller.New(ResourceAllMetrics, func(ctx context.Context, _ none) ([]domain.MetricData, error) {
		return repos.Metrics.GetAllMetrics(ctx)
	}, opts(s.cfg.MetricsInterval)...)

	s.serviceLogs = poller.NewPool(ResourceServiceLogs, func(ctx context.Context, q logQuery) ([]domain.LogEntry, error) {
		return repos.Log.GetLogsByService(ctx, q.Value, q.Limit)
	}, idle, opts(s.cfg.LogsInterval)...).EnabledWhen(queryIsSet)

	s.levelLogs = poller.NewPool(ResourceLevelLogs, func(ctx context.Context, q logQuery) ([]domain.LogEntry, error) {
		return repos.Log.GetLogsByLevel(ctx, q.Value, q.Limit)
	}, idle, opts(s.cfg.LogsInterval)...).EnabledWhen(queryIsSet)

	s.serviceMetrics = poller.NewPool(ResourceServiceMetrics, repos.Metrics.GetServiceMetrics,
		idle, opts(s.cfg.MetricsInterval)...).EnabledWhen(stringIsSet)

	s.levelMetrics = poller.NewPool(ResourceLevelMetrics, repos.Metrics.GetLevelMetrics,
		idle, opts(s.cfg.MetricsInterval)...).EnabledWhen(stringIsSet)

	s.alerts = poller.NewPool(ResourceAlerts, repos.Alert.GetAlerts, idle, opts(s.cfg.AlertsInterval)...)
	if alerts != nil {
		s.alerts.OnResult(func(ctx context.Context, f domain.Filter, data []domain.AlertData) {
			alerts.Observe(ctx, f, data)
		})
	}

	return s
}

func (s *DashboardService) observe(name string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	if s.counters != nil {
		s.counters.UpstreamRequests.Inc(name, status)
	}
	if s.upstream != nil {
		s.upstream.ObserveUpstream(name, err)
	}
}

func (s *DashboardService) serviceQuery(f domain.Filter) logQuery {
	return logQuery{Value: f.Service, Limit: s.cfg.FilterLimit}
}

func (s *DashboardService) levelQuery(f domain.Filter) logQuery {
	return logQuery{Value: f.Level, Limit: s.cfg.FilterLimit}
}

// Start launches polling. Unfiltered alerts are always polled so the alert
// watcher sees every alert.
func (s *DashboardService) Start(ctx context.Context) {
	s.alerts.Keep(domain.Filter{})

	s.recent.Start(ctx, s.cfg.RecentLimit)
	s.services.Start(ctx, none{})
	s.allMetrics.Start(ctx, none{})
	s.serviceLogs.Start(ctx)
	s.levelLogs.Start(ctx)
	s.serviceMetrics.Start(ctx)
	s.levelMetrics.Start(ctx)
	s.alerts.Start(ctx)
}

func (s *DashboardService) Stop() {
	var wg sync.WaitGroup
	for _, r := range []stopper{
		s.recent, s.services, s.allMetrics,
		s.serviceLogs, s.levelLogs, s.serviceMetrics, s.levelMetrics, s.alerts,
	} {
		wg.Add(1)
		go func(r stopper) {
			defer wg.Done()
			r.Stop()
		}(r)
	}
	wg.Wait()
}

// LogRegistered shows entry at the top of the recent logs until the next
// refresh and refetches everything derived from registrations.
func (s *DashboardService) LogRegistered(entry domain.LogEntry) {
	s.recent.Mutate(func(logs []domain.LogEntry) []domain.LogEntry {
		res := make([]domain.LogEntry, 0, len(logs)+1)
		res = append(res, entry)
		return append(res, logs...)
	})
	s.services.Invalidate()
	s.serviceMetrics.Invalidate()
	s.levelMetrics.Invalidate()
	s.allMetrics.Invalidate()
}

func recordErr[P comparable, T any](errs map[string]string, name string, snap poller.Snapshot[P, T]) {
	if snap.Err != nil {
		errs[name] = snap.Err.Error()
	}
}

// View builds the dashboard for f. The level must be empty or one of the
// known levels.
func (s *DashboardService) View(f domain.Filter) (domain.DashboardView, error) {
	if f.Level != "" {
		if _, ok := domain.ParseLogLevel(f.Level); !ok {
			return domain.DashboardView{}, errorsUtils.WrapPathErr(ErrInvalidLevel)
		}
	}
	errs := make(map[string]string)

	recent := s.recent.Snapshot()
	byService := s.serviceLogs.Snapshot(s.serviceQuery(f))
	byLevel := s.levelLogs.Snapshot(s.levelQuery(f))
	services := s.services.Snapshot()
	alerts := s.alerts.Snapshot(f)

	recordErr(errs, ResourceRecentLogs, recent)
	recordErr(errs, ResourceServiceLogs, byService)
	recordErr(errs, ResourceLevelLogs, byLevel)
	recordErr(errs, ResourceServices, services)
	recordErr(errs, ResourceAlerts, alerts)

	view := domain.DashboardView{
		Filter:   f,
		Services: services.Data,
		Logs:     analytics.EffectiveLogs(f, recent.Data, byService.Data, byLevel.Data),

		ServicesLoading: services.Loading,
		AlertsLoading:   alerts.Loading,
	}
	if view.Services == nil {
		view.Services = []string{}
	}

	switch {
	case f.Service != "" && f.Level != "":
		view.LogsLoading = byService.Loading || byLevel.Loading
	case f.Service != "":
		view.LogsLoading = byService.Loading
	case f.Level != "":
		view.LogsLoading = byLevel.Loading
	default:
		view.LogsLoading = recent.Loading
	}

	agg := analytics.Aggregate(view.Logs)
	view.Summary = agg.Summary
	view.ByLevel = agg.ByLevel
	view.TopServices = analytics.TopServices(agg.ByService, s.cfg.TopServices)

	view.Metrics, view.MetricsLoading = s.metricsView(f, errs)
	view.ActiveAlerts, view.ResolvedAlerts = analytics.SplitAlerts(alerts.Data, s.cfg.ResolvedAlerts)

	if len(errs) > 0 {
		view.Errors = errs
	}
	return view, nil
}

// metricsView picks the metrics source matching the filter: one service, one
// level or everything.
func (s *DashboardService) metricsView(f domain.Filter, errs map[string]string) ([]domain.MetricGroup, bool) {
	switch {
	case f.Service != "":
		snap := s.serviceMetrics.Snapshot(f.Service)
		recordErr(errs, ResourceServiceMetrics, snap)
		rows := analytics.MetricRows(snap.Data, timefmt.Format(snap.UpdatedAt))
		if f.Level != "" {
			filtered := rows[:0]
			for _, r := range rows {
				if r.Level == f.Level {
					filtered = append(filtered, r)
				}
			}
			rows = filtered
		}
		return analytics.GroupMetrics(rows), snap.Loading
	case f.Level != "":
		snap := s.levelMetrics.Snapshot(f.Level)
		recordErr(errs, ResourceLevelMetrics, snap)
		rows := analytics.LevelMetricRows(snap.Data, timefmt.Format(snap.UpdatedAt))
		return analytics.GroupMetrics(rows), snap.Loading
	default:
		snap := s.allMetrics.Snapshot()
		recordErr(errs, ResourceAllMetrics, snap)
		return analytics.GroupMetrics(snap.Data), snap.Loading
	}
}
