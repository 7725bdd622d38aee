package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Egor213/LogiBoard/internal/analytics"
	"github.com/Egor213/LogiBoard/internal/broker"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/metrics"
	"github.com/Egor213/LogiBoard/internal/repo"
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// AlertWatcher turns consecutive alert polls into activated/resolved events.
type AlertWatcher struct {
	journal  repo.AlertEvent
	producer broker.Producer
	counters *metrics.Counters
	clock    func() time.Time

	mu    sync.Mutex
	known map[string]domain.AlertData
}

func NewAlertWatcher(journal repo.AlertEvent, producer broker.Producer, cnt *metrics.Counters, clock func() time.Time) *AlertWatcher {
	if producer == nil {
		producer = broker.Nop{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &AlertWatcher{
		journal:  journal,
		producer: producer,
		counters: cnt,
		clock:    clock,
		known:    make(map[string]domain.AlertData),
	}
}

// Observe diffs alerts polled with filter against the last observed state.
// A filtered poll only updates the alerts it returns. An unfiltered poll is
// complete: alerts missing from it are forgotten and the active gauge is
// recomputed from it.
func (w *AlertWatcher) Observe(ctx context.Context, filter domain.Filter, alerts []domain.AlertData) {
	complete := filter == domain.Filter{}

	w.mu.Lock()
	var events []domain.AlertEvent
	now := w.clock()
	seen := make(map[string]struct{}, len(alerts))
	for _, a := range alerts {
		key := a.Key()
		seen[key] = struct{}{}
		prev, known := w.known[key]
		w.known[key] = a

		switch {
		case a.Active && (!known || !prev.Active):
			events = append(events, w.newEvent(a, domain.AlertActivated, now))
		case !a.Active && known && prev.Active:
			events = append(events, w.newEvent(a, domain.AlertResolved, now))
		}
	}
	if complete {
		for key := range w.known {
			if _, ok := seen[key]; !ok {
				delete(w.known, key)
			}
		}
	}
	w.mu.Unlock()

	if complete && w.counters != nil {
		w.counters.ActiveAlerts.Reset()
		for svc, n := range activeByService(alerts) {
			w.counters.ActiveAlerts.Set(float64(n), svc)
		}
	}

	for i := range events {
		w.emit(ctx, &events[i])
	}
}

// Tracked reports how many alerts the watcher currently remembers.
func (w *AlertWatcher) Tracked() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.known)
}

func activeByService(alerts []domain.AlertData) map[string]int {
	res := make(map[string]int)
	seen := make(map[string]struct{}, len(alerts))
	for _, a := range alerts {
		if _, dup := seen[a.Key()]; dup || !a.Active {
			continue
		}
		seen[a.Key()] = struct{}{}
		res[a.Service]++
	}
	return res
}

func (w *AlertWatcher) newEvent(a domain.AlertData, state domain.AlertState, now time.Time) domain.AlertEvent {
	return domain.AlertEvent{
		ID:         uuid.NewString(),
		AlertKey:   a.Key(),
		Service:    a.Service,
		Level:      a.Level,
		Count:      a.Count,
		Threshold:  a.Threshold,
		Severity:   analytics.ClassifySeverity(a.Count, a.Threshold),
		State:      state,
		ObservedAt: now.UTC(),
	}
}

func (w *AlertWatcher) emit(ctx context.Context, event *domain.AlertEvent) {
	fields := log.Fields{
		"alert":   event.AlertKey,
		"service": event.Service,
		"level":   event.Level,
		"state":   event.State,
	}
	log.WithFields(fields).Info("Alert state changed")

	if w.counters != nil {
		w.counters.AlertTransitions.Inc(string(event.State))
	}

	if err := w.journal.SaveEvent(ctx, event); err != nil {
		log.WithFields(fields).WithError(err).Error("Failed to save alert event")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("Failed to encode alert event")
		return
	}
	if err := w.producer.SendMessage(ctx, []byte(event.AlertKey), payload); err != nil {
		log.WithFields(fields).WithError(err).Warn("Failed to publish alert event")
	}
}

func (w *AlertWatcher) GetAlertHistory(ctx context.Context, filter repotypes.AlertEventFilter) ([]domain.AlertEvent, error) {
	events, err := w.journal.GetEvents(ctx, filter)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotGetAlertHistory, err))
	}
	return events, nil
}
