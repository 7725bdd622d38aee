package memdb

import (
	"context"
	"sync"

	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/repo/repoerrs"
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
)

const (
	DefaultCapacity    = 1000
	defaultEventsLimit = 100
)

// AlertEventRepo keeps the most recent alert events in memory. Oldest events
// are dropped once capacity is reached.
type AlertEventRepo struct {
	mu       sync.RWMutex
	capacity int
	events   []domain.AlertEvent
	ids      map[string]struct{}
}

func NewAlertEventRepo(capacity int) *AlertEventRepo {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &AlertEventRepo{
		capacity: capacity,
		ids:      make(map[string]struct{}),
	}
}

func (r *AlertEventRepo) SaveEvent(_ context.Context, event *domain.AlertEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[event.ID]; ok {
		return errorsUtils.WrapPathErr(repoerrs.ErrAlreadyExists)
	}

	r.events = append(r.events, *event)
	r.ids[event.ID] = struct{}{}

	if len(r.events) > r.capacity {
		dropped := r.events[0]
		delete(r.ids, dropped.ID)
		r.events = append([]domain.AlertEvent(nil), r.events[1:]...)
	}
	return nil
}

// GetEvents returns matching events, newest first.
func (r *AlertEventRepo) GetEvents(_ context.Context, filter repotypes.AlertEventFilter) ([]domain.AlertEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEventsLimit
	}

	result := []domain.AlertEvent{}
	for i := len(r.events) - 1; i >= 0 && len(result) < limit; i-- {
		e := r.events[i]
		if filter.Service != "" && e.Service != filter.Service {
			continue
		}
		if filter.Level != "" && e.Level != filter.Level {
			continue
		}
		if filter.State != "" && string(e.State) != filter.State {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}
