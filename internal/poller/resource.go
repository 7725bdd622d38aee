// Package poller keeps one cached, periodically refreshed copy of a remote
// resource per parameter set.
package poller

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type FetchFunc[P comparable, T any] func(ctx context.Context, params P) (T, error)

type Snapshot[P comparable, T any] struct {
	Params P
	Data   T
	Err    error
	// Loading is set while no fetch for the current params has completed.
	Loading   bool
	Disabled  bool
	UpdatedAt time.Time
}

// Resource is a single cache entry. Only its own goroutine writes fetched
// data; readers get snapshots. Results fetched for params that are no longer
// current are discarded.
type Resource[P comparable, T any] struct {
	name  string
	fetch FetchFunc[P, T]
	settings

	enabled  func(P) bool
	onResult func(ctx context.Context, params P, data T)

	mu        sync.Mutex
	params    P
	gen       uint64
	data      T
	hasData   bool
	err       error
	updatedAt time.Time
	overlays  []func(T) T
	inflight  context.CancelFunc

	trigger chan struct{}
	cancel  context.CancelFunc
	done    chan struct{}
}

func New[P comparable, T any](name string, fetch FetchFunc[P, T], opts ...Option) *Resource[P, T] {
	return &Resource[P, T]{
		name:     name,
		fetch:    fetch,
		settings: newSettings(opts),
		trigger:  make(chan struct{}, 1),
	}
}

// EnabledWhen sets the condition under which the resource may hit the
// network. Must be called before Start.
func (r *Resource[P, T]) EnabledWhen(fn func(P) bool) *Resource[P, T] {
	r.enabled = fn
	return r
}

// OnResult registers a callback receiving every successful fetch. Must be
// called before Start.
func (r *Resource[P, T]) OnResult(fn func(ctx context.Context, params P, data T)) *Resource[P, T] {
	r.onResult = fn
	return r
}

func (r *Resource[P, T]) Name() string {
	return r.name
}

func (r *Resource[P, T]) isEnabled(p P) bool {
	return r.enabled == nil || r.enabled(p)
}

// Start launches the polling goroutine bound to ctx. It is a no-op when the
// resource is already running.
func (r *Resource[P, T]) Start(ctx context.Context, params P) {
	r.mu.Lock()
	if r.cancel != nil {
		r.mu.Unlock()
		return
	}
	r.params = params
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	done := r.done
	r.mu.Unlock()

	go r.run(ctx, done)
}

// Stop cancels the polling goroutine and any in-flight fetch and waits for
// them to exit.
func (r *Resource[P, T]) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (r *Resource[P, T]) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := r.clock.Ticker(r.interval)
		defer ticker.Stop()
		tick = ticker.Chan()
	}

	r.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			r.refresh(ctx)
		case <-r.trigger:
			r.refresh(ctx)
		}
	}
}

func (r *Resource[P, T]) refresh(ctx context.Context) {
	r.mu.Lock()
	params, gen := r.params, r.gen
	if !r.isEnabled(params) {
		r.mu.Unlock()
		return
	}
	fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
	r.inflight = cancel
	r.mu.Unlock()
	defer cancel()

	data, err := r.fetch(fetchCtx, params)

	if ctx.Err() != nil {
		return
	}

	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		log.WithField("resource", r.name).Debug("Dropping stale response")
		return
	}
	r.inflight = nil
	if err != nil {
		r.err = err
	} else {
		r.data = data
		r.hasData = true
		r.err = nil
		r.overlays = nil
		r.updatedAt = r.clock.Now()
	}
	r.mu.Unlock()

	if err != nil {
		log.WithFields(log.Fields{
			"resource": r.name,
			"error":    err,
		}).Warn("Failed to refresh resource")
	}

	if r.observer != nil {
		r.observer(r.name, err)
	}
	if err == nil && r.onResult != nil {
		r.onResult(ctx, params, data)
	}
	r.notify()
}

func (r *Resource[P, T]) notify() {
	if r.onUpdate != nil {
		r.onUpdate()
	}
}

// SetParams switches the resource to a new parameter set. Cached data, errors
// and overlays of the old set are dropped and a fetch is triggered.
func (r *Resource[P, T]) SetParams(p P) {
	r.mu.Lock()
	if p == r.params {
		r.mu.Unlock()
		return
	}
	var zero T
	r.params = p
	r.gen++
	r.data = zero
	r.hasData = false
	r.err = nil
	r.updatedAt = time.Time{}
	r.overlays = nil
	if r.inflight != nil {
		r.inflight()
		r.inflight = nil
	}
	r.mu.Unlock()

	r.kick()
	r.notify()
}

func (r *Resource[P, T]) Params() P {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.params
}

// Invalidate drops optimistic overlays and schedules an immediate refetch.
// Repeated calls before the fetch runs are coalesced.
func (r *Resource[P, T]) Invalidate() {
	r.mu.Lock()
	r.overlays = nil
	r.mu.Unlock()

	r.kick()
}

func (r *Resource[P, T]) kick() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Mutate layers fn over the cached data until the next successful fetch
// replaces it. fn must not modify its argument in place.
func (r *Resource[P, T]) Mutate(fn func(T) T) {
	r.mu.Lock()
	r.overlays = append(r.overlays, fn)
	r.mu.Unlock()

	r.notify()
}

func (r *Resource[P, T]) Snapshot() Snapshot[P, T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot[P, T]{
		Params:    r.params,
		UpdatedAt: r.updatedAt,
	}
	if !r.isEnabled(r.params) {
		s.Disabled = true
		return s
	}

	s.Data = r.data
	for _, overlay := range r.overlays {
		s.Data = overlay(s.Data)
	}
	s.Err = r.err
	s.Loading = !r.hasData && r.err == nil
	return s
}
