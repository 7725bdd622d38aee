package poller

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultIdleTimeout = 2 * time.Minute

type poolEntry[P comparable, T any] struct {
	res      *Resource[P, T]
	lastUsed time.Time
	kept     bool
}

// Pool keeps one Resource per parameter set. A resource is created on first
// read and stopped once it has not been read for the idle timeout, so every
// cached result belongs to exactly one parameter set.
type Pool[P comparable, T any] struct {
	name  string
	fetch FetchFunc[P, T]
	opts  []Option
	idle  time.Duration
	clock Clock

	enabled  func(P) bool
	onResult func(ctx context.Context, params P, data T)

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	entries map[P]*poolEntry[P, T]
}

func NewPool[P comparable, T any](name string, fetch FetchFunc[P, T], idle time.Duration, opts ...Option) *Pool[P, T] {
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	return &Pool[P, T]{
		name:    name,
		fetch:   fetch,
		opts:    opts,
		idle:    idle,
		clock:   newSettings(opts).clock,
		entries: make(map[P]*poolEntry[P, T]),
	}
}

// EnabledWhen is applied to every resource of the pool. Params it rejects
// never get a resource. Must be called before Start.
func (p *Pool[P, T]) EnabledWhen(fn func(P) bool) *Pool[P, T] {
	p.enabled = fn
	return p
}

// OnResult is applied to every resource of the pool. Must be called before Start.
func (p *Pool[P, T]) OnResult(fn func(ctx context.Context, params P, data T)) *Pool[P, T] {
	p.onResult = fn
	return p
}

func (p *Pool[P, T]) isEnabled(params P) bool {
	return p.enabled == nil || p.enabled(params)
}

// Start launches the resources created so far and the idle sweeper.
func (p *Pool[P, T]) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.ctx, p.cancel = ctx, cancel
	p.done = make(chan struct{})
	done := p.done
	for params, e := range p.entries {
		e.res.Start(ctx, params)
	}
	p.mu.Unlock()

	go p.sweep(ctx, done)
}

// Stop stops the sweeper and every resource and forgets them.
func (p *Pool[P, T]) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.ctx, p.cancel, p.done = nil, nil, nil
	entries := p.entries
	p.entries = make(map[P]*poolEntry[P, T])
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	resources := make([]*Resource[P, T], 0, len(entries))
	for _, e := range entries {
		resources = append(resources, e.res)
	}
	stopAll(resources)
}

func (p *Pool[P, T]) get(params P, keep bool) *Resource[P, T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.entries[params]
	if !ok {
		r := New(p.name, p.fetch, p.opts...)
		r.enabled = p.enabled
		r.onResult = p.onResult
		r.params = params
		e = &poolEntry[P, T]{res: r}
		p.entries[params] = e
		if p.ctx != nil {
			r.Start(p.ctx, params)
		}
	}
	e.lastUsed = p.clock.Now()
	e.kept = e.kept || keep
	return e.res
}

// Snapshot returns the state cached for params, creating the resource on the
// first read. Disabled params report a disabled snapshot without a resource.
func (p *Pool[P, T]) Snapshot(params P) Snapshot[P, T] {
	if !p.isEnabled(params) {
		return Snapshot[P, T]{Params: params, Disabled: true}
	}
	return p.get(params, false).Snapshot()
}

// Keep creates the resource for params and exempts it from idle expiry.
func (p *Pool[P, T]) Keep(params P) {
	if p.isEnabled(params) {
		p.get(params, true)
	}
}

// Invalidate refetches every live resource.
func (p *Pool[P, T]) Invalidate() {
	p.mu.Lock()
	resources := make([]*Resource[P, T], 0, len(p.entries))
	for _, e := range p.entries {
		resources = append(resources, e.res)
	}
	p.mu.Unlock()

	for _, r := range resources {
		r.Invalidate()
	}
}

func (p *Pool[P, T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

func (p *Pool[P, T]) sweep(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := p.clock.Ticker(p.idle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.expire()
		}
	}
}

func (p *Pool[P, T]) expire() {
	now := p.clock.Now()

	p.mu.Lock()
	var stale []*Resource[P, T]
	for params, e := range p.entries {
		if !e.kept && now.Sub(e.lastUsed) >= p.idle {
			delete(p.entries, params)
			stale = append(stale, e.res)
		}
	}
	p.mu.Unlock()

	if len(stale) > 0 {
		log.WithFields(log.Fields{
			"resource": p.name,
			"expired":  len(stale),
		}).Debug("Stopping idle resources")
	}
	stopAll(stale)
}

func stopAll[P comparable, T any](resources []*Resource[P, T]) {
	var wg sync.WaitGroup
	for _, r := range resources {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Stop()
		}()
	}
	wg.Wait()
}
