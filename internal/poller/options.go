package poller

import "time"

const defaultTimeout = 10 * time.Second

type settings struct {
	interval time.Duration
	timeout  time.Duration
	clock    Clock
	onUpdate func()
	observer func(name string, err error)
}

type Option func(*settings)

// WithInterval sets the refresh period. Zero means the resource is fetched
// once on start and then only when invalidated.
func WithInterval(d time.Duration) Option {
	return func(s *settings) {
		s.interval = d
	}
}

// WithTimeout bounds a single fetch. Defaults to the interval.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

func WithClock(c Clock) Option {
	return func(s *settings) {
		s.clock = c
	}
}

// WithOnUpdate registers a callback fired after every state change.
func WithOnUpdate(fn func()) Option {
	return func(s *settings) {
		s.onUpdate = fn
	}
}

// WithObserver registers a callback fired after every completed fetch.
func WithObserver(fn func(name string, err error)) Option {
	return func(s *settings) {
		s.observer = fn
	}
}

func newSettings(opts []Option) settings {
	s := settings{clock: realClock{}}
	for _, opt := range opts {
		opt(&s)
	}
	if s.timeout <= 0 {
		s.timeout = s.interval
	}
	if s.timeout <= 0 {
		s.timeout = defaultTimeout
	}
	return s
}
