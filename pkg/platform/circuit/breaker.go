// Package circuit provides a two-state circuit breaker for optional backends.
package circuit

import "sync"

// State is the breaker position.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Breaker opens after a run of consecutive failures. While open, every
// Allow call after the first probe is refused until the probe interval
// elapses; a run of probe successes closes it again.
type Breaker struct {
	mu               sync.Mutex
	name             string
	state            State
	failures         int
	successes        int
	skipped          int
	failureThreshold int
	successThreshold int
	probeEvery       int
	onChange         func(name string, to State)
}

type Option func(*Breaker)

// WithFailureThreshold sets the consecutive failures that open the breaker. Default 5.
func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.failureThreshold = n
		}
	}
}

// WithSuccessThreshold sets the consecutive probe successes that close it. Default 2.
func WithSuccessThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.successThreshold = n
		}
	}
}

// WithProbeEvery lets one call through per n calls while open. Default 10.
func WithProbeEvery(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.probeEvery = n
		}
	}
}

// WithStateChange registers a callback run on every transition, outside the lock.
func WithStateChange(fn func(name string, to State)) Option {
	return func(b *Breaker) {
		b.onChange = fn
	}
}

func New(name string, opts ...Option) *Breaker {
	b := &Breaker{
		name:             name,
		failureThreshold: 5,
		successThreshold: 2,
		probeEvery:       10,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func (b *Breaker) Name() string { return b.name }

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Allow reports whether the caller should try the guarded backend.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateClosed {
		return true
	}
	b.skipped++
	if b.skipped >= b.probeEvery {
		b.skipped = 0
		return true
	}
	return false
}

// Failure records a failed call against the backend.
func (b *Breaker) Failure() {
	b.mu.Lock()
	b.successes = 0
	b.failures++
	opened := b.state == StateClosed && b.failures >= b.failureThreshold
	if opened {
		b.state = StateOpen
		b.skipped = 0
	}
	b.mu.Unlock()
	if opened {
		b.notify(StateOpen)
	}
}

// Success records a successful call against the backend.
func (b *Breaker) Success() {
	b.mu.Lock()
	b.failures = 0
	closed := false
	if b.state == StateOpen {
		b.successes++
		if b.successes >= b.successThreshold {
			b.state = StateClosed
			b.successes = 0
			closed = true
		}
	}
	b.mu.Unlock()
	if closed {
		b.notify(StateClosed)
	}
}

func (b *Breaker) notify(to State) {
	if b.onChange != nil {
		b.onChange(b.name, to)
	}
}
