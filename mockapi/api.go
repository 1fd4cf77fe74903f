// Package mockapi simulates the remote backend: every operation sleeps
// for a fixed latency, then performs a full-collection read-modify-write
// against the blob store. It stands in for a real network client until
// one exists; the services layer hides it behind interfaces.
package mockapi

import (
	"time"

	"github.com/jo-carlos-borges/pantry-tracker/storage"
)

// Round-trip latencies of the simulated network.
const (
	AuthLatency = 500 * time.Millisecond
	OpLatency   = 300 * time.Millisecond
)

// API implements the mock remote backend over a blob store.
type API struct {
	store storage.Store

	authLatency time.Duration
	opLatency   time.Duration
	now         func() time.Time
	sleep       func(time.Duration)
}

// Option configures an API.
type Option func(*API)

// WithoutLatency disables the simulated network delay. Used by tests
// and by the CLI, where an artificial wait serves nothing.
func WithoutLatency() Option {
	return func(a *API) {
		a.authLatency = 0
		a.opLatency = 0
	}
}

// WithClock replaces the wall clock. Tests use it to pin price dates
// and token values.
func WithClock(now func() time.Time) Option {
	return func(a *API) {
		a.now = now
	}
}

// New returns an API over the given store.
func New(s storage.Store, opts ...Option) *API {
	a := &API{
		store:       s,
		authLatency: AuthLatency,
		opLatency:   OpLatency,
		now:         time.Now,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) delayAuth() {
	if a.authLatency > 0 {
		a.sleep(a.authLatency)
	}
}

func (a *API) delayOp() {
	if a.opLatency > 0 {
		a.sleep(a.opLatency)
	}
}

// nextID assigns identifiers the way the backend always has: one past
// the current maximum, or 1 for an empty collection. Deleting the
// highest-id record frees its id for reuse; switching to a monotonic
// counter would change the persisted format, so the rule stays.
func nextID[T any](records []T, id func(T) int) int {
	max := 0
	for _, r := range records {
		if v := id(r); v > max {
			max = v
		}
	}
	return max + 1
}
