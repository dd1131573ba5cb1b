// Package lifecycle tracks asynchronous calls as observable
// idle -> pending -> success | error state.
package lifecycle

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
)

var (
	ErrClosed    = errors.New("lifecycle: controller closed")
	ErrNoRequest = errors.New("lifecycle: nothing to retry")
)

type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Snapshot is the observable state of a controller. Value holds the last
// successful result and survives later failures; Err holds the last failure
// and is cleared by a success.
type Snapshot[P, V any] struct {
	State    State
	Params   P
	Key      string
	Value    V
	HasValue bool
	Err      error
}

// AppError returns Err in the error taxonomy, or nil.
func (s Snapshot[P, V]) AppError() *apperror.AppError {
	return apperror.From(s.Err)
}

// Func performs one call with the given parameters.
type Func[P, V any] func(ctx context.Context, params P) (V, error)

// Controller wraps a Func with a lifecycle. Calls with the same key share one
// in-flight execution, and the snapshot always reflects the most recently
// triggered parameters.
type Controller[P, V any] struct {
	fn  Func[P, V]
	key func(P) string

	// Shared calls run on the controller's context so a single caller giving
	// up does not cancel the call for the others.
	ctx    context.Context
	cancel context.CancelFunc
	group  singleflight.Group

	mu        sync.Mutex
	gen       uint64
	snap      Snapshot[P, V]
	hasParams bool
	closed    bool
	subs      map[int]func(Snapshot[P, V])
	nextSub   int

	// Published snapshots waiting for delivery. At most one goroutine drains
	// the queue at a time.
	queue    []Snapshot[P, V]
	draining bool
}

func New[P, V any](fn Func[P, V], key func(P) string) *Controller[P, V] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller[P, V]{
		fn:     fn,
		key:    key,
		ctx:    ctx,
		cancel: cancel,
		snap:   Snapshot[P, V]{State: StateIdle},
		subs:   make(map[int]func(Snapshot[P, V])),
	}
}

type outcome[V any] struct {
	value V
	err   error
}

// Trigger starts a call for params and waits for its result or for ctx to be
// done. The returned value is always the result for params, even when a newer
// Trigger has superseded it in the snapshot.
func (c *Controller[P, V]) Trigger(ctx context.Context, params P) (V, error) {
	var zero V
	key := c.key(params)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, ErrClosed
	}
	c.gen++
	gen := c.gen
	c.snap.State = StatePending
	c.snap.Params = params
	c.snap.Key = key
	c.hasParams = true
	ch := c.group.DoChan(key, func() (any, error) {
		return c.fn(c.ctx, params)
	})
	c.publishLocked()

	done := make(chan outcome[V], 1)
	go func() {
		res := <-ch
		var out outcome[V]
		if res.Err != nil {
			out.err = res.Err
		} else {
			out.value, _ = res.Val.(V)
		}
		if !c.settle(gen, out) && c.isClosed() {
			out = outcome[V]{err: ErrClosed}
		}
		done <- out
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Retry triggers the last requested parameters again.
func (c *Controller[P, V]) Retry(ctx context.Context) (V, error) {
	c.mu.Lock()
	params, ok := c.snap.Params, c.hasParams
	c.mu.Unlock()
	if !ok {
		var zero V
		return zero, ErrNoRequest
	}
	return c.Trigger(ctx, params)
}

// Snapshot returns the current state.
func (c *Controller[P, V]) Snapshot() Snapshot[P, V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Subscribe registers fn to receive every state change in order. Deliveries
// are serialized and run without controller locks held, so fn may call any
// controller method. A Trigger from inside fn is delivered after fn returns.
func (c *Controller[P, V]) Subscribe(fn func(Snapshot[P, V])) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Close cancels in-flight calls and drops subscribers. A pending snapshot
// returns to idle, keeping the last value and error. Results arriving
// afterwards are discarded without notification.
func (c *Controller[P, V]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.gen++
	clear(c.subs)
	c.queue = nil
	if c.snap.State == StatePending {
		c.snap.State = StateIdle
	}
	c.mu.Unlock()
	c.cancel()
}

func (c *Controller[P, V]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// settle applies out if gen is still the latest trigger. It reports whether
// the snapshot changed.
func (c *Controller[P, V]) settle(gen uint64, out outcome[V]) bool {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return false
	}
	if out.err != nil {
		c.snap.State = StateError
		c.snap.Err = out.err
	} else {
		c.snap.State = StateSuccess
		c.snap.Value = out.value
		c.snap.HasValue = true
		c.snap.Err = nil
	}
	c.publishLocked()
	return true
}

// publishLocked must be called with mu held and releases it. The snapshot is
// queued in state-change order; the caller delivers the queue unless another
// goroutine is already doing so.
func (c *Controller[P, V]) publishLocked() {
	c.queue = append(c.queue, c.snap)
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true
	c.mu.Unlock()
	c.drain()
}

func (c *Controller[P, V]) drain() {
	for {
		c.mu.Lock()
		if len(c.queue) == 0 {
			c.draining = false
			c.mu.Unlock()
			return
		}
		snap := c.queue[0]
		c.queue = c.queue[1:]
		subs := make([]func(Snapshot[P, V]), 0, len(c.subs))
		for _, fn := range c.subs {
			subs = append(subs, fn)
		}
		c.mu.Unlock()

		for _, fn := range subs {
			fn(snap)
		}
	}
}
