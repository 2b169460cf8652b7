// Package session owns the client's belief about who is signed in.
//
// The Controller is the single writer of session state. UI consumers hold
// read-only snapshots plus intent methods (Login, Logout, ...); they never
// mutate state directly. Concurrent operations are reconciled with sequence
// tagging: each dispatched call takes a monotonically increasing number and
// a completion whose number is below the highest already applied is
// discarded, so a stale read can never overwrite a newer authoritative
// write regardless of completion order.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dkarpov/jobseekr/internal/client/client"
	"github.com/dkarpov/jobseekr/internal/client/models"
	"github.com/dkarpov/jobseekr/internal/logging"
)

// State is the controller's belief about authentication.
type State string

const (
	// StateUnknown holds only until the initial reconciliation completes.
	StateUnknown State = "unknown"

	// StateUnauthenticated means the server has confirmed there is no
	// session, or the initial check could not reach the server.
	StateUnauthenticated State = "unauthenticated"

	// StateAuthenticated means the server has confirmed a session.
	StateAuthenticated State = "authenticated"
)

// Snapshot is the value handed to consumers on every transition. User is
// non-nil exactly when State is StateAuthenticated. Checking is true while
// the initial reconciliation is still in flight, letting consumers tell
// "not yet known" apart from "known unauthenticated".
type Snapshot struct {
	State    State
	User     *models.User
	Checking bool
}

// Controller is the session state machine. Construct with NewController;
// the zero value is not usable.
type Controller struct {
	api client.Client
	log logging.Logger

	nextSeq atomic.Uint64

	// applyMu serializes result application and subscriber notification.
	// Subscribers are invoked synchronously and must not call controller
	// operations from inside the callback.
	applyMu sync.Mutex

	mu         sync.Mutex
	state      State
	user       *models.User
	checking   bool
	appliedSeq uint64
	started    bool
	subs       map[int]func(Snapshot)
	nextSubID  int

	ready     chan struct{}
	readyOnce sync.Once
}

func NewController(api client.Client, log logging.Logger) *Controller {
	return &Controller{
		api:      api,
		log:      log,
		state:    StateUnknown,
		checking: true,
		subs:     make(map[int]func(Snapshot)),
		ready:    make(chan struct{}),
	}
}

// Current returns the present snapshot.
func (c *Controller) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, User: c.user, Checking: c.checking}
}

// Subscribe registers fn to be called synchronously, once per applied
// transition, with the full snapshot. The returned function removes the
// subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// WaitReady blocks until the initial reconciliation has been applied or ctx
// is done. After it returns nil the state is never StateUnknown again.
func (c *Controller) WaitReady(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start performs the initial reconciliation: it asks the server who is
// signed in and leaves the unknown state. A network failure counts as
// unauthenticated so consumers are never stuck waiting. Start is at most
// once per controller; later re-syncs go through CheckAuth.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	seq := c.dispatch()
	user, err := c.api.CurrentUser(ctx)
	if err == nil {
		c.apply(ctx, seq, StateAuthenticated, user)
		return
	}
	if !errors.Is(err, client.ErrUnauthorized) {
		c.log.Warn(ctx, "initial session check failed", "error", err)
	}
	c.apply(ctx, seq, StateUnauthenticated, nil)
}

// CheckAuth forces a fresh fetch of the server's view and overwrites local
// state with it; the server is always authoritative over cached values.
// Any consumer may call it, e.g. after editing profile fields. On a
// transport failure the current state is kept (a failed background re-sync
// must not flip the UI) and the error is returned for the caller to surface.
func (c *Controller) CheckAuth(ctx context.Context) error {
	seq := c.dispatch()
	user, err := c.api.CurrentUser(ctx)
	switch {
	case err == nil:
		c.apply(ctx, seq, StateAuthenticated, user)
		return nil
	case errors.Is(err, client.ErrUnauthorized):
		c.apply(ctx, seq, StateUnauthenticated, nil)
		return nil
	default:
		c.log.Warn(ctx, "session re-sync failed", "error", err)
		return err
	}
}

// Login authenticates and, on success, replaces the session wholesale with
// the server-confirmed user. A failed login leaves state untouched; the
// typed error carries the server's verbatim detail.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	seq := c.dispatch()
	user, err := c.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	c.apply(ctx, seq, StateAuthenticated, user)
	return nil
}

// Register creates an account; the server signs the new user in, so a
// successful registration transitions straight to authenticated.
func (c *Controller) Register(ctx context.Context, username, password string) error {
	seq := c.dispatch()
	user, err := c.api.Register(ctx, username, password)
	if err != nil {
		return err
	}
	c.apply(ctx, seq, StateAuthenticated, user)
	return nil
}

// Logout invalidates the ambient session credentials client-side and
// transitions to unauthenticated immediately. No server call is needed;
// the sequence tag guarantees any in-flight read dispatched earlier is
// discarded when it lands.
func (c *Controller) Logout(ctx context.Context) {
	seq := c.dispatch()
	c.api.ClearSession()
	c.apply(ctx, seq, StateUnauthenticated, nil)
}

// DeleteAccount removes the account server-side and, on success, drops the
// session. The caller must then navigate to an unauthenticated entry point.
func (c *Controller) DeleteAccount(ctx context.Context) error {
	seq := c.dispatch()
	if err := c.api.DeleteAccount(ctx); err != nil {
		return err
	}
	c.api.ClearSession()
	c.apply(ctx, seq, StateUnauthenticated, nil)
	return nil
}

// dispatch assigns the next sequence number. Numbers are taken at dispatch
// time, before the remote call, which is what lets a later-dispatched
// operation win over an earlier one that completes last.
func (c *Controller) dispatch() uint64 {
	return c.nextSeq.Add(1)
}

// apply installs a completed operation's outcome unless a higher-sequence
// outcome has already been applied. Subscribers are notified synchronously,
// one call per applied transition.
func (c *Controller) apply(ctx context.Context, seq uint64, state State, user *models.User) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	if seq < c.appliedSeq {
		stale := c.appliedSeq
		c.mu.Unlock()
		c.log.Debug(ctx, "discarding stale session result", "seq", seq, "applied_seq", stale)
		return
	}
	c.appliedSeq = seq
	c.state = state
	c.user = user
	c.checking = false
	snap := Snapshot{State: c.state, User: c.user, Checking: c.checking}
	subs := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	c.readyOnce.Do(func() { close(c.ready) })

	c.log.Info(ctx, "session transition", "state", string(state), "seq", seq)
	for _, fn := range subs {
		fn(snap)
	}
}
