// Package finder orchestrates fetch cycles and the visible UI state. One
// cycle at a time is active; starting a new one supersedes and cancels the
// previous so a stale result can never overwrite a fresh one.
package finder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	applog "github.com/manseebhossain1/github-repository-finder/internal/platform/logging"
	"github.com/manseebhossain1/github-repository-finder/internal/service/search"
)

// State is the visible UI state. Exactly one holds at a time.
type State string

const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StatePopulated State = "populated"
	StateEmpty     State = "empty"
	StateErrored   State = "errored"
)

// Snapshot is an immutable view of the controller state. Repo is set only
// for StatePopulated; Message only for StateEmpty and StateErrored.
type Snapshot struct {
	State    State
	Language string
	Repo     *search.Repository
	Message  string
}

// Busy reports whether input controls should be disabled.
func (s Snapshot) Busy() bool {
	return s.State == StateLoading
}

// Cycle is one in-flight fetch. It owns the cancellation token for its
// requests.
type Cycle struct {
	language string
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// Language returns the language this cycle was started for.
func (cy *Cycle) Language() string {
	return cy.language
}

// Done is closed once the cycle has settled, whether or not its outcome was
// applied.
func (cy *Cycle) Done() <-chan struct{} {
	return cy.done
}

// Controller drives fetch cycles against a search service. The zero value is
// not usable; construct with New.
type Controller struct {
	svc    search.Service
	notify func(Snapshot)

	mu     sync.Mutex
	active *Cycle
	snap   Snapshot
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotify registers a callback invoked on every state transition. The
// callback runs with the controller lock held and must not call back into
// the controller.
func WithNotify(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.notify = fn
	}
}

// New creates a controller in the Idle state.
func New(svc search.Service, opts ...Option) *Controller {
	c := &Controller{
		svc:  svc,
		snap: Snapshot{State: StateIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current visible state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Find starts a new fetch cycle for language. Any prior in-flight cycle is
// canceled and its eventual outcome discarded.
func (c *Controller) Find(ctx context.Context, language string) *Cycle {
	cycleCtx, cancel := context.WithCancel(ctx)
	cy := &Cycle{
		language: language,
		ctx:      cycleCtx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	c.mu.Lock()
	if c.active != nil {
		c.active.cancel()
	}
	c.active = cy
	c.transitionLocked(Snapshot{State: StateLoading, Language: language})
	c.mu.Unlock()

	go c.run(cy)
	return cy
}

func (c *Controller) run(cy *Cycle) {
	defer close(cy.done)
	defer cy.cancel()

	repo, err := c.svc.FindRandomRepository(cy.ctx, cy.language)
	c.settle(cy, repo, err)
}

// settle applies a cycle's outcome. Only the cycle that is still active may
// mutate state; superseded and canceled cycles drop their outcome silently,
// which also keeps a stale cycle's cleanup from re-enabling controls while a
// newer cycle is mid-flight.
func (c *Controller) settle(cy *Cycle, repo *search.Repository, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != cy {
		applog.LogInfo(cy.ctx, "superseded cycle settled, outcome dropped",
			zap.String("language", cy.language),
		)
		return
	}

	switch {
	case err != nil && errors.Is(err, context.Canceled):
		return
	case err != nil:
		c.transitionLocked(Snapshot{
			State:    StateErrored,
			Language: cy.language,
			Message:  "Error: " + presentableMessage(err),
		})
	case repo == nil:
		c.transitionLocked(Snapshot{
			State:    StateEmpty,
			Language: cy.language,
			Message:  EmptyMessage(cy.language),
		})
	default:
		c.transitionLocked(Snapshot{
			State:    StatePopulated,
			Language: cy.language,
			Repo:     repo,
		})
	}
}

func (c *Controller) transitionLocked(snap Snapshot) {
	c.snap = snap
	if c.notify != nil {
		c.notify(snap)
	}
}

// EmptyMessage is the user-visible message for a query that matched nothing.
func EmptyMessage(language string) string {
	return fmt.Sprintf("No repositories found for %q. Try another language.", language)
}

// presentableMessage prefers the normalized upstream message over raw error
// chains.
func presentableMessage(err error) string {
	var upstreamErr *search.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Message
	}
	return err.Error()
}
