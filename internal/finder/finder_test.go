package finder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/manseebhossain1/github-repository-finder/internal/service/search"
)

type stubService struct {
	fn func(ctx context.Context, language string) (*search.Repository, error)
}

func (s *stubService) FindRandomRepository(ctx context.Context, language string) (*search.Repository, error) {
	return s.fn(ctx, language)
}

func waitSettled(t *testing.T, cy *Cycle) {
	t.Helper()
	select {
	case <-cy.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("cycle did not settle in time")
	}
}

func TestFindPopulates(t *testing.T) {
	repo := &search.Repository{FullName: "gin-gonic/gin", Language: "Go"}
	svc := &stubService{fn: func(_ context.Context, _ string) (*search.Repository, error) {
		return repo, nil
	}}

	c := New(svc)
	if c.Snapshot().State != StateIdle {
		t.Fatalf("expected initial state idle, got %s", c.Snapshot().State)
	}

	cy := c.Find(context.Background(), "Go")
	waitSettled(t, cy)

	snap := c.Snapshot()
	if snap.State != StatePopulated {
		t.Fatalf("expected populated, got %s", snap.State)
	}
	if snap.Repo != repo {
		t.Errorf("expected the fetched repository in snapshot")
	}
	if snap.Busy() {
		t.Error("expected controls re-enabled after settlement")
	}
}

func TestFindEmpty(t *testing.T) {
	svc := &stubService{fn: func(_ context.Context, _ string) (*search.Repository, error) {
		return nil, nil
	}}

	c := New(svc)
	cy := c.Find(context.Background(), "Brainfuck")
	waitSettled(t, cy)

	snap := c.Snapshot()
	if snap.State != StateEmpty {
		t.Fatalf("expected empty, got %s", snap.State)
	}
	want := `No repositories found for "Brainfuck". Try another language.`
	if snap.Message != want {
		t.Errorf("expected %q, got %q", want, snap.Message)
	}
}

func TestFindErroredUsesNormalizedMessage(t *testing.T) {
	svc := &stubService{fn: func(_ context.Context, _ string) (*search.Repository, error) {
		return nil, &search.UpstreamError{
			Kind:    search.UpstreamErrorKindUpstream,
			Status:  502,
			Message: "Request failed (502)",
		}
	}}

	c := New(svc)
	cy := c.Find(context.Background(), "Go")
	waitSettled(t, cy)

	snap := c.Snapshot()
	if snap.State != StateErrored {
		t.Fatalf("expected errored, got %s", snap.State)
	}
	if snap.Message != "Error: Request failed (502)" {
		t.Errorf("unexpected message %q", snap.Message)
	}
}

func TestLoadingWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	svc := &stubService{fn: func(ctx context.Context, _ string) (*search.Repository, error) {
		select {
		case <-release:
			return &search.Repository{FullName: "acme/slow"}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}}

	c := New(svc)
	cy := c.Find(context.Background(), "Go")

	snap := c.Snapshot()
	if snap.State != StateLoading {
		t.Fatalf("expected loading while in flight, got %s", snap.State)
	}
	if !snap.Busy() {
		t.Error("expected controls disabled while loading")
	}

	close(release)
	waitSettled(t, cy)
	if c.Snapshot().State != StatePopulated {
		t.Fatalf("expected populated after release, got %s", c.Snapshot().State)
	}
}

func TestSupersededCycleOutcomeDropped(t *testing.T) {
	// Cycle A blocks until released; cycle B settles first. A's late success
	// must never overwrite B's outcome.
	releaseA := make(chan struct{})
	repoA := &search.Repository{FullName: "acme/stale"}
	repoB := &search.Repository{FullName: "acme/fresh"}

	svc := &stubService{fn: func(_ context.Context, language string) (*search.Repository, error) {
		if language == "Go" {
			// Ignore cancellation deliberately: even a cycle whose transport
			// was not aborted must have its outcome discarded.
			<-releaseA
			return repoA, nil
		}
		return repoB, nil
	}}

	c := New(svc)
	cyA := c.Find(context.Background(), "Go")
	cyB := c.Find(context.Background(), "Rust")

	waitSettled(t, cyB)
	if got := c.Snapshot().Repo; got != repoB {
		t.Fatalf("expected B's repository after B settled, got %+v", got)
	}

	close(releaseA)
	waitSettled(t, cyA)

	snap := c.Snapshot()
	if snap.State != StatePopulated || snap.Repo != repoB {
		t.Fatalf("stale cycle mutated state: %+v", snap)
	}
	if snap.Language != "Rust" {
		t.Errorf("expected language Rust, got %s", snap.Language)
	}
}

func TestSupersededCycleErrorDropped(t *testing.T) {
	releaseA := make(chan struct{})
	svc := &stubService{fn: func(_ context.Context, language string) (*search.Repository, error) {
		if language == "Go" {
			<-releaseA
			return nil, errors.New("stale failure")
		}
		return &search.Repository{FullName: "acme/fresh"}, nil
	}}

	c := New(svc)
	cyA := c.Find(context.Background(), "Go")
	cyB := c.Find(context.Background(), "Rust")
	waitSettled(t, cyB)

	close(releaseA)
	waitSettled(t, cyA)

	if snap := c.Snapshot(); snap.State != StatePopulated {
		t.Fatalf("stale error surfaced: %+v", snap)
	}
}

func TestSupersedeCancelsPriorContext(t *testing.T) {
	canceled := make(chan struct{})
	svc := &stubService{fn: func(ctx context.Context, language string) (*search.Repository, error) {
		if language == "Go" {
			<-ctx.Done()
			close(canceled)
			return nil, ctx.Err()
		}
		return nil, nil
	}}

	c := New(svc)
	cyA := c.Find(context.Background(), "Go")
	c.Find(context.Background(), "Rust")

	select {
	case <-canceled:
	case <-time.After(5 * time.Second):
		t.Fatal("prior cycle context was not canceled")
	}
	waitSettled(t, cyA)
}

func TestCanceledActiveCycleLeavesStateUntouched(t *testing.T) {
	svc := &stubService{fn: func(ctx context.Context, _ string) (*search.Repository, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}

	ctx, cancel := context.WithCancel(context.Background())
	c := New(svc)
	cy := c.Find(ctx, "Go")
	cancel()
	waitSettled(t, cy)

	// Cancellation is not a user-visible error: no transition to errored.
	if snap := c.Snapshot(); snap.State != StateLoading {
		t.Fatalf("expected loading preserved on cancellation, got %s", snap.State)
	}
}

func TestNotifyObservesTransitions(t *testing.T) {
	var states []State
	svc := &stubService{fn: func(_ context.Context, _ string) (*search.Repository, error) {
		return &search.Repository{FullName: "acme/ok"}, nil
	}}

	c := New(svc, WithNotify(func(s Snapshot) {
		states = append(states, s.State)
	}))

	cy := c.Find(context.Background(), "Go")
	waitSettled(t, cy)

	if len(states) != 2 || states[0] != StateLoading || states[1] != StatePopulated {
		t.Fatalf("expected [loading populated], got %v", states)
	}
}
