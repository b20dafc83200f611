package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Fake change feed with an open-handle counter
// ---------------------------------------------------------------------------

type fakeFeed struct {
	mu   sync.Mutex
	subs map[string]*fakeSub
	open int
	err  error
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{subs: make(map[string]*fakeSub)}
}

func (f *fakeFeed) Subscribe(_ context.Context, table string) (ports.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	sub := &fakeSub{feed: f, events: make(chan ports.ChangeEvent, 8)}
	f.subs[table] = sub
	f.open++
	return sub, nil
}

func (f *fakeFeed) openHandles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *fakeFeed) emit(table string, ev ports.ChangeEvent) {
	f.mu.Lock()
	sub := f.subs[table]
	f.mu.Unlock()
	sub.events <- ev
}

type fakeSub struct {
	feed   *fakeFeed
	events chan ports.ChangeEvent
	once   sync.Once
}

func (s *fakeSub) Events() <-chan ports.ChangeEvent { return s.events }

func (s *fakeSub) Close() error {
	s.once.Do(func() {
		s.feed.mu.Lock()
		s.feed.open--
		s.feed.mu.Unlock()
		close(s.events)
	})
	return nil
}

// ---------------------------------------------------------------------------
// Fake agenda service with per-level gates for in-flight fetches
// ---------------------------------------------------------------------------

type fakeAgenda struct {
	mu    sync.Mutex
	calls int
	err   error
	gates map[string]chan struct{}
}

func newFakeAgenda() *fakeAgenda {
	return &fakeAgenda{gates: make(map[string]chan struct{})}
}

func (a *fakeAgenda) WeeklyAgenda(_ context.Context, level string) (*ports.AgendaResult, error) {
	a.mu.Lock()
	a.calls++
	gate := a.gates[level]
	err := a.err
	a.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &ports.AgendaResult{
		Level: level,
		Days:  []ports.AgendaDay{{Day: "Monday"}},
	}, nil
}

func (a *fakeAgenda) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for: %s", msg)
}

func testIdentity() ports.Identity {
	return ports.Identity{
		ID:       "u1",
		Email:    "ama@example.edu",
		FullName: "Ama Owusu",
		Role:     "student",
		Level:    "100 ICT",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestLiveSync_InitialFetchAndSubscriptions(t *testing.T) {
	feed := newFakeFeed()
	agenda := newFakeAgenda()
	ctrl := NewLiveSync(testIdentity(), feed, agenda, discardLogger)

	ctrl.Start(context.Background())
	defer ctrl.Close()

	if got := feed.openHandles(); got != 2 {
		t.Errorf("open subscriptions = %d, want 2", got)
	}
	if got := agenda.callCount(); got != 1 {
		t.Errorf("initial fetch count = %d, want 1", got)
	}
	snap, degraded := ctrl.Snapshot()
	if degraded {
		t.Error("controller degraded after successful initial fetch")
	}
	if snap.Level != "100 ICT" || len(snap.Days) != 1 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestLiveSync_EventTriggersExactlyOneRefetch(t *testing.T) {
	feed := newFakeFeed()
	agenda := newFakeAgenda()
	ctrl := NewLiveSync(testIdentity(), feed, agenda, discardLogger)

	ctrl.Start(context.Background())
	defer ctrl.Close()

	feed.emit(ports.TableTimetable, ports.ChangeEvent{
		Table: ports.TableTimetable,
		Kind:  ports.ChangeInsert,
		ID:    "e1",
	})

	waitFor(t, func() bool { return agenda.callCount() == 2 }, "refetch after change event")

	// No further events means no further fetches.
	time.Sleep(50 * time.Millisecond)
	if got := agenda.callCount(); got != 2 {
		t.Errorf("fetch count = %d, want exactly 2", got)
	}
}

func TestLiveSync_BothTablesTriggerResync(t *testing.T) {
	feed := newFakeFeed()
	agenda := newFakeAgenda()
	ctrl := NewLiveSync(testIdentity(), feed, agenda, discardLogger)

	ctrl.Start(context.Background())
	defer ctrl.Close()

	feed.emit(ports.TableTimetable, ports.ChangeEvent{Table: ports.TableTimetable, Kind: ports.ChangeUpdate, ID: "e1"})
	waitFor(t, func() bool { return agenda.callCount() == 2 }, "resync from timetable change")

	feed.emit(ports.TableAnnouncements, ports.ChangeEvent{Table: ports.TableAnnouncements, Kind: ports.ChangeDelete, ID: "a1"})
	waitFor(t, func() bool { return agenda.callCount() == 3 }, "resync from announcements change")
}

func TestLiveSync_StaleFetchDiscarded(t *testing.T) {
	feed := newFakeFeed()
	agenda := newFakeAgenda()
	gate := make(chan struct{})
	agenda.gates["200 ICT"] = gate

	ctrl := NewLiveSync(testIdentity(), feed, agenda, discardLogger)
	ctrl.Start(context.Background())
	defer ctrl.Close()

	// The fetch for the first level change parks on the gate.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.SetLevel("200 ICT")
	}()
	waitFor(t, func() bool { return agenda.callCount() == 2 }, "gated fetch in flight")

	// A newer fetch completes while the first is still parked.
	ctrl.SetLevel("300 ICT")
	snap, _ := ctrl.Snapshot()
	if snap.Level != "300 ICT" {
		t.Fatalf("snapshot level = %q, want %q", snap.Level, "300 ICT")
	}

	// The stale response resolves and must not overwrite the newer snapshot.
	close(gate)
	wg.Wait()
	snap, _ = ctrl.Snapshot()
	if snap.Level != "300 ICT" {
		t.Errorf("stale fetch overwrote snapshot: level = %q", snap.Level)
	}
}

func TestLiveSync_FetchFailureDegradesButKeepsSubscriptions(t *testing.T) {
	feed := newFakeFeed()
	agenda := newFakeAgenda()
	agenda.err = errors.New("store offline")

	ctrl := NewLiveSync(testIdentity(), feed, agenda, discardLogger)
	ctrl.Start(context.Background())
	defer ctrl.Close()

	snap, degraded := ctrl.Snapshot()
	if !degraded {
		t.Error("expected degraded state after failed fetch")
	}
	if len(snap.Days) != 0 {
		t.Errorf("degraded snapshot must be empty, got %d days", len(snap.Days))
	}
	if got := feed.openHandles(); got != 2 {
		t.Errorf("subscriptions closed on fetch failure: open = %d, want 2", got)
	}

	// A later change event with a recovered store clears the degraded state.
	agenda.mu.Lock()
	agenda.err = nil
	agenda.mu.Unlock()
	feed.emit(ports.TableTimetable, ports.ChangeEvent{Table: ports.TableTimetable, Kind: ports.ChangeInsert, ID: "e9"})

	waitFor(t, func() bool {
		_, deg := ctrl.Snapshot()
		return !deg
	}, "recovery after change event")
	snap, _ = ctrl.Snapshot()
	if len(snap.Days) != 1 {
		t.Errorf("recovered snapshot has %d days, want 1", len(snap.Days))
	}
}

func TestLiveSync_CloseReleasesAllSubscriptions(t *testing.T) {
	feed := newFakeFeed()
	agenda := newFakeAgenda()
	ctrl := NewLiveSync(testIdentity(), feed, agenda, discardLogger)

	ctrl.Start(context.Background())
	if got := feed.openHandles(); got != 2 {
		t.Fatalf("open subscriptions = %d, want 2", got)
	}

	ctrl.Close()
	ctrl.Close() // idempotent

	if got := feed.openHandles(); got != 0 {
		t.Errorf("open subscriptions after Close = %d, want 0", got)
	}
}

func TestLiveSync_UpdatesKeepsOnlyLatest(t *testing.T) {
	feed := newFakeFeed()
	agenda := newFakeAgenda()
	ctrl := NewLiveSync(testIdentity(), feed, agenda, discardLogger)

	ctrl.Start(context.Background())
	defer ctrl.Close()

	// Nobody reads Updates while two more snapshots are published.
	ctrl.SetLevel("200 ICT")
	ctrl.SetLevel("300 ICT")

	select {
	case got := <-ctrl.Updates():
		if got.Level != "300 ICT" {
			t.Errorf("latest update level = %q, want %q", got.Level, "300 ICT")
		}
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}
}

func TestLiveSync_SubscribeFailureStillFetches(t *testing.T) {
	feed := newFakeFeed()
	feed.err = errors.New("broker unavailable")
	agenda := newFakeAgenda()
	ctrl := NewLiveSync(testIdentity(), feed, agenda, discardLogger)

	ctrl.Start(context.Background())
	defer ctrl.Close()

	if got := agenda.callCount(); got != 1 {
		t.Errorf("fetch count = %d, want 1", got)
	}
	snap, degraded := ctrl.Snapshot()
	if degraded || snap.Level != "100 ICT" {
		t.Errorf("snapshot = %+v degraded = %v", snap, degraded)
	}
}

var (
	_ ports.ChangeFeed    = (*fakeFeed)(nil)
	_ ports.AgendaService = (*fakeAgenda)(nil)
)
