package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// LiveSync keeps one viewer's agenda snapshot consistent with server-side
// mutations. It subscribes to the timetable and announcements change feeds
// and reacts to any event with a full re-fetch and rebuild, never an
// incremental merge. The dataset is one cohort's weekly schedule, so the
// redundant round-trip is cheaper than merge bugs.
//
// A LiveSync instance belongs to exactly one viewer (one identity) and is
// torn down with Close or by cancelling the Start context.
type LiveSync struct {
	identity ports.Identity
	feed     ports.ChangeFeed
	agenda   ports.AgendaService
	logger   zerolog.Logger

	mu       sync.RWMutex
	level    string
	snapshot ports.AgendaResult
	degraded bool
	seq      uint64 // latest issued fetch sequence

	ctx       context.Context
	cancel    context.CancelFunc
	events    chan ports.ChangeEvent
	updates   chan ports.AgendaResult
	subs      []ports.Subscription
	closeOnce sync.Once
}

// NewLiveSync builds a controller for the given viewer. The identity is
// passed explicitly; the controller never reads ambient session state.
func NewLiveSync(identity ports.Identity, feed ports.ChangeFeed, agenda ports.AgendaService, logger zerolog.Logger) *LiveSync {
	return &LiveSync{
		identity: identity,
		feed:     feed,
		agenda:   agenda,
		logger:   logger,
		level:    identity.Level,
		events:   make(chan ports.ChangeEvent, 16),
		updates:  make(chan ports.AgendaResult, 1),
	}
}

// Start opens both change subscriptions, issues the initial fetch, and runs
// the resync loop until ctx is cancelled or Close is called.
//
// A failed subscription degrades the controller to fetch-once mode rather
// than failing Start. A failed initial fetch leaves an empty snapshot but
// keeps the subscriptions open, so a later change event can still recover.
func (s *LiveSync) Start(ctx context.Context) {
	s.ctx, s.cancel = context.WithCancel(ctx)

	for _, table := range []string{ports.TableTimetable, ports.TableAnnouncements} {
		sub, err := s.feed.Subscribe(s.ctx, table)
		if err != nil {
			s.logger.Warn().Err(err).Str("table", table).Msg("change subscription failed, continuing without live updates")
			continue
		}
		s.subs = append(s.subs, sub)
		go s.forward(sub)
	}

	s.resync()
	go s.loop()
}

// Snapshot returns the current agenda. The boolean reports whether the
// controller is degraded (last fetch failed and no later fetch succeeded).
func (s *LiveSync) Snapshot() (ports.AgendaResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.degraded
}

// Updates delivers a fresh snapshot after every successful rebuild. The
// channel holds at most one pending snapshot; an unread one is replaced, so
// a slow consumer always sees the latest state rather than a backlog.
func (s *LiveSync) Updates() <-chan ports.AgendaResult {
	return s.updates
}

// SetLevel re-derives the query filter for a changed level claim and forces
// an immediate resync.
func (s *LiveSync) SetLevel(level string) {
	s.mu.Lock()
	changed := s.level != level
	s.level = level
	s.mu.Unlock()
	if changed {
		s.resync()
	}
}

// Close tears the controller down: both subscriptions are closed and no
// in-flight fetch may mutate state afterwards. Safe to call more than once.
func (s *LiveSync) Close() {
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		for _, sub := range s.subs {
			if err := sub.Close(); err != nil {
				s.logger.Warn().Err(err).Msg("closing change subscription")
			}
		}
		// Bump the sequence so any fetch still in flight is discarded.
		s.mu.Lock()
		s.seq++
		s.mu.Unlock()
	})
}

func (s *LiveSync) forward(sub ports.Subscription) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			select {
			case s.events <- ev:
			case <-s.ctx.Done():
				return
			}
		}
	}
}

func (s *LiveSync) loop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case ev := <-s.events:
			s.logger.Debug().Str("table", ev.Table).Str("kind", string(ev.Kind)).Msg("change event, resyncing")
			s.resync()
		}
	}
}

// resync issues a sequence-tagged full fetch. Responses whose sequence is no
// longer the latest issued are discarded, so overlapping fetches resolve
// last-fetch-wins regardless of arrival order.
func (s *LiveSync) resync() {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	level := s.level
	s.mu.Unlock()

	result, err := s.agenda.WeeklyAgenda(s.ctx, level)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return // a newer fetch was issued while this one was in flight
	}
	if err != nil {
		s.logger.Error().Err(err).Str("level", level).Msg("resync failed, keeping degraded snapshot")
		s.snapshot = ports.AgendaResult{Level: level}
		s.degraded = true
		return
	}
	s.snapshot = *result
	s.degraded = false
	s.publish(*result)
}

// publish offers the snapshot to the updates channel, replacing any unread
// previous one.
func (s *LiveSync) publish(result ports.AgendaResult) {
	for {
		select {
		case s.updates <- result:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}
