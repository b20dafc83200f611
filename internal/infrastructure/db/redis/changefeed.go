package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/api/metrics"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

const channelPrefix = "changes:"

// ChangeFeed implements the change-feed port on Redis pub/sub. Each watched
// table maps to one channel ("changes:<table>"); events are JSON payloads.
// Delivery is at-most-once, which is sufficient because subscribers react to
// every event with a full resync rather than applying deltas.
type ChangeFeed struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewChangeFeed(client *redis.Client, logger zerolog.Logger) *ChangeFeed {
	return &ChangeFeed{client: client, logger: logger}
}

// Publish emits a change event on the table's channel.
func (f *ChangeFeed) Publish(ctx context.Context, event ports.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	if err := f.client.Publish(ctx, channelPrefix+event.Table, payload).Err(); err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	metrics.ChangeEventsPublishedTotal.WithLabelValues(event.Table, string(event.Kind)).Inc()
	return nil
}

// Subscribe opens a listener for every event kind on table. The returned
// subscription must be closed by the caller; its Events channel is closed on
// teardown.
func (f *ChangeFeed) Subscribe(ctx context.Context, table string) (ports.Subscription, error) {
	pubsub := f.client.Subscribe(ctx, channelPrefix+table)

	// Force the SUBSCRIBE round-trip so a broken connection fails here
	// rather than silently delivering nothing.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", table, err)
	}

	sub := &subscription{
		pubsub: pubsub,
		events: make(chan ports.ChangeEvent, 16),
	}
	go sub.pump(f.logger, table)
	return sub, nil
}

type subscription struct {
	pubsub *redis.PubSub
	events chan ports.ChangeEvent
}

func (s *subscription) Events() <-chan ports.ChangeEvent {
	return s.events
}

func (s *subscription) Close() error {
	// Closing the PubSub closes its message channel, which ends pump.
	return s.pubsub.Close()
}

func (s *subscription) pump(logger zerolog.Logger, table string) {
	defer close(s.events)
	for msg := range s.pubsub.Channel() {
		var event ports.ChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			logger.Warn().Err(err).Str("table", table).Msg("dropping malformed change event")
			continue
		}
		metrics.SyncEventsTotal.WithLabelValues(table).Inc()
		s.events <- event
	}
}
