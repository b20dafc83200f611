package ports

import "context"

// Watched tables exposed through the change feed.
const (
	TableTimetable     = "timetable"
	TableAnnouncements = "announcements"
	TableCourses       = "courses"
	TableUsers         = "users"
)

// ChangeKind is the mutation type carried by a change event.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// ChangeEvent notifies that a row in Table was mutated. Subscribers are
// coarse by design: any event on a watched table triggers the same reaction
// (a full resync), so ID is informational only.
type ChangeEvent struct {
	Table string     `json:"table"`
	Kind  ChangeKind `json:"kind"`
	ID    string     `json:"id,omitempty"`
}

// Subscription is an open change-feed listener for a single table.
// Close must be called on every exit path once the subscription is no longer
// needed; the Events channel is closed on teardown.
type Subscription interface {
	Events() <-chan ChangeEvent
	Close() error
}

// ChangeFeed delivers mutation notifications for watched tables.
type ChangeFeed interface {
	// Subscribe opens a listener for every event kind on table, with no
	// row-level filtering.
	Subscribe(ctx context.Context, table string) (Subscription, error)
}

// ChangePublisher emits change events after successful mutations.
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}
