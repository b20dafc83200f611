package domain

import (
	"errors"
	"time"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

// Announcement is a message posted by an administrator. An empty Level means
// the announcement is broadcast to every student regardless of cohort.
type Announcement struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Level     string    `json:"level,omitempty" bson:"level,omitempty"`
	PostedBy  string    `json:"posted_by,omitempty" bson:"posted_by,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// Author is populated only on read paths that embed the join.
	Author *User `json:"author,omitempty" bson:"author,omitempty"`
}

// VisibleTo reports whether the announcement targets the given level.
// Broadcast announcements (empty Level) are visible to everyone.
func (a *Announcement) VisibleTo(level string) bool {
	return a.Level == "" || a.Level == level
}
