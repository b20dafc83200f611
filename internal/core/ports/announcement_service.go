package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// AnnouncementInput carries the fields set when posting an announcement.
type AnnouncementInput struct {
	Message string
	Level   string // empty = broadcast
}

// AnnouncementService posts, edits, and lists announcements.
type AnnouncementService interface {
	Create(ctx context.Context, poster Identity, input AnnouncementInput) (*domain.Announcement, error)
	Update(ctx context.Context, id string, input AnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Announcement, error)
	// ListForLevel returns what a student of the given level should see.
	ListForLevel(ctx context.Context, level string) ([]domain.Announcement, error)
}
