package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// AnnouncementRepository defines persistence for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	// List returns announcements newest first, author embedded where present.
	List(ctx context.Context) ([]domain.Announcement, error)
	// ListForLevel returns announcements targeting the level plus broadcasts,
	// newest first.
	ListForLevel(ctx context.Context, level string) ([]domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}
