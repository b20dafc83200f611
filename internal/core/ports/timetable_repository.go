package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// TimetableRepository defines persistence for scheduled classes.
type TimetableRepository interface {
	Create(ctx context.Context, entry *domain.TimetableEntry) (*domain.TimetableEntry, error)
	FindByID(ctx context.Context, id string) (*domain.TimetableEntry, error)
	// FindByLevel returns the entries for one cohort with the course and its
	// lecturer embedded. This is the student agenda query.
	FindByLevel(ctx context.Context, level string) ([]domain.TimetableEntry, error)
	// List returns all entries with courses embedded (admin view).
	List(ctx context.Context) ([]domain.TimetableEntry, error)
	Update(ctx context.Context, entry *domain.TimetableEntry) (*domain.TimetableEntry, error)
	Delete(ctx context.Context, id string) error
}
