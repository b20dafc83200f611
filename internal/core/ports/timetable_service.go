package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// EntryInput carries the fields an administrator sets on a scheduled class.
// The entry's level is not part of the input: it is stamped from the course.
type EntryInput struct {
	CourseID  string
	DayOfWeek string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM", must be after StartTime
	Room      string
}

// TimetableService is the admin CRUD surface for scheduled classes.
type TimetableService interface {
	Create(ctx context.Context, input EntryInput) (*domain.TimetableEntry, error)
	Update(ctx context.Context, id string, input EntryInput) (*domain.TimetableEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.TimetableEntry, error)
}
