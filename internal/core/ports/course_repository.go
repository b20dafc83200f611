package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// CourseRepository defines persistence for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	// List returns all courses with the lecturer embedded where assigned.
	List(ctx context.Context) ([]domain.Course, error)
	Update(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}
