package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// CourseInput carries the fields an administrator sets on a course.
type CourseInput struct {
	CourseCode  string
	CourseTitle string
	Level       string
	LecturerID  string // optional
}

// CourseService is the admin CRUD surface for courses.
type CourseService interface {
	Create(ctx context.Context, input CourseInput) (*domain.Course, error)
	Update(ctx context.Context, id string, input CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Course, error)
}
