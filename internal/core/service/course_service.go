package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// CourseService implements admin CRUD for courses. Every successful mutation
// is published to the change feed.
type CourseService struct {
	repo      ports.CourseRepository
	users     ports.UserRepository
	publisher ports.ChangePublisher
	logger    zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, users ports.UserRepository, publisher ports.ChangePublisher, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, users: users, publisher: publisher, logger: logger}
}

func (s *CourseService) Create(ctx context.Context, input ports.CourseInput) (*domain.Course, error) {
	if err := s.checkLecturer(ctx, input.LecturerID); err != nil {
		return nil, err
	}

	course, err := s.repo.Create(ctx, &domain.Course{
		CourseCode:  input.CourseCode,
		CourseTitle: input.CourseTitle,
		Level:       input.Level,
		LecturerID:  input.LecturerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.notify(ctx, ports.ChangeInsert, course.ID)
	s.logger.Info().Str("course_id", course.ID).Str("code", course.CourseCode).Msg("course created")
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id string, input ports.CourseInput) (*domain.Course, error) {
	if err := s.checkLecturer(ctx, input.LecturerID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.CourseCode = input.CourseCode
	existing.CourseTitle = input.CourseTitle
	existing.Level = input.Level
	existing.LecturerID = input.LecturerID

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.notify(ctx, ports.ChangeUpdate, id)
	return updated, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, ports.ChangeDelete, id)
	return nil
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.repo.List(ctx)
}

// checkLecturer rejects a lecturer_id that does not point at a lecturer
// account. An empty id is fine: a course may be unassigned.
func (s *CourseService) checkLecturer(ctx context.Context, lecturerID string) error {
	if lecturerID == "" {
		return nil
	}
	user, err := s.users.FindByID(ctx, lecturerID)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleLecturer {
		return fmt.Errorf("%w: %s is not a lecturer", domain.ErrUserNotFound, lecturerID)
	}
	return nil
}

func (s *CourseService) notify(ctx context.Context, kind ports.ChangeKind, id string) {
	event := ports.ChangeEvent{Table: ports.TableCourses, Kind: kind, ID: id}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("course_id", id).Msg("change event publish failed")
	}
}
