package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// TimetableService implements admin CRUD for scheduled classes. The entry's
// level is always stamped from its course, making the entry the single
// source of truth for level filtering on reads.
type TimetableService struct {
	repo      ports.TimetableRepository
	courses   ports.CourseRepository
	publisher ports.ChangePublisher
	logger    zerolog.Logger
}

func NewTimetableService(repo ports.TimetableRepository, courses ports.CourseRepository, publisher ports.ChangePublisher, logger zerolog.Logger) *TimetableService {
	return &TimetableService{repo: repo, courses: courses, publisher: publisher, logger: logger}
}

func (s *TimetableService) Create(ctx context.Context, input ports.EntryInput) (*domain.TimetableEntry, error) {
	course, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.Create(ctx, &domain.TimetableEntry{
		CourseID:  input.CourseID,
		DayOfWeek: input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Room:      input.Room,
		Level:     course.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("create timetable entry: %w", err)
	}

	s.notify(ctx, ports.ChangeInsert, entry.ID)
	s.logger.Info().
		Str("entry_id", entry.ID).
		Str("day", entry.DayOfWeek).
		Str("level", entry.Level).
		Msg("timetable entry created")
	return entry, nil
}

func (s *TimetableService) Update(ctx context.Context, id string, input ports.EntryInput) (*domain.TimetableEntry, error) {
	course, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.CourseID = input.CourseID
	existing.DayOfWeek = input.DayOfWeek
	existing.StartTime = input.StartTime
	existing.EndTime = input.EndTime
	existing.Room = input.Room
	existing.Level = course.Level

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update timetable entry: %w", err)
	}

	s.notify(ctx, ports.ChangeUpdate, id)
	return updated, nil
}

func (s *TimetableService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, ports.ChangeDelete, id)
	return nil
}

func (s *TimetableService) List(ctx context.Context) ([]domain.TimetableEntry, error) {
	return s.repo.List(ctx)
}

// validate checks the weekday, the clock values, and the time ordering, and
// resolves the course so its level can be stamped onto the entry.
func (s *TimetableService) validate(ctx context.Context, input ports.EntryInput) (*domain.Course, error) {
	if !domain.ValidWeekday(input.DayOfWeek) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidWeekday, input.DayOfWeek)
	}
	for _, clock := range []string{input.StartTime, input.EndTime} {
		if _, err := domain.FormatClock(clock); err != nil {
			return nil, err
		}
	}
	if input.StartTime >= input.EndTime {
		return nil, fmt.Errorf("%w: %s >= %s", domain.ErrInvalidTimeRange, input.StartTime, input.EndTime)
	}
	return s.courses.FindByID(ctx, input.CourseID)
}

func (s *TimetableService) notify(ctx context.Context, kind ports.ChangeKind, id string) {
	event := ports.ChangeEvent{Table: ports.TableTimetable, Kind: kind, ID: id}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("entry_id", id).Msg("change event publish failed")
	}
}
