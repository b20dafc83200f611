package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// AgendaService builds the student weekly agenda from the timetable store.
type AgendaService struct {
	repo   ports.TimetableRepository
	logger zerolog.Logger
}

func NewAgendaService(repo ports.TimetableRepository, logger zerolog.Logger) *AgendaService {
	return &AgendaService{repo: repo, logger: logger}
}

// WeeklyAgenda fetches the entries for one level and runs the view-model
// transform: group by weekday, sort by start time, format for display.
func (s *AgendaService) WeeklyAgenda(ctx context.Context, level string) (*ports.AgendaResult, error) {
	entries, err := s.repo.FindByLevel(ctx, level)
	if err != nil {
		s.logger.Error().Err(err).Str("level", level).Msg("timetable fetch failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	result := &ports.AgendaResult{Level: level}
	for _, day := range domain.GroupByDay(entries) {
		agendaDay := ports.AgendaDay{Day: day.Day}
		for _, e := range day.Entries {
			timeRange, err := domain.FormatTimeRange(e.StartTime, e.EndTime)
			if err != nil {
				// A malformed stored time is a data corruption problem; fail
				// loudly rather than render a garbled agenda.
				s.logger.Error().Err(err).Str("entry_id", e.ID).Msg("malformed time value in store")
				return nil, err
			}
			class := ports.AgendaClass{
				ID:           e.ID,
				StartTime:    e.StartTime,
				EndTime:      e.EndTime,
				TimeRange:    timeRange,
				Room:         e.Room,
				LecturerName: e.LecturerName(),
			}
			if e.Course != nil {
				class.CourseCode = e.Course.CourseCode
				class.CourseTitle = e.Course.CourseTitle
			}
			agendaDay.Classes = append(agendaDay.Classes, class)
		}
		result.Days = append(result.Days, agendaDay)
	}

	return result, nil
}
