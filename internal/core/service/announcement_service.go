package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// AnnouncementService posts, edits, and lists announcements. Mutations are
// published to the change feed so student views resync.
type AnnouncementService struct {
	repo      ports.AnnouncementRepository
	publisher ports.ChangePublisher
	logger    zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, publisher ports.ChangePublisher, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, publisher: publisher, logger: logger}
}

func (s *AnnouncementService) Create(ctx context.Context, poster ports.Identity, input ports.AnnouncementInput) (*domain.Announcement, error) {
	created, err := s.repo.Create(ctx, &domain.Announcement{
		Message:  input.Message,
		Level:    input.Level,
		PostedBy: poster.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	s.notify(ctx, ports.ChangeInsert, created.ID)
	s.logger.Info().Str("announcement_id", created.ID).Str("level", created.Level).Msg("announcement posted")
	return created, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id string, input ports.AnnouncementInput) (*domain.Announcement, error) {
	updated, err := s.repo.Update(ctx, &domain.Announcement{
		ID:      id,
		Message: input.Message,
		Level:   input.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}

	s.notify(ctx, ports.ChangeUpdate, id)
	return updated, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, ports.ChangeDelete, id)
	return nil
}

func (s *AnnouncementService) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.repo.List(ctx)
}

func (s *AnnouncementService) ListForLevel(ctx context.Context, level string) ([]domain.Announcement, error) {
	return s.repo.ListForLevel(ctx, level)
}

func (s *AnnouncementService) notify(ctx context.Context, kind ports.ChangeKind, id string) {
	event := ports.ChangeEvent{Table: ports.TableAnnouncements, Kind: kind, ID: id}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("announcement_id", id).Msg("change event publish failed")
	}
}
