package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// UserService implements admin account listing and removal.
type UserService struct {
	repo      ports.UserRepository
	publisher ports.ChangePublisher
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, publisher ports.ChangePublisher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, publisher: publisher, logger: logger}
}

func (s *UserService) List(ctx context.Context, role string) ([]domain.User, error) {
	return s.repo.List(ctx, role)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	event := ports.ChangeEvent{Table: ports.TableUsers, Kind: ports.ChangeDelete, ID: id}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("change event publish failed")
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
