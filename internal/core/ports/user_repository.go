package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// UserRepository defines persistence for portal accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns accounts newest first. When role is non-empty the result is
	// restricted to that role (used for the lecturer picker).
	List(ctx context.Context, role string) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
