package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// UserService is the admin account management surface. Account creation goes
// through AuthService.Register so the hashing rules live in one place.
type UserService interface {
	List(ctx context.Context, role string) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
