package ports

import (
	"context"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
	// Level is required for students and ignored for other roles.
	Level string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login validates credentials and returns a signed token plus the account.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
