package service

import (
	"context"
	"errors"

	"github.com/jobdesk/intake/internal/intake/domain"
	"github.com/jobdesk/intake/internal/intake/store"
	"github.com/jobdesk/intake/pkg/cryptox"
)

// ErrInvalidCredentials is the single error for every failed login. It
// deliberately does not distinguish an unknown username from a wrong
// password.
var ErrInvalidCredentials = errors.New("service: invalid credentials")

type AuthService struct {
	Store store.Store
}

// Authenticate checks a username/password pair and returns the matching user.
// It fails closed: any lookup miss or hash mismatch yields
// ErrInvalidCredentials; only infrastructure failures surface as themselves.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		// A malformed stored hash also reads as a failed login rather than
		// leaking which part was wrong.
		return domain.User{}, ErrInvalidCredentials
	}

	return u, nil
}
