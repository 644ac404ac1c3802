package service

import (
	"context"
	"fmt"

	"github.com/jobdesk/intake/internal/intake/domain"
	"github.com/jobdesk/intake/internal/intake/store"
	"github.com/jobdesk/intake/pkg/cryptox"
	"github.com/jobdesk/intake/pkg/idx"
)

type UserService struct {
	Store store.Store
}

// Registration carries the sanitized fields of an accepted registration form.
type Registration struct {
	Username string
	Name     string
	Email    string
	Password string // plaintext, hashed before it reaches the store
}

// Register hashes the password and inserts the user. The store returns
// ErrAlreadyExists if the username was taken between the form's uniqueness
// check and the insert.
func (s *UserService) Register(ctx context.Context, reg Registration) (domain.User, error) {
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     reg.Username,
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
		Admin:        false,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// GetUserByID fetches a user by id. Used on every request that needs the
// session's identity.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UsernameTaken reports whether a username is already registered.
func (s *UserService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.Store.Users().UsernameExists(ctx, username)
}

// List returns all users in creation order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// AdminUsernames returns the usernames currently holding the admin flag.
func (s *UserService) AdminUsernames(ctx context.Context) ([]string, error) {
	return s.Store.Users().ListAdminUsernames(ctx)
}

// ReplaceAdmins makes usernames the complete admin set: every current admin
// is revoked, then each requested username is granted, all inside one
// transaction. If any grant fails (including an unknown username) the whole
// operation rolls back and the previous admin set survives.
func (s *UserService) ReplaceAdmins(ctx context.Context, usernames []string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().RevokeAllAdmins(ctx); err != nil {
			return fmt.Errorf("revoke admins: %w", err)
		}

		for _, username := range usernames {
			if err := tx.Users().GrantAdmin(ctx, username); err != nil {
				return fmt.Errorf("grant admin to %q: %w", username, err)
			}
		}
		return nil
	})
}
