package service

import (
	"context"
	"fmt"

	"github.com/jobdesk/intake/internal/intake/domain"
	"github.com/jobdesk/intake/internal/intake/store"
	"github.com/jobdesk/intake/pkg/cryptox"
	"github.com/jobdesk/intake/pkg/idx"
)

type ApplicationService struct {
	Store store.Store
}

// Submission carries the sanitized fields of an accepted apply form.
type Submission struct {
	Username string
	Name     string
	Email    string
	Password string // plaintext, hashed before it reaches the store
}

// Submit stores a new application. The legacy admin column is always false:
// the intake form has no field that could set it.
func (s *ApplicationService) Submit(ctx context.Context, sub Submission) (domain.Application, error) {
	hash, err := cryptox.HashPassword(sub.Password)
	if err != nil {
		return domain.Application{}, fmt.Errorf("hash password: %w", err)
	}

	a := domain.Application{
		ID:           idx.New().String(),
		Username:     sub.Username,
		Name:         sub.Name,
		Email:        sub.Email,
		PasswordHash: hash,
		Admin:        false,
	}

	if err := s.Store.Applications().CreateApplication(ctx, a); err != nil {
		return domain.Application{}, err
	}
	return a, nil
}

// List returns all applications in submission order.
func (s *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	return s.Store.Applications().ListApplications(ctx)
}

// MarkProcessed flags one application as handled and stamps its updated time.
func (s *ApplicationService) MarkProcessed(ctx context.Context, id string) error {
	return s.Store.Applications().MarkApplicationProcessed(ctx, id)
}

// Delete removes one application.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.Store.Applications().DeleteApplication(ctx, id)
}
