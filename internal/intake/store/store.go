package store

import (
	"context"
	"errors"

	"github.com/jobdesk/intake/internal/intake/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. It exposes sub-repositories to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Applications() Applications

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., replacing
	// the admin set). The caller MUST call Commit() or Rollback() on the
	// returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id. Used when deserializing a session.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UsernameExists reports whether a user row holds the username.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// ListUsers returns all users ordered by id (creation order).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListAdminUsernames returns the usernames currently flagged admin.
	ListAdminUsernames(ctx context.Context) ([]string, error)

	// RevokeAllAdmins clears the admin flag on every user in one statement.
	RevokeAllAdmins(ctx context.Context) error

	// GrantAdmin sets the admin flag for one username. Returns ErrNotFound
	// when no user holds that username.
	GrantAdmin(ctx context.Context, username string) error
}

type Applications interface {
	// CreateApplication inserts a new application row.
	CreateApplication(ctx context.Context, a domain.Application) error

	// GetApplicationByID returns one application.
	GetApplicationByID(ctx context.Context, id string) (domain.Application, error)

	// ListApplications returns all applications ordered by id.
	ListApplications(ctx context.Context) ([]domain.Application, error)

	// MarkApplicationProcessed sets processed=true and stamps updated.
	// Returns ErrNotFound when the row does not exist.
	MarkApplicationProcessed(ctx context.Context, id string) error

	// DeleteApplication removes a row. Returns ErrNotFound when absent.
	DeleteApplication(ctx context.Context, id string) error
}
