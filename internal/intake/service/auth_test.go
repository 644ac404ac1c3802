package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	db := newTestStore(t)
	users := &UserService{Store: db}
	auth := &AuthService{Store: db}

	registered, err := users.Register(ctx, Registration{
		Username: "alice",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	t.Run("valid credentials return the user", func(t *testing.T) {
		u, err := auth.Authenticate(ctx, "alice", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)
		require.Equal(t, "alice", u.Username)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "alice", "wrong password!")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username fails with the same error", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "nobody", "correct horse battery")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials fail", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
