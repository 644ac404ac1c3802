package service

import (
	"context"
	"testing"

	"github.com/jobdesk/intake/internal/intake/store"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	db := newTestStore(t)
	users := &UserService{Store: db}

	u, err := users.Register(ctx, Registration{
		Username: "alice",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "a strong password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.False(t, u.Admin)
	require.NotEqual(t, "a strong password", u.PasswordHash)

	stored, err := users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", stored.Username)
	require.False(t, stored.Admin)

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := users.Register(ctx, Registration{
			Username: "alice",
			Name:     "Other Alice",
			Email:    "other@example.com",
			Password: "another password",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("username taken check", func(t *testing.T) {
		taken, err := users.UsernameTaken(ctx, "alice")
		require.NoError(t, err)
		require.True(t, taken)

		taken, err = users.UsernameTaken(ctx, "bob")
		require.NoError(t, err)
		require.False(t, taken)
	})
}

func TestReplaceAdmins(t *testing.T) {
	ctx := context.Background()

	db := newTestStore(t)
	users := &UserService{Store: db}

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := users.Register(ctx, Registration{
			Username: name,
			Name:     name,
			Email:    name + "@example.com",
			Password: "a strong password",
		})
		require.NoError(t, err)
	}

	t.Run("grants the requested set", func(t *testing.T) {
		require.NoError(t, users.ReplaceAdmins(ctx, []string{"alice", "carol"}))

		admins, err := users.AdminUsernames(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"alice", "carol"}, admins)
	})

	t.Run("replaces rather than accumulates", func(t *testing.T) {
		require.NoError(t, users.ReplaceAdmins(ctx, []string{"bob"}))

		admins, err := users.AdminUsernames(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"bob"}, admins)
	})

	t.Run("unknown username rolls back the whole set", func(t *testing.T) {
		require.NoError(t, users.ReplaceAdmins(ctx, []string{"carol"}))

		err := users.ReplaceAdmins(ctx, []string{"alice", "nobody"})
		require.ErrorIs(t, err, store.ErrNotFound)

		// carol keeps admin; alice gained nothing
		admins, err := users.AdminUsernames(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"carol"}, admins)
	})

	t.Run("empty set revokes everyone", func(t *testing.T) {
		require.NoError(t, users.ReplaceAdmins(ctx, nil))

		admins, err := users.AdminUsernames(ctx)
		require.NoError(t, err)
		require.Empty(t, admins)
	})
}
