package service

import (
	"context"
	"testing"

	"github.com/jobdesk/intake/internal/intake/store"

	"github.com/stretchr/testify/require"
)

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()

	db := newTestStore(t)
	apps := &ApplicationService{Store: db}

	a, err := apps.Submit(ctx, Submission{
		Username: "dave",
		Name:     "Dave",
		Email:    "dave@example.com",
		Password: "a strong password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.False(t, a.Admin)
	require.False(t, a.Processed)
	require.NotEqual(t, "a strong password", a.PasswordHash)

	list, err := apps.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "dave", list[0].Username)
	require.False(t, list[0].Processed)
	require.Nil(t, list[0].Updated)
}

func TestMarkProcessed(t *testing.T) {
	ctx := context.Background()

	db := newTestStore(t)
	apps := &ApplicationService{Store: db}

	a, err := apps.Submit(ctx, Submission{
		Username: "erin",
		Name:     "Erin",
		Email:    "erin@example.com",
		Password: "a strong password",
	})
	require.NoError(t, err)

	require.NoError(t, apps.MarkProcessed(ctx, a.ID))

	list, err := apps.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].Processed)
	require.NotNil(t, list[0].Updated)

	t.Run("unknown id is not found", func(t *testing.T) {
		err := apps.MarkProcessed(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteApplication(t *testing.T) {
	ctx := context.Background()

	db := newTestStore(t)
	apps := &ApplicationService{Store: db}

	a, err := apps.Submit(ctx, Submission{
		Username: "frank",
		Name:     "Frank",
		Email:    "frank@example.com",
		Password: "a strong password",
	})
	require.NoError(t, err)

	require.NoError(t, apps.Delete(ctx, a.ID))

	list, err := apps.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	t.Run("deleting twice is not found", func(t *testing.T) {
		err := apps.Delete(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
