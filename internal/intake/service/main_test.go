package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jobdesk/intake/internal/intake/store"
	"github.com/jobdesk/intake/internal/intake/store/drivers/sqlite"
	"github.com/jobdesk/intake/pkg/cryptox"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper file so tests never touch a real one
	pepperPath := filepath.Join(os.TempDir(), "intake-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}
