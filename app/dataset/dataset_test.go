package dataset

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indyatra/travel-advisor/internal/api/advisor"
)

func TestEnsure(t *testing.T) {
	t.Run("SeedsMissingFiles", func(t *testing.T) {
		dir := t.TempDir()
		cities := filepath.Join(dir, "cities.csv")
		states := filepath.Join(dir, "states.csv")

		err := Ensure(cities, states, true, slog.Default())
		require.NoError(t, err)

		// The seeded files must load cleanly into a store.
		store, err := advisor.NewCSVStore(cities, states)
		require.NoError(t, err)

		_, ok := store.LookupCity("delhi")
		assert.True(t, ok)
		state, ok := store.LookupState("rajasthan")
		require.True(t, ok)
		assert.Equal(t, "Jaipur", state.Capital)
	})

	t.Run("KeepsExistingFiles", func(t *testing.T) {
		dir := t.TempDir()
		cities := filepath.Join(dir, "cities.csv")
		states := filepath.Join(dir, "states.csv")
		require.NoError(t, os.WriteFile(cities, []byte("custom"), 0o644))
		require.NoError(t, os.WriteFile(states, []byte("custom"), 0o644))

		err := Ensure(cities, states, true, slog.Default())
		require.NoError(t, err)

		data, err := os.ReadFile(cities)
		require.NoError(t, err)
		assert.Equal(t, "custom", string(data))
	})

	t.Run("SeedDisabledLeavesFilesMissing", func(t *testing.T) {
		dir := t.TempDir()
		cities := filepath.Join(dir, "cities.csv")
		states := filepath.Join(dir, "states.csv")

		err := Ensure(cities, states, false, slog.Default())
		require.NoError(t, err)

		_, statErr := os.Stat(cities)
		assert.True(t, os.IsNotExist(statErr))
	})
}
