package currency

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	assert.NotEmpty(t, table.Version)

	rate, ok := table.Rate("GBP", "EUR")
	require.True(t, ok)
	assert.Equal(t, "1.16", rate.String())

	_, ok = table.Rate("CHF", "EUR")
	assert.False(t, ok, "unlisted pairs have no rate")
}

func TestConvert(t *testing.T) {
	table := Default()

	t.Run("applies the fixed rate and rounds to cents", func(t *testing.T) {
		got, err := table.Convert(decimal.RequireFromString("10.99"), "GBP", "EUR")
		require.NoError(t, err)
		assert.Equal(t, "12.75", got.StringFixed(2)) // 10.99 * 1.16 = 12.7484
	})

	t.Run("same currency only rounds", func(t *testing.T) {
		got, err := table.Convert(decimal.RequireFromString("10.999"), "EUR", "EUR")
		require.NoError(t, err)
		assert.Equal(t, "11.00", got.StringFixed(2))
	})

	t.Run("missing pair is an error", func(t *testing.T) {
		_, err := table.Convert(decimal.RequireFromString("10.00"), "CHF", "EUR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CHF")
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads a versioned table from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.json")
		content := `{"version":"2026-08","rates":{"EUR/USD":"1.10","CHF/EUR":"1.05"}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		table, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "2026-08", table.Version)

		rate, ok := table.Rate("CHF", "EUR")
		require.True(t, ok)
		assert.Equal(t, "1.05", rate.String())
	})

	t.Run("rejects a table without a version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"rates":{}}`), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "version")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})
}
