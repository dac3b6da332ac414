package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewGamesConfigFromYAML_OverridesAndDefaults(t *testing.T) {
	path := writeYAML(t, `
bets: [5, 15]
wheel:
  - label: x0
    weight: 1
    multiplier: 0
  - label: x10
    weight: 1
    multiplier: "10"
mines:
  default_mines: 5
pop:
  step: 0.5
`)

	cfg, err := NewGamesConfigFromYAML(path)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 15}, cfg.Bets())
	require.Len(t, cfg.Segments(), 2)
	assert.Equal(t, "10", cfg.Segments()[1].Multiplier.String())
	assert.Equal(t, 5, cfg.DefaultMines())
	assert.Equal(t, 25, cfg.MinesCells())
	assert.Equal(t, "0.5", cfg.Step().String())

	// не заданные секции остаются по умолчанию
	assert.Len(t, cfg.Symbols(), len(DefaultGamesConfig().Symbols()))
	assert.Equal(t, 8, cfg.Floors())
}

func TestNewGamesConfigFromYAML_Invalid(t *testing.T) {
	_, err := NewGamesConfigFromYAML(writeYAML(t, "tower:\n  doors: 2\n  traps: 2\n"))
	assert.Error(t, err)

	_, err = NewGamesConfigFromYAML(writeYAML(t, "bets: [0]\n"))
	assert.Error(t, err)

	_, err = NewGamesConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewWalletConfig(t *testing.T) {
	t.Setenv(startBalanceEnvName, "")
	t.Setenv(maxBalanceEnvName, "")

	cfg, err := NewWalletConfig()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.StartBalance())
	assert.Equal(t, 999999, cfg.MaxBalance())

	t.Setenv(startBalanceEnvName, "2000")
	t.Setenv(maxBalanceEnvName, "100")
	_, err = NewWalletConfig()
	assert.Error(t, err)
}

func TestNewStorageConfig(t *testing.T) {
	t.Setenv(storageBackendEnvName, "")
	cfg, err := NewStorageConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Backend())

	t.Setenv(storageBackendEnvName, "floppy")
	_, err = NewStorageConfig()
	assert.Error(t, err)
}

func TestNewGamesConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GAMES_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := NewGamesConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultGamesConfig().Bets(), cfg.Bets())
}
