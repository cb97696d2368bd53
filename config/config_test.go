package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tourkit/config"
	"github.com/katalvlaran/tourkit/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvAddr, config.EnvDB, config.EnvMaxPasses, config.EnvSeed} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, tsp.DefaultMaxPasses, cfg.Solver.MaxPasses)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "tour.toml", `
[server]
addr = "0.0.0.0:9000"
shutdown_timeout = "5s"
max_points = 500

[store]
path = "/tmp/runs.db"

[solver]
max_passes = 50
seed = 7
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/runs.db", cfg.Store.Path)
	assert.Equal(t, 50, cfg.Solver.MaxPasses)
	assert.Equal(t, int64(7), cfg.Solver.Seed)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, 500, cfg.Server.MaxPoints)
}

func TestLoad_TOMLKeepsDefaultsForMissingKeys(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "tour.toml", "[solver]\nseed = 3\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, 2000, cfg.Server.MaxPoints)
}

func TestLoad_DurationFormatsAgree(t *testing.T) {
	clearEnv(t)

	fromTOML, err := config.Load(writeFile(t, "a.toml", "[server]\nshutdown_timeout = \"1m30s\"\n"))
	require.NoError(t, err)
	fromYAML, err := config.Load(writeFile(t, "a.yaml", "server:\n  shutdown_timeout: 1m30s\n"))
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, fromTOML.Server.ShutdownTimeout.Duration)
	assert.Equal(t, fromTOML.Server.ShutdownTimeout, fromYAML.Server.ShutdownTimeout)
}

func TestLoad_BareNumberDurationRejected(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(writeFile(t, "b.toml", "[server]\nshutdown_timeout = 30\n"))
	assert.Error(t, err)
	_, err = config.Load(writeFile(t, "b.yaml", "server:\n  shutdown_timeout: 30\n"))
	assert.Error(t, err)
	_, err = config.Load(writeFile(t, "c.toml", "[server]\nshutdown_timeout = \"soon\"\n"))
	assert.Error(t, err)
}

func TestDuration_MarshalText(t *testing.T) {
	out, err := config.Duration{Duration: 5 * time.Second}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "5s", string(out))
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "tour.yml", `
server:
  addr: ":8181"
  shutdown_timeout: 5s
solver:
  max_passes: 10
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8181", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, 10, cfg.Solver.MaxPasses)
	assert.Equal(t, "tourkit.db", cfg.Store.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "tour.toml", "[solver]\nmax_passes = 50\n")
	t.Setenv(config.EnvAddr, "127.0.0.1:0")
	t.Setenv(config.EnvDB, "")
	t.Setenv(config.EnvMaxPasses, "3")
	t.Setenv(config.EnvSeed, "42")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", cfg.Server.Addr)
	assert.Equal(t, "tourkit.db", cfg.Store.Path)
	assert.Equal(t, 3, cfg.Solver.MaxPasses)
	assert.Equal(t, int64(42), cfg.Solver.Seed)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		clearEnv(t)
		_, err := config.Load(writeFile(t, "tour.ini", "x=1"))
		assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
	})
	t.Run("broken toml", func(t *testing.T) {
		clearEnv(t)
		_, err := config.Load(writeFile(t, "tour.toml", "[server\naddr="))
		assert.Error(t, err)
	})
	t.Run("negative max passes", func(t *testing.T) {
		clearEnv(t)
		_, err := config.Load(writeFile(t, "tour.yaml", "solver:\n  max_passes: -1\n"))
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
	t.Run("non-numeric env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvMaxPasses, "many")
		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
	t.Run("empty addr", func(t *testing.T) {
		clearEnv(t)
		_, err := config.Load(writeFile(t, "tour.yaml", "server:\n  addr: \"\"\n"))
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestSolverConfig_Options(t *testing.T) {
	opts := config.SolverConfig{}.Options()
	assert.Equal(t, tsp.DefaultMaxPasses, opts.MaxPasses)
	assert.Nil(t, opts.Source)

	a := config.SolverConfig{MaxPasses: 5, Seed: 9}.Options()
	b := config.SolverConfig{MaxPasses: 5, Seed: 9}.Options()
	assert.Equal(t, 5, a.MaxPasses)
	require.NotNil(t, a.Source)
	assert.NotSame(t, a.Source, b.Source)
	assert.Equal(t, a.Source.Intn(1000), b.Source.Intn(1000))
}
