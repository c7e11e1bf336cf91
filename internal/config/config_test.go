package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 2, cfg.Display.Precision)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "/metrics", cfg.Server.MetricsPath)
	assert.Equal(t, 10*time.Second, cfg.Server.SolveTimeout)
	assert.Positive(t, cfg.Solver.Tolerance)
	require.NoError(t, cfg.Validate())
}

func TestDefaultIgnoresEnvironment(t *testing.T) {
	t.Setenv("INDUMATH_LOG_LEVEL", "loud")
	t.Setenv("INDUMATH_DISPLAY_PRECISION", "5")

	cfg := Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 2, cfg.Display.Precision)
}

func TestLogLevelNames(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "WARNING", "error"} {
		cfg := Default()
		cfg.Log.Level = level
		assert.NoError(t, cfg.Validate(), level)
	}

	t.Setenv("INDUMATH_LOG_LEVEL", "warning")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warning", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indumath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
display:
  precision: 4
server:
  addr: 127.0.0.1:9090
  solve_timeout: 2s
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Display.Precision)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "/metrics", cfg.Server.MetricsPath)
	assert.Equal(t, 2*time.Second, cfg.Server.SolveTimeout)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indumath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  precision: 4\n"), 0o600))
	t.Setenv("INDUMATH_DISPLAY_PRECISION", "3")
	t.Setenv("INDUMATH_SOLVER_TOLERANCE", "1e-7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Display.Precision)
	assert.InDelta(t, 1e-7, cfg.Solver.Tolerance, 1e-15)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("INDUMATH_LOG_LEVEL", "loud")
	t.Setenv("INDUMATH_DISPLAY_PRECISION", "-1")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "display.precision")
}
