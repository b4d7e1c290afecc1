package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineage/config"
)

// clearEnv blanks every LINEAGE_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LINEAGE_DATA_DIR", "LINEAGE_SEED", "LINEAGE_HORIZON", "LINEAGE_LOG_LEVEL", "LINEAGE_LOG_FORMAT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, cfg.DataDir)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, 2120, cfg.Horizon)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LINEAGE_DATA_DIR", "/srv/tables")
	t.Setenv("LINEAGE_SEED", "42")
	t.Setenv("LINEAGE_HORIZON", "2060")
	t.Setenv("LINEAGE_LOG_LEVEL", "debug")
	t.Setenv("LINEAGE_LOG_FORMAT", "json")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/tables", cfg.DataDir)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, 2060, cfg.Horizon)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_DotenvDoesNotOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "lineage.env")
	require.NoError(t, os.WriteFile(path, []byte("LINEAGE_SEED=7\nLINEAGE_HORIZON=2050\n"), 0o600))
	t.Setenv("LINEAGE_HORIZON", "2090")
	t.Cleanup(func() { _ = os.Unsetenv("LINEAGE_SEED") })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
	assert.Equal(t, 2090, cfg.Horizon, "process environment wins over .env")
}

func TestLoad_BadValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("LINEAGE_HORIZON", "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := config.Config{LogLevel: slog.LevelWarn, LogFormat: "JSON"}.Logger(&buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "k", 1)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])

	buf.Reset()
	l, err = config.Config{LogFormat: "text"}.Logger(&buf)
	require.NoError(t, err)
	l.Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")

	_, err = config.Config{LogFormat: "xml"}.Logger(&buf)
	assert.ErrorIs(t, err, config.ErrBadLogFormat)
}

// TestExitf_ExitsWithCode1 runs Exitf in a subprocess since os.Exit cannot
// be intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "fatal: something broke")
}
