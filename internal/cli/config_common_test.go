package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/termhunt/internal/config"
	"github.com/vvka-141/termhunt/internal/logging"
	"github.com/vvka-141/termhunt/pkg/termhunt"
)

func TestResolveConfig_Defaults(t *testing.T) {
	clearTermhuntEnv(t)

	cfg, err := resolveConfig(t.TempDir(), config.Config{})
	require.NoError(t, err)

	assert.Equal(t, termhunt.DefaultScenario, cfg.Scenario)
	assert.Equal(t, termhunt.DefaultUser, cfg.User)
	assert.Equal(t, termhunt.DefaultHost, cfg.Host)
	assert.Zero(t, cfg.Countdown)
}

func TestResolveConfig_Precedence(t *testing.T) {
	clearTermhuntEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName),
		[]byte("scenario: phish\ncountdown: 30\nuser: file\nhost: filehost\n"), 0644))
	t.Setenv(config.EnvUser, "env")
	t.Setenv(config.EnvHost, "envhost")

	cfg, err := resolveConfig(dir, config.Config{Countdown: 90, Host: "flaghost"})
	require.NoError(t, err)

	assert.Equal(t, "phish", cfg.Scenario, "file beats defaults")
	assert.Equal(t, "env", cfg.User, "env beats file")
	assert.Equal(t, "flaghost", cfg.Host, "flags beat env")
	assert.Equal(t, 90, cfg.Countdown, "flags beat file")
}

func TestResolveConfig_InvalidFile(t *testing.T) {
	clearTermhuntEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("scenario: [\n"), 0644))

	_, err := resolveConfig(dir, config.Config{})
	require.Error(t, err)
	assert.Equal(t, termhunt.ExitConfigError, termhunt.ExitCodeForError(err))
}

func TestResolveConfig_NegativeCountdownFlag(t *testing.T) {
	clearTermhuntEnv(t)

	_, err := resolveConfig(t.TempDir(), config.Config{Countdown: -5})
	assert.ErrorIs(t, err, termhunt.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	t.Run("null logger for full screen without log file", func(t *testing.T) {
		logger, closer, err := newLogger("", true, true)
		require.NoError(t, err)
		defer closer.Close()
		assert.IsType(t, &logging.NullLogger{}, logger)
	})

	t.Run("console logger when verbose in plain mode", func(t *testing.T) {
		logger, closer, err := newLogger("", true, false)
		require.NoError(t, err)
		defer closer.Close()
		assert.IsType(t, &logging.ConsoleLogger{}, logger)
	})

	t.Run("null logger when quiet in plain mode", func(t *testing.T) {
		logger, closer, err := newLogger("", false, false)
		require.NoError(t, err)
		defer closer.Close()
		assert.IsType(t, &logging.NullLogger{}, logger)
	})

	t.Run("log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "termhunt.log")
		logger, closer, err := newLogger(path, false, true)
		require.NoError(t, err)
		logger.Info("hello %s", "file")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello file")
	})

	t.Run("unwritable log file", func(t *testing.T) {
		_, _, err := newLogger(filepath.Join(t.TempDir(), "missing", "x.log"), false, true)
		assert.Error(t, err)
	})
}
