package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/vvka-141/termhunt/internal/config"
	"github.com/vvka-141/termhunt/internal/logging"
	"github.com/vvka-141/termhunt/pkg/termhunt"
)

// resolveConfig layers the configuration: defaults, termhunt.yaml in dir,
// .env and TERMHUNT_* variables, then the flags that were set.
func resolveConfig(dir string, flags config.Config) (config.Config, error) {
	_ = godotenv.Load()

	cfg := config.Default()

	fileCfg, err := config.Load(dir)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		// Config file not found is not an error
	case err != nil:
		return config.Config{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	default:
		cfg.Merge(*fileCfg)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	cfg.Merge(flags)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger picks where session logs go. The full-screen game owns the
// terminal, so without a log file it logs nothing.
func newLogger(logFile string, verbose, fullScreen bool) (termhunt.Logger, io.Closer, error) {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logging.NewWriterLogger(f, verbose), f, nil
	}
	if verbose && !fullScreen {
		return logging.NewConsoleLogger(true), io.NopCloser(nil), nil
	}
	return logging.NewNullLogger(), io.NopCloser(nil), nil
}
