package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/termhunt/pkg/termhunt"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds the game settings. Zero values mean "not set" so layers can
// be merged: defaults, then termhunt.yaml, then the environment, then flags.
type Config struct {
	Scenario  string `yaml:"scenario"`
	Countdown int    `yaml:"countdown"`
	User      string `yaml:"user"`
	Host      string `yaml:"host"`
	LogFile   string `yaml:"log_file,omitempty"`
}

const ConfigFileName = "termhunt.yaml"

// Environment variables read by ApplyEnv.
const (
	EnvScenario  = "TERMHUNT_SCENARIO"
	EnvCountdown = "TERMHUNT_COUNTDOWN"
	EnvUser      = "TERMHUNT_USER"
	EnvHost      = "TERMHUNT_HOST"
	EnvLogFile   = "TERMHUNT_LOG_FILE"
)

// Default returns the built-in settings. Countdown stays unset so a
// scenario's own countdown can apply.
func Default() Config {
	return Config{
		Scenario: termhunt.DefaultScenario,
		User:     termhunt.DefaultUser,
		Host:     termhunt.DefaultHost,
	}
}

func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", termhunt.ErrInvalidConfig, ConfigFileName, err)
	}
	return &cfg, nil
}

// Merge overrides c with every field set in other.
func (c *Config) Merge(other Config) {
	if other.Scenario != "" {
		c.Scenario = other.Scenario
	}
	if other.Countdown != 0 {
		c.Countdown = other.Countdown
	}
	if other.User != "" {
		c.User = other.User
	}
	if other.Host != "" {
		c.Host = other.Host
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
}

// ApplyEnv overrides c from environment variables. lookup is os.LookupEnv in
// production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var env Config
	if v, ok := lookup(EnvScenario); ok {
		env.Scenario = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvCountdown); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", termhunt.ErrInvalidConfig, EnvCountdown, v)
		}
		if n <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", termhunt.ErrInvalidConfig, EnvCountdown, n)
		}
		env.Countdown = n
	}
	if v, ok := lookup(EnvUser); ok {
		env.User = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvHost); ok {
		env.Host = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		env.LogFile = strings.TrimSpace(v)
	}
	c.Merge(env)
	return nil
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if c.Scenario == "" {
		return fmt.Errorf("%w: scenario is required", termhunt.ErrInvalidConfig)
	}
	if c.Countdown < 0 {
		return fmt.Errorf("%w: countdown must be positive, got %d", termhunt.ErrInvalidConfig, c.Countdown)
	}
	if c.User == "" || strings.ContainsAny(c.User, " @:") {
		return fmt.Errorf("%w: invalid user %q", termhunt.ErrInvalidConfig, c.User)
	}
	if c.Host == "" || strings.ContainsAny(c.Host, " @:") {
		return fmt.Errorf("%w: invalid host %q", termhunt.ErrInvalidConfig, c.Host)
	}
	return nil
}

// CountdownFor returns the countdown to play: the configured one when set,
// then the scenario's, then termhunt.DefaultCountdown.
func (c Config) CountdownFor(scenarioCountdown int) int {
	switch {
	case c.Countdown > 0:
		return c.Countdown
	case scenarioCountdown > 0:
		return scenarioCountdown
	}
	return termhunt.DefaultCountdown
}
