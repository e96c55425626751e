package termhunt

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Gameplay mistakes (unknown commands, missing files) are never reported
// through these errors: they end up as transcript lines.
//
// Example usage:
//
//	sc, err := scenario.Load(name)
//	if errors.Is(err, termhunt.ErrScenarioNotFound) {
//	    // Suggest `termhunt scenarios list`
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScenarioNotFound indicates the requested scenario does not exist.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrInvalidScenario indicates a scenario definition failed validation.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrUsage indicates invalid command-line arguments.
	ErrUsage = errors.New("usage error")

	// ErrNotInteractive indicates the TUI was forced without a usable terminal.
	ErrNotInteractive = errors.New("not an interactive terminal")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrScenarioNotFound):
		return ExitScenarioNotFound
	case errors.Is(err, ErrInvalidScenario):
		return ExitScenarioInvalid
	case errors.Is(err, ErrNotInteractive):
		return ExitNotInteractive
	}

	return ExitGeneralError
}
