package termhunt

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success (the session ended, won or not)
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Session finished normally
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitScenarioNotFound = 11 // Requested scenario does not exist
	ExitScenarioInvalid  = 12 // Scenario definition failed validation
	ExitNotInteractive   = 13 // Interactive UI requested without a terminal
)

const (
	// DefaultCountdown is the number of seconds a player has once the first command runs.
	DefaultCountdown = 60

	// DefaultUser is the user name shown in the prompt.
	DefaultUser = "analyst"

	// DefaultHost is the host name shown in the prompt.
	DefaultHost = "workstation"

	// DefaultScenario is the embedded scenario played when none is configured.
	DefaultScenario = "breach"

	// TickInterval is the wall-clock time between two countdown decrements.
	TickInterval = 1 * time.Second

	// LowTimeThreshold is the remaining time (in seconds) below which the UI warns the player.
	LowTimeThreshold = 10
)
