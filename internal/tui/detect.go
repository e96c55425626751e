package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for termhunt.
type Mode int

const (
	// ModeNonInteractive is used for scripts and piped input: the plain line runner.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal: the full-screen game.
	ModeInteractive
)

// DetectMode determines whether termhunt should run the full-screen game.
//
// Returns ModeNonInteractive if:
//   - stdin is not a terminal (piped input, CI/CD)
//   - TERMHUNT_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	// Check environment overrides first
	if os.Getenv("TERMHUNT_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// StdinIsTerminal reports whether a human is typing, even when the
// full-screen game is disabled.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
