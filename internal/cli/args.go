package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/termhunt/pkg/termhunt"
)

// RequireScenarioName validates that exactly one scenario argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireScenarioName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <scenario>

Usage: %s

Example:
  %s breach

Use 'termhunt scenarios list' to see available scenarios.`, termhunt.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", termhunt.ErrUsage, len(args))
	}
	return nil
}
