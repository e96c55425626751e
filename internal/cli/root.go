package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/termhunt/pkg/termhunt"
)

const asciiLogo = ` _                        _                 _
| |_ ___ _ __ _ __ ___   | |__  _   _ _ __ | |_
| __/ _ \ '__| '_ ` + "`" + ` _ \  | '_ \| | | | '_ \| __|
| ||  __/ |  | | | | | | | | | | |_| | | | | |_
 \__\___|_|  |_| |_| |_| |_| |_|\__,_|_| |_|\__|`

var rootCmd = &cobra.Command{
	Use:   "termhunt",
	Short: "Find and delete the malicious file before the countdown ends",
	Long: asciiLogo + `

termhunt drops you into a simulated terminal on a compromised machine.
Explore the filesystem with ls, cd and cat, then rm the malicious file
before the clock runs out. The clock starts with your first command.

Nothing touches your real filesystem: every scenario is an in-memory tree.

Exit Codes:
  0  - Session finished (won, lost or quit)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Scenario not found
  12 - Scenario definition invalid
  13 - Interactive UI requested without a terminal`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", termhunt.ErrUsage, err)
	})
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
