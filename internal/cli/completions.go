package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/termhunt/internal/scenario"
)

// completeScenarioNames provides shell completion for embedded scenario names.
func completeScenarioNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	scenarios, err := scenario.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var matches []string
	for _, sc := range scenarios {
		if strings.HasPrefix(sc.Name, toComplete) {
			matches = append(matches, sc.Name)
		}
	}

	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeScenarioFlag completes --scenario values. Custom scenario files
// are allowed too, so file completion stays on.
func completeScenarioFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	matches, directive := completeScenarioNames(cmd, nil, toComplete)
	if directive == cobra.ShellCompDirectiveError {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return matches, cobra.ShellCompDirectiveDefault
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
