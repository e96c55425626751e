package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/termhunt/internal/scenario"
	"github.com/vvka-141/termhunt/internal/vfs"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List and inspect scenarios",
	Long: `List and inspect the scenarios shipped with termhunt.

A scenario is a simulated filesystem with one malicious file hidden in it.
Pass a scenario name, or a path to your own scenario YAML file, to
'termhunt play --scenario'.`,
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenariosList,
}

var scenariosShowCmd = &cobra.Command{
	Use:   "show <scenario>",
	Short: "Show a scenario and its directory tree",
	Long: `Show a scenario's description and directory tree.

The malicious file is not marked. Accepts a scenario name or a path to a
scenario YAML file.`,
	Args:              RequireScenarioName,
	ValidArgsFunction: completeScenarioNames,
	RunE:              runScenariosShow,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosShowCmd)
}

func runScenariosList(cmd *cobra.Command, args []string) error {
	scenarios, err := scenario.List()
	if err != nil {
		return fmt.Errorf("failed to list scenarios: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available scenarios:")
	fmt.Fprintln(out)
	for _, sc := range scenarios {
		fmt.Fprintf(out, "  %-12s %s\n", sc.Name, sc.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use: termhunt play --scenario <scenario>")
	return nil
}

func runScenariosShow(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	tree, err := sc.NewTree()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", sc.Name, sc.Title)
	if sc.Description != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, sc.Description)
	}
	if sc.Countdown > 0 {
		fmt.Fprintf(out, "\nCountdown: %ds\n", sc.Countdown)
	}
	fmt.Fprintln(out)
	printTree(out, tree)
	return nil
}

// printTree writes one line per node, indented by depth. Directories end
// with a slash.
func printTree(w io.Writer, tree *vfs.Tree) {
	fmt.Fprintln(w, vfs.Root)
	tree.Walk(func(n vfs.Node, depth int) {
		name := n.Name
		if n.IsDir() {
			name += "/"
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), name)
	})
}
