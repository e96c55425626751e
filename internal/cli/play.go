package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/termhunt/internal/config"
	"github.com/vvka-141/termhunt/internal/scenario"
	"github.com/vvka-141/termhunt/internal/session"
	"github.com/vvka-141/termhunt/internal/tui"
	"github.com/vvka-141/termhunt/pkg/termhunt"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game session",
	Long: `Start a game session on a simulated compromised machine.

Commands inside the game:
  help             List the available commands
  ls [path]        List a directory
  cd <path>        Change directory (.. goes up, ~ is the root)
  cat <path>       Print a file
  rm <path>        Delete a file

Press Tab to complete command names and paths. The countdown starts with
your first command; delete the malicious file before it reaches zero.

The full-screen interface is used when stdin and stdout are terminals.
Use --plain (or TERMHUNT_NON_INTERACTIVE=1) for a line-by-line session,
which also accepts commands piped on stdin. In plain mode a line ending in
a Tab character is a completion request.

Settings are read, lowest precedence first, from termhunt.yaml in
--config-dir, from .env and TERMHUNT_* environment variables, and from flags.

Examples:
  termhunt play
  termhunt play --scenario phish --countdown 90
  termhunt play --scenario ./my-scenario.yaml
  printf 'ls\ncd logs\n' | termhunt play --plain`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var playFlags struct {
	scenario  string
	countdown int
	user      string
	host      string
	configDir string
	logFile   string
	plain     bool
	tui       bool
}

func resetPlayFlags() {
	playFlags.scenario = ""
	playFlags.countdown = 0
	playFlags.user = ""
	playFlags.host = ""
	playFlags.configDir = "."
	playFlags.logFile = ""
	playFlags.plain = false
	playFlags.tui = false
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playFlags.scenario, "scenario", "s", "", "Scenario name or path to a scenario YAML file (default \"breach\")")
	playCmd.Flags().IntVarP(&playFlags.countdown, "countdown", "c", 0, "Countdown in seconds (default: the scenario's, else 60)")
	playCmd.Flags().StringVar(&playFlags.user, "user", "", "User name shown in the prompt")
	playCmd.Flags().StringVar(&playFlags.host, "host", "", "Host name shown in the prompt")
	playCmd.Flags().StringVar(&playFlags.configDir, "config-dir", ".", "Directory containing termhunt.yaml")
	playCmd.Flags().StringVar(&playFlags.logFile, "log-file", "", "Append session logs to this file")
	playCmd.Flags().BoolVar(&playFlags.plain, "plain", false, "Use the line-by-line interface")
	playCmd.Flags().BoolVar(&playFlags.tui, "tui", false, "Require the full-screen interface")

	playCmd.MarkFlagsMutuallyExclusive("plain", "tui")
	_ = playCmd.RegisterFlagCompletionFunc("scenario", completeScenarioFlag)
	_ = playCmd.RegisterFlagCompletionFunc("config-dir", completeDirectories)
}

func runPlay(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := resolveConfig(playFlags.configDir, config.Config{
		Scenario:  playFlags.scenario,
		Countdown: playFlags.countdown,
		User:      playFlags.user,
		Host:      playFlags.host,
		LogFile:   playFlags.logFile,
	})
	if err != nil {
		return err
	}

	fullScreen, err := chooseFullScreen(playFlags.plain, playFlags.tui, tui.DetectMode())
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.LogFile, verbose, fullScreen)
	if err != nil {
		return err
	}
	defer closer.Close()

	sc, err := scenario.Load(cfg.Scenario)
	if err != nil {
		return err
	}
	logger.Verbose("loaded scenario %s (%s)", sc.Name, sc.Title)

	ctrl, err := session.New(sc, session.Options{
		Countdown: cfg.CountdownFor(sc.Countdown),
		User:      cfg.User,
		Host:      cfg.Host,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if fullScreen {
		err = tui.RunGame(ctx, ctrl, sc.Title)
	} else {
		printIntro(cmd.OutOrStdout(), sc, ctrl)
		runner := &tui.PlainRunner{
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
			Interactive: tui.StdinIsTerminal(),
		}
		err = runner.Run(ctx, ctrl)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game aborted: %w", err)
	}

	stats := ctrl.Stats()
	logger.Info("session %s finished: %s after %d commands", stats.SessionID, stats.State, stats.Commands)
	printSummary(cmd.ErrOrStderr(), stats)
	return nil
}

// chooseFullScreen resolves --plain and --tui against the detected mode.
func chooseFullScreen(plain, force bool, mode tui.Mode) (bool, error) {
	switch {
	case plain:
		return false, nil
	case force && mode != tui.ModeInteractive:
		return false, fmt.Errorf("%w: --tui needs stdin and stdout attached to a terminal", termhunt.ErrNotInteractive)
	}
	return mode == tui.ModeInteractive, nil
}

func printIntro(w io.Writer, sc *scenario.Scenario, ctrl *session.Controller) {
	fmt.Fprintln(w, sc.Title)
	if sc.Description != "" {
		fmt.Fprintln(w, sc.Description)
	}
	fmt.Fprintf(w, "You have %d seconds from your first command. Type 'help' for commands.\n", ctrl.Remaining())
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, stats session.Stats) {
	var outcome string
	switch stats.State {
	case session.Won:
		outcome = "threat neutralized"
	case session.Lost:
		outcome = "time ran out"
	default:
		outcome = "quit"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Outcome:   %s\n", outcome)
	fmt.Fprintf(w, "Commands:  %d\n", stats.Commands)
	if stats.Elapsed > 0 {
		fmt.Fprintf(w, "Elapsed:   %s\n", stats.Elapsed.Round(time.Second))
	}
	if stats.State == session.Won {
		fmt.Fprintf(w, "Remaining: %ds\n", stats.Remaining)
	}
	fmt.Fprintf(w, "Session:   %s\n", stats.SessionID)
}
