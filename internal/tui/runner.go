package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/termhunt/internal/session"
	"github.com/vvka-141/termhunt/pkg/termhunt"
)

// RunGame runs the full-screen game until the player quits.
func RunGame(ctx context.Context, ctrl *session.Controller, title string) error {
	p := tea.NewProgram(NewGame(ctrl, title), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// PlainRunner plays a session line by line, for pipes and dumb terminals.
//
// A line ending in a tab character asks for a completion instead of running
// the command. The run ends when the game is won or lost, when input ends,
// or when ctx is cancelled.
type PlainRunner struct {
	In  io.Reader
	Out io.Writer
	// Interval between countdown ticks. Defaults to termhunt.TickInterval.
	Interval time.Duration
	// Interactive prints the prompt before each read and hides the echo
	// lines, since the terminal already shows what was typed.
	Interactive bool

	printed int
}

// Run plays ctrl to the end.
func (r *PlainRunner) Run(ctx context.Context, ctrl *session.Controller) error {
	interval := r.Interval
	if interval <= 0 {
		interval = termhunt.TickInterval
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	var (
		ticker    *time.Ticker
		tickC     <-chan time.Time
		tickEpoch uint64
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}
	defer stopTicker()

	r.prompt(ctrl)
	for {
		typedLine := false

		select {
		case <-ctx.Done():
			return nil

		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			typedLine = true
			if typed, found := strings.CutSuffix(line, "\t"); found {
				completed := ctrl.Complete(typed)
				r.flush(ctrl, r.Interactive)
				if completed != typed {
					fmt.Fprintf(r.Out, "%s %s\n", SymbolBullet, completed)
				}
			} else {
				ctrl.Submit(line)
				r.flush(ctrl, r.Interactive)
			}

		case <-tickC:
			ctrl.Tick(tickEpoch)
			r.flush(ctrl, false)
		}

		switch {
		case ctrl.State() == session.Running && tickEpoch != ctrl.Epoch():
			stopTicker()
			ticker = time.NewTicker(interval)
			tickC = ticker.C
			tickEpoch = ctrl.Epoch()
		case ctrl.State() != session.Running:
			stopTicker()
		}

		if ctrl.State().Over() {
			return nil
		}
		if typedLine {
			r.prompt(ctrl)
		}
	}
}

// flush writes the transcript lines appended since the last call.
func (r *PlainRunner) flush(ctrl *session.Controller, skipEcho bool) {
	lines := ctrl.Transcript()
	if r.printed > len(lines) {
		r.printed = 0
	}
	fresh := lines[r.printed:]
	r.printed = len(lines)

	// The first fresh line is the echo of what was just typed.
	if skipEcho && len(fresh) > 0 {
		fresh = fresh[1:]
	}
	for _, line := range fresh {
		fmt.Fprintln(r.Out, line)
	}
}

func (r *PlainRunner) prompt(ctrl *session.Controller) {
	if r.Interactive {
		fmt.Fprint(r.Out, ctrl.Prompt())
	}
}
