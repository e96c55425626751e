// Package session owns one play-through: the filesystem tree, the working
// directory, the transcript, the countdown and the win/lose state machine.
//
// The Controller processes discrete events one at a time (Submit, Complete,
// Tick, Reset) and never schedules anything itself. The UI layer owns the
// timer: it calls Tick once per second while State is Running, passing the
// Epoch it read when it scheduled the tick. Every transition into or out of
// Running and every Reset advances the epoch, so a tick scheduled before a
// win, a loss or a reset is ignored when it is delivered afterwards.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/termhunt/internal/autocomplete"
	"github.com/vvka-141/termhunt/internal/interpreter"
	"github.com/vvka-141/termhunt/internal/logging"
	"github.com/vvka-141/termhunt/internal/vfs"
	"github.com/vvka-141/termhunt/pkg/termhunt"
)

// Source builds the filesystem tree a session plays on.
type Source interface {
	NewTree() (*vfs.Tree, error)
}

// Options configures a Controller.
type Options struct {
	// Countdown in seconds. Defaults to termhunt.DefaultCountdown.
	Countdown int
	User      string
	Host      string
	Logger    termhunt.Logger
	// Now is the clock used for statistics. Defaults to time.Now.
	Now func() time.Time
}

// Stats summarizes a session.
type Stats struct {
	SessionID uuid.UUID
	State     State
	Commands  int
	Removed   int
	Remaining int
	Elapsed   time.Duration
}

// Controller drives a session. It is not safe for concurrent use; callers
// deliver events from a single goroutine.
type Controller struct {
	pristine *vfs.Tree
	opts     Options
	epoch    uint64
	s        *session
}

type session struct {
	id         uuid.UUID
	tree       *vfs.Tree
	cwd        string
	transcript []string
	remaining  int
	state      State
	commands   int
	removed    int
	startedAt  time.Time
	endedAt    time.Time
}

// New builds the scenario tree once and starts a NotStarted session on a copy.
func New(src Source, opts Options) (*Controller, error) {
	if opts.Countdown <= 0 {
		opts.Countdown = termhunt.DefaultCountdown
	}
	if opts.User == "" {
		opts.User = termhunt.DefaultUser
	}
	if opts.Host == "" {
		opts.Host = termhunt.DefaultHost
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNullLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	tree, err := src.NewTree()
	if err != nil {
		return nil, err
	}

	c := &Controller{pristine: tree, opts: opts}
	c.s = c.newSession()
	return c, nil
}

func (c *Controller) newSession() *session {
	s := &session{
		id:        uuid.New(),
		tree:      c.pristine.Clone(),
		cwd:       vfs.Root,
		remaining: c.opts.Countdown,
		state:     NotStarted,
	}
	c.opts.Logger.Verbose("session %s created (countdown %ds)", s.id, s.remaining)
	return s
}

// Submit executes a committed line. Blank lines and lines submitted after the
// game is over are ignored; the return value reports whether the line ran.
func (c *Controller) Submit(line string) bool {
	s := c.s
	if strings.TrimSpace(line) == "" || s.state.Over() {
		return false
	}

	if s.state == NotStarted {
		s.state = Running
		s.startedAt = c.opts.Now()
		c.epoch++
		c.opts.Logger.Info("session %s started", s.id)
	}

	echo := c.Prompt() + line
	res := interpreter.Execute(s.tree, s.cwd, line)
	s.commands++
	c.opts.Logger.Verbose("session %s: %q in %s", s.id, line, s.cwd)

	if res.NextDir != "" {
		s.cwd = res.NextDir
	}
	if res.Removed != "" {
		if err := s.tree.Remove(res.Removed); err != nil {
			c.opts.Logger.Error("session %s: remove %s: %v", s.id, res.Removed, err)
		} else {
			s.removed++
			c.opts.Logger.Verbose("session %s: removed %s", s.id, res.Removed)
		}
	}

	s.transcript = append(s.transcript, echo)
	s.transcript = append(s.transcript, res.Output...)
	s.transcript = append(s.transcript, "")

	if res.Won {
		c.finish(Won)
	}
	return true
}

// Complete returns the completed input line. When several names match, the
// typed line and the candidates are appended to the transcript.
func (c *Controller) Complete(line string) string {
	s := c.s
	if s.state.Over() {
		return line
	}

	comp := autocomplete.Complete(s.tree, s.cwd, line)
	if len(comp.Listed) > 1 {
		s.transcript = append(s.transcript, c.Prompt()+line, strings.Join(comp.Listed, "  "))
	}
	return comp.Line
}

// Tick applies one elapsed second. It is a no-op unless the session is
// Running and epoch is the current Epoch. Returns whether it applied.
func (c *Controller) Tick(epoch uint64) bool {
	s := c.s
	if s.state != Running || epoch != c.epoch {
		return false
	}

	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.transcript = append(s.transcript,
			"*** TIME'S UP ***",
			fmt.Sprintf("The malicious file was %s.", s.tree.MaliciousPath()),
			"",
		)
		c.finish(Lost)
	}
	return true
}

func (c *Controller) finish(st State) {
	s := c.s
	s.state = st
	s.endedAt = c.opts.Now()
	c.epoch++
	c.opts.Logger.Info("session %s %s with %ds left after %d commands", s.id, st, s.remaining, s.commands)
}

// Reset discards the session and starts a fresh one from the scenario.
func (c *Controller) Reset() {
	old := c.s
	c.s = c.newSession()
	c.epoch++
	c.opts.Logger.Info("session %s reset (was %s), new session %s", old.id, old.state, c.s.id)
}

// Epoch identifies the current countdown run. Ticks must carry it.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// State returns the current game state.
func (c *Controller) State() State {
	return c.s.state
}

// Remaining returns the seconds left on the countdown.
func (c *Controller) Remaining() int {
	return c.s.remaining
}

// Cwd returns the current directory.
func (c *Controller) Cwd() string {
	return c.s.cwd
}

// ID returns the identifier of the current session.
func (c *Controller) ID() uuid.UUID {
	return c.s.id
}

// Prompt returns the prompt shown before the input line.
func (c *Controller) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$ ", c.opts.User, c.opts.Host, c.s.cwd)
}

// Transcript returns a copy of the transcript.
func (c *Controller) Transcript() []string {
	return append([]string(nil), c.s.transcript...)
}

// Stats summarizes the current session.
func (c *Controller) Stats() Stats {
	s := c.s
	st := Stats{
		SessionID: s.id,
		State:     s.state,
		Commands:  s.commands,
		Removed:   s.removed,
		Remaining: s.remaining,
	}
	if !s.startedAt.IsZero() {
		end := s.endedAt
		if end.IsZero() {
			end = c.opts.Now()
		}
		st.Elapsed = end.Sub(s.startedAt)
	}
	return st
}
