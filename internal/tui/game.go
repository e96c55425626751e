package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/termhunt/internal/session"
	"github.com/vvka-141/termhunt/pkg/termhunt"
)

// tickMsg is one countdown second for the run identified by epoch.
type tickMsg struct {
	epoch uint64
}

func tick(epoch uint64) tea.Cmd {
	return tea.Tick(termhunt.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

// Game is the full-screen terminal game.
type Game struct {
	ctrl  *session.Controller
	title string

	input      textinput.Model
	transcript viewport.Model

	// chain is the epoch of the tick chain in flight.
	chain uint64
	// shown is the transcript length at the last refresh.
	shown int

	width  int
	height int

	keys KeyMap
}

// chromeHeight is the number of lines around the transcript:
// header, blank, input, help.
const chromeHeight = 4

// NewGame creates the game screen for a controller.
func NewGame(ctrl *session.Controller, title string) Game {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ctrl.Prompt()
	ti.Focus()

	g := Game{
		ctrl:       ctrl,
		title:      title,
		input:      ti,
		transcript: viewport.New(80, 24-chromeHeight),
		width:      80,
		height:     24,
		keys:       DefaultKeyMap(),
	}
	g.refresh()
	return g
}

// Init implements tea.Model.
func (g Game) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (g Game) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.height = msg.Height
		g.transcript.Width = msg.Width
		g.transcript.Height = max(1, msg.Height-chromeHeight)
		g.input.Width = max(10, msg.Width-len(g.ctrl.Prompt())-2)

	case tickMsg:
		// A tick from an older run is dropped and its chain ends here.
		if g.ctrl.Tick(msg.epoch) && g.ctrl.State() == session.Running {
			cmds = append(cmds, tick(msg.epoch))
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, g.keys.Quit):
			return g, tea.Quit
		case key.Matches(msg, g.keys.Reset):
			g.ctrl.Reset()
			g.input.Reset()
		case key.Matches(msg, g.keys.Complete):
			g.input.SetValue(g.ctrl.Complete(g.input.Value()))
			g.input.CursorEnd()
		case key.Matches(msg, g.keys.Submit):
			if g.ctrl.Submit(g.input.Value()) {
				g.input.Reset()
			}
		case key.Matches(msg, g.keys.ScrollUp), key.Matches(msg, g.keys.ScrollDown):
			var cmd tea.Cmd
			g.transcript, cmd = g.transcript.Update(msg)
			return g, cmd
		default:
			if !g.ctrl.State().Over() {
				var cmd tea.Cmd
				g.input, cmd = g.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	default:
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, g.ensureTicking())
	g.refresh()
	return g, tea.Batch(cmds...)
}

// ensureTicking starts a tick chain when a run started and none is in flight.
func (g *Game) ensureTicking() tea.Cmd {
	if g.ctrl.State() != session.Running || g.chain == g.ctrl.Epoch() {
		return nil
	}
	g.chain = g.ctrl.Epoch()
	return tick(g.chain)
}

func (g *Game) refresh() {
	g.input.Prompt = g.ctrl.Prompt()

	lines := g.ctrl.Transcript()
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = g.styleLine(line)
	}
	g.transcript.SetContent(strings.Join(rendered, "\n"))
	// Follow new output, but leave a scrolled-back view alone on ticks.
	if len(lines) != g.shown {
		g.transcript.GotoBottom()
		g.shown = len(lines)
	}
}

func (g Game) styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "*** THREAT"):
		return SuccessStyle.Render(line)
	case strings.HasPrefix(line, "*** TIME"):
		return ErrorStyle.Render(line)
	case g.isEcho(line):
		return EchoStyle.Render(line)
	}
	return OutputStyle.Render(line)
}

func (g Game) isEcho(line string) bool {
	at := strings.Index(line, "$ ")
	return at > 0 && strings.Contains(line[:at], "@") && strings.Contains(line[:at], ":~")
}

// View implements tea.Model.
func (g Game) View() string {
	var b strings.Builder

	b.WriteString(g.header())
	b.WriteString("\n")
	b.WriteString(g.transcript.View())
	b.WriteString("\n")

	switch g.ctrl.State() {
	case session.Won:
		b.WriteString(SuccessStyle.Render(SymbolCheck + " System secured. Press ctrl+r to play again."))
	case session.Lost:
		b.WriteString(ErrorStyle.Render(SymbolCross + " Out of time. Press ctrl+r to try again."))
	default:
		b.WriteString(g.input.View())
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(g.keys.HelpText()))

	return b.String()
}

func (g Game) header() string {
	remaining := g.ctrl.Remaining()
	timer := fmt.Sprintf("%s %02d:%02d", SymbolTimer, remaining/60, remaining%60)

	timerStyle := TimerStyle
	if g.ctrl.State() == session.Running && remaining <= termhunt.LowTimeThreshold {
		timerStyle = TimerLowStyle
	}

	status := g.ctrl.State().String()
	if g.ctrl.State() == session.NotStarted {
		status = "type a command to start the clock"
	}

	return TitleStyle.Render("termhunt "+SymbolBullet+" "+g.title) + "  " +
		timerStyle.Render(timer) + "  " +
		SubtitleStyle.Render(status)
}
