package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jungle-runner/internal/core"
	"github.com/vovakirdan/jungle-runner/internal/games/runner"
)

// RunnerKeyMap defines the in-game key bindings.
type RunnerKeyMap struct {
	Jump       key.Binding
	Slide      key.Binding
	Pause      key.Binding
	Start      key.Binding
	Restart    key.Binding
	Home       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunnerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Slide, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunnerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Slide, k.Pause},
		{k.Start, k.Restart, k.Home},
		{k.Screenshot, k.Quit},
	}
}

// DefaultRunnerKeyMap returns default key bindings.
func DefaultRunnerKeyMap() RunnerKeyMap {
	return RunnerKeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Slide: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "slide"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a runner command. The same key can mean
// different commands depending on the state: pause toggles, and enter starts
// from the home screen or restarts after a crash.
// Returns CommandNone for unbound keys; isQuit reports a quit request.
func (k RunnerKeyMap) MapKey(msg tea.KeyMsg, state runner.State) (cmd core.Command, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.CommandNone, true

	case key.Matches(msg, k.Jump):
		if state == runner.StateIdle {
			return core.CommandStart, false
		}
		return core.CommandJump, false

	case key.Matches(msg, k.Slide):
		return core.CommandSlide, false

	case key.Matches(msg, k.Pause):
		if state == runner.StatePaused {
			return core.CommandResume, false
		}
		return core.CommandPause, false

	case key.Matches(msg, k.Start):
		if state == runner.StateGameOver {
			return core.CommandRestart, false
		}
		return core.CommandStart, false

	case key.Matches(msg, k.Restart):
		return core.CommandRestart, false

	case key.Matches(msg, k.Home):
		return core.CommandHome, false
	}

	return core.CommandNone, false
}
