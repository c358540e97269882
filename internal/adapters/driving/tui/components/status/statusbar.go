// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/textstat/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateAnalyzing State = "analyzing"
	StateError     State = "error"
)

// Bar displays the word count, errors and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	wordCount int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	frame := s.styles.StatusBar.GetHorizontalFrameSize()
	padding := s.width - frame - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state or word count.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateAnalyzing:
		return s.styles.Muted.Render("Analyzing...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	}

	switch s.wordCount {
	case 0:
		return s.styles.Muted.Render("Start typing or paste text")
	case 1:
		return s.styles.Normal.Render("1 word")
	default:
		return s.styles.Normal.Render(fmt.Sprintf("%d words", s.wordCount))
	}
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetError switches to the error state with message.
func (s *Bar) SetError(message string) {
	s.state = StateError
	s.message = message
}

// Message returns the current error message.
func (s *Bar) Message() string {
	return s.message
}

// SetWordCount sets the word count shown in the ready state.
func (s *Bar) SetWordCount(count int) {
	s.wordCount = count
}

// WordCount returns the current word count.
func (s *Bar) WordCount() int {
	return s.wordCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.wordCount = 0
}

// Bindings exposes the hinted bindings, for help views.
func (s *Bar) Bindings() []key.Binding {
	return s.keymap.ShortHelp()
}
