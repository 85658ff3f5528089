// Package harness drives bubbletea models in tests: it sends keys, clicks and
// resizes, and runs the commands a model returns so animated transitions can
// be played to the end.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing.
type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// New creates a Harness and sends the initial window size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	h := &Harness{
		t:      t,
		model:  model,
		width:  width,
		height: height,
	}
	h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// SendMsg sends msg to the model and returns the command it produced.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a rune key press.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a non-rune key such as Tab or Esc.
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Click sends a left button press at the given cell.
func (h *Harness) Click(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
}

// Resize simulates a terminal resize.
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Drain runs cmd and feeds its messages back into the model, following the
// commands that produces, until none remain or limit messages were sent.
// Quit messages are dropped. It returns the number of messages delivered.
//
// Frame commands sleep for one frame interval each, so pair Drain with a
// runner clock that jumps forward or with an instant runner.
func (h *Harness) Drain(cmd tea.Cmd, limit int) int {
	h.t.Helper()
	sent := 0
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 && sent < limit {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			queue = append(queue, h.SendMsg(msg))
			sent++
		}
	}
	return sent
}

// View returns the current rendered view.
func (h *Harness) View() string {
	return h.model.View()
}

// Model returns the underlying model for type assertions.
func (h *Harness) Model() tea.Model {
	return h.model
}

// Width returns the current width.
func (h *Harness) Width() int {
	return h.width
}

// Height returns the current height.
func (h *Harness) Height() int {
	return h.height
}

// CommonSizes are the terminal sizes the panel is expected to lay out in.
var CommonSizes = []TerminalSize{
	{Name: "minimum", Width: 40, Height: 12},
	{Name: "standard", Width: 80, Height: 24},
	{Name: "large", Width: 200, Height: 50},
	{Name: "short", Width: 80, Height: 6},
}

// TerminalSize represents a terminal size for testing.
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// RunWithSizes runs fn as a subtest for each size.
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs fn for every size in CommonSizes.
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}

// KeySequence is a sequence of messages played in order.
type KeySequence []tea.Msg

// NewKeySequence builds a sequence from rune keys and special key types.
func NewKeySequence(keys ...any) KeySequence {
	var seq KeySequence
	for _, k := range keys {
		switch k := k.(type) {
		case string:
			seq = append(seq, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		case tea.KeyType:
			seq = append(seq, tea.KeyMsg{Type: k})
		}
	}
	return seq
}

// Play sends every message in the sequence.
func (seq KeySequence) Play(h *Harness) {
	for _, msg := range seq {
		h.SendMsg(msg)
	}
}
