package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

var titleStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"})

var listDescStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(lipgloss.AdaptiveColor{Light: "#C5CAE9", Dark: "#C5CAE9"})

var selectedTitleStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true).
	Background(BackgroundSelected).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#FFFFFF"})

var selectedDescStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Background(BackgroundSelected).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#E8EAF6"})

var updatedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#9FA8DA", Dark: "#9FA8DA"}).
	Italic(true)

// StandStatus is derived from a stand's wait time.
type StandStatus int

const (
	StandOpen StandStatus = iota
	StandWaiting
	StandClosed
)

// Stand is one food stand in the list.
type Stand struct {
	ID   int
	Name string
	// Wait is the displayed wait time, e.g. "3 minute wait" or "Closed".
	Wait    string
	Updated time.Time
}

func (s Stand) Title() string       { return s.Name }
func (s Stand) Description() string { return s.Wait }
func (s Stand) FilterValue() string { return s.Name }

// Status reports whether the stand is closed, has a queue, or has none.
func (s Stand) Status() StandStatus {
	switch strings.TrimSpace(s.Wait) {
	case WaitClosed:
		return StandClosed
	case "", WaitNone:
		return StandOpen
	default:
		return StandWaiting
	}
}

// StatusIcon returns the styled icon for the stand's status.
func (s Stand) StatusIcon() string {
	switch s.Status() {
	case StandClosed:
		return StatusStyles.Closed.Render(IconClosed)
	case StandWaiting:
		return StatusStyles.Waiting.Render(IconWaiting)
	default:
		return StatusStyles.Open.Render(IconOpen)
	}
}

// StandDelegate renders stands in a bubbles list.
type StandDelegate struct {
	// Compact drops the wait time line.
	Compact bool
	// Current is the ID of the stand shown in the header; it is marked in the
	// list.
	Current int
	// Now is used for "updated" times. Nil means time.Now.
	Now func() time.Time
}

// NewStandDelegate returns a delegate that marks current.
func NewStandDelegate(current int) *StandDelegate {
	return &StandDelegate{Current: current}
}

func (d *StandDelegate) Height() int {
	if d.Compact {
		return 1
	}
	return 2
}

func (d *StandDelegate) Spacing() int {
	return 0
}

func (d *StandDelegate) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

func (d *StandDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	stand, ok := item.(Stand)
	if !ok {
		return
	}
	fmt.Fprint(w, d.render(stand, index, index == m.Index(), m.Width()))
}

func (d *StandDelegate) render(stand Stand, index int, selected bool, width int) string {
	titleS, descS := titleStyle, listDescStyle
	if selected {
		titleS, descS = selectedTitleStyle, selectedDescStyle
	}

	prefix := fmt.Sprintf("%d. ", index+1)
	marker := "  "
	if stand.ID == d.Current {
		marker = "✓ "
	}

	// Padding takes one cell on each side.
	inner := max(width-2, 0)
	titleText := runewidth.Truncate(prefix+stand.Name, max(inner-runewidth.StringWidth(marker), 0), "...")
	title := titleS.Width(width).Render(titleText + placeRight(inner-runewidth.StringWidth(titleText), marker))
	if d.Compact {
		return title
	}

	desc := stand.StatusIcon() + " " + stand.Wait
	if !stand.Updated.IsZero() {
		now := time.Now
		if d.Now != nil {
			now = d.Now
		}
		desc += updatedStyle.Background(descS.GetBackground()).
			Render(" · updated " + FormatRelativeTime(stand.Updated, now()))
	}
	// The row is exactly Height() lines; bubbles/list and click hit-tests
	// count on it.
	desc = truncate.StringWithTail(desc, uint(max(inner-len(prefix), 0)), "...")
	descLine := descS.Width(width).Render(strings.Repeat(" ", len(prefix)) + desc)
	return lipgloss.JoinVertical(lipgloss.Left, title, descLine)
}

// placeRight right-aligns s in a field of width cells.
func placeRight(width int, s string) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
