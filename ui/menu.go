package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(Primary)

var separator = " • "
var verticalSeparator = " │ "

// Menu is the key help line. Bindings are shown in groups; the first group is
// highlighted as the primary actions.
type Menu struct {
	groups        [][]key.Binding
	height, width int

	// keyDown is the key last pressed, underlined until cleared.
	keyDown string
}

// NewMenu returns a menu showing groups in order.
func NewMenu(groups ...[]key.Binding) *Menu {
	return &Menu{groups: groups}
}

// Keydown underlines the binding that contains k.
func (m *Menu) Keydown(k string) {
	m.keyDown = k
}

func (m *Menu) ClearKeydown() {
	m.keyDown = ""
}

// SetSize sets the area the menu is centered in.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) pressed(b key.Binding) bool {
	if m.keyDown == "" {
		return false
	}
	for _, k := range b.Keys() {
		if k == m.keyDown {
			return true
		}
	}
	return false
}

func (m *Menu) String() string {
	var s strings.Builder

	first := true
	for g, group := range m.groups {
		groupStart := true
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			if !first {
				if groupStart {
					s.WriteString(sepStyle.Render(verticalSeparator))
				} else {
					s.WriteString(sepStyle.Render(separator))
				}
			}
			first, groupStart = false, false

			localKeyStyle, localDescStyle := keyStyle, descStyle
			if g == 0 {
				localKeyStyle, localDescStyle = actionGroupStyle, actionGroupStyle
			}
			if m.pressed(b) {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}
			s.WriteString(localKeyStyle.Render(b.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(b.Help().Desc))
		}
	}

	if m.width <= 0 || m.height <= 0 {
		return s.String()
	}
	line := truncate.StringWithTail(s.String(), uint(m.width), "…")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
}
