package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StandHeader is the panel header: the selected stand, its wait time, and a
// chevron that points down while collapsed and up while expanded.
type StandHeader struct {
	Stand    Stand
	Expanded bool
	Width    int
}

// Chevron returns the chevron for the current state.
func (h *StandHeader) Chevron() string {
	if h.Expanded {
		return ChevronExpanded
	}
	return ChevronCollapsed
}

// View renders the header on one line. The name is truncated first when the
// width is short.
func (h *StandHeader) View() string {
	const sep = " · "
	chevron := h.Chevron()
	wait := h.Stand.Wait

	// One cell of padding on each side and one before the chevron.
	avail := h.Width - 3 - runewidth.StringWidth(chevron)
	if h.Width <= 0 {
		avail = runewidth.StringWidth(h.Stand.Name + sep + wait)
	}
	nameWidth := avail - runewidth.StringWidth(sep+wait)
	if nameWidth < 4 {
		// Not enough room for both; show the name alone.
		wait = ""
		nameWidth = avail
	}
	name := runewidth.Truncate(h.Stand.Name, max(nameWidth, 0), "...")

	left := HeaderStyles.Name.Render(name)
	used := runewidth.StringWidth(name)
	if wait != "" {
		left += HeaderStyles.Wait.Render(sep + wait)
		used += runewidth.StringWidth(sep + wait)
	}
	gap := 1
	if h.Width > 0 {
		gap = max(avail-used+1, 1)
	}
	return " " + left + strings.Repeat(" ", gap) + HeaderStyles.Chevron.Render(chevron) + " "
}
