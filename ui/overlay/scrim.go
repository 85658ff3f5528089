package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// Scrim is the dimmed block drawn behind expanded content. A terminal cell
// cannot be translucent, so opacity is rendered by blending the scrim color
// toward the backdrop it covers.
type Scrim struct {
	// Color is the scrim at full opacity, as a hex string.
	Color string
	// Backdrop is the color the scrim fades to at zero opacity.
	Backdrop string
}

// Shade returns the hex color drawn at the given opacity.
func (s Scrim) Shade(opacity float64) string {
	return Blend(s.Backdrop, s.Color, opacity)
}

// Render draws a width x height block at the given opacity.
func (s Scrim) Render(width, height int, opacity float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.Shade(opacity))).
		Width(width).
		Height(height).
		Render("")
}

// Blend interpolates between two hex colors in RGB. t is clamped to [0, 1].
// If either color cannot be parsed, to is returned unchanged.
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	if t <= 0 {
		return a.Hex()
	}
	if t >= 1 {
		return b.Hex()
	}
	return a.BlendRgb(b, t).Hex()
}

// Clip cuts rendered text to at most height lines of exactly width cells.
// ANSI styling inside the lines is preserved.
func Clip(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		line = truncate.String(line, uint(width))
		if pad := width - ansi.PrintableRuneWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
