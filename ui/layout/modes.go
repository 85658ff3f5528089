// Package layout computes where the demo screen places its title, panel and
// menu for a given terminal size.
package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the demo lays out normally.
	MinWidth = 30

	// StandardWidth leaves room for side margins around the panel.
	StandardWidth = 60
)

// Height breakpoints
const (
	// MinHeight fits the title, the header and a few content rows.
	MinHeight = 8

	// StandardHeight fits two-line list rows for every stand.
	StandardHeight = 20
)

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutStandard has margins, a title and two-line list rows.
	LayoutStandard LayoutMode = iota

	// LayoutCompact drops margins and uses one-line list rows.
	LayoutCompact

	// LayoutMinimal is below the minimum size; only the panel is drawn.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode calculates the layout mode for the given dimensions. The more
// restrictive dimension wins.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}
	if width < StandardWidth || height < StandardHeight {
		return LayoutCompact
	}
	return LayoutStandard
}
