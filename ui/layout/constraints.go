package layout

// Panel constraints
const (
	// PanelMaxWidth keeps the panel readable on wide terminals.
	PanelMaxWidth = 64

	// PanelMargin is the horizontal margin in standard mode.
	PanelMargin = 2
)

// Fixed rows
const (
	// TitleHeight is the title line plus the blank line under it.
	TitleHeight = 2

	// MenuHeight is the help line at the bottom of the screen.
	MenuHeight = 1
)

// Constraints holds the computed position and size of each component.
type Constraints struct {
	TerminalWidth  int
	TerminalHeight int

	Mode LayoutMode

	TitleHeight int

	// The panel's top-left cell and size. The panel's scrim fills its height
	// below the expanded content.
	PanelX      int
	PanelY      int
	PanelWidth  int
	PanelHeight int

	MenuWidth  int
	MenuHeight int
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
	}

	switch c.Mode {
	case LayoutStandard:
		c.TitleHeight = TitleHeight
		c.MenuHeight = MenuHeight
		c.PanelWidth = min(width-2*PanelMargin, PanelMaxWidth)
	case LayoutCompact:
		c.TitleHeight = 1
		c.MenuHeight = MenuHeight
		c.PanelWidth = min(width, PanelMaxWidth)
	default:
		c.PanelWidth = width
	}

	c.PanelWidth = max(c.PanelWidth, 0)
	c.PanelX = (width - c.PanelWidth) / 2
	c.PanelY = c.TitleHeight
	c.PanelHeight = max(height-c.TitleHeight-c.MenuHeight, 0)
	c.MenuWidth = width
	return c
}
