package layout

// Degradation holds flags for features dropped on small terminals.
type Degradation struct {
	// HideDescriptions draws one-line list rows without the wait time line.
	HideDescriptions bool
	// HideTitle drops the screen title.
	HideTitle bool
	// HideMenu drops the key help line.
	HideMenu bool
}

// ComputeDegradation calculates which features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideDescriptions: c.Mode != LayoutStandard,
		HideTitle:        c.TitleHeight == 0,
		HideMenu:         c.MenuHeight == 0,
	}
}

// ListRowHeight returns the height of one list row.
func (d Degradation) ListRowHeight() int {
	if d.HideDescriptions {
		return 1
	}
	return 2
}
