package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette
// Stand status is shown with both a color and an icon.

// Status colors - each stand status has a distinct color and icon
var (
	// StatusOpen indicates a stand with no wait
	// Color: Green, Icon: "●"
	StatusOpen = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusWaiting indicates a stand with a queue
	// Color: Amber, Icon: "◔"
	StatusWaiting = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusClosed indicates a stand that is not serving
	// Color: Gray, Icon: "×"
	StatusClosed = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#3F51B5", Dark: "#7986CB"}

	// HeaderText is drawn on the panel background
	HeaderText = lipgloss.Color("#FFFFFF")

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSelected is for the selected list row
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#5C6BC0"}
)

// Status icons for accessibility (shape + color)
const (
	IconOpen    = "●"
	IconWaiting = "◔"
	IconClosed  = "×"
)

// Chevrons shown at the end of the header.
const (
	ChevronCollapsed = "▼"
	ChevronExpanded  = "▲"
)

// StatusStyles contains pre-built styles for each stand status
var StatusStyles = struct {
	Open    lipgloss.Style
	Waiting lipgloss.Style
	Closed  lipgloss.Style
}{
	Open:    lipgloss.NewStyle().Foreground(StatusOpen),
	Waiting: lipgloss.NewStyle().Foreground(StatusWaiting),
	Closed:  lipgloss.NewStyle().Foreground(StatusClosed),
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

// TitleStyle is the screen title above the panel.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary)

// HeaderStyles are drawn inside the panel header.
var HeaderStyles = struct {
	Name    lipgloss.Style
	Wait    lipgloss.Style
	Chevron lipgloss.Style
}{
	Name:    lipgloss.NewStyle().Bold(true).Foreground(HeaderText),
	Wait:    lipgloss.NewStyle().Foreground(HeaderText).Italic(true),
	Chevron: lipgloss.NewStyle().Foreground(HeaderText).Bold(true),
}

// Spacing constants for consistent layout
const (
	SpaceXS = 1
	SpaceSM = 2
)
