package dropdown

import (
	"errors"
	"fmt"
	"time"

	"dropdown/inspect"
	"dropdown/log"
	"dropdown/transition"
	"dropdown/ui/overlay"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Default colors, used when an option is unset or empty.
const (
	DefaultBackgroundColor = "#3F51B5"
	DefaultOverlayColor    = "#616161"
	DefaultBackdropColor   = "#1a1a1a"
)

// frameDriver is implemented by runners that advance on bubbletea messages.
type frameDriver interface {
	Cmd() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
}

// Panel is the drop-down component: a Controller rendering into a Stack.
// Embed it in a bubbletea model, forward messages to Update, and return the
// commands it produces.
type Panel struct {
	ctrl   *Controller
	stack  *Stack
	runner transition.Runner
	frames frameDriver
	keys   KeyMap

	background string
	scrim      overlay.Scrim

	expandDuration   time.Duration
	collapseDuration time.Duration
	expandCurve      transition.Curve

	width, height    int
	offsetX, offsetY int

	// Rows drawn by the last View, used to hit-test mouse clicks.
	headerRows  int
	contentRows int
}

// Option configures a Panel.
type Option func(*Panel)

// WithBackgroundColor sets the header and content background.
func WithBackgroundColor(hex string) Option {
	return func(p *Panel) {
		if hex != "" {
			p.background = hex
		}
	}
}

// WithOverlayColor sets the scrim color at full opacity.
func WithOverlayColor(hex string) Option {
	return func(p *Panel) {
		if hex != "" {
			p.scrim.Color = hex
		}
	}
}

// WithBackdropColor sets the color the scrim fades from and to.
func WithBackdropColor(hex string) Option {
	return func(p *Panel) {
		if hex != "" {
			p.scrim.Backdrop = hex
		}
	}
}

// WithRunner sets the transition runner. The default is a TickRunner.
func WithRunner(r transition.Runner) Option {
	return func(p *Panel) {
		p.runner = r
	}
}

// WithDurations sets the expand and collapse transition lengths.
func WithDurations(expand, collapse time.Duration) Option {
	return func(p *Panel) {
		p.expandDuration = expand
		p.collapseDuration = collapse
	}
}

// WithExpandCurve sets the easing of the expand transition.
func WithExpandCurve(curve transition.Curve) Option {
	return func(p *Panel) {
		p.expandCurve = curve
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(p *Panel) {
		p.keys = k
	}
}

// New returns a collapsed panel with no views.
func New(opts ...Option) *Panel {
	p := &Panel{
		stack:            NewStack(),
		keys:             DefaultKeyMap(),
		background:       DefaultBackgroundColor,
		scrim:            overlay.Scrim{Color: DefaultOverlayColor, Backdrop: DefaultBackdropColor},
		expandDuration:   DefaultExpandDuration,
		collapseDuration: DefaultCollapseDuration,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.runner == nil {
		p.runner = transition.NewTickRunner()
	}
	if fd, ok := p.runner.(frameDriver); ok {
		p.frames = fd
	}
	p.ctrl = NewController(p.stack, p.runner,
		WithExpandDuration(p.expandDuration),
		WithCollapseDuration(p.collapseDuration),
		WithExpandCurve(p.expandCurve),
	)
	return p
}

// Validate reports the required views that are missing. Call it once the UI
// is composed, before the program starts.
func (p *Panel) Validate() error {
	var err error
	if p.ctrl.HeaderView() == nil {
		err = errors.Join(err, ErrNoHeader)
	}
	if p.ctrl.ContentView() == nil {
		err = errors.Join(err, ErrNoContent)
	}
	return err
}

// SetHeaderView sets the view that is always visible.
func (p *Panel) SetHeaderView(v View) {
	p.ctrl.SetHeaderView(v)
}

// SetContentView sets the view shown only while expanded.
func (p *Panel) SetContentView(v View) {
	p.ctrl.SetContentView(v)
}

// SetListener sets the listener notified of successful transitions.
func (p *Panel) SetListener(l Listener) {
	p.ctrl.SetListener(l)
}

// Listener returns the current listener, or nil.
func (p *Panel) Listener() Listener {
	return p.ctrl.Listener()
}

// Expand expands the panel and returns the command that animates it.
func (p *Panel) Expand() tea.Cmd {
	p.ctrl.Expand()
	return p.changed()
}

// Collapse collapses the panel and returns the command that animates it.
func (p *Panel) Collapse() tea.Cmd {
	p.ctrl.Collapse()
	return p.changed()
}

// Toggle expands or collapses the panel, as a click on the header does.
func (p *Panel) Toggle() tea.Cmd {
	p.ctrl.Toggle()
	return p.changed()
}

// IsExpanded reports whether the panel is expanded.
func (p *Panel) IsExpanded() bool {
	return p.ctrl.IsExpanded()
}

// IsBusy reports whether a transition is in flight.
func (p *Panel) IsBusy() bool {
	return p.ctrl.IsBusy()
}

// State returns the committed state.
func (p *Panel) State() State {
	return p.ctrl.State()
}

// Keys returns the panel's key bindings.
func (p *Panel) Keys() KeyMap {
	return p.keys
}

// SetSize sets the area the panel fills. The scrim covers whatever the header
// and content leave of height.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetOffset sets the screen position of the panel's top-left cell, for mouse
// hit-testing.
func (p *Panel) SetOffset(x, y int) {
	p.offsetX = x
	p.offsetY = y
}

// Close disposes in-flight transitions. The panel ignores input afterwards.
func (p *Panel) Close() {
	p.ctrl.Close()
}

// Update handles frame ticks, key presses and mouse clicks.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case transition.FrameMsg:
		if p.frames != nil {
			return p.frames.Update(msg)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Toggle):
			log.InputTrace("toggle key %q", msg.String())
			return p.Toggle()
		case key.Matches(msg, p.keys.Collapse):
			log.InputTrace("collapse key %q", msg.String())
			return p.Collapse()
		}
	case tea.MouseMsg:
		return p.handleMouse(msg)
	}
	return nil
}

func (p *Panel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	x, row := msg.X-p.offsetX, msg.Y-p.offsetY
	if row < 0 || x < 0 || (p.width > 0 && x >= p.width) {
		return nil
	}
	if row < p.headerRows {
		log.InputTrace("header click at row %d", row)
		return p.Toggle()
	}
	if p.stack.Visible(RoleOverlay) && p.height > 0 && row >= p.headerRows+p.contentRows && row < p.height {
		log.InputTrace("scrim click at row %d", row)
		return p.Collapse()
	}
	return nil
}

// changed returns the next frame command and records a snapshot when
// inspection is on.
func (p *Panel) changed() tea.Cmd {
	if inspect.IsEnabled() {
		snap := inspect.NewSnapshot().
			WithTerminal(p.width, p.height).
			WithPanel(p.ctrl.State().String(), p.ctrl.IsBusy()).
			WithComponents(p.InspectNode())
		if err := inspect.WriteSnapshot(snap); err != nil {
			log.Debug("inspect: %v", err)
		}
	}
	if p.frames != nil {
		return p.frames.Cmd()
	}
	return nil
}

func (p *Panel) containerStyle() lipgloss.Style {
	style := lipgloss.NewStyle().Background(lipgloss.Color(p.background))
	if p.width > 0 {
		style = style.Width(p.width)
	}
	return style
}

// View renders the header, the content clipped to the animated extent, and
// the scrim below it.
func (p *Panel) View() string {
	defer log.GetProfiler().StartRender("panel")()

	var sections []string

	p.headerRows = 0
	if v := p.stack.Slot(RoleHeader); v != nil {
		header := p.containerStyle().Render(v.View())
		p.headerRows = lipgloss.Height(header)
		sections = append(sections, header)
	}

	avail := -1
	if p.height > 0 {
		avail = max(p.height-p.headerRows, 0)
	}

	p.contentRows = 0
	if v := p.stack.Slot(RoleContent); v != nil && p.stack.Visible(RoleContent) {
		content := p.containerStyle().Render(v.View())
		natural := lipgloss.Height(content)
		if avail >= 0 && natural > avail {
			natural = avail
		}
		p.stack.SetContentRows(natural)
		p.contentRows = p.stack.ExtentRows()
		if p.contentRows > 0 {
			sections = append(sections, overlay.Clip(content, lipgloss.Width(content), p.contentRows))
		}
	} else if rows := p.stack.ExtentRows(); rows > 0 {
		// The content is hidden but its container is still shrinking.
		p.contentRows = rows
		sections = append(sections, p.containerStyle().Height(rows).Render(""))
	}

	if p.stack.Visible(RoleOverlay) && avail > 0 {
		opacity := p.stack.Opacity(RoleOverlay)
		if scrim := p.scrim.Render(p.width, avail-p.contentRows, opacity); scrim != "" {
			sections = append(sections, scrim)
		}
	}

	log.RenderTrace("panel", "state=%s header=%d content=%d extent=%.2f",
		p.ctrl.State(), p.headerRows, p.contentRows, p.stack.Extent())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// InspectNode implements inspect.Introspectable.
func (p *Panel) InspectNode() *inspect.Node {
	root := inspect.NewNode("DropDown").
		WithBounds(p.offsetX, p.offsetY, p.width, p.height).
		WithState("state", p.ctrl.State().String()).
		WithState("busy", p.ctrl.IsBusy()).
		WithState("extent", fmt.Sprintf("%.2f", p.stack.Extent()))

	style := p.containerStyle()
	for role := RoleHeader; role < numRoles; role++ {
		node := inspect.NewNode(role.String()).WithID(role.String())
		node.Visible = p.stack.Visible(role)
		switch role {
		case RoleHeader:
			node.WithBounds(p.offsetX, p.offsetY, p.width, p.headerRows).
				WithStyles(inspect.ExtractStyleInfo(style, "container"))
		case RoleContent:
			node.WithBounds(p.offsetX, p.offsetY+p.headerRows, p.width, p.contentRows).
				WithState("assigned", p.stack.Slot(RoleContent) != nil).
				WithStyles(inspect.ExtractStyleInfo(style, "container"))
		case RoleOverlay:
			opacity := p.stack.Opacity(RoleOverlay)
			node.WithState("opacity", fmt.Sprintf("%.2f", opacity)).
				WithStyles(inspect.ExtractStyleInfo(
					lipgloss.NewStyle().Background(lipgloss.Color(p.scrim.Shade(opacity))), "scrim"))
		}
		root.AddChild(node)
	}
	return root
}
