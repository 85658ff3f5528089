package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"dropdown/config"
	"dropdown/dropdown"
	"dropdown/log"
	"dropdown/transition"
	"dropdown/ui"
	"dropdown/ui/layout"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

const title = "Food stands"

// InitialStand is the stand shown in the header at startup.
const InitialStand = 1

// DefaultStands returns the demo's stands. IDs are list positions.
func DefaultStands() []ui.Stand {
	return []ui.Stand{
		{ID: 0, Name: "Brooklyn Lemonade", Wait: "3 minute wait"},
		{ID: 1, Name: "Manhattan Bourjee Sliders", Wait: ui.WaitClosed},
		{ID: 2, Name: "Queens and Cakes", Wait: ui.WaitNone},
		{ID: 3, Name: "Bronx Tea", Wait: "10 minute wait"},
	}
}

// ErrUnknownStand is returned for a stand ID outside the list.
var ErrUnknownStand = errors.New("unknown stand")

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	runner := transition.ForOutput(os.Stdout, cfg.ReduceMotion, cfg.FrameRate)
	h := newHome(ctx, cfg, runner)
	if err := h.panel.Validate(); err != nil {
		return fmt.Errorf("failed to compose panel: %w", err)
	}
	defer h.panel.Close()
	defer log.GetProfiler().LogStats()

	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancelled from outside, not a failure.
		return nil
	}
	return err
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StandStateMsg updates a stand's wait time from outside the event loop, via
// tea.Program.Send.
type StandStateMsg struct {
	ID   int
	Wait string
}

type home struct {
	ctx context.Context

	// -- State --

	// selected is the ID of the stand shown in the header.
	selected int
	// status is a transient message shown in place of the menu.
	status string
	now    func() time.Time

	// -- UI Components --

	panel    *dropdown.Panel
	header   *ui.StandHeader
	stands   list.Model
	delegate *ui.StandDelegate
	menu     *ui.Menu
	keys     keyMap

	constraints layout.Constraints
	degradation layout.Degradation
}

func newHome(ctx context.Context, cfg *config.Config, runner transition.Runner) *home {
	stands := DefaultStands()
	h := &home{
		ctx:      ctx,
		selected: InitialStand,
		now:      time.Now,
		header:   &ui.StandHeader{Stand: stands[InitialStand]},
		delegate: ui.NewStandDelegate(InitialStand),
		keys:     defaultKeyMap(),
	}

	items := make([]list.Item, len(stands))
	for i, s := range stands {
		items[i] = s
	}
	h.stands = list.New(items, h.delegate, 0, 0)
	h.stands.SetShowTitle(false)
	h.stands.SetShowStatusBar(false)
	h.stands.SetShowHelp(false)
	h.stands.SetShowPagination(false)
	h.stands.SetFilteringEnabled(false)
	h.stands.KeyMap.Quit.SetEnabled(false)
	h.stands.KeyMap.ForceQuit.SetEnabled(false)
	h.stands.Select(InitialStand)

	curve, err := transition.ParseCurve(cfg.ExpandCurve)
	if err != nil {
		log.WarningLog.Printf("expand_curve: %v, using accelerate-decelerate", err)
		curve = transition.AccelerateDecelerate
	}

	h.panel = dropdown.New(
		dropdown.WithRunner(runner),
		dropdown.WithExpandCurve(curve),
		dropdown.WithBackgroundColor(cfg.BackgroundColor),
		dropdown.WithOverlayColor(cfg.OverlayColor),
		dropdown.WithBackdropColor(cfg.BackdropColor),
		dropdown.WithDurations(cfg.ExpandDuration(), cfg.CollapseDuration()),
	)
	h.panel.SetHeaderView(h.header)
	h.panel.SetContentView(dropdown.ViewFunc(func() string {
		return h.stands.View()
	}))
	h.panel.SetListener(h)

	h.keys.Select.SetEnabled(false)
	h.refreshMenu()
	return h
}

// OnExpanded implements dropdown.Listener.
func (m *home) OnExpanded() {
	m.header.Expanded = true
	m.keys.Select.SetEnabled(true)
	m.refreshMenu()
	// Reopen on the stand in the header.
	m.stands.Select(m.selected)
	log.InfoLog.Printf("stand list opened on %q", m.header.Stand.Name)
}

// OnCollapsed implements dropdown.Listener.
func (m *home) OnCollapsed() {
	m.header.Expanded = false
	m.keys.Select.SetEnabled(false)
	m.refreshMenu()
}

// refreshMenu rebuilds the menu so it picks up enabled bindings.
func (m *home) refreshMenu() {
	menu := ui.NewMenu(
		m.panel.Keys().ShortHelp(),
		[]key.Binding{m.keys.Up, m.keys.Select},
		[]key.Binding{m.keys.Copy, m.keys.Quit},
	)
	menu.SetSize(m.constraints.MenuWidth, m.constraints.MenuHeight)
	m.menu = menu
}

// Stand returns the stand with the given ID.
func (m *home) Stand(id int) (ui.Stand, error) {
	items := m.stands.Items()
	if id < 0 || id >= len(items) {
		return ui.Stand{}, fmt.Errorf("stand %d: %w", id, ErrUnknownStand)
	}
	return items[id].(ui.Stand), nil
}

// SelectedStand returns the stand shown in the header.
func (m *home) SelectedStand() ui.Stand {
	s, _ := m.Stand(m.selected)
	return s
}

// SetStandState sets a stand's wait time. The header follows when the stand
// is the selected one.
func (m *home) SetStandState(id int, wait string) (tea.Cmd, error) {
	stand, err := m.Stand(id)
	if err != nil {
		return nil, err
	}
	stand.Wait = wait
	stand.Updated = m.now()
	cmd := m.stands.SetItem(id, stand)
	if id == m.selected {
		m.header.Stand = stand
	}
	log.InfoLog.Printf("stand %q is now %q", stand.Name, wait)
	return cmd, nil
}

// selectStand makes id the header's stand and collapses the panel.
func (m *home) selectStand(id int) tea.Cmd {
	stand, err := m.Stand(id)
	if err != nil {
		return m.handleError(err)
	}
	m.selected = id
	m.header.Stand = stand
	m.delegate.Current = id
	log.InfoLog.Printf("selected stand %q", stand.Name)
	return m.panel.Collapse()
}

// updateHandleWindowSizeEvent sets the sizes of the components.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height)
	m.degradation = layout.ComputeDegradation(m.constraints)
	c := m.constraints

	m.panel.SetSize(c.PanelWidth, c.PanelHeight)
	m.panel.SetOffset(c.PanelX, c.PanelY)
	m.header.Width = c.PanelWidth
	m.delegate.Compact = m.degradation.HideDescriptions

	// The header takes one row of the panel.
	rows := len(m.stands.Items()) * m.degradation.ListRowHeight()
	listHeight := min(rows, max(c.PanelHeight-1, 1))
	m.stands.SetSize(c.PanelWidth, listHeight)
	m.menu.SetSize(c.MenuWidth, c.MenuHeight)
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transition.FrameMsg:
		return m, m.panel.Update(msg)
	case hideStatusMsg:
		m.status = ""
		return m, nil
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case StandStateMsg:
		cmd, err := m.SetStandState(msg.ID, msg.Wait)
		if err != nil {
			return m, m.handleError(err)
		}
		return m, cmd
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	highlightCmd := m.keydownCallback(msg.String())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m, tea.Batch(highlightCmd, m.copySelected())
	}

	if m.panel.IsExpanded() {
		switch {
		case key.Matches(msg, m.keys.Select):
			stand, ok := m.stands.SelectedItem().(ui.Stand)
			if !ok {
				return m, highlightCmd
			}
			return m, tea.Batch(highlightCmd, m.selectStand(stand.ID))
		case key.Matches(msg, m.keys.Up, m.keys.Down,
			m.stands.KeyMap.NextPage, m.stands.KeyMap.PrevPage):
			var cmd tea.Cmd
			m.stands, cmd = m.stands.Update(msg)
			return m, tea.Batch(highlightCmd, cmd)
		}
	}

	return m, tea.Batch(highlightCmd, m.panel.Update(msg))
}

// handleMouse selects a clicked stand and passes other clicks to the panel.
func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.panel.IsExpanded() && !m.panel.IsBusy() {
		// Row 0 of the panel is the header.
		row := msg.Y - m.constraints.PanelY - 1
		x := msg.X - m.constraints.PanelX
		if row >= 0 && row < m.stands.Height() && x >= 0 && x < m.constraints.PanelWidth {
			rowHeight := m.delegate.Height() + m.delegate.Spacing()
			index := m.stands.Paginator.Page*m.stands.Paginator.PerPage + row/rowHeight
			if row/rowHeight < m.stands.Paginator.ItemsOnPage(len(m.stands.Items())) {
				return m.selectStand(index)
			}
			return nil
		}
	}
	return m.panel.Update(msg)
}

// copySelected copies the header's stand to the clipboard.
func (m *home) copySelected() tea.Cmd {
	stand := m.SelectedStand()
	text := fmt.Sprintf("%s (%s)", stand.Name, stand.Wait)
	if err := clipboardWriteAll(text); err != nil {
		return m.handleError(fmt.Errorf("failed to copy stand: %w", err))
	}
	return m.showStatus("Copied " + stand.Name)
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(k string) tea.Cmd {
	m.menu.Keydown(k)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideStatusMsg clears the status text from the screen.
type hideStatusMsg struct{}

// showStatus sets the status line and returns a callback that clears it after
// 3 seconds.
func (m *home) showStatus(s string) tea.Cmd {
	m.status = s
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideStatusMsg{}
	}
}

// handleError logs err and shows it in the status line.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	return m.showStatus(err.Error())
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	c := m.constraints
	var sections []string

	if !m.degradation.HideTitle && c.TitleHeight > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Height(c.TitleHeight).
			Width(c.TerminalWidth).
			Align(lipgloss.Center).
			Render(ui.TitleStyle.Render(title)))
	}

	panel := m.panel.View()
	if c.PanelHeight > 0 {
		panel = lipgloss.NewStyle().
			MarginLeft(c.PanelX).
			Height(c.PanelHeight).
			Render(panel)
	}
	sections = append(sections, panel)

	if !m.degradation.HideMenu && c.MenuHeight > 0 {
		line := m.menu.String()
		if m.status != "" {
			line = lipgloss.PlaceHorizontal(c.MenuWidth, lipgloss.Center, ui.TextStyles.Secondary.Render(m.status))
		}
		sections = append(sections, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
