package app

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"dropdown/config"
	"dropdown/log"
	"dropdown/testing/harness"
	"dropdown/testing/snapshot"
	"dropdown/transition"
	"dropdown/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitializeDiscard()
	os.Exit(m.Run())
}

func newTestHome(t *testing.T, width, height int) (*home, *harness.Harness, *transition.ManualRunner) {
	t.Helper()
	runner := transition.NewManualRunner()
	h := newHome(context.Background(), config.DefaultConfig(), runner)
	require.NoError(t, h.panel.Validate())
	return h, harness.New(t, h, width, height), runner
}

// expand opens the panel and plays the transition to the end.
func expand(t *testing.T, hs *harness.Harness, runner *transition.ManualRunner) {
	t.Helper()
	hs.SendSpecialKey(tea.KeyTab)
	runner.FinishAll()
	hs.View()
}

func TestInitialHeader(t *testing.T) {
	h, hs, _ := newTestHome(t, 80, 24)

	view := hs.View()

	assert.Equal(t, 2, snapshot.RowOf(view, "Manhattan Bourjee Sliders · Closed"), "header sits below the title")
	assert.Contains(t, snapshot.Row(view, 2), ui.ChevronCollapsed)
	assert.Equal(t, -1, snapshot.RowOf(view, "Brooklyn Lemonade"))
	assert.Equal(t, InitialStand, h.SelectedStand().ID)
}

func TestToggleShowsStands(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)

	expand(t, hs, runner)

	view := hs.View()
	assert.True(t, h.panel.IsExpanded())
	assert.True(t, h.header.Expanded)
	assert.Contains(t, snapshot.Row(view, 2), ui.ChevronExpanded)
	for _, stand := range DefaultStands() {
		assert.NotEqual(t, -1, snapshot.RowOf(view, stand.Name), stand.Name)
	}
	assert.Equal(t, InitialStand, h.stands.Index(), "list opens on the selected stand")

	hs.SendSpecialKey(tea.KeyEsc)
	runner.FinishAll()
	assert.False(t, h.panel.IsExpanded())
	assert.Contains(t, snapshot.Row(hs.View(), 2), ui.ChevronCollapsed)
}

func TestSelectWithKeys(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)

	hs.SendSpecialKey(tea.KeyEnter)
	assert.False(t, h.panel.IsExpanded(), "enter does nothing while collapsed")

	expand(t, hs, runner)
	hs.SendSpecialKey(tea.KeyDown)
	hs.SendSpecialKey(tea.KeyEnter)

	assert.False(t, h.panel.IsExpanded())
	assert.Equal(t, 2, h.SelectedStand().ID)
	assert.Equal(t, "Queens and Cakes", h.header.Stand.Name)
	assert.Equal(t, 2, h.delegate.Current)

	runner.FinishAll()
	view := hs.View()
	assert.Equal(t, 2, snapshot.RowOf(view, "Queens and Cakes · No wait time"))
	assert.Equal(t, -1, snapshot.RowOf(view, "Bronx Tea"))
}

func TestSelectWithMouse(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)
	c := h.constraints
	expand(t, hs, runner)

	// Stand rows start under the header; each stand takes two rows.
	hs.Click(c.PanelX+2, c.PanelY+1+3*2)

	assert.False(t, h.panel.IsExpanded())
	assert.Equal(t, "Bronx Tea", h.SelectedStand().Name)
}

func TestSelectWithMouseAfterLongWait(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)
	c := h.constraints
	_, err := h.SetStandState(0, "45 minute wait, the line wraps around the block twice today")
	require.NoError(t, err)
	expand(t, hs, runner)

	assert.Equal(t, c.PanelY+1+3*2, snapshot.RowOf(hs.View(), "Bronx Tea"))

	hs.Click(c.PanelX+2, c.PanelY+1+2*2+1)

	assert.Equal(t, "Queens and Cakes", h.SelectedStand().Name)
}

func TestClickHeaderAndScrim(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)
	c := h.constraints
	hs.View()

	hs.Click(c.PanelX+1, c.PanelY)
	require.True(t, h.panel.IsExpanded())
	runner.FinishAll()
	hs.View()

	hs.Click(c.PanelX+1, c.PanelY+c.PanelHeight-1)
	assert.False(t, h.panel.IsExpanded())
	assert.Equal(t, InitialStand, h.SelectedStand().ID, "scrim click keeps the selection")
}

func TestBusyPanelIgnoresStandClicks(t *testing.T) {
	h, hs, _ := newTestHome(t, 80, 24)
	c := h.constraints

	hs.SendSpecialKey(tea.KeyTab)
	require.True(t, h.panel.IsBusy())
	hs.Click(c.PanelX+2, c.PanelY+1)

	assert.Equal(t, InitialStand, h.SelectedStand().ID)
}

func TestSetStandState(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }
	h.delegate.Now = h.now

	_, err := h.SetStandState(InitialStand, "5 minute wait")
	require.NoError(t, err)
	assert.Contains(t, snapshot.Row(hs.View(), 2), "5 minute wait")

	_, err = h.SetStandState(0, ui.WaitClosed)
	require.NoError(t, err)
	assert.Equal(t, "Manhattan Bourjee Sliders", h.header.Stand.Name, "header only follows the selected stand")
	stand, err := h.Stand(0)
	require.NoError(t, err)
	assert.Equal(t, ui.StandClosed, stand.Status())
	assert.Equal(t, now, stand.Updated)

	_, err = h.SetStandState(len(DefaultStands()), "Closed")
	assert.True(t, errors.Is(err, ErrUnknownStand))
	_, err = h.SetStandState(-1, "Closed")
	assert.True(t, errors.Is(err, ErrUnknownStand))

	expand(t, hs, runner)
	assert.NotEqual(t, -1, snapshot.RowOf(hs.View(), "updated just now"))
}

func TestStandStateMsg(t *testing.T) {
	h, hs, _ := newTestHome(t, 80, 24)

	hs.SendMsg(StandStateMsg{ID: InitialStand, Wait: ui.WaitNone})
	assert.Equal(t, ui.WaitNone, h.header.Stand.Wait)

	hs.SendMsg(StandStateMsg{ID: 9, Wait: ui.WaitNone})
	assert.Contains(t, h.status, "unknown stand")
}

func TestCopySelected(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = orig })

	t.Run("success", func(t *testing.T) {
		clipboardWriteAll = func(s string) error {
			copied = s
			return nil
		}
		h, hs, _ := newTestHome(t, 80, 24)

		hs.SendKey("y")

		assert.Equal(t, "Manhattan Bourjee Sliders (Closed)", copied)
		assert.Equal(t, "Copied Manhattan Bourjee Sliders", h.status)
		assert.Contains(t, snapshot.StripANSI(hs.View()), "Copied Manhattan Bourjee Sliders")

		hs.SendMsg(hideStatusMsg{})
		assert.Empty(t, h.status)
	})

	t.Run("failure", func(t *testing.T) {
		clipboardWriteAll = func(string) error {
			return errors.New("no clipboard")
		}
		h, hs, _ := newTestHome(t, 80, 24)

		hs.SendKey("y")

		assert.Equal(t, "failed to copy stand: no clipboard", h.status)
	})
}

func TestQuit(t *testing.T) {
	_, hs, _ := newTestHome(t, 80, 24)

	cmd := hs.SendKey("q")

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMenuFollowsState(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)

	assert.NotContains(t, snapshot.StripANSI(h.menu.String()), "select")

	expand(t, hs, runner)
	assert.Contains(t, snapshot.StripANSI(h.menu.String()), "enter select")

	hs.SendMsg(keyupMsg{})
	assert.Contains(t, snapshot.StripANSI(hs.View()), "tab/space toggle")
}

func TestViewFillsTerminal(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		_, hs, runner := newTestHome(t, size.Width, size.Height)

		assert.Equal(t, size.Height, snapshot.Lines(hs.View()), "collapsed")

		expand(t, hs, runner)
		assert.Equal(t, size.Height, snapshot.Lines(hs.View()), "expanded")
	})
}

func TestExpandCurveFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		curve    string
		expected string
	}{
		{name: "linear", curve: "linear", expected: "0.25"},
		{name: "cubic-bezier", curve: "cubic-bezier(0, 0, 1, 1)", expected: "0.25"},
		{name: "unknown falls back", curve: "wobble", expected: "0.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.ExpandCurve = tt.curve
			runner := transition.NewManualRunner()
			h := newHome(context.Background(), cfg, runner)
			harness.New(t, h, 80, 24).SendSpecialKey(tea.KeyTab)

			runner.Advance(0.25)

			assert.Equal(t, tt.expected, h.panel.InspectNode().State["extent"])
		})
	}
}

func TestInstantRunnerApp(t *testing.T) {
	// A cancelled context makes the menu highlight clear at once.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := newHome(ctx, config.DefaultConfig(), transition.NewInstantRunner())
	hs := harness.New(t, h, 80, 24)

	n := hs.Drain(hs.SendSpecialKey(tea.KeyTab), 10)

	assert.Equal(t, 1, n, "only the highlight reset, no frames")
	assert.True(t, h.panel.IsExpanded())
	assert.False(t, h.panel.IsBusy())
	assert.True(t, strings.Contains(hs.View(), "Bronx Tea"))
}

func TestTickRunnerPlaysToEnd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := newHome(ctx, config.DefaultConfig(), transition.NewTickRunner())
	hs := harness.New(t, h, 80, 24)

	hs.Drain(hs.SendSpecialKey(tea.KeyTab), 200)

	assert.True(t, h.panel.IsExpanded())
	assert.False(t, h.panel.IsBusy(), "frames ran until the expand ended")
}

func TestResizeRelayouts(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)
	expand(t, hs, runner)

	hs.Resize(40, 12)

	assert.Equal(t, 40, hs.Width())
	assert.Equal(t, 12, hs.Height())
	assert.Equal(t, h.constraints.PanelWidth, h.header.Width)
	assert.Equal(t, 12, snapshot.Lines(hs.View()))
	assert.Same(t, h, hs.Model())
}

func TestKeySequenceSelectsLastStand(t *testing.T) {
	h, hs, runner := newTestHome(t, 80, 24)

	harness.NewKeySequence(tea.KeyTab).Play(hs)
	runner.FinishAll()
	harness.NewKeySequence("j", "j", tea.KeyEnter).Play(hs)

	assert.Equal(t, "Bronx Tea", h.SelectedStand().Name)
}
