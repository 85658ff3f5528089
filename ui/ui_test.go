package ui

import (
	"strings"
	"testing"
	"time"

	"dropdown/testing/snapshot"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestFormatWait(t *testing.T) {
	tests := []struct {
		name     string
		wait     time.Duration
		expected string
	}{
		{name: "closed", wait: -1, expected: "Closed"},
		{name: "no queue", wait: 0, expected: "No wait time"},
		{name: "seconds", wait: 40 * time.Second, expected: "No wait time"},
		{name: "minutes", wait: 3 * time.Minute, expected: "3 minute wait"},
		{name: "ten minutes", wait: 10*time.Minute + 30*time.Second, expected: "10 minute wait"},
		{name: "hours", wait: 90 * time.Minute, expected: "1 hour wait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatWait(tt.wait))
		})
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago      time.Duration
		expected string
	}{
		{ago: 10 * time.Second, expected: "just now"},
		{ago: 2 * time.Minute, expected: "2m ago"},
		{ago: 3 * time.Hour, expected: "3h ago"},
		{ago: 50 * time.Hour, expected: "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRelativeTime(now.Add(-tt.ago), now))
		})
	}
}

func TestStandStatus(t *testing.T) {
	assert.Equal(t, StandClosed, Stand{Wait: "Closed"}.Status())
	assert.Equal(t, StandOpen, Stand{Wait: "No wait time"}.Status())
	assert.Equal(t, StandOpen, Stand{}.Status())
	assert.Equal(t, StandWaiting, Stand{Wait: "3 minute wait"}.Status())
}

func TestStandDelegateRender(t *testing.T) {
	stand := Stand{ID: 2, Name: "Manhattan Bourjee Sliders", Wait: "Closed"}

	t.Run("two lines", func(t *testing.T) {
		d := NewStandDelegate(1)
		out := d.render(stand, 1, false, 40)

		assert.Equal(t, 2, d.Height())
		assert.Equal(t, 2, snapshot.Lines(out))
		assert.Equal(t, 40, snapshot.Width(out))
		assert.Contains(t, snapshot.Row(out, 0), "2. Manhattan Bourjee Sliders")
		assert.Contains(t, snapshot.Row(out, 1), "× Closed")
	})

	t.Run("current stand is marked", func(t *testing.T) {
		d := NewStandDelegate(2)
		out := d.render(stand, 1, true, 40)

		assert.True(t, strings.HasSuffix(snapshot.Row(out, 0), "✓"))
	})

	t.Run("compact truncates", func(t *testing.T) {
		d := &StandDelegate{Compact: true, Current: 2}
		out := d.render(stand, 1, false, 16)

		assert.Equal(t, 1, d.Height())
		assert.Equal(t, 1, snapshot.Lines(out))
		assert.Equal(t, 16, snapshot.Width(out))
		assert.Contains(t, snapshot.StripANSI(out), "...")
	})

	t.Run("long wait keeps row height", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		d := &StandDelegate{Now: func() time.Time { return now }}
		tests := []struct {
			name  string
			wait  string
			width int
		}{
			{name: "updated suffix", wait: "10 minute wait", width: 36},
			{name: "updated suffix narrow", wait: "10 minute wait", width: 24},
			{name: "long wait", wait: "45 minute wait, the line wraps around the block twice today", width: 60},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := Stand{ID: 3, Name: "Bronx Tea", Wait: tt.wait, Updated: now.Add(-3 * time.Hour)}

				out := d.render(s, 3, false, tt.width)

				assert.Equal(t, d.Height(), snapshot.Lines(out))
				assert.Equal(t, tt.width, snapshot.Width(out))
				assert.Contains(t, snapshot.Row(out, 1), "...")
			})
		}
	})

	t.Run("updated time", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		d := &StandDelegate{Now: func() time.Time { return now }}
		updated := stand
		updated.Updated = now.Add(-5 * time.Minute)

		out := d.render(updated, 0, false, 50)

		assert.Contains(t, snapshot.Row(out, 1), "updated 5m ago")
	})
}

func TestStandHeader(t *testing.T) {
	h := &StandHeader{
		Stand: Stand{Name: "Brooklyn Lemonade", Wait: "3 minute wait"},
		Width: 40,
	}

	out := h.View()
	assert.Equal(t, 40, snapshot.Width(out))
	assert.Contains(t, snapshot.StripANSI(out), "Brooklyn Lemonade · 3 minute wait")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(snapshot.StripANSI(out)), ChevronCollapsed))

	h.Expanded = true
	assert.Contains(t, snapshot.StripANSI(h.View()), ChevronExpanded)

	h.Width = 16
	narrow := h.View()
	assert.Equal(t, 16, snapshot.Width(narrow))
	assert.NotContains(t, snapshot.StripANSI(narrow), "minute")

	h.Width = 0
	assert.Contains(t, snapshot.StripANSI(h.View()), "Brooklyn Lemonade · 3 minute wait ▲")
}

func TestMenu(t *testing.T) {
	toggle := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle"))
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())

	m := NewMenu([]key.Binding{toggle}, []key.Binding{hidden, quit})

	out := snapshot.StripANSI(m.String())
	assert.Equal(t, "tab toggle │ q quit", out)

	m.Keydown("q")
	assert.True(t, m.pressed(quit))
	assert.False(t, m.pressed(toggle))
	m.ClearKeydown()
	assert.False(t, m.pressed(quit))

	m.SetSize(40, 1)
	assert.Equal(t, 40, snapshot.Width(m.String()))

	m.SetSize(10, 1)
	narrow := snapshot.StripANSI(m.String())
	assert.Equal(t, 10, snapshot.Width(narrow))
	assert.True(t, strings.HasSuffix(narrow, "…"))
}
