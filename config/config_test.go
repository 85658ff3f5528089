package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dropdown/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitializeDiscard()
	os.Exit(m.Run())
}

func TestGetConfigDir(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("DROPDOWN_HOME", dir)

		got, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("DROPDOWN_HOME", "")
		t.Setenv("HOME", home)

		got, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".dropdown"), got)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file writes defaults", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("DROPDOWN_HOME", dir)

		cfg := LoadConfig()

		assert.Equal(t, DefaultConfig(), cfg)
		assert.FileExists(t, filepath.Join(dir, ConfigFileName))
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("DROPDOWN_HOME", dir)
		data := []byte(`{"overlay_color": "#000000", "reduce_motion": true}`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644))

		cfg := LoadConfig()

		assert.Equal(t, "#000000", cfg.OverlayColor)
		assert.True(t, cfg.ReduceMotion)
		assert.Equal(t, "#3F51B5", cfg.BackgroundColor)
		assert.Equal(t, 300, cfg.ExpandDurationMs)
	})

	t.Run("corrupt file is backed up", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("DROPDOWN_HOME", dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0644))

		cfg := LoadConfig()

		assert.Equal(t, DefaultConfig(), cfg)
		backups, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
		require.NoError(t, err)
		assert.Len(t, backups, 1)
	})
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("DROPDOWN_HOME", filepath.Join(t.TempDir(), "nested"))
	cfg := DefaultConfig()
	cfg.FrameRate = 30
	cfg.CollapseDurationMs = 0

	require.NoError(t, SaveConfig(cfg))

	assert.Equal(t, cfg, LoadConfig())
}

func TestDefaultExpandCurve(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "accelerate-decelerate", cfg.ExpandCurve)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"expand_curve":"accelerate-decelerate"`)
}

func TestDurations(t *testing.T) {
	tests := []struct {
		name     string
		ms       int
		expected time.Duration
	}{
		{name: "default expand", ms: 300, expected: 300 * time.Millisecond},
		{name: "zero", ms: 0, expected: 0},
		{name: "negative", ms: -5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ExpandDurationMs: tt.ms, CollapseDurationMs: tt.ms}
			assert.Equal(t, tt.expected, cfg.ExpandDuration())
			assert.Equal(t, tt.expected, cfg.CollapseDuration())
		})
	}
}
