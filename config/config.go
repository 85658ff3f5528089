package config

import (
	"dropdown/log"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".dropdown"
)

// GetConfigDir returns the path to the application's configuration directory.
// DROPDOWN_HOME overrides the default under the user's home directory.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("DROPDOWN_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// GetConfigPath returns the path of the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Config represents the application configuration
type Config struct {
	// BackgroundColor fills the header and content container.
	BackgroundColor string `json:"background_color"`
	// OverlayColor is the scrim color at full opacity.
	OverlayColor string `json:"overlay_color"`
	// BackdropColor is the color the scrim fades from and to.
	BackdropColor string `json:"backdrop_color"`
	// ExpandDurationMs is the length of the expand transition. Zero expands at once.
	ExpandDurationMs int `json:"expand_duration_ms"`
	// CollapseDurationMs is the length of the collapse transition and scrim fade.
	CollapseDurationMs int `json:"collapse_duration_ms"`
	// ExpandCurve is the easing of the expand transition: linear, accelerate,
	// decelerate, accelerate-decelerate, ease, ease-in-out or
	// cubic-bezier(x1, y1, x2, y2).
	ExpandCurve string `json:"expand_curve"`
	// FrameRate is the number of animation frames per second.
	FrameRate int `json:"frame_rate"`
	// ReduceMotion disables animated transitions.
	ReduceMotion bool `json:"reduce_motion"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BackgroundColor:    "#3F51B5",
		OverlayColor:       "#616161",
		BackdropColor:      "#1a1a1a",
		ExpandDurationMs:   300,
		CollapseDurationMs: 250,
		ExpandCurve:        "accelerate-decelerate",
		FrameRate:          60,
		ReduceMotion:       false,
	}
}

// ExpandDuration returns the expand transition length.
func (c *Config) ExpandDuration() time.Duration {
	return msDuration(c.ExpandDurationMs)
}

// CollapseDuration returns the collapse transition length.
func (c *Config) CollapseDuration() time.Duration {
	return msDuration(c.CollapseDurationMs)
}

func msDuration(ms int) time.Duration {
	if ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// LoadConfig reads the config file. A missing file is created with defaults;
// a file that fails to parse is backed up and defaults are used.
func LoadConfig() *Config {
	configPath, err := GetConfigPath()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Fields missing from the file keep their defaults.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
