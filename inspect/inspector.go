// Package inspect describes the panel as a JSON tree so tools and tests can
// read its state without looking at the terminal.
// Enable file output by setting DROPDOWN_INSPECT=1.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Introspectable is implemented by components that can report their state.
type Introspectable interface {
	InspectNode() *Node
}

var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

// IsEnabled returns true if inspection mode is active.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv("DROPDOWN_INSPECT") == "1"
		if enabled {
			inspectFile = filepath.Join(os.TempDir(), "dropdown-inspect.json")
		}
	})
	return enabled
}

// WriteSnapshot writes a snapshot to the inspection file when inspection is on.
func WriteSnapshot(snapshot *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(snapshot, inspectFile)
}

// WriteSnapshotToPath writes a snapshot to a specific path.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
