// Package snapshot provides golden file testing for rendered views.
// It captures rendered output and compares it against known-good files.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

// GoldenDir is the default directory for golden files.
const GoldenDir = "testdata/golden"

var (
	csiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap provides snapshot testing functionality.
type Snap struct {
	t         *testing.T
	goldenDir string
	update    bool
}

// New creates a Snap for the given test. UPDATE_GOLDEN=1 rewrites golden
// files instead of comparing against them.
func New(t *testing.T) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv("UPDATE_GOLDEN") == "1",
	}
}

// WithDir sets a custom golden file directory.
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// Assert compares actual output against the golden file name.golden.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	goldenPath := filepath.Join(s.goldenDir, name+".golden")
	normalized := normalizeOutput(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(normalized), 0644); err != nil {
			s.t.Fatalf("failed to write golden file: %v", err)
		}
		s.t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.t.Fatalf("Golden file not found: %s\nRun with UPDATE_GOLDEN=1 to create it.\nActual output:\n%s", goldenPath, normalized)
		}
		s.t.Fatalf("failed to read golden file: %v", err)
	}

	if string(expected) != normalized {
		s.t.Errorf("Snapshot mismatch for %s\n\nExpected:\n%s\n\nActual:\n%s\n\nRun with UPDATE_GOLDEN=1 to update.",
			name, string(expected), normalized)
	}
}

// AssertContains checks that the normalized output contains substr.
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that the normalized output does not contain substr.
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// normalizeOutput strips escape codes, normalizes line endings and trims
// trailing whitespace from every line.
func normalizeOutput(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes CSI escape codes and OSC 8 hyperlinks.
func StripANSI(s string) string {
	s = csiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the number of rows in the rendered output.
func Lines(s string) int {
	return len(strings.Split(s, "\n"))
}

// Width returns the widest row of the rendered output in cells.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// Row returns row i of the output with escape codes and trailing whitespace
// removed, or "" when the output has fewer rows.
func Row(s string, i int) string {
	lines := strings.Split(normalizeOutput(s), "\n")
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

// RowOf returns the index of the first row containing substr, or -1.
func RowOf(s, substr string) int {
	for i, line := range strings.Split(normalizeOutput(s), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}
