package ui

import (
	"fmt"
	"time"
)

// Wait times with special meaning.
const (
	WaitClosed = "Closed"
	WaitNone   = "No wait time"
)

// FormatWait formats a queue length as a stand's wait time.
// Examples: "No wait time", "3 minute wait", "1 hour wait".
// A negative duration means the stand is closed.
func FormatWait(d time.Duration) string {
	switch {
	case d < 0:
		return WaitClosed
	case d < time.Minute:
		return WaitNone
	case d < time.Hour:
		return fmt.Sprintf("%d minute wait", int(d.Minutes()))
	default:
		return fmt.Sprintf("%d hour wait", int(d.Hours()))
	}
}

// FormatRelativeTime formats t relative to now.
// Examples: "just now", "2m ago", "3h ago", "5d ago"
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
