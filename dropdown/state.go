// Package dropdown implements an expandable panel: a header that is always
// drawn, a content region that expands and collapses, and a dimmed scrim
// behind the expanded content.
//
// Controller owns the expand/collapse state machine. Panel binds a Controller
// to bubbletea and lipgloss.
package dropdown

import (
	"errors"
	"fmt"
)

// State is the committed state of the panel.
type State int

const (
	// Collapsed shows only the header.
	Collapsed State = iota
	// Transitioning is held while Expand or Collapse commits its effects.
	// It always resolves to the opposite of the state it was entered from.
	Transitioning
	// Expanded shows the header, the content and the scrim.
	Expanded
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Transitioning:
		return "transitioning"
	case Expanded:
		return "expanded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrNoHeader is returned by Panel.Validate when no header view is set.
	ErrNoHeader = errors.New("dropdown: header view not set")
	// ErrNoContent is returned by Panel.Validate when no content view is set.
	ErrNoContent = errors.New("dropdown: content view not set")
)
