package dropdown

import "fmt"

// View is an opaque, caller-owned element that occupies a slot.
type View interface {
	View() string
}

// ViewFunc adapts a function to View.
type ViewFunc func() string

func (f ViewFunc) View() string {
	return f()
}

// Role names a slot inside the panel.
type Role int

const (
	RoleHeader Role = iota
	RoleContent
	RoleOverlay
	numRoles
)

func (r Role) String() string {
	switch r {
	case RoleHeader:
		return "header"
	case RoleContent:
		return "content"
	case RoleOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Container is what the controller needs from the host toolkit: slots that can
// be filled, shown, hidden and faded, and a content container whose extent can
// be animated.
type Container interface {
	SetSlot(role Role, v View)
	ClearSlot(role Role)
	SetVisible(role Role, visible bool)
	Visible(role Role) bool
	SetOpacity(role Role, opacity float64)
	Opacity(role Role) float64
	// SetExtent sets the fraction of the content container's natural height
	// that is laid out, from 0 (closed) to 1 (open).
	SetExtent(extent float64)
	Extent() float64
}

// Stack is the Container the Panel renders from.
type Stack struct {
	slots   [numRoles]View
	visible [numRoles]bool
	opacity [numRoles]float64
	extent  float64

	// contentRows is the last measured height of the content, kept so a
	// collapsing container can shrink after its content is hidden.
	contentRows int
}

// NewStack returns a stack with the header visible, everything else hidden,
// every slot fully opaque, and the content container closed.
func NewStack() *Stack {
	s := &Stack{}
	for i := range s.opacity {
		s.opacity[i] = 1
	}
	s.visible[RoleHeader] = true
	return s
}

func (s *Stack) SetSlot(role Role, v View) {
	s.slots[role] = v
}

func (s *Stack) ClearSlot(role Role) {
	s.slots[role] = nil
	if role == RoleContent {
		s.contentRows = 0
	}
}

// Slot returns the view in role, or nil.
func (s *Stack) Slot(role Role) View {
	return s.slots[role]
}

func (s *Stack) SetVisible(role Role, visible bool) {
	s.visible[role] = visible
}

func (s *Stack) Visible(role Role) bool {
	return s.visible[role]
}

func (s *Stack) SetOpacity(role Role, opacity float64) {
	s.opacity[role] = clamp01(opacity)
}

func (s *Stack) Opacity(role Role) float64 {
	return s.opacity[role]
}

func (s *Stack) SetExtent(extent float64) {
	s.extent = clamp01(extent)
}

func (s *Stack) Extent() float64 {
	return s.extent
}

// SetContentRows records the natural height of the content.
func (s *Stack) SetContentRows(rows int) {
	s.contentRows = rows
}

// ContentRows returns the last recorded natural height of the content.
func (s *Stack) ContentRows() int {
	return s.contentRows
}

// ExtentRows converts the extent into rows of the content container.
func (s *Stack) ExtentRows() int {
	return int(s.extent*float64(s.contentRows) + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
