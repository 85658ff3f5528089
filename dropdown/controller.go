package dropdown

import (
	"time"

	"dropdown/log"
	"dropdown/transition"
)

const (
	// DefaultExpandDuration is the length of the expand transition.
	DefaultExpandDuration = 300 * time.Millisecond
	// DefaultCollapseDuration is the length of the collapse transition and of
	// the scrim fade-out.
	DefaultCollapseDuration = 250 * time.Millisecond
)

// Run names, as reported by the runner.
const (
	runExpand   = "expand"
	runCollapse = "collapse"
	runFadeOut  = "scrim-fade-out"
)

// Controller is the expand/collapse state machine.
//
// All methods must be called from the goroutine that runs the UI event loop;
// the runner delivers its callbacks on the same loop.
type Controller struct {
	container Container
	runner    transition.Runner

	state State
	// busy is true strictly while the bounds transition is running.
	busy   bool
	closed bool

	header   View
	content  View
	listener Listener

	expandDuration   time.Duration
	collapseDuration time.Duration
	expandCurve      transition.Curve

	// transition is the bounds/fade run that owns busy; fade is the
	// independent scrim fade-out.
	transition transition.Handle
	fade       transition.Handle
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithExpandDuration sets the expand transition length. Zero expands without
// interpolation.
func WithExpandDuration(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.expandDuration = d
	}
}

// WithCollapseDuration sets the collapse transition and fade-out length.
func WithCollapseDuration(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.collapseDuration = d
	}
}

// WithExpandCurve sets the easing of the expand transition. Nil keeps
// AccelerateDecelerate.
func WithExpandCurve(curve transition.Curve) ControllerOption {
	return func(c *Controller) {
		if curve != nil {
			c.expandCurve = curve
		}
	}
}

// NewController returns a collapsed controller driving container through
// runner.
func NewController(container Container, runner transition.Runner, opts ...ControllerOption) *Controller {
	c := &Controller{
		container:        container,
		runner:           runner,
		state:            Collapsed,
		expandDuration:   DefaultExpandDuration,
		collapseDuration: DefaultCollapseDuration,
		expandCurve:      transition.AccelerateDecelerate,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Expand shows the content and the scrim. It does nothing unless the panel is
// collapsed, idle, and has a content view.
func (c *Controller) Expand() {
	if !c.canTransition(Collapsed) {
		log.TransitionTrace("expand ignored: state=%s busy=%v content=%v closed=%v",
			c.state, c.busy, c.content != nil, c.closed)
		return
	}
	c.state = Transitioning

	if c.runner.SupportsAnimatedTransitions() {
		c.transition = c.runner.Run(c.expandSpec(), c.transitionStarted, c.expandEnded)
	} else {
		c.container.SetExtent(1)
		c.container.SetOpacity(RoleOverlay, 1)
	}
	c.container.SetVisible(RoleOverlay, true)
	c.container.SetVisible(RoleContent, true)
	if c.listener != nil {
		c.listener.OnExpanded()
	}

	c.state = Expanded
	log.TransitionTrace("expanded busy=%v", c.busy)
}

// Collapse hides the content and fades the scrim out. It does nothing unless
// the panel is expanded, idle, and has a content view.
func (c *Controller) Collapse() {
	if !c.canTransition(Expanded) {
		log.TransitionTrace("collapse ignored: state=%s busy=%v content=%v closed=%v",
			c.state, c.busy, c.content != nil, c.closed)
		return
	}
	c.state = Transitioning

	if c.runner.SupportsAnimatedTransitions() {
		c.fade = c.runner.Run(c.fadeOutSpec(), nil, c.fadeEnded)
		c.transition = c.runner.Run(c.collapseSpec(), c.transitionStarted, c.collapseEnded)
	} else {
		c.container.SetVisible(RoleOverlay, false)
		c.container.SetExtent(0)
	}
	c.container.SetVisible(RoleContent, false)
	if c.listener != nil {
		c.listener.OnCollapsed()
	}

	c.state = Collapsed
	log.TransitionTrace("collapsed busy=%v", c.busy)
}

// Toggle collapses an expanded panel and expands a collapsed one.
func (c *Controller) Toggle() {
	if c.state == Expanded {
		c.Collapse()
		return
	}
	c.Expand()
}

func (c *Controller) canTransition(from State) bool {
	return !c.closed && c.state == from && !c.busy && c.content != nil
}

func (c *Controller) expandSpec() transition.Spec {
	return transition.Spec{
		Name:     runExpand,
		Targets:  []transition.Target{transition.TargetBounds, transition.TargetOpacity},
		Duration: c.expandDuration,
		Curve:    c.expandCurve,
		Step: func(t float64) {
			c.container.SetExtent(t)
			c.container.SetOpacity(RoleOverlay, t)
		},
	}
}

func (c *Controller) collapseSpec() transition.Spec {
	return transition.Spec{
		Name:     runCollapse,
		Targets:  []transition.Target{transition.TargetBounds},
		Duration: c.collapseDuration,
		Curve:    transition.AccelerateDecelerate,
		Step: func(t float64) {
			c.container.SetExtent(1 - t)
		},
	}
}

func (c *Controller) fadeOutSpec() transition.Spec {
	return transition.Spec{
		Name:     runFadeOut,
		Targets:  []transition.Target{transition.TargetOpacity},
		Duration: c.collapseDuration,
		Curve:    transition.Accelerate,
		Step: func(t float64) {
			c.container.SetOpacity(RoleOverlay, 1-t)
		},
	}
}

func (c *Controller) transitionStarted() {
	c.busy = true
}

// expandEnded and collapseEnded clear busy and settle the container on the
// final frame, which a cancelled run never reached.
func (c *Controller) expandEnded() {
	c.busy = false
	c.container.SetExtent(1)
	c.container.SetOpacity(RoleOverlay, 1)
}

func (c *Controller) collapseEnded() {
	c.busy = false
	c.container.SetExtent(0)
}

// fadeEnded hides the scrim and restores its opacity for the next expand.
func (c *Controller) fadeEnded() {
	c.container.SetVisible(RoleOverlay, false)
	c.container.SetOpacity(RoleOverlay, 1)
}

// IsExpanded reports whether the panel is expanded.
func (c *Controller) IsExpanded() bool {
	return c.state == Expanded
}

// State returns the committed state.
func (c *Controller) State() State {
	return c.state
}

// IsBusy reports whether a bounds transition is in flight.
func (c *Controller) IsBusy() bool {
	return c.busy
}

// SetHeaderView installs v as the header, replacing any previous header.
func (c *Controller) SetHeaderView(v View) {
	if c.header != nil {
		c.container.ClearSlot(RoleHeader)
	}
	c.header = v
	if v != nil {
		c.container.SetSlot(RoleHeader, v)
	}
}

// HeaderView returns the header view, or nil.
func (c *Controller) HeaderView() View {
	return c.header
}

// SetContentView installs v as the content, replacing any previous content,
// and shows or hides it to match the current state without animating.
// Passing nil removes the content, which disables Expand and Collapse.
func (c *Controller) SetContentView(v View) {
	if c.content != nil {
		c.container.ClearSlot(RoleContent)
	}
	c.content = v
	if v == nil {
		return
	}
	c.container.SetSlot(RoleContent, v)

	open := c.state != Collapsed
	c.container.SetVisible(RoleContent, open)
	if !c.busy {
		if open {
			c.container.SetExtent(1)
		} else {
			c.container.SetExtent(0)
		}
	}
}

// ContentView returns the content view, or nil.
func (c *Controller) ContentView() View {
	return c.content
}

// SetListener replaces the listener. Nil removes it.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// Listener returns the current listener, or nil.
func (c *Controller) Listener() Listener {
	return c.listener
}

// Close disposes in-flight runs so none of their callbacks reach the
// controller, and turns Expand and Collapse into no-ops.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, h := range []transition.Handle{c.transition, c.fade} {
		if h != nil {
			h.Dispose()
		}
	}
	c.transition, c.fade = nil, nil
	c.listener = nil
	log.TransitionTrace("closed in state=%s busy=%v", c.state, c.busy)
}
