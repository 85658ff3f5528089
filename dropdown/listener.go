package dropdown

// Listener is notified when Expand or Collapse succeeds. Callbacks run
// synchronously while the call commits, before the animation plays.
type Listener interface {
	// OnExpanded is called once per successful Expand.
	OnExpanded()
	// OnCollapsed is called once per successful Collapse.
	OnCollapsed()
}

// ListenerFuncs adapts a pair of functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Expanded  func()
	Collapsed func()
}

func (l ListenerFuncs) OnExpanded() {
	if l.Expanded != nil {
		l.Expanded()
	}
}

func (l ListenerFuncs) OnCollapsed() {
	if l.Collapsed != nil {
		l.Collapsed()
	}
}
