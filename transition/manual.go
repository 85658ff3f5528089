package transition

import "time"

// ManualRunner keeps runs active until told otherwise. Tests and headless hosts
// use it to step transitions deterministically.
type ManualRunner struct {
	// Animated is returned by SupportsAnimatedTransitions.
	Animated bool

	book book
}

// NewManualRunner returns a ManualRunner that reports animation capability.
func NewManualRunner() *ManualRunner {
	return &ManualRunner{Animated: true}
}

// Run implements Runner.
func (r *ManualRunner) Run(spec Spec, onStart, onEnd func()) Handle {
	return r.book.begin(spec, time.Time{}, onStart, onEnd)
}

// SupportsAnimatedTransitions implements Runner.
func (r *ManualRunner) SupportsAnimatedTransitions() bool {
	return r.Animated
}

// Active returns the names of runs in flight, oldest first.
func (r *ManualRunner) Active() []string {
	names := make([]string, 0, r.book.len())
	for _, run := range r.book.active {
		names = append(names, run.spec.Name)
	}
	return names
}

// Advance moves every active run to linear progress p without ending it.
func (r *ManualRunner) Advance(p float64) {
	for _, run := range r.book.snapshot() {
		run.step(p)
	}
}

// Finish completes the active runs with the given name. It reports whether
// any run matched.
func (r *ManualRunner) Finish(name string) bool {
	found := false
	for _, run := range r.book.snapshot() {
		if run.spec.Name == name {
			run.complete()
			found = true
		}
	}
	return found
}

// FinishAll completes every active run, including runs started by callbacks
// of the runs being finished.
func (r *ManualRunner) FinishAll() {
	for r.book.len() > 0 {
		for _, run := range r.book.snapshot() {
			run.complete()
		}
	}
}

// CancelAll cancels every active run the way a host would.
func (r *ManualRunner) CancelAll() {
	for _, run := range r.book.snapshot() {
		run.Cancel()
	}
}
