package transition

import (
	"time"

	"dropdown/log"
)

// Handle controls a single run.
type Handle interface {
	// Cancel stops the run where it is. onEnd still fires.
	Cancel()
	// Dispose stops the run and guarantees no further callback fires. Use it
	// when the owner of the callbacks is torn down.
	Dispose()
	// Done reports whether the run has ended or been disposed.
	Done() bool
	// Progress returns the eased progress of the last frame.
	Progress() float64
}

// Runner animates transitions.
type Runner interface {
	// Run starts spec. onStart fires before Run returns and before the first
	// Step. onEnd fires exactly once unless the run is disposed first. Either
	// callback may be nil.
	Run(spec Spec, onStart, onEnd func()) Handle
	// SupportsAnimatedTransitions reports whether the host can animate. When
	// false, callers should apply end states directly instead of running.
	SupportsAnimatedTransitions() bool
}

// run is the bookkeeping shared by every Runner implementation.
type run struct {
	spec     Spec
	onEnd    func()
	start    time.Time
	progress float64
	done     bool
	book     *book
}

func (r *run) step(p float64) {
	if r.done {
		return
	}
	r.progress = r.spec.ease(p)
	if r.spec.Step != nil {
		r.spec.Step(r.progress)
	}
}

// end marks the run finished and fires onEnd once.
func (r *run) end() {
	if r.done {
		return
	}
	r.done = true
	r.book.remove(r)
	log.TransitionTrace("end %q at %.2f", r.spec.Name, r.progress)
	if r.onEnd != nil {
		r.onEnd()
	}
}

// complete jumps to the final frame and ends the run.
func (r *run) complete() {
	r.step(1)
	r.end()
}

func (r *run) Cancel() {
	if r.done {
		return
	}
	log.TransitionTrace("cancel %q", r.spec.Name)
	r.end()
}

func (r *run) Dispose() {
	if r.done {
		return
	}
	log.TransitionTrace("dispose %q", r.spec.Name)
	r.done = true
	r.book.remove(r)
}

func (r *run) Done() bool {
	return r.done
}

func (r *run) Progress() float64 {
	return r.progress
}

// book tracks active runs and resolves target conflicts between them.
type book struct {
	active []*run
}

// begin ends every active run that shares a target with spec, then starts a
// new run: onStart, then the first Step. Runs with no duration complete
// immediately.
func (b *book) begin(spec Spec, now time.Time, onStart, onEnd func()) *run {
	for _, other := range b.snapshot() {
		if other.spec.claims(spec) {
			log.TransitionTrace("%q interrupts %q", spec.Name, other.spec.Name)
			other.complete()
		}
	}

	r := &run{spec: spec, onEnd: onEnd, start: now, book: b}
	b.active = append(b.active, r)
	log.TransitionTrace("start %q targets=%v duration=%v", spec.Name, spec.Targets, spec.Duration)
	if onStart != nil {
		onStart()
	}
	r.step(0)
	if spec.Duration <= 0 {
		r.complete()
	}
	return r
}

func (b *book) remove(r *run) {
	for i, other := range b.active {
		if other == r {
			b.active = append(b.active[:i], b.active[i+1:]...)
			return
		}
	}
}

// snapshot copies the active list so callbacks may start or end runs while
// the caller iterates.
func (b *book) snapshot() []*run {
	runs := make([]*run, len(b.active))
	copy(runs, b.active)
	return runs
}

func (b *book) len() int {
	return len(b.active)
}
