package transition

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// InstantRunner is the runner for hosts that cannot animate. Every run jumps
// to its final frame inside Run.
type InstantRunner struct {
	book book
}

// NewInstantRunner returns a runner without animation capability.
func NewInstantRunner() *InstantRunner {
	return &InstantRunner{}
}

// Run implements Runner.
func (r *InstantRunner) Run(spec Spec, onStart, onEnd func()) Handle {
	spec.Duration = 0
	return r.book.begin(spec, time.Time{}, onStart, onEnd)
}

// SupportsAnimatedTransitions implements Runner.
func (r *InstantRunner) SupportsAnimatedTransitions() bool {
	return false
}

// ForOutput picks the runner for a program writing to out. Animations need a
// terminal and are skipped when reduceMotion is set.
func ForOutput(out io.Writer, reduceMotion bool, fps int) Runner {
	if reduceMotion || !isTerminal(out) {
		return NewInstantRunner()
	}
	return NewTickRunner(WithFrameRate(fps))
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
