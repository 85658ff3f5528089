package transition

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameRate is the number of frames per second a TickRunner renders.
const DefaultFrameRate = 60

var lastRunnerID int64

// FrameMsg advances the TickRunner that scheduled it.
type FrameMsg struct {
	ID   int64
	Time time.Time
}

// TickRunner animates runs on the bubbletea event loop. It schedules a
// tea.Tick per frame while any run is active; the owning model forwards
// messages to Update and returns the resulting command.
type TickRunner struct {
	id       int64
	interval time.Duration
	now      func() time.Time
	book     book
	ticking  bool
}

// TickOption configures a TickRunner.
type TickOption func(*TickRunner)

// WithFrameRate sets the frames per second. Non-positive values are ignored.
func WithFrameRate(fps int) TickOption {
	return func(r *TickRunner) {
		if fps > 0 {
			r.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithClock replaces time.Now. Progress is measured with this clock, not with
// the frame message timestamps.
func WithClock(now func() time.Time) TickOption {
	return func(r *TickRunner) {
		r.now = now
	}
}

// NewTickRunner returns a runner driven by bubbletea frame ticks.
func NewTickRunner(opts ...TickOption) *TickRunner {
	r := &TickRunner{
		id:       atomic.AddInt64(&lastRunnerID, 1),
		interval: time.Second / DefaultFrameRate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run implements Runner.
func (r *TickRunner) Run(spec Spec, onStart, onEnd func()) Handle {
	return r.book.begin(spec, r.now(), onStart, onEnd)
}

// SupportsAnimatedTransitions implements Runner.
func (r *TickRunner) SupportsAnimatedTransitions() bool {
	return true
}

// Active reports the number of runs in flight.
func (r *TickRunner) Active() int {
	return r.book.len()
}

// Cmd returns the command for the next frame, or nil when nothing is running
// or a frame is already scheduled.
func (r *TickRunner) Cmd() tea.Cmd {
	if r.ticking || r.book.len() == 0 {
		return nil
	}
	r.ticking = true
	id := r.id
	return tea.Tick(r.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// Update advances active runs when msg is one of this runner's frames and
// returns the next frame command. Other messages are ignored.
func (r *TickRunner) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != r.id {
		return nil
	}
	r.ticking = false
	r.advance(r.now())
	return r.Cmd()
}

func (r *TickRunner) advance(now time.Time) {
	for _, run := range r.book.snapshot() {
		if run.done {
			continue
		}
		elapsed := now.Sub(run.start)
		p := float64(elapsed) / float64(run.spec.Duration)
		if p >= 1 {
			run.complete()
			continue
		}
		run.step(p)
	}
}
