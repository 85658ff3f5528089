// Package transition runs animated property changes and reports when they
// start and end.
//
// A Runner animates a Spec over time and calls back exactly twice: onStart
// before any visual change, onEnd once the run is over. A run is over when it
// completes, when the host cancels it, or when a newer run claims one of its
// targets. Disposing a run silences it for good.
package transition

import (
	"fmt"
	"time"
)

// Target is a property a transition animates.
type Target int

const (
	// TargetBounds is the layout extent of the content container.
	TargetBounds Target = iota
	// TargetOpacity is the opacity of the overlay.
	TargetOpacity
)

func (t Target) String() string {
	switch t {
	case TargetBounds:
		return "bounds"
	case TargetOpacity:
		return "opacity"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// Spec describes a single animated transition. Specs are built fresh for each
// transition and are not retained after the run ends.
type Spec struct {
	// Name identifies the run in traces and in ManualRunner.
	Name string
	// Targets are the properties this run animates. A new run that shares a
	// target with an active run ends the active run first.
	Targets []Target
	// Duration of the run. Zero or negative completes the run inside Run.
	Duration time.Duration
	// Curve eases linear progress. Nil means Linear.
	Curve Curve
	// Step receives eased progress in [0, 1] on every frame, including 0 when
	// the run starts and 1 when it completes.
	Step func(t float64)
}

func (s Spec) claims(other Spec) bool {
	for _, a := range s.Targets {
		for _, b := range other.Targets {
			if a == b {
				return true
			}
		}
	}
	return false
}

func (s Spec) ease(p float64) float64 {
	p = clampUnit(p)
	if s.Curve == nil {
		return p
	}
	return s.Curve(p)
}
