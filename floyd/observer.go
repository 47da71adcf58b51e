// SPDX-License-Identifier: MIT

package floyd

import "time"

// StepEvent is emitted after each elimination step of the snapshot build.
type StepEvent struct {
	Step    int // 1-based progress counter, Step == Node+1
	Node    int // node eliminated in this step
	Order   int // number of nodes n; the build has Order steps
	Relaxed int // cells strictly improved by this step
}

// CompleteEvent is emitted once, after the last elimination step.
type CompleteEvent struct {
	Order     int           // number of nodes n
	Snapshots int           // retained snapshots, always Order+1
	Elapsed   time.Duration // wall time of the whole build
}

// Observer receives progress notifications from the snapshot build.
// Implementations must not assume they are called at all: a Solver whose
// snapshots are already built emits nothing.
type Observer interface {
	OnStep(ev StepEvent)
	OnComplete(ev CompleteEvent)
}

// NopObserver discards every event. It is the default sink.
type NopObserver struct{}

// OnStep implements Observer.
func (NopObserver) OnStep(StepEvent) {}

// OnComplete implements Observer.
func (NopObserver) OnComplete(CompleteEvent) {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Step     func(StepEvent)
	Complete func(CompleteEvent)
}

// OnStep implements Observer.
func (f ObserverFuncs) OnStep(ev StepEvent) {
	if f.Step != nil {
		f.Step(ev)
	}
}

// OnComplete implements Observer.
func (f ObserverFuncs) OnComplete(ev CompleteEvent) {
	if f.Complete != nil {
		f.Complete(ev)
	}
}

var (
	_ Observer = NopObserver{}
	_ Observer = ObserverFuncs{}
)
