// SPDX-License-Identifier: MIT

package observe

import "github.com/katalvlaran/floydpaths/floyd"

// Multi forwards every event to each non-nil observer, in order.
type Multi []floyd.Observer

// OnStep implements floyd.Observer.
func (m Multi) OnStep(ev floyd.StepEvent) {
	for _, o := range m {
		if o != nil {
			o.OnStep(ev)
		}
	}
}

// OnComplete implements floyd.Observer.
func (m Multi) OnComplete(ev floyd.CompleteEvent) {
	for _, o := range m {
		if o != nil {
			o.OnComplete(ev)
		}
	}
}

var _ floyd.Observer = Multi(nil)
