// Package transform builds ordered, composable mutations over step
// specifications. A Builder accumulates primitive mutations as an explicit
// log; the composed Transform replays the log in call order against any
// number of specs.
package transform

import "github.com/animus-labs/stepkit/step"

// Transform is a named, reusable mutation over a step spec. The purpose is
// informational only. Transforms are immutable once constructed.
type Transform struct {
	purpose string
	fn      func(*step.Spec)
}

// New wraps a mutation function. A nil fn yields a no-op transform.
func New(purpose string, fn func(*step.Spec)) Transform {
	return Transform{purpose: purpose, fn: fn}
}

// Purpose returns the informational purpose the transform was built with.
func (t Transform) Purpose() string {
	return t.purpose
}

// Apply runs the mutation against spec. Applying the same transform to the
// same spec again converges: every primitive mutation replaces by key rather
// than appending blindly.
func (t Transform) Apply(spec *step.Spec) {
	if spec == nil || t.fn == nil {
		return
	}
	t.fn(spec)
}

// Compose folds transforms into one, applied in the given order.
func Compose(purpose string, transforms ...Transform) Transform {
	ts := make([]Transform, len(transforms))
	copy(ts, transforms)
	return Transform{
		purpose: purpose,
		fn: func(spec *step.Spec) {
			for _, t := range ts {
				t.Apply(spec)
			}
		},
	}
}
