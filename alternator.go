package alternator

import (
	"fmt"

	"github.com/grindlemire/alternator/internal/debug"
)

// Alternator is a component that applies a fixed cycle of overrides to the
// children it renders. It is immutable after New and safe for concurrent use.
type Alternator struct {
	target    *Producer
	overrides []Props
}

// Option is a functional option for configuring an Alternator.
type Option func(*Alternator) error

// WithOverrides appends override records to the cycle, in order.
// Each record is copied.
func WithOverrides(overrides ...Props) Option {
	return func(a *Alternator) error {
		for i, o := range overrides {
			if o == nil {
				return fmt.Errorf("override %d is nil", len(a.overrides)+i)
			}
		}
		for _, o := range overrides {
			a.overrides = append(a.overrides, o.Clone())
		}
		return nil
	}
}

// WithOverride appends a single override record to the cycle.
func WithOverride(override Props) Option {
	return WithOverrides(override)
}

// New creates an Alternator for elements rendered by target.
// An Alternator with no overrides is valid; it only fails at render time if a
// child actually matches.
func New(target *Producer, opts ...Option) (*Alternator, error) {
	if target == nil {
		return nil, &ArgumentError{
			Arg:     "target",
			Message: "producer is nil",
			Hint:    "create one with NewProducer",
		}
	}
	a := &Alternator{target: target}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, &ArgumentError{Arg: "overrides", Message: err.Error()}
		}
	}
	debug.Log("alternator: new for %s with %d override(s)", target, len(a.overrides))
	return a, nil
}

// Target returns the producer whose elements receive overrides.
func (a *Alternator) Target() *Producer {
	return a.target
}

// Overrides returns a copy of the override cycle.
func (a *Alternator) Overrides() []Props {
	out := make([]Props, len(a.overrides))
	for i, o := range a.overrides {
		out[i] = o.Clone()
	}
	return out
}

// Render enumerates children and applies the override cycle to them. The
// cycle restarts at the first override on every call.
func (a *Alternator) Render(children ...Node) (Fragment, error) {
	out, err := Alternate(a.target, a.overrides, Children(children...))
	if err != nil {
		return nil, fmt.Errorf("render %s alternator: %w", a.target, err)
	}
	return out, nil
}
