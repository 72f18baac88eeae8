package alternator

import "fmt"

// Node is one entry in a children list. Valid elements are *Element values;
// any other value (text, numbers, nil, invalid elements) is opaque to this
// package and passed through as-is.
type Node = any

// Element is an immutable descriptor pairing a Producer with a property bag.
// It represents one node of a declarative UI tree before rendering.
type Element struct {
	producer *Producer
	props    Props
	key      string
}

// ElementOption configures an Element at construction time.
type ElementOption func(*Element)

// WithKey sets the element's reconciliation key. Clone preserves it.
func WithKey(key string) ElementOption {
	return func(e *Element) {
		e.key = key
	}
}

// NewElement creates an element rendered by p. The props bag is copied, so
// later changes to the caller's map do not leak into the element.
func NewElement(p *Producer, props Props, opts ...ElementOption) *Element {
	e := &Element{
		producer: p,
		props:    props.Clone(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsElement reports whether n is a valid element descriptor: a non-nil
// *Element with a producer.
func IsElement(n Node) bool {
	e, ok := n.(*Element)
	return ok && e != nil && e.producer != nil
}

// Producer returns the producer identity of the element.
func (e *Element) Producer() *Producer {
	return e.producer
}

// Props returns a copy of the element's property bag.
func (e *Element) Props() Props {
	return e.props.Clone()
}

// Prop returns a single property value and whether it was set.
func (e *Element) Prop(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// Key returns the element's reconciliation key, or "" if none was set.
func (e *Element) Key() string {
	return e.key
}

// Clone returns a new element with the same producer and key whose props are
// e's props with over merged on top. The receiver is left unchanged.
func (e *Element) Clone(over Props) *Element {
	return &Element{
		producer: e.producer,
		props:    Merge(e.props, over),
		key:      e.key,
	}
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	if e == nil {
		return "<nil element>"
	}
	if e.key != "" {
		return fmt.Sprintf("<%s key=%q %v>", e.producer, e.key, map[string]any(e.props))
	}
	return fmt.Sprintf("<%s %v>", e.producer, map[string]any(e.props))
}
