package alternator

// Producer identifies the component responsible for rendering an Element.
// Producers are compared by pointer: two handles created with the same name
// are different producers.
type Producer struct {
	name string
}

// NewProducer creates a new producer identity. The name is only used for
// display and debugging.
func NewProducer(name string) *Producer {
	return &Producer{name: name}
}

// Name returns the display name given to NewProducer.
func (p *Producer) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

// String implements fmt.Stringer.
func (p *Producer) String() string {
	if p == nil {
		return "<nil producer>"
	}
	return p.name
}
