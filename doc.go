// Package alternator cycles a fixed list of property overrides across the
// children of a declarative UI tree.
//
// Children are plain Go values. An *Element pairs a Producer with a Props bag;
// anything else (text, numbers, nil) is passed through untouched. Every child
// whose producer is the target producer receives the next override in
// round-robin order, shallow-merged over its own props:
//
//	card := alternator.NewProducer("Card")
//	out, err := alternator.Alternate(card,
//		[]alternator.Props{{"tone": "light"}, {"tone": "dark"}},
//		alternator.Children(
//			alternator.NewElement(card, nil),
//			"divider",
//			alternator.NewElement(card, nil),
//		),
//	)
//
// The Alternator type wraps the same transformation as a reusable component
// configured with functional options.
package alternator
