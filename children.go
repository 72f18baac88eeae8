package alternator

// Fragment is an ordered list of children rendered in place of its parent,
// with no wrapper node of its own.
type Fragment []Node

// Children enumerates nodes into a flat child list. Fragment and []Node values
// are expanded one level; deeper nesting is kept as opaque values. Every other
// value, nil included, keeps its position.
func Children(nodes ...Node) Fragment {
	out := make(Fragment, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case Fragment:
			out = append(out, v...)
		case []Node:
			out = append(out, v...)
		default:
			out = append(out, n)
		}
	}
	return out
}
