package alternator

// Props is a property bag attached to an Element. Override records are Props
// holding a subset of an element's keys.
type Props map[string]any

// Clone returns a shallow copy of p. A nil bag clones to an empty one.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a new map holding base with over laid on top.
// Keys present in both take the value from over; keys only in base are kept.
// Neither input is modified.
func Merge[M ~map[K]V, K comparable, V any](base, over M) M {
	out := make(M, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}
