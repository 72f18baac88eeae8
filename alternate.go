package alternator

import "github.com/grindlemire/alternator/internal/debug"

// Alternate returns a copy of children in which every element rendered by
// target has the next override merged over its props, cycling through
// overrides in order and wrapping after the last one.
//
// Only matching elements advance the cycle. Other values, including elements
// of other producers, are returned unchanged at the same position. A nil
// target matches nothing.
//
// If an element matches and overrides is empty, Alternate returns an
// *ArgumentError. With no matches an empty overrides list is not an error.
func Alternate(target *Producer, overrides []Props, children []Node) (Fragment, error) {
	out := make(Fragment, len(children))
	count := 0
	for i, child := range children {
		out[i] = child
		if target == nil || !IsElement(child) {
			continue
		}
		el := child.(*Element)
		if el.producer != target {
			continue
		}
		if len(overrides) == 0 {
			return nil, &ArgumentError{
				Arg:     "overrides",
				Message: "no override records for matching element " + target.String(),
				Hint:    "supply at least one override",
			}
		}

		override := overrides[count%len(overrides)]
		if debug.Enabled() {
			debug.Log("alternate: child %d is match %d of %s, override %d: %s",
				i, count, target, count%len(overrides), debug.Dump(override))
		}
		out[i] = el.Clone(override)
		count++
	}
	return out, nil
}
