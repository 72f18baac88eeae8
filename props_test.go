package alternator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	type tc struct {
		base Props
		over Props
		want Props
	}

	tests := map[string]tc{
		"override wins on collision": {
			base: Props{"a": 1, "b": 2},
			over: Props{"b": 9, "c": 3},
			want: Props{"a": 1, "b": 9, "c": 3},
		},
		"empty override keeps base": {
			base: Props{"a": 1},
			over: Props{},
			want: Props{"a": 1},
		},
		"nil base": {
			base: nil,
			over: Props{"x": 1},
			want: Props{"x": 1},
		},
		"both nil": {
			want: Props{},
		},
		"nil value in override is kept": {
			base: Props{"a": 1},
			over: Props{"a": nil},
			want: Props{"a": nil},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.base, tt.over))
		})
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	base := Props{"a": 1}
	over := Props{"a": 2, "b": 3}

	out := Merge(base, over)
	out["z"] = 0

	assert.Equal(t, Props{"a": 1}, base)
	assert.Equal(t, Props{"a": 2, "b": 3}, over)
}

func TestMerge_GenericMapTypes(t *testing.T) {
	got := Merge(map[int]string{1: "one", 2: "two"}, map[int]string{2: "deux"})
	assert.Equal(t, map[int]string{1: "one", 2: "deux"}, got)
}

func TestProps_Clone(t *testing.T) {
	p := Props{"a": 1}
	c := p.Clone()
	c["a"] = 2

	assert.Equal(t, 1, p["a"])
	assert.NotNil(t, Props(nil).Clone())
}
