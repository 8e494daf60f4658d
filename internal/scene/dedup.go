package scene

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/Faultbox/brickatlas/pkg/brick"
)

// Visibility is a bit set over a brick list.
type Visibility []uint64

// NewVisibility returns a set of n bricks, all hidden.
func NewVisibility(n int) Visibility {
	return make(Visibility, (n+63)/64)
}

// AllVisible returns a set of n bricks, all shown.
func AllVisible(n int) Visibility {
	v := NewVisibility(n)
	for i := 0; i < n; i++ {
		v.Set(i)
	}
	return v
}

// Set marks brick i visible.
func (v Visibility) Set(i int) { v[i/64] |= 1 << (uint(i) % 64) }

// Clear marks brick i hidden.
func (v Visibility) Clear(i int) { v[i/64] &^= 1 << (uint(i) % 64) }

// Has reports whether brick i is visible. Out of range indices are hidden.
func (v Visibility) Has(i int) bool {
	if i < 0 || i/64 >= len(v) {
		return false
	}
	return v[i/64]&(1<<(uint(i)%64)) != 0
}

// Count returns the number of visible bricks.
func (v Visibility) Count() int {
	n := 0
	for _, w := range v {
		n += bits.OnesCount64(w)
	}
	return n
}

// Deduplicate hides bricks that are exactly covered by another brick with
// the same footprint and orientation. Among the bricks of one footprint the
// one with the highest top survives; on equal tops the later one in list
// order wins.
//
// Only bricks set in in are considered; nil means all of them. The result
// is a fresh set and bricks is never modified, so feeding the result back
// in returns an equal set.
func Deduplicate(bricks []Placed, in Visibility) Visibility {
	if in == nil {
		in = AllVisible(len(bricks))
	}

	survivor := make(map[brick.ShapeKey]int, len(bricks))
	for i, p := range bricks {
		if !in.Has(i) {
			continue
		}
		k := p.Key()
		if j, ok := survivor[k]; ok && bricks[j].Top() > p.Top() {
			continue
		}
		survivor[k] = i
	}

	out := NewVisibility(len(bricks))
	for _, i := range survivor {
		out.Set(i)
	}
	return out
}

// SortByHeight returns brick indices in ascending order of top height.
// Bricks with equal tops keep their list order.
func SortByHeight(bricks []Placed) []int {
	order := make([]int, len(bricks))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(bricks[a].Top(), bricks[b].Top())
	})
	return order
}
