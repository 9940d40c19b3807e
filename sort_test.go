// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/dynarr"
)

func TestSortNumericComparator(t *testing.T) {
	numbers := dynarr.Of(4, 2, 5, 1, 3)
	got := numbers.Sort(func(a, b int) int { return a - b })
	assert.Same(t, numbers, got)
	assert.Equal(t, "1,2,3,4,5", numbers.String())
}

func TestSortDefaultIsLexicographic(t *testing.T) {
	a := dynarr.Of(80, 9, 100, 1)
	a.Sort(nil)
	assert.Equal(t, "1,100,80,9", a.String())

	b := dynarr.Of(80, 9, 100, 1)
	b.Sort(dynarr.ByString[int]())
	assert.Equal(t, a.String(), b.String())
}

func TestSortNumericAndReversed(t *testing.T) {
	a := dynarr.Of(2.5, -1, 10, 0)
	a.Sort(dynarr.Numeric[float64]())
	assert.Equal(t, "-1,0,2.5,10", a.String())
	a.Sort(dynarr.Reversed(dynarr.Numeric[float64]()))
	assert.Equal(t, "10,2.5,0,-1", a.String())
}

func TestSortIsStable(t *testing.T) {
	type item struct {
		key int
		seq int
	}
	rng := rand.New(rand.NewPCG(42, 0))
	items := make([]item, 200)
	for i := range items {
		items[i] = item{key: rng.IntN(5), seq: i}
	}
	a := dynarr.Of(items...)
	a.Sort(func(x, y item) int { return x.key - y.key })
	vs := a.Values()
	for i := 1; i < len(vs); i++ {
		if vs[i-1].key == vs[i].key {
			require.Less(t, vs[i-1].seq, vs[i].seq, "equal keys reordered at %d", i)
		}
	}
}

func TestSortMovesHolesToEnd(t *testing.T) {
	a := dynarr.New[int]()
	a.Set(1, 3)
	a.Set(3, 1)
	a.Set(6, 2)
	a.Sort(func(x, y int) int { return x - y })
	assert.Equal(t, 7, a.Len())
	assert.Equal(t, 3, a.Count())
	assert.Equal(t, "1,2,3,,,,", a.String())
}

func TestSortInconsistentComparatorDoesNotCorrupt(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	vs := make([]int, 500)
	for i := range vs {
		vs[i] = i
	}
	a := dynarr.Of(vs...)
	a.Sort(func(_, _ int) int { return rng.IntN(3) - 1 })
	assert.Equal(t, 500, a.Len())
	assert.Equal(t, 500, a.Count())

	got := a.Values()
	slices.Sort(got)
	assert.Equal(t, vs, got, "elements lost or duplicated")
}
