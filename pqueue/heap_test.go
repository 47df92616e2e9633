package pqueue_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/linorder/pqueue"
	"github.com/stretchr/testify/require"
)

func TestHeapEmpty(t *testing.T) {
	h := pqueue.New[int](pqueue.MaxFirst)
	require.True(t, h.Empty())
	require.Equal(t, 0, h.Len())

	_, _, ok := h.Extract()
	require.False(t, ok)

	_, ok = h.Find(1)
	require.False(t, ok)

	require.False(t, h.Erase(1))
}

func TestHeapExtractOrderIsMaxFirst(t *testing.T) {
	h := pqueue.New[int](pqueue.MaxFirst)
	priorities := map[int]float64{
		1: 5, 2: 1, 3: 9, 4: 3, 5: 7, 6: 2, 7: 8,
	}
	for d, p := range priorities {
		h.Insert(d, p)
	}
	require.Equal(t, len(priorities), h.Len())

	var got []float64
	for !h.Empty() {
		_, p, ok := h.Extract()
		require.True(t, ok)
		got = append(got, p)
	}

	want := make([]float64, 0, len(priorities))
	for _, p := range priorities {
		want = append(want, p)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(want)))
	require.Equal(t, want, got)
}

func TestHeapFindReflectsCurrentPriority(t *testing.T) {
	h := pqueue.New[string](pqueue.MaxFirst)
	h.Insert("a", 1)
	p, ok := h.Find("a")
	require.True(t, ok)
	require.Equal(t, 1.0, p)

	h.Insert("a", 42)
	p, ok = h.Find("a")
	require.True(t, ok)
	require.Equal(t, 42.0, p)
	require.Equal(t, 1, h.Len(), "re-inserting an existing key must not duplicate it")
}

func TestHeapUpdateReprioritizesRoot(t *testing.T) {
	h := pqueue.New[int](pqueue.MaxFirst)
	h.Insert(1, 1)
	h.Insert(2, 2)
	h.Insert(3, 3)

	h.Update(1, 100)
	d, p, ok := h.Extract()
	require.True(t, ok)
	require.Equal(t, 1, d)
	require.Equal(t, 100.0, p)
}

func TestHeapEraseArbitraryElement(t *testing.T) {
	h := pqueue.New[int](pqueue.MaxFirst)
	for i := 1; i <= 10; i++ {
		h.Insert(i, float64(i))
	}
	require.True(t, h.Erase(5))
	require.False(t, h.Erase(5))

	var got []int
	for !h.Empty() {
		d, _, ok := h.Extract()
		require.True(t, ok)
		got = append(got, d)
	}
	for _, d := range got {
		require.NotEqual(t, 5, d)
	}
	require.Len(t, got, 9)
}

func TestHeapMinFirstComparator(t *testing.T) {
	minFirst := func(a, b float64) bool { return a < b }
	h := pqueue.New[int](minFirst)
	for _, v := range []float64{5, 1, 9, 3, 7} {
		h.Insert(int(v), v)
	}

	var got []float64
	for !h.Empty() {
		_, p, ok := h.Extract()
		require.True(t, ok)
		got = append(got, p)
	}
	require.Equal(t, []float64{1, 3, 5, 7, 9}, got)
}

func TestHeapHandlesTiesAndNaNFreeInputs(t *testing.T) {
	h := pqueue.New[int](pqueue.MaxFirst)
	h.Insert(1, 3)
	h.Insert(2, 3)
	h.Insert(3, 3)
	require.Equal(t, 3, h.Len())

	for !h.Empty() {
		_, p, ok := h.Extract()
		require.True(t, ok)
		require.False(t, math.IsNaN(p))
		require.Equal(t, 3.0, p)
	}
}

func TestHeapStressAgainstSortedReference(t *testing.T) {
	var rngState uint32 = 12345
	next := func() uint32 {
		rngState = 0x1ed0675*rngState + 0xa14f
		return rngState
	}

	const n = 500
	h := pqueue.New[int](pqueue.MaxFirst)
	ref := make(map[int]float64, n)
	for i := 0; i < n; i++ {
		p := float64(next() % 1000)
		h.Insert(i, p)
		ref[i] = p
	}
	require.Equal(t, n, h.Len())

	want := make([]float64, 0, n)
	for _, v := range ref {
		want = append(want, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(want)))

	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		d, p, ok := h.Extract()
		require.True(t, ok)
		require.Equal(t, want[i], p, "priorities must come out in non-increasing order")
		require.False(t, seen[d], "each element must be extracted exactly once")
		seen[d] = true
	}
	require.True(t, h.Empty())
}
