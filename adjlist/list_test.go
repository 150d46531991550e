package adjlist_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planetsim/spheretiles/adjlist"
)

//----------------------------------------------------------------------------//
// Construction and invariants
//----------------------------------------------------------------------------//

// TestZeroValue verifies the zero value is a valid empty list.
func TestZeroValue(t *testing.T) {
	var l adjlist.List
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.Values())
	require.Equal(t, "[]", l.String())
}

// TestPush_Appends verifies insertion order and count tracking.
func TestPush_Appends(t *testing.T) {
	var l adjlist.List
	for i, v := range []int{9, 4, 7} {
		require.NoError(t, l.Push(v))
		require.Equal(t, i+1, l.Len())
	}
	require.Equal(t, []int{9, 4, 7}, l.Values())
	require.Equal(t, 4, l.At(1))
}

// TestPush_Errors verifies the capacity ceiling and the storable range,
// and that a failed push leaves the list untouched.
func TestPush_Errors(t *testing.T) {
	var l adjlist.List
	for v := 0; v < adjlist.Capacity; v++ {
		require.NoError(t, l.Push(v))
	}

	err := l.Push(99)
	require.ErrorIs(t, err, adjlist.ErrListFull)
	require.Equal(t, adjlist.Capacity, l.Len(), "failed push must not grow the list")

	var m adjlist.List
	require.ErrorIs(t, m.Push(-1), adjlist.ErrValueRange)
	require.ErrorIs(t, m.Push(adjlist.MaxValue+1), adjlist.ErrValueRange)
	require.True(t, m.IsEmpty(), "failed push must not grow the list")

	require.NoError(t, m.Push(adjlist.MaxValue))
	require.True(t, m.Contains(adjlist.MaxValue))
}

// TestFromValues covers the bulk constructor and its error paths.
func TestFromValues(t *testing.T) {
	l, err := adjlist.FromValues(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, l.Values())

	over := make([]int, adjlist.Capacity+1)
	for i := range over {
		over[i] = i
	}
	_, err = adjlist.FromValues(over...)
	require.ErrorIs(t, err, adjlist.ErrListFull)

	_, err = adjlist.FromValues(1, -2)
	require.ErrorIs(t, err, adjlist.ErrValueRange)
}

// TestAt_OutOfRange verifies At fails fast outside the occupied prefix.
func TestAt_OutOfRange(t *testing.T) {
	l, err := adjlist.FromValues(5)
	require.NoError(t, err)
	require.Panics(t, func() { l.At(1) })
	require.Panics(t, func() { l.At(-1) })
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestContains scans stored and absent values.
func TestContains(t *testing.T) {
	l, err := adjlist.FromValues(3, 1, 4)
	require.NoError(t, err)

	for _, v := range []int{3, 1, 4} {
		require.True(t, l.Contains(v), "expected %d present", v)
	}
	for _, v := range []int{0, 2, 5, adjlist.MaxValue} {
		require.False(t, l.Contains(v), "expected %d absent", v)
	}
}

// TestString renders in insertion order.
func TestString(t *testing.T) {
	l, err := adjlist.FromValues(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3]", l.String())
}

//----------------------------------------------------------------------------//
// Intersection
//----------------------------------------------------------------------------//

// TestAnd_Basic covers overlap, disjoint, and empty operands.
func TestAnd_Basic(t *testing.T) {
	a, _ := adjlist.FromValues(1, 2, 3, 4)
	b, _ := adjlist.FromValues(4, 2, 9)

	require.Equal(t, []int{2, 4}, a.And(b).Values(), "receiver order preserved")
	require.Equal(t, []int{4, 2}, b.And(a).Values())

	c, _ := adjlist.FromValues(7, 8)
	require.True(t, a.And(c).IsEmpty())

	var empty adjlist.List
	require.True(t, a.And(empty).IsEmpty())
	require.True(t, empty.And(a).IsEmpty())
}

// TestAnd_Fuzz compares And against a map-based reference on randomized
// duplicate-free inputs.
func TestAnd_Fuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// draw n distinct values in [0, 32) so overlaps are common
	draw := func(n int) []int {
		perm := rng.Perm(32)

		return perm[:n]
	}

	for trial := 0; trial < 1000; trial++ {
		av := draw(rng.Intn(adjlist.Capacity + 1))
		bv := draw(rng.Intn(adjlist.Capacity + 1))

		a, err := adjlist.FromValues(av...)
		require.NoError(t, err)
		b, err := adjlist.FromValues(bv...)
		require.NoError(t, err)

		inB := make(map[int]bool, len(bv))
		for _, v := range bv {
			inB[v] = true
		}
		var want []int
		for _, v := range av {
			if inB[v] {
				want = append(want, v)
			}
		}

		got := a.And(b).Values()
		if len(want) == 0 {
			require.Empty(t, got, "trial %d: a=%v b=%v", trial, av, bv)
		} else {
			require.Equal(t, want, got, "trial %d: a=%v b=%v", trial, av, bv)
		}
	}
}

// TestAnd_WithSelf intersecting a list with itself returns the list.
func TestAnd_WithSelf(t *testing.T) {
	l, err := adjlist.FromValues(6, 0, 2)
	require.NoError(t, err)
	require.Equal(t, l.Values(), l.And(l).Values())
}

//----------------------------------------------------------------------------//
// Error identity
//----------------------------------------------------------------------------//

// TestSentinelErrors keeps the two sentinels distinct and matchable.
func TestSentinelErrors(t *testing.T) {
	if errors.Is(adjlist.ErrListFull, adjlist.ErrValueRange) {
		t.Fatal("sentinel errors must be distinct")
	}
}
