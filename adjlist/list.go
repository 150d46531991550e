package adjlist

import (
	"fmt"
	"math"
	"strings"
)

const (
	// Capacity is the hard ceiling on neighbours per list. The edge-budget
	// heuristic drives some nodes to the full width on larger counts but
	// never past it; exceeding it is a construction error, not a
	// truncation.
	Capacity = 8

	// MaxValue is the largest index storable in a slot.
	MaxValue = math.MaxUint16
)

// List is a fixed-capacity neighbour list: an explicit count followed by
// Capacity inline uint16 slots. Only the first Len slots are meaningful;
// their order is insertion order. The zero value is the empty list.
type List struct {
	count uint8
	slots [Capacity]uint16
}

// FromValues builds a List from the given values in order.
// Returns ErrListFull or ErrValueRange on the first offending value.
func FromValues(values ...int) (List, error) {
	var l List
	for _, v := range values {
		if err := l.Push(v); err != nil {
			return List{}, err
		}
	}

	return l, nil
}

// Len returns the number of stored neighbours.
func (l List) Len() int { return int(l.count) }

// IsEmpty reports whether the list holds no neighbours.
func (l List) IsEmpty() bool { return l.count == 0 }

// At returns the i-th stored neighbour, 0 ≤ i < Len. Callers own the
// bounds; an out-of-range i panics like any slice access.
func (l List) At(i int) int {
	if i < 0 || i >= int(l.count) {
		panic(fmt.Sprintf("adjlist: At(%d) on list of length %d", i, l.count))
	}

	return int(l.slots[i])
}

// Values returns the stored neighbours as a fresh slice in insertion
// order. Hot paths should prefer Len/At to avoid the allocation.
func (l List) Values() []int {
	out := make([]int, l.count)
	for i := range out {
		out[i] = int(l.slots[i])
	}

	return out
}

// Contains reports whether value is among the stored neighbours.
// Linear scan over the occupied prefix.
func (l List) Contains(value int) bool {
	for i := 0; i < int(l.count); i++ {
		if int(l.slots[i]) == value {
			return true
		}
	}

	return false
}

// Push appends value to the list.
// Returns ErrListFull if the list already holds Capacity values, or
// ErrValueRange if value does not fit a slot. On error the list is
// unchanged — count and slots never disagree.
func (l *List) Push(value int) error {
	if l.count >= Capacity {
		return fmt.Errorf("%w: cannot push %d", ErrListFull, value)
	}
	if value < 0 || value > MaxValue {
		return fmt.Errorf("%w: %d", ErrValueRange, value)
	}

	l.slots[l.count] = uint16(value)
	l.count++

	return nil
}

// And returns the set intersection of l and rhs: the values of l, in l's
// order, that rhs also contains. Inputs hold no duplicates under correct
// construction, so neither does the result.
func (l List) And(rhs List) List {
	var out List
	for i := 0; i < int(l.count); i++ {
		v := int(l.slots[i])
		if rhs.Contains(v) {
			// both operands fit Capacity, so out can never overflow
			out.slots[out.count] = l.slots[i]
			out.count++
		}
	}

	return out
}

// String renders the list as "[a, b, c]"; the empty list as "[]".
func (l List) String() string {
	if l.IsEmpty() {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < int(l.count); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", l.slots[i])
	}
	b.WriteByte(']')

	return b.String()
}
