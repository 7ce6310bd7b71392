package ecs

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// MaxComponentTypes is the number of distinct component types a single World
// can register. The mask layout is fixed; registering more types panics.
const MaxComponentTypes = 256

// ComponentID identifies a registered component type within one World.
// Ids are assigned sequentially on first use and are never reused.
type ComponentID int

// Mask is a fixed 256-bit set of component type ids. The zero value is the
// empty mask. Masks are values; methods that mutate take a pointer receiver.
type Mask [4]uint64

// NewMask returns a mask with the given component ids set.
func NewMask(ids ...ComponentID) Mask {
	var m Mask
	for _, id := range ids {
		m.Set(id)
	}
	return m
}

// Set enables the bit for the given component id.
func (m *Mask) Set(id ComponentID) {
	m[id>>6] |= 1 << (id & 63)
}

// Clear disables the bit for the given component id.
func (m *Mask) Clear(id ComponentID) {
	m[id>>6] &^= 1 << (id & 63)
}

// Has reports whether the bit for the given component id is set.
func (m Mask) Has(id ComponentID) bool {
	return m[id>>6]&(1<<(id&63)) != 0
}

// IsEmpty reports whether no bits are set.
func (m Mask) IsEmpty() bool {
	return m[0] == 0 && m[1] == 0 && m[2] == 0 && m[3] == 0
}

// Equals reports whether both masks have the identical bit pattern.
func (m Mask) Equals(other Mask) bool {
	return m == other
}

// Contains reports whether every bit set in sub is also set in m.
// This is the filter compatibility test: an entity mask is compatible with a
// filter mask iff the entity mask contains it.
func (m Mask) Contains(sub Mask) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// Count returns the number of set bits.
func (m Mask) Count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}

// Bits iterates the set component ids in ascending order. The iteration works
// on the receiver copy, so the caller may mutate the original mask while
// ranging.
func (m Mask) Bits() iter.Seq[ComponentID] {
	return func(yield func(ComponentID) bool) {
		for i := 0; i < len(m); i++ {
			word := m[i]
			for word != 0 {
				bit := bits.TrailingZeros64(word)
				if !yield(ComponentID(i<<6 | bit)) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// String renders the set bit indices, e.g. "Mask{0 3 17}".
func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteString("Mask{")
	first := true
	for id := range m.Bits() {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", id)
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}
