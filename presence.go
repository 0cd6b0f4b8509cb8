package presence

import (
	"fmt"
	"math/bits"
)

// Uint is the set of unsigned integer types usable as a backing word.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Set is a fixed-capacity presence set backed by a single unsigned word of
// type T. Bit p of the word is 1 iff slot p is present; bits at positions
// >= capacity stay 0.
//
// The zero value is an empty set of capacity 0. Sets of equal type are
// comparable with ==: two sets are equal iff they have the same capacity and
// the same present slots.
type Set[T Uint] struct {
	bits     T
	capacity int
}

// width returns the number of bits in T's backing word.
func width[T Uint]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

// lowMask returns a word with the low n bits set, 0 <= n <= width.
// A shift by the full width wraps to zero and the unsigned decrement then
// yields all ones, so n == width needs no special case.
func lowMask[T Uint](n int) T {
	return T(1)<<n - 1
}

// New creates a Set with all capacity slots present.
// It returns an *ErrInvalidCapacity when capacity is negative or exceeds the
// width of T.
func New[T Uint](capacity int) (Set[T], error) {
	if w := width[T](); capacity < 0 || capacity > w {
		return Set[T]{}, &ErrInvalidCapacity{Capacity: capacity, Width: w}
	}
	return Set[T]{bits: lowMask[T](capacity), capacity: capacity}, nil
}

// NewEmpty creates a Set with no slots present. Validation matches New.
func NewEmpty[T Uint](capacity int) (Set[T], error) {
	if w := width[T](); capacity < 0 || capacity > w {
		return Set[T]{}, &ErrInvalidCapacity{Capacity: capacity, Width: w}
	}
	return Set[T]{capacity: capacity}, nil
}

// Must returns s or panics when err is non-nil. It allows constructor calls
// with known-good capacities to be used in expressions:
//
//	s := presence.Must(presence.New[uint8](4))
func Must[T Uint](s Set[T], err error) Set[T] {
	if err != nil {
		panic(err)
	}
	return s
}

// Capacity returns the number of slots this set tracks.
func (s Set[T]) Capacity() int {
	return s.capacity
}

// Bits returns the raw backing word. Bit p is 1 iff slot p is present.
func (s Set[T]) Bits() T {
	return s.bits
}

// IsEmpty reports whether no slot is present.
func (s Set[T]) IsEmpty() bool {
	return s.bits == 0
}

// Count returns the number of present slots.
func (s Set[T]) Count() int {
	return bits.OnesCount64(uint64(s.bits))
}

// Clear removes every slot. Idempotent; capacity is unchanged.
func (s *Set[T]) Clear() {
	s.bits = 0
}

// Restore marks every slot up to the current capacity present again,
// undoing any Unset or Pop calls. Idempotent.
func (s *Set[T]) Restore() {
	s.bits = lowMask[T](s.capacity)
}

// Set marks slot i present. Panics when i is outside [0, capacity).
// Setting an already present slot is a no-op.
func (s *Set[T]) Set(i int) {
	s.checkIndex(i)
	s.bits |= T(1) << i
}

// Unset marks slot i absent. Panics when i is outside [0, capacity).
// Unsetting an already absent slot is a no-op.
func (s *Set[T]) Unset(i int) {
	s.checkIndex(i)
	s.bits &^= T(1) << i
}

// Test reports whether slot i is present. Panics when i is outside
// [0, capacity).
func (s Set[T]) Test(i int) bool {
	s.checkIndex(i)
	return s.bits&(T(1)<<i) != 0
}

// Smallest returns the lowest present slot, or false when the set is empty.
func (s Set[T]) Smallest() (int, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(s.bits)), true
}

// Largest returns the highest present slot, or false when the set is empty.
func (s Set[T]) Largest() (int, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return bits.Len64(uint64(s.bits)) - 1, true
}

// PopSmallest returns the lowest present slot and removes it. On an empty
// set it returns false and leaves the set untouched.
func (s *Set[T]) PopSmallest() (int, bool) {
	p, ok := s.Smallest()
	if ok {
		s.bits &^= T(1) << p
	}
	return p, ok
}

// PopLargest returns the highest present slot and removes it. On an empty
// set it returns false and leaves the set untouched.
func (s *Set[T]) PopLargest() (int, bool) {
	p, ok := s.Largest()
	if ok {
		s.bits &^= T(1) << p
	}
	return p, ok
}

// Add ORs a raw bitmask into the set.
//
// Caller contract: raw must not have bits set at positions >= capacity.
// Add performs no bounds check; it is the bulk-merge escape hatch, and the
// only operation that can break the capacity invariant when misused.
func (s *Set[T]) Add(raw T) {
	s.bits |= raw
}

// Absorb merges other into s: the present slots become the union and the
// capacity becomes the larger of the two. Capacity never decreases.
func (s *Set[T]) Absorb(other Set[T]) {
	s.bits |= other.bits
	if other.capacity > s.capacity {
		s.capacity = other.capacity
	}
}

// String returns a diagnostic dump of capacity and bitmap. Not a wire format.
func (s Set[T]) String() string {
	return fmt.Sprintf("presence.Set{capacity: %d, bits: 0b%0*b}", s.capacity, s.capacity, uint64(s.bits))
}

func (s Set[T]) checkIndex(i int) {
	if i < 0 || i >= s.capacity {
		panic(fmt.Sprintf("presence: slot %d out of range [0, %d)", i, s.capacity))
	}
}

func (s Set[T]) checkRank(k int) {
	if k < 0 || k >= s.capacity {
		panic(fmt.Sprintf("presence: rank %d out of range [0, %d)", k, s.capacity))
	}
}
