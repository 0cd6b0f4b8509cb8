package presence

import "fmt"

// width128 is the backing width of Set128 in bits.
const width128 = 128

// Set128 is the 128-slot specialization of Set. Go has no 128-bit machine
// integer, so this width is an explicit implementation over Uint128 rather
// than an instantiation of the generic core. Contracts and semantics match
// Set exactly.
type Set128 struct {
	bits     Uint128
	capacity int
}

// New128 creates a Set128 with all capacity slots present.
// It returns an *ErrInvalidCapacity when capacity is negative or exceeds 128.
func New128(capacity int) (Set128, error) {
	if capacity < 0 || capacity > width128 {
		return Set128{}, &ErrInvalidCapacity{Capacity: capacity, Width: width128}
	}
	return Set128{bits: lowMask128(capacity), capacity: capacity}, nil
}

// NewEmpty128 creates a Set128 with no slots present. Validation matches New128.
func NewEmpty128(capacity int) (Set128, error) {
	if capacity < 0 || capacity > width128 {
		return Set128{}, &ErrInvalidCapacity{Capacity: capacity, Width: width128}
	}
	return Set128{capacity: capacity}, nil
}

// Must128 returns s or panics when err is non-nil.
func Must128(s Set128, err error) Set128 {
	if err != nil {
		panic(err)
	}
	return s
}

// Capacity returns the number of slots this set tracks.
func (s Set128) Capacity() int {
	return s.capacity
}

// Bits returns the raw backing word.
func (s Set128) Bits() Uint128 {
	return s.bits
}

// IsEmpty reports whether no slot is present.
func (s Set128) IsEmpty() bool {
	return s.bits.IsZero()
}

// Count returns the number of present slots.
func (s Set128) Count() int {
	return s.bits.OnesCount()
}

// Clear removes every slot. Idempotent; capacity is unchanged.
func (s *Set128) Clear() {
	s.bits = Uint128{}
}

// Restore marks every slot up to the current capacity present again. Idempotent.
func (s *Set128) Restore() {
	s.bits = lowMask128(s.capacity)
}

// Set marks slot i present. Panics when i is outside [0, capacity).
func (s *Set128) Set(i int) {
	s.checkIndex(i)
	s.bits = s.bits.Or(bit128(i))
}

// Unset marks slot i absent. Panics when i is outside [0, capacity).
func (s *Set128) Unset(i int) {
	s.checkIndex(i)
	s.bits = s.bits.AndNot(bit128(i))
}

// Test reports whether slot i is present. Panics when i is outside
// [0, capacity).
func (s Set128) Test(i int) bool {
	s.checkIndex(i)
	return !s.bits.And(bit128(i)).IsZero()
}

// Smallest returns the lowest present slot, or false when the set is empty.
func (s Set128) Smallest() (int, bool) {
	if s.bits.IsZero() {
		return 0, false
	}
	return s.bits.TrailingZeros(), true
}

// Largest returns the highest present slot, or false when the set is empty.
func (s Set128) Largest() (int, bool) {
	if s.bits.IsZero() {
		return 0, false
	}
	return s.bits.Len() - 1, true
}

// PopSmallest returns the lowest present slot and removes it.
func (s *Set128) PopSmallest() (int, bool) {
	p, ok := s.Smallest()
	if ok {
		s.bits = s.bits.AndNot(bit128(p))
	}
	return p, ok
}

// PopLargest returns the highest present slot and removes it.
func (s *Set128) PopLargest() (int, bool) {
	p, ok := s.Largest()
	if ok {
		s.bits = s.bits.AndNot(bit128(p))
	}
	return p, ok
}

// Add ORs a raw bitmask into the set. Same unchecked caller contract as
// Set.Add: raw must not have bits set at positions >= capacity.
func (s *Set128) Add(raw Uint128) {
	s.bits = s.bits.Or(raw)
}

// Absorb merges other into s: union of present slots, capacity the larger of
// the two.
func (s *Set128) Absorb(other Set128) {
	s.bits = s.bits.Or(other.bits)
	if other.capacity > s.capacity {
		s.capacity = other.capacity
	}
}

// SelectLow returns the position of the k-th present slot counting upward
// from slot 0. The contract matches Set.SelectLow.
func (s Set128) SelectLow(k int) (int, bool) {
	s.checkRank(k)
	m := s.Count()
	switch {
	case m == 0 || k >= m:
		return 0, false
	case k == 0:
		return s.Smallest()
	case k == m-1:
		return s.Largest()
	case k > m/2:
		return s.SelectHigh(m - k - 1)
	}

	c := s
	for ; k > 0; k-- {
		c.PopSmallest()
	}
	return c.Smallest()
}

// SelectHigh returns the position of the k-th present slot counting downward
// from the high end. The contract matches Set.SelectHigh.
func (s Set128) SelectHigh(k int) (int, bool) {
	s.checkRank(k)
	m := s.Count()
	switch {
	case m == 0 || k >= m:
		return 0, false
	case k == 0:
		return s.Largest()
	case k == m-1:
		return s.Smallest()
	case k > m/2:
		return s.SelectLow(m - k - 1)
	}

	c := s
	for ; k > 0; k-- {
		c.PopLargest()
	}
	return c.Largest()
}

// Select is SelectLow.
func (s Set128) Select(k int) (int, bool) {
	return s.SelectLow(k)
}

// PopLow returns SelectLow(k) and, when the rank exists, removes that slot.
func (s *Set128) PopLow(k int) (int, bool) {
	p, ok := s.SelectLow(k)
	if ok {
		s.bits = s.bits.AndNot(bit128(p))
	}
	return p, ok
}

// PopHigh returns SelectHigh(k) and, when the rank exists, removes that slot.
func (s *Set128) PopHigh(k int) (int, bool) {
	p, ok := s.SelectHigh(k)
	if ok {
		s.bits = s.bits.AndNot(bit128(p))
	}
	return p, ok
}

// Pop is PopLow.
func (s *Set128) Pop(k int) (int, bool) {
	return s.PopLow(k)
}

// String returns a diagnostic dump of capacity and bitmap. Not a wire format.
func (s Set128) String() string {
	if s.capacity <= 64 {
		return fmt.Sprintf("presence.Set128{capacity: %d, bits: 0b%0*b}", s.capacity, s.capacity, s.bits.Lo)
	}
	return fmt.Sprintf("presence.Set128{capacity: %d, bits: 0b%0*b%064b}", s.capacity, s.capacity-64, s.bits.Hi, s.bits.Lo)
}

func (s Set128) checkIndex(i int) {
	if i < 0 || i >= s.capacity {
		panic(fmt.Sprintf("presence: slot %d out of range [0, %d)", i, s.capacity))
	}
}

func (s Set128) checkRank(k int) {
	if k < 0 || k >= s.capacity {
		panic(fmt.Sprintf("presence: rank %d out of range [0, %d)", k, s.capacity))
	}
}
