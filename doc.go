// Package presence provides fixed-capacity presence sets backed by a single
// unsigned machine word.
//
// A presence set tracks which of N logical slots (numbered 0..N-1) are
// currently present. The whole set is one integer: bit p is 1 iff slot p is
// present. This makes the type a cheap, copyable, allocation-free membership
// index for small fixed-size groups, such as tracking which workers of a
// fixed pool are still busy.
//
// # Choosing a width
//
// Five backing widths are available. The four machine-integer widths share one
// generic implementation:
//
//	s, err := presence.New[uint8](4)   // up to 8 slots
//	s, err := presence.New[uint16](12) // up to 16 slots
//	s, err := presence.New[uint32](20) // up to 32 slots
//	s, err := presence.New[uint64](48) // up to 64 slots
//
// For up to 128 slots, use the [Set128] specialization over [Uint128]:
//
//	s, err := presence.New128(100)
//
// Capacity is fixed at construction (only [Set.Absorb] can raise it, to the
// larger of the two operands) and must not exceed the backing width;
// construction reports [ErrInvalidCapacity] otherwise.
//
// # Positional and ordinal access
//
// Positional access addresses slots by their bit position: [Set.Set],
// [Set.Unset], [Set.Test], [Set.Smallest], [Set.Largest] and the Pop
// variants. Ordinal access addresses slots by their rank among the slots
// currently present: [Set.SelectLow] returns the k-th present slot counting
// from the low end, [Set.SelectHigh] from the high end. Ranks in the far half
// are answered by flipping to the opposite end, so a selection never scans
// more than half of the present slots.
//
// # Error model
//
// Absence is not an error: asking for an extremum of an empty set, or for a
// rank beyond the number of present slots, returns a comma-ok false. Calling
// any positional or ordinal operation with an index outside [0, capacity) is
// a contract violation and panics; validate indices upstream. The bounds
// check is keyed off capacity, never off the current population.
//
// # Concurrency
//
// A Set is a plain value with no internal locking. Copy it freely; a copy is
// an independent snapshot. Sharing one instance across goroutines requires
// external synchronization.
package presence
