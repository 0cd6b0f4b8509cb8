package presence

// Ordinal selection: find the k-th present slot counting from either end.
//
// The rank bound is capacity, not the current population. A rank within
// capacity but beyond the population is benign absence (comma-ok false);
// a rank outside [0, capacity) is a contract violation and panics, exactly
// like a positional access.
//
// Selection exploits end symmetry: the rank-(m-1) slot from the low end is
// the global largest, and a rank past the midpoint is answered from the
// opposite end with rank m-k-1. Only ranks in the near half fall back to
// popping a private copy, so the scan is bounded by min(k, m-k) pops.

// SelectLow returns the position of the k-th present slot counting upward
// from slot 0, k being 0-indexed. It returns false when fewer than k+1 slots
// are present, and panics when k is outside [0, capacity).
func (s Set[T]) SelectLow(k int) (int, bool) {
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
// from the high end, k being 0-indexed. The contract mirrors SelectLow.
func (s Set[T]) SelectHigh(k int) (int, bool) {
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

// Select is SelectLow; the low end is the default enumeration order.
func (s Set[T]) Select(k int) (int, bool) {
	return s.SelectLow(k)
}

// PopLow returns SelectLow(k) and, when the rank exists, removes that slot.
func (s *Set[T]) PopLow(k int) (int, bool) {
	p, ok := s.SelectLow(k)
	if ok {
		s.bits &^= T(1) << p
	}
	return p, ok
}

// PopHigh returns SelectHigh(k) and, when the rank exists, removes that slot.
func (s *Set[T]) PopHigh(k int) (int, bool) {
	p, ok := s.SelectHigh(k)
	if ok {
		s.bits &^= T(1) << p
	}
	return p, ok
}

// Pop is PopLow.
func (s *Set[T]) Pop(k int) (int, bool) {
	return s.PopLow(k)
}
