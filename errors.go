package presence

import "fmt"

// ErrInvalidCapacity indicates a requested capacity the backing word cannot
// hold: either negative, or larger than the backing width in bits.
type ErrInvalidCapacity struct {
	Capacity int
	Width    int
}

func (e *ErrInvalidCapacity) Error() string {
	if e.Capacity < 0 {
		return fmt.Sprintf("invalid capacity %d", e.Capacity)
	}
	return fmt.Sprintf("capacity %d exceeds %d-bit backing word", e.Capacity, e.Width)
}
