package od

// Range is an inclusive scalar bound. int64 covers every supported
// scalar type (i8..i32 and u8..u32).
//
// Min == Max means "no bound": any value of the correct width is
// accepted. This convention is inherited from the source dictionaries,
// where an empty range disables checking rather than permitting exactly
// one legal value. A range admitting a single value cannot be expressed.
type Range struct {
	Min int64
	Max int64
}

// Unbounded is the empty range accepting any value.
var Unbounded = Range{}

// Empty reports whether the range imposes no bound.
func (r Range) Empty() bool {
	return r.Min == r.Max
}

// Check validates v against the range. It returns nil for an empty
// range, ErrValueTooLow or ErrValueTooHigh otherwise.
func (r Range) Check(v int64) error {
	if r.Empty() {
		return nil
	}
	if v < r.Min {
		return ErrValueTooLow
	}
	if v > r.Max {
		return ErrValueTooHigh
	}
	return nil
}
