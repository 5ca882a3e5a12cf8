package od

// SetFunc validates and commits a write to an object. One is bound into
// every Info at construction; it alone enforces access control. All
// strategies share the same contract: size check, then range check, and
// only then a commit. A failing SetFunc must never leave backing storage
// partially written.
//
// Strategies for Variable objects ignore the sub-index; compound
// strategies dispatch on it (0 is the read-only element count).
type SetFunc func(o Object, sub uint8, data []byte) error

// SetReadOnly unconditionally rejects writes with ErrReadOnly.
func SetReadOnly(Object, uint8, []byte) error {
	return ErrReadOnly
}

// checkScalar validates size and range and decodes the value.
func checkScalar(t DataType, r Range, data []byte) (int64, error) {
	v, err := DecodeScalar(t, data)
	if err != nil {
		return 0, err
	}
	if err := r.Check(v); err != nil {
		return 0, err
	}
	return v, nil
}

// SetScalar writes a single scalar of type t at the given offset within
// the object's backing block, validating size and range first.
func SetScalar(t DataType, offset uint16, r Range) SetFunc {
	size := uint16(t.Size())
	return func(o Object, _ uint8, data []byte) error {
		if _, err := checkScalar(t, r, data); err != nil {
			return err
		}
		dst, err := o.storage(offset, size)
		if err != nil {
			return err
		}
		copy(dst, data)
		return nil
	}
}

// SetString copies the input into a fixed-capacity string buffer at the
// given offset and zero-fills the remainder. Input longer than length
// fails ErrParamTooLong; input that exactly fills the buffer must
// already carry its terminating NUL.
func SetString(offset, length uint16) SetFunc {
	return func(o Object, _ uint8, data []byte) error {
		if len(data) > int(length) {
			return ErrParamTooLong
		}
		if len(data) == int(length) && data[len(data)-1] != 0 {
			return ErrParamTooLong
		}
		dst, err := o.storage(offset, length)
		if err != nil {
			return err
		}
		n := copy(dst, data)
		for i := n; i < int(length); i++ {
			dst[i] = 0
		}
		return nil
	}
}

// SetCallback validates like SetScalar but hands the decoded value to fn
// instead of writing memory, for values that trigger side effects. fn
// reports failure as ErrUnableToSet or any other error.
func SetCallback(t DataType, r Range, fn func(v int64) error) SetFunc {
	return func(_ Object, _ uint8, data []byte) error {
		v, err := checkScalar(t, r, data)
		if err != nil {
			return err
		}
		return fn(v)
	}
}

// SetChain runs f1 and, only if it succeeds, f2. It composes validation
// or storage with a secondary effect.
func SetChain(f1, f2 SetFunc) SetFunc {
	return func(o Object, sub uint8, data []byte) error {
		if err := f1(o, sub, data); err != nil {
			return err
		}
		return f2(o, sub, data)
	}
}

// setArrayElem is the default Array strategy: sub-index 0 (the element
// count) is read-only, elements are validated against the shared range
// and written in place.
func setArrayElem(t DataType, offset uint16, count uint8, r Range) SetFunc {
	size := uint16(t.Size())
	return func(o Object, sub uint8, data []byte) error {
		if sub == 0 {
			return ErrReadOnly
		}
		if sub > count {
			return ErrFieldNotFound
		}
		if _, err := checkScalar(t, r, data); err != nil {
			return err
		}
		dst, err := o.storage(offset+size*uint16(sub-1), size)
		if err != nil {
			return err
		}
		copy(dst, data)
		return nil
	}
}

// setRecord dispatches a Record write to the addressed field's own
// strategy.
func setRecord(fields []FieldInfo) SetFunc {
	return func(o Object, sub uint8, data []byte) error {
		if int(sub) > len(fields) {
			return ErrFieldNotFound
		}
		if sub == 0 {
			return ErrReadOnly
		}
		return fields[sub-1].Set(o, sub, data)
	}
}
