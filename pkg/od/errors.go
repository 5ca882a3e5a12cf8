package od

// Error is a dictionary access failure code. The numeric values are the
// int32 view of the protocol abort codes reported to remote peers, so
// they must not be renumbered (e.g. ErrReadOnly is 0xC09B0004 on the
// wire). The zero value means success; APIs in this package return a nil
// error instead.
type Error int32

const (
	// ErrWriteOnly reports a read on an object with no readable backing
	// pointer.
	ErrWriteOnly Error = -0x3F64FFFD // wire 0xC09B0003

	// ErrReadOnly reports a write to a read-only object.
	ErrReadOnly Error = -0x3F64FFFC // wire 0xC09B0004

	// ErrObjectNotFound reports that no object exists at the given
	// address or name.
	ErrObjectNotFound Error = -0x3F64FFFB // wire 0xC09B0005

	// ErrUnableToSet reports a generic incompatibility from a chained or
	// external setter.
	ErrUnableToSet Error = -0x3F64FFF8 // wire 0xC09B0008

	// ErrDataType reports a decode or type mismatch.
	ErrDataType Error = -0x3F64FFF6 // wire 0xC09B000A

	// ErrParamTooLong reports input exceeding the target's capacity.
	ErrParamTooLong Error = -0x3F64FFF5 // wire 0xC09B000B

	// ErrParamTooShort reports an input or output buffer smaller than
	// required.
	ErrParamTooShort Error = -0x3F64FFF4 // wire 0xC09B000C

	// ErrFieldNotFound reports that the sub-index or sub-name does not
	// exist within the object.
	ErrFieldNotFound Error = -0x3F64FFF3 // wire 0xC09B000D

	// ErrValueTooHigh reports a written value above the allowed range.
	ErrValueTooHigh Error = -0x3F64FFF1 // wire 0xC09B000F

	// ErrValueTooLow reports a written value below the allowed range.
	ErrValueTooLow Error = -0x3F64FFF0 // wire 0xC09B0010
)

// Error returns the human-readable description of the code.
func (e Error) Error() string {
	switch e {
	case 0:
		return "ok"
	case ErrDataType:
		return "data type mismatch"
	case ErrParamTooLong:
		return "parameter too long"
	case ErrParamTooShort:
		return "parameter too short"
	case ErrValueTooHigh:
		return "value too high"
	case ErrValueTooLow:
		return "value too low"
	case ErrObjectNotFound:
		return "object not found"
	case ErrFieldNotFound:
		return "field not found in object"
	case ErrReadOnly:
		return "object is read only"
	case ErrWriteOnly:
		return "object is write only"
	case ErrUnableToSet:
		return "unable to set value"
	}
	return "unknown error"
}

// Code returns the bit-exact wire representation of the error
// (e.g. 0xC09B0004 for ErrReadOnly).
func (e Error) Code() uint32 {
	return uint32(int32(e))
}
