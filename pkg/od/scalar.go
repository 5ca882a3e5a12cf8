package od

import "encoding/binary"

// Scalar values cross the access boundary as raw little-endian bytes of
// exactly the type's width, matching the in-memory layout of the devices
// this dictionary mirrors.

func typeBounds(t DataType) (min, max int64) {
	switch t {
	case TypeU8:
		return 0, 0xFF
	case TypeU16:
		return 0, 0xFFFF
	case TypeU32:
		return 0, 0xFFFFFFFF
	case TypeI8:
		return -0x80, 0x7F
	case TypeI16:
		return -0x8000, 0x7FFF
	case TypeI32:
		return -0x80000000, 0x7FFFFFFF
	}
	return 0, 0
}

// DecodeScalar decodes exactly one value of type t from data. It returns
// ErrDataType for non-scalar types, ErrParamTooLong or ErrParamTooShort
// when len(data) is not the type's width.
func DecodeScalar(t DataType, data []byte) (int64, error) {
	if !t.scalar() {
		return 0, ErrDataType
	}
	size := t.Size()
	if len(data) > size {
		return 0, ErrParamTooLong
	}
	if len(data) < size {
		return 0, ErrParamTooShort
	}

	var u uint64
	switch size {
	case 1:
		u = uint64(data[0])
	case 2:
		u = uint64(binary.LittleEndian.Uint16(data))
	case 4:
		u = uint64(binary.LittleEndian.Uint32(data))
	}

	if t.signed() {
		// Sign-extend from the type's width.
		shift := 64 - 8*size
		return int64(u) << shift >> shift, nil
	}
	return int64(u), nil
}

// EncodeScalar encodes v as one value of type t. It returns ErrDataType
// for non-scalar types or when v does not fit in t.
func EncodeScalar(t DataType, v int64) ([]byte, error) {
	if !t.scalar() {
		return nil, ErrDataType
	}
	min, max := typeBounds(t)
	if v < min || v > max {
		return nil, ErrDataType
	}

	buf := make([]byte, t.Size())
	switch len(buf) {
	case 1:
		buf[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	}
	return buf, nil
}
