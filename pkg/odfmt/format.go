package odfmt

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/edgeparam/odict/pkg/od"
)

// Base selects the numeric base for scalar formatting.
type Base int

const (
	Decimal Base = iota
	Hex
	Binary
)

// FormatValue renders the raw bytes of one value as text: scalars in
// decimal, strings quoted, binary strings as hex, records as "{...}".
// Malformed input (wrong length for the type) renders as an error
// marker rather than failing, since display must never block on bad
// data.
func FormatValue(t od.DataType, data []byte) string {
	return FormatValueBase(t, data, Decimal)
}

// FormatValueBase renders like FormatValue with an explicit numeric
// base for scalar types.
func FormatValueBase(t od.DataType, data []byte, base Base) string {
	switch t {
	case od.TypeU8, od.TypeU16, od.TypeU32, od.TypeI8, od.TypeI16, od.TypeI32:
		v, err := od.DecodeScalar(t, data)
		if err != nil {
			return "(invalid)"
		}
		return formatScalar(t, v, base)
	case od.TypeString:
		return strconv.Quote(strings.TrimRight(string(data), "\x00"))
	case od.TypeBinString:
		return "0x" + hex.EncodeToString(data)
	case od.TypeRecord:
		return "{...}"
	}
	return "(invalid type)"
}

func formatScalar(t od.DataType, v int64, base Base) string {
	switch base {
	case Hex:
		return fmt.Sprintf("0x%0*X", 2*t.Size(), uint64(v)&widthMask(t))
	case Binary:
		return "0b" + strconv.FormatUint(uint64(v)&widthMask(t), 2)
	default:
		return strconv.FormatInt(v, 10)
	}
}

func widthMask(t od.DataType) uint64 {
	return 1<<(8*t.Size()) - 1
}
