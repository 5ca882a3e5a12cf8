package odfmt

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/edgeparam/odict/pkg/od"
)

// ParseValue parses text into the raw byte representation of one value
// of type t, ready to hand to Object.Set. Scalars accept decimal, 0x
// hex, and 0b binary; strings accept quoted or bare text; binary
// strings accept hex digits with an optional 0x prefix. Parse failures
// and values that do not fit the type report od.ErrDataType.
func ParseValue(t od.DataType, text string) ([]byte, error) {
	text = strings.TrimSpace(text)

	switch t {
	case od.TypeU8, od.TypeU16, od.TypeU32:
		v, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return nil, od.ErrDataType
		}
		return od.EncodeScalar(t, int64(v))

	case od.TypeI8, od.TypeI16, od.TypeI32:
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, od.ErrDataType
		}
		return od.EncodeScalar(t, v)

	case od.TypeString:
		if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
			s, err := strconv.Unquote(text)
			if err != nil {
				return nil, od.ErrDataType
			}
			return []byte(s), nil
		}
		return []byte(text), nil

	case od.TypeBinString:
		raw, err := hex.DecodeString(strings.TrimPrefix(text, "0x"))
		if err != nil {
			return nil, od.ErrDataType
		}
		return raw, nil
	}
	return nil, od.ErrDataType
}
