package odfmt

import (
	"fmt"
	"strings"

	"github.com/edgeparam/odict/pkg/od"
)

// stagingSize is the stack buffer convention for staged reads.
const stagingSize = 64

// DescribeInfo renders an object's shape and type the way dictionary
// listings show them: "Variable:i32", "Array:u16(3)",
// "Record:{temp:i16, flags:u8}".
func DescribeInfo(info *od.Info) string {
	switch info.Class {
	case od.ClassArray:
		return fmt.Sprintf("%s:%s(%d)", info.Class, info.Type, info.Elems)
	case od.ClassRecord:
		var b strings.Builder
		b.WriteString(info.Class.String())
		b.WriteString(":{")
		for i, f := range info.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s:%s", f.Name, f.Type)
		}
		b.WriteString("}")
		return b.String()
	default:
		return fmt.Sprintf("%s:%s", info.Class, info.Type)
	}
}

// DescribeObject renders an object's current value(s): the value itself
// for a Variable, one "name: value" line per element for compound
// shapes. Read failures render as their error text in place of the
// value.
func DescribeObject(o od.Object) string {
	var buf [stagingSize]byte
	info := o.Info()

	if info.Class == od.ClassVariable {
		n, err := o.Get(0, buf[:])
		if err != nil {
			return err.Error()
		}
		return FormatValue(info.Type, buf[:n])
	}

	var b strings.Builder
	for sub := uint8(1); sub <= o.Count(); sub++ {
		ref := o.FieldAt(sub)
		name := ref.Name
		if name == "" {
			name = fmt.Sprintf("[%d]", sub)
		}
		fmt.Fprintf(&b, "\n\t%s: ", name)
		n, err := o.Get(sub, buf[:])
		if err != nil {
			b.WriteString(err.Error())
			continue
		}
		b.WriteString(FormatValue(ref.Type, buf[:n]))
	}
	return b.String()
}
