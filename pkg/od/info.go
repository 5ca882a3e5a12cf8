package od

import "fmt"

// FieldInfo describes one field of a Record: its own type, permissions,
// storage location, range, and bound write strategy, plus a name used
// for path queries.
type FieldInfo struct {
	Name   string
	Type   DataType
	Perm   Permissions
	Offset uint16
	Size   uint16
	Range  Range
	Set    SetFunc
}

// Info is the immutable metadata describing an object's shape. It is
// built once, shared for the program's lifetime, and never mutated, so
// it may be referenced from any goroutine. The Class tag selects which
// of the optional payloads applies: Range for Variable and Array, Names
// for Array, Fields for Record.
type Info struct {
	// Class is the shape tag.
	Class ClassID

	// Type is the data type of the object's leaf value(s); TypeRecord
	// for records.
	Type DataType

	// Elems is the number of addressable sub-elements (1 for a
	// Variable).
	Elems uint8

	// Perm is the advisory access level.
	Perm Permissions

	// Offset and Size locate the object's backing bytes within the
	// owner's storage block.
	Offset uint16
	Size   uint16

	// Set is the bound validation+write strategy.
	Set SetFunc

	// Range bounds scalar writes (Variable and Array elements).
	Range Range

	// Names holds the Array element display names, one per element;
	// entries may be empty and the slice may be nil.
	Names []string

	// Fields holds the Record field metadata in sub-index order.
	Fields []FieldInfo
}

// FindField returns the position of the named Record field, scanning
// names case-sensitively.
func (i *Info) FindField(name string) (int, bool) {
	for n, f := range i.Fields {
		if f.Name == name {
			return n, true
		}
	}
	return 0, false
}

// FindName returns the position of the named Array element.
func (i *Info) FindName(name string) (int, bool) {
	for n, s := range i.Names {
		if s == name {
			return n, true
		}
	}
	return 0, false
}

// NewVariable builds metadata for a writable scalar of type t stored at
// offset, range-checked against r on every write.
func NewVariable(perm Permissions, t DataType, offset uint16, r Range) *Info {
	return &Info{
		Class:  ClassVariable,
		Type:   t,
		Elems:  1,
		Perm:   perm,
		Offset: offset,
		Size:   uint16(t.Size()),
		Set:    SetScalar(t, offset, r),
		Range:  r,
	}
}

// NewReadOnly builds metadata for a scalar that rejects all writes.
func NewReadOnly(perm Permissions, t DataType, offset uint16) *Info {
	return &Info{
		Class:  ClassVariable,
		Type:   t,
		Elems:  1,
		Perm:   perm,
		Offset: offset,
		Size:   uint16(t.Size()),
		Set:    SetReadOnly,
	}
}

// NewCallback builds metadata for a scalar whose writes are delivered to
// fn after validation instead of being stored directly. Bind the
// resulting Info to an Object without backing bytes for a write-only
// parameter.
func NewCallback(perm Permissions, t DataType, offset uint16, r Range, fn func(v int64) error) *Info {
	return &Info{
		Class:  ClassVariable,
		Type:   t,
		Elems:  1,
		Perm:   perm,
		Offset: offset,
		Size:   uint16(t.Size()),
		Set:    SetCallback(t, r, fn),
		Range:  r,
	}
}

// NewString builds metadata for a fixed-capacity text string of the
// given byte length.
func NewString(perm Permissions, offset, length uint16) *Info {
	return &Info{
		Class:  ClassVariable,
		Type:   TypeString,
		Elems:  1,
		Perm:   perm,
		Offset: offset,
		Size:   length,
		Set:    SetString(offset, length),
	}
}

// NewBinString builds metadata for a fixed-capacity binary string.
func NewBinString(perm Permissions, offset, length uint16) *Info {
	return &Info{
		Class:  ClassVariable,
		Type:   TypeBinString,
		Elems:  1,
		Perm:   perm,
		Offset: offset,
		Size:   length,
		Set:    SetString(offset, length),
	}
}

// NewArray builds metadata for count homogeneous elements of type t
// stored contiguously from offset, all sharing range r. names provides
// the per-element display names used by path queries; it may be nil, or
// must have exactly count entries (empty entries are allowed).
func NewArray(perm Permissions, t DataType, offset uint16, count uint8, names []string, r Range) *Info {
	if names != nil && len(names) != int(count) {
		panic(fmt.Sprintf("od: array has %d elements but %d names", count, len(names)))
	}
	return &Info{
		Class:  ClassArray,
		Type:   t,
		Elems:  count,
		Perm:   perm,
		Offset: offset,
		Size:   uint16(t.Size()) * uint16(count),
		Set:    setArrayElem(t, offset, count, r),
		Range:  r,
		Names:  names,
	}
}

// WithSet returns a copy of the Info with a replacement write strategy,
// for composing custom access control (e.g. SetChain, SetReadOnly) onto
// constructor-built metadata.
func (i *Info) WithSet(set SetFunc) *Info {
	c := *i
	c.Set = set
	return &c
}

// RecordBuilder assembles Record metadata field by field, computing the
// record's total extent as it goes. Fields must be declared in ascending
// offset order with no gaps between them; a violation panics at
// construction time, the moment the dictionary is being built.
type RecordBuilder struct {
	perm   Permissions
	start  uint16
	size   uint16
	fields []FieldInfo
}

// BuildRecord starts a new record with the given object-level
// permission.
func BuildRecord(perm Permissions) *RecordBuilder {
	return &RecordBuilder{perm: perm}
}

func (b *RecordBuilder) add(f FieldInfo) *RecordBuilder {
	if len(b.fields) == 0 {
		b.start = f.Offset
	} else if f.Offset != b.start+b.size {
		panic(fmt.Sprintf(
			"od: gap in record layout: field %q at offset %d, expected %d; declare all fields in order with none missing",
			f.Name, f.Offset, b.start+b.size))
	}
	b.size += f.Size
	b.fields = append(b.fields, f)
	return b
}

// Scalar appends a writable scalar field.
func (b *RecordBuilder) Scalar(name string, t DataType, offset uint16, perm Permissions, r Range) *RecordBuilder {
	return b.add(FieldInfo{
		Name:   name,
		Type:   t,
		Perm:   perm,
		Offset: offset,
		Size:   uint16(t.Size()),
		Range:  r,
		Set:    SetScalar(t, offset, r),
	})
}

// ReadOnly appends a scalar field that rejects all writes.
func (b *RecordBuilder) ReadOnly(name string, t DataType, offset uint16, perm Permissions) *RecordBuilder {
	return b.add(FieldInfo{
		Name:   name,
		Type:   t,
		Perm:   perm,
		Offset: offset,
		Size:   uint16(t.Size()),
		Set:    SetReadOnly,
	})
}

// String appends a fixed-capacity text string field.
func (b *RecordBuilder) String(name string, offset, length uint16, perm Permissions) *RecordBuilder {
	return b.add(FieldInfo{
		Name:   name,
		Type:   TypeString,
		Perm:   perm,
		Offset: offset,
		Size:   length,
		Set:    SetString(offset, length),
	})
}

// Callback appends a scalar field whose writes go to fn after
// validation.
func (b *RecordBuilder) Callback(name string, t DataType, offset uint16, perm Permissions, r Range, fn func(v int64) error) *RecordBuilder {
	return b.add(FieldInfo{
		Name:   name,
		Type:   t,
		Perm:   perm,
		Offset: offset,
		Size:   uint16(t.Size()),
		Range:  r,
		Set:    SetCallback(t, r, fn),
	})
}

// Func appends a field with an explicit size and write strategy, for
// compositions the other methods cannot express.
func (b *RecordBuilder) Func(name string, t DataType, offset, size uint16, perm Permissions, set SetFunc) *RecordBuilder {
	return b.add(FieldInfo{
		Name:   name,
		Type:   t,
		Perm:   perm,
		Offset: offset,
		Size:   size,
		Set:    set,
	})
}

// Build finalizes the record metadata.
func (b *RecordBuilder) Build() *Info {
	return &Info{
		Class:  ClassRecord,
		Type:   TypeRecord,
		Elems:  uint8(len(b.fields)),
		Perm:   b.perm,
		Offset: b.start,
		Size:   b.size,
		Set:    setRecord(b.fields),
		Fields: b.fields,
	}
}
