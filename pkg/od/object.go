package od

// Object is a cheap, copyable handle binding a name, shared immutable
// metadata, and a pointer into externally owned backing storage. The
// storage slice is the owner's block; Info offsets address into it. An
// Object with nil storage is write-only: every Get fails ErrWriteOnly,
// while Set still dispatches to the bound strategy (callback strategies
// reach their target through their own captured state).
type Object struct {
	name string
	info *Info
	data []byte
}

// NewObject binds name and metadata to backing storage. data may be nil
// for write-only objects.
func NewObject(name string, info *Info, data []byte) Object {
	return Object{name: name, info: info, data: data}
}

// Name returns the object's name.
func (o Object) Name() string { return o.name }

// Info returns the object's metadata.
func (o Object) Info() *Info { return o.info }

// Class returns the object's shape tag.
func (o Object) Class() ClassID { return o.info.Class }

// Type returns the object's data type.
func (o Object) Type() DataType { return o.info.Type }

// Count returns the number of addressable sub-elements.
func (o Object) Count() uint8 { return o.info.Elems }

// storage returns the writable backing bytes at [offset, offset+size).
// Used by write strategies; a nil or undersized block means the strategy
// has nowhere to commit.
func (o Object) storage(offset, size uint16) ([]byte, error) {
	if o.data == nil || int(offset)+int(size) > len(o.data) {
		return nil, ErrUnableToSet
	}
	return o.data[offset : offset+size], nil
}

// view returns the readable backing bytes at [offset, offset+size).
func (o Object) view(offset, size uint16) ([]byte, error) {
	if int(offset)+int(size) > len(o.data) {
		return nil, ErrUnableToSet
	}
	return o.data[offset : offset+size], nil
}

// Get copies the raw bytes of the addressed sub-element into buf and
// returns the number of bytes written.
//
// For a Variable only sub-index 0 is valid and yields the scalar's
// bytes. For compound objects sub-index 0 yields the 1-byte element
// count and 1..Count() yield the element's bytes. A buf smaller than the
// value fails ErrParamTooShort without copying; this capacity check is
// uniform, including the count read.
func (o Object) Get(sub uint8, buf []byte) (int, error) {
	if o.data == nil {
		return 0, ErrWriteOnly
	}

	switch o.info.Class {
	case ClassVariable:
		if sub != 0 {
			return 0, ErrFieldNotFound
		}
		return o.read(buf, o.info.Offset, o.info.Size)

	case ClassArray:
		if sub > o.info.Elems {
			return 0, ErrFieldNotFound
		}
		if sub == 0 {
			return o.readCount(buf)
		}
		size := uint16(o.info.Type.Size())
		return o.read(buf, o.info.Offset+size*uint16(sub-1), size)

	case ClassRecord:
		if sub > o.info.Elems {
			return 0, ErrFieldNotFound
		}
		if sub == 0 {
			return o.readCount(buf)
		}
		f := &o.info.Fields[sub-1]
		return o.read(buf, f.Offset, f.Size)
	}
	return 0, ErrObjectNotFound
}

func (o Object) readCount(buf []byte) (int, error) {
	if len(buf) < 1 {
		return 0, ErrParamTooShort
	}
	buf[0] = o.info.Elems
	return 1, nil
}

func (o Object) read(buf []byte, offset, size uint16) (int, error) {
	if len(buf) < int(size) {
		return 0, ErrParamTooShort
	}
	src, err := o.view(offset, size)
	if err != nil {
		return 0, err
	}
	return copy(buf, src), nil
}

// Set writes the addressed sub-element by delegating to the Info's bound
// strategy, which alone performs validation, access control, and the
// commit. Validation completes before any backing byte is touched.
func (o Object) Set(sub uint8, data []byte) error {
	if o.info.Set == nil {
		return ErrReadOnly
	}
	return o.info.Set(o, sub, data)
}

// FieldRef is a read-only projection of one sub-element's metadata,
// resolved without touching data. Valid is false for sub-index 0, for
// out-of-range sub-indices, and for Variables (which have no named
// children).
type FieldRef struct {
	Valid  bool
	Name   string
	Type   DataType
	Perm   Permissions
	Offset uint16
	Size   uint16
	Range  Range
}

// FieldAt resolves the shape, location, and name of the addressed
// sub-element.
func (o Object) FieldAt(sub uint8) FieldRef {
	if sub == 0 || sub > o.info.Elems {
		return FieldRef{}
	}

	switch o.info.Class {
	case ClassRecord:
		f := &o.info.Fields[sub-1]
		return FieldRef{
			Valid:  true,
			Name:   f.Name,
			Type:   f.Type,
			Perm:   f.Perm,
			Offset: f.Offset,
			Size:   f.Size,
			Range:  f.Range,
		}
	case ClassArray:
		size := uint16(o.info.Type.Size())
		ref := FieldRef{
			Valid:  true,
			Type:   o.info.Type,
			Perm:   o.info.Perm,
			Offset: o.info.Offset + size*uint16(sub-1),
			Size:   size,
			Range:  o.info.Range,
		}
		if o.info.Names != nil {
			ref.Name = o.info.Names[sub-1]
		}
		return ref
	}
	return FieldRef{}
}

// Field binds the object to one sub-index for deferred access.
type Field struct {
	obj Object
	sub uint8
}

// Field returns a handle for the given sub-index.
func (o Object) Field(sub uint8) Field {
	return Field{obj: o, sub: sub}
}

// Fields returns one handle per sub-index in [0, Count()), re-deriving
// metadata and values on demand.
func (o Object) Fields() []Field {
	fs := make([]Field, o.info.Elems)
	for i := range fs {
		fs[i] = Field{obj: o, sub: uint8(i)}
	}
	return fs
}

// Sub returns the bound sub-index.
func (f Field) Sub() uint8 { return f.sub }

// Ref resolves the bound sub-element's metadata.
func (f Field) Ref() FieldRef { return f.obj.FieldAt(f.sub) }

// Get reads the bound sub-element.
func (f Field) Get(buf []byte) (int, error) { return f.obj.Get(f.sub, buf) }

// Set writes the bound sub-element.
func (f Field) Set(data []byte) error { return f.obj.Set(f.sub, data) }
