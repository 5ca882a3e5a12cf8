package od

// DataType tags the byte representation of a leaf value. The numeric
// values are fixed by the protocol and must be preserved when exposed on
// a wire.
type DataType uint8

const (
	TypeInvalid   DataType = 0x0
	TypeU8        DataType = 0x1
	TypeU16       DataType = 0x2
	TypeU32       DataType = 0x3
	TypeI8        DataType = 0x4
	TypeI16       DataType = 0x5
	TypeI32       DataType = 0x6
	TypeString    DataType = 0x8
	TypeBinString DataType = 0x9
	TypeRecord    DataType = 0xA
)

// Size returns the byte width of one value of this type. String types
// report the width of a single character; Record and Invalid report 0
// (composite, no direct scalar size).
func (t DataType) Size() int {
	switch t {
	case TypeU8, TypeI8, TypeString, TypeBinString:
		return 1
	case TypeU16, TypeI16:
		return 2
	case TypeU32, TypeI32:
		return 4
	}
	return 0
}

// String returns the type name.
func (t DataType) String() string {
	switch t {
	case TypeInvalid:
		return "invalid"
	case TypeU8:
		return "u8"
	case TypeU16:
		return "u16"
	case TypeU32:
		return "u32"
	case TypeI8:
		return "i8"
	case TypeI16:
		return "i16"
	case TypeI32:
		return "i32"
	case TypeString:
		return "string"
	case TypeBinString:
		return "bstring"
	case TypeRecord:
		return "record"
	}
	return "ERR"
}

func (t DataType) signed() bool {
	return t == TypeI8 || t == TypeI16 || t == TypeI32
}

func (t DataType) scalar() bool {
	switch t {
	case TypeU8, TypeU16, TypeU32, TypeI8, TypeI16, TypeI32:
		return true
	}
	return false
}

// ClassID identifies the shape of an object.
type ClassID uint8

const (
	// ClassInvalid marks an unassigned Info.
	ClassInvalid ClassID = 0x0
	// ClassVariable is a simple variable containing a single value.
	ClassVariable ClassID = 0x1
	// ClassArray contains multiple members sharing one type.
	ClassArray ClassID = 0x2
	// ClassRecord contains multiple named members of varying types.
	ClassRecord ClassID = 0x3
)

// String returns the shape name.
func (c ClassID) String() string {
	switch c {
	case ClassVariable:
		return "Variable"
	case ClassArray:
		return "Array"
	case ClassRecord:
		return "Record"
	}
	return "Object"
}

// Permissions is the advisory access level attached to an object's
// metadata. Actual enforcement is performed by the SetFunc bound into
// the Info; Permissions exists so front ends can decide what to display
// and what to offer for editing.
type Permissions uint8

const (
	// PermFactoryHidden is read/write in factory mode, otherwise
	// read-only, and hidden from listings.
	PermFactoryHidden Permissions = 0
	// PermFactoryConfig is read/write in factory mode, otherwise
	// read-only.
	PermFactoryConfig Permissions = 1
	// PermHidden is read/write but hidden from listings.
	PermHidden Permissions = 2
	// PermUserConfig is read/write to all users.
	PermUserConfig Permissions = 3
	// PermInfo is read-only to all users.
	PermInfo Permissions = 4
	// PermStatus is read-only and dynamic to all users.
	PermStatus Permissions = 5
	// PermDynamic is a fully dynamic object.
	PermDynamic Permissions = 6
)

// String returns the permission level name.
func (p Permissions) String() string {
	switch p {
	case PermFactoryHidden:
		return "factory-hidden"
	case PermFactoryConfig:
		return "factory-config"
	case PermHidden:
		return "hidden"
	case PermUserConfig:
		return "user-config"
	case PermInfo:
		return "info"
	case PermStatus:
		return "status"
	case PermDynamic:
		return "dynamic"
	}
	return "unknown"
}
