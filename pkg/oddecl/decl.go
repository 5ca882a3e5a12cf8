package oddecl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edgeparam/odict/pkg/od"
)

// Decl represents a dictionary declaration loaded from YAML.
type Decl struct {
	Name        string       `yaml:"name"`
	Version     string       `yaml:"version"`
	Description string       `yaml:"description"`
	Objects     []ObjectDecl `yaml:"objects"`
}

// ObjectDecl represents one declared object.
type ObjectDecl struct {
	Address     uint16      `yaml:"address"`
	Name        string      `yaml:"name"`
	Class       string      `yaml:"class"` // "variable", "array", "record"
	Type        string      `yaml:"type"`  // "u8", "i16", "string", ...
	Count       uint8       `yaml:"count"` // for arrays
	Length      uint16      `yaml:"length"` // for string types
	Access      string      `yaml:"access"` // "readOnly", "readWrite"
	Min         *int64      `yaml:"min"`
	Max         *int64      `yaml:"max"`
	Names       []string    `yaml:"names"`  // optional array element names
	Fields      []FieldDecl `yaml:"fields"` // for records
	Description string      `yaml:"description"`
}

// FieldDecl represents one declared record field.
type FieldDecl struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Length      uint16 `yaml:"length"`
	Access      string `yaml:"access"`
	Min         *int64 `yaml:"min"`
	Max         *int64 `yaml:"max"`
	Description string `yaml:"description"`
}

// Parse parses a dictionary declaration from YAML bytes.
func Parse(data []byte) (*Decl, error) {
	var decl Decl
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("parsing declaration: %w", err)
	}
	if decl.Name == "" {
		return nil, fmt.Errorf("declaration missing name")
	}
	return &decl, nil
}

// Load loads and parses a dictionary declaration from a file.
func Load(path string) (*Decl, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// ParseType maps a declared type name to its DataType tag.
func ParseType(name string) (od.DataType, bool) {
	switch name {
	case "u8":
		return od.TypeU8, true
	case "u16":
		return od.TypeU16, true
	case "u32":
		return od.TypeU32, true
	case "i8":
		return od.TypeI8, true
	case "i16":
		return od.TypeI16, true
	case "i32":
		return od.TypeI32, true
	case "string":
		return od.TypeString, true
	case "bstring":
		return od.TypeBinString, true
	}
	return od.TypeInvalid, false
}

// ParseClass maps a declared class name to its ClassID tag.
func ParseClass(name string) (od.ClassID, bool) {
	switch name {
	case "variable":
		return od.ClassVariable, true
	case "array":
		return od.ClassArray, true
	case "record":
		return od.ClassRecord, true
	}
	return od.ClassInvalid, false
}

// Validate performs structural checks on the declaration alone: address
// uniqueness, known class and type names, shape consistency, and range
// sanity. It does not need a built dictionary.
func (d *Decl) Validate() *Result {
	result := &Result{Valid: true}

	seen := make(map[uint16]string, len(d.Objects))
	for i := range d.Objects {
		o := &d.Objects[i]
		where := fmt.Sprintf("object 0x%04X (%s)", o.Address, o.Name)

		if o.Name == "" {
			result.AddError("NAME", fmt.Sprintf("object 0x%04X: missing name", o.Address))
		}
		if prev, dup := seen[o.Address]; dup {
			result.AddError("ADDRESS", fmt.Sprintf("%s: address already declared by %q", where, prev))
		}
		seen[o.Address] = o.Name

		class, ok := ParseClass(o.Class)
		if !ok {
			result.AddError("CLASS", fmt.Sprintf("%s: unknown class %q", where, o.Class))
			continue
		}

		switch class {
		case od.ClassVariable:
			d.validateLeaf(result, where, o.Type, o.Length, o.Min, o.Max)
			if len(o.Fields) > 0 {
				result.AddError("SHAPE", fmt.Sprintf("%s: variable must not declare fields", where))
			}

		case od.ClassArray:
			t, ok := ParseType(o.Type)
			if !ok {
				result.AddError("TYPE", fmt.Sprintf("%s: unknown type %q", where, o.Type))
			} else if t == od.TypeString || t == od.TypeBinString {
				result.AddError("TYPE", fmt.Sprintf("%s: arrays hold scalar elements, not %q", where, o.Type))
			}
			if o.Count == 0 {
				result.AddError("SHAPE", fmt.Sprintf("%s: array must declare a count", where))
			}
			if o.Names != nil && len(o.Names) != int(o.Count) {
				result.AddError("SHAPE", fmt.Sprintf("%s: %d names for %d elements", where, len(o.Names), o.Count))
			}
			d.validateRange(result, where, o.Min, o.Max)

		case od.ClassRecord:
			if len(o.Fields) == 0 {
				result.AddError("SHAPE", fmt.Sprintf("%s: record must declare fields", where))
			}
			names := make(map[string]bool, len(o.Fields))
			for _, f := range o.Fields {
				fw := fmt.Sprintf("%s field %q", where, f.Name)
				if f.Name == "" {
					result.AddError("NAME", fmt.Sprintf("%s: missing field name", where))
				}
				if names[f.Name] {
					result.AddError("NAME", fmt.Sprintf("%s: duplicate field name", fw))
				}
				names[f.Name] = true
				d.validateLeaf(result, fw, f.Type, f.Length, f.Min, f.Max)
			}
		}
	}
	return result
}

func (d *Decl) validateLeaf(result *Result, where, typ string, length uint16, min, max *int64) {
	t, ok := ParseType(typ)
	if !ok {
		result.AddError("TYPE", fmt.Sprintf("%s: unknown type %q", where, typ))
		return
	}
	if t == od.TypeString || t == od.TypeBinString {
		if length == 0 {
			result.AddError("SHAPE", fmt.Sprintf("%s: string type must declare a length", where))
		}
		if min != nil || max != nil {
			result.AddWarning("RANGE", fmt.Sprintf("%s: range is ignored for string types", where))
		}
		return
	}
	d.validateRange(result, where, min, max)
}

func (d *Decl) validateRange(result *Result, where string, min, max *int64) {
	if min != nil && max != nil && *min > *max {
		result.AddError("RANGE", fmt.Sprintf("%s: min %d above max %d", where, *min, *max))
	}
	if (min == nil) != (max == nil) {
		result.AddError("RANGE", fmt.Sprintf("%s: min and max must be declared together", where))
	}
}

// DeclRange converts a declared min/max pair to a Range. Absent bounds
// yield the unbounded range.
func (o *ObjectDecl) DeclRange() od.Range {
	if o.Min == nil || o.Max == nil {
		return od.Unbounded
	}
	return od.Range{Min: *o.Min, Max: *o.Max}
}
