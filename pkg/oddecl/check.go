package oddecl

import (
	"fmt"

	"github.com/edgeparam/odict/pkg/od"
)

// Issue is one problem found while validating or checking a
// declaration.
type Issue struct {
	Code    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// Result aggregates the issues of one validation or check run.
type Result struct {
	// Valid is true when no errors were found. Warnings do not clear it.
	Valid bool

	// Errors contains all hard mismatches.
	Errors []Issue

	// Warnings contains non-fatal issues.
	Warnings []Issue
}

// AddError records a hard mismatch.
func (r *Result) AddError(code, message string) {
	r.Errors = append(r.Errors, Issue{Code: code, Message: message})
	r.Valid = false
}

// AddWarning records a non-fatal issue.
func (r *Result) AddWarning(code, message string) {
	r.Warnings = append(r.Warnings, Issue{Code: code, Message: message})
}

// Check compares a declaration against a built dictionary: every
// declared object must exist at its address with the declared name,
// shape, type, and element count. Objects present in the dictionary but
// absent from the declaration are reported as warnings, since a
// declaration may intentionally cover only a subset.
func Check(decl *Decl, dict *od.Dictionary) *Result {
	result := &Result{Valid: true}

	declared := make(map[uint16]bool, len(decl.Objects))
	for i := range decl.Objects {
		o := &decl.Objects[i]
		declared[o.Address] = true
		where := fmt.Sprintf("object 0x%04X (%s)", o.Address, o.Name)

		obj, ok := dict.Get(o.Address)
		if !ok {
			result.AddError("MISSING", fmt.Sprintf("%s: not in dictionary", where))
			continue
		}

		if obj.Name() != o.Name {
			result.AddError("NAME", fmt.Sprintf("%s: dictionary names it %q", where, obj.Name()))
		}

		class, ok := ParseClass(o.Class)
		if ok && obj.Class() != class {
			result.AddError("CLASS", fmt.Sprintf("%s: declared %s, dictionary has %s", where, class, obj.Class()))
			continue
		}

		switch class {
		case od.ClassVariable:
			checkLeaf(result, where, o.Type, obj.Type())

		case od.ClassArray:
			checkLeaf(result, where, o.Type, obj.Type())
			if obj.Count() != o.Count {
				result.AddError("COUNT", fmt.Sprintf("%s: declared %d elements, dictionary has %d", where, o.Count, obj.Count()))
			}
			for n, name := range o.Names {
				ref := obj.FieldAt(uint8(n + 1))
				if ref.Valid && name != "" && ref.Name != name {
					result.AddError("NAME", fmt.Sprintf("%s element %d: declared %q, dictionary has %q", where, n+1, name, ref.Name))
				}
			}

		case od.ClassRecord:
			if int(obj.Count()) != len(o.Fields) {
				result.AddError("COUNT", fmt.Sprintf("%s: declared %d fields, dictionary has %d", where, len(o.Fields), obj.Count()))
				continue
			}
			for n, f := range o.Fields {
				ref := obj.FieldAt(uint8(n + 1))
				fw := fmt.Sprintf("%s field %q", where, f.Name)
				if ref.Name != f.Name {
					result.AddError("NAME", fmt.Sprintf("%s: dictionary names sub %d %q", fw, n+1, ref.Name))
				}
				checkLeaf(result, fw, f.Type, ref.Type)
			}
		}
	}

	for _, item := range dict.Items() {
		if !declared[item.Address] {
			result.AddWarning("UNDECLARED", fmt.Sprintf("object 0x%04X (%s): in dictionary but not declared", item.Address, item.Object.Name()))
		}
	}
	return result
}

func checkLeaf(result *Result, where, declared string, actual od.DataType) {
	t, ok := ParseType(declared)
	if ok && t != actual {
		result.AddError("TYPE", fmt.Sprintf("%s: declared %s, dictionary has %s", where, t, actual))
	}
}
