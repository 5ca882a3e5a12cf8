package od

import "strings"

// SelMode distinguishes what part of an object a selection addresses.
type SelMode uint8

const (
	// SelObject addresses the whole object, no sub-index chosen.
	SelObject SelMode = iota
	// SelCount addresses the element-count sub-index (0).
	SelCount
	// SelElement addresses one element by 1-based sub-index.
	SelElement
)

// Sel is an explicit sub-element selection, replacing the -1/0 sentinel
// convention of signed sub-indices.
type Sel struct {
	Mode  SelMode
	Index uint8 // sub-index for SelElement; unused otherwise
}

// SubIndex maps the selection onto the numeric sub-index contract:
// SelCount is 0, SelElement is its index. ok is false for SelObject,
// which has no sub-index.
func (s Sel) SubIndex() (sub uint8, ok bool) {
	switch s.Mode {
	case SelCount:
		return 0, true
	case SelElement:
		return s.Index, true
	}
	return 0, false
}

// Query is the transient result of resolving a textual reference.
type Query struct {
	// ObjectName and SubName are the parsed path components.
	ObjectName string
	SubName    string

	// Item is the resolved dictionary entry.
	Item *Item

	// Info is the resolved object's metadata.
	Info *Info

	// Field is the resolved sub-element metadata; Valid only when Sel
	// addresses an element.
	Field FieldRef

	// Sel is what the query addresses within the object.
	Sel Sel
}

// Type returns the data type of the addressed value: the element's type
// for an element selection, the object's type otherwise.
func (q Query) Type() DataType {
	if q.Field.Valid {
		return q.Field.Type
	}
	if q.Info != nil {
		return q.Info.Type
	}
	return TypeInvalid
}

func issep(r rune) bool { return r == '.' || r == ':' || r == '/' }

// SplitPath splits a textual reference into object and sub-object names
// on any of the separators '.', ':' or '/', trimming surrounding
// whitespace from each. Anything past a second separator is discarded.
func SplitPath(text string) (object, sub string) {
	i := strings.IndexFunc(text, issep)
	if i < 0 {
		return strings.TrimSpace(text), ""
	}
	object = strings.TrimSpace(text[:i])
	sub = text[i+1:]
	if j := strings.IndexFunc(sub, issep); j >= 0 {
		sub = sub[:j]
	}
	return object, strings.TrimSpace(sub)
}

// Query resolves a textual "object.subobject" reference to a concrete
// item and selection. The object name resolves through Find; a
// sub-object name resolves against Record field names or Array element
// names, case-sensitively. An empty sub-object name selects the whole
// object.
func (d *Dictionary) Query(text string) (Query, error) {
	object, sub := SplitPath(text)
	q := Query{ObjectName: object, SubName: sub}

	item, ok := d.Find(object)
	if !ok {
		return q, ErrObjectNotFound
	}
	q.Item = item
	q.Info = item.Object.Info()

	if sub == "" {
		q.Sel = Sel{Mode: SelObject}
		return q, nil
	}

	var n int
	switch q.Info.Class {
	case ClassRecord:
		n, ok = q.Info.FindField(sub)
	case ClassArray:
		n, ok = q.Info.FindName(sub)
	default:
		ok = false
	}
	if !ok {
		return q, ErrFieldNotFound
	}

	q.Sel = Sel{Mode: SelElement, Index: uint8(n + 1)}
	q.Field = item.Object.FieldAt(q.Sel.Index)
	return q, nil
}
