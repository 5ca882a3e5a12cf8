package od

import (
	"cmp"
	"slices"
)

// Item is one dictionary entry: a numeric address, an opaque
// protocol-specific mapping tag, and the object itself.
type Item struct {
	// Address is the object's numeric address.
	Address uint16

	// PDOMapping is a protocol-specific tag carried through untouched;
	// this package does not interpret it.
	PDOMapping uint16

	// Object is the addressed object handle.
	Object Object
}

// Dictionary is an immutable, address-sorted registry of objects. Build
// it once at startup and share it; it is safe for concurrent readers and
// the member set never changes afterwards.
type Dictionary struct {
	items []Item
}

// New builds a dictionary from items in any order; they are sorted
// ascending by address once here, which address lookup depends on.
func New(items ...Item) *Dictionary {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return cmp.Compare(a.Address, b.Address)
	})
	return &Dictionary{items: sorted}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.items) }

// Items returns the address-ordered entries. The returned slice is the
// dictionary's own and must not be modified.
func (d *Dictionary) Items() []Item { return d.items }

// Get looks an object up by address using binary search.
func (d *Dictionary) Get(address uint16) (Object, bool) {
	i, ok := slices.BinarySearchFunc(d.items, address, func(it Item, addr uint16) int {
		return cmp.Compare(it.Address, addr)
	})
	if !ok {
		return Object{}, false
	}
	return d.items[i].Object, true
}

// Find looks an item up by object name. Names carry no secondary index,
// so this is always a linear, case-sensitive scan; keep that in mind on
// hot paths.
func (d *Dictionary) Find(name string) (*Item, bool) {
	for i := range d.items {
		if d.items[i].Object.Name() == name {
			return &d.items[i], true
		}
	}
	return nil, false
}

// Read combines address lookup with Object.Get, reporting
// ErrObjectNotFound for an absent address.
func (d *Dictionary) Read(address uint16, sub uint8, buf []byte) (int, error) {
	o, ok := d.Get(address)
	if !ok {
		return 0, ErrObjectNotFound
	}
	return o.Get(sub, buf)
}

// Write combines address lookup with Object.Set.
func (d *Dictionary) Write(address uint16, sub uint8, data []byte) error {
	o, ok := d.Get(address)
	if !ok {
		return ErrObjectNotFound
	}
	return o.Set(sub, data)
}
