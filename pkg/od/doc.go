// Package od implements an object dictionary: a registry of named,
// addressable device parameters with type checking, range validation,
// and access control.
//
// An object is described by an Info (its shape, data type, permissions,
// and storage location) and accessed through a lightweight Object handle
// that binds the Info to externally owned backing bytes. Three shapes
// exist: Variable (a single scalar or string), Array (homogeneous
// elements sharing one type and range), and Record (heterogeneous named
// fields). Compound objects are addressed by sub-index: sub-index 0
// reads the element count, sub-indices 1..N address the elements.
//
// All metadata is immutable after construction, so a Dictionary and its
// Infos may be shared freely between goroutines without locking. The
// backing storage belongs to the caller; its access discipline is the
// caller's responsibility. The package itself performs no I/O.
//
// Scalar values cross the Get/Set boundary as raw little-endian bytes of
// exactly the type's width. Writes are validated fully (size, then range)
// before any byte of backing storage is touched; a failed Set never
// leaves a partial write behind.
package od
