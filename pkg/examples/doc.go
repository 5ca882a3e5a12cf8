// Package examples provides a reference device built on the object
// dictionary.
//
// The demo device shows:
//   - Dictionary construction over one backing storage block
//   - Record layout with mixed read-only, writable, and string fields
//   - Callback setters for writes with side effects
//   - Named array elements and write-only command objects
//
// It backs the odict-console binary and serves as a template for real
// device parameter sets.
package examples
