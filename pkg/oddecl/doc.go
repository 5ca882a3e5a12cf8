// Package oddecl parses YAML dictionary declarations and checks them
// against built dictionaries.
//
// A declaration is the external description of a device's parameter
// layout: which addresses exist, their names, shapes, and ranges. It is
// used by tooling to document a dictionary and to verify that a built
// dictionary matches what was declared.
package oddecl
