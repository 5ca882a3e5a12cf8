// Package odfmt renders raw object-dictionary bytes as text and parses
// text back into raw bytes, for consoles and diagnostic tools. The core
// od package only moves and validates bytes; everything human-readable
// lives here.
package odfmt
