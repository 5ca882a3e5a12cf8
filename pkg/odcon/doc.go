// Package odcon implements the line-oriented dictionary console. It
// resolves textual object references, reads and writes values through
// the dictionary, and renders results to an injected writer, so the
// same command handling serves an interactive prompt and tests alike.
package odcon
