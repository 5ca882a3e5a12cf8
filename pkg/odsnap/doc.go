// Package odsnap persists the current values of an object dictionary
// across restarts. A snapshot captures the raw bytes of every readable
// object; restoring replays them through Dictionary.Write so every
// stored byte passes the same validation as a live write. Snapshots are
// CBOR-encoded with integer keys and a version tag.
package odsnap
