package odsnap

import (
	"errors"
	"fmt"
	"time"

	"github.com/edgeparam/odict/pkg/od"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// Snapshot holds the captured values of a dictionary, keyed by address
// and sub-index. CBOR encoding uses integer keys for compactness.
type Snapshot struct {
	// Version is the snapshot format version.
	Version int `cbor:"1,keyasint"`

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time `cbor:"2,keyasint"`

	// Values maps address -> sub-index -> raw value bytes. Variables
	// store their value under sub-index 0; compound objects store one
	// entry per element (the count at sub-index 0 is derived, not
	// stored).
	Values map[uint16]map[uint8][]byte `cbor:"3,keyasint"`
}

// Capture reads every readable object in the dictionary into a new
// snapshot. Write-only objects are skipped.
func Capture(d *od.Dictionary) *Snapshot {
	snap := &Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Now(),
		Values:  make(map[uint16]map[uint8][]byte),
	}

	for _, item := range d.Items() {
		obj := item.Object
		buf := make([]byte, obj.Info().Size)

		var subs map[uint8][]byte
		if obj.Class() == od.ClassVariable {
			n, err := obj.Get(0, buf)
			if err != nil {
				continue // write-only
			}
			subs = map[uint8][]byte{0: append([]byte(nil), buf[:n]...)}
		} else {
			subs = make(map[uint8][]byte, obj.Count())
			for sub := uint8(1); sub != 0 && sub <= obj.Count(); sub++ {
				n, err := obj.Get(sub, buf)
				if err != nil {
					continue
				}
				subs[sub] = append([]byte(nil), buf[:n]...)
			}
		}
		if len(subs) > 0 {
			snap.Values[item.Address] = subs
		}
	}
	return snap
}

// RestoreStats reports what a restore applied.
type RestoreStats struct {
	// Applied counts values written successfully.
	Applied int

	// Skipped counts values whose target rejected the write as
	// read-only; these are expected (status fields are captured but not
	// restorable) and not errors.
	Skipped int
}

// Restore replays a snapshot into the dictionary through Write, so
// every value passes normal validation. Read-only targets are counted
// as skipped; all other failures are joined into the returned error.
func Restore(d *od.Dictionary, snap *Snapshot) (RestoreStats, error) {
	var stats RestoreStats
	var errs []error

	for addr, subs := range snap.Values {
		for sub, data := range subs {
			err := d.Write(addr, sub, data)
			switch {
			case err == nil:
				stats.Applied++
			case errors.Is(err, od.ErrReadOnly):
				stats.Skipped++
			default:
				errs = append(errs, fmt.Errorf("restore 0x%04X sub %d: %w", addr, sub, err))
			}
		}
	}
	return stats, errors.Join(errs...)
}
