package odsnap

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/edgeparam/odict/pkg/od"
	"github.com/edgeparam/odict/pkg/odlog"
)

// Store manages persistence of dictionary snapshots to a CBOR file.
type Store struct {
	mu     sync.Mutex
	path   string
	logger odlog.Logger
}

// NewStore creates a new snapshot store. logger may be nil.
func NewStore(path string, logger odlog.Logger) *Store {
	if logger == nil {
		logger = odlog.NoopLogger{}
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Save captures the dictionary and persists it to disk. The file is
// written to a temporary name and renamed into place so a crash mid
// write cannot corrupt an earlier snapshot.
func (s *Store) Save(d *od.Dictionary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Capture(d)

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := encMode.Marshal(snap)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}

	s.logger.Log(odlog.Event{
		Op:     odlog.OpSnapshot,
		Detail: fmt.Sprintf("saved %d objects to %s", len(snap.Values), s.path),
	}.Now())
	return nil
}

// Load reads a snapshot from disk and restores it into the dictionary.
// Returns zero stats and no error if the file doesn't exist.
func (s *Store) Load(d *od.Dictionary) (RestoreStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return RestoreStats{}, nil
	}
	if err != nil {
		return RestoreStats{}, err
	}

	snap := &Snapshot{}
	if err := decMode.Unmarshal(data, snap); err != nil {
		return RestoreStats{}, err
	}
	if snap.Version != SnapshotVersion {
		return RestoreStats{}, fmt.Errorf("odsnap: unsupported snapshot version %d", snap.Version)
	}

	stats, err := Restore(d, snap)
	s.logger.Log(odlog.Event{
		Op:     odlog.OpSnapshot,
		Detail: fmt.Sprintf("restored %d values from %s (%d skipped)", stats.Applied, s.path, stats.Skipped),
		Err:    err,
	}.Now())
	return stats, err
}

// Clear removes the snapshot file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
