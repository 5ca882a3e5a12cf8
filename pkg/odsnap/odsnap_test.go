package odsnap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeparam/odict/pkg/od"
)

// testDevice owns the backing storage for the test dictionary so the
// bytes can be inspected and reset between fixtures.
type testDevice struct {
	data []byte
	dict *od.Dictionary
}

func newTestDevice() *testDevice {
	d := &testDevice{data: make([]byte, 16)}

	// offset 0..1: speed (rw i16), 2: mode (ro u8), 3: level (rw u8),
	// 4..9: gains array (3 x u16)
	speed := od.NewVariable(od.PermUserConfig, od.TypeI16, 0, od.Range{Min: -1000, Max: 1000})
	status := od.BuildRecord(od.PermStatus).
		ReadOnly("mode", od.TypeU8, 2, od.PermStatus).
		Scalar("level", od.TypeU8, 3, od.PermUserConfig, od.Range{Min: 0, Max: 100}).
		Build()
	gains := od.NewArray(od.PermFactoryConfig, od.TypeU16, 4, 3, nil, od.Unbounded)
	cmd := od.NewCallback(od.PermDynamic, od.TypeU8, 0, od.Unbounded, func(v int64) error { return nil })

	d.dict = od.New(
		od.Item{Address: 0x2000, Object: od.NewObject("speed", speed, d.data)},
		od.Item{Address: 0x2001, Object: od.NewObject("status", status, d.data)},
		od.Item{Address: 0x2002, Object: od.NewObject("gains", gains, d.data)},
		od.Item{Address: 0x2003, Object: od.NewObject("cmd", cmd, nil)},
	)
	return d
}

func TestCapture(t *testing.T) {
	dev := newTestDevice()
	require.NoError(t, dev.dict.Write(0x2000, 0, []byte{0x2C, 0x01})) // speed = 300
	require.NoError(t, dev.dict.Write(0x2002, 2, []byte{0x34, 0x12}))

	snap := Capture(dev.dict)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.False(t, snap.SavedAt.IsZero())

	// Write-only objects are not captured.
	assert.NotContains(t, snap.Values, uint16(0x2003))

	assert.Equal(t, []byte{0x2C, 0x01}, snap.Values[0x2000][0])
	assert.Equal(t, []byte{0x34, 0x12}, snap.Values[0x2002][2])

	// Records capture every field, including read-only ones; the count
	// at sub-index 0 is not stored.
	assert.NotContains(t, snap.Values[0x2001], uint8(0))
	assert.Len(t, snap.Values[0x2001], 2)
}

func TestRestore(t *testing.T) {
	src := newTestDevice()
	require.NoError(t, src.dict.Write(0x2000, 0, []byte{0x2C, 0x01}))
	require.NoError(t, src.dict.Write(0x2001, 2, []byte{42}))
	require.NoError(t, src.dict.Write(0x2002, 1, []byte{0x01, 0x00}))
	snap := Capture(src.dict)

	dst := newTestDevice()
	stats, err := Restore(dst.dict, snap)
	require.NoError(t, err)

	// The read-only status.mode field is skipped, everything else lands.
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 5, stats.Applied)

	buf := make([]byte, 2)
	n, err := dst.dict.Read(0x2000, 0, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2C, 0x01}, buf[:n])

	n, err = dst.dict.Read(0x2001, 2, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{42}, buf[:n])
}

func TestRestoreRejectsInvalidValues(t *testing.T) {
	dev := newTestDevice()
	snap := &Snapshot{
		Version: SnapshotVersion,
		Values: map[uint16]map[uint8][]byte{
			0x2001: {2: {200}}, // level range is 0..100
		},
	}

	stats, err := Restore(dev.dict, snap)
	assert.ErrorIs(t, err, od.ErrValueTooHigh)
	assert.Equal(t, 0, stats.Applied)
}

func TestRestoreUnknownAddress(t *testing.T) {
	dev := newTestDevice()
	snap := &Snapshot{
		Version: SnapshotVersion,
		Values: map[uint16]map[uint8][]byte{
			0x7FFF: {0: {1}},
		},
	}

	_, err := Restore(dev.dict, snap)
	assert.ErrorIs(t, err, od.ErrObjectNotFound)
}

func TestStore(t *testing.T) {
	t.Run("SaveAndLoad", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "state.cbor"), nil)

		src := newTestDevice()
		require.NoError(t, src.dict.Write(0x2000, 0, []byte{0x64, 0x00})) // speed = 100
		require.NoError(t, store.Save(src.dict))

		dst := newTestDevice()
		stats, err := store.Load(dst.dict)
		require.NoError(t, err)
		assert.Equal(t, 5, stats.Applied)

		buf := make([]byte, 2)
		n, err := dst.dict.Read(0x2000, 0, buf)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x64, 0x00}, buf[:n])
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "missing.cbor"), nil)

		dev := newTestDevice()
		stats, err := store.Load(dev.dict)
		require.NoError(t, err)
		assert.Equal(t, RestoreStats{}, stats)
	})

	t.Run("LoadRejectsBadVersion", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.cbor")
		data, err := encMode.Marshal(&Snapshot{Version: 99})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0644))

		store := NewStore(path, nil)
		dev := newTestDevice()
		_, err = store.Load(dev.dict)
		assert.ErrorContains(t, err, "unsupported snapshot version")
	})

	t.Run("SaveCreatesParentDir", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "nested", "deep", "state.cbor"), nil)

		dev := newTestDevice()
		require.NoError(t, store.Save(dev.dict))

		_, err := os.Stat(store.Path())
		require.NoError(t, err)
	})

	t.Run("Clear", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "state.cbor"), nil)

		dev := newTestDevice()
		require.NoError(t, store.Save(dev.dict))
		require.NoError(t, store.Clear())

		stats, err := store.Load(dev.dict)
		require.NoError(t, err)
		assert.Equal(t, RestoreStats{}, stats)

		// Clearing twice is fine.
		require.NoError(t, store.Clear())
	})
}
