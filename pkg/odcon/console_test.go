package odcon

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeparam/odict/pkg/examples"
	"github.com/edgeparam/odict/pkg/odlog"
)

// recorder captures events for assertions.
type recorder struct {
	events []odlog.Event
}

func (r *recorder) Log(e odlog.Event) { r.events = append(r.events, e) }

func run(t *testing.T, lines ...string) (string, *recorder) {
	t.Helper()
	var out bytes.Buffer
	rec := &recorder{}
	c := New(examples.NewDevice().Dictionary(), &out, rec)
	for _, line := range lines {
		c.Execute(line)
	}
	return out.String(), rec
}

func TestList(t *testing.T) {
	out, _ := run(t, "ls")

	assert.Contains(t, out, "0x2000")
	assert.Contains(t, out, "status")
	assert.Contains(t, out, "Record:{temp:i16, flags:u8}")
	assert.Contains(t, out, "Array:u16(4)")
}

func TestListObject(t *testing.T) {
	out, _ := run(t, "ls status")

	assert.Contains(t, out, "0x2000 status")
	assert.Contains(t, out, "temp: 25")
	assert.Contains(t, out, "flags: 0")
}

func TestGet(t *testing.T) {
	t.Run("RecordField", func(t *testing.T) {
		out, rec := run(t, "get status.temp")
		assert.Contains(t, out, "status.temp = 25")

		require.Len(t, rec.events, 2) // query + read
		assert.Equal(t, odlog.OpQuery, rec.events[0].Op)
		read := rec.events[1]
		assert.Equal(t, odlog.OpRead, read.Op)
		assert.Equal(t, uint16(0x2000), read.Address)
		assert.Equal(t, uint8(1), read.Sub)
		assert.NoError(t, read.Err)
	})

	t.Run("ArrayElement", func(t *testing.T) {
		out, _ := run(t, "get calibration.gain")
		assert.Contains(t, out, "calibration.gain = 1024")
	})

	t.Run("SeparatorVariants", func(t *testing.T) {
		dot, _ := run(t, "get status.temp")
		colon, _ := run(t, "get status:temp")
		slash, _ := run(t, "get status/temp")
		assert.Equal(t, dot, colon)
		assert.Equal(t, dot, slash)
	})

	t.Run("WholeRecord", func(t *testing.T) {
		out, _ := run(t, "get status")
		assert.Contains(t, out, "temp: 25")
		assert.Contains(t, out, "flags: 0")
	})

	t.Run("UnknownObject", func(t *testing.T) {
		out, rec := run(t, "get nosuch")
		assert.Contains(t, out, "Error:")
		require.Len(t, rec.events, 1)
		assert.Error(t, rec.events[0].Err)
	})

	t.Run("UnknownField", func(t *testing.T) {
		out, _ := run(t, "get status.pressure")
		assert.Contains(t, out, "Error:")
	})

	t.Run("WriteOnlyObject", func(t *testing.T) {
		out, _ := run(t, "get command")
		assert.Contains(t, out, "write only")
	})
}

func TestSet(t *testing.T) {
	t.Run("RecordField", func(t *testing.T) {
		out, rec := run(t, "set status.temp = 85", "get status.temp")
		assert.Contains(t, out, "OK")
		assert.Contains(t, out, "status.temp = 85")

		var write *odlog.Event
		for i := range rec.events {
			if rec.events[i].Op == odlog.OpWrite {
				write = &rec.events[i]
			}
		}
		require.NotNil(t, write)
		assert.Equal(t, uint16(0x2000), write.Address)
		assert.NoError(t, write.Err)
	})

	t.Run("WithoutEquals", func(t *testing.T) {
		out, _ := run(t, "set status.temp 60", "get status.temp")
		assert.Contains(t, out, "OK")
		assert.Contains(t, out, "status.temp = 60")
	})

	t.Run("HexValue", func(t *testing.T) {
		out, _ := run(t, "set calibration.phase = 0xFF", "get calibration.phase")
		assert.Contains(t, out, "OK")
		assert.Contains(t, out, "calibration.phase = 255")
	})

	t.Run("RangeRejection", func(t *testing.T) {
		out, _ := run(t, "set status.temp = 200", "get status.temp")
		assert.Contains(t, out, "Write failed:")
		assert.Contains(t, out, "status.temp = 25", "rejected write must not change memory")
	})

	t.Run("ReadOnlyField", func(t *testing.T) {
		out, _ := run(t, "set status.flags = 1")
		assert.Contains(t, out, "Write failed:")
		assert.Contains(t, out, "read only")
	})

	t.Run("UnparsableValue", func(t *testing.T) {
		out, _ := run(t, "set status.temp = banana")
		assert.Contains(t, out, "Invalid value")
	})

	t.Run("WholeCompoundRejected", func(t *testing.T) {
		out, _ := run(t, "set status = 1")
		assert.Contains(t, out, "select one element")
	})

	t.Run("VariableWithoutSub", func(t *testing.T) {
		out, _ := run(t, "set command = 2")
		assert.Contains(t, out, "OK")
	})

	t.Run("MissingValue", func(t *testing.T) {
		out, _ := run(t, "set status.temp")
		assert.Contains(t, out, "Usage: set")
	})
}

func TestHelpAndUnknown(t *testing.T) {
	out, _ := run(t, "help")
	assert.Contains(t, out, "Dictionary Commands")

	out, _ = run(t, "frobnicate")
	assert.Contains(t, out, "Unknown command: frobnicate")

	out, _ = run(t, "", "   ")
	assert.Empty(t, strings.TrimSpace(out))
}
