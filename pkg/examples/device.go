package examples

import (
	"sync/atomic"

	"github.com/edgeparam/odict/pkg/od"
)

// Storage layout of the demo device. Records require their fields to be
// contiguous, so every offset below is part of the dictionary contract.
const (
	offName   = 0 // string[16]
	offSerial = 16

	offTemp  = 20 // i16
	offFlags = 22 // u8

	offTarget = 23 // i16
	offRamp   = 25 // u8
	offEnable = 26 // u8

	offCal  = 27 // 4 x u16
	numCal  = 4
	memSize = 35
)

// Device is a simulated device exposing its parameters through an
// object dictionary. All values live in one backing block the way
// firmware keeps them in a parameter RAM section.
type Device struct {
	data [memSize]byte
	dict *od.Dictionary

	motorEnabled atomic.Bool
	lastCommand  atomic.Int64
}

// NewDevice builds the demo device with its dictionary.
func NewDevice() *Device {
	d := &Device{}

	deviceInfo := od.BuildRecord(od.PermInfo).
		String("name", offName, 16, od.PermUserConfig).
		ReadOnly("serial", od.TypeU32, offSerial, od.PermInfo).
		Build()

	status := od.BuildRecord(od.PermStatus).
		Scalar("temp", od.TypeI16, offTemp, od.PermUserConfig, od.Range{Min: -40, Max: 125}).
		ReadOnly("flags", od.TypeU8, offFlags, od.PermStatus).
		Build()

	motor := od.BuildRecord(od.PermUserConfig).
		Scalar("target", od.TypeI16, offTarget, od.PermUserConfig, od.Range{Min: -3000, Max: 3000}).
		Scalar("ramp", od.TypeU8, offRamp, od.PermUserConfig, od.Range{Min: 1, Max: 100}).
		Func("enable", od.TypeU8, offEnable, 1, od.PermUserConfig, od.SetChain(
			od.SetCallback(od.TypeU8, od.Range{Min: 0, Max: 1}, d.setMotorEnabled),
			od.SetScalar(od.TypeU8, offEnable, od.Range{Min: 0, Max: 1}),
		)).
		Build()

	calibration := od.NewArray(od.PermFactoryConfig, od.TypeU16, offCal, numCal,
		[]string{"gain", "offset", "phase", "ref"}, od.Range{Min: 0, Max: 4095})

	command := od.NewCallback(od.PermDynamic, od.TypeU8, 0, od.Range{Min: 1, Max: 4}, d.runCommand)

	d.dict = od.New(
		od.Item{Address: 0x1000, Object: od.NewObject("deviceinfo", deviceInfo, d.data[:])},
		od.Item{Address: 0x2000, Object: od.NewObject("status", status, d.data[:])},
		od.Item{Address: 0x3000, Object: od.NewObject("motor", motor, d.data[:])},
		od.Item{Address: 0x5000, Object: od.NewObject("command", command, nil)},
		od.Item{Address: 0x6000, Object: od.NewObject("calibration", calibration, d.data[:])},
	)

	d.initDefaults()
	return d
}

func (d *Device) initDefaults() {
	copy(d.data[offName:], "demo-device")
	// serial 0x00C0FFEE, little-endian
	copy(d.data[offSerial:], []byte{0xEE, 0xFF, 0xC0, 0x00})
	// temp 25, ramp 10, gain 1024
	d.data[offTemp] = 25
	d.data[offRamp] = 10
	d.data[offCal] = 0x00
	d.data[offCal+1] = 0x04
}

// Dictionary returns the device's object dictionary.
func (d *Device) Dictionary() *od.Dictionary { return d.dict }

// MotorEnabled reports the state driven by writes to motor.enable.
func (d *Device) MotorEnabled() bool { return d.motorEnabled.Load() }

// LastCommand returns the most recent value written to the command
// object, 0 if none.
func (d *Device) LastCommand() int64 { return d.lastCommand.Load() }

func (d *Device) setMotorEnabled(v int64) error {
	d.motorEnabled.Store(v != 0)
	return nil
}

func (d *Device) runCommand(v int64) error {
	d.lastCommand.Store(v)
	return nil
}
