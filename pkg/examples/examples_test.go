package examples

import (
	"errors"
	"testing"

	"github.com/edgeparam/odict/pkg/od"
)

func TestDeviceDictionary(t *testing.T) {
	dev := NewDevice()
	dict := dev.Dictionary()

	if dict.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", dict.Len())
	}

	// Every object resolvable by address and by name
	for _, item := range dict.Items() {
		if _, ok := dict.Get(item.Address); !ok {
			t.Errorf("Get(0x%04X) not found", item.Address)
		}
		if _, ok := dict.Find(item.Object.Name()); !ok {
			t.Errorf("Find(%q) not found", item.Object.Name())
		}
	}
}

func TestDeviceDefaults(t *testing.T) {
	dev := NewDevice()
	dict := dev.Dictionary()

	buf := make([]byte, 16)
	if _, err := dict.Read(0x1000, 1, buf); err != nil {
		t.Fatalf("read name: %v", err)
	}
	if got := string(buf[:11]); got != "demo-device" {
		t.Errorf("name = %q, want %q", got, "demo-device")
	}

	n, err := dict.Read(0x1000, 2, buf)
	if err != nil {
		t.Fatalf("read serial: %v", err)
	}
	serial, err := od.DecodeScalar(od.TypeU32, buf[:n])
	if err != nil {
		t.Fatalf("decode serial: %v", err)
	}
	if serial != 0x00C0FFEE {
		t.Errorf("serial = 0x%X, want 0xC0FFEE", serial)
	}

	q, err := dict.Query("status.temp")
	if err != nil {
		t.Fatalf("query status.temp: %v", err)
	}
	sub, _ := q.Sel.SubIndex()
	n, err = q.Item.Object.Get(sub, buf)
	if err != nil {
		t.Fatalf("read temp: %v", err)
	}
	temp, _ := od.DecodeScalar(od.TypeI16, buf[:n])
	if temp != 25 {
		t.Errorf("temp = %d, want 25", temp)
	}
}

func TestMotorEnableCallback(t *testing.T) {
	dev := NewDevice()
	dict := dev.Dictionary()

	if dev.MotorEnabled() {
		t.Fatal("motor enabled before any write")
	}

	q, err := dict.Query("motor.enable")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	sub, _ := q.Sel.SubIndex()

	if err := q.Item.Object.Set(sub, []byte{1}); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !dev.MotorEnabled() {
		t.Error("callback did not run")
	}

	// The value is also committed to storage
	buf := make([]byte, 1)
	if _, err := q.Item.Object.Get(sub, buf); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if buf[0] != 1 {
		t.Errorf("stored enable = %d, want 1", buf[0])
	}

	// Out-of-range value neither runs the callback nor commits
	if err := q.Item.Object.Set(sub, []byte{2}); !errors.Is(err, od.ErrValueTooHigh) {
		t.Fatalf("Set(2) = %v, want ErrValueTooHigh", err)
	}
	if !dev.MotorEnabled() {
		t.Error("state lost after rejected write")
	}
}

func TestCommandObject(t *testing.T) {
	dev := NewDevice()
	dict := dev.Dictionary()

	buf := make([]byte, 1)
	if _, err := dict.Read(0x5000, 0, buf); !errors.Is(err, od.ErrWriteOnly) {
		t.Fatalf("Read(command) = %v, want ErrWriteOnly", err)
	}

	if err := dict.Write(0x5000, 0, []byte{3}); err != nil {
		t.Fatalf("Write(command) = %v", err)
	}
	if dev.LastCommand() != 3 {
		t.Errorf("LastCommand() = %d, want 3", dev.LastCommand())
	}

	if err := dict.Write(0x5000, 0, []byte{9}); !errors.Is(err, od.ErrValueTooHigh) {
		t.Fatalf("Write(9) = %v, want ErrValueTooHigh", err)
	}
	if dev.LastCommand() != 3 {
		t.Errorf("LastCommand() changed to %d on rejected write", dev.LastCommand())
	}
}

func TestCalibrationArray(t *testing.T) {
	dev := NewDevice()
	dict := dev.Dictionary()

	for _, name := range []string{"gain", "offset", "phase", "ref"} {
		if _, err := dict.Query("calibration." + name); err != nil {
			t.Errorf("Query(calibration.%s) = %v", name, err)
		}
	}

	buf := make([]byte, 2)
	n, err := dict.Read(0x6000, 1, buf)
	if err != nil {
		t.Fatalf("read gain: %v", err)
	}
	gain, _ := od.DecodeScalar(od.TypeU16, buf[:n])
	if gain != 1024 {
		t.Errorf("gain = %d, want 1024", gain)
	}

	// Shared range applies to every element
	bad, _ := od.EncodeScalar(od.TypeU16, 5000)
	if err := dict.Write(0x6000, 2, bad); !errors.Is(err, od.ErrValueTooHigh) {
		t.Fatalf("Write(5000) = %v, want ErrValueTooHigh", err)
	}
}
