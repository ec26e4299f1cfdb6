package devices

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/intuitionamiga/uxnengine/internal/uxn"
)

func TestSystemDispatchesByPage(t *testing.T) {
	sys := New()
	con := NewConsole()
	sys.Install(0x1, con)

	// LIT 41 LIT 18 DEO BRK: write 'A' to port 0x18 (console write).
	prog := []byte{0x80, 0x41, 0x80, 0x18, 0x17, 0x00}
	if err := sys.Boot(prog); err != nil {
		t.Fatalf("Boot: %v", err)
	}
	sys.Run()
}

func TestSystemVectorWriteIsRecorded(t *testing.T) {
	sys := New()
	// LIT2 1234 LIT 20 DEO2 BRK: write the short 0x1234 to port 0x20
	// (page 2's own vector sub-port).
	prog := []byte{0xA0, 0x12, 0x34, 0x80, 0x20, 0x37, 0x00}
	if err := sys.Boot(prog); err != nil {
		t.Fatalf("Boot: %v", err)
	}
	sys.Run()
	if sys.Vectors[0x2] != 0x1234 {
		t.Fatalf("Vectors[2] = %#x, want 0x1234", sys.Vectors[0x2])
	}
}

func TestConsoleReadEchoesQueuedByte(t *testing.T) {
	con := NewConsole()
	con.Feed('x')
	v := con.DEI(nil, 0x12, false)
	if v != 'x' {
		t.Fatalf("console read = %#x, want 'x'", v)
	}
	if v2 := con.DEI(nil, 0x12, false); v2 != 0 {
		t.Fatalf("second read = %#x, want 0 (buffer drained)", v2)
	}
}

func TestSystemDeviceRecordsExit(t *testing.T) {
	sysDev := NewSystemDevice()
	sysDev.DEO(nil, 0x0f, 7, false)
	if !sysDev.Exiting || sysDev.ExitCode != 7 {
		t.Fatalf("Exiting=%v ExitCode=%d, want true/7", sysDev.Exiting, sysDev.ExitCode)
	}
}

func TestAudioSampleStaysInRange(t *testing.T) {
	a := NewAudio(44100)
	a.DEO(nil, 0x32, 440, true)  // pitch
	a.DEO(nil, 0x34, 200, false) // volume
	a.DEO(nil, 0x35, 1, false)   // gate on
	for i := 0; i < 1000; i++ {
		s := a.Sample()
		if s < -1 || s > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}

func TestDatetimeReportsPlausibleYear(t *testing.T) {
	d := NewDatetime()
	y := d.DEI(nil, 0xc0, true)
	if y < 2020 || y > 2200 {
		t.Fatalf("year = %d, implausible", y)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	vm := uxn.New(nil)
	nameAddr := uint16(0x0300)
	copy(vm.Mem[nameAddr:], append([]byte(path), 0))

	f := NewFile()
	f.DEO(vm, 0xa8, nameAddr, true)
	f.DEO(vm, 0xaa, 5, true) // length
	srcAddr := uint16(0x0400)
	copy(vm.Mem[srcAddr:], []byte("hello"))
	f.DEO(vm, 0xae, srcAddr, true)
	if f.success != 5 {
		t.Fatalf("write success = %d, want 5", f.success)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("file contents = %q, want %q", got, "hello")
	}

	destAddr := uint16(0x0500)
	f.DEO(vm, 0xac, destAddr, true)
	if f.success != 5 {
		t.Fatalf("read success = %d, want 5", f.success)
	}
	if string(vm.Mem[destAddr:destAddr+5]) != "hello" {
		t.Fatalf("read-back memory = %q, want %q", vm.Mem[destAddr:destAddr+5], "hello")
	}
}
