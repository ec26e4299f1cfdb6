package uxn

import "testing"

func newProgram(t *testing.T, bytes ...byte) *VM {
	t.Helper()
	vm := New(nil)
	copy(vm.Mem[0x100:], bytes)
	return vm
}

func TestLitAdd(t *testing.T) {
	vm := newProgram(t, 0x80, 0x2A, 0x80, 0x02, 0x18, 0x00)
	pc := Run(vm, 0x100)
	if pc != 0x0106 {
		t.Fatalf("pc = %#x, want 0x0106", pc)
	}
	if vm.WS.idx != 1 || vm.WS.data[1] != 0x2C {
		t.Fatalf("W top = %#x at idx %d, want 0x2C at idx 1", vm.WS.data[vm.WS.idx], vm.WS.idx)
	}
}

func TestLit2Add2(t *testing.T) {
	vm := newProgram(t, 0xA0, 0x00, 0x05, 0xA0, 0x00, 0x03, 0x38, 0x00)
	startIdx := vm.WS.idx
	Run(vm, 0x100)
	if vm.WS.idx != startIdx+2 {
		t.Fatalf("W.idx advanced by %d, want 2", vm.WS.idx-startIdx)
	}
	if got := vm.WS.peek2(0); got != 0x0008 {
		t.Fatalf("top short = %#x, want 0x0008", got)
	}
}

func TestDivByZero(t *testing.T) {
	vm := newProgram(t, 0x80, 0x01, 0x80, 0x00, 0x1B, 0x00) // LIT 01 LIT 00 DIV BRK
	Run(vm, 0x100)
	if got := vm.WS.peek1(0); got != 0 {
		t.Fatalf("DIV by zero = %#x, want 0", got)
	}
}

func TestIncWraps(t *testing.T) {
	vm := newProgram(t, 0x80, 0xFF, 0x01, 0x00)
	Run(vm, 0x100)
	if got := vm.WS.peek1(0); got != 0x00 {
		t.Fatalf("INC wrap = %#x, want 0x00", got)
	}
}

func TestJcnTakenOnNonZeroCond(t *testing.T) {
	vm := newProgram(t, 0x80, 0x05, 0x80, 0x03, 0x0D, 0x02, 0x00)
	pc := Run(vm, 0x100)
	if pc != 0x0109 {
		t.Fatalf("pc = %#x, want 0x0109", pc)
	}
}

func TestJsiPushesReturnAddrAndJumps(t *testing.T) {
	vm := newProgram(t, 0x60, 0x00, 0x02, 0x00, 0x00)
	pc := Run(vm, 0x100)
	if pc != 0x0106 {
		t.Fatalf("pc = %#x, want 0x0106", pc)
	}
	if vm.RS.peek2(0) != 0x0103 {
		t.Fatalf("R top short = %#x, want 0x0103", vm.RS.peek2(0))
	}
}

// DUPk followed by POP must leave the stack exactly as DUP alone would.
func TestKeepDupIdempotence(t *testing.T) {
	dup := newProgram(t, 0x80, 0x11, 0x06, 0x00)     // LIT 11 DUP BRK
	dupkPop := newProgram(t, 0x80, 0x11, 0x86, 0x02, 0x00) // LIT 11 DUPk POP BRK
	Run(dup, 0x100)
	Run(dupkPop, 0x100)
	if dup.WS.idx != dupkPop.WS.idx {
		t.Fatalf("idx mismatch: dup=%d dupk;pop=%d", dup.WS.idx, dupkPop.WS.idx)
	}
	if dup.WS.peek1(0) != dupkPop.WS.peek1(0) {
		t.Fatalf("top mismatch: dup=%#x dupk;pop=%#x", dup.WS.peek1(0), dupkPop.WS.peek1(0))
	}
}

// STH2 then STH2r round-trips a short back onto the working stack.
func TestStackTransferRoundTrip(t *testing.T) {
	vm := newProgram(t, 0xA0, 0x12, 0x34, 0x2F, 0x6F, 0x00) // LIT2 1234 STH2 STH2r BRK
	startIdx := vm.WS.idx
	Run(vm, 0x100)
	if vm.WS.idx != startIdx+2 {
		t.Fatalf("W.idx = %d, want %d", vm.WS.idx, startIdx+2)
	}
	if got := vm.WS.peek2(0); got != 0x1234 {
		t.Fatalf("round-tripped short = %#x, want 0x1234", got)
	}
}

// Pushing 256 bytes must return the stack index to its start, since the
// 8-bit index wraps mod 256.
func TestWrapAfter256Pushes(t *testing.T) {
	vm := New(nil)
	for i := 0; i < 256; i++ {
		vm.WS.push1(uint8(i))
	}
	if vm.WS.idx != 0 {
		t.Fatalf("idx after 256 pushes = %d, want 0", vm.WS.idx)
	}
}

func TestKeepLeavesOperandsAndPushesResult(t *testing.T) {
	// LIT 02 LIT 03 ADDk BRK: ADDk must leave 02 03 on the stack and push 05.
	vm := newProgram(t, 0x80, 0x02, 0x80, 0x03, 0x98, 0x00)
	Run(vm, 0x100)
	if vm.WS.idx != 3 {
		t.Fatalf("idx = %d, want 3", vm.WS.idx)
	}
	if vm.WS.data[1] != 2 || vm.WS.data[2] != 3 || vm.WS.data[3] != 5 {
		t.Fatalf("stack = %v, want [_, 2, 3, 5]", vm.WS.data[:4])
	}
}

func TestEveryStepKeepsIndicesAndPCInRange(t *testing.T) {
	vm := New(nil)
	// A short program that touches a wide variety of opcodes repeatedly.
	prog := []byte{
		0x80, 0x01, 0x80, 0x02, 0x18, 0x06, 0x02, 0x00, // LIT LIT ADD DUP POP
	}
	copy(vm.Mem[0x100:], prog)
	for i := 0; i < 1000; i++ {
		vm.PC = 0x100
		Run(vm, 0x100)
		if vm.WS.idx > 255 {
			t.Fatalf("W.idx out of range: %d", vm.WS.idx)
		}
	}
}

func TestSignedRelativeJmp(t *testing.T) {
	// LIT 03 JMP BRK: JMP's operand comes off the stack, not an immediate
	// byte, so it adds 3 to the PC just past the JMP opcode and lands on
	// the BRK at 0x106.
	vm := newProgram(t, 0x80, 0x03, 0x0C, 0x00, 0x00, 0x00)
	pc := Run(vm, 0x100)
	if pc != 0x0107 {
		t.Fatalf("pc = %#x, want 0x0107", pc)
	}
}

func TestDeiDeoDeviceRoundTrip(t *testing.T) {
	dev := &fakeDevice{}
	vm := New(dev)
	// LIT 2A LIT 07 DEO BRK : write 0x2A to port 0x07
	copy(vm.Mem[0x100:], []byte{0x80, 0x2A, 0x80, 0x07, 0x17, 0x00})
	Run(vm, 0x100)
	if dev.lastPort != 0x07 || dev.lastValue != 0x2A {
		t.Fatalf("device saw port=%#x value=%#x, want port=0x07 value=0x2A", dev.lastPort, dev.lastValue)
	}

	// LIT 09 DEI BRK : read back whatever the device answers for port 0x09
	dev.deiValue = 0x55
	vm2 := New(dev)
	copy(vm2.Mem[0x100:], []byte{0x80, 0x09, 0x16, 0x00})
	Run(vm2, 0x100)
	if vm2.WS.peek1(0) != 0x55 {
		t.Fatalf("DEI result = %#x, want 0x55", vm2.WS.peek1(0))
	}
}

type fakeDevice struct {
	lastPort  uint8
	lastValue uint16
	deiValue  uint16
}

func (f *fakeDevice) DEI(vm *VM, port uint8, wide bool) uint16 {
	return f.deiValue
}

func (f *fakeDevice) DEO(vm *VM, port uint8, value uint16, wide bool) bool {
	f.lastPort = port
	f.lastValue = value
	return true
}
