// vm.go - Uxn processor state: memory, stacks, device bridge

package uxn

// Memory is the 64 KiB linear address space shared by program code, data and
// the zero page. Addressing always wraps modulo 2^16 because addresses and
// the program counter are uint16.
type Memory [65536]byte

// Stack is a 256-byte ring buffer with an 8-bit index. idx is the index of
// the top-of-stack byte, not a length: pushing increments idx first (wrapping
// mod 256) then writes, popping reads then decrements. There is no overflow
// trap - growth and shrinkage silently wrap.
type Stack struct {
	data [256]byte
	idx  uint8
}

func (s *Stack) push1(v uint8) {
	s.idx++
	s.data[s.idx] = v
}

func (s *Stack) pop1() uint8 {
	v := s.data[s.idx]
	s.idx--
	return v
}

func (s *Stack) peek1(n uint8) uint8 {
	return s.data[s.idx-n]
}

// push2 stores v big-endian: the high byte lands beneath the new top, the
// low byte is the new top.
func (s *Stack) push2(v uint16) {
	s.push1(uint8(v >> 8))
	s.push1(uint8(v))
}

func (s *Stack) pop2() uint16 {
	lo := s.pop1()
	hi := s.pop1()
	return uint16(hi)<<8 | uint16(lo)
}

func (s *Stack) peek2(n uint8) uint16 {
	lo := s.peek1(n)
	hi := s.peek1(n + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Len reports the stack's index as an unsigned depth, mostly useful for
// tests and device introspection - it is not consulted by any opcode.
func (s *Stack) Len() uint8 { return s.idx }

// Device is the single capability the interpreter calls on DEI*/DEO*. The
// host answers port reads and writes; wide indicates a 2-byte transfer.
// DEO's bool return is reserved for an early-exit signal that is never
// observed today - every device in this module returns true.
type Device interface {
	DEI(vm *VM, port uint8, wide bool) uint16
	DEO(vm *VM, port uint8, value uint16, wide bool) bool
}

// VM is the complete, host-owned processor state. The interpreter never
// allocates or owns this memory; callers construct it, load a program into
// it, and pass it to Run.
type VM struct {
	PC uint16
	WS Stack
	RS Stack
	Mem Memory
	Dev Device

	// opcodeTable holds one handler per opcode byte, keyed by exact value -
	// dispatch is a single array index, never a computed/decoded branch. A
	// handler returns false only for BRK (0x00), the sole terminator.
	opcodeTable [256]func(*VM) bool
}

// New builds a VM with its dispatch table initialized. dev may be nil for
// programs that never execute DEI/DEO (tests, pure-arithmetic fixtures).
func New(dev Device) *VM {
	vm := &VM{Dev: dev}
	vm.initOpcodeTable()
	return vm
}

func (vm *VM) fetch8() uint8 {
	b := vm.Mem[vm.PC]
	vm.PC++
	return b
}

func (vm *VM) fetch16() uint16 {
	hi := vm.fetch8()
	lo := vm.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// active returns the stack operands are read from/written to for the given
// mode, and other returns its complement - the STH/JSR transfer target.
func (vm *VM) active(m mode) *Stack {
	if m.ret {
		return &vm.RS
	}
	return &vm.WS
}

func (vm *VM) other(m mode) *Stack {
	if m.ret {
		return &vm.WS
	}
	return &vm.RS
}

// Run executes opcodes starting at pc until BRK (0x00) is reached, then
// returns the PC one past the BRK byte. No other opcode exits Run. A device
// reached via DEI/DEO may call Run again on the same VM; each nested call is
// its own independent BRK lifetime.
func Run(vm *VM, pc uint16) uint16 {
	vm.PC = pc
	for {
		op := vm.fetch8()
		if !vm.opcodeTable[op](vm) {
			return vm.PC
		}
	}
}
