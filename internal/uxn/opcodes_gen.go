// opcodes_gen.go - 256-entry opcode dispatch table
//
// Generated from the base-operation listing in opcodes.go: the low 5 bits
// of an opcode byte select one of 32 base operations, bit 5 is the short
// flag, bit 6 is the return-stack flag, bit 7 is the keep flag. Base
// operation 0 (BRK) only exists at byte 0x00 - the other seven bytes whose
// low 5 bits are zero are claimed by the eight immediate opcodes instead.

package uxn

// baseOps indexes the 32 base operations by their low-5-bit value. Index 0
// is unused - BRK and the seven immediate opcodes that share its column are
// wired directly in initOpcodeTable.
var baseOps = [32]func(*VM, mode) bool{
	nil, // 0: BRK / immediates
	opINC, opPOP, opNIP, opSWP, opROT, opDUP, opOVR,
	opEQU, opNEQ, opGTH, opLTH,
	opJMP, opJCN, opJSR, opSTH,
	opLDZ, opSTZ, opLDR, opSTR, opLDA, opSTA,
	opDEI, opDEO,
	opADD, opSUB, opMUL, opDIV, opAND, opORA, opEOR, opSFT,
}

func opBRK(vm *VM, m mode) bool { return false }

func opJCI(vm *VM, m mode) bool {
	cond := vm.WS.pop1()
	off := vm.fetch16()
	if cond != 0 {
		vm.PC += off
	}
	return true
}

func opJMI(vm *VM, m mode) bool {
	off := vm.fetch16()
	vm.PC += off
	return true
}

func opJSI(vm *VM, m mode) bool {
	off := vm.fetch16()
	vm.RS.push2(vm.PC)
	vm.PC += off
	return true
}

// opLIT covers LIT, LIT2, LITr and LIT2r: short and ret are taken straight
// from the immediate opcode's own byte, the same way they would be for any
// other opcode in the 0x80/0xA0/0xC0/0xE0 rows.
func opLIT(vm *VM, m mode) bool {
	dst := &vm.WS
	if m.ret {
		dst = &vm.RS
	}
	if m.short {
		dst.push2(vm.fetch16())
	} else {
		dst.push1(vm.fetch8())
	}
	return true
}

func (vm *VM) initOpcodeTable() {
	for b := 0; b < 256; b++ {
		op := uint8(b)
		baseIdx := op & 0x1f
		m := mode{
			short: op&0x20 != 0,
			ret:   op&0x40 != 0,
			keep:  op&0x80 != 0,
		}

		if baseIdx == 0 {
			switch op {
			case 0x00:
				vm.opcodeTable[op] = bindMode(opBRK, m)
			case 0x20:
				vm.opcodeTable[op] = bindMode(opJCI, m)
			case 0x40:
				vm.opcodeTable[op] = bindMode(opJMI, m)
			case 0x60:
				vm.opcodeTable[op] = bindMode(opJSI, m)
			case 0x80, 0xa0, 0xc0, 0xe0:
				vm.opcodeTable[op] = bindMode(opLIT, m)
			default:
				panic("uxn: unreachable opcode slot")
			}
			continue
		}

		vm.opcodeTable[op] = bindMode(baseOps[baseIdx], m)
	}
}

func bindMode(fn func(*VM, mode) bool, m mode) func(*VM) bool {
	return func(vm *VM) bool { return fn(vm, m) }
}
