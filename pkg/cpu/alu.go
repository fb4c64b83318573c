package cpu

import "hacktoolchain.dev/hack/pkg/hack"

// alu computes the C Instruction's 16-bit result from its 6-bit control
// field (c1..c6, interpreted as zx, nx, zy, ny, f, no) and the two ALU
// inputs: x is always D, y is either the A register or RAM[A] depending on
// the instruction's 'a' bit (selected by the caller before this is called).
//
// This is the same { a, c1..c6 } bit layout pkg/hack.CompTable assigns to
// each comp mnemonic during assembly; decoding it here instead of through
// that table keeps the CPU's decoder independent of mnemonic strings; see
// the round-trip invariant in the spec that ties the two together.
func alu(comp hack.Word, x, y hack.Word) (result hack.Word, zero, negative bool) {
	zx := comp&0b100000 != 0
	nx := comp&0b010000 != 0
	zy := comp&0b001000 != 0
	ny := comp&0b000100 != 0
	f := comp&0b000010 != 0
	no := comp&0b000001 != 0

	if zx {
		x = 0
	}
	if nx {
		x = ^x
	}
	if zy {
		y = 0
	}
	if ny {
		y = ^y
	}

	if f {
		result = x + y
	} else {
		result = x & y
	}
	if no {
		result = ^result
	}

	zero = result == 0
	negative = result&0x8000 != 0
	return result, zero, negative
}
