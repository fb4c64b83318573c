package hack

// ----------------------------------------------------------------------------
// Instruction decoder

// Instruction is a decoded 16-bit Word. It is a thin wrapper (the raw word
// plus accessor methods that mask bitfields) rather than a deep type
// hierarchy: the Hack instruction set is small enough that a tagged variant
// with accessors is all the CPU decoder needs.
type Instruction Word

// IsC reports whether the instruction's high bit is set, i.e. whether it is
// a C Instruction. A clear high bit marks an A Instruction.
func (i Instruction) IsC() bool {
	return i&(1<<15) != 0
}

// Address returns the 15-bit immediate of an A Instruction. Calling it on a
// C Instruction is meaningless; callers must check IsC first.
func (i Instruction) Address() Word {
	return Word(i) &^ (1 << 15)
}

// UsesMemory reports the C Instruction's 'a' bit: when set, the ALU's 'y'
// operand is RAM[A] (the conventional 'M') instead of the A register.
func (i Instruction) UsesMemory() bool {
	return i&(1<<12) != 0
}

// CompBits returns the 6-bit ALU control field (c1..c6, bits 11-6) selecting
// zx, nx, zy, ny, f and no.
func (i Instruction) CompBits() Word {
	return (Word(i) >> 6) & 0b111111
}

// DestBits returns the 3 write-enable bits (d1 d2 d3, bits 5-3) for A, D and
// M respectively.
func (i Instruction) DestBits() Word {
	return (Word(i) >> 3) & 0b111
}

// JumpBits returns the 3 jump condition bits (j1 j2 j3, bits 2-0), tested
// against negative/zero/positive on the ALU result.
func (i Instruction) JumpBits() Word {
	return Word(i) & 0b111
}
