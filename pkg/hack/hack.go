// Package hack implements the data model and the encoding rules shared by
// the assembler and the CPU: the 16-bit Word, the predefined/variable
// Symbol Table, and the lookup tables that translate between the symbolic
// dest/comp/jump mnemonics and their bit-packed counterparts.
package hack

// ----------------------------------------------------------------------------
// General information

// A Word is the basic unit of storage and computation on the Hack platform:
// every register and every memory cell holds one. Signed interpretation is
// two's-complement.
type Word = uint16

// Canonical sizes from the Hack architecture spec. ROM_SIZE bounds the
// number of instructions a program may contain, RAM_SIZE is the addressable
// data space including the memory-mapped screen and keyboard.
const (
	RomSize    = 32768
	RamSize    = 24577
	ScreenAddr = 0x4000 // first word of the memory mapped screen buffer (256 rows * 32 words/row)
	KbdAddr    = 0x6000 // memory mapped keyboard register
)

// MaxAddressableMemory is the upper bound (exclusive) for an A Instruction's
// 15-bit immediate: addresses are always 15 bits wide, the 16th bit of the
// word is the opcode bit that marks it as an A Instruction.
const MaxAddressableMemory Word = 1 << 15
