// Package cpu implements the Hack computer's fetch/decode/execute cycle:
// registers, ALU operation selection, destination writeback and
// conditional jump evaluation over the instruction set pkg/hack decodes.
package cpu

import (
	"fmt"

	"hacktoolchain.dev/hack/pkg/hack"
	"hacktoolchain.dev/hack/pkg/memory"
)

// Cpu holds the three Hack registers plus the ROM/RAM it fetches and
// operates on. ROM is immutable after load; RAM persists for the life of
// the Cpu and is only ever mutated by an explicit Set or a C Instruction's
// writeback.
type Cpu struct {
	PC hack.Word
	A  hack.Word
	D  hack.Word

	RAM []hack.Word
	ROM memory.ROM
}

// New returns a Cpu with PC, A and D zeroed, a freshly zeroed RAM, and the
// given ROM wired in as the program to execute.
func New(rom memory.ROM) *Cpu {
	return &Cpu{RAM: memory.NewRAM(), ROM: rom}
}

// Step fetches ROM[PC], decodes it, executes it, and advances PC. Every
// defined instruction form produces a result; the only fatal condition is
// an out-of-bounds ROM fetch or RAM access, which is a programmer error and
// halts with a diagnostic rather than silently wrapping.
func (c *Cpu) Step() error {
	if int(c.PC) >= len(c.ROM) {
		return fmt.Errorf("fetch out of bounds: PC=%d exceeds ROM size %d", c.PC, len(c.ROM))
	}

	instruction := hack.Instruction(c.ROM[c.PC])
	if !instruction.IsC() {
		c.A = instruction.Address()
		c.PC++
		return nil
	}

	return c.executeC(instruction)
}

func (c *Cpu) executeC(instruction hack.Instruction) error {
	y := c.A
	if instruction.UsesMemory() {
		if int(c.A) >= len(c.RAM) {
			return fmt.Errorf("RAM read out of bounds: A=%d exceeds RAM size %d", c.A, len(c.RAM))
		}
		y = c.RAM[c.A]
	}

	result, zero, negative := alu(instruction.CompBits(), c.D, y)

	dest := instruction.DestBits()
	addressBeforeWriteback := c.A
	if dest&0b100 != 0 { // d1: A
		c.A = result
	}
	if dest&0b010 != 0 { // d2: D
		c.D = result
	}
	if dest&0b001 != 0 { // d3: M
		if int(addressBeforeWriteback) >= len(c.RAM) {
			return fmt.Errorf("RAM write out of bounds: A=%d exceeds RAM size %d", addressBeforeWriteback, len(c.RAM))
		}
		c.RAM[addressBeforeWriteback] = result
	}

	if jumps(instruction.JumpBits(), zero, negative) {
		c.PC = c.A
	} else {
		c.PC++
	}
	return nil
}

// jumps evaluates the jump condition (j1 j2 j3) against the ALU flags.
func jumps(bits hack.Word, zero, negative bool) bool {
	switch bits {
	case 0b000:
		return false
	case 0b001: // JGT
		return !zero && !negative
	case 0b010: // JEQ
		return zero
	case 0b011: // JGE
		return !negative
	case 0b100: // JLT
		return negative
	case 0b101: // JNE
		return !zero
	case 0b110: // JLE
		return negative || zero
	default: // 0b111, JMP
		return true
	}
}
