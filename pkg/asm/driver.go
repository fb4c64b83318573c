package asm

import (
	"fmt"
	"strconv"
	"strings"

	"hacktoolchain.dev/hack/pkg/hack"
)

// ----------------------------------------------------------------------------
// Assembler driver

// firstVariableAddress is where auto-allocated variables start; addresses
// below it are reserved for the predefined symbols and whatever labels/
// literal addresses the program itself references.
const firstVariableAddress hack.Word = 16

// Assemble runs the full two-pass assembly of 'source' and returns the
// newline-terminated binary text, one 16-character line per non-label,
// non-comment, non-blank source line, in source order.
func Assemble(source string) (string, error) {
	parser := NewParser(source)
	table := hack.NewSymbolTable()

	resolveLabels(parser, table)
	parser.Reset()
	return emit(parser, table)
}

// resolveLabels is pass 1: walk the source once, recording every label's
// instruction index. Labels do not occupy an instruction slot, so only A
// and C commands advance the counter.
func resolveLabels(parser *Parser, table *hack.SymbolTable) {
	var instruction hack.Word

	for parser.HasMoreCommands() {
		parser.Advance()
		if parser.CommandType() == L {
			table.Define(parser.Symbol(), instruction)
			continue
		}
		instruction++
	}
}

// emit is pass 2: walk the source again, resolving every A Instruction's
// symbol (allocating a variable starting at firstVariableAddress on first
// use) and bit-packing every C Instruction, in source order.
func emit(parser *Parser, table *hack.SymbolTable) (string, error) {
	var out strings.Builder
	nextVariable := firstVariableAddress

	for parser.HasMoreCommands() {
		parser.Advance()

		switch parser.CommandType() {
		case L:
			continue

		case A:
			address, err := resolveAddress(parser.Symbol(), table, &nextVariable)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&out, "%016b\n", address)

		case C:
			word, err := encodeC(parser)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&out, "%016b\n", word)
		}
	}

	return out.String(), nil
}

// resolveAddress resolves an A Instruction's symbol to its 15-bit address,
// allocating a new variable starting at firstVariableAddress on first use.
// An A Instruction's high bit is always the opcode bit (clear), so any
// resolved address at or above hack.MaxAddressableMemory is out of bounds
// and cannot be emitted.
func resolveAddress(symbol string, table *hack.SymbolTable, nextVariable *hack.Word) (hack.Word, error) {
	address := rawAddress(symbol, table, nextVariable)
	if address >= hack.MaxAddressableMemory {
		return 0, fmt.Errorf("address %q resolved to an out-of-bounds location: %d", symbol, address)
	}
	return address, nil
}

func rawAddress(symbol string, table *hack.SymbolTable, nextVariable *hack.Word) hack.Word {
	if n, err := strconv.ParseUint(symbol, 10, 16); err == nil {
		return hack.Word(n)
	}

	if address, found := table.Lookup(symbol); found {
		return address
	}

	address := *nextVariable
	table.Define(symbol, address)
	*nextVariable++
	return address
}

func encodeC(parser *Parser) (hack.Word, error) {
	comp, err := hack.Comp(parser.Comp())
	if err != nil {
		return 0, err
	}

	word := hack.Word(0b111<<13) | comp<<6 | hack.Dest(parser.Dest())<<3 | hack.Jump(parser.Jump())
	return word, nil
}
