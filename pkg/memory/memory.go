// Package memory implements the Hack platform's two memory spaces: ROM
// (load-once, read-only, fixed capacity) and RAM (word-addressable,
// mutable, owned exclusively by the CPU instance that holds it).
package memory

import (
	"fmt"
	"strconv"
	"strings"

	"hacktoolchain.dev/hack/pkg/hack"
)

// ROM holds a program's instructions. It is always exactly hack.RomSize
// words long: LoadROM zero-pads the tail, and nothing past construction
// time is allowed to mutate it, so a fetch past the loaded program simply
// reads zero (the A Instruction '@0') instead of panicking.
type ROM []hack.Word

// NewRAM returns a freshly zeroed RAM of hack.RamSize words.
func NewRAM() []hack.Word {
	return make([]hack.Word, hack.RamSize)
}

// LoadROM parses a text buffer of newline separated 16-character binary
// instructions into a ROM. Trailing whitespace is trimmed; only lines whose
// 16 characters are all '0'/'1' are accepted, so inline "// comment" lines
// and other stray text are silently skipped. If the accepted line count
// exceeds hack.RomSize the load fails; otherwise the result is zero-padded
// out to hack.RomSize.
func LoadROM(source string) (ROM, error) {
	lines := strings.Split(strings.TrimRight(source, " \t\r\n"), "\n")

	instructions := make([]hack.Word, 0, len(lines))
	for _, line := range lines {
		if !isBinaryLine(line) {
			continue
		}
		word, err := strconv.ParseUint(line, 2, 16)
		if err != nil {
			return nil, fmt.Errorf("malformed instruction line %q: %s", line, err)
		}
		instructions = append(instructions, hack.Word(word))
	}

	if len(instructions) > hack.RomSize {
		return nil, fmt.Errorf("ROM cannot fit program: %d is the maximum instruction count", hack.RomSize)
	}

	rom := make(ROM, hack.RomSize)
	copy(rom, instructions)
	return rom, nil
}

func isBinaryLine(line string) bool {
	if len(line) != 16 {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '0' && line[i] != '1' {
			return false
		}
	}
	return true
}
