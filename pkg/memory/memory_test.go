package memory_test

import (
	"strings"
	"testing"

	"hacktoolchain.dev/hack/pkg/hack"
	"hacktoolchain.dev/hack/pkg/memory"
)

func TestLoadROMParsesRawInstructions(t *testing.T) {
	data := "0000000000000000\n" +
		"1111111111111111\n" +
		"0101010101010101\n" +
		"1010101010101010\n" +
		"0111111111111111\n"

	rom, err := memory.LoadROM(data)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []hack.Word{0x0000, 0xFFFF, 0b0101010101010101, 0b1010101010101010, 0b0111111111111111}
	for i, w := range want {
		if rom[i] != w {
			t.Errorf("rom[%d] = %016b, want %016b", i, rom[i], w)
		}
	}
}

func TestLoadROMIsZeroPaddedToRomSize(t *testing.T) {
	rom, err := memory.LoadROM("1111111111111111")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rom) != hack.RomSize {
		t.Fatalf("len(rom) = %d, want %d", len(rom), hack.RomSize)
	}
	if rom[0] != 0xFFFF {
		t.Fatalf("rom[0] = %016b, want all ones", rom[0])
	}
	for i, w := range rom[1:] {
		if w != 0 {
			t.Fatalf("rom[%d] = %016b, want zero padding", i+1, w)
		}
	}
}

func TestLoadROMAcceptsTrailingBlankLines(t *testing.T) {
	rom, err := memory.LoadROM("1111000010100101\n\n\n\n")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if rom[0] != 0b1111000010100101 {
		t.Fatalf("rom[0] = %016b", rom[0])
	}
	if len(rom) != hack.RomSize {
		t.Fatalf("len(rom) = %d, want %d", len(rom), hack.RomSize)
	}
}

func TestLoadROMAcceptsInlineComments(t *testing.T) {
	data := "0000000000100000\n" +
		"// JMP\n" +
		"1000000000000111\n"

	rom, err := memory.LoadROM(data)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if rom[0] != 0b0000000000100000 {
		t.Fatalf("rom[0] = %016b", rom[0])
	}
	if rom[1] != 0b1000000000000111 {
		t.Fatalf("rom[1] = %016b, comment line should have been skipped", rom[1])
	}
}

// A ROM of exactly hack.RomSize instructions loads successfully.
func TestLoadROMAcceptsExactCapacity(t *testing.T) {
	data := strings.Repeat("0000000000000000\n", hack.RomSize)

	rom, err := memory.LoadROM(data)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rom) != hack.RomSize {
		t.Fatalf("len(rom) = %d, want %d", len(rom), hack.RomSize)
	}
}

// One more instruction than capacity fails outright.
func TestLoadROMRejectsOneOverCapacity(t *testing.T) {
	data := strings.Repeat("0000000000000000\n", hack.RomSize+1)

	_, err := memory.LoadROM(data)
	if err == nil {
		t.Fatal("expected an error: program exceeds ROM capacity")
	}
	if !strings.Contains(err.Error(), "ROM cannot fit program") {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestLoadROMSkipsLineOfCorrectLengthButNotBinary(t *testing.T) {
	// 16 characters, but not all '0'/'1': skipped exactly like a comment
	// line, rather than treated as a malformed instruction.
	rom, err := memory.LoadROM("000000000000000X\n1111111111111111\n")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if rom[0] != 0xFFFF {
		t.Fatalf("rom[0] = %016b, want the only valid line to land at index 0", rom[0])
	}
}

func TestNewRAMIsZeroedAndFullSize(t *testing.T) {
	ram := memory.NewRAM()
	if len(ram) != hack.RamSize {
		t.Fatalf("len(ram) = %d, want %d", len(ram), hack.RamSize)
	}
	for i, w := range ram {
		if w != 0 {
			t.Fatalf("ram[%d] = %d, want zero", i, w)
		}
	}
}
