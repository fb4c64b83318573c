package hack_test

import (
	"fmt"
	"testing"

	"hacktoolchain.dev/hack/pkg/hack"
)

func TestComp(t *testing.T) {
	test := func(mnemonic string, expected hack.Word, fail bool) {
		got, err := hack.Comp(mnemonic)
		if err != nil && !fail {
			t.Fatalf("Comp(%q): unexpected error: %s", mnemonic, err)
		}
		if err == nil && fail {
			t.Fatalf("Comp(%q): expected an error", mnemonic)
		}
		if err == nil && got != expected {
			t.Fatalf("Comp(%q) = %07b, want %07b", mnemonic, got, expected)
		}
	}

	t.Run("constants and identities", func(t *testing.T) {
		test("0", 0b0101010, false)
		test("1", 0b0111111, false)
		test("-1", 0b0111010, false)
		test("D", 0b0001100, false)
		test("A", 0b0110000, false)
		test("M", 0b1110000, false)
	})

	t.Run("commutative aliases canonicalize", func(t *testing.T) {
		test("A+D", 0b0000010, false)
		test("D+A", 0b0000010, false)
		test("A&D", 0b0000000, false)
		test("M|D", 0b1010101, false)
		test("D|M", 0b1010101, false)
	})

	t.Run("unknown mnemonics fail", func(t *testing.T) {
		test("X+Y", 0, true)
		test("", 0, true)
		test("D+D", 0, true)
	})
}

func TestDest(t *testing.T) {
	cases := map[string]hack.Word{
		"":    0b000,
		"M":   0b001,
		"D":   0b010,
		"A":   0b100,
		"MD":  0b011,
		"AM":  0b101,
		"AD":  0b110,
		"AMD": 0b111,
	}
	for mnemonic, expected := range cases {
		if got := hack.Dest(mnemonic); got != expected {
			t.Errorf("Dest(%q) = %03b, want %03b", mnemonic, got, expected)
		}
	}
}

func TestJump(t *testing.T) {
	cases := map[string]hack.Word{
		"":    0b000,
		"JGT": 0b001,
		"JEQ": 0b010,
		"JGE": 0b011,
		"JLT": 0b100,
		"JNE": 0b101,
		"JLE": 0b110,
		"JMP": 0b111,
	}
	for mnemonic, expected := range cases {
		if got := hack.Jump(mnemonic); got != expected {
			t.Errorf("Jump(%q) = %03b, want %03b", mnemonic, got, expected)
		}
	}

	t.Run("mnemonic with none of L/E/G and not JMP/JNE", func(t *testing.T) {
		if got := hack.Jump("XYZ"); got != 0b000 {
			t.Errorf("Jump(XYZ) = %03b, want 000", got)
		}
	})
}

func TestPredefinedSymbols(t *testing.T) {
	table := hack.NewSymbolTable()

	for name, expected := range map[string]hack.Word{
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"R0": 0, "R15": 15, "SCREEN": 16384, "KBD": 24576,
	} {
		addr, found := table.Lookup(name)
		if !found {
			t.Fatalf("predefined symbol %s not found", name)
		}
		if addr != expected {
			t.Errorf("%s = %d, want %d", name, addr, expected)
		}
	}
}

func TestSymbolTableDefineOverwrites(t *testing.T) {
	table := hack.NewSymbolTable()
	table.Define("LOOP", 10)
	table.Define("LOOP", 20)

	addr, found := table.Lookup("LOOP")
	if !found || addr != 20 {
		t.Fatalf("expected last-wins redefinition, got %d found=%v", addr, found)
	}
}

func ExampleDest() {
	fmt.Println(hack.Dest("AMD"))
	// Output: 7
}
