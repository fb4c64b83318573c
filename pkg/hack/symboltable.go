package hack

// ----------------------------------------------------------------------------
// Symbol table

// PredefinedTable holds the 23 symbols the Hack spec guarantees resolve
// without any declaration in source: the virtual-machine segment pointers,
// the 16 general purpose registers and the two memory-mapped I/O locations.
var PredefinedTable = map[string]Word{
	// Virtual Machine specific aliases (see project 7)
	"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
	// Named general purpose registers
	"R0": 0, "R1": 1, "R2": 2, "R3": 3, "R4": 4, "R5": 5,
	"R6": 6, "R7": 7, "R8": 8, "R9": 9, "R10": 10, "R11": 11,
	"R12": 12, "R13": 13, "R14": 14, "R15": 15,
	// Memory mapped I/O locations
	"SCREEN": ScreenAddr, "KBD": KbdAddr,
}

// SymbolTable maps a label/variable name to its 16-bit address. It is seeded
// with the predefined symbols above and grows during assembly with
// user-defined labels (pass 1) and variables (pass 2).
//
// Addresses come from three disjoint populations (predefined, labels,
// variables) sharing one map; a lookup returns the first hit in the order
// predefined -> label/variable, since predefined entries are copied in at
// construction time and labels/variables are only ever inserted afterwards.
type SymbolTable struct {
	entries map[string]Word
}

// NewSymbolTable returns a table pre-populated with the predefined symbols.
func NewSymbolTable() *SymbolTable {
	entries := make(map[string]Word, len(PredefinedTable))
	for name, addr := range PredefinedTable {
		entries[name] = addr
	}
	return &SymbolTable{entries: entries}
}

// Contains reports whether 'name' has a known address yet.
func (st *SymbolTable) Contains(name string) bool {
	_, found := st.entries[name]
	return found
}

// Lookup returns the address bound to 'name', if any.
func (st *SymbolTable) Lookup(name string) (Word, bool) {
	addr, found := st.entries[name]
	return addr, found
}

// Define binds 'name' to 'addr'. Duplicate labels overwrite: the source
// grammar does not forbid redefining a label, and the last definition wins.
// Predefined symbols are never rebound, so they always resolve to their
// fixed addresses.
func (st *SymbolTable) Define(name string, addr Word) {
	if _, predefined := PredefinedTable[name]; predefined {
		return
	}
	st.entries[name] = addr
}
