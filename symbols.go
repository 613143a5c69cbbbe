package dustydevil

// SymbolTable binds variable names to values. A lookup that misses locally
// is retried in Parent; Set only ever writes to the receiver.
type SymbolTable struct {
	symbols map[string]Number
	Parent  *SymbolTable
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]Number),
		Parent:  parent,
	}
}

// NewGlobalSymbolTable returns a parentless table with the built-in null
// binding.
func NewGlobalSymbolTable() *SymbolTable {
	st := NewSymbolTable(nil)
	st.Set("null", IntNumber(0))
	return st
}

func (st *SymbolTable) Get(name string) (Number, bool) {
	for t := st; t != nil; t = t.Parent {
		if v, ok := t.symbols[name]; ok {
			return v, true
		}
	}
	return Number{}, false
}

func (st *SymbolTable) Set(name string, value Number) {
	st.symbols[name] = value
}

func (st *SymbolTable) Remove(name string) {
	delete(st.symbols, name)
}

// Len reports the number of local bindings.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}
