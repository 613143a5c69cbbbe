package dustydevil

// Context names the scope currently being evaluated. Contexts chain to the
// one that entered them so runtime errors can print a traceback.
type Context struct {
	DisplayName    string
	Parent         *Context
	ParentEntryPos Position
	Symbols        *SymbolTable
}

func NewContext(displayName string, parent *Context, entry Position) *Context {
	return &Context{
		DisplayName:    displayName,
		Parent:         parent,
		ParentEntryPos: entry,
	}
}

// NewGlobalContext returns the top-level "<program>" context bound to a
// fresh global symbol table. Each run of a program gets its own.
func NewGlobalContext() *Context {
	ctx := NewContext("<program>", nil, Position{})
	ctx.Symbols = NewGlobalSymbolTable()
	return ctx
}
