package dustydevil

type PrecedenceType int

const (
	PRECEDENCE_NONE    PrecedenceType = iota
	PRECEDENCE_SUM     PrecedenceType = iota
	PRECEDENCE_PRODUCT PrecedenceType = iota
	PRECEDENCE_PREFIX  PrecedenceType = iota
	PRECEDENCE_PRIMARY PrecedenceType = iota
)

// infixPrecedence is PRECEDENCE_NONE for anything that is not a binary
// operator, which is what ends the operator loops in expr and term.
func infixPrecedence(k TokenKind) PrecedenceType {
	switch k {
	case PLUS, MINUS:
		return PRECEDENCE_SUM
	case MUL, DIV:
		return PRECEDENCE_PRODUCT
	}
	return PRECEDENCE_NONE
}

func nodePrecedence(n Node) PrecedenceType {
	switch n := n.(type) {
	case *BinaryOp:
		return infixPrecedence(n.Op.Kind)
	case *UnaryOp:
		return PRECEDENCE_PREFIX
	}
	return PRECEDENCE_PRIMARY
}
