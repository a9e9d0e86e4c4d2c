package calc

// Operator is a binary arithmetic operator symbol.
type Operator byte

const (
	OpPow Operator = '^'
	OpMul Operator = 'x'
	OpAst Operator = '*'
	OpDiv Operator = '/'
	OpAdd Operator = '+'
	OpSub Operator = '-'
)

func (op Operator) String() string {
	if op == 0 {
		return ""
	}

	return string(rune(op))
}

// MarshalText implements [encoding.TextMarshaler].
func (op Operator) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// tiers lists operator precedence levels from highest to lowest.
var tiers = [...][]Operator{
	{OpPow},
	{OpMul, OpAst, OpDiv},
	{OpAdd, OpSub},
}

func isOperator(c byte) bool {
	switch Operator(c) {
	case OpPow, OpMul, OpAst, OpDiv, OpAdd, OpSub:
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isNumeric reports whether c can appear inside an unsigned literal.
func isNumeric(c byte) bool { return isDigit(c) || c == '.' }
