package calc

import (
	"log/slog"
	"strings"
)

// Span is a half-open byte range [Start, End) of canonical expression text.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

const none = -1

type kind uint8

const (
	kindOperand kind = iota
	kindOperator
	kindOpen
	kindClose
	kindNegate
)

type node struct {
	value Scalar
	span  Span
	prev  int
	next  int
	kind  kind
	op    Operator
}

// buffer is the working form of an expression under evaluation: an arena of
// nodes linked by index. Reductions unlink nodes and never move them, so
// node indices stay valid for the lifetime of the buffer.
type buffer struct {
	text  string
	nodes []node
	head  int
	mode  Mode
}

// tokenize splits validated text into nodes.
//
// A minus is a sign when it starts the text or follows an operator or an
// opening parenthesis. A signed literal becomes one operand node; a sign in
// front of a parenthesis becomes a negate node.
func tokenize(x Expression) (*buffer, error) {
	b := &buffer{
		text:  x.Text,
		nodes: make([]node, 0, len(x.Text)),
		head:  none,
		mode:  x.Mode,
	}

	for i := 0; i < len(b.text); {
		c := b.text[i]

		switch {
		case isNumeric(c) || (c == '-' && b.signPosition()):
			if c == '-' && i+1 < len(b.text) && b.text[i+1] == '(' {
				b.push(node{kind: kindNegate, span: Span{i, i + 1}})
				i++

				continue
			}

			value, span, err := scanOperand(b.text, i, b.mode)
			if err != nil {
				return nil, err
			}

			b.push(node{kind: kindOperand, value: value, span: span})
			i = span.End

		case isOperator(c):
			b.push(node{kind: kindOperator, op: Operator(c), span: Span{i, i + 1}})
			i++

		case c == '(':
			b.push(node{kind: kindOpen, span: Span{i, i + 1}})
			i++

		case c == ')':
			b.push(node{kind: kindClose, span: Span{i, i + 1}})
			i++

		default:
			return nil, ErrInternal.At(i).With(slog.String("char", string(rune(c))))
		}
	}

	if b.head == none {
		return nil, ErrEmptyExpression
	}

	return b, nil
}

// signPosition reports whether a minus pushed next would be a sign.
func (b *buffer) signPosition() bool {
	n := len(b.nodes)
	if n == 0 {
		return true
	}

	k := b.nodes[n-1].kind

	return k == kindOperator || k == kindOpen
}

func (b *buffer) push(n node) {
	i := len(b.nodes)
	n.prev, n.next = none, none

	if i > 0 {
		n.prev = i - 1
		b.nodes[i-1].next = i
	} else {
		b.head = i
	}

	b.nodes = append(b.nodes, n)
}

// unlink removes node i from the list. The node stays in the arena.
func (b *buffer) unlink(i int) {
	p, n := b.nodes[i].prev, b.nodes[i].next

	if p != none {
		b.nodes[p].next = n
	} else {
		b.head = n
	}

	if n != none {
		b.nodes[n].prev = p
	}

	b.nodes[i].prev, b.nodes[i].next = none, none
}

// len returns the number of linked nodes.
func (b *buffer) len() int {
	n := 0
	for i := b.head; i != none; i = b.nodes[i].next {
		n++
	}

	return n
}

// String renders the linked nodes as expression text.
func (b *buffer) String() string {
	var sb strings.Builder

	for i := b.head; i != none; i = b.nodes[i].next {
		switch n := b.nodes[i]; n.kind {
		case kindOperand:
			sb.WriteString(n.value.String())
		case kindOperator:
			sb.WriteByte(byte(n.op))
		case kindOpen:
			sb.WriteByte('(')
		case kindClose:
			sb.WriteByte(')')
		case kindNegate:
			sb.WriteByte('-')
		}
	}

	return sb.String()
}

// LogValue implements [slog.LogValuer] so the buffer is rendered only when
// a record is actually written.
func (b *buffer) LogValue() slog.Value { return slog.StringValue(b.String()) }
