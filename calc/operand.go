package calc

import (
	"errors"
	"log/slog"
	"strconv"
)

// scanOperand reads the literal at text[start:], which is an optional minus
// followed by digits with at most one radix point, and parses it in mode.
func scanOperand(text string, start int, mode Mode) (Scalar, Span, error) {
	end := start
	if end < len(text) && text[end] == '-' {
		end++
	}

	digits, radix := 0, 0

	for ; end < len(text) && isNumeric(text[end]); end++ {
		if text[end] == '.' {
			radix++
		} else {
			digits++
		}
	}

	span := Span{start, end}
	lit := text[start:end]

	switch {
	case digits == 0:
		return Scalar{}, span, ErrInternal.At(start).
			With(slog.String("literal", lit))
	case radix > 1:
		return Scalar{}, span, ErrBadRadixPoint.At(start)
	}

	if mode == ModeInteger {
		if radix > 0 {
			return Scalar{}, span, ErrBadRadixPoint.At(start)
		}

		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Scalar{}, span, parseError(err, start, lit)
		}

		return Int(v), span, nil
	}

	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Scalar{}, span, parseError(err, start, lit)
	}

	return Float(v), span, nil
}

func parseError(err error, offset int, lit string) error {
	base := ErrInternal
	if errors.Is(err, strconv.ErrRange) {
		base = ErrNumberOutOfRange
	}

	return base.At(offset).With(slog.String("literal", lit))
}

// operands returns the operand nodes on either side of operator node op.
func (b *buffer) operands(op int) (left, right int, err error) {
	left, right = b.nodes[op].prev, b.nodes[op].next

	if left == none || b.nodes[left].kind != kindOperand ||
		right == none || b.nodes[right].kind != kindOperand {
		return none, none, ErrInternal.At(b.nodes[op].span.Start).
			With(slog.String("op", b.nodes[op].op.String()))
	}

	return left, right, nil
}
