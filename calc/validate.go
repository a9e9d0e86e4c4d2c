package calc

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Expression is validated, canonical expression text.
type Expression struct {
	// Text has whitespace removed and implicit multiplication made explicit.
	Text string
	// Mode is the arithmetic used to evaluate Text.
	Mode Mode
}

func (x Expression) String() string { return x.Text }

// Validate checks the grammar of input and returns its canonical form.
//
// Input whose first non-space character is Q or q is an exit request and
// yields [ErrExit]. Syntax errors are reported as [*Error] values positioned
// at the offending byte of the whitespace-free input. A division by a
// literal zero is rejected here with [ErrDivideByZero].
func Validate(input string) (Expression, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return Expression{}, ErrEmptyExpression
	}

	if input[0] == 'Q' || input[0] == 'q' {
		return Expression{}, ErrExit
	}

	v := validator{
		src: strings.Map(
			func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}

				return r
			},
			input,
		),
	}

	return v.run()
}

type validator struct {
	out   strings.Builder
	src   string
	opens []int
	mode  Mode
	radix bool
}

func (v *validator) at(i int) byte {
	if i < 0 || i >= len(v.src) {
		return 0
	}

	return v.src[i]
}

// signPosition reports whether a minus at i negates what follows.
func (v *validator) signPosition(i int) bool {
	return i == 0 || isOperator(v.src[i-1]) || v.src[i-1] == '('
}

// zeroDivisor reports whether the literal starting at i is numerically zero.
func (v *validator) zeroDivisor(i int) bool {
	if v.at(i) == '-' {
		i++
	}

	digits := 0

	for ; isNumeric(v.at(i)); i++ {
		if c := v.at(i); isDigit(c) {
			if c != '0' {
				return false
			}

			digits++
		}
	}

	return digits > 0
}

func (v *validator) run() (Expression, error) {
	v.out.Grow(len(v.src) + 4)

	for i := range len(v.src) {
		c := v.src[i]
		if err := v.check(i, c); err != nil {
			return Expression{}, err
		}

		if !isNumeric(c) {
			v.radix = false
		}

		if p := v.at(i - 1); c == '(' && (isNumeric(p) || p == ')') {
			v.out.WriteByte(byte(OpMul))
		}

		v.out.WriteByte(c)

		if c == ')' && isNumeric(v.at(i+1)) {
			v.out.WriteByte(byte(OpMul))
		}
	}

	if n := len(v.opens); n > 0 {
		return Expression{}, ErrParenMismatch.At(v.opens[n-1])
	}

	return Expression{Text: v.out.String(), Mode: v.mode}, nil
}

func (v *validator) check(i int, c byte) error {
	last := len(v.src) - 1

	switch {
	case isDigit(c):
		return nil

	case c == '.':
		if v.radix || !isDigit(v.at(i-1)) && !isDigit(v.at(i+1)) {
			return ErrBadRadixPoint.At(i)
		}

		v.radix = true
		v.mode = ModeFloating

	case c == byte(OpSub):
		switch {
		case v.at(i+1) == '-' && v.at(i+2) == '-':
			return ErrDualOperators.At(i)
		case i == last:
			return ErrTrailingOperator.At(i)
		case v.signPosition(i) && v.at(i+1) == '-':
			return ErrDualOperators.At(i + 1)
		}

	case isOperator(c):
		switch {
		case c == byte(OpDiv) && v.zeroDivisor(i+1):
			return ErrDivideByZero.At(i)
		case i == 0:
			return ErrLeadingOperator.At(i)
		case i == last:
			return ErrTrailingOperator.At(i)
		case isOperator(v.src[i-1]):
			return ErrDualOperators.At(i)
		}

		if c == byte(OpPow) {
			v.mode = ModeFloating
		}

	case c == '(':
		if n := v.at(i + 1); !isNumeric(n) && n != '-' && n != '(' {
			return ErrBadLeftParen.At(i)
		}

		v.opens = append(v.opens, i)

	case c == ')':
		if p := v.at(i - 1); !isNumeric(p) && p != ')' {
			return ErrBadRightParen.At(i)
		}

		if len(v.opens) == 0 {
			return ErrParenMismatch.At(i)
		}

		v.opens = v.opens[:len(v.opens)-1]

	default:
		r, _ := utf8.DecodeRuneInString(v.src[i:])

		return ErrInvalidCharacter.At(i).With(slog.String("char", string(r)))
	}

	return nil
}
