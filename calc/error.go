package calc

//go:generate go tool stringer --linecomment --type Code,Mode,Phase --output code_string.go

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Code identifies the kind of an [*Error].
type Code uint8

const (
	CodeUnknown                  Code = iota // Unknown
	CodeDivideByZero                         // DivideByZero
	CodeLeadingOperator                      // LeadingOperator
	CodeTrailingOperator                     // TrailingOperator
	CodeDualOperators                        // DualOperators
	CodeInvalidCharacter                     // InvalidCharacter
	CodeBadRadixPoint                        // BadRadixPoint
	CodeBadLeftParen                         // BadLeftParen
	CodeBadRightParen                        // BadRightParen
	CodeParenMismatch                        // ParenMismatch
	CodeInvalidOperator                      // InvalidOperator
	CodeEmptyExpression                      // EmptyExpression
	CodeNumberOutOfRange                     // NumberOutOfRange
	CodeUndefinedResult                      // UndefinedResult
	CodeReductionLimit                       // ReductionLimit
	CodeInternal                             // Internal
	CodeIntegerDivisionRemainder             // IntegerDivisionRemainder
)

// Syntax reports whether c is detected by [Validate] before evaluation.
func (c Code) Syntax() bool {
	switch c {
	case CodeLeadingOperator, CodeTrailingOperator, CodeDualOperators,
		CodeInvalidCharacter, CodeBadRadixPoint, CodeBadLeftParen,
		CodeBadRightParen, CodeParenMismatch, CodeEmptyExpression:
		return true
	default:
		return false
	}
}

// Warning reports whether c accompanies a valid result instead of
// replacing it.
func (c Code) Warning() bool { return c == CodeIntegerDivisionRemainder }

// Predefined errors (sentinel values).
var (
	ErrDivideByZero     = newError(CodeDivideByZero, "division by zero")
	ErrLeadingOperator  = newError(CodeLeadingOperator, "operator at start of expression")
	ErrTrailingOperator = newError(CodeTrailingOperator, "operator at end of expression")
	ErrDualOperators    = newError(CodeDualOperators, "adjacent operators")
	ErrInvalidCharacter = newError(CodeInvalidCharacter, "invalid character")
	ErrBadRadixPoint    = newError(CodeBadRadixPoint, "misplaced radix point")
	ErrBadLeftParen     = newError(CodeBadLeftParen, "opening parenthesis must precede an operand")
	ErrBadRightParen    = newError(CodeBadRightParen, "closing parenthesis must follow an operand")
	ErrParenMismatch    = newError(CodeParenMismatch, "unbalanced parentheses")
	ErrInvalidOperator  = newError(CodeInvalidOperator, "invalid operator")
	ErrEmptyExpression  = newError(CodeEmptyExpression, "empty expression")
	ErrNumberOutOfRange = newError(CodeNumberOutOfRange, "number out of range")
	ErrUndefinedResult  = newError(CodeUndefinedResult, "undefined result")
	ErrReductionLimit   = newError(CodeReductionLimit, "reduction step limit exceeded")
	ErrInternal         = newError(CodeInternal, "internal evaluation error")

	ErrIntegerDivisionRemainder = newError(
		CodeIntegerDivisionRemainder,
		"integer division discarded a remainder",
	)
)

// ErrExit is returned by [Validate] and [Evaluate] when the input is an
// exit request rather than an expression.
var ErrExit = errors.New("exit requested")

// Error is an evaluation failure identified by a [Code].
// It implements both error and slog.LogValuer interfaces.
//
// Two Errors match under [errors.Is] when their codes are equal, so a
// sentinel such as [ErrDivideByZero] matches any error derived from it.
type Error struct {
	msg    string
	err    error       // Wrapped error (for errors.Unwrap)
	attrs  []slog.Attr // Attributes for structured logging
	offset int
	code   Code
}

func newError(code Code, msg string) *Error {
	return &Error{code: code, msg: msg, offset: -1}
}

// CodeOf returns the [Code] of the first [*Error] in err's tree, or
// [CodeUnknown] if there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}

	return CodeUnknown
}

// Code returns the kind of e.
func (e *Error) Code() Code { return e.code }

// Offset returns the byte offset of the offending character in the
// whitespace-free input, or -1 if the error is not tied to a position.
func (e *Error) Offset() int { return e.offset }

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if e.offset >= 0 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString("at offset ")
		sb.WriteString(strconv.Itoa(e.offset))
	}

	if e.err != nil {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(e.err.Error())
	}

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an [*Error] with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.code != CodeUnknown && t.code == e.code
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)
	attrs = append(attrs,
		slog.String("kind", e.code.String()),
		slog.String("error", e.msg),
	)

	if e.offset >= 0 {
		attrs = append(attrs, slog.Int("offset", e.offset))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...)

	return &c
}

// At returns a copy of e positioned at byte offset.
func (e *Error) At(offset int) *Error {
	c := *e
	c.offset = offset

	return &c
}

// Diagnostic formats err as a single line "error <code> <Kind>: <message>",
// or "warning: <message>" when err carries a warning code.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}

	code := CodeOf(err)
	if code.Warning() {
		return "warning: " + err.Error()
	}

	return "error " + strconv.Itoa(int(code)) + " " + code.String() + ": " + err.Error()
}
