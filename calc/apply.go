package calc

import (
	"log/slog"
	"math"
)

// Apply computes left op right.
//
// Operands of different modes are promoted to floating. Exponentiation
// always yields a floating result. Integer division truncates toward zero
// and reports remainder when a non-zero remainder was discarded.
func Apply(left, right Scalar, op Operator) (value Scalar, remainder bool, err error) {
	if op == OpPow {
		return checkFloat(math.Pow(left.Float64(), right.Float64()))
	}

	if left.mode != right.mode {
		left, right = left.In(ModeFloating), right.In(ModeFloating)
	}

	if op == OpDiv && right.IsZero() {
		return Scalar{}, false, ErrDivideByZero
	}

	if left.mode == ModeFloating {
		return applyFloat(left.f, right.f, op)
	}

	return applyInt(left.i, right.i, op)
}

func applyFloat(a, b float64, op Operator) (Scalar, bool, error) {
	switch op {
	case OpMul, OpAst:
		return checkFloat(a * b)
	case OpDiv:
		return checkFloat(a / b)
	case OpAdd:
		return checkFloat(a + b)
	case OpSub:
		return checkFloat(a - b)
	default:
		return Scalar{}, false, invalidOperator(op)
	}
}

func applyInt(a, b int64, op Operator) (Scalar, bool, error) {
	switch op {
	case OpMul, OpAst:
		if a != 0 && b != 0 {
			p := a * b
			if p/b != a || (b == -1 && a == math.MinInt64) {
				return Scalar{}, false, ErrNumberOutOfRange
			}
		}

		return Int(a * b), false, nil

	case OpDiv:
		if b == -1 && a == math.MinInt64 {
			return Scalar{}, false, ErrNumberOutOfRange
		}

		return Int(a / b), a%b != 0, nil

	case OpAdd:
		s := a + b
		if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
			return Scalar{}, false, ErrNumberOutOfRange
		}

		return Int(s), false, nil

	case OpSub:
		d := a - b
		if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
			return Scalar{}, false, ErrNumberOutOfRange
		}

		return Int(d), false, nil

	default:
		return Scalar{}, false, invalidOperator(op)
	}
}

func checkFloat(f float64) (Scalar, bool, error) {
	switch {
	case math.IsNaN(f):
		return Scalar{}, false, ErrUndefinedResult
	case math.IsInf(f, 0):
		return Scalar{}, false, ErrNumberOutOfRange
	}

	return Float(f), false, nil
}

func invalidOperator(op Operator) error {
	return ErrInvalidOperator.With(slog.String("op", op.String()))
}

// negate returns -s.
func negate(s Scalar) (Scalar, error) {
	if s.mode == ModeFloating {
		return Float(-s.f), nil
	}

	if s.i == math.MinInt64 {
		return Scalar{}, ErrNumberOutOfRange
	}

	return Int(-s.i), nil
}
