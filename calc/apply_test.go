package calc

import (
	"errors"
	"math"
	"testing"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		left      Scalar
		right     Scalar
		op        Operator
		want      Scalar
		remainder bool
		err       error
	}{
		{"int sum", Int(2), Int(3), OpAdd, Int(5), false, nil},
		{"int difference", Int(2), Int(3), OpSub, Int(-1), false, nil},
		{"int product x", Int(4), Int(3), OpMul, Int(12), false, nil},
		{"int product star", Int(4), Int(-3), OpAst, Int(-12), false, nil},
		{"int exact quotient", Int(12), Int(4), OpDiv, Int(3), false, nil},
		{"int truncated quotient", Int(10), Int(3), OpDiv, Int(3), true, nil},
		{"int negative quotient", Int(-10), Int(3), OpDiv, Int(-3), true, nil},
		{"int power is floating", Int(2), Int(10), OpPow, Float(1024), false, nil},
		{"float quotient", Float(1), Float(4), OpDiv, Float(0.25), false, nil},
		{"mixed promotes", Int(1), Float(0.5), OpAdd, Float(1.5), false, nil},
		{"negative zero product", Float(-1), Float(0), OpMul, Float(0), false, nil},
		{"int divide by zero", Int(1), Int(0), OpDiv, Scalar{}, false, ErrDivideByZero},
		{"float divide by zero", Float(1), Float(0), OpDiv, Scalar{}, false, ErrDivideByZero},
		{"mixed divide by zero", Int(1), Float(0), OpDiv, Scalar{}, false, ErrDivideByZero},
		{"sum overflow", Int(math.MaxInt64), Int(1), OpAdd, Scalar{}, false, ErrNumberOutOfRange},
		{"sum underflow", Int(math.MinInt64), Int(-1), OpAdd, Scalar{}, false, ErrNumberOutOfRange},
		{"difference overflow", Int(math.MaxInt64), Int(-1), OpSub, Scalar{}, false, ErrNumberOutOfRange},
		{"difference at edge", Int(-1), Int(math.MaxInt64), OpSub, Int(math.MinInt64), false, nil},
		{"product overflow", Int(math.MaxInt64), Int(2), OpMul, Scalar{}, false, ErrNumberOutOfRange},
		{"min times minus one", Int(math.MinInt64), Int(-1), OpMul, Scalar{}, false, ErrNumberOutOfRange},
		{"minus one times min", Int(-1), Int(math.MinInt64), OpMul, Scalar{}, false, ErrNumberOutOfRange},
		{"min over minus one", Int(math.MinInt64), Int(-1), OpDiv, Scalar{}, false, ErrNumberOutOfRange},
		{"float overflow", Float(math.MaxFloat64), Float(2), OpMul, Scalar{}, false, ErrNumberOutOfRange},
		{"undefined power", Float(-8), Float(1.0 / 3), OpPow, Scalar{}, false, ErrUndefinedResult},
		{"unknown operator", Int(1), Int(2), Operator('%'), Scalar{}, false, ErrInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, remainder, err := Apply(tt.left, tt.right, tt.op)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("error = %v, want %v", err, tt.err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}

			if remainder != tt.remainder {
				t.Errorf("remainder = %v, want %v", remainder, tt.remainder)
			}
		})
	}
}

func TestNegate(t *testing.T) {
	t.Parallel()

	if got, err := negate(Int(5)); err != nil || got != Int(-5) {
		t.Errorf("negate(5) = %v, %v", got, err)
	}

	if got, err := negate(Float(0)); err != nil || got != Float(0) || math.Signbit(got.Float64()) {
		t.Errorf("negate(0.0) = %v, %v", got, err)
	}

	if _, err := negate(Int(math.MinInt64)); !errors.Is(err, ErrNumberOutOfRange) {
		t.Errorf("negate(MinInt64) error = %v", err)
	}
}
