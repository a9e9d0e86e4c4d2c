package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/calc/calc"
)

func errorsIs(err, target error) bool { return errors.Is(err, target) }

func TestOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantOut string
		wantErr string
		fail    bool
	}{
		{name: "precedence", input: "3+4x2", wantOut: "11\n"},
		{name: "remainder", input: "10/3", wantOut: "3\n", wantErr: "warning: integer division discarded a remainder\n"},
		{name: "floating", input: "1.5+2.5", wantOut: "4\n"},
		{name: "whitespace", input: "2 ^ 3 + 1", wantOut: "9\n"},
		{name: "divide by zero", input: "5/0", wantErr: "error 1 DivideByZero: division by zero at offset 1\n", fail: true},
		{name: "dual operators", input: "1++2", wantErr: "error 4 DualOperators: adjacent operators at offset 2\n", fail: true},
		{name: "exit", input: "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errw bytes.Buffer

			err := Once(context.Background(), tt.input, &out, &errw)

			if (err != nil) != tt.fail {
				t.Fatalf("Once(%q) error = %v, fail %v", tt.input, err, tt.fail)
			}

			if tt.fail && !errors.Is(err, ErrReported) {
				t.Errorf("Once(%q) error = %v, want ErrReported", tt.input, err)
			}

			if got := out.String(); got != tt.wantOut {
				t.Errorf("stdout = %q, want %q", got, tt.wantOut)
			}

			if got := errw.String(); got != tt.wantErr {
				t.Errorf("stderr = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestLoop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantOut string
		wantErr string
	}{
		{
			name:    "each line",
			input:   "1+1\n2x3\n",
			wantOut: "2\n6\n",
		},
		{
			name:    "skips blank lines",
			input:   "\n   \n7\n\n",
			wantOut: "7\n",
		},
		{
			name:    "errors do not stop the loop",
			input:   "1+\n4/2\n",
			wantOut: "2\n",
			wantErr: "error 3 TrailingOperator: operator at end of expression at offset 1\n",
		},
		{
			name:    "stops at exit request",
			input:   "1\nQ\n2\n",
			wantOut: "1\n",
		},
		{
			name:    "last line without newline",
			input:   "(1+2)x3",
			wantOut: "9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errw bytes.Buffer

			err := Loop(context.Background(), strings.NewReader(tt.input), &out, &errw)
			if err != nil {
				t.Fatalf("Loop() error = %v", err)
			}

			if got := out.String(); got != tt.wantOut {
				t.Errorf("stdout = %q, want %q", got, tt.wantOut)
			}

			if got := errw.String(); got != tt.wantErr {
				t.Errorf("stderr = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestLoopCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancelCause(context.Background())
	cause := errors.New("stop")
	cancel(cause)

	var out, errw bytes.Buffer

	err := Loop(ctx, strings.NewReader("1\n"), &out, &errw)
	if !errors.Is(err, cause) {
		t.Errorf("Loop() error = %v, want %v", err, cause)
	}

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestEvalRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		eval    Eval
		stdin   string
		wantOut string
		fail    bool
	}{
		{name: "joined arguments", eval: Eval{Expr: []string{"3", "+", "4"}}, wantOut: "7\n"},
		{name: "split number", eval: Eval{Expr: []string{"1", "2"}}, wantOut: "12\n"},
		{name: "failure", eval: Eval{Expr: []string{"1", "+"}}, fail: true},
		{name: "line loop", stdin: "2^10\n", wantOut: "1024\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errw bytes.Buffer

			ctx := WithStreams(context.Background(), strings.NewReader(tt.stdin), &out, &errw)
			ctx = WithOptions(ctx, calc.WithStepLimit(64))

			err := tt.eval.Run(ctx)
			if (err != nil) != tt.fail {
				t.Fatalf("Run() error = %v, fail %v", err, tt.fail)
			}

			if got := out.String(); got != tt.wantOut {
				t.Errorf("stdout = %q, want %q", got, tt.wantOut)
			}
		})
	}
}
