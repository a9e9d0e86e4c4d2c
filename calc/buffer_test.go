package calc

import (
	"testing"
)

func mustTokenize(t *testing.T, input string) *buffer {
	t.Helper()

	x, err := Validate(input)
	if err != nil {
		t.Fatalf("Validate(%q): %v", input, err)
	}

	b, err := tokenize(x)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", input, err)
	}

	return b
}

func TestTokenize_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kinds []kind
	}{
		{"-5+3", []kind{kindOperand, kindOperator, kindOperand}},
		{"3--2", []kind{kindOperand, kindOperator, kindOperand}},
		{"2*-3", []kind{kindOperand, kindOperator, kindOperand}},
		{"-(2)", []kind{kindNegate, kindOpen, kindOperand, kindClose}},
		{"(-2)", []kind{kindOpen, kindOperand, kindClose}},
		{"1-(2)", []kind{kindOperand, kindOperator, kindOpen, kindOperand, kindClose}},
		{"3(4)", []kind{kindOperand, kindOperator, kindOpen, kindOperand, kindClose}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			b := mustTokenize(t, tt.input)

			var got []kind
			for i := b.head; i != none; i = b.nodes[i].next {
				got = append(got, b.nodes[i].kind)
			}

			if len(got) != len(tt.kinds) {
				t.Fatalf("kinds = %v, want %v", got, tt.kinds)
			}

			for i := range got {
				if got[i] != tt.kinds[i] {
					t.Fatalf("kinds = %v, want %v", got, tt.kinds)
				}
			}
		})
	}
}

func TestTokenize_Spans(t *testing.T) {
	t.Parallel()

	b := mustTokenize(t, "-12+3.5")

	want := []Span{{0, 3}, {3, 4}, {4, 7}}
	for i, s := range want {
		if b.nodes[i].span != s {
			t.Errorf("node %d span = %v, want %v", i, b.nodes[i].span, s)
		}
	}

	if b.nodes[0].value != Float(-12) || b.nodes[2].value != Float(3.5) {
		t.Errorf("operands = %v, %v", b.nodes[0].value, b.nodes[2].value)
	}
}

func TestBuffer_Rewrite_DecreasesOperators(t *testing.T) {
	t.Parallel()

	b := mustTokenize(t, "1+2x3")

	before := b.len()

	left, right, err := b.operands(3)
	if err != nil {
		t.Fatal(err)
	}

	cursor := b.rewrite(left, right, Int(6))

	if cursor != left {
		t.Errorf("cursor = %d, want %d", cursor, left)
	}

	if got := b.len(); got != before-2 {
		t.Errorf("len = %d, want %d", got, before-2)
	}

	if got := b.String(); got != "1+6" {
		t.Errorf("buffer = %q, want %q", got, "1+6")
	}

	if span := b.nodes[left].span; span != (Span{2, 5}) {
		t.Errorf("span = %v, want {2 5}", span)
	}
}

func TestBuffer_Operands_RequiresOperands(t *testing.T) {
	t.Parallel()

	b := mustTokenize(t, "(1)+2")

	// Node 3 is '+', whose left neighbor is ')'.
	if _, _, err := b.operands(3); CodeOf(err) != CodeInternal {
		t.Errorf("error = %v, want Internal", err)
	}
}

func TestScanOperand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		start int
		mode  Mode
		want  Scalar
		span  Span
		code  Code
	}{
		{"12+3", 0, ModeInteger, Int(12), Span{0, 2}, CodeUnknown},
		{"12+3", 3, ModeInteger, Int(3), Span{3, 4}, CodeUnknown},
		{"1+-7", 2, ModeInteger, Int(-7), Span{2, 4}, CodeUnknown},
		{"007", 0, ModeInteger, Int(7), Span{0, 3}, CodeUnknown},
		{".5", 0, ModeFloating, Float(0.5), Span{0, 2}, CodeUnknown},
		{"-2.25x", 0, ModeFloating, Float(-2.25), Span{0, 5}, CodeUnknown},
		{"1.5", 0, ModeInteger, Scalar{}, Span{0, 3}, CodeBadRadixPoint},
		{"1.2.3", 0, ModeFloating, Scalar{}, Span{0, 5}, CodeBadRadixPoint},
		{"9223372036854775808", 0, ModeInteger, Scalar{}, Span{0, 19}, CodeNumberOutOfRange},
		{"-", 0, ModeInteger, Scalar{}, Span{0, 1}, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			got, span, err := scanOperand(tt.text, tt.start, tt.mode)
			if c := CodeOf(err); c != tt.code {
				t.Fatalf("code = %v, want %v (%v)", c, tt.code, err)
			}

			if span != tt.span {
				t.Errorf("span = %v, want %v", span, tt.span)
			}

			if err == nil && got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}
