package calc

import (
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestScalar_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Scalar
		want string
	}{
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Float(4), "4"},
		{Float(-0.0), "0"},
		{Float(math.Copysign(0, -1)), "0"},
		{Float(0.1), "0.1"},
		{Float(1e21), "1000000000000000000000.0"},
		{Float(-1e21), "-1000000000000000000000.0"},
		{Float(1 << 63), "9223372036854776000.0"},
		{Float(-(1 << 63)), "-9223372036854776000.0"},
		{Float(1 << 53), "9007199254740992.0"},
		{Float(1<<53 - 1), "9007199254740991"},
		{Float(1<<53 + 0.5), "9007199254740992.0"},
		{Float(1.5e-7), "0.00000015"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestScalar_Conversions(t *testing.T) {
	t.Parallel()

	if got := Float(-2.9).In(ModeInteger); got != Int(-2) {
		t.Errorf("truncation = %v, want -2", got)
	}

	if got := Int(3).In(ModeFloating); got != Float(3) || got.Mode() != ModeFloating {
		t.Errorf("promotion = %#v", got)
	}

	if !Float(0).IsZero() || !Int(0).IsZero() || Int(1).IsZero() {
		t.Error("IsZero misreports")
	}

	if Int(7).Float64() != 7 || Float(7.5).Int64() != 7 {
		t.Error("accessor conversion failed")
	}
}

func TestScalar_Marshal(t *testing.T) {
	t.Parallel()

	type doc struct {
		I Scalar `json:"i" yaml:"i"`
		F Scalar `json:"f" yaml:"f"`
		M Mode   `json:"m" yaml:"m"`
	}

	d := doc{I: Int(3), F: Float(0.25), M: ModeFloating}

	j, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(j), `{"i":3,"f":0.25,"m":"floating"}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}

	y, err := yaml.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(y), "i: 3\nf: 0.25\nm: floating\n"; got != want {
		t.Errorf("yaml = %q, want %q", got, want)
	}
}

func TestScalar_LogValue(t *testing.T) {
	t.Parallel()

	if v := Int(-7).LogValue(); v.Kind() != slog.KindInt64 || v.Int64() != -7 {
		t.Errorf("Int(-7).LogValue() = %v", v)
	}

	if v := Float(2.5).LogValue(); v.Kind() != slog.KindFloat64 || v.Float64() != 2.5 {
		t.Errorf("Float(2.5).LogValue() = %v", v)
	}
}
