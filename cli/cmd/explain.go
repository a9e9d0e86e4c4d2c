package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/calc/calc"
)

// Explain prints the canonical form of an expression and every step taken
// to evaluate it.
type Explain struct {
	Expr   []string `arg:"" help:"Expression to explain; arguments are joined without separators" name:"expr"`
	Format string   `       help:"Output format"                                                   default:"text" enum:"text,json,yaml" short:"f"`
}

// explanation is the document written by [Explain].
type explanation struct {
	Input     string       `json:"input"               yaml:"input"`
	Canonical string       `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Mode      string       `json:"mode,omitempty"      yaml:"mode,omitempty"`
	Steps     []stepView   `json:"steps,omitempty"     yaml:"steps,omitempty"`
	Result    *calc.Scalar `json:"result,omitempty"    yaml:"result,omitempty"`
	Warnings  []string     `json:"warnings,omitempty"  yaml:"warnings,omitempty"`
	Error     *errorView   `json:"error,omitempty"     yaml:"error,omitempty"`
}

type stepView struct {
	Phase  string       `json:"phase"           yaml:"phase"`
	Op     string       `json:"op,omitempty"    yaml:"op,omitempty"`
	Left   calc.Scalar  `json:"left"            yaml:"left"`
	Right  *calc.Scalar `json:"right,omitempty" yaml:"right,omitempty"`
	Value  calc.Scalar  `json:"value"           yaml:"value"`
	Buffer string       `json:"buffer"          yaml:"buffer"`
}

type errorView struct {
	Code    int    `json:"code"             yaml:"code"`
	Kind    string `json:"kind"             yaml:"kind"`
	Message string `json:"message"          yaml:"message"`
	Offset  *int   `json:"offset,omitempty" yaml:"offset,omitempty"`
	Syntax  bool   `json:"syntax"           yaml:"syntax"`
}

// Run executes the explain command.
func (e *Explain) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := streamsFrom(ctx)

	doc, evalErr := explain(ctx, strings.Join(e.Expr, ""), optionsFrom(ctx)...)
	if errors.Is(evalErr, calc.ErrExit) {
		return nil
	}

	switch e.Format {
	case "json":
		enc := json.NewEncoder(s.Out)
		enc.SetIndent("", "  ")

		if err := enc.Encode(doc); err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

	case "yaml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		if _, err := s.Out.Write(b); err != nil {
			return err
		}

	default:
		doc.writeText(s.Out)

		if evalErr != nil {
			fmt.Fprintln(s.Err, calc.Diagnostic(evalErr))
		}
	}

	if evalErr != nil {
		return ErrReported.Wrap(evalErr)
	}

	return nil
}

// explain evaluates input while recording each step.
func explain(
	ctx context.Context,
	input string,
	opts ...calc.Option,
) (explanation, error) {
	doc := explanation{Input: input}

	x, err := calc.Validate(input)
	if err != nil {
		doc.Error = newErrorView(err)

		return doc, err
	}

	doc.Canonical = x.Text
	doc.Mode = x.Mode.String()

	opts = append(opts[:len(opts):len(opts)], calc.WithTrace(func(s calc.Step) {
		v := stepView{
			Phase:  s.Phase.String(),
			Op:     s.Op.String(),
			Left:   s.Left,
			Value:  s.Value,
			Buffer: s.Buffer,
		}

		if s.Phase == calc.PhaseReduce {
			v.Right = &s.Right
		}

		doc.Steps = append(doc.Steps, v)
	}))

	res, err := x.Evaluate(ctx, opts...)
	if err != nil {
		doc.Error = newErrorView(err)

		return doc, err
	}

	doc.Result = &res.Value

	for _, w := range res.Warnings {
		doc.Warnings = append(doc.Warnings, w.Error())
	}

	return doc, nil
}

func newErrorView(err error) *errorView {
	code := calc.CodeOf(err)
	v := &errorView{
		Code:    int(code),
		Kind:    code.String(),
		Message: err.Error(),
		Syntax:  code.Syntax(),
	}

	var ce *calc.Error
	if errors.As(err, &ce) && ce.Offset() >= 0 {
		off := ce.Offset()
		v.Offset = &off
	}

	return v
}

// writeText writes doc in a human-readable layout.
func (doc explanation) writeText(w io.Writer) {
	fmt.Fprintf(w, "input:     %s\n", doc.Input)

	if doc.Canonical == "" {
		return
	}

	fmt.Fprintf(w, "canonical: %s\n", doc.Canonical)
	fmt.Fprintf(w, "mode:      %s\n", doc.Mode)

	for i, s := range doc.Steps {
		fmt.Fprintf(w, "%4d  %-6s %-24s %s\n", i+1, s.Phase, s.operation(), s.Buffer)
	}

	if doc.Result != nil {
		fmt.Fprintf(w, "result:    %s\n", doc.Result)
	}

	for _, warning := range doc.Warnings {
		fmt.Fprintf(w, "warning:   %s\n", warning)
	}
}

// operation renders the arithmetic a step performed, such as "4x2 = 8" or
// "-(3) = -3".
func (s stepView) operation() string {
	if s.Right != nil {
		return fmt.Sprintf("%s%s%s = %s", s.Left, s.Op, s.Right, s.Value)
	}

	return fmt.Sprintf("%s(%s) = %s", s.Op, s.Left, s.Value)
}
