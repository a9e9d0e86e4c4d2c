package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ardnew/calc/calc"
	"github.com/ardnew/calc/cli/cmd/repl"
	"github.com/ardnew/calc/log"
)

// Eval evaluates expressions.
//
// With arguments, they are joined without separators and evaluated once.
// Without arguments, Eval starts the interactive terminal if both standard
// input and output are terminals, and otherwise evaluates each line of
// standard input.
type Eval struct {
	Expr        []string `arg:"" help:"Expression to evaluate; arguments are joined without separators" name:"expr" optional:""`
	Interactive bool     `       help:"Start the interactive terminal even if stdin is not a terminal"                 short:"i"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := streamsFrom(ctx)
	opts := optionsFrom(ctx)

	if len(e.Expr) > 0 {
		return Once(ctx, strings.Join(e.Expr, ""), s.Out, s.Err, opts...)
	}

	if e.Interactive || interactive(s) {
		return repl.Run(ctx, kongVar(ctx, CacheIdentifier), log.Default(), opts...)
	}

	return Loop(ctx, s.In, s.Out, s.Err, opts...)
}

// interactive reports whether s is attached to a terminal at both ends.
func interactive(s Streams) bool {
	in, ok := s.In.(*os.File)
	if !ok {
		return false
	}

	out, ok := s.Out.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// Once evaluates input and writes the value to out and any warnings or the
// diagnostic to errw.
//
// It returns nil for an exit request and an error wrapping [ErrReported]
// when evaluation fails.
func Once(
	ctx context.Context,
	input string,
	out, errw io.Writer,
	opts ...calc.Option,
) error {
	err := evaluate(ctx, input, out, errw, opts...)
	if err == nil || errors.Is(err, calc.ErrExit) {
		return nil
	}

	return ErrReported.Wrap(err)
}

// Loop evaluates each non-empty line read from in until an exit request or
// end of input. A failed line is reported to errw and does not stop the
// loop.
func Loop(
	ctx context.Context,
	in io.Reader,
	out, errw io.Writer,
	opts ...calc.Option,
) error {
	scan := bufio.NewScanner(in)

	for line := 1; scan.Scan(); line++ {
		if err := context.Cause(ctx); err != nil {
			return err
		}

		text := strings.TrimSpace(scan.Text())
		if text == "" {
			continue
		}

		err := evaluate(ctx, text, out, errw, opts...)
		if errors.Is(err, calc.ErrExit) {
			return nil
		}

		if err != nil {
			log.DebugContext(ctx, "line failed",
				slog.Int("line", line),
				slog.Any("error", err),
			)
		}
	}

	if err := scan.Err(); err != nil {
		return ErrReadInput.Wrap(err)
	}

	return nil
}

// evaluate writes the outcome of a single evaluation and returns its error.
func evaluate(
	ctx context.Context,
	input string,
	out, errw io.Writer,
	opts ...calc.Option,
) error {
	res, err := calc.Evaluate(ctx, input, opts...)
	if errors.Is(err, calc.ErrExit) {
		return err
	}

	if err != nil {
		fmt.Fprintln(errw, calc.Diagnostic(err))

		return err
	}

	fmt.Fprintln(out, res.Value)

	for _, w := range res.Warnings {
		fmt.Fprintln(errw, calc.Diagnostic(w))
	}

	return nil
}
