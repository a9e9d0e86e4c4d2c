package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/calc/calc"
)

// contextKey stores a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable named id, or "" if ctx carries no
// kong.Context or the variable is undefined.
func kongVar(ctx context.Context, id string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil || ktx.Model == nil {
		return ""
	}

	return ktx.Model.Vars()[id]
}

type optionsKey struct{}

// WithOptions returns a new context.Context carrying evaluation options that
// every command passes to the engine.
func WithOptions(ctx context.Context, opts ...calc.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFrom(ctx context.Context) []calc.Option {
	opts, _ := ctx.Value(optionsKey{}).([]calc.Option)

	return opts
}

// Streams are the standard I/O endpoints of a command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type streamsKey struct{}

// WithStreams returns a new context.Context whose commands read from in and
// write results to out and diagnostics to errw. Nil endpoints fall back to
// the process's standard streams.
func WithStreams(
	ctx context.Context,
	in io.Reader,
	out, errw io.Writer,
) context.Context {
	return context.WithValue(ctx, streamsKey{}, Streams{In: in, Out: out, Err: errw})
}

func streamsFrom(ctx context.Context) Streams {
	s, _ := ctx.Value(streamsKey{}).(Streams)

	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	if s.Err == nil {
		s.Err = os.Stderr
	}

	return s
}
