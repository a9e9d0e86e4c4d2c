package calc

import (
	"context"
	"log/slog"

	"github.com/ardnew/calc/log"
)

// Phase identifies the kind of an evaluation [Step].
type Phase uint8

const (
	PhaseGroup  Phase = iota // group
	PhaseReduce              // reduce
)

// MarshalText implements [encoding.TextMarshaler].
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Step describes one reduction or group resolution.
type Step struct {
	// Buffer is the expression as it stands after the step.
	Buffer string
	Left   Scalar
	Right  Scalar
	Value  Scalar
	Phase  Phase
	// Op is the operator applied. For a group it is [OpSub] when the group
	// was negated and zero otherwise.
	Op Operator
}

// Result is the outcome of a successful evaluation.
type Result struct {
	// Canonical is the validated expression text that was evaluated.
	Canonical string
	// Warnings holds non-fatal conditions such as
	// [ErrIntegerDivisionRemainder].
	Warnings []error
	Value    Scalar
	Mode     Mode
}

// Evaluate validates and evaluates input.
//
// It returns [ErrExit] for an exit request, an [*Error] for any syntax or
// arithmetic failure, or the context's cause if ctx is done before
// evaluation completes. No partial result is ever returned.
func Evaluate(ctx context.Context, input string, opts ...Option) (Result, error) {
	x, err := Validate(input)
	if err != nil {
		return Result{}, err
	}

	return x.Evaluate(ctx, opts...)
}

// Evaluate evaluates a validated expression.
func (x Expression) Evaluate(ctx context.Context, opts ...Option) (Result, error) {
	e, err := newEvaluation(ctx, x, makeConfig(opts...))
	if err != nil {
		return Result{}, err
	}

	e.logger.TraceContext(ctx, "evaluate",
		slog.String("expr", x.Text),
		slog.String("mode", x.Mode.String()),
		slog.Int("limit", e.limit),
	)

	if err := e.resolve(); err != nil {
		return Result{}, e.fail(err)
	}

	if err := e.reduce(e.buf.head, none); err != nil {
		return Result{}, e.fail(err)
	}

	h := e.buf.head
	if h == none || e.buf.nodes[h].kind != kindOperand ||
		e.buf.nodes[h].next != none {
		return Result{}, e.fail(ErrInternal.With(slog.Any("buffer", e.buf)))
	}

	r := Result{
		Canonical: x.Text,
		Value:     e.buf.nodes[h].value,
		Mode:      x.Mode,
	}

	if e.remainder {
		r.Warnings = append(r.Warnings, ErrIntegerDivisionRemainder)
	}

	e.logger.TraceContext(ctx, "evaluated",
		slog.Any("value", r.Value),
		slog.Int("steps", e.steps),
		slog.Bool("remainder", e.remainder),
	)

	return r, nil
}

// evaluation holds the state of a single call to [Expression.Evaluate].
type evaluation struct {
	ctx       context.Context
	buf       *buffer
	trace     func(Step)
	logger    log.Logger
	steps     int
	limit     int
	remainder bool
}

func newEvaluation(ctx context.Context, x Expression, cfg config) (*evaluation, error) {
	buf, err := tokenize(x)
	if err != nil {
		return nil, err
	}

	limit := cfg.limit
	if limit <= 0 {
		limit = len(buf.nodes)
	}

	return &evaluation{
		ctx:    ctx,
		buf:    buf,
		trace:  cfg.trace,
		logger: cfg.logger,
		limit:  limit,
	}, nil
}

// advance accounts for one step, failing if ctx is done or the step limit
// is exhausted.
func (e *evaluation) advance() error {
	if e.ctx.Err() != nil {
		return context.Cause(e.ctx)
	}

	e.steps++
	if e.steps > e.limit {
		return ErrReductionLimit.With(slog.Int("limit", e.limit))
	}

	return nil
}

func (e *evaluation) emit(s Step) {
	e.logger.TraceContext(e.ctx, s.Phase.String(),
		slog.String("op", s.Op.String()),
		slog.Any("left", s.Left),
		slog.Any("right", s.Right),
		slog.Any("value", s.Value),
		slog.Any("buffer", e.buf),
	)

	if e.trace != nil {
		s.Buffer = e.buf.String()
		e.trace(s)
	}
}

func (e *evaluation) fail(err error) error {
	e.logger.DebugContext(e.ctx, "evaluation failed",
		slog.String("expr", e.buf.text),
		slog.Any("error", err),
	)

	return err
}
