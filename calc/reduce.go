package calc

import (
	"log/slog"
	"slices"
)

// reduce collapses the operator-separated operands from node first up to,
// but not including, node stop. Each tier is scanned left to right until no
// operator of that tier remains.
func (e *evaluation) reduce(first, stop int) error {
	b := e.buf

	for _, tier := range tiers {
		for i := first; i != none && i != stop; {
			n := b.nodes[i]
			if n.kind != kindOperator || !slices.Contains(tier, n.op) {
				i = n.next

				continue
			}

			if err := e.advance(); err != nil {
				return err
			}

			left, right, err := b.operands(i)
			if err != nil {
				return err
			}

			lv, rv := b.nodes[left].value, b.nodes[right].value

			value, remainder, err := Apply(lv, rv, n.op)
			if err != nil {
				return withSpan(err, n.span).
					With(slog.Any("left", lv), slog.Any("right", rv))
			}

			if remainder {
				e.remainder = true
			}

			i = b.rewrite(left, right, value)

			e.emit(Step{
				Phase: PhaseReduce,
				Op:    n.op,
				Left:  lv,
				Right: rv,
				Value: value,
			})
		}
	}

	return nil
}

// withSpan positions an evaluation error at the operator that raised it.
func withSpan(err error, span Span) *Error {
	if e, ok := err.(*Error); ok {
		return e.At(span.Start)
	}

	return ErrInternal.Wrap(err).At(span.Start)
}
