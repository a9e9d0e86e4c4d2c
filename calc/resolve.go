package calc

// resolve evaluates every parenthesized group, innermost first and left to
// right among groups at the same depth, until none remain.
func (e *evaluation) resolve() error {
	for {
		open, done := none, true

		for i := e.buf.head; i != none; i = e.buf.nodes[i].next {
			k := e.buf.nodes[i].kind
			if k == kindOpen {
				open = i

				continue
			}

			if k != kindClose {
				continue
			}

			if open == none {
				return ErrInternal.At(e.buf.nodes[i].span.Start)
			}

			if err := e.group(open, i); err != nil {
				return err
			}

			done = false

			break
		}

		if done {
			if open != none {
				return ErrInternal.At(e.buf.nodes[open].span.Start)
			}

			return nil
		}
	}
}

// group reduces the segment between the open and closing nodes to a single
// operand, removes both delimiters, and applies a preceding negation.
func (e *evaluation) group(open, closing int) error {
	b := e.buf

	if err := e.reduce(b.nodes[open].next, closing); err != nil {
		return err
	}

	v := b.nodes[open].next
	if v == closing || b.nodes[v].kind != kindOperand || b.nodes[v].next != closing {
		return ErrInternal.At(b.nodes[open].span.Start)
	}

	if err := e.advance(); err != nil {
		return err
	}

	inner := b.nodes[v].value
	span := Span{b.nodes[open].span.Start, b.nodes[closing].span.End}

	b.unlink(open)
	b.unlink(closing)

	step := Step{Phase: PhaseGroup, Left: inner, Value: inner}

	if p := b.nodes[v].prev; p != none && b.nodes[p].kind == kindNegate {
		neg, err := negate(inner)
		if err != nil {
			return withSpan(err, b.nodes[p].span)
		}

		span.Start = b.nodes[p].span.Start
		step.Op, step.Value = OpSub, neg

		b.nodes[v].value = neg
		b.unlink(p)
	}

	b.nodes[v].span = span

	e.emit(step)

	return nil
}
