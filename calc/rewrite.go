package calc

// rewrite replaces the nodes left, its operator, and right with a single
// operand holding value. The left node is reused, so it is returned as the
// cursor from which scanning resumes.
func (b *buffer) rewrite(left, right int, value Scalar) int {
	op := b.nodes[left].next

	b.nodes[left].value = value
	b.nodes[left].span.End = b.nodes[right].span.End

	b.unlink(op)
	b.unlink(right)

	return left
}
