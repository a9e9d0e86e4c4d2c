// Package calc validates and evaluates infix arithmetic expressions.
//
// An expression is a sequence of decimal literals, the binary operators
// ^ x * / + -, and parentheses. Whitespace is ignored. A minus sign at the
// start of the expression, after another operator, or after an opening
// parenthesis negates the literal or group that follows it. A number or
// closing parenthesis directly adjacent to a parenthesized group implies
// multiplication, so 3(4) and (2)(3) are products.
//
// Evaluation honors the usual precedence: exponentiation first, then
// multiplication and division, then addition and subtraction, each tier
// reduced left to right. Parenthesized groups are resolved innermost first.
//
// # Numeric mode
//
// The arithmetic mode is chosen once per expression by [Validate]. An
// expression containing a radix point or the ^ operator is evaluated in
// [ModeFloating] with float64 arithmetic; any other expression is evaluated
// in [ModeInteger] with exact int64 arithmetic. Integer division truncates
// toward zero and reports [ErrIntegerDivisionRemainder] as a warning when a
// remainder was discarded. Integer overflow is an error, never a wrap.
//
// # Usage
//
//	res, err := calc.Evaluate(ctx, "3 + 4x2")
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Value) // 11
//
// Every failure is a [*Error] carrying a [Code]; compare with [errors.Is]
// against the exported sentinels or inspect it with [CodeOf].
package calc
