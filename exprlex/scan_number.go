package exprlex

import "fmt"

// scanNumber consumes one numeric literal. On entry the cursor sits on the
// literal's first character (a digit, or a dot with a digit behind it); on
// return it sits on the literal's last consumed character, leaving the final
// one-position advance to the driver loop.
//
// Grammar: integer, hex (0 followed by x/X and hex digits), float (dot and
// digits, with an optional leading-dot form), and scientific notation
// (e/E, optional sign, digits). Malformed tails record a diagnostic and
// scanning continues with zero digits, so one run surfaces every problem in
// the input rather than just the first.
func (l *Lexer) scanNumber() string {
	start := l.cur.pos

	if l.cur.ch == '0' && isHexMarker(l.cur.peek()) {
		marker := l.cur.consume(1)
		if !isHexDigit(l.cur.peek()) {
			l.record(ErrUnterminatedHexLiteral, l.cur.pos+1,
				fmt.Sprintf("expected a number after %q", marker))
		}
		for isHexDigit(l.cur.peek()) {
			l.cur.consume(1)
		}
		return l.span(start)
	}

	onDot := l.cur.ch == '.'
	if !onDot {
		for isDigit(l.cur.peek()) {
			l.cur.consume(1)
		}
		if l.cur.peek() == '.' {
			l.cur.consume(1)
			onDot = true
		}
	}

	if onDot {
		if !isDigit(l.cur.peek()) {
			l.record(ErrUnterminatedFloatLiteral, l.cur.pos+1,
				"expected a number after the decimal point")
		}
		for isDigit(l.cur.peek()) {
			l.cur.consume(1)
		}
	}

	if isExpMarker(l.cur.peek()) {
		l.cur.consume(1)
		if isSign(l.cur.peek()) {
			l.cur.consume(1)
		}
		if !isDigit(l.cur.peek()) {
			l.record(ErrUnterminatedExponent, l.cur.pos+1,
				"expected a number after the exponent sign")
		}
		for isDigit(l.cur.peek()) {
			l.cur.consume(1)
		}
	}

	return l.span(start)
}
