package exprlex

// ASCII character lookup tables for classification. Built once at package
// init and never mutated afterwards, so they are safe to share across lexer
// instances without synchronization.
var (
	whitespaceTable [128]bool // space, tab, carriage return, newline
	digitTable      [128]bool // 0-9
	identStartTable [128]bool // letter or _
	identPartTable  [128]bool // letter, digit, or _
	hexDigitTable   [128]bool // 0-9, a-f, A-F
	signTable       [128]bool // + or -
	expMarkerTable  [128]bool // e or E
	hexMarkerTable  [128]bool // x or X
	parenTable      [128]bool // ( or )
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		whitespaceTable[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
		digitTable[i] = '0' <= ch && ch <= '9'

		letter := ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		identStartTable[i] = letter || ch == '_'
		identPartTable[i] = identStartTable[i] || digitTable[i]

		hexDigitTable[i] = digitTable[i] ||
			('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')

		signTable[i] = ch == '+' || ch == '-'
		expMarkerTable[i] = ch == 'e' || ch == 'E'
		hexMarkerTable[i] = ch == 'x' || ch == 'X'
		parenTable[i] = ch == '(' || ch == ')'
	}
}

func inTable(table *[128]bool, r rune) bool {
	return r >= 0 && r < 128 && table[r]
}

func isWhitespace(r rune) bool { return inTable(&whitespaceTable, r) }
func isDigit(r rune) bool      { return inTable(&digitTable, r) }
func isIdentStart(r rune) bool { return inTable(&identStartTable, r) }
func isIdentPart(r rune) bool  { return inTable(&identPartTable, r) }
func isHexDigit(r rune) bool   { return inTable(&hexDigitTable, r) }
func isSign(r rune) bool       { return inTable(&signTable, r) }
func isExpMarker(r rune) bool  { return inTable(&expMarkerTable, r) }
func isHexMarker(r rune) bool  { return inTable(&hexMarkerTable, r) }
func isParen(r rune) bool      { return inTable(&parenTable, r) }

// isNumberStart reports whether a numeric literal begins at a character.
// A digit always starts a number; a dot starts one only when a digit follows
// (leading-dot floats like .5), so a bare dot falls through to the
// invalid-character path.
func isNumberStart(ch, next rune) bool {
	if isDigit(ch) {
		return true
	}
	return ch == '.' && isDigit(next)
}
