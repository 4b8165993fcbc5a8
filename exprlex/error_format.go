package exprlex

import "strings"

// formatCodeFrame renders the expression with a caret on a second line under
// the given 1-based column. Columns past the end clamp to one past the last
// character, so errors at end of input still point somewhere visible.
func formatCodeFrame(source string, col int) string {
	if source == "" {
		return ""
	}

	width := len([]rune(source))
	if col < 1 {
		col = 1
	}
	if col > width+1 {
		col = width + 1
	}

	return source + "\n" + strings.Repeat(" ", col-1) + "^"
}
