package exprlex

// eof is the sentinel returned by cursor reads past the last character.
const eof rune = 0

// cursor owns the read position within a pre-split expression. Positions are
// 1-based; pos may reach len(chars)+1, at which point ch is the eof sentinel.
type cursor struct {
	chars []rune
	pos   int
	ch    rune
}

func newCursor(chars []rune, pos int) *cursor {
	c := &cursor{chars: chars}
	c.seek(pos)
	return c
}

func (c *cursor) seek(pos int) {
	if pos < 1 {
		pos = 1
	}
	c.pos = pos
	c.ch = c.at(pos)
}

func (c *cursor) at(pos int) rune {
	if pos < 1 || pos > len(c.chars) {
		return eof
	}
	return c.chars[pos-1]
}

// peek returns the character just after the current position without moving.
func (c *cursor) peek() rune {
	return c.at(c.pos + 1)
}

// consume advances the position by n, rebinds ch to the character at the new
// position (or eof), and returns it. It is the only mutator of cursor state.
func (c *cursor) consume(n int) rune {
	c.pos += n
	c.ch = c.at(c.pos)
	return c.ch
}
