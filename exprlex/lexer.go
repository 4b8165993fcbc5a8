package exprlex

import "fmt"

// Config carries the optional construction settings for a Lexer. The zero
// value builds an unbound lexer with the default operator set; bind an
// expression with Reset before calling Run.
type Config struct {
	// Source is the expression to tokenize. Empty means no input is bound.
	Source string
	// Operators overrides DefaultOperators when non-empty. Multi-character
	// operators like == and <= are matched greedily (longest wins).
	Operators []string
	// StartPos positions the cursor when Source is set; values below 1 mean
	// the beginning of the input.
	StartPos int
}

// Lexer tokenizes one expression at a time. It is not safe for concurrent
// use; run independent inputs on independent instances.
type Lexer struct {
	source string
	chars  []rune
	cur    *cursor
	trie   *opTrie
	splits map[string][]rune
	errs   []*LexError
	bound  bool
}

// New builds a lexer from cfg. An omitted operator set shares the
// process-wide default trie; a custom set gets its own.
func New(cfg Config) *Lexer {
	l := &Lexer{
		splits: make(map[string][]rune),
		trie:   defaultTrie,
		cur:    newCursor(nil, 1),
	}
	if len(cfg.Operators) > 0 {
		l.trie = newOpTrie(cfg.Operators)
	}
	if cfg.Source != "" {
		l.bind(cfg.Source)
		if cfg.StartPos > 1 {
			l.cur.seek(cfg.StartPos)
		}
	}
	return l
}

// Reset rebinds the lexer to a new expression and rewinds the cursor to the
// beginning. Character splits are cached per source string, so resetting to
// an expression seen before reuses the earlier split.
func (l *Lexer) Reset(source string) {
	l.bind(source)
}

// UseOperators replaces the operator set and rebuilds the match trie. An
// empty set restores the shared default. The bound input, if any, is left
// untouched, so operator-only changes between runs are cheap.
func (l *Lexer) UseOperators(operators ...string) {
	if len(operators) == 0 {
		l.trie = defaultTrie
		return
	}
	l.trie = newOpTrie(operators)
}

func (l *Lexer) bind(source string) {
	chars, ok := l.splits[source]
	if !ok {
		chars = []rune(source)
		l.splits[source] = chars
	}
	l.source = source
	l.chars = chars
	l.cur = newCursor(chars, 1)
	l.bound = true
}

// Run tokenizes the bound expression from the cursor's current position to
// end of input. The contract is all-or-nothing: either a complete token list
// with no error, or a nil list and an error carrying every diagnostic
// collected during the pass. Calling Run again without a Reset starts at the
// exhausted cursor and yields an empty list, so pair each Run with a Reset
// (or a bound construction).
func (l *Lexer) Run() ([]Token, error) {
	if !l.bound {
		return nil, ErrMissingInput
	}
	l.errs = l.errs[:0]

	var tokens []Token
	for l.cur.ch != eof {
		if tok, ok := l.next(); ok {
			tokens = append(tokens, tok)
		}
		l.cur.consume(1)
	}

	if len(l.errs) > 0 {
		return nil, combineErrors(l.errs)
	}
	return tokens, nil
}

// next produces at most one token for the character under the cursor.
// Sub-lexers leave the cursor on the last character they consumed; the
// driver's unconditional one-position advance afterwards guarantees progress
// on every input, valid or not.
func (l *Lexer) next() (Token, bool) {
	ch := l.cur.ch
	switch {
	case isWhitespace(ch):
		return Token{}, false
	case isParen(ch):
		kind := TokenLParen
		if ch == ')' {
			kind = TokenRParen
		}
		return l.token(kind, string(ch)), true
	case isIdentStart(ch):
		return l.scanIdentifier(), true
	case ch == ',':
		return l.token(TokenComma, ","), true
	}

	if op, ok := l.trie.match(l.cur); ok {
		tok := l.token(TokenOperator, op)
		l.cur.consume(len([]rune(op)) - 1)
		return tok, true
	}

	if isNumberStart(ch, l.cur.peek()) {
		start := l.cur.pos
		lexeme := l.scanNumber()
		return Token{Type: TokenConstant, Lexeme: lexeme, Pos: start}, true
	}

	l.record(ErrInvalidCharacter, l.cur.pos, fmt.Sprintf("invalid character %q", ch))
	return Token{}, false
}

// scanIdentifier consumes the identifier beginning at the cursor and leaves
// the cursor on its last character.
func (l *Lexer) scanIdentifier() Token {
	start := l.cur.pos
	for isIdentPart(l.cur.peek()) {
		l.cur.consume(1)
	}
	return Token{Type: TokenVariable, Lexeme: l.span(start), Pos: start}
}

// span returns the exact source substring from a start position through the
// cursor's current position, inclusive.
func (l *Lexer) span(start int) string {
	return string(l.chars[start-1 : l.cur.pos])
}

func (l *Lexer) token(kind TokenType, lexeme string) Token {
	return Token{Type: kind, Lexeme: lexeme, Pos: l.cur.pos}
}

func (l *Lexer) record(kind ErrorKind, pos int, message string) {
	l.errs = append(l.errs, &LexError{
		Kind:    kind,
		Message: message,
		Pos:     pos,
		Source:  l.source,
	})
}
