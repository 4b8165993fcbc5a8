package exprlex

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	TokenConstant TokenType = "CONSTANT"
	TokenVariable TokenType = "VARIABLE"
	TokenOperator TokenType = "OPERATOR"
	TokenLParen   TokenType = "("
	TokenRParen   TokenType = ")"
	TokenComma    TokenType = ","
)

// Token captures lexical information for the parser. Lexeme is the exact
// source substring the token was scanned from; Pos is the 1-based column of
// its first character.
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    int
}
