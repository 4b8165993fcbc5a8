package exprlex

import "errors"

// ErrorKind classifies a lexical diagnostic.
type ErrorKind string

const (
	ErrUnterminatedHexLiteral   ErrorKind = "UnterminatedHexLiteral"
	ErrUnterminatedFloatLiteral ErrorKind = "UnterminatedFloatLiteral"
	ErrUnterminatedExponent     ErrorKind = "UnterminatedExponent"
	ErrInvalidCharacter         ErrorKind = "InvalidCharacter"
)

// ErrMissingInput is returned by Run when no expression was ever bound.
var ErrMissingInput = errors.New("no expression bound: call Reset before Run")

// LexError is a single positioned diagnostic. Pos is the 1-based column the
// caret frame points at; Source is the full expression being tokenized.
type LexError struct {
	Kind    ErrorKind
	Message string
	Pos     int
	Source  string
}

func (e *LexError) Error() string {
	frame := formatCodeFrame(e.Source, e.Pos)
	if frame == "" {
		return e.Message
	}
	return e.Message + "\n" + frame
}

func combineErrors(errs []*LexError) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := ""
	for _, err := range errs {
		if msg != "" {
			msg += "\n\n"
		}
		msg += err.Error()
	}
	return errors.New(msg)
}
