// Package exprlex tokenizes arithmetic-style expressions. It turns a raw
// expression string into an ordered list of typed tokens for a downstream
// parser:
//   - Numeric constants: integers, hex (0x1F), floats (3.14, .5), and
//     scientific notation (1e10, 2.5e-3). Lexemes preserve the exact source
//     spelling.
//   - Identifiers: [A-Za-z_][A-Za-z0-9_]*. No keyword layer; classifying
//     identifiers further is the caller's business.
//   - Operators: matched greedily against a configurable set via a prefix
//     trie, so multi-character operators like == and <= win over their
//     prefixes. The default set is + - * / ^ %.
//   - Parentheses and commas.
//
// Lexical errors do not stop the scan: every diagnostic in the input is
// collected and the run fails as a whole, each error carrying a caret frame
// pointing at the offending column. Input is ASCII-oriented and supplied up
// front; there is no streaming mode.
package exprlex
