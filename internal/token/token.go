package token

import "fmt"

// Token carries the minimal lexical information the parser attaches to AST
// nodes. The semantic analyzer only reads it for diagnostic positions.
type Token struct {
	Lexeme string
	File   string
	Line   int
	Column int
}

// At is a convenience constructor used by tests and by parsers that build
// nodes programmatically.
func At(lexeme, file string, line, column int) Token {
	return Token{Lexeme: lexeme, File: file, Line: line, Column: column}
}

// Position renders the token's source position as "file:line:column".
// A zero token renders as "<unknown>".
func (t Token) Position() string {
	if t.File == "" && t.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", t.File, t.Line, t.Column)
}
