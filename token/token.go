// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package token

// A Token is an interface for all possible token types.
type Token interface {
	TokenType() TokenType
	Pos() *Position
}

type TokenType string

const (
	TokenString       TokenType = "String"
	TokenNumber       TokenType = "Number"
	TokenSymbol       TokenType = "Symbol"
	TokenBracketOpen  TokenType = "BracketOpen"
	TokenBracketClose TokenType = "BracketClose"
	TokenComma        TokenType = "Comma"
)

// A String token is a run of text delimited by double quotes in the source.
// The quotes are not part of Value. WKT strings have no escape sequences.
type String struct {
	Position
	Value string
}

func (t *String) TokenType() TokenType {
	return TokenString
}

func (t *String) String() string {
	return t.Value
}

// A Number token is an optionally signed decimal literal, exponent form permitted.
type Number struct {
	Position
	Value float64
	// Literal is the exact source spelling, so that consumers can
	// distinguish "49" from "49.0".
	Literal string
}

func (t *Number) TokenType() TokenType {
	return TokenNumber
}

func (t *Number) String() string {
	return t.Literal
}

// A Symbol is a bare identifier: a keyword heading a node, or an
// orientation value such as NORTH or UP appearing as a plain argument.
type Symbol struct {
	Position
	Value string
}

func (t *Symbol) TokenType() TokenType {
	return TokenSymbol
}

func (t *Symbol) String() string {
	return t.Value
}

// BracketOpen is a '[' or '(' that starts an argument list.
type BracketOpen struct {
	Position
	// Glyph is the delimiter as written, '[' or '('.
	Glyph rune
}

func (t *BracketOpen) TokenType() TokenType {
	return TokenBracketOpen
}

// BracketClose is a ']' or ')' that ends an argument list. The closing
// glyph is not required to match the style of its opener.
type BracketClose struct {
	Position
	Glyph rune
}

func (t *BracketClose) TokenType() TokenType {
	return TokenBracketClose
}

// Comma separates arguments.
type Comma struct {
	Position
}

func (t *Comma) TokenType() TokenType {
	return TokenComma
}
