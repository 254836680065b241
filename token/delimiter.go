// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package token

// DelimiterStyle restricts which bracket glyphs the lexer accepts. WKT
// tooling in the wild uses square brackets and parentheses interchangeably,
// so the default accepts both.
type DelimiterStyle int

const (
	// DelimitersEither accepts '[' and '(' as openers and ']' and ')' as
	// closers, in any combination.
	DelimitersEither DelimiterStyle = iota
	// DelimitersSquareOnly accepts only '[' and ']'.
	DelimitersSquareOnly
	// DelimitersParenOnly accepts only '(' and ')'.
	DelimitersParenOnly
)

func (d DelimiterStyle) String() string {
	switch d {
	case DelimitersSquareOnly:
		return "square"
	case DelimitersParenOnly:
		return "paren"
	default:
		return "either"
	}
}

// allows reports whether the glyph may be used under this style.
func (d DelimiterStyle) allows(r rune) bool {
	switch d {
	case DelimitersSquareOnly:
		return r == '[' || r == ']'
	case DelimitersParenOnly:
		return r == '(' || r == ')'
	default:
		return true
	}
}
