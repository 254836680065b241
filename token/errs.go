// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package token

import "errors"

var (
	// ErrUnterminatedString is reported when a quoted string has no closing
	// quote before the end of its line or the end of the input.
	ErrUnterminatedString = errors.New("unterminated string")
	// ErrInvalidCharacter is reported for characters that can start no token.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrBracketStyle is reported when a bracket glyph is disallowed by the
	// configured DelimiterStyle.
	ErrBracketStyle = errors.New("bracket style not allowed")
)
