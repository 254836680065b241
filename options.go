// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package crswkt

import "github.com/geodesic-go/crswkt/token"

// Options control a parse call. The zero value is the strict default:
// semantic errors abort, both bracket styles are accepted and the nesting
// depth is bounded by parser.DefaultMaxDepth.
type Options struct {
	// Lenient returns the best-effort tree together with all diagnostics
	// instead of failing on the first semantic error. Lex and syntax errors
	// stay fatal: a malformed token or bracket stream cannot be interpreted
	// further.
	//
	// Lenient also downgrades an unsupported root kind to a warning, so
	// sub-fragments such as a bare DATUM[...] can be parsed deliberately.
	Lenient bool

	// MaxDepth bounds the node nesting depth defensively.
	// 0 means parser.DefaultMaxDepth.
	MaxDepth int

	// Delimiters restricts the accepted bracket glyphs.
	// The default accepts both square brackets and parentheses.
	Delimiters token.DelimiterStyle
}
