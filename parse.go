// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package crswkt

import (
	"io"
	"strings"

	"github.com/geodesic-go/crswkt/parser"
)

// Parse reads a single WKT CRS document from text and returns the
// classified root node together with the validator's diagnostics.
//
// With the default strict options the first Error-level diagnostic aborts
// the call with a *SemanticError and no tree is returned. In lenient mode
// the best-effort tree is returned alongside the diagnostics and the caller
// decides how to proceed. Lexical and syntactic failures are always fatal
// and surface as *token.PosError wrapping the corresponding sentinel.
//
// Parsing is pure and keeps no state between calls; it is safe to call
// concurrently from multiple goroutines.
func Parse(text string, opts Options) (*Node, []Diagnostic, error) {
	return ParseReader("", strings.NewReader(text), opts)
}

// ParseReader is Parse for streamed input. The filename is only used for
// positional information and may be empty.
func ParseReader(filename string, r io.Reader, opts Options) (*Node, []Diagnostic, error) {
	p := parser.NewParser(filename, r)
	p.SetMaxDepth(opts.MaxDepth)
	p.SetDelimiterStyle(opts.Delimiters)

	generic, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}

	root := Classify(generic)

	rootSeverity := SeverityError
	if opts.Lenient {
		rootSeverity = SeverityWarning
	}

	diags := Validate(root, rootSeverity)

	if !opts.Lenient {
		for _, d := range diags {
			if d.Severity == SeverityError {
				return nil, diags, &SemanticError{Diagnostic: d}
			}
		}
	}

	return root, diags, nil
}
