// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package crswkt

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredChild is reported when a required child of a node is
	// absent.
	ErrMissingRequiredChild = errors.New("missing required child")
	// ErrDuplicateChild is reported when a child that may occur at most once
	// occurs again.
	ErrDuplicateChild = errors.New("duplicate child")
	// ErrMalformedTowgs84 is reported when a TOWGS84 node does not carry
	// exactly seven numbers.
	ErrMalformedTowgs84 = errors.New("malformed TOWGS84")
	// ErrUnsupportedRootKind is reported when the document root is not a
	// coordinate system node.
	ErrUnsupportedRootKind = errors.New("unsupported root kind")
	// ErrInvalidAxisCount is reported when a coordinate system defines a
	// number of axes its kind does not permit.
	ErrInvalidAxisCount = errors.New("invalid axis count")
)

// Severity classifies how a Diagnostic affects a strict parse.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}

	return "warning"
}

// A Diagnostic describes a single structural violation found by the
// validator. Err is one of the sentinel kinds above and can be matched with
// errors.Is.
type Diagnostic struct {
	Severity Severity
	Err      error
	Message  string
	Node     *Node
}

func (d Diagnostic) String() string {
	msg := fmt.Sprintf("%s: %s", d.Severity, d.Message)
	if d.Node != nil {
		begin := d.Node.Begin()
		msg += fmt.Sprintf(" at %d:%d", begin.Line, begin.Col)
	}

	return msg
}

// SemanticError aborts a strict parse. It wraps the first Error-level
// diagnostic, so errors.Is works against the sentinel kinds.
type SemanticError struct {
	Diagnostic Diagnostic
}

func (e *SemanticError) Error() string {
	return e.Diagnostic.String()
}

func (e *SemanticError) Unwrap() error {
	return e.Diagnostic.Err
}
