// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package parser

import "errors"

var (
	// ErrExpectedSymbol is reported when a node head is not a bare keyword.
	ErrExpectedSymbol = errors.New("expected keyword at node head")
	// ErrExpectedBracket is reported when an opening bracket, a separator or
	// a closing bracket is required but something else follows.
	ErrExpectedBracket = errors.New("expected bracket")
	// ErrUnbalancedBrackets is reported when the input ends inside a node or
	// a closing bracket has no matching opener.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	// ErrUnexpectedTrailingInput is reported for tokens after the closed
	// top-level node.
	ErrUnexpectedTrailingInput = errors.New("unexpected trailing input")
	// ErrResourceLimit is reported when the configured nesting bound is
	// exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)
