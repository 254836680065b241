// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package parser

import "github.com/geodesic-go/crswkt/token"

// A Child is a single argument of a generic node: either a nested *Node or
// one of the scalar values StringValue, NumberValue and SymbolValue.
type Child interface {
	child()
}

// Node is a generic WKT node: a keyword and its ordered arguments. The
// parser knows nothing about individual keywords, so a Node is produced for
// GEOGCS and FUTURE_CS alike.
type Node struct {
	token.Position
	Keyword  string
	Children []Child
}

// NewNode creates a new generic node.
func NewNode(keyword string) *Node {
	return &Node{Keyword: keyword}
}

// AddChildren appends arguments to a node and can be used builder-style.
func (n *Node) AddChildren(children ...Child) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) child() {}

// StringValue is a quoted string argument.
type StringValue struct {
	token.Position
	Value string
}

// NewStringValue creates a detached string argument, mainly for tests.
func NewStringValue(value string) *StringValue {
	return &StringValue{Value: value}
}

func (v *StringValue) child() {}

// NumberValue is a numeric argument. Literal preserves the source spelling.
type NumberValue struct {
	token.Position
	Value   float64
	Literal string
}

// NewNumberValue creates a detached numeric argument, mainly for tests.
func NewNumberValue(value float64, literal string) *NumberValue {
	return &NumberValue{Value: value, Literal: literal}
}

func (v *NumberValue) child() {}

// SymbolValue is a bare symbol argument, e.g. the NORTH in
// AXIS["latitude", NORTH]. A symbol followed by a bracket is a nested node
// instead and never becomes a SymbolValue.
type SymbolValue struct {
	token.Position
	Value string
}

// NewSymbolValue creates a detached symbol argument, mainly for tests.
func NewSymbolValue(value string) *SymbolValue {
	return &SymbolValue{Value: value}
}

func (v *SymbolValue) child() {}
