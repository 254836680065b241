// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package crswkt

import "github.com/geodesic-go/crswkt/parser"

// Classify turns a generic parse tree into a typed tree. Children are
// classified before their parent, and selection happens by the kind of each
// argument instead of its position, so documents with children in
// non-canonical order classify the same as canonical ones.
//
// Classification never fails: unrecognized keywords become fallback nodes
// that keep all their arguments.
func Classify(g *parser.Node) *Node {
	n := &Node{
		Position: g.Position,
		kind:     Kind(g.Keyword),
	}

	for _, child := range g.Children {
		switch v := child.(type) {
		case *parser.Node:
			n.children = append(n.children, Classify(v))
		case *parser.StringValue:
			n.strings = append(n.strings, v.Value)
		case *parser.NumberValue:
			n.numbers = append(n.numbers, v.Value)
			n.literals = append(n.literals, v.Literal)
		case *parser.SymbolValue:
			n.symbols = append(n.symbols, v.Value)
		}
	}

	return n
}
