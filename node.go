// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package crswkt

import "github.com/geodesic-go/crswkt/token"

// Node is a classified CRS WKT node. The whole tree is built in a single
// parse call and is read-only afterwards; none of the accessors mutate it,
// so a tree may be shared between goroutines freely.
//
// Scalar arguments are bucketed by their kind, nested nodes keep their
// encounter order. Nothing from the source document is dropped: arguments
// of unrecognized keywords stay available through the generic accessors.
type Node struct {
	token.Position

	kind     Kind
	strings  []string
	numbers  []float64
	literals []string
	symbols  []string
	children []*Node
}

// Kind returns the construct this node describes.
func (n *Node) Kind() Kind {
	return n.kind
}

// Known reports whether the node's keyword is part of the recognized set.
func (n *Node) Known() bool {
	return n.kind.Known()
}

// Name returns the node's quoted name, or the empty string if it has none.
// For AUTHORITY nodes this is the registry namespace, matching the WKT
// source order.
func (n *Node) Name() string {
	if len(n.strings) == 0 {
		return ""
	}

	return n.strings[0]
}

// Strings returns all quoted string arguments in encounter order. The
// returned slice must not be modified.
func (n *Node) Strings() []string {
	return n.strings
}

// Numbers returns all flat numeric arguments in encounter order, e.g. the
// seven TOWGS84 shift parameters. The returned slice must not be modified.
func (n *Node) Numbers() []float64 {
	return n.numbers
}

// NumberLiterals returns the source spellings of Numbers, index for index.
func (n *Node) NumberLiterals() []string {
	return n.literals
}

// Symbols returns all bare symbol arguments in encounter order.
func (n *Node) Symbols() []string {
	return n.symbols
}

// Children returns all nested nodes in encounter order. The returned slice
// must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Find returns the first nested node of the given kind, or nil.
func (n *Node) Find(kind Kind) *Node {
	for _, c := range n.children {
		if c.kind == kind {
			return c
		}
	}

	return nil
}

// FindAll returns all nested nodes of the given kind in encounter order.
func (n *Node) FindAll(kind Kind) []*Node {
	var result []*Node

	for _, c := range n.children {
		if c.kind == kind {
			result = append(result, c)
		}
	}

	return result
}

// An Authority identifies a construct in an external registry, e.g. EPSG.
// The code is recorded as an opaque string and never resolved.
type Authority struct {
	Namespace string
	Code      string
}

// Authority returns the node's AUTHORITY as a (namespace, code) pair.
// The second return value is false if the node has no AUTHORITY child.
func (n *Node) Authority() (Authority, bool) {
	auth := n.Find(KindAuthority)
	if auth == nil {
		return Authority{}, false
	}

	a := Authority{Namespace: auth.Name()}

	switch {
	case len(auth.strings) > 1:
		a.Code = auth.strings[1]
	case len(auth.literals) > 0:
		// codes are usually quoted, but a bare numeric code occurs in the
		// wild and is kept verbatim
		a.Code = auth.literals[0]
	}

	return a, true
}

// A Parameter is a named numeric projection parameter.
type Parameter struct {
	Name  string
	Value float64
}

// Parameters returns the node's PARAMETER children as ordered (name, value)
// pairs.
func (n *Node) Parameters() []Parameter {
	var result []Parameter

	for _, c := range n.FindAll(KindParameter) {
		p := Parameter{Name: c.Name()}
		if v, ok := c.Value(); ok {
			p.Value = v
		}

		result = append(result, p)
	}

	return result
}

// An Axis is a named coordinate axis with an orientation.
type Axis struct {
	Name      string
	Direction Direction
}

// Axes returns the node's AXIS children as ordered (name, direction) pairs.
func (n *Node) Axes() []Axis {
	var result []Axis

	for _, c := range n.FindAll(KindAxis) {
		a := Axis{Name: c.Name()}
		if d, ok := c.Direction(); ok {
			a.Direction = d
		}

		result = append(result, a)
	}

	return result
}

// Direction returns the axis orientation of an AXIS node.
func (n *Node) Direction() (Direction, bool) {
	if n.kind != KindAxis || len(n.symbols) == 0 {
		return "", false
	}

	return Direction(n.symbols[0]), true
}

// Value returns the node's single numeric argument: the value of a
// PARAMETER, the longitude of a PRIMEM or the conversion factor of a UNIT.
func (n *Node) Value() (float64, bool) {
	if len(n.numbers) == 0 {
		return 0, false
	}

	return n.numbers[0], true
}

// DatumType returns the datum type code of a VERT_DATUM or LOCAL_DATUM.
func (n *Node) DatumType() (int, bool) {
	if n.kind != KindVertDatum && n.kind != KindLocalDatum {
		return 0, false
	}

	if len(n.numbers) == 0 {
		return 0, false
	}

	return int(n.numbers[0]), true
}

// ToWGS84 returns the seven datum shift parameters. Called on a DATUM it
// looks up the TOWGS84 child, called on a TOWGS84 node it returns the
// node's own values.
func (n *Node) ToWGS84() ([]float64, bool) {
	tw := n
	if n.kind != KindToWGS84 {
		tw = n.Find(KindToWGS84)
		if tw == nil {
			return nil, false
		}
	}

	return tw.numbers, true
}

// CoordinateSystems returns the nested coordinate system nodes of a
// COMPD_CS in encounter order.
func (n *Node) CoordinateSystems() []*Node {
	var result []*Node

	for _, c := range n.children {
		if crsKinds[c.kind] {
			result = append(result, c)
		}
	}

	return result
}
