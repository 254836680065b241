// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package token

import "strconv"

// Node contains access to the start and end positions of a token.
type Node interface {
	Begin() Pos
	End() Pos
}

// A Pos describes a resolved position within a document.
type Pos struct {
	// File contains the file path, or the empty string for in-memory documents.
	File string
	// Line denotes the one-based line number in the denoted File.
	Line int
	// Col denotes the one-based column number in the denoted Line.
	Col int
	// Offset is the zero-based byte offset from the start of the document.
	Offset int
}

// String returns the content in the "file:line:col" format.
func (p Pos) String() string {
	return p.File + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Position spans the begin and the end of a token and satisfies Node.
type Position struct {
	BeginPos, EndPos Pos
}

func (p Position) Begin() Pos {
	return p.BeginPos
}

func (p Position) End() Pos {
	return p.EndPos
}

// Pos makes every token addressable as a unit for positional errors.
func (p *Position) Pos() *Position {
	return p
}

type defaultNode struct {
	begin, end Pos
}

func (d defaultNode) Begin() Pos {
	return d.begin
}

func (d defaultNode) End() Pos {
	return d.end
}

func NewNode(begin, end Pos) Node {
	return defaultNode{begin, end}
}
