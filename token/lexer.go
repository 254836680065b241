// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
)

type runeWithPos struct {
	r    rune
	line int
	col  int
	// off is the byte offset before the rune.
	off  int
	size int
}

// Lexer splits a WKT document into tokens. Whitespace and '#' comments are
// skipped and never emitted.
type Lexer struct {
	r      *bufio.Reader
	buf    []runeWithPos
	bufPos int
	// pos is the current lexer position.
	// It is the position of the rune that would be read next by nextR.
	pos        Pos
	delimiters DelimiterStyle
}

// NewLexer creates a new instance, ready to start lexing. The filename is
// only used for positional information and may be empty for in-memory text.
func NewLexer(filename string, r io.Reader) *Lexer {
	l := &Lexer{}
	l.r = bufio.NewReader(r)
	l.pos.File = filename
	l.pos.Line = 1
	l.pos.Col = 1

	return l
}

// SetDelimiterStyle restricts which bracket glyphs are accepted.
// The default is DelimitersEither.
func (l *Lexer) SetDelimiterStyle(style DelimiterStyle) {
	l.delimiters = style
}

// Token returns the next WKT token in the input stream.
// At the end of the input stream, Token returns nil, io.EOF.
func (l *Lexer) Token() (Token, error) {
	if err := l.skipIgnored(); err != nil {
		return nil, err
	}

	r1, err := l.nextR()
	if err != nil {
		return nil, err
	}

	l.prevR()

	switch {
	case r1 == '"':
		return l.scanString()
	case r1 == '[' || r1 == '(':
		return l.scanBracketOpen()
	case r1 == ']' || r1 == ')':
		return l.scanBracketClose()
	case r1 == ',':
		return l.scanComma()
	case isNumberStart(r1):
		return l.scanNumber()
	case isSymbolStart(r1):
		return l.scanSymbol()
	default:
		return nil, NewPosError(l.node(), fmt.Sprintf("unexpected character %q", r1)).
			SetCause(ErrInvalidCharacter)
	}
}

// skipIgnored discards whitespace and '#' comments. A comment extends to the
// end of its line, no matter where on the line it starts.
func (l *Lexer) skipIgnored() error {
	for {
		r, err := l.nextR()
		if err != nil {
			return err
		}

		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f':
			continue
		case r == '#':
			for {
				r, err = l.nextR()
				if err != nil {
					return err
				}

				if r == '\n' {
					break
				}
			}
		default:
			l.prevR()

			return nil
		}
	}
}

// nextR reads the next rune and updates the position.
func (l *Lexer) nextR() (rune, error) {
	if l.bufPos < len(l.buf) {
		r := l.buf[l.bufPos]
		l.bufPos++
		l.pos.Line = r.line
		// col needs to be incremented so that the lexer points to the next rune.
		l.pos.Col = r.col + 1
		l.pos.Offset = r.off + r.size

		if r.r == '\n' {
			l.pos.Line++
			l.pos.Col = 1
		}

		return r.r, nil
	}

	r, size, err := l.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return r, io.EOF
		}

		return r, NewPosError(l.node(), "unable to read next rune").SetCause(err)
	}

	if r == unicode.ReplacementChar {
		return r, NewPosError(l.node(), "invalid unicode sequence").SetCause(ErrInvalidCharacter)
	}

	l.buf = append(l.buf, runeWithPos{
		r:    r,
		line: l.pos.Line,
		col:  l.pos.Col,
		off:  l.pos.Offset,
		size: size,
	})
	l.bufPos++

	l.pos.Offset += size
	l.pos.Col++

	if r == '\n' {
		l.pos.Line++
		l.pos.Col = 1
	}

	return r, nil
}

// prevR unreads the current rune. panics if out of balance with nextR.
func (l *Lexer) prevR() rune {
	l.bufPos--
	r := l.buf[l.bufPos]
	l.pos.Line = r.line
	l.pos.Col = r.col
	l.pos.Offset = r.off

	return r.r
}

// node returns a zero-width node for positional errors.
func (l *Lexer) node() Node {
	return NewNode(l.Pos(), l.Pos())
}

// Pos returns the current position of the lexer.
func (l *Lexer) Pos() Pos {
	return l.pos
}

func isNumberStart(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.'
}

func isSymbolStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isSymbolChar(r rune) bool {
	return isSymbolStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
