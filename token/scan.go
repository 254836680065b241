// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// scanString reads a double-quoted string. The WKT grammar has no escape
// sequences, so the next quote always terminates the token. A newline or the
// end of the input before the closing quote is an error.
func (l *Lexer) scanString() (*String, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil {
		return nil, err
	}

	if r != '"' {
		return nil, NewPosError(l.node(), "expected '\"'")
	}

	var tmp bytes.Buffer

	for {
		r, err = l.nextR()
		if errors.Is(err, io.EOF) || r == '\n' {
			return nil, NewPosError(NewNode(startPos, l.Pos()), "string is missing its closing quote").
				SetCause(ErrUnterminatedString)
		}

		if err != nil {
			return nil, err
		}

		if r == '"' {
			break
		}

		tmp.WriteRune(r)
	}

	str := &String{}
	str.Value = tmp.String()
	str.Position.BeginPos = startPos
	str.Position.EndPos = l.pos

	return str, nil
}

// scanNumber reads an optionally signed decimal literal with an optional
// fraction and exponent.
func (l *Lexer) scanNumber() (*Number, error) {
	startPos := l.Pos()

	var tmp bytes.Buffer

	sawExp := false
	prevExp := false

	for {
		r, err := l.nextR()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		ok := false

		switch {
		case isDigit(r) || r == '.':
			ok = true
		case r == '+' || r == '-':
			ok = tmp.Len() == 0 || prevExp
		case r == 'e' || r == 'E':
			ok = !sawExp && tmp.Len() > 0
			sawExp = ok
		}

		if !ok {
			l.prevR()

			break
		}

		prevExp = r == 'e' || r == 'E'

		tmp.WriteRune(r)
	}

	lit := tmp.String()

	value, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, NewPosError(NewNode(startPos, l.Pos()),
			fmt.Sprintf("malformed number literal %q", lit)).
			SetCause(ErrInvalidCharacter)
	}

	num := &Number{}
	num.Value = value
	num.Literal = lit
	num.Position.BeginPos = startPos
	num.Position.EndPos = l.pos

	return num, nil
}

// scanSymbol reads a bare run of letters, digits and underscores.
func (l *Lexer) scanSymbol() (*Symbol, error) {
	startPos := l.Pos()

	var tmp bytes.Buffer

	for {
		r, err := l.nextR()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		if !isSymbolChar(r) {
			l.prevR()

			break
		}

		tmp.WriteRune(r)
	}

	if tmp.Len() == 0 {
		return nil, NewPosError(l.node(), "expected symbol")
	}

	sym := &Symbol{}
	sym.Value = tmp.String()
	sym.Position.BeginPos = startPos
	sym.Position.EndPos = l.pos

	return sym, nil
}

func (l *Lexer) scanBracketOpen() (*BracketOpen, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil {
		return nil, err
	}

	if r != '[' && r != '(' {
		return nil, NewPosError(l.node(), "expected '[' or '('")
	}

	if !l.delimiters.allows(r) {
		return nil, NewPosError(NewNode(startPos, l.Pos()),
			fmt.Sprintf("delimiter %q is not allowed in %s style", r, l.delimiters)).
			SetCause(ErrBracketStyle)
	}

	open := &BracketOpen{Glyph: r}
	open.Position.BeginPos = startPos
	open.Position.EndPos = l.pos

	return open, nil
}

func (l *Lexer) scanBracketClose() (*BracketClose, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil {
		return nil, err
	}

	if r != ']' && r != ')' {
		return nil, NewPosError(l.node(), "expected ']' or ')'")
	}

	if !l.delimiters.allows(r) {
		return nil, NewPosError(NewNode(startPos, l.Pos()),
			fmt.Sprintf("delimiter %q is not allowed in %s style", r, l.delimiters)).
			SetCause(ErrBracketStyle)
	}

	cl := &BracketClose{Glyph: r}
	cl.Position.BeginPos = startPos
	cl.Position.EndPos = l.pos

	return cl, nil
}

func (l *Lexer) scanComma() (*Comma, error) {
	startPos := l.Pos()

	r, err := l.nextR()
	if err != nil {
		return nil, err
	}

	if r != ',' {
		return nil, NewPosError(l.node(), "expected ','")
	}

	comma := &Comma{}
	comma.Position.BeginPos = startPos
	comma.Position.EndPos = l.pos

	return comma, nil
}
