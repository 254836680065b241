// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/geodesic-go/crswkt/token"
)

// DefaultMaxDepth bounds the node nesting depth unless overridden with
// SetMaxDepth. Real CRS documents nest four or five levels deep, so the
// default leaves plenty of headroom while keeping recursion bounded on
// adversarial input.
const DefaultMaxDepth = 64

// tokenWithError is a struct that wraps a Token and an error that may
// have occurred while reading that Token.
// This type simplifies storing tokens in the parser.
type tokenWithError struct {
	tok token.Token
	err error
}

// Parser reads the token stream of a WKT document into a generic parse
// tree. The grammar is uniform across all keywords:
//
//	node    := SYMBOL '[' arglist ']'
//	arglist := value (',' value)*  |  ε
//	value   := STRING | NUMBER | SYMBOL | node
//
// Keyword-specific knowledge lives entirely in the classifier, which keeps
// the parser tolerant of unknown or future keywords.
type Parser struct {
	lexer *token.Lexer
	// tokenBuffer contains all tokens that need to be processed next.
	// These could be peeked tokens or tokens that were added in the parser.
	// When it is empty, we can call lexer.Token() to get the next token.
	tokenBuffer []tokenWithError
	maxDepth    int
}

// NewParser creates a parser for the given input. The filename is only used
// for positional information and may be empty.
func NewParser(filename string, r io.Reader) *Parser {
	return &Parser{
		lexer:    token.NewLexer(filename, r),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the defensive nesting bound. Values < 1 restore the
// default.
func (p *Parser) SetMaxDepth(n int) {
	if n < 1 {
		n = DefaultMaxDepth
	}

	p.maxDepth = n
}

// SetDelimiterStyle restricts the accepted bracket glyphs, see
// token.DelimiterStyle.
func (p *Parser) SetDelimiterStyle(style token.DelimiterStyle) {
	p.lexer.SetDelimiterStyle(style)
}

// next returns the next token or (nil, io.EOF) if there are no more tokens.
func (p *Parser) next() (token.Token, error) {
	if len(p.tokenBuffer) > 0 {
		twe := p.tokenBuffer[0]
		p.tokenBuffer = p.tokenBuffer[1:] // pop token

		return twe.tok, twe.err
	}

	return p.lexer.Token()
}

// peek lets you look at the next token without advancing the parser.
// Under the hood it does advance the lexer, but by using only next() and
// peek() you will get expected behaviour.
func (p *Parser) peek() (token.Token, error) {
	if len(p.tokenBuffer) > 0 {
		twe := p.tokenBuffer[0]

		return twe.tok, twe.err
	}

	tok, err := p.lexer.Token()

	p.tokenBuffer = append(p.tokenBuffer, tokenWithError{
		tok: tok,
		err: err,
	})

	return tok, err
}

// Parse consumes the whole token stream and returns the single top-level
// node. Anything after the first closed top-level node is an error.
func (p *Parser) Parse() (*Node, error) {
	node, err := p.parseNode(1)
	if err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if errors.Is(err, io.EOF) {
		return node, nil
	}

	if err != nil {
		return nil, err
	}

	if tok.TokenType() == token.TokenBracketClose {
		return nil, token.NewPosError(tok.Pos(), "closing bracket without matching opener").
			SetCause(ErrUnbalancedBrackets)
	}

	return nil, token.NewPosError(tok.Pos(),
		fmt.Sprintf("unexpected %s after the document root", tok.TokenType())).
		SetCause(ErrUnexpectedTrailingInput)
}

// parseNode reads a complete node, starting at its head symbol.
func (p *Parser) parseNode(depth int) (*Node, error) {
	tok, err := p.next()
	if errors.Is(err, io.EOF) {
		return nil, token.NewPosError(p.lexerNode(), "document ends where a node was expected").
			SetCause(ErrExpectedSymbol)
	}

	if err != nil {
		return nil, err
	}

	sym, ok := tok.(*token.Symbol)
	if !ok {
		return nil, token.NewPosError(tok.Pos(),
			fmt.Sprintf("a node must start with a keyword, got %s", tok.TokenType())).
			SetCause(ErrExpectedSymbol)
	}

	return p.parseNodeBody(sym, depth)
}

// parseNodeBody reads the bracketed argument list of a node whose head
// symbol has already been consumed.
func (p *Parser) parseNodeBody(sym *token.Symbol, depth int) (*Node, error) {
	if depth > p.maxDepth {
		return nil, token.NewPosError(sym.Pos(),
			fmt.Sprintf("node %s exceeds the nesting limit of %d", sym.Value, p.maxDepth)).
			SetCause(ErrResourceLimit)
	}

	node := NewNode(sym.Value)
	node.BeginPos = sym.Begin()

	tok, err := p.next()
	if errors.Is(err, io.EOF) {
		return nil, token.NewPosError(sym.Pos(),
			fmt.Sprintf("keyword %s is not followed by an argument list", sym.Value)).
			SetCause(ErrExpectedBracket)
	}

	if err != nil {
		return nil, err
	}

	open, ok := tok.(*token.BracketOpen)
	if !ok {
		return nil, token.NewPosError(tok.Pos(),
			fmt.Sprintf("expected '[' after keyword %s, got %s", sym.Value, tok.TokenType())).
			SetCause(ErrExpectedBracket)
	}

	// An immediately closing bracket is an empty argument list.
	tok, err = p.peek()
	if err == nil {
		if cl, isClose := tok.(*token.BracketClose); isClose {
			p.next() // pop the closing bracket

			node.EndPos = cl.End()

			return node, nil
		}
	}

	for {
		child, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}

		node.AddChildren(child)

		tok, err = p.next()
		if errors.Is(err, io.EOF) {
			return nil, token.NewPosError(p.lexerNode(), "document ends inside an argument list",
				token.NewErrDetail(open.Pos(), "this bracket is never closed")).
				SetCause(ErrUnbalancedBrackets)
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case *token.Comma:
			continue
		case *token.BracketClose:
			node.EndPos = t.End()

			return node, nil
		default:
			return nil, token.NewPosError(tok.Pos(),
				fmt.Sprintf("expected ',' or a closing bracket, got %s", tok.TokenType())).
				SetCause(ErrExpectedBracket)
		}
	}
}

// parseValue reads a single argument. A symbol followed by an opening
// bracket becomes a nested node, a bare symbol stays a scalar.
func (p *Parser) parseValue(depth int) (Child, error) {
	tok, err := p.next()
	if errors.Is(err, io.EOF) {
		return nil, token.NewPosError(p.lexerNode(), "document ends where a value was expected").
			SetCause(ErrUnbalancedBrackets)
	}

	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case *token.String:
		return &StringValue{Position: t.Position, Value: t.Value}, nil
	case *token.Number:
		return &NumberValue{Position: t.Position, Value: t.Value, Literal: t.Literal}, nil
	case *token.Symbol:
		nxt, err := p.peek()
		if err == nil {
			if _, isOpen := nxt.(*token.BracketOpen); isOpen {
				return p.parseNodeBody(t, depth+1)
			}
		} else if !errors.Is(err, io.EOF) {
			return nil, err
		}

		return &SymbolValue{Position: t.Position, Value: t.Value}, nil
	default:
		return nil, token.NewPosError(tok.Pos(),
			fmt.Sprintf("expected a value, got %s", tok.TokenType())).
			SetCause(ErrExpectedSymbol)
	}
}

func (p *Parser) lexerNode() token.Node {
	return token.NewNode(p.lexer.Pos(), p.lexer.Pos())
}
