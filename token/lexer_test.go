// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *TestSet
		wantErr error
	}{
		{
			name: "empty",
			text: "",
			want: NewTestSet(),
		},

		{
			name: "whitespace only",
			text: " \t\r\n",
			want: NewTestSet(),
		},

		{
			name: "keyword",
			text: "GEOGCS",
			want: NewTestSet().Symbol("GEOGCS"),
		},

		{
			name: "string",
			text: `"OSGB 1936"`,
			want: NewTestSet().String("OSGB 1936"),
		},

		{
			name: "empty string",
			text: `""`,
			want: NewTestSet().String(""),
		},

		{
			name: "integer",
			text: "400000",
			want: NewTestSet().Number(400000),
		},

		{
			name: "negative integer",
			text: "-111",
			want: NewTestSet().Number(-111),
		},

		{
			name: "explicit positive",
			text: "+42",
			want: NewTestSet().Number(42),
		},

		{
			name: "decimal",
			text: "6377563.396",
			want: NewTestSet().Number(6377563.396),
		},

		{
			name: "leading dot",
			text: ".5",
			want: NewTestSet().Number(0.5),
		},

		{
			name: "exponent",
			text: "1e-5",
			want: NewTestSet().Number(1e-5),
		},

		{
			name: "upper exponent with sign",
			text: "2.5E+6",
			want: NewTestSet().Number(2.5e6),
		},

		{
			name: "brackets and comma",
			text: "[ ] ( ) ,",
			want: NewTestSet().
				BracketOpen('[').
				BracketClose(']').
				BracketOpen('(').
				BracketClose(')').
				Comma(),
		},

		{
			name: "unit node",
			text: `UNIT["degree",0.0174532925199433]`,
			want: NewTestSet().
				Symbol("UNIT").
				BracketOpen('[').
				String("degree").
				Comma().
				Number(0.0174532925199433).
				BracketClose(']'),
		},

		{
			name: "axis direction symbol",
			text: `AXIS["latitude", NORTH]`,
			want: NewTestSet().
				Symbol("AXIS").
				BracketOpen('[').
				String("latitude").
				Comma().
				Symbol("NORTH").
				BracketClose(']'),
		},

		{
			name: "full line comment",
			text: "# just a comment\nGEOGCS",
			want: NewTestSet().Symbol("GEOGCS"),
		},

		{
			name: "trailing comment",
			text: "GEOGCS # trailing\n",
			want: NewTestSet().Symbol("GEOGCS"),
		},

		{
			name: "comment between arguments",
			text: "375, # dx\n-111",
			want: NewTestSet().Number(375).Comma().Number(-111),
		},

		{
			name: "comment at end of input",
			text: "375 # no newline after this",
			want: NewTestSet().Number(375),
		},

		{
			name:    "unterminated string",
			text:    `"OSGB 1936`,
			wantErr: ErrUnterminatedString,
		},

		{
			name:    "string broken by newline",
			text:    "\"OSGB\n1936\"",
			wantErr: ErrUnterminatedString,
		},

		{
			name:    "invalid character",
			text:    "GEOGCS % 5",
			wantErr: ErrInvalidCharacter,
		},

		{
			name:    "malformed number",
			text:    "1.2.3",
			wantErr: ErrInvalidCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := parseTokens(tt.text, DelimitersEither)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.want.Assert(tokens, t)
		})
	}
}

func TestLexerDelimiterStyle(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		style   DelimiterStyle
		wantErr bool
	}{
		{name: "square in square style", text: "[]", style: DelimitersSquareOnly},
		{name: "paren in paren style", text: "()", style: DelimitersParenOnly},
		{name: "paren in square style", text: "()", style: DelimitersSquareOnly, wantErr: true},
		{name: "square in paren style", text: "[]", style: DelimitersParenOnly, wantErr: true},
		{name: "mixed in either style", text: "[)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTokens(tt.text, tt.style)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrBracketStyle)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, err := parseTokens("UNIT[\n\"degree\"]", DelimitersEither)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	sym := tokens[0].(*Symbol)
	require.Equal(t, 1, sym.Begin().Line)
	require.Equal(t, 1, sym.Begin().Col)
	require.Equal(t, 1, sym.End().Line)
	require.Equal(t, 5, sym.End().Col)

	str := tokens[2].(*String)
	require.Equal(t, 2, str.Begin().Line)
	require.Equal(t, 1, str.Begin().Col)
	require.Equal(t, 9, str.End().Col)
}

func TestLexerNumberLiteral(t *testing.T) {
	tokens, err := parseTokens("49.0, 49", DelimitersEither)
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	require.Equal(t, "49.0", tokens[0].(*Number).Literal)
	require.Equal(t, "49", tokens[2].(*Number).Literal)
	require.Equal(t, tokens[0].(*Number).Value, tokens[2].(*Number).Value)
}

// test utils

func parseTokens(text string, style DelimiterStyle) ([]Token, error) {
	l := NewLexer("", strings.NewReader(text))
	l.SetDelimiterStyle(style)

	var tokens []Token

	for {
		tok, err := l.Token()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}

		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, tok)
	}
}

type TestSet struct {
	checker []func(tok Token) error
}

func NewTestSet() *TestSet {
	return &TestSet{}
}

func (ts *TestSet) Symbol(value string) *TestSet {
	ts.checker = append(ts.checker, func(tok Token) error {
		if sym, ok := tok.(*Symbol); ok {
			if sym.Value != value {
				return fmt.Errorf("Symbol: expected '%s' but got '%s'", value, sym.Value)
			}

			return nil
		}

		return fmt.Errorf("expected Symbol but got %s", tok.TokenType())
	})

	return ts
}

func (ts *TestSet) String(value string) *TestSet {
	ts.checker = append(ts.checker, func(tok Token) error {
		if str, ok := tok.(*String); ok {
			if str.Value != value {
				return fmt.Errorf("String: expected '%s' but got '%s'", value, str.Value)
			}

			return nil
		}

		return fmt.Errorf("expected String but got %s", tok.TokenType())
	})

	return ts
}

func (ts *TestSet) Number(value float64) *TestSet {
	ts.checker = append(ts.checker, func(tok Token) error {
		if num, ok := tok.(*Number); ok {
			if num.Value != value {
				return fmt.Errorf("Number: expected %v but got %v", value, num.Value)
			}

			return nil
		}

		return fmt.Errorf("expected Number but got %s", tok.TokenType())
	})

	return ts
}

func (ts *TestSet) BracketOpen(glyph rune) *TestSet {
	ts.checker = append(ts.checker, func(tok Token) error {
		if open, ok := tok.(*BracketOpen); ok {
			if open.Glyph != glyph {
				return fmt.Errorf("BracketOpen: expected %q but got %q", glyph, open.Glyph)
			}

			return nil
		}

		return fmt.Errorf("expected BracketOpen but got %s", tok.TokenType())
	})

	return ts
}

func (ts *TestSet) BracketClose(glyph rune) *TestSet {
	ts.checker = append(ts.checker, func(tok Token) error {
		if cl, ok := tok.(*BracketClose); ok {
			if cl.Glyph != glyph {
				return fmt.Errorf("BracketClose: expected %q but got %q", glyph, cl.Glyph)
			}

			return nil
		}

		return fmt.Errorf("expected BracketClose but got %s", tok.TokenType())
	})

	return ts
}

func (ts *TestSet) Comma() *TestSet {
	ts.checker = append(ts.checker, func(tok Token) error {
		if _, ok := tok.(*Comma); ok {
			return nil
		}

		return fmt.Errorf("expected Comma but got %s", tok.TokenType())
	})

	return ts
}

func (ts *TestSet) Assert(tokens []Token, t *testing.T) {
	t.Helper()

	require.Len(t, tokens, len(ts.checker))

	for i, check := range ts.checker {
		require.NoError(t, check(tokens[i]), "token %d", i)
	}
}
