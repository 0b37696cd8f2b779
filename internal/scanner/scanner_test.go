package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funvibe/ecmaparse/internal/token"
)

// collectTypes drains a fresh Scanner over src down to (and including)
// EOF, returning the token types in order.
func collectTypes(src string) []token.Type {
	s := New(src)
	var types []token.Type
	for {
		tok := s.Next()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			return types
		}
	}
}

func TestScanner_PunctuatorMaximalMunch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"arrow", "=>", []string{"=>"}},
		{"strict_equals_over_equals", "===", []string{"==="}},
		{"equals_then_equals", "====", []string{"===", "="}},
		{"shift_assign", ">>>=", []string{">>>="}},
		{"spread_not_three_dots", "....", []string{"...", "."}},
		{"logical_and", "&&", []string{"&&"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.input)
			var got []string
			for {
				tok := s.Next()
				if tok.Type == token.EOF {
					break
				}
				got = append(got, tok.Value)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestScanner_IdentifierVsKeyword(t *testing.T) {
	s := New("function let of x")
	tok := s.Next()
	assert.Equal(t, token.Keyword, tok.Type)
	assert.Equal(t, "function", tok.Value)

	// contextual keywords lex as plain identifiers; the parser, not the
	// scanner, resolves them by grammar position
	tok = s.Next()
	assert.Equal(t, token.Identifier, tok.Type)
	assert.Equal(t, "let", tok.Value)

	tok = s.Next()
	assert.Equal(t, token.Identifier, tok.Type)
	assert.Equal(t, "of", tok.Value)

	tok = s.Next()
	assert.Equal(t, token.Identifier, tok.Type)
	assert.Equal(t, "x", tok.Value)
}

func TestScanner_NewlineBeforeTracksASI(t *testing.T) {
	s := New("a\nb")
	first := s.Next()
	assert.False(t, first.NewlineBefore)
	second := s.Next()
	assert.True(t, second.NewlineBefore)
}

func TestScanner_LegacyOctalLiteral(t *testing.T) {
	s := New("010")
	tok := s.Next()
	assert.Equal(t, token.NumericLiteral, tok.Type)
	assert.True(t, tok.Octal, "010 must be flagged as a legacy octal literal")
}

func TestScanner_NonOctalLeadingZeroDecimal(t *testing.T) {
	s := New("0.5")
	tok := s.Next()
	assert.Equal(t, token.NumericLiteral, tok.Type)
	assert.False(t, tok.Octal)
}

func TestScanner_StringRawIncludesQuotes(t *testing.T) {
	s := New(`"use strict"`)
	tok := s.Next()
	assert.Equal(t, token.StringLiteral, tok.Type)
	assert.Equal(t, "use strict", tok.Value)
	assert.Equal(t, `"use strict"`, tok.Raw, "Raw must retain the delimiting quotes so directive-prologue detection can match on it")
}

func TestScanner_LegacyOctalEscapeInString(t *testing.T) {
	s := New(`"\051"`)
	tok := s.Next()
	assert.Equal(t, token.StringLiteral, tok.Type)
	assert.True(t, tok.Octal)
}

func TestScanner_TemplateHeadAndContinuation(t *testing.T) {
	s := New("`a${b}c`")
	head := s.Next()
	assert.Equal(t, token.Template, head.Type)
	assert.True(t, head.Head)
	assert.False(t, head.Tail)
	assert.Equal(t, "a", head.Value)

	assert.Equal(t, "b", s.Next().Value)
	cont := s.LexTemplateContinuation()
	assert.Equal(t, token.Template, cont.Type)
	assert.False(t, cont.Head)
	assert.True(t, cont.Tail)
	assert.Equal(t, "c", cont.Value)
}

func TestScanner_GetSetStateBacktracks(t *testing.T) {
	s := New("a b c")
	s.Next()
	mark := s.GetState()
	second := s.Next()
	assert.Equal(t, "b", second.Value)

	s.SetState(mark)
	replayed := s.Next()
	assert.Equal(t, second.Value, replayed.Value)
}

func TestScanner_PeekDoesNotConsume(t *testing.T) {
	s := New("a b")
	peeked := s.PeekToken(0)
	assert.Equal(t, "a", peeked.Value)
	next := s.Next()
	assert.Equal(t, "a", next.Value)
}

func TestScanner_ReconsumeCurrentTokenAsRegexp(t *testing.T) {
	s := New("/abc/g")
	// CurrentToken was lexed assuming "/" starts a division operator;
	// the parser asks for a re-lex before ever consuming it.
	assert.Equal(t, "/", s.CurrentToken().Value)
	re := s.ReconsumeCurrentTokenAsRegexp()
	assert.Equal(t, token.RegularExpression, re.Type)
}

func TestScanner_EOFIsStable(t *testing.T) {
	s := New("x")
	s.Next()
	first := s.Next()
	second := s.Next()
	assert.Equal(t, token.EOF, first.Type)
	assert.Equal(t, token.EOF, second.Type)
}

func TestScanner_OctalFlagIndependentOfStrictMode(t *testing.T) {
	s := New("010")
	s.SetStrictMode(true)
	assert.True(t, s.StrictMode())
	tok := s.Next()
	// the scanner still reports the literal as octal regardless of strict
	// mode; the parser's strict-mode gate turns that flag into a fatal
	// error
	assert.True(t, tok.Octal)
}
