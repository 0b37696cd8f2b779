// Package scanner tokenizes ES2015 source on demand for the parser: a
// character-at-a-time hand lexer with position tracking, a strict-mode
// flag, multi-token lookahead, state save/restore, a "reinterpret current
// token as regular expression" hook, and the NoLineTerminators helper the
// parser's ASI checks rely on.
//
// The lookahead buffer is never trimmed: the parser's snapshot/restore
// backtracking (GetState/SetState) must be able to rewind to any
// previously produced token, and a single-pass parse never needs the
// memory back.
package scanner

import (
	"github.com/funvibe/ecmaparse/internal/pipeline"
	"github.com/funvibe/ecmaparse/internal/token"
)

var _ pipeline.TokenStream = (*Scanner)(nil)

// State is an opaque snapshot handle the parser saves and restores; it is
// the sole backtracking primitive.
type State struct {
	idx int
}

// Scanner produces an ES2015 token stream on demand, driven by the
// parser.
type Scanner struct {
	src []byte

	// rawPos/rawLine/rawCol track the raw character lexer's cursor, always
	// at or ahead of the last buffered token.
	rawPos  int
	rawLine int
	rawCol  int

	strict bool

	buffer []token.Token
	idx    int // index into buffer of the "current" (not yet consumed) token

	prevEnd token.Position // end position of the last *consumed* token, reported by PrevEnd
}

// New creates a Scanner over source, ready to produce its first token.
func New(source string) *Scanner {
	s := &Scanner{src: []byte(source), rawLine: 1, rawCol: 0}
	s.ensure(0)
	return s
}

// SetStrictMode/StrictMode expose the scanner's strict-mode flag. The
// scanner itself does not change tokenization on this flag -- it exists so
// the parser's context-override helper can save/restore it as it enters
// and leaves directive-prologue-bearing statement lists.
func (s *Scanner) SetStrictMode(strict bool) { s.strict = strict }
func (s *Scanner) StrictMode() bool          { return s.strict }

// ensure lexes ahead until buffer has at least n+1 tokens beyond idx, i.e.
// CurrentToken() and Peek(n) are both available.
func (s *Scanner) ensure(n int) {
	for len(s.buffer)-s.idx <= n {
		tok := s.rawNext()
		s.buffer = append(s.buffer, tok)
		if tok.Type == token.EOF {
			break
		}
	}
}

// CurrentToken returns the token the parser has not yet consumed, without
// consuming it.
func (s *Scanner) CurrentToken() token.Token {
	s.ensure(0)
	if s.idx >= len(s.buffer) {
		return s.eofToken()
	}
	return s.buffer[s.idx]
}

// peekAt returns the token n positions past CurrentToken (peekAt(0) ==
// CurrentToken) without consuming anything. Used internally by IsBefore
// for k-token lookahead.
func (s *Scanner) peekAt(n int) token.Token {
	s.ensure(n)
	if s.idx+n >= len(s.buffer) {
		return s.eofToken()
	}
	return s.buffer[s.idx+n]
}

// PeekToken returns the single token n positions past CurrentToken
// (PeekToken(0) == CurrentToken) without consuming anything -- the
// parser's general-purpose single-token lookahead, distinct from the
// pipeline.TokenStream-shaped Peek below.
func (s *Scanner) PeekToken(n int) token.Token { return s.peekAt(n) }

// Next consumes and returns the next token -- satisfies
// pipeline.TokenStream for stages coded against the narrower interface.
func (s *Scanner) Next() token.Token { return s.ConsumeToken() }

// Peek returns up to n upcoming tokens without consuming them --
// satisfies pipeline.TokenStream.
func (s *Scanner) Peek(n int) []token.Token {
	s.ensure(n)
	end := s.idx + n
	if end > len(s.buffer) {
		end = len(s.buffer)
	}
	return s.buffer[s.idx:end]
}

func (s *Scanner) eofToken() token.Token {
	if len(s.buffer) > 0 {
		last := s.buffer[len(s.buffer)-1]
		return token.Token{Type: token.EOF, Range: token.Range{Start: last.Range.End, End: last.Range.End}}
	}
	return token.Token{Type: token.EOF}
}

// ConsumeToken advances past CurrentToken and returns it.
func (s *Scanner) ConsumeToken() token.Token {
	tok := s.CurrentToken()
	if s.idx < len(s.buffer) {
		s.idx++
	}
	s.prevEnd = tok.Range.End
	return tok
}

// Consume matches CurrentToken against a single literal value (a
// Punctuator or Keyword spelling) and, on match, consumes it.
func (s *Scanner) Consume(literal string) (token.Token, bool) {
	if s.CurrentToken().Is(literal) {
		return s.ConsumeToken(), true
	}
	return token.Token{}, false
}

// ConsumeOneOf matches CurrentToken against any of the given literals.
func (s *Scanner) ConsumeOneOf(literals ...string) (token.Token, bool) {
	if s.CurrentToken().IsOneOf(literals...) {
		return s.ConsumeToken(), true
	}
	return token.Token{}, false
}

// IsBefore is k-token lookahead without consumption: IsBefore("let", "[")
// reports whether CurrentToken is "let" and the token after it is "[" --
// the 2-token sequence the expression-statement restriction needs.
func (s *Scanner) IsBefore(literals ...string) bool {
	for i, lit := range literals {
		if !s.peekAt(i).Is(lit) {
			return false
		}
	}
	return true
}

// NoLineTerminators reports whether CurrentToken follows immediately
// (no intervening line terminator) after the last consumed token -- the
// ASI gate for return/continue/break/throw/yield's optional argument.
func (s *Scanner) NoLineTerminators() bool {
	return !s.CurrentToken().NewlineBefore
}

// Position returns the current (not-yet-consumed) token's start position,
// used as the default location for diagnostics and by the AST builder as a
// node's start position.
func (s *Scanner) Position() token.Position {
	return s.CurrentToken().Range.Start
}

// PrevEnd returns the end position of the last token ConsumeToken
// returned -- what the AST builder stamps as a node's end position after
// consuming that node's final token.
func (s *Scanner) PrevEnd() token.Position {
	return s.prevEnd
}

// GetState/SetState are the sole backtracking primitive: a save/restore
// pair over the buffer index. Since the buffer is never trimmed, any
// previously produced state remains valid to restore to.
func (s *Scanner) GetState() State { return State{idx: s.idx} }
func (s *Scanner) SetState(st State) {
	s.idx = st.idx
	if s.idx > 0 {
		s.prevEnd = s.buffer[s.idx-1].Range.End
	} else {
		s.prevEnd = token.Position{}
	}
}

// ReconsumeCurrentTokenAsRegexp discards CurrentToken (which was lexed
// assuming a leading '/' starts a division/assignment operator) and
// re-lexes from that same source position in regular-expression mode. Any
// tokens already buffered past the current one were lexed under the wrong
// assumption and are discarded; raw lexing resumes from the freshly
// produced regex token's end.
func (s *Scanner) ReconsumeCurrentTokenAsRegexp() token.Token {
	start := s.CurrentToken().Range.Start
	s.rawPos = start.Offset
	s.rawLine = start.Line
	s.rawCol = start.Column

	tok := s.lexRegExp()

	s.buffer = append(s.buffer[:s.idx], tok)
	return s.CurrentToken()
}
