package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/config"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

// The strict-mode gate: the early errors that only apply when the
// scanner's strict-mode flag is set, kept in one file so every
// enforcement site reads from the same place.

// identMode selects how permissively parseIdentifierLike classifies the
// current token as a name.
type identMode int

const (
	// allowAll accepts any keyword, boolean/null literal, or identifier as
	// a bare name -- member property names and export specifiers.
	allowAll identMode = iota
	// allowNothing accepts only a plain, non-future-reserved identifier --
	// class names, import bindings, namespace aliases.
	allowNothing
	// mixed accepts an identifier or a future-reserved word, but rejects
	// the future-reserved word if currently in strict mode -- binding
	// identifiers and labels.
	mixed
)

func (p *Parser) parseIdentifierLike(mode identMode) *ast.Identifier {
	start := p.start()
	tok := p.sc.CurrentToken()

	switch mode {
	case allowAll:
		if tok.Type != token.Identifier && tok.Type != token.Keyword &&
			tok.Type != token.BooleanLiteral && tok.Type != token.NullLiteral {
			p.fatalf("expected a name but found %s", tok)
		}
	case allowNothing:
		if tok.Type != token.Identifier || config.FutureReserved[tok.Value] {
			p.fatalf("expected an identifier but found %s", tok)
		}
	case mixed:
		isFutureReserved := config.FutureReserved[tok.Value]
		if tok.Type != token.Identifier && !isFutureReserved {
			p.fatalf("expected an identifier but found %s", tok)
		}
		if isFutureReserved && p.sc.StrictMode() {
			p.fatalf("%q is a reserved word in strict mode", tok.Value)
		}
	}

	p.sc.ConsumeToken()
	return finish(p, ast.NewIdentifier(tok.Value), start)
}

// parseBindingIdentifier is the common case: a mixed-mode identifier used
// as a binding name or label.
func (p *Parser) parseBindingIdentifier() *ast.Identifier {
	return p.parseIdentifierLike(mixed)
}

// checkStrictDelete enforces that "delete identifier" is a fatal error in
// strict mode.
func (p *Parser) checkStrictDelete(operator string, argument ast.Expression) {
	if operator != "delete" || !p.sc.StrictMode() {
		return
	}
	if _, ok := argument.(*ast.Identifier); ok {
		diagnostics.Panic(diagnostics.New(diagnostics.DeleteUnqualifiedStrict, argument.GetLoc().Start))
	}
}

// checkStrictOctalLiteral enforces the legacy octal numeric literal
// restriction; tok.Octal is set by the scanner for any token matching
// `^0[0-7]+$`.
func (p *Parser) checkStrictOctalLiteral(tok token.Token) {
	if tok.Octal && p.sc.StrictMode() {
		diagnostics.Panic(diagnostics.New(diagnostics.OctalLiteralStrict, tok.Range.Start))
	}
}

// checkStrictLabelledFunction enforces that a FunctionDeclaration directly
// under a LabeledStatement is a fatal error in strict mode.
func (p *Parser) checkStrictLabelledFunction(pos token.Position) {
	if p.sc.StrictMode() {
		diagnostics.Panic(diagnostics.New(diagnostics.LabelledFunctionStrict, pos))
	}
}
