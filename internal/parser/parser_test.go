package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/parser"
	"github.com/funvibe/ecmaparse/internal/pipeline"
	"github.com/funvibe/ecmaparse/internal/scanner"
)

// parseScript and parseModule build a fresh Parser over src and run it to
// completion, calling the Parser directly instead of going through a full
// pipeline.Run -- these tests exercise grammar behavior, not stage
// wiring.
func parseScript(t *testing.T, src string) *ast.Program {
	t.Helper()
	sc := scanner.New(src)
	p := parser.New(sc, pipeline.Script)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func parseModule(t *testing.T, src string) *ast.Program {
	t.Helper()
	sc := scanner.New(src)
	p := parser.New(sc, pipeline.Module)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func parseScriptErr(t *testing.T, src string) *diagnostics.SyntaxError {
	t.Helper()
	sc := scanner.New(src)
	p := parser.New(sc, pipeline.Script)
	prog, err := p.Parse()
	require.Error(t, err)
	require.Nil(t, prog)
	se, ok := err.(*diagnostics.SyntaxError)
	require.True(t, ok, "expected *diagnostics.SyntaxError, got %T", err)
	return se
}

func TestParser_SimpleStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty_program", ""},
		{"empty_statement", ";"},
		{"debugger_statement", "debugger;"},
		{"var_declaration", "var x = 1;"},
		{"let_declaration_no_init", "let x;"},
		{"const_declaration", "const x = 1;"},
		{"if_else", "if (a) b; else c;"},
		{"while_loop", "while (a) b;"},
		{"do_while_loop", "do a; while (b);"},
		{"labeled_statement", "outer: while (a) continue outer;"},
		{"throw_statement", "throw e;"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog := parseScript(t, tc.input)
			assert.Equal(t, "Program", prog.Type)
			assert.Equal(t, "script", prog.SourceType)
		})
	}
}

func TestParser_ASIInsertsAtNewline(t *testing.T) {
	prog := parseScript(t, "a\nb")
	require.Len(t, prog.Body, 2)
	first, ok := prog.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	firstId, ok := first.Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "a", firstId.Name)

	second, ok := prog.Body[1].(*ast.ExpressionStatement)
	require.True(t, ok)
	secondId, ok := second.Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "b", secondId.Name)
}

func TestParser_PostfixUpdateSuppressedAcrossNewline(t *testing.T) {
	// a newline between an operand and a postfix ++/-- forces ASI before
	// the operator, so `a\n++b` is two statements, not one UpdateExpression
	prog := parseScript(t, "a\n++b")
	require.Len(t, prog.Body, 2)
	_, ok := prog.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	second, ok := prog.Body[1].(*ast.ExpressionStatement)
	require.True(t, ok)
	_, ok = second.Expression.(*ast.UpdateExpression)
	assert.True(t, ok, "expected the second statement to be a prefix UpdateExpression")
}

func TestParser_BinaryPrecedenceFolding(t *testing.T) {
	// 1 + 2 * 3 must fold as 1 + (2 * 3), with * binding tighter than +
	prog := parseScript(t, "1 + 2 * 3;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	top, ok := stmt.Expression.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", top.Operator)

	left, ok := top.Left.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "1", left.Raw)

	right, ok := top.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator)
}

func TestParser_LogicalOperatorsSplitFromBinary(t *testing.T) {
	// a || b && c: && binds tighter, and both nodes are LogicalExpression,
	// never BinaryExpression, per ESTree's short-circuit split
	prog := parseScript(t, "a || b && c;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	top, ok := stmt.Expression.(*ast.LogicalExpression)
	require.True(t, ok)
	assert.Equal(t, "||", top.Operator)

	right, ok := top.Right.(*ast.LogicalExpression)
	require.True(t, ok)
	assert.Equal(t, "&&", right.Operator)
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	prog := parseScript(t, "a = b = c;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	top, ok := stmt.Expression.(*ast.AssignmentExpression)
	require.True(t, ok)
	assert.Equal(t, "=", top.Operator)

	_, ok = top.Right.(*ast.AssignmentExpression)
	assert.True(t, ok, "assignment must nest to the right: a = (b = c)")
}

func TestParser_ArrowFunctionCoverGrammar(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expressionBody bool
	}{
		{"single_param_no_parens", "x => x + 1;", true},
		{"parenthesized_params", "(x, y) => x + y;", true},
		{"block_body", "(x) => { return x; }", false},
		{"no_params", "() => 1;", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog := parseScript(t, tc.input)
			stmt := prog.Body[0].(*ast.ExpressionStatement)
			fn, ok := stmt.Expression.(*ast.ArrowFunctionExpression)
			require.True(t, ok)
			assert.Equal(t, tc.expressionBody, fn.ExpressionBody)
		})
	}
}

func TestParser_ParenthesizedVsSequenceCoverGrammar(t *testing.T) {
	// (a, b) alone is a parenthesized SequenceExpression; the same token
	// run followed by => resolves as arrow params instead (covered above)
	prog := parseScript(t, "(a, b);")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	paren, ok := stmt.Expression.(*ast.ParenthesizedExpression)
	require.True(t, ok)
	seq, ok := paren.Expression.(*ast.SequenceExpression)
	require.True(t, ok)
	assert.Len(t, seq.Expressions, 2)
}

func TestParser_NewMemberCallComposition(t *testing.T) {
	// `new new f()()` -- the inner `new` takes `f` with the first `()`,
	// and the outer `new` takes that NewExpression as its callee with the
	// second `()`, so no CallExpression is produced
	prog := parseScript(t, "new new f()();")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	_, isCall := stmt.Expression.(*ast.CallExpression)
	assert.False(t, isCall)

	outerNew, ok := stmt.Expression.(*ast.NewExpression)
	require.True(t, ok)
	assert.Empty(t, outerNew.Arguments)

	innerNew, ok := outerNew.Callee.(*ast.NewExpression)
	require.True(t, ok)
	assert.Empty(t, innerNew.Arguments)

	callee, ok := innerNew.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "f", callee.Name)
}

func TestParser_TaggedTemplateWithMemberTag(t *testing.T) {
	prog := parseScript(t, "a.b`${c}d`;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	tagged, ok := stmt.Expression.(*ast.TaggedTemplateExpression)
	require.True(t, ok)

	member, ok := tagged.Tag.(*ast.MemberExpression)
	require.True(t, ok)
	assert.False(t, member.Computed)

	require.Len(t, tagged.Quasi.Expressions, 1)
	require.Len(t, tagged.Quasi.Quasis, 2)
	assert.False(t, tagged.Quasi.Quasis[0].Tail)
	assert.True(t, tagged.Quasi.Quasis[1].Tail)
	assert.Equal(t, "d", tagged.Quasi.Quasis[1].Value.Cooked)
}

func TestParser_ForOfWithArrayPatternBinding(t *testing.T) {
	prog := parseScript(t, "for (let [a, b] of xs) ;")
	forOf, ok := prog.Body[0].(*ast.ForOfStatement)
	require.True(t, ok)

	decl, ok := forOf.Left.(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "let", decl.Kind)
	require.Len(t, decl.Declarations, 1)

	pat, ok := decl.Declarations[0].Id.(*ast.ArrayPattern)
	require.True(t, ok)
	require.Len(t, pat.Elements, 2)

	right, ok := forOf.Right.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "xs", right.Name)

	_, ok = forOf.Body.(*ast.EmptyStatement)
	assert.True(t, ok)
}

func TestParser_ClassicForLoopHeaderIsNotAForIn(t *testing.T) {
	prog := parseScript(t, "for (var i = 0; i < 10; i++) ;")
	forStmt, ok := prog.Body[0].(*ast.ForStatement)
	require.True(t, ok)

	init, ok := forStmt.Init.(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "var", init.Kind)

	_, ok = forStmt.Test.(*ast.BinaryExpression)
	assert.True(t, ok)
	_, ok = forStmt.Update.(*ast.UpdateExpression)
	assert.True(t, ok)
}

func TestParser_SwitchAllowsOneDefaultAmongManyCases(t *testing.T) {
	prog := parseScript(t, `switch (x) {
		case 1: a();
		default: b();
		case 2: c();
	}`)
	sw, ok := prog.Body[0].(*ast.SwitchStatement)
	require.True(t, ok)
	require.Len(t, sw.Cases, 3)
	assert.NotNil(t, sw.Cases[0].Test)
	assert.Nil(t, sw.Cases[1].Test, "the default clause has a nil Test")
	assert.NotNil(t, sw.Cases[2].Test)
}

func TestParser_SwitchRejectsSecondDefaultClause(t *testing.T) {
	se := parseScriptErr(t, `switch (x) {
		default: a();
		default: b();
	}`)
	assert.Equal(t, diagnostics.MultipleDefaultClause, se.Code)
}

func TestParser_TryCatchFinally(t *testing.T) {
	prog := parseScript(t, `try { a(); } catch (e) { b(); } finally { c(); }`)
	tryStmt, ok := prog.Body[0].(*ast.TryStatement)
	require.True(t, ok)
	require.NotNil(t, tryStmt.Handler)
	require.NotNil(t, tryStmt.Finalizer)

	param, ok := tryStmt.Handler.Param.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "e", param.Name)
}

func TestParser_TryWithNeitherCatchNorFinallyIsFatal(t *testing.T) {
	parseScriptErr(t, `try { a(); }`)
}

func TestParser_BlockScopedLetThenPostfixUpdate(t *testing.T) {
	prog := parseScript(t, "{ let x = 1; x++ }")
	block, ok := prog.Body[0].(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, block.Body, 2)

	decl, ok := block.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "let", decl.Kind)

	exprStmt, ok := block.Body[1].(*ast.ExpressionStatement)
	require.True(t, ok)
	update, ok := exprStmt.Expression.(*ast.UpdateExpression)
	require.True(t, ok)
	assert.Equal(t, "++", update.Operator)
	assert.False(t, update.Prefix)
}

func TestParser_DirectivePrologueEnablesStrictMode(t *testing.T) {
	se := parseScriptErr(t, `"use strict"; var x = 010;`)
	assert.Equal(t, diagnostics.OctalLiteralStrict, se.Code)
}

func TestParser_OctalLiteralAllowedOutsideStrictMode(t *testing.T) {
	prog := parseScript(t, "var x = 010;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	lit, ok := decl.Declarations[0].Init.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "010", lit.Raw)
}

func TestParser_DeleteUnqualifiedIdentifierStrictModeError(t *testing.T) {
	se := parseScriptErr(t, `"use strict"; delete x;`)
	assert.Equal(t, diagnostics.DeleteUnqualifiedStrict, se.Code)
}

func TestParser_DeleteUnqualifiedIdentifierAllowedNonStrict(t *testing.T) {
	prog := parseScript(t, "delete x;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	unary, ok := stmt.Expression.(*ast.UnaryExpression)
	require.True(t, ok)
	assert.Equal(t, "delete", unary.Operator)
}

func TestParser_ModuleSourceIsStrictFromFirstToken(t *testing.T) {
	se := func() *diagnostics.SyntaxError {
		sc := scanner.New("var x = 010;")
		p := parser.New(sc, pipeline.Module)
		_, err := p.Parse()
		se, ok := err.(*diagnostics.SyntaxError)
		require.True(t, ok)
		return se
	}()
	assert.Equal(t, diagnostics.OctalLiteralStrict, se.Code)
}

func TestParser_ModuleImportAndExport(t *testing.T) {
	prog := parseModule(t, `import a, { b as c } from "mod"; export default a;`)
	require.Len(t, prog.Body, 2)
	assert.Equal(t, "module", prog.SourceType)

	imp, ok := prog.Body[0].(*ast.ImportDeclaration)
	require.True(t, ok)
	require.Len(t, imp.Specifiers, 2)
	_, ok = imp.Specifiers[0].(*ast.ImportDefaultSpecifier)
	assert.True(t, ok)
	_, ok = imp.Specifiers[1].(*ast.ImportSpecifier)
	assert.True(t, ok)

	_, ok = prog.Body[1].(*ast.ExportDefaultDeclaration)
	assert.True(t, ok)
}

func TestParser_ClassDeclarationWithSuperclassAndMethods(t *testing.T) {
	prog := parseScript(t, `class C extends Base {
		constructor() { super(); }
		static greet() { return 1; }
	}`)
	cls, ok := prog.Body[0].(*ast.ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "C", cls.Id.Name)
	require.NotNil(t, cls.SuperClass)

	require.Len(t, cls.Body.Body, 2)
	assert.Equal(t, "constructor", cls.Body.Body[0].Kind)
	assert.True(t, cls.Body.Body[1].Static)
}

func TestParser_ObjectDestructuringAssignment(t *testing.T) {
	prog := parseScript(t, "({ a, b: c } = obj);")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	paren, ok := stmt.Expression.(*ast.ParenthesizedExpression)
	require.True(t, ok)
	assign, ok := paren.Expression.(*ast.AssignmentExpression)
	require.True(t, ok)

	pattern, ok := assign.Left.(*ast.ObjectPattern)
	require.True(t, ok)
	require.Len(t, pattern.Properties, 2)
	assert.True(t, pattern.Properties[0].Shorthand)
	assert.False(t, pattern.Properties[1].Shorthand)
}

func TestParser_LabelledFunctionDeclarationStrictModeError(t *testing.T) {
	se := parseScriptErr(t, `"use strict"; outer: function f() {}`)
	assert.Equal(t, diagnostics.LabelledFunctionStrict, se.Code)
}

func TestParser_LabelledFunctionDeclarationAllowedNonStrict(t *testing.T) {
	prog := parseScript(t, "outer: function f() {}")
	labeled, ok := prog.Body[0].(*ast.LabeledStatement)
	require.True(t, ok)
	_, ok = labeled.Body.(*ast.FunctionDeclaration)
	assert.True(t, ok)
}

func TestParser_YieldDelegationRequiresArgument(t *testing.T) {
	prog := parseScript(t, "function* g() { yield* inner(); }")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	exprStmt := fn.Body.Body[0].(*ast.ExpressionStatement)
	yield, ok := exprStmt.Expression.(*ast.YieldExpression)
	require.True(t, ok)
	assert.True(t, yield.Delegate)
	assert.NotNil(t, yield.Argument)
}

func TestParser_BareYieldHasNoArgumentOrDelegate(t *testing.T) {
	prog := parseScript(t, "function* g() { yield; }")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	exprStmt := fn.Body.Body[0].(*ast.ExpressionStatement)
	yield, ok := exprStmt.Expression.(*ast.YieldExpression)
	require.True(t, ok)
	assert.False(t, yield.Delegate)
	assert.Nil(t, yield.Argument)
}

func TestParser_WithStatementDoesNotEnforceStrictMode(t *testing.T) {
	// with() is disallowed in strict mode per the language, but this
	// parser's With production is not gated on the strict flag
	prog := parseScript(t, `"use strict"; with (o) { a(); }`)
	withStmt, ok := prog.Body[1].(*ast.WithStatement)
	require.True(t, ok)
	_, ok = withStmt.Object.(*ast.Identifier)
	assert.True(t, ok)
}

func TestParser_ReturnASISplitsAcrossNewline(t *testing.T) {
	// `return\na+b` inserts a semicolon after return: the argument is nil
	// and a+b becomes its own statement
	prog := parseScript(t, "function f() { return\na+b }")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	require.Len(t, fn.Body.Body, 2)

	ret, ok := fn.Body.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Nil(t, ret.Argument)

	expr, ok := fn.Body.Body[1].(*ast.ExpressionStatement)
	require.True(t, ok)
	_, ok = expr.Expression.(*ast.BinaryExpression)
	assert.True(t, ok)
}

func TestParser_ReturnArgumentMayContinueOntoNextLine(t *testing.T) {
	// `return a\n+b` keeps a+b as the argument: the newline sits inside
	// the expression, not between return and its argument
	prog := parseScript(t, "function f() { return a\n+b }")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	require.Len(t, fn.Body.Body, 1)

	ret := fn.Body.Body[0].(*ast.ReturnStatement)
	bin, ok := ret.Argument.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator)
}

func TestParser_ReturnOutsideFunctionIsFatal(t *testing.T) {
	parseScriptErr(t, "return 1;")
}

func TestParser_NewTargetMetaProperty(t *testing.T) {
	prog := parseScript(t, "function f() { return new.target; }")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	ret := fn.Body.Body[0].(*ast.ReturnStatement)
	meta, ok := ret.Argument.(*ast.MetaProperty)
	require.True(t, ok)
	assert.Equal(t, "new", meta.Meta.Name)
	assert.Equal(t, "target", meta.Property.Name)
}

func TestParser_MemberExpressionAsDestructuringTarget(t *testing.T) {
	prog := parseScript(t, "[a.b, c] = xs;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expression.(*ast.AssignmentExpression)
	require.True(t, ok)

	pat, ok := assign.Left.(*ast.ArrayPattern)
	require.True(t, ok)
	require.Len(t, pat.Elements, 2)
	_, ok = pat.Elements[0].(*ast.MemberExpression)
	assert.True(t, ok, "a.b is a valid assignment target inside a destructuring pattern")
}

func TestParser_ArrayPatternPreservesElisions(t *testing.T) {
	prog := parseScript(t, "var [, a, , b] = xs;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	pat, ok := decl.Declarations[0].Id.(*ast.ArrayPattern)
	require.True(t, ok)
	require.Len(t, pat.Elements, 4)
	assert.Nil(t, pat.Elements[0])
	assert.NotNil(t, pat.Elements[1])
	assert.Nil(t, pat.Elements[2])
	assert.NotNil(t, pat.Elements[3])
}

func TestParser_RestElementInFinalParameterPosition(t *testing.T) {
	prog := parseScript(t, "function f(a, ...rest) {}")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	require.Len(t, fn.Params, 2)
	_, ok := fn.Params[1].(*ast.RestElement)
	assert.True(t, ok)
}

func TestParser_AnonymousDefaultExports(t *testing.T) {
	prog := parseModule(t, `export default function () {}`)
	def, ok := prog.Body[0].(*ast.ExportDefaultDeclaration)
	require.True(t, ok)
	fn, ok := def.Declaration.(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Nil(t, fn.Id)
}

func TestParser_DeepPrecedenceFold(t *testing.T) {
	// a || b && c | d ^ e & f == g < h >> i + j * k folds with each lower
	// grade enclosing the next higher one
	prog := parseScript(t, "a || b && c | d ^ e & f == g < h >> i + j * k;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)

	or, ok := stmt.Expression.(*ast.LogicalExpression)
	require.True(t, ok)
	require.Equal(t, "||", or.Operator)

	and, ok := or.Right.(*ast.LogicalExpression)
	require.True(t, ok)
	require.Equal(t, "&&", and.Operator)

	bitOr, ok := and.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "|", bitOr.Operator)

	xor, ok := bitOr.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "^", xor.Operator)

	bitAnd, ok := xor.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "&", bitAnd.Operator)

	eq, ok := bitAnd.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "==", eq.Operator)

	lt, ok := eq.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "<", lt.Operator)

	shift, ok := lt.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, ">>", shift.Operator)

	add, ok := shift.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", add.Operator)

	mul, ok := add.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "*", mul.Operator)
}

func TestParser_NodeLocationsSpanTheirTokens(t *testing.T) {
	prog := parseScript(t, "var x = 1;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	loc := decl.GetLoc()
	assert.Equal(t, 0, loc.Start.Offset)

	d := decl.Declarations[0]
	assert.GreaterOrEqual(t, d.GetLoc().Start.Offset, loc.Start.Offset)
	assert.LessOrEqual(t, d.GetLoc().End.Offset, loc.End.Offset)
}
