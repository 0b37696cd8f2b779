package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func TestSyntaxError_NamedCodeUsesTableMessage(t *testing.T) {
	err := diagnostics.New(diagnostics.OctalLiteralStrict, token.Position{Line: 2, Column: 5})
	assert.Contains(t, err.Error(), "Octal literals are not allowed in strict mode")
	assert.Contains(t, err.Error(), "2:5")
}

func TestSyntaxError_UnexpectedFallsBackToGenericMessage(t *testing.T) {
	err := diagnostics.Unexpected(token.Position{Line: 1, Column: 1}, "")
	assert.Contains(t, err.Error(), "unexpected input")
}

func TestSyntaxError_UnexpectedFormatsMessage(t *testing.T) {
	err := diagnostics.Unexpected(token.Position{}, "expected %s but found %s", "}", "EOF")
	assert.Contains(t, err.Error(), "expected } but found EOF")
}

func TestRecover_CapturesPanickedSyntaxError(t *testing.T) {
	var err error
	func() {
		defer diagnostics.Recover(&err)
		diagnostics.Panic(diagnostics.New(diagnostics.MultipleDefaultClause, token.Position{}))
	}()

	require.Error(t, err)
	se, ok := err.(*diagnostics.SyntaxError)
	require.True(t, ok)
	assert.Equal(t, diagnostics.MultipleDefaultClause, se.Code)
}

func TestRecover_RepanicsOnUnrelatedPanic(t *testing.T) {
	var err error
	assert.Panics(t, func() {
		defer diagnostics.Recover(&err)
		panic("not a syntax error")
	})
}

func TestRecover_LeavesErrNilWhenNoPanic(t *testing.T) {
	var err error
	func() {
		defer diagnostics.Recover(&err)
	}()
	assert.NoError(t, err)
}
