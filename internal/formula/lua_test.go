package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasdlb17/fvtt-trpg/internal/formula"
)

func TestEvaluateArithmetic(t *testing.T) {
	e := formula.NewLuaEvaluator()

	v, err := e.Evaluate("10 + 2 * 3", nil)
	require.NoError(t, err)
	assert.Equal(t, 16.0, v)
}

func TestEvaluateSubstitutesReferences(t *testing.T) {
	e := formula.NewLuaEvaluator()
	data := map[string]float64{
		"attributes.ac.base": 10,
		"details.halfLevel":  2,
		"abilities.dex.mod":  3,
	}

	v, err := e.Evaluate("@attributes.ac.base + @details.halfLevel + @abilities.dex.mod", data)
	require.NoError(t, err)
	assert.Equal(t, 15.0, v)
}

func TestEvaluateMathFunctions(t *testing.T) {
	e := formula.NewLuaEvaluator()

	v, err := e.Evaluate("math.floor(@abilities.str.value / 2)", map[string]float64{
		"abilities.str.value": 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestEvaluateMissingReference(t *testing.T) {
	e := formula.NewLuaEvaluator()

	_, err := e.Evaluate("@abilities.dex.mod + 1", map[string]float64{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abilities.dex.mod")
}

func TestEvaluateEmptyFormula(t *testing.T) {
	e := formula.NewLuaEvaluator()

	_, err := e.Evaluate("   ", nil)
	assert.Error(t, err)
}

func TestEvaluateParseFailure(t *testing.T) {
	e := formula.NewLuaEvaluator()

	_, err := e.Evaluate("10 +", nil)
	assert.Error(t, err)
}

func TestEvaluateNonNumericResult(t *testing.T) {
	e := formula.NewLuaEvaluator()

	_, err := e.Evaluate(`"armor"`, nil)
	assert.Error(t, err)
}

func TestEvaluateSandboxStripsFileAccess(t *testing.T) {
	e := formula.NewLuaEvaluator()

	_, err := e.Evaluate(`dofile("x")`, nil)
	assert.Error(t, err)
}

func TestEvaluateRunawayLoopIsCutOff(t *testing.T) {
	e := formula.NewLuaEvaluator()

	_, err := e.Evaluate("(function() while true do end end)()", nil)
	assert.Error(t, err)
}
