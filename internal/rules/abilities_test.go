package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

func TestAbilityModifier(t *testing.T) {
	cases := []struct {
		value int
		want  int
	}{
		{1, -5},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{15, 2},
		{20, 5},
		{30, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rules.AbilityModifier(tc.value), "value %d", tc.value)
	}
}

func TestAbilityModifierFloorLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.IntRange(1, 40).Draw(t, "value")
		mod := rules.AbilityModifier(value)

		// mod is the largest m with 10+2m <= value
		assert.LessOrEqual(t, 10+2*mod, value)
		assert.Greater(t, 10+2*(mod+1), value)
	})
}

func TestSaveAbilitiesCoverEverySave(t *testing.T) {
	for _, save := range rules.Saves {
		ability, ok := rules.SaveAbilities[save]
		assert.True(t, ok, "save %s has no ability", save)
		assert.NotEmpty(t, ability)
	}
}

func TestLevelExpIsMonotonic(t *testing.T) {
	prev := -1
	for level := 0; level <= 21; level++ {
		xp := rules.LevelExp(level)
		assert.GreaterOrEqual(t, xp, prev, "level %d", level)
		prev = xp
	}
}

func TestCRExp(t *testing.T) {
	assert.Equal(t, 0, rules.CRExp(0))
	assert.Equal(t, 300, rules.CRExp(1))
	assert.Equal(t, 1500, rules.CRExp(5))
}

func TestSizeMultiplierDefaultsToOne(t *testing.T) {
	assert.Equal(t, 0.5, rules.SizeMultiplier(rules.SizeTiny))
	assert.Equal(t, 8.0, rules.SizeMultiplier(rules.SizeGargantuan))
	assert.Equal(t, 1.0, rules.SizeMultiplier(rules.Size("unknown")))
}
