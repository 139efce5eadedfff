package actor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lucasdlb17/fvtt-trpg/internal/dice"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/actor"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
	"github.com/lucasdlb17/fvtt-trpg/internal/testutils"
)

func TestApplyDamageSoaksTempFirst(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP = actor.Pool{Value: 20, Max: 30, Temp: 5}

	res := a.ApplyDamage(8, 1)

	assert.Equal(t, -5, res.TempDelta)
	assert.Equal(t, -3, res.HPDelta)
	assert.Equal(t, 0, a.Attributes.HP.Temp)
	assert.Equal(t, 17, a.Attributes.HP.Value)
}

func TestApplyDamageMultiplierFloors(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP = actor.Pool{Value: 20, Max: 30}

	a.ApplyDamage(7, 0.5) // floor(3.5) = 3

	assert.Equal(t, 17, a.Attributes.HP.Value)
}

func TestApplyDamageClampsAtDyingFloor(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP = actor.Pool{Value: 5, Max: 30}

	a.ApplyDamage(1000, 1)

	assert.Equal(t, -15, a.Attributes.HP.Value)
}

func TestApplyDamageHealingClampsAtMax(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP = actor.Pool{Value: 25, Max: 30, TempMax: 5}

	res := a.ApplyDamage(20, -1)

	assert.Equal(t, 0, res.TempDelta)
	assert.Equal(t, 10, res.HPDelta)
	assert.Equal(t, 35, a.Attributes.HP.Value)
}

func TestReduceMagicPoints(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.MP = actor.Pool{Value: 10, Max: 10}

	assert.Equal(t, -4, a.ReduceMagicPoints(4))
	assert.Equal(t, 6, a.Attributes.MP.Value)

	// overspending bottoms out at zero
	assert.Equal(t, -6, a.ReduceMagicPoints(100))
	assert.Equal(t, 0, a.Attributes.MP.Value)

	// negative amounts restore, capped at max plus temp max
	a.Attributes.MP.TempMax = 2
	assert.Equal(t, 12, a.ReduceMagicPoints(-100))
	assert.Equal(t, 12, a.Attributes.MP.Value)
}

func TestConvertCurrency(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Currency = map[rules.Denomination]int{
		rules.DenominationCopper: 123,
		rules.DenominationSilver: 5,
		rules.DenominationGold:   12,
	}

	a.ConvertCurrency(false)

	assert.Equal(t, 3, a.Currency[rules.DenominationCopper])
	assert.Equal(t, 7, a.Currency[rules.DenominationSilver]) // 5 + 12 carried, 10 converted up
	assert.Equal(t, 3, a.Currency[rules.DenominationGold])   // 12 + 1 carried, 10 converted up
	assert.Equal(t, 1, a.Currency[rules.DenominationPlatinum])
}

func TestConvertCurrencyIDJModeSkipsPlatinum(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Currency = map[rules.Denomination]int{
		rules.DenominationGold: 25,
	}

	a.ConvertCurrency(true)

	assert.Equal(t, 25, a.Currency[rules.DenominationGold])
	assert.Equal(t, 0, a.Currency[rules.DenominationPlatinum])
}

func TestConvertCurrencyIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
		a.Currency = map[rules.Denomination]int{
			rules.DenominationCopper:   rapid.IntRange(0, 1000).Draw(t, "cp"),
			rules.DenominationSilver:   rapid.IntRange(0, 1000).Draw(t, "sp"),
			rules.DenominationGold:     rapid.IntRange(0, 1000).Draw(t, "gp"),
			rules.DenominationPlatinum: rapid.IntRange(0, 1000).Draw(t, "pp"),
		}
		idj := rapid.Bool().Draw(t, "idj")

		a.ConvertCurrency(idj)
		converted := make(map[rules.Denomination]int, len(a.Currency))
		for d, n := range a.Currency {
			converted[d] = n
		}

		// a second pass finds nothing left to carry
		a.ConvertCurrency(idj)
		assert.Equal(t, converted, a.Currency)
	})
}

func TestRollDeathSaveSkippedWhenNotDying(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP.Value = 10

	res, err := a.RollDeathSave(dice.NewMockRoller())
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestRollDeathSaveSuccessAndStabilize(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP.Value = 0

	roller := dice.NewMockRoller()
	roller.SetRolls([]int{15, 12, 10})

	res, err := a.RollDeathSave(roller)
	require.NoError(t, err)
	assert.Equal(t, actor.DeathSaveSuccess, res.Outcome)
	assert.Equal(t, 1, res.Successes)

	_, err = a.RollDeathSave(roller)
	require.NoError(t, err)

	// the third success stabilizes and clears both counters
	res, err = a.RollDeathSave(roller)
	require.NoError(t, err)
	assert.Equal(t, actor.DeathSaveStable, res.Outcome)
	assert.Equal(t, 0, a.Attributes.Death.Success)
	assert.Equal(t, 0, a.Attributes.Death.Failure)
}

func TestRollDeathSaveSkippedWhenDead(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP.Value = 0
	a.Attributes.Death = actor.DeathSaves{Failure: 3}

	roller := dice.NewMockRoller()
	roller.SetRolls([]int{20})

	res, err := a.RollDeathSave(roller)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, 0, a.Attributes.HP.Value)
}

func TestRollDeathSaveNaturalTwentyRevives(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP.Value = 0
	a.Attributes.Death = actor.DeathSaves{Success: 2, Failure: 2}

	roller := dice.NewMockRoller()
	roller.SetRolls([]int{20})

	res, err := a.RollDeathSave(roller)
	require.NoError(t, err)
	assert.Equal(t, actor.DeathSaveRevived, res.Outcome)
	assert.Equal(t, 1, a.Attributes.HP.Value)
	assert.Equal(t, 0, a.Attributes.Death.Success)
	assert.Equal(t, 0, a.Attributes.Death.Failure)
}

func TestRollDeathSaveNaturalOneCountsTwice(t *testing.T) {
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Attributes.HP.Value = 0

	roller := dice.NewMockRoller()
	roller.SetRolls([]int{1, 5})

	res, err := a.RollDeathSave(roller)
	require.NoError(t, err)
	assert.Equal(t, actor.DeathSaveFailure, res.Outcome)
	assert.Equal(t, 2, res.Failures)

	res, err = a.RollDeathSave(roller)
	require.NoError(t, err)
	assert.Equal(t, actor.DeathSaveDead, res.Outcome)
	assert.Equal(t, 3, a.Attributes.Death.Failure)
}
