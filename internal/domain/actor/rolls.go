package actor

import (
	"github.com/lucasdlb17/fvtt-trpg/internal/dice"
)

// DeathSaveOutcome classifies the result of one death saving throw
type DeathSaveOutcome string

const (
	DeathSaveNone     DeathSaveOutcome = ""
	DeathSaveSuccess  DeathSaveOutcome = "success"
	DeathSaveFailure  DeathSaveOutcome = "failure"
	DeathSaveRevived  DeathSaveOutcome = "revived"
	DeathSaveStable   DeathSaveOutcome = "stable"
	DeathSaveDead     DeathSaveOutcome = "dead"
)

// DeathSaveResult reports one death saving throw and the resulting counters
type DeathSaveResult struct {
	Roll      int              `json:"roll"`
	Outcome   DeathSaveOutcome `json:"outcome"`
	Successes int              `json:"successes"`
	Failures  int              `json:"failures"`
}

// RollDeathSave rolls a death saving throw. It returns nil without rolling
// when the actor is not dying (hit points above zero), has already
// stabilized with three successes, or is dead with three failures. A natural
// 20 revives the actor at one hit point; a natural 1 counts as two failures.
// Stabilizing on the third success clears both counters.
func (a *Actor) RollDeathSave(roller dice.Roller) (*DeathSaveResult, error) {
	death := &a.Attributes.Death
	if a.Attributes.HP.Value > 0 || death.Success >= 3 || death.Failure >= 3 {
		return nil, nil
	}

	roll, err := roller.Roll(1, 20, 0)
	if err != nil {
		return nil, err
	}
	res := &DeathSaveResult{Roll: roll.Total}

	switch {
	case roll.Total == 20:
		death.Success = 0
		death.Failure = 0
		a.Attributes.HP.Value = 1
		res.Outcome = DeathSaveRevived
	case roll.Total >= 10:
		death.Success = clampDeathCounter(death.Success + 1)
		if death.Success >= 3 {
			death.Success = 0
			death.Failure = 0
			res.Outcome = DeathSaveStable
		} else {
			res.Outcome = DeathSaveSuccess
		}
	default:
		failures := 1
		if roll.Total == 1 {
			failures = 2
		}
		death.Failure = clampDeathCounter(death.Failure + failures)
		if death.Failure >= 3 {
			res.Outcome = DeathSaveDead
		} else {
			res.Outcome = DeathSaveFailure
		}
	}

	res.Successes = death.Success
	res.Failures = death.Failure
	return res, nil
}

func clampDeathCounter(v int) int {
	if v < 0 {
		return 0
	}
	if v > 3 {
		return 3
	}
	return v
}
