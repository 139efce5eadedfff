package actor

import (
	"math"

	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// prepareSkills derives each skill total. The stored proficiency multiplier
// is quantized to 0.5 steps within [0,2] before feat floors and the polymorph
// merge are applied.
func (a *Actor) prepareSkills(opts DeriveOptions) {
	mergeSkills := a.Flags.Polymorphed &&
		a.Flags.TransformOptions != nil && a.Flags.TransformOptions.MergeSkills &&
		opts.Original != nil

	for code, sk := range a.Skills {
		value := math.Round(sk.Value*2) / 2
		if value < 0 {
			value = 0
		} else if value > 2 {
			value = 2
		}

		if a.Flags.RemarkableAthlete && value < 0.5 && rules.RemarkableAthleteAbilities[sk.Ability] {
			value = 0.5
		}
		if a.Flags.JackOfAllTrades && value < 0.5 {
			value = 0.5
		}
		if mergeSkills {
			if orig, ok := opts.Original.Skills[code]; ok && orig > value {
				value = orig
			}
		}
		sk.Value = value

		if abl, ok := a.Abilities[sk.Ability]; ok {
			sk.Mod = abl.Mod
		} else {
			sk.Mod = 0
		}
		sk.Prof = proficiencyTerm(a.Details.Level, value > 0)
		sk.Total = sk.Mod + sk.Prof + sk.Bonus + a.Bonuses.Check + a.Bonuses.Skill
	}
}

// applySkillAdjustments folds per-key flat bonuses from flags onto derived
// skill and save totals after the main derivation pass. Skills subject to the
// armor penalty also absorb the aggregated penalty from equipped gear.
func (a *Actor) applySkillAdjustments() {
	for code, sk := range a.Skills {
		adj := a.Flags.SkillBonuses[string(code)]
		if rules.ArmorPenaltySkills[code] && a.Attributes.ArmorPenalty != 0 {
			adj += a.Attributes.ArmorPenalty
		}
		sk.Total += adj
	}
	for code, sv := range a.Saves {
		sv.Save += a.Flags.SkillBonuses[string(code)]
	}
}
