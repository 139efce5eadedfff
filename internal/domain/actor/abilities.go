package actor

import "github.com/lucasdlb17/fvtt-trpg/internal/rules"

// proficiencyTerm is the additive proficiency contribution to a d20 total
func proficiencyTerm(level int, proficient bool) int {
	if proficient {
		return 3 + level
	}
	return level / 2
}

// prepareAbilities derives each ability's modifier, check bonus, and DC
func (a *Actor) prepareAbilities() {
	for _, abl := range a.Abilities {
		abl.Mod = rules.AbilityModifier(abl.Value)
		abl.CheckBonus = a.Bonuses.Check
		abl.DC = 10 + abl.Mod + a.Bonuses.SpellDC
	}
}

// prepareSaves derives each saving throw total. Diamond soul forces
// proficiency in every save before the proficiency term is computed. With
// merge-saves active a proficient save's total is raised to the original
// form's total; non-proficient saves keep their own.
func (a *Actor) prepareSaves(opts DeriveOptions) {
	mergeSaves := a.Flags.Polymorphed &&
		a.Flags.TransformOptions != nil && a.Flags.TransformOptions.MergeSaves &&
		opts.Original != nil

	for code, sv := range a.Saves {
		if a.Flags.DiamondSoul {
			sv.Proficient = 1
		}
		if abl, ok := a.Abilities[sv.Ability]; ok {
			sv.Mod = abl.Mod
		} else {
			sv.Mod = 0
		}
		sv.Prof = proficiencyTerm(a.Details.Level, sv.Proficient > 0)
		sv.Save = sv.Mod + sv.Prof + sv.SaveBonus + a.Bonuses.Save
		if mergeSaves && sv.Proficient > 0 {
			if orig, ok := opts.Original.Saves[code]; ok && orig > sv.Save {
				sv.Save = orig
			}
		}
	}
}
