package actor

import (
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// Clone returns a deep copy of the actor, items and effects included.
// Derived warning state is not carried over.
func (a *Actor) Clone() *Actor {
	out := *a
	out.PreparationWarnings = nil

	out.Abilities = make(map[rules.Ability]*AbilityScore, len(a.Abilities))
	for k, v := range a.Abilities {
		c := *v
		out.Abilities[k] = &c
	}
	out.Saves = make(map[rules.Save]*SaveThrow, len(a.Saves))
	for k, v := range a.Saves {
		c := *v
		out.Saves[k] = &c
	}
	out.Skills = make(map[rules.Skill]*SkillRank, len(a.Skills))
	for k, v := range a.Skills {
		c := *v
		out.Skills[k] = &c
	}

	if a.Details.SpellLevel != nil {
		v := *a.Details.SpellLevel
		out.Details.SpellLevel = &v
	}
	if a.Details.JutsuLevel != nil {
		v := *a.Details.JutsuLevel
		out.Details.JutsuLevel = &v
	}

	out.Currency = make(map[rules.Denomination]int, len(a.Currency))
	for k, v := range a.Currency {
		out.Currency[k] = v
	}
	out.Resources = make(map[string]*Resource, len(a.Resources))
	for k, v := range a.Resources {
		c := *v
		if v.Max != nil {
			m := *v.Max
			c.Max = &m
		}
		out.Resources[k] = &c
	}
	out.Spells = cloneSlotPools(a.Spells)
	out.Jutsus = cloneSlotPools(a.Jutsus)

	if a.Flags.TransformOptions != nil {
		c := *a.Flags.TransformOptions
		out.Flags.TransformOptions = &c
	}
	if a.Flags.SkillBonuses != nil {
		out.Flags.SkillBonuses = make(map[string]int, len(a.Flags.SkillBonuses))
		for k, v := range a.Flags.SkillBonuses {
			out.Flags.SkillBonuses[k] = v
		}
	}

	out.Items = make([]*item.Item, len(a.Items))
	for i, it := range a.Items {
		out.Items[i] = it.Clone()
	}
	out.Effects = make([]*Effect, len(a.Effects))
	for i, e := range a.Effects {
		out.Effects[i] = e.Clone()
	}

	out.Attributes.AC.EquippedArmor = nil
	out.Attributes.AC.EquippedShield = nil
	out.Attributes.AC.Warnings = nil
	return &out
}

func cloneSlotPools(in map[string]*SlotPool) map[string]*SlotPool {
	out := make(map[string]*SlotPool, len(in))
	for k, v := range in {
		c := *v
		if v.Override != nil {
			o := *v.Override
			c.Override = &o
		}
		out[k] = &c
	}
	return out
}
