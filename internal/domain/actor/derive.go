package actor

import (
	"github.com/lucasdlb17/fvtt-trpg/internal/config"
	"github.com/lucasdlb17/fvtt-trpg/internal/formula"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// OriginalRanks carries the untransformed actor's save totals and skill
// proficiency multipliers, used by the polymorph merge rules.
type OriginalRanks struct {
	Saves  map[rules.Save]int
	Skills map[rules.Skill]float64
}

// DeriveOptions supplies the external collaborators a derive cycle needs
type DeriveOptions struct {
	Evaluator formula.Evaluator
	Settings  config.Settings

	// Original is the untransformed form's ranks, set only while polymorphed
	Original *OriginalRanks
}

// Reconcile runs one full derive cycle: base data, active effects, then the
// derived-data stages in dependency order. Every derived field is recomputed
// from stored data; nothing incremental survives between cycles.
func (a *Actor) Reconcile(opts DeriveOptions) {
	a.PreparationWarnings = nil
	a.prepareBaseData()
	a.applyActiveEffects()
	a.prepareDerivedData(opts)
}

func (a *Actor) prepareBaseData() {
	a.resetArmorClass()
}

func (a *Actor) prepareDerivedData(opts DeriveOptions) {
	// Vehicles carry no creature-level derivation: stored proficiency,
	// skills, and casting DCs pass through untouched.
	switch a.Type {
	case TypeCharacter:
		a.prepareCharacterData()
	case TypeNPC:
		a.prepareNPCData()
	}

	a.prepareAbilities()
	a.prepareSaves(opts)
	if a.Type != TypeVehicle {
		a.prepareSkills(opts)
	}
	a.computeArmorClass(opts)
	a.computeEncumbrance(opts)
	if a.Type != TypeVehicle {
		a.prepareCastingDCs()
	}
	a.applySkillAdjustments()
}
