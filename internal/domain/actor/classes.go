package actor

import (
	"math"

	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// prepareCharacterData aggregates owned class items into level, hit dice
// pool, base attack bonus, and proficiency, then derives experience progress.
// Equipped gear contributes its stealth penalty to the shared armor penalty.
func (a *Actor) prepareCharacterData() {
	level := 0
	hitDice := 0
	bab := 0
	for _, cls := range a.Classes() {
		if cls.Class == nil {
			continue
		}
		levels := cls.Class.Levels
		if levels < 1 {
			levels = 1
		}
		level += levels
		hitDice += levels - cls.Class.HitDiceUsed
		bab += int(math.Floor(float64(levels) * rules.BABFormulas[cls.Class.BAB]))
	}

	penalty := 0
	for _, it := range a.Items {
		if it.Type == item.TypeEquipment && it.Equipped {
			penalty += it.StealthPenalty
		}
	}

	a.Details.Level = level
	a.Details.HalfLevel = level / 2
	a.Attributes.HD = hitDice
	a.Attributes.BAB.Value = bab
	a.Attributes.BAB.Total = bab
	a.Attributes.Prof = 3 + level
	a.Attributes.ArmorPenalty = penalty

	prev := rules.LevelExp(level - 1)
	next := rules.LevelExp(level)
	a.Details.XP.Max = next
	span := next - prev
	pct := 0
	if span > 0 {
		pct = int(math.Round(float64(a.Details.XP.Value-prev) * 100 / float64(span)))
	}
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	a.Details.XP.Pct = pct
}

// prepareNPCData derives experience from challenge rating and sets the
// CR-based proficiency bonus. Casting levels default to the challenge rating
// when casting is enabled without an explicit level.
func (a *Actor) prepareNPCData() {
	cr := a.Details.CR
	a.Details.XP.Value = rules.CRExp(cr)

	effective := cr
	if effective < 1 {
		effective = 1
	}
	a.Attributes.Prof = (effective + 7) / 4
	a.Details.HalfLevel = a.Details.Level / 2

	if a.Attributes.Spellcasting != "" && a.Details.SpellLevel == nil {
		lvl := effective
		a.Details.SpellLevel = &lvl
	}
	if a.Attributes.Jutsucasting != "" && a.Details.JutsuLevel == nil {
		lvl := effective
		a.Details.JutsuLevel = &lvl
	}
}
