package actor

import "github.com/lucasdlb17/fvtt-trpg/internal/rules"

// prepareCastingDCs derives the spell and jutsu save DCs from the selected
// casting abilities. An unset casting ability leaves the modifier out.
func (a *Actor) prepareCastingDCs() {
	a.Attributes.SpellDC = a.castingDC(a.Attributes.Spellcasting)
	a.Attributes.JutsuDC = a.castingDC(a.Attributes.Jutsucasting)
}

func (a *Actor) castingDC(ability rules.Ability) int {
	dc := 10 + a.Bonuses.SpellDC
	if abl, ok := a.Abilities[ability]; ok {
		dc += abl.Mod
	}
	return dc
}
