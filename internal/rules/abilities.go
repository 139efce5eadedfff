// Package rules holds the static game-rule tables consumed by the derivation
// engine. Everything here is pure configuration; no table carries behavior.
package rules

// Ability identifies one of the system's ability scores
type Ability string

const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
	AbilityHonor        Ability = "hon"
)

// Abilities lists every ability score in display order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
	AbilityHonor,
}

// PhysicalAbilities are the abilities retained by the keep-physical transform option
var PhysicalAbilities = []Ability{AbilityStrength, AbilityDexterity, AbilityConstitution}

// MentalAbilities are the abilities retained by the keep-mental transform option
var MentalAbilities = []Ability{AbilityIntelligence, AbilityWisdom, AbilityCharisma}

// Save identifies one of the three saving throw categories
type Save string

const (
	SaveFortitude Save = "fortitude"
	SaveReflex    Save = "reflex"
	SaveWill      Save = "will"
)

// Saves lists every saving throw in display order
var Saves = []Save{SaveFortitude, SaveReflex, SaveWill}

// SaveAbilities maps each save to its governing ability
var SaveAbilities = map[Save]Ability{
	SaveFortitude: AbilityConstitution,
	SaveReflex:    AbilityDexterity,
	SaveWill:      AbilityWisdom,
}

// AbilityModifier implements the system-wide modifier law: floor((value-10)/2).
// Integer division in Go truncates toward zero, so negative halves need the
// explicit floor adjustment.
func AbilityModifier(value int) int {
	diff := value - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}
