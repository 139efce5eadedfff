package rules

// RemarkableAthleteAbilities are the abilities whose skills gain the
// remarkable-athlete half-proficiency floor
var RemarkableAthleteAbilities = map[Ability]bool{
	AbilityStrength:     true,
	AbilityDexterity:    true,
	AbilityConstitution: true,
}
