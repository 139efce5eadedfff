package rules

// Skill identifies a trainable skill
type Skill string

// Performance skills
const (
	SkillPerformArt    Skill = "atuArt"
	SkillPerformDrama  Skill = "atuDra"
	SkillPerformDance  Skill = "atuDan"
	SkillPerformMusic  Skill = "atuMus"
	SkillPerformOratory Skill = "atuOra"
)

// Knowledge skills
const (
	SkillKnowArcana      Skill = "conArc"
	SkillKnowEngineering Skill = "conEng"
	SkillKnowGeography   Skill = "conGeo"
	SkillKnowHistory     Skill = "conHis"
	SkillKnowNature      Skill = "conNat"
	SkillKnowNobility    Skill = "conNob"
	SkillKnowPlanes      Skill = "conPla"
	SkillKnowReligion    Skill = "conRel"
	SkillKnowDungeons    Skill = "conMas"
)

// General skills
const (
	SkillAcrobatics    Skill = "acr"
	SkillHandleAnimal  Skill = "ani"
	SkillAthletics     Skill = "ath"
	SkillRide          Skill = "cav"
	SkillHeal          Skill = "cur"
	SkillDiplomacy     Skill = "dip"
	SkillDeception     Skill = "eng"
	SkillStealth       Skill = "fur"
	SkillSpellcraft    Skill = "ide"
	SkillInitiative    Skill = "init"
	SkillIntimidation  Skill = "inti"
	SkillInsight       Skill = "intu"
	SkillThievery      Skill = "lad"
	SkillGatherInfo    Skill = "obinf"
	SkillPerception    Skill = "prc"
	SkillSurvival      Skill = "sur"
)

// Craft skills
const (
	SkillCraftAlchemy    Skill = "ofiAlq"
	SkillCraftMasonry    Skill = "ofiAlv"
	SkillCraftCarpentry  Skill = "ofiCar"
	SkillCraftJewelry    Skill = "ofiJoa"
	SkillCraftMetalwork  Skill = "ofiMet"
	SkillCraftArt        Skill = "ofiArt"
	SkillCraftProfession Skill = "ofiPro"
)

// SkillAbilities maps every skill to its default governing ability. A stored
// skill record may override the link; derivation reads the record's own
// ability reference and falls back to this table.
var SkillAbilities = map[Skill]Ability{
	SkillPerformArt:     AbilityCharisma,
	SkillPerformDrama:   AbilityCharisma,
	SkillPerformDance:   AbilityCharisma,
	SkillPerformMusic:   AbilityCharisma,
	SkillPerformOratory: AbilityCharisma,

	SkillKnowArcana:      AbilityIntelligence,
	SkillKnowEngineering: AbilityIntelligence,
	SkillKnowGeography:   AbilityIntelligence,
	SkillKnowHistory:     AbilityIntelligence,
	SkillKnowNature:      AbilityIntelligence,
	SkillKnowNobility:    AbilityIntelligence,
	SkillKnowPlanes:      AbilityIntelligence,
	SkillKnowReligion:    AbilityIntelligence,
	SkillKnowDungeons:    AbilityIntelligence,

	SkillAcrobatics:   AbilityDexterity,
	SkillHandleAnimal: AbilityCharisma,
	SkillAthletics:    AbilityStrength,
	SkillRide:         AbilityDexterity,
	SkillHeal:         AbilityWisdom,
	SkillDiplomacy:    AbilityCharisma,
	SkillDeception:    AbilityCharisma,
	SkillStealth:      AbilityDexterity,
	SkillSpellcraft:   AbilityIntelligence,
	SkillInitiative:   AbilityDexterity,
	SkillIntimidation: AbilityCharisma,
	SkillInsight:      AbilityWisdom,
	SkillThievery:     AbilityDexterity,
	SkillGatherInfo:   AbilityCharisma,
	SkillPerception:   AbilityWisdom,
	SkillSurvival:     AbilityWisdom,

	SkillCraftAlchemy:    AbilityIntelligence,
	SkillCraftMasonry:    AbilityStrength,
	SkillCraftCarpentry:  AbilityStrength,
	SkillCraftJewelry:    AbilityDexterity,
	SkillCraftMetalwork:  AbilityStrength,
	SkillCraftArt:        AbilityDexterity,
	SkillCraftProfession: AbilityWisdom,
}

// ArmorPenaltySkills are the skills whose totals take the armor check penalty
var ArmorPenaltySkills = map[Skill]bool{
	SkillAcrobatics: true,
	SkillAthletics:  true,
	SkillRide:       true,
	SkillStealth:    true,
	SkillThievery:   true,
}
