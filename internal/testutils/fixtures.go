package testutils

import (
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/actor"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// CreateTestCharacter creates a fully formed level 5 fighter-style character
// with a class item, standard ability spread, and empty derived fields.
func CreateTestCharacter(id, ownerID, name string) *actor.Actor {
	a := &actor.Actor{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Type:    actor.TypeCharacter,
		Traits:  actor.Traits{Size: rules.SizeMedium},
		Attributes: actor.Attributes{
			HP: actor.Pool{Value: 30, Max: 30},
			MP: actor.Pool{Value: 10, Max: 10},
			AC: actor.ArmorClass{Calc: rules.ArmorCalcDefault},
		},
		Abilities: map[rules.Ability]*actor.AbilityScore{},
		Saves:     map[rules.Save]*actor.SaveThrow{},
		Skills:    map[rules.Skill]*actor.SkillRank{},
		Currency:  map[rules.Denomination]int{},
		Resources: map[string]*actor.Resource{},
		Spells:    map[string]*actor.SlotPool{},
		Jutsus:    map[string]*actor.SlotPool{},
		Items: []*item.Item{
			CreateTestClass(id+"-class", "Fighter", "d10", 5),
		},
	}

	scores := map[rules.Ability]int{
		rules.AbilityStrength:     16,
		rules.AbilityDexterity:    14,
		rules.AbilityConstitution: 14,
		rules.AbilityIntelligence: 10,
		rules.AbilityWisdom:       12,
		rules.AbilityCharisma:     8,
		rules.AbilityHonor:        10,
	}
	for code, value := range scores {
		a.Abilities[code] = &actor.AbilityScore{Value: value}
	}
	for _, code := range rules.Saves {
		a.Saves[code] = &actor.SaveThrow{Ability: rules.SaveAbilities[code]}
	}
	for code, ability := range rules.SkillAbilities {
		a.Skills[code] = &actor.SkillRank{Ability: ability}
	}
	return a
}

// CreateTestNPC creates a test NPC with the given challenge rating
func CreateTestNPC(id, ownerID, name string, cr int) *actor.Actor {
	a := CreateTestCharacter(id, ownerID, name)
	a.Type = actor.TypeNPC
	a.Details.CR = cr
	a.Items = nil
	return a
}

// CreateTestClass creates a class item
func CreateTestClass(id, name, hitDice string, levels int) *item.Item {
	return &item.Item{
		ID:   id,
		Name: name,
		Type: item.TypeClass,
		Class: &item.Class{
			Levels:  levels,
			HitDice: hitDice,
			BAB:     rules.BABHigh,
		},
	}
}

// CreateTestArmor creates an equipped armor item
func CreateTestArmor(id, name string, value int, maxDex *int) *item.Item {
	return &item.Item{
		ID:       id,
		Name:     name,
		Type:     item.TypeEquipment,
		Equipped: true,
		Quantity: 1,
		Weight:   10,
		Armor:    &item.Armor{Type: rules.ArmorTypeMedium, Value: value, MaxDex: maxDex},
	}
}

// CreateTestShield creates an equipped shield item
func CreateTestShield(id string, value int) *item.Item {
	return &item.Item{
		ID:       id,
		Name:     "Shield",
		Type:     item.TypeEquipment,
		Equipped: true,
		Quantity: 1,
		Weight:   6,
		Armor:    &item.Armor{Type: rules.ArmorTypeShield, Value: value},
	}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
