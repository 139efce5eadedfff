// Package item models the documents owned by an actor: classes, equipment,
// carried goods, and the castable/feature items whose uses recover on rests.
package item

import (
	"strconv"
	"strings"

	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// Type tags an owned item with its document subtype
type Type string

const (
	TypeClass      Type = "class"
	TypeWeapon     Type = "weapon"
	TypeEquipment  Type = "equipment"
	TypeConsumable Type = "consumable"
	TypeTool       Type = "tool"
	TypeContainer  Type = "backpack"
	TypeLoot       Type = "loot"
	TypeFeat       Type = "feat"
	TypeSpell      Type = "spell"
	TypeJutsu      Type = "jutsu"
)

// PhysicalTypes are the item types that contribute carried weight
var PhysicalTypes = map[Type]bool{
	TypeWeapon:     true,
	TypeEquipment:  true,
	TypeConsumable: true,
	TypeTool:       true,
	TypeContainer:  true,
	TypeLoot:       true,
}

// UsePeriod tags how an item's limited uses recover
type UsePeriod string

const (
	UsePeriodShortRest UsePeriod = "sr"
	UsePeriodLongRest  UsePeriod = "lr"
	UsePeriodDay       UsePeriod = "day"
	UsePeriodCharges   UsePeriod = "charges"
)

// Uses tracks an item's limited-use counter
type Uses struct {
	Value int       `json:"value"`
	Max   int       `json:"max"`
	Per   UsePeriod `json:"per"`
}

// Recharge tracks a recharge-on-roll item
type Recharge struct {
	Value   int  `json:"value"`
	Charged bool `json:"charged"`
}

// Armor holds the AC-relevant fields of an equipment item
type Armor struct {
	Type   rules.ArmorType `json:"type"`
	Value  int             `json:"value"`
	MaxDex *int            `json:"max_dex,omitempty"` // nil means no dex cap
}

// Class holds the fields of a class item
type Class struct {
	Levels      int                  `json:"levels"`
	HitDice     string               `json:"hit_dice"` // denomination, e.g. "d8"
	HitDiceUsed int                  `json:"hit_dice_used"`
	BAB         rules.BABProgression `json:"bab"`
}

// Item is one document owned by an actor
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     Type    `json:"type"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`

	// Equipment state
	Equipped   bool             `json:"equipped"`
	Attunement rules.Attunement `json:"attunement"`

	// StealthPenalty is the armor check penalty contributed while equipped
	StealthPenalty int `json:"stealth_penalty"`

	Armor    *Armor    `json:"armor,omitempty"`
	Class    *Class    `json:"class,omitempty"`
	Uses     *Uses     `json:"uses,omitempty"`
	Recharge *Recharge `json:"recharge,omitempty"`
}

// IsPhysical reports whether the item contributes carried weight
func (i *Item) IsPhysical() bool {
	return PhysicalTypes[i.Type]
}

// HitDieSides parses the class hit die denomination ("d8" -> 8).
// Returns 0 for non-class items or unparseable denominations.
func (i *Item) HitDieSides() int {
	if i.Class == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(i.Class.HitDice, "d"))
	if err != nil {
		return 0
	}
	return n
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	out := *i
	if i.Armor != nil {
		armor := *i.Armor
		if i.Armor.MaxDex != nil {
			maxDex := *i.Armor.MaxDex
			armor.MaxDex = &maxDex
		}
		out.Armor = &armor
	}
	if i.Class != nil {
		class := *i.Class
		out.Class = &class
	}
	if i.Uses != nil {
		uses := *i.Uses
		out.Uses = &uses
	}
	if i.Recharge != nil {
		recharge := *i.Recharge
		out.Recharge = &recharge
	}
	return &out
}

// Update is one entry of a batched item update, mirroring the host's
// embedded-document update records: only non-nil fields change.
type Update struct {
	ID              string `json:"id"`
	HitDiceUsed     *int   `json:"hit_dice_used,omitempty"`
	UsesValue       *int   `json:"uses_value,omitempty"`
	RechargeCharged *bool  `json:"recharge_charged,omitempty"`
}

// Apply writes the update onto the item in place
func (u *Update) Apply(i *Item) {
	if u.HitDiceUsed != nil && i.Class != nil {
		i.Class.HitDiceUsed = *u.HitDiceUsed
	}
	if u.UsesValue != nil && i.Uses != nil {
		i.Uses.Value = *u.UsesValue
	}
	if u.RechargeCharged != nil && i.Recharge != nil {
		i.Recharge.Charged = *u.RechargeCharged
	}
}
