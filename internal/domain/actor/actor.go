// Package actor models the player-character, NPC, and vehicle documents and
// implements the derive cycle that turns their raw stored data into the full
// set of computed combat statistics.
package actor

import (
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// Type is the closed set of actor subtypes. Exactly one tag selects which
// derivation branch runs.
type Type string

const (
	TypeCharacter Type = "character"
	TypeNPC       Type = "npc"
	TypeVehicle   Type = "vehicle"
)

// AbilityScore holds one ability's stored value and its derived fields.
// Mod and DC are always derived, never stored authoritatively.
type AbilityScore struct {
	Value      int `json:"value"`
	Mod        int `json:"mod"`
	CheckBonus int `json:"check_bonus"`
	DC         int `json:"dc"`
}

// SaveThrow holds one saving throw's stored proficiency and derived totals
type SaveThrow struct {
	Ability    rules.Ability `json:"ability"`
	Proficient int           `json:"proficient"` // 0 or 1
	Mod        int           `json:"mod"`
	Prof       int           `json:"prof"`
	SaveBonus  int           `json:"save_bonus"`
	Save       int           `json:"save"`
}

// SkillRank holds one skill's stored proficiency multiplier and derived totals
type SkillRank struct {
	Ability rules.Ability `json:"ability"`
	Value   float64       `json:"value"` // proficiency multiplier in [0,2], 0.5 steps
	Bonus   int           `json:"bonus"`
	Mod     int           `json:"mod"`
	Prof    int           `json:"prof"`
	Total   int           `json:"total"`
}

// Pool is a bounded resource pool with temporary padding (hit points, magic points)
type Pool struct {
	Value   int `json:"value"`
	Max     int `json:"max"`
	Temp    int `json:"temp"`
	TempMax int `json:"tempmax"`
}

// SlotPool is one tier of spell or jutsu slots. A non-nil Override replaces
// Max as the recovery target.
type SlotPool struct {
	Value    int  `json:"value"`
	Max      int  `json:"max"`
	Override *int `json:"override,omitempty"`
}

// Resource is a generic named resource pool with rest-recovery tags
type Resource struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Max   *int   `json:"max,omitempty"` // nil means no numeric max; never auto-recovered
	SR    bool   `json:"sr"`
	LR    bool   `json:"lr"`
}

// DeathSaves tracks death saving throw successes and failures
type DeathSaves struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// BaseAttack holds the aggregated base attack bonus
type BaseAttack struct {
	Value int `json:"value"`
	Total int `json:"total"`
}

// XP tracks experience and derived progress toward the next level
type XP struct {
	Value int `json:"value"`
	Max   int `json:"max"`
	Pct   int `json:"pct"`
}

// Details holds identity and progression data
type Details struct {
	Level      int    `json:"level"`
	HalfLevel  int    `json:"half_level"`
	CR         int    `json:"cr"`
	XP         XP     `json:"xp"`
	Alignment  string `json:"alignment"`
	Biography  string `json:"biography"`
	SpellLevel *int   `json:"spell_level,omitempty"`
	JutsuLevel *int   `json:"jutsu_level,omitempty"`
}

// Attributes holds the combat-facing stored and derived attributes
type Attributes struct {
	HP ArmorlessPool `json:"hp"`
	MP Pool          `json:"mp"`
	AC ArmorClass    `json:"ac"`

	Prof         int        `json:"prof"`
	HD           int        `json:"hd"`
	BAB          BaseAttack `json:"bab"`
	ArmorPenalty int        `json:"armor_penalty"`

	Death       DeathSaves  `json:"death"`
	Encumbrance Encumbrance `json:"encumbrance"`

	Exhaustion  int  `json:"exhaustion"`
	Inspiration bool `json:"inspiration"`

	// Casting ability selections; empty means casting disabled
	Spellcasting rules.Ability `json:"spellcasting"`
	SpellDC      int           `json:"spell_dc"`
	Jutsucasting rules.Ability `json:"jutsucasting"`
	JutsuDC      int           `json:"jutsu_dc"`
}

// ArmorlessPool is Pool for hit points, whose lower bound extends into the
// dying range (-max/2) instead of zero.
type ArmorlessPool = Pool

// Bonuses holds the global situational bonuses applied during derivation
type Bonuses struct {
	Check   int `json:"check"`
	Save    int `json:"save"`
	Skill   int `json:"skill"`
	SpellDC int `json:"spell_dc"`
}

// TransformOptions records the merge toggles active on a polymorphed actor
type TransformOptions struct {
	MergeSaves  bool `json:"merge_saves"`
	MergeSkills bool `json:"merge_skills"`
}

// Flags is the structured set of optional character modifiers. Absent means
// false/zero.
type Flags struct {
	DiamondSoul       bool `json:"diamond_soul,omitempty"`
	RemarkableAthlete bool `json:"remarkable_athlete,omitempty"`
	JackOfAllTrades   bool `json:"jack_of_all_trades,omitempty"`
	PowerfulBuild     bool `json:"powerful_build,omitempty"`

	Polymorphed      bool              `json:"polymorphed,omitempty"`
	OriginalActor    string            `json:"original_actor,omitempty"`
	TransformOptions *TransformOptions `json:"transform_options,omitempty"`

	// SkillBonuses are per-key flat bonuses added after derivation,
	// keyed by skill or save code
	SkillBonuses map[string]int `json:"skill_bonuses,omitempty"`
}

// Vision holds the token sight fields retained by the keep-vision transform option
type Vision struct {
	DimSight    int  `json:"dim_sight"`
	BrightSight int  `json:"bright_sight"`
	Enabled     bool `json:"enabled"`
}

// TokenAppearance is the subset of token display data the transform engine
// swaps between forms
type TokenAppearance struct {
	Name   string  `json:"name"`
	Img    string  `json:"img"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
	Vision Vision  `json:"vision"`
}

// Traits holds descriptive traits that feed derivation
type Traits struct {
	Size rules.Size `json:"size"`
}

// Actor is the root aggregate: raw stored attributes plus owned items and
// active effects. Derived fields are recomputed in full by Reconcile; nothing
// incremental survives between cycles.
type Actor struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Folder  string `json:"folder"`
	Name    string `json:"name"`
	Type    Type   `json:"type"`
	Img     string `json:"img"`

	Token TokenAppearance `json:"token"`

	Abilities map[rules.Ability]*AbilityScore `json:"abilities"`
	Saves     map[rules.Save]*SaveThrow       `json:"saves"`
	Skills    map[rules.Skill]*SkillRank      `json:"skills"`

	Attributes Attributes `json:"attributes"`
	Details    Details    `json:"details"`
	Traits     Traits     `json:"traits"`
	Bonuses    Bonuses    `json:"bonuses"`
	Flags      Flags      `json:"flags"`

	Currency  map[rules.Denomination]int `json:"currency"`
	Resources map[string]*Resource       `json:"resources"`
	Spells    map[string]*SlotPool       `json:"spells"`
	Jutsus    map[string]*SlotPool       `json:"jutsus"`

	Items   []*item.Item `json:"items"`
	Effects []*Effect    `json:"effects"`

	// PreparationWarnings accumulates user-visible warnings from the last
	// derive cycle
	PreparationWarnings []string `json:"-"`
}

// IsPolymorphed reports whether the actor is currently transformed
func (a *Actor) IsPolymorphed() bool {
	return a.Flags.Polymorphed
}

// Item returns the owned item with the given ID, or nil
func (a *Actor) Item(id string) *item.Item {
	for _, i := range a.Items {
		if i.ID == id {
			return i
		}
	}
	return nil
}

// ItemsOfType returns the owned items with the given type tag, in item order
func (a *Actor) ItemsOfType(t item.Type) []*item.Item {
	var out []*item.Item
	for _, i := range a.Items {
		if i.Type == t {
			out = append(out, i)
		}
	}
	return out
}

// Classes returns the owned class items in item order
func (a *Actor) Classes() []*item.Item {
	if a.Type != TypeCharacter && a.Type != TypeNPC {
		return nil
	}
	return a.ItemsOfType(item.TypeClass)
}

// RollData flattens the actor's current state into the dotted-path map the
// formula evaluator substitutes @-references from.
func (a *Actor) RollData() map[string]float64 {
	data := map[string]float64{
		"details.level":      float64(a.Details.Level),
		"details.halfLevel":  float64(a.Details.HalfLevel),
		"details.cr":         float64(a.Details.CR),
		"attributes.prof":    float64(a.Attributes.Prof),
		"attributes.ac.base": float64(a.Attributes.AC.Base),
		"attributes.ac.flat": float64(a.Attributes.AC.Flat),
		"attributes.hp.max":  float64(a.Attributes.HP.Max),
		"attributes.mp.max":  float64(a.Attributes.MP.Max),
	}
	for code, abl := range a.Abilities {
		data["abilities."+string(code)+".value"] = float64(abl.Value)
		data["abilities."+string(code)+".mod"] = float64(abl.Mod)
	}
	return data
}
