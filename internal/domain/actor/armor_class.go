package actor

import (
	"fmt"
	"math"

	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// ArmorClass holds the armor class configuration and its derived value.
// Calc selects the computation mode; Formula is only consulted in custom mode.
type ArmorClass struct {
	Calc    rules.ArmorCalc `json:"calc"`
	Base    int             `json:"base"`
	Flat    int             `json:"flat"`
	Formula string          `json:"formula"`
	Shield  int             `json:"shield"`
	Bonus   int             `json:"bonus"`
	Cover   int             `json:"cover"`

	// Derived each cycle
	Value          int        `json:"value"`
	Dex            int        `json:"dex"`
	EquippedArmor  *item.Item `json:"-"`
	EquippedShield *item.Item `json:"-"`
	Warnings       []string   `json:"-"`
}

// resetArmorClass clears the derived armor class fields at the start of a
// cycle so active effects layer onto clean values.
func (a *Actor) resetArmorClass() {
	ac := &a.Attributes.AC
	ac.Value = 0
	ac.Base = 10
	ac.Dex = 0
	ac.Shield = 0
	ac.Bonus = 0
	ac.Cover = 0
	ac.EquippedArmor = nil
	ac.EquippedShield = nil
	ac.Warnings = nil
}

// computeArmorClass resolves equipped armor and evaluates the selected
// calculation mode. Unrecognized modes coerce to flat without warning. A
// failing custom formula warns and falls back to the default computation.
func (a *Actor) computeArmorClass(opts DeriveOptions) {
	ac := &a.Attributes.AC

	if _, ok := rules.ArmorClasses[ac.Calc]; !ok {
		ac.Calc = rules.ArmorCalcFlat
	}

	var armors, shields []*item.Item
	for _, it := range a.Items {
		if !it.Equipped || it.Armor == nil {
			continue
		}
		if it.Armor.Type == rules.ArmorTypeShield {
			shields = append(shields, it)
		} else if rules.ArmorTypes[it.Armor.Type] {
			armors = append(armors, it)
		}
	}
	if len(armors) > 0 {
		ac.EquippedArmor = armors[0]
	}
	if len(shields) > 0 {
		ac.EquippedShield = shields[0]
	}

	if ac.Calc == rules.ArmorCalcFlat {
		ac.Value = ac.Flat
		return
	}

	switch ac.Calc {
	case rules.ArmorCalcNatural:
		ac.Base = ac.Flat
	case rules.ArmorCalcCustom:
		base, err := a.evaluateACFormula(ac.Formula, opts)
		if err != nil {
			a.warn(fmt.Sprintf("armor class formula for %s could not be evaluated", a.Name))
			ac.Base = a.defaultFormulaBase(opts)
		} else {
			ac.Base = base
		}
	default:
		ac.Base = a.defaultArmorBase(armors)
	}

	if len(shields) > 0 {
		if len(shields) > 1 {
			a.warn(fmt.Sprintf("%s has multiple equipped shields", a.Name))
		}
		ac.Shield = shields[0].Armor.Value
	}

	ac.Value = ac.Base + ac.Shield + ac.Bonus + ac.Cover
}

// defaultArmorBase is 10 plus half level, plus equipped armor with its
// dexterity cap applied, or the raw dexterity modifier when unarmored.
func (a *Actor) defaultArmorBase(armors []*item.Item) int {
	ac := &a.Attributes.AC
	dexMod := 0
	if dex, ok := a.Abilities[rules.AbilityDexterity]; ok {
		dexMod = dex.Mod
	}

	base := ac.Base + a.Details.HalfLevel
	if len(armors) > 0 {
		if len(armors) > 1 {
			a.warn(fmt.Sprintf("%s has multiple equipped armors", a.Name))
		}
		armor := armors[0].Armor
		capped := dexMod
		if armor.MaxDex != nil && capped > *armor.MaxDex {
			capped = *armor.MaxDex
		}
		ac.Dex = capped
		return base + armor.Value + capped
	}
	ac.Dex = dexMod
	return base + dexMod
}

// defaultFormulaBase evaluates the default mode's formula string, the
// fallback for a failing custom formula. Unlike defaultArmorBase it carries
// no armor contribution. Without an evaluator the same arithmetic is
// computed directly.
func (a *Actor) defaultFormulaBase(opts DeriveOptions) int {
	if base, err := a.evaluateACFormula(rules.ArmorClasses[rules.ArmorCalcDefault].Formula, opts); err == nil {
		return base
	}
	dexMod := 0
	if dex, ok := a.Abilities[rules.AbilityDexterity]; ok {
		dexMod = dex.Mod
	}
	return a.Attributes.AC.Base + a.Details.HalfLevel + dexMod
}

func (a *Actor) evaluateACFormula(formula string, opts DeriveOptions) (int, error) {
	if opts.Evaluator == nil || formula == "" {
		return 0, fmt.Errorf("no armor class formula")
	}
	v, err := opts.Evaluator.Evaluate(formula, a.RollData())
	if err != nil {
		return 0, err
	}
	return int(math.Floor(v)), nil
}

func (a *Actor) warn(msg string) {
	a.Attributes.AC.Warnings = append(a.Attributes.AC.Warnings, msg)
	a.PreparationWarnings = append(a.PreparationWarnings, msg)
}
