package rules

// ArmorCalc selects how an actor's armor class is computed
type ArmorCalc string

const (
	ArmorCalcDefault ArmorCalc = "default"
	ArmorCalcFlat    ArmorCalc = "flat"
	ArmorCalcNatural ArmorCalc = "natural"
	ArmorCalcCustom  ArmorCalc = "custom"
)

// ArmorClassConfig describes one AC calculation mode
type ArmorClassConfig struct {
	Label   string
	Formula string
}

// ArmorClasses maps every recognized AC calculation mode to its formula.
// Unknown modes coerce to flat at derivation time.
var ArmorClasses = map[ArmorCalc]ArmorClassConfig{
	ArmorCalcDefault: {
		Label:   "Default",
		Formula: "@attributes.ac.base + @details.halfLevel + @abilities.dex.mod",
	},
	ArmorCalcFlat: {
		Label:   "Flat",
		Formula: "@attributes.ac.flat",
	},
	ArmorCalcNatural: {
		Label:   "Natural Armor",
		Formula: "@attributes.ac.flat",
	},
	ArmorCalcCustom: {
		Label: "Custom",
	},
}

// ArmorType tags equipment items that modify base AC
type ArmorType string

const (
	ArmorTypeLight   ArmorType = "light"
	ArmorTypeMedium  ArmorType = "medium"
	ArmorTypeHeavy   ArmorType = "heavy"
	ArmorTypeNatural ArmorType = "natural"
	ArmorTypeShield  ArmorType = "shield"
)

// ArmorTypes is the set of equipment armor tags recognized by the AC calculator
var ArmorTypes = map[ArmorType]bool{
	ArmorTypeLight:   true,
	ArmorTypeMedium:  true,
	ArmorTypeHeavy:   true,
	ArmorTypeNatural: true,
	ArmorTypeShield:  true,
}

// Attunement enumerates item attunement states
type Attunement int

const (
	AttunementNone Attunement = iota
	AttunementRequired
	AttunementAttuned
)
