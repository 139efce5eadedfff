package rules

// BABProgression tags a class with its base attack bonus growth rate
type BABProgression string

const (
	BABLow    BABProgression = "low"
	BABMedium BABProgression = "med"
	BABHigh   BABProgression = "high"
)

// BABFormulas maps a class's BAB progression to its per-level multiplier
var BABFormulas = map[BABProgression]float64{
	BABLow:    0.5,
	BABMedium: 0.75,
	BABHigh:   1,
}

// HitDieTypes enumerates the hit die denominations classes may use
var HitDieTypes = []string{"d6", "d8", "d10", "d12"}

// CharacterExpLevels is the cumulative XP required to reach each character level
var CharacterExpLevels = []int{
	0, 1000, 3000, 6000, 10000, 15000, 21000, 28000, 36000, 45000,
	55000, 66000, 78000, 91000, 105000, 120000, 136000, 153000, 171000, 190000,
}

// LevelExp returns the XP required to gain a character level, clamped to the
// top of the table for levels beyond it.
func LevelExp(level int) int {
	if level < 0 {
		level = 0
	}
	if level >= len(CharacterExpLevels) {
		level = len(CharacterExpLevels) - 1
	}
	return CharacterExpLevels[level]
}

// CRExp returns the XP granted for defeating a creature of the given challenge rating
func CRExp(cr int) int {
	return cr * 300
}
