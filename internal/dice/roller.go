// Package dice provides the die-rolling seam for hit-die and saving-throw
// rolls. Formula evaluation and anything fancier belongs to the host's dice
// subsystem; the engine only ever needs "roll NdX+B".
package dice

// RollResult holds the outcome of a single roll request
type RollResult struct {
	Total int   `json:"total"`
	Rolls []int `json:"rolls"`
	Bonus int   `json:"bonus"`
	Sides int   `json:"sides"`
}

// Roller provides an interface for rolling dice.
// This allows us to inject deterministic implementations for testing.
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}
