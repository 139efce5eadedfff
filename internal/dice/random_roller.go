package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller with math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		roll := rand.Intn(sides) + 1
		rolls[i] = roll
		total += roll
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Sides: sides,
	}, nil
}
