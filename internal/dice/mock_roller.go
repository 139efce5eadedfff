package dice

import (
	"fmt"
	"sync"
)

// MockRoller implements Roller for testing with predetermined results.
// Each queued value is consumed as the raw die total of one Roll call.
type MockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewMockRoller creates a new mock dice roller
func NewMockRoller() *MockRoller {
	return &MockRoller{}
}

// SetRolls sets the queued roll results and resets the index
func (m *MockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Roll returns the next predetermined result
func (m *MockRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return nil, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	raw := m.rolls[m.rollIndex]
	m.rollIndex++

	return &RollResult{
		Total: raw + bonus,
		Rolls: []int{raw},
		Bonus: bonus,
		Sides: sides,
	}, nil
}
