package dice

import (
	"math/rand"

	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
)

type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, apperrors.InvalidArgument("invalid dice count")
	}
	if sides < 1 {
		return nil, apperrors.InvalidArgument("invalid dice size")
	}

	result := &RollResult{
		Rolls: make([]int, count),
		Bonus: bonus,
	}

	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		result.Rolls[i] = roll
		result.Total += roll

		if i == 0 || roll < result.Lowest {
			result.Lowest = roll
		}
		if roll > result.Highest {
			result.Highest = roll
		}
	}

	result.Total += bonus
	return result, nil
}
