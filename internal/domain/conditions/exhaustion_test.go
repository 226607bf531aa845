package conditions_test

import (
	"testing"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/conditions"
	"github.com/stretchr/testify/assert"
)

func TestExhaustionAdjust(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		delta    int
		expected int
	}{
		{"increase", 2, 3, 5},
		{"decrease", 5, -2, 3},
		{"clamps at zero", 1, -4, 0},
		{"clamps at max", 9, 5, 10},
		{"huge negative", 3, -1000, 0},
		{"huge positive", 3, 1000, 10},
		{"zero delta", 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := conditions.NewExhaustionState()
			e.CurrentLevel = tt.start
			e.Adjust(tt.delta)
			assert.Equal(t, tt.expected, e.CurrentLevel)
		})
	}
}

func TestExhaustionAdjustDefaultsMax(t *testing.T) {
	// A zero-valued state loaded from old data still clamps sensibly
	e := &conditions.ExhaustionState{}
	e.Adjust(15)
	assert.Equal(t, conditions.DefaultMaxExhaustion, e.CurrentLevel)
}

func TestExhaustionEffectAt(t *testing.T) {
	e := conditions.NewExhaustionState()

	assert.Equal(t, "No effect", e.EffectAt(0))
	assert.Equal(t, "Disadvantage on ability checks", e.EffectAt(1))
	assert.Equal(t, "Death", e.EffectAt(6))

	// Out of table range
	assert.Equal(t, "No effect", e.EffectAt(7))
	assert.Equal(t, "No effect", e.EffectAt(-1))
}

func TestExhaustionCustomEffects(t *testing.T) {
	e := conditions.NewExhaustionState()
	e.CustomEffects = []string{"", "Slightly winded", ""}

	assert.Equal(t, "Slightly winded", e.EffectAt(1))
	// Empty custom entries fall through to the default table
	assert.Equal(t, "No effect", e.EffectAt(0))
	assert.Equal(t, "Speed halved", e.EffectAt(2))

	e.CurrentLevel = 1
	assert.Equal(t, "Slightly winded", e.Effect())
}
