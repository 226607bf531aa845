package character_test

import (
	"testing"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHPResourceDamage(t *testing.T) {
	tests := []struct {
		name            string
		hp              character.HPResource
		damage          int
		expectedHP      character.HPResource
		expectedDealt   int
		expectedDropped bool
	}{
		{
			name:          "damage absorbed by temp HP",
			hp:            character.HPResource{Current: 10, Max: 10, Temporary: 5},
			damage:        3,
			expectedHP:    character.HPResource{Current: 10, Max: 10, Temporary: 2},
			expectedDealt: 3,
		},
		{
			name:          "damage exceeds temp HP",
			hp:            character.HPResource{Current: 10, Max: 10, Temporary: 2},
			damage:        5,
			expectedHP:    character.HPResource{Current: 7, Max: 10},
			expectedDealt: 5,
		},
		{
			name:            "damage drops to zero",
			hp:              character.HPResource{Current: 3, Max: 10},
			damage:          5,
			expectedHP:      character.HPResource{Current: 0, Max: 10},
			expectedDealt:   5,
			expectedDropped: true,
		},
		{
			name:          "already at zero does not re-drop",
			hp:            character.HPResource{Current: 0, Max: 10},
			damage:        4,
			expectedHP:    character.HPResource{Current: 0, Max: 10},
			expectedDealt: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hp := tt.hp
			dealt, dropped := hp.Damage(tt.damage)
			assert.Equal(t, tt.expectedHP, hp)
			assert.Equal(t, tt.expectedDealt, dealt)
			assert.Equal(t, tt.expectedDropped, dropped)
		})
	}
}

func TestApplyDamageExhaustionHook(t *testing.T) {
	c := character.New("char-1", "owner-1", "camp-1", "Brennor")
	c.HP = character.HPResource{Current: 4, Max: 12}

	c.ApplyDamage(2)
	assert.Equal(t, 0, c.Exhaustion.CurrentLevel)

	c.ApplyDamage(2)
	assert.Equal(t, 0, c.HP.Current)
	assert.Equal(t, 1, c.Exhaustion.CurrentLevel)

	// Further damage at zero adds no more exhaustion
	c.ApplyDamage(5)
	assert.Equal(t, 1, c.Exhaustion.CurrentLevel)
}

func TestHitDiceLongRestRecovery(t *testing.T) {
	tests := []struct {
		name      string
		dice      character.HitDice
		recovered int
	}{
		{"none spent", character.HitDice{Max: 8, Remaining: 8}, 0},
		{"one spent rounds up", character.HitDice{Max: 8, Remaining: 7}, 1},
		{"half of four", character.HitDice{Max: 8, Remaining: 4}, 2},
		{"odd spent rounds up", character.HitDice{Max: 9, Remaining: 2}, 4},
		{"all spent", character.HitDice{Max: 5, Remaining: 0}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.recovered, tt.dice.LongRestRecovery())
		})
	}
}

func TestHitDiceRecover(t *testing.T) {
	dice := character.HitDice{Max: 6, Remaining: 2}
	assert.Equal(t, 2, dice.Recover(2))
	assert.Equal(t, 4, dice.Remaining)

	// Caps at max
	assert.Equal(t, 2, dice.Recover(10))
	assert.Equal(t, 6, dice.Remaining)
	assert.Equal(t, 0, dice.Recover(1))
}

func TestSuperiorityDiceRestore(t *testing.T) {
	dice := character.SuperiorityDice{Current: 1, Max: 4}
	assert.Equal(t, 3, dice.RestoreToMax())
	assert.Equal(t, 4, dice.Current)
	assert.Equal(t, 0, dice.RestoreToMax())
}

func TestProjectAddWork(t *testing.T) {
	p := &character.Project{ID: "p1", Name: "Forge a blade", TotalWorkUnits: 5}

	assert.Equal(t, 2, p.AddWork(2))
	assert.False(t, p.IsCompleted)

	// Overshoot is clipped and completes the project
	assert.Equal(t, 3, p.AddWork(10))
	assert.True(t, p.IsCompleted)
	assert.Equal(t, 5, p.CompletedWorkUnits)

	// Completed projects accept no more work
	assert.Equal(t, 0, p.AddWork(1))
}

func TestInventoryHelpers(t *testing.T) {
	c := character.New("char-1", "owner-1", "camp-1", "Brennor")
	c.AddItem(&character.Item{ID: "it-1", Name: "Rope", Quantity: 1, Value: "1 gp"})
	c.AddItem(&character.Item{ID: "it-2", Name: "Rations", Quantity: 3, Value: "5 sp"})

	item, ok := c.FindItem("it-2")
	require.True(t, ok)
	assert.Equal(t, 150, item.TotalValueCopper())
	assert.Equal(t, 50, item.UnitValueCopper())

	removed, ok := c.RemoveItem("it-1")
	require.True(t, ok)
	assert.Equal(t, "Rope", removed.Name)
	assert.Len(t, c.Inventory, 1)

	_, ok = c.FindItem("it-1")
	assert.False(t, ok)
}

func TestCharacterNormalize(t *testing.T) {
	c := &character.Character{ID: "c1"}
	c.Normalize()

	require.NotNil(t, c.Conditions)
	require.NotNil(t, c.Exhaustion)
	require.NotNil(t, c.RestHistory)
	assert.False(t, c.Conditions.Has("poisoned"))
}
