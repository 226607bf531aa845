// Package testutils provides shared fixtures and infrastructure helpers
// for tests.
package testutils

import (
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/currency"
)

// CharacterOption customizes a test character
type CharacterOption func(*character.Character)

// CreateTestCharacter creates a character with sensible defaults for
// tests: a mid-level fighter with full resources and a modest purse
func CreateTestCharacter(id, ownerID, name string, opts ...CharacterOption) *character.Character {
	char := character.New(id, ownerID, "test-campaign", name)
	char.Race = "Human"
	char.Class = "Fighter"
	char.Level = 5
	char.HP = character.HPResource{Current: 30, Max: 30}
	char.HitDice = character.HitDice{DiceType: 10, Max: 5, Remaining: 5}
	char.SuperiorityDice = character.SuperiorityDice{Current: 4, Max: 4}
	char.Rations = 5
	char.Currency = currency.Currency{GP: 10}

	for _, opt := range opts {
		opt(char)
	}
	return char
}

// WithRace sets the character's primary race
func WithRace(race string) CharacterOption {
	return func(c *character.Character) { c.Race = race }
}

// WithClass sets the character's primary class
func WithClass(class string) CharacterOption {
	return func(c *character.Character) { c.Class = class }
}

// WithCurrency replaces the character's purse
func WithCurrency(cur currency.Currency) CharacterOption {
	return func(c *character.Character) { c.Currency = cur }
}

// WithRations sets the character's ration count
func WithRations(n int) CharacterOption {
	return func(c *character.Character) { c.Rations = n }
}

// WithItems replaces the character's inventory
func WithItems(items ...*character.Item) CharacterOption {
	return func(c *character.Character) { c.Inventory = items }
}
