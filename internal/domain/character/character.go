// Package character defines the character entity the rest and trade
// services operate on. Every mutation is applied to the in-memory entity
// and persisted as a full-record replace through the repository layer.
package character

import (
	"time"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/conditions"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/currency"
)

// Character is a player character's rules-relevant state
type Character struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`

	Race           string `json:"race"`
	SecondaryRace  string `json:"secondary_race,omitempty"`
	Class          string `json:"class"`
	SecondaryClass string `json:"secondary_class,omitempty"`
	Level          int    `json:"level"`

	HP              HPResource      `json:"hp"`
	HitDice         HitDice         `json:"hit_dice"`
	SuperiorityDice SuperiorityDice `json:"superiority_dice"`
	Rations         int             `json:"rations"`

	Currency   currency.Currency          `json:"currency"`
	Conditions *conditions.Tracker        `json:"conditions"`
	Exhaustion *conditions.ExhaustionState `json:"exhaustion"`

	RestHistory *RestHistory `json:"rest_history"`
	Projects    []*Project   `json:"projects,omitempty"`
	Inventory   []*Item      `json:"inventory,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a character with all tracking substructures initialized
func New(id, ownerID, campaignID, name string) *Character {
	return &Character{
		ID:          id,
		OwnerID:     ownerID,
		CampaignID:  campaignID,
		Name:        name,
		Conditions:  conditions.NewTracker(),
		Exhaustion:  conditions.NewExhaustionState(),
		RestHistory: &RestHistory{},
	}
}

// Normalize fills in substructures missing from a record loaded from
// storage
func (c *Character) Normalize() {
	if c.Conditions == nil {
		c.Conditions = conditions.NewTracker()
	} else {
		c.Conditions.Normalize()
	}
	if c.Exhaustion == nil {
		c.Exhaustion = conditions.NewExhaustionState()
	}
	if c.RestHistory == nil {
		c.RestHistory = &RestHistory{}
	}
}

// ApplyDamage damages the character and applies the drop-to-zero
// exhaustion rule: any hit that takes current HP from above 0 to exactly
// 0 adds a level of exhaustion.
func (c *Character) ApplyDamage(amount int) int {
	dealt, dropped := c.HP.Damage(amount)
	if dropped {
		c.Exhaustion.Adjust(1)
	}
	return dealt
}

// FindProject returns the project with the given id, if any
func (c *Character) FindProject(id string) (*Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// FindItem returns the inventory item with the given id, if any
func (c *Character) FindItem(id string) (*Item, bool) {
	for _, item := range c.Inventory {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// RemoveItem takes an item out of the inventory, returning it
func (c *Character) RemoveItem(id string) (*Item, bool) {
	for i, item := range c.Inventory {
		if item.ID == id {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return item, true
		}
	}
	return nil, false
}

// AddItem appends an item to the inventory
func (c *Character) AddItem(item *Item) {
	c.Inventory = append(c.Inventory, item)
}
