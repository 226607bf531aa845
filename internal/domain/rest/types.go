// Package rest holds the static rest-option catalog and the reference
// tables the resolution engine reads: which benefits exist, who may pick
// them, and what settlement rooms cost.
package rest

// Type distinguishes short and long rests
type Type string

const (
	ShortRest Type = "short"
	LongRest  Type = "long"
)

// SelectionLimit is how many non-standard benefits a rest allows
func SelectionLimit(restType Type) int {
	if restType == LongRest {
		return 2
	}
	return 1
}

// Location is where a long rest happens
type Location string

const (
	Wilderness Location = "wilderness"
	Settlement Location = "settlement"
)

// RoomType is the class of lodging for a settlement rest
type RoomType string

const (
	RoomFree    RoomType = "free"
	RoomBasic   RoomType = "basic"
	RoomQuality RoomType = "quality"
	RoomLuxury  RoomType = "luxury"
)

// Room is a settlement lodging entry: a fixed gold cost and a fixed
// exhaustion reduction
type Room struct {
	Type               RoomType
	Name               string
	CostGP             int
	ExhaustionRecovery int
}

// The luxury tier deliberately jumps from -3 to -5; the pricing table is
// non-linear on purpose.
var rooms = map[RoomType]Room{
	RoomFree:    {Type: RoomFree, Name: "Stable or Common Floor", CostGP: 0, ExhaustionRecovery: 1},
	RoomBasic:   {Type: RoomBasic, Name: "Basic Room", CostGP: 1, ExhaustionRecovery: 2},
	RoomQuality: {Type: RoomQuality, Name: "Quality Room", CostGP: 3, ExhaustionRecovery: 3},
	RoomLuxury:  {Type: RoomLuxury, Name: "Luxury Suite", CostGP: 6, ExhaustionRecovery: 5},
}

// RoomByType looks up a settlement room
func RoomByType(roomType RoomType) (Room, bool) {
	room, ok := rooms[roomType]
	return room, ok
}

// Category classifies who a rest option is for
type Category string

const (
	CategoryStandard Category = "standard"
	CategoryRace     Category = "race"
	CategoryClass    Category = "class"
	CategoryCustom   Category = "custom"
)

// Special restriction values: a primary race of "Mixed" unlocks
// Mixed-restricted options, a primary class of "Multiclass" unlocks
// Multiclass-restricted options.
const (
	RaceMixed       = "Mixed"
	ClassMulticlass = "Multiclass"
)

// EffectType tags what a rest option does
type EffectType string

const (
	EffectTempHP             EffectType = "tempHp"
	EffectHeroicInspiration  EffectType = "heroicInspiration"
	EffectHealInjury         EffectType = "healInjury"
	EffectProjectWork        EffectType = "projectWork"
)

// Effect describes a rest option's mechanical benefit. Value scales
// linearly with the ration count for ration-gated temp HP effects.
type Effect struct {
	Type EffectType `json:"type"`

	// Value is the effect magnitude: temp HP per ration (or flat when no
	// rations are involved), injury healing levels, or project work units
	Value int `json:"value,omitempty"`

	// RequiresRations is a fixed ration cost; 0 means no ration cost
	RequiresRations int `json:"requires_rations,omitempty"`

	// RequiresRationPrompt asks the player to choose how many rations
	// (at least 1) to spend
	RequiresRationPrompt bool `json:"requires_ration_prompt,omitempty"`
}

// Option is an immutable catalog entry
type Option struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Category         Category `json:"category"`
	RestType         Type     `json:"rest_type"`
	RaceRestriction  string   `json:"race_restriction,omitempty"`
	ClassRestriction string   `json:"class_restriction,omitempty"`
	Effect           *Effect  `json:"effect,omitempty"`
}
