package rest

import (
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/conditions"
	restdomain "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/rest"
)

// ResolveInput is everything the player chose for a rest
type ResolveInput struct {
	RestType restdomain.Type

	// SelectedOptionIDs are the chosen selectable benefits; standard
	// options apply automatically and are not listed here
	SelectedOptionIDs []string

	// Location is required for long rests
	Location restdomain.Location

	// RoomType is required for settlement long rests
	RoomType restdomain.RoomType

	// RationCounts holds the player's chosen ration spend for each
	// ration-prompt option, keyed by option ID
	RationCounts map[string]int

	// TargetInjury designates which active injury Patch Wounds treats
	// when more than one is active; empty means the most severe one
	TargetInjury conditions.ConditionType

	// ProjectID selects an existing project for project-work options;
	// NewProject starts a fresh one instead
	ProjectID  string
	NewProject *character.Project
}

// RestEffects is the aggregate outcome of a resolved rest. Resolve
// computes it without touching character state; Execute applies it.
type RestEffects struct {
	RestType restdomain.Type

	TempHP            int
	HeroicInspiration bool

	// InjuryHealing is the total healing levels applied to HealedInjury
	InjuryHealing int
	HealedInjury  conditions.ConditionType

	HitDiceRecovered    int
	SuperiorityRestored bool

	// ExhaustionDelta is the net exhaustion change, negative for recovery
	ExhaustionDelta int

	RationsSpent int

	// RoomCostCP is the settlement room cost, already validated against
	// the character's purse
	RoomCostCP int

	ProjectWork int
	ProjectID   string
	NewProject  *character.Project

	// Wilderness streak bookkeeping for the rest history
	IncrementWildernessStreak bool
	ResetWildernessStreak     bool
	BlockWildernessRecovery   bool

	// AppliedOptionIDs is every option that contributed: standard options
	// first, then the player's selections
	AppliedOptionIDs []string
}

// OptionChoice is an eligible option decorated with selection hints for
// the rest dialog
type OptionChoice struct {
	Option restdomain.Option

	// RecentlyUsed marks options chosen on the immediately preceding
	// rest of the same type; discouraged, not blocked
	RecentlyUsed bool
}
