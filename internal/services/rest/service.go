// Package rest implements the rest resolution engine: it turns a rest
// type, the player's chosen benefits, and the character's ambient state
// into a single set of effects, validating affordability before anything
// is applied.
package rest

import (
	"context"
	"log"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/conditions"
	restdomain "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/rest"
	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/characters"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/uuid"
)

// Service resolves and applies rests
type Service interface {
	// Resolve computes the aggregate effects of a rest without touching
	// character state. Validation failures come back as validation
	// errors with nothing mutated.
	Resolve(ctx context.Context, char *character.Character, input *ResolveInput) (*RestEffects, error)

	// Execute resolves a rest and applies it to the stored character as
	// one full-record replace
	Execute(ctx context.Context, characterID string, input *ResolveInput) (*RestEffects, error)

	// EligibleOptions lists the options the character may pick for a
	// rest type, flagging ones chosen on the previous rest of that type
	EligibleOptions(char *character.Character, restType restdomain.Type) []OptionChoice

	// DefaultSelections returns the remembered selection from the last
	// rest of this type, filtered to still-eligible options and
	// truncated to the selection limit
	DefaultSelections(char *character.Character, restType restdomain.Type) []string
}

// ServiceConfig holds the service's dependencies
type ServiceConfig struct {
	Repository    characters.Repository
	TimeProvider  repositories.TimeProvider
	UUIDGenerator uuid.Generator
}

type service struct {
	repo          characters.Repository
	timeProvider  repositories.TimeProvider
	uuidGenerator uuid.Generator
}

// NewService creates a new rest service
func NewService(cfg *ServiceConfig) Service {
	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = repositories.RealTimeProvider{}
	}
	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return &service{
		repo:          cfg.Repository,
		timeProvider:  timeProvider,
		uuidGenerator: uuidGenerator,
	}
}

func (s *service) Resolve(ctx context.Context, char *character.Character, input *ResolveInput) (*RestEffects, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("resolve input cannot be nil")
	}
	if input.RestType != restdomain.ShortRest && input.RestType != restdomain.LongRest {
		return nil, apperrors.InvalidArgumentf("unknown rest type %q", input.RestType)
	}

	effects := &RestEffects{RestType: input.RestType}

	// Both rest types refill superiority dice; long rests also recover
	// half the spent hit dice.
	effects.SuperiorityRestored = true
	if input.RestType == restdomain.LongRest {
		effects.HitDiceRecovered = char.HitDice.LongRestRecovery()

		if err := s.resolveLocation(char, input, effects); err != nil {
			return nil, err
		}
	}

	opts, err := resolveSelections(input)
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		effects.AppliedOptionIDs = append(effects.AppliedOptionIDs, opt.ID)
		if err := s.applyOptionEffect(char, input, opt, effects); err != nil {
			return nil, err
		}
	}

	if effects.RationsSpent > char.Rations {
		return nil, apperrors.Validationf(
			"not enough rations: need %d, have %d", effects.RationsSpent, char.Rations).
			WithMeta("rations_needed", effects.RationsSpent).
			WithMeta("rations_available", char.Rations)
	}

	if effects.InjuryHealing > 0 {
		if err := resolveInjuryTarget(char, input, effects); err != nil {
			return nil, err
		}
	}

	if effects.ProjectWork > 0 {
		if err := resolveProjectTarget(char, input); err != nil {
			return nil, err
		}
		effects.ProjectID = input.ProjectID
		effects.NewProject = input.NewProject
	}

	return effects, nil
}

// resolveLocation handles the long-rest location rules: wilderness
// exhaustion recovery gated by the streak, settlement rooms gated by the
// purse.
func (s *service) resolveLocation(char *character.Character, input *ResolveInput, effects *RestEffects) error {
	history := char.RestHistory

	switch input.Location {
	case restdomain.Wilderness:
		if !history.WildernessExhaustionBlocked {
			effects.ExhaustionDelta--
		}

		effects.IncrementWildernessStreak = true
		streak := history.ConsecutiveWildernessRests + 1
		if streak >= character.WildernessStreakLimit && !history.WildernessExhaustionBlocked {
			// The streak catches up exactly once, then blocks further
			// wilderness recovery until a settlement rest
			effects.ExhaustionDelta++
			effects.BlockWildernessRecovery = true
		}

	case restdomain.Settlement:
		if input.RoomType == "" {
			return apperrors.Validation("a settlement rest needs a room selection")
		}
		room, ok := restdomain.RoomByType(input.RoomType)
		if !ok {
			return apperrors.Validationf("unknown room type %q", input.RoomType)
		}

		costCP := room.CostGP * 100
		if char.Currency.TotalCopper() < costCP {
			return apperrors.Validationf(
				"the %s costs %d gp, more coin than you carry", room.Name, room.CostGP).
				WithMeta("cost_gp", room.CostGP)
		}

		effects.RoomCostCP = costCP
		effects.ExhaustionDelta -= room.ExhaustionRecovery
		effects.ResetWildernessStreak = true

	case "":
		return apperrors.Validation("a long rest needs a location")
	default:
		return apperrors.Validationf("unknown rest location %q", input.Location)
	}

	return nil
}

// resolveSelections expands the chosen option IDs into catalog options,
// prepended with the rest type's standard options, enforcing the
// selection limit
func resolveSelections(input *ResolveInput) ([]restdomain.Option, error) {
	opts := restdomain.StandardOptions(input.RestType)

	seen := make(map[string]bool)
	selectable := 0
	for _, id := range input.SelectedOptionIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		// Stale selections resolve by ID even when no longer in the
		// eligible set
		opt, ok := restdomain.ByID(id)
		if !ok {
			return nil, apperrors.Validationf("unknown rest option %q", id)
		}
		if opt.RestType != input.RestType {
			return nil, apperrors.Validationf("option %q does not apply to a %s rest", id, input.RestType)
		}

		if opt.Category != restdomain.CategoryStandard {
			selectable++
		}
		opts = append(opts, opt)
	}

	if limit := restdomain.SelectionLimit(input.RestType); selectable > limit {
		return nil, apperrors.Validationf(
			"a %s rest allows at most %d chosen benefit(s)", input.RestType, limit).
			WithMeta("selected", selectable).
			WithMeta("limit", limit)
	}

	return opts, nil
}

// applyOptionEffect folds one option's effect into the aggregate.
// Effects accumulate additively: temp HP sums, inspiration ORs, injury
// healing levels sum.
func (s *service) applyOptionEffect(char *character.Character, input *ResolveInput, opt restdomain.Option, effects *RestEffects) error {
	if opt.Effect == nil {
		return nil
	}

	switch opt.Effect.Type {
	case restdomain.EffectTempHP:
		switch {
		case opt.Effect.RequiresRationPrompt:
			count := input.RationCounts[opt.ID]
			if count < 1 {
				return apperrors.Validationf("choose how many rations to spend on %q", opt.Name)
			}
			effects.RationsSpent += count
			effects.TempHP += opt.Effect.Value * count
		case opt.Effect.RequiresRations > 0:
			effects.RationsSpent += opt.Effect.RequiresRations
			effects.TempHP += opt.Effect.Value * opt.Effect.RequiresRations
		default:
			effects.TempHP += opt.Effect.Value
		}

	case restdomain.EffectHeroicInspiration:
		effects.HeroicInspiration = true

	case restdomain.EffectHealInjury:
		effects.InjuryHealing += opt.Effect.Value

	case restdomain.EffectProjectWork:
		units := opt.Effect.Value
		if input.RestType == restdomain.LongRest && char.Race == "Elf" {
			units = 3
		}
		effects.ProjectWork += units
	}

	return nil
}

// resolveInjuryTarget decides which active injury the aggregate healing
// lands on. The caller's designation wins; otherwise the most severe
// active injury is treated. With no active injuries the healing lapses.
func resolveInjuryTarget(char *character.Character, input *ResolveInput, effects *RestEffects) error {
	if input.TargetInjury != "" {
		if !conditions.IsInjury(input.TargetInjury) {
			return apperrors.Validationf("%q is not an injury", input.TargetInjury)
		}
		if !char.Conditions.Has(input.TargetInjury) {
			return apperrors.Validationf("no active %s to treat", input.TargetInjury)
		}
		effects.HealedInjury = input.TargetInjury
		return nil
	}

	if tier, ok := char.Conditions.HighestActiveInjury(); ok {
		effects.HealedInjury = tier
		return nil
	}

	effects.InjuryHealing = 0
	return nil
}

// resolveProjectTarget validates the project the work units land on
func resolveProjectTarget(char *character.Character, input *ResolveInput) error {
	switch {
	case input.ProjectID != "" && input.NewProject != nil:
		return apperrors.Validation("choose an existing project or define a new one, not both")
	case input.ProjectID != "":
		if _, ok := char.FindProject(input.ProjectID); !ok {
			return apperrors.Validationf("project '%s' not found", input.ProjectID)
		}
		return nil
	case input.NewProject != nil:
		if input.NewProject.Name == "" {
			return apperrors.Validation("a new project needs a name")
		}
		if input.NewProject.TotalWorkUnits <= 0 {
			return apperrors.Validation("a new project needs a positive work total")
		}
		return nil
	default:
		return apperrors.Validation("working on a project needs a project")
	}
}

func (s *service) Execute(ctx context.Context, characterID string, input *ResolveInput) (*RestEffects, error) {
	char, err := s.repo.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	effects, err := s.Resolve(ctx, char, input)
	if err != nil {
		return nil, err
	}

	s.apply(char, input, effects)

	if err := s.repo.Update(ctx, char); err != nil {
		return nil, err
	}

	log.Printf("[REST] %s finished a %s rest (temp HP %d, exhaustion %+d, rations -%d)",
		char.Name, effects.RestType, effects.TempHP, effects.ExhaustionDelta, effects.RationsSpent)

	return effects, nil
}

// apply mutates the character with an already-validated effect set
func (s *service) apply(char *character.Character, input *ResolveInput, effects *RestEffects) {
	if effects.TempHP > 0 {
		char.HP.AddTemporaryHP(effects.TempHP)
	}

	if effects.SuperiorityRestored {
		char.SuperiorityDice.RestoreToMax()
	}
	if effects.HitDiceRecovered > 0 {
		char.HitDice.Recover(effects.HitDiceRecovered)
	}

	if effects.InjuryHealing > 0 && effects.HealedInjury != "" {
		char.Conditions.TreatInjury(effects.HealedInjury, effects.InjuryHealing)
	}

	// A long rest ages every active injury that went untreated; crossing
	// the threshold turns it infected
	if effects.RestType == restdomain.LongRest {
		for _, tier := range char.Conditions.ActiveInjuries() {
			if tier == effects.HealedInjury {
				continue
			}
			if char.Conditions.AdvanceUntreatedDay(tier) {
				log.Printf("[REST] %s's untreated %s has become infected", char.Name, tier)
			}
		}
	}

	if effects.ExhaustionDelta != 0 {
		char.Exhaustion.Adjust(effects.ExhaustionDelta)
	}

	if effects.RationsSpent > 0 {
		char.Rations -= effects.RationsSpent
	}
	if effects.RoomCostCP > 0 {
		char.Currency.Deduct(effects.RoomCostCP)
	}

	if effects.ProjectWork > 0 {
		s.applyProjectWork(char, effects)
	}

	history := char.RestHistory
	if effects.HeroicInspiration {
		history.HeroicInspirationGainedToday = true
	}

	if effects.IncrementWildernessStreak {
		history.ConsecutiveWildernessRests++
	}
	if effects.BlockWildernessRecovery {
		history.WildernessExhaustionBlocked = true
	}
	if effects.ResetWildernessStreak {
		history.ConsecutiveWildernessRests = 0
		history.WildernessExhaustionBlocked = false
	}

	history.Record(effects.RestType, &character.RestRecord{
		Timestamp:       s.timeProvider.Now(),
		ChosenOptionIDs: input.SelectedOptionIDs,
		Location:        input.Location,
		RoomType:        input.RoomType,
	})
}

func (s *service) applyProjectWork(char *character.Character, effects *RestEffects) {
	if effects.ProjectID != "" {
		if project, ok := char.FindProject(effects.ProjectID); ok {
			project.AddWork(effects.ProjectWork)
		}
		return
	}

	project := effects.NewProject
	if project == nil {
		return
	}
	if project.ID == "" {
		project.ID = s.uuidGenerator.New()
	}
	project.AddWork(effects.ProjectWork)
	char.Projects = append(char.Projects, project)
}

func (s *service) EligibleOptions(char *character.Character, restType restdomain.Type) []OptionChoice {
	opts := restdomain.EligibleOptions(restType, char.Race, char.Class, char.SecondaryRace, char.SecondaryClass)

	recent := make(map[string]bool)
	if last := char.RestHistory.LastRest(restType); last != nil {
		for _, id := range last.ChosenOptionIDs {
			recent[id] = true
		}
	}

	choices := make([]OptionChoice, 0, len(opts))
	for _, opt := range opts {
		choices = append(choices, OptionChoice{
			Option:       opt,
			RecentlyUsed: recent[opt.ID],
		})
	}
	return choices
}

func (s *service) DefaultSelections(char *character.Character, restType restdomain.Type) []string {
	last := char.RestHistory.LastRest(restType)
	if last == nil {
		return nil
	}

	eligible := make(map[string]restdomain.Option)
	for _, opt := range restdomain.EligibleOptions(restType, char.Race, char.Class, char.SecondaryRace, char.SecondaryClass) {
		eligible[opt.ID] = opt
	}

	limit := restdomain.SelectionLimit(restType)
	var defaults []string
	for _, id := range last.ChosenOptionIDs {
		opt, ok := eligible[id]
		if !ok || opt.Category == restdomain.CategoryStandard {
			continue
		}
		defaults = append(defaults, id)
		if len(defaults) == limit {
			break
		}
	}
	return defaults
}
