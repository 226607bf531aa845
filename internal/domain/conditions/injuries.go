package conditions

import (
	"time"

	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
)

// Starting HP for each injury tier. Treatment reduces the injury's HP;
// the injury clears when it reaches 0.
const (
	MinorInjuryHP    = 2
	SeriousInjuryHP  = 4
	CriticalInjuryHP = 6
)

// InfectionThresholdDays is the number of long rests an injury can go
// untreated before it turns infected
const InfectionThresholdDays = 3

// InjuryData tracks the state of one active injury
type InjuryData struct {
	Location      InjuryLocation `json:"injury_location,omitempty"`
	HP            int            `json:"injury_hp"`
	DaysSinceRest int            `json:"injury_days_since_rest"`
	AcquiredAt    time.Time      `json:"date_acquired"`
}

// Tracker holds a character's full condition state: one boolean per known
// condition type plus per-tier injury data for the active injuries.
type Tracker struct {
	Active   map[ConditionType]bool         `json:"active"`
	Injuries map[ConditionType]*InjuryData  `json:"injuries,omitempty"`
}

// NewTracker creates a tracker with every known condition present and off
func NewTracker() *Tracker {
	active := make(map[ConditionType]bool, len(KnownConditions))
	for _, cond := range KnownConditions {
		active[cond] = false
	}
	return &Tracker{
		Active:   active,
		Injuries: make(map[ConditionType]*InjuryData),
	}
}

// Normalize fills in any condition types missing from a tracker loaded
// from storage, so lookups never miss
func (t *Tracker) Normalize() {
	if t.Active == nil {
		t.Active = make(map[ConditionType]bool, len(KnownConditions))
	}
	for _, cond := range KnownConditions {
		if _, ok := t.Active[cond]; !ok {
			t.Active[cond] = false
		}
	}
	if t.Injuries == nil {
		t.Injuries = make(map[ConditionType]*InjuryData)
	}
}

// Has reports whether a condition is active
func (t *Tracker) Has(cond ConditionType) bool {
	return t.Active[cond]
}

// Set turns a non-injury condition on or off
func (t *Tracker) Set(cond ConditionType, active bool) {
	t.Active[cond] = active
}

// InjuryStartingHP returns the tier's fixed starting HP, or 0 for
// non-injury conditions
func InjuryStartingHP(tier ConditionType) int {
	switch tier {
	case MinorInjury:
		return MinorInjuryHP
	case SeriousInjury:
		return SeriousInjuryHP
	case CriticalInjury:
		return CriticalInjuryHP
	default:
		return 0
	}
}

// ActivateInjury starts an injury at the tier's full HP. Activating a tier
// that is already active is a no-op; the first activation's location wins.
// Serious and critical injuries require a location.
func (t *Tracker) ActivateInjury(tier ConditionType, location InjuryLocation, now time.Time) error {
	if !IsInjury(tier) {
		return apperrors.InvalidArgumentf("condition %q is not an injury tier", tier)
	}
	if (tier == SeriousInjury || tier == CriticalInjury) && location == "" {
		return apperrors.InvalidArgumentf("%s requires an injury location", tier)
	}

	// Duplicate activation is a UI race, not an error
	if t.Active[tier] {
		return nil
	}

	t.Active[tier] = true
	t.Injuries[tier] = &InjuryData{
		Location:      location,
		HP:            InjuryStartingHP(tier),
		DaysSinceRest: 0,
		AcquiredAt:    now,
	}
	return nil
}

// DeactivateInjury clears an injury tier and its tracking data
func (t *Tracker) DeactivateInjury(tier ConditionType) {
	if !IsInjury(tier) {
		return
	}
	t.Active[tier] = false
	delete(t.Injuries, tier)
}

// TreatInjury applies healing to an active injury. Healing it to 0 clears
// the injury; partial healing resets the untreated-days counter.
// Treating an inactive tier is a no-op.
func (t *Tracker) TreatInjury(tier ConditionType, healAmount int) {
	data, ok := t.Injuries[tier]
	if !ok || !t.Active[tier] || healAmount <= 0 {
		return
	}

	newHP := data.HP - healAmount
	if newHP <= 0 {
		t.DeactivateInjury(tier)
		return
	}

	data.HP = newHP
	data.DaysSinceRest = 0
}

// AdvanceUntreatedDay records a long rest during which the injury went
// untreated. Crossing the infection threshold activates the infection
// condition once; later untreated days never re-trigger it. Returns true
// when this call is the one that triggered the infection.
func (t *Tracker) AdvanceUntreatedDay(tier ConditionType) bool {
	data, ok := t.Injuries[tier]
	if !ok || !t.Active[tier] {
		return false
	}

	data.DaysSinceRest++
	if data.DaysSinceRest < InfectionThresholdDays || t.Active[Infection] {
		return false
	}

	t.Active[Infection] = true
	return true
}

// HighestActiveInjury returns the most severe active injury tier, critical
// before serious before minor
func (t *Tracker) HighestActiveInjury() (ConditionType, bool) {
	for _, tier := range injuryTiers {
		if t.Active[tier] {
			return tier, true
		}
	}
	return "", false
}

// ActiveInjuries returns the active tiers from most to least severe
func (t *Tracker) ActiveInjuries() []ConditionType {
	var active []ConditionType
	for _, tier := range injuryTiers {
		if t.Active[tier] {
			active = append(active, tier)
		}
	}
	return active
}

// Damage thresholds for forced injuries. Hits at or above the severe
// threshold need a d6 to grade the injury.
const (
	injuryDamageThreshold = 10
	severeDamageThreshold = 20
)

// InjuryFromDamage maps a single hit's damage to the injury it forces.
// 10-19 damage forces a minor injury with no roll; 20+ maps an externally
// rolled d6: 0-3 minor, 4-5 serious, 6 critical. Below 10, no injury.
// The serious and critical results still need a location at activation;
// the mapping itself is advisory.
func InjuryFromDamage(damage, d6 int) (ConditionType, bool) {
	switch {
	case damage < injuryDamageThreshold:
		return "", false
	case damage < severeDamageThreshold:
		return MinorInjury, true
	}

	switch {
	case d6 <= 3:
		return MinorInjury, true
	case d6 <= 5:
		return SeriousInjury, true
	default:
		return CriticalInjury, true
	}
}
