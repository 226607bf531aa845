package conditions

// ConditionType represents a type of condition
type ConditionType string

// Standard status conditions
const (
	Blinded       ConditionType = "blinded"
	Charmed       ConditionType = "charmed"
	Deafened      ConditionType = "deafened"
	Frightened    ConditionType = "frightened"
	Grappled      ConditionType = "grappled"
	Incapacitated ConditionType = "incapacitated"
	Invisible     ConditionType = "invisible"
	Paralyzed     ConditionType = "paralyzed"
	Petrified     ConditionType = "petrified"
	Poisoned      ConditionType = "poisoned"
	Prone         ConditionType = "prone"
	Restrained    ConditionType = "restrained"
	Stunned       ConditionType = "stunned"
	Unconscious   ConditionType = "unconscious"
)

// Injury conditions, one tier each, plus the infection flag untreated
// injuries escalate into
const (
	MinorInjury    ConditionType = "minorInjury"
	SeriousInjury  ConditionType = "seriousInjury"
	CriticalInjury ConditionType = "criticalInjury"
	Infection      ConditionType = "infection"
)

// KnownConditions lists every condition type a character tracks, in
// display order
var KnownConditions = []ConditionType{
	Blinded,
	Charmed,
	Deafened,
	Frightened,
	Grappled,
	Incapacitated,
	Invisible,
	Paralyzed,
	Petrified,
	Poisoned,
	Prone,
	Restrained,
	Stunned,
	Unconscious,
	MinorInjury,
	SeriousInjury,
	CriticalInjury,
	Infection,
}

// injuryTiers orders injury conditions from most to least severe
var injuryTiers = []ConditionType{CriticalInjury, SeriousInjury, MinorInjury}

// IsInjury reports whether the condition is one of the three injury tiers
func IsInjury(cond ConditionType) bool {
	switch cond {
	case MinorInjury, SeriousInjury, CriticalInjury:
		return true
	default:
		return false
	}
}

// InjuryLocation is where on the body an injury landed
type InjuryLocation string

const (
	LocationLimb  InjuryLocation = "limb"
	LocationTorso InjuryLocation = "torso"
	LocationHead  InjuryLocation = "head"
)
