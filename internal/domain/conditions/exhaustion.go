package conditions

// DefaultMaxExhaustion is the default ceiling of the exhaustion track
const DefaultMaxExhaustion = 10

// defaultExhaustionEffects is the escalating penalty table, indexed by
// level. Levels past the end of the table show no additional effect text.
var defaultExhaustionEffects = [7]string{
	"No effect",
	"Disadvantage on ability checks",
	"Speed halved",
	"Disadvantage on attack rolls and saving throws",
	"Hit point maximum halved",
	"Speed reduced to 0",
	"Death",
}

// ExhaustionState is a bounded exhaustion level with tiered effect text
type ExhaustionState struct {
	CurrentLevel  int      `json:"current_level"`
	MaxLevels     int      `json:"max_levels"`
	CustomEffects []string `json:"custom_effects,omitempty"`
}

// NewExhaustionState creates an empty track with the default ceiling
func NewExhaustionState() *ExhaustionState {
	return &ExhaustionState{MaxLevels: DefaultMaxExhaustion}
}

// EffectAt returns the effect text for a level. A non-empty custom effect
// overrides the default table; any out-of-range level reads as no effect.
func (e *ExhaustionState) EffectAt(level int) string {
	if level >= 0 && level < len(e.CustomEffects) && e.CustomEffects[level] != "" {
		return e.CustomEffects[level]
	}
	if level >= 0 && level < len(defaultExhaustionEffects) {
		return defaultExhaustionEffects[level]
	}
	return "No effect"
}

// Effect returns the effect text for the current level
func (e *ExhaustionState) Effect() string {
	return e.EffectAt(e.CurrentLevel)
}

// Adjust moves the level by delta, clamped to [0, MaxLevels]
func (e *ExhaustionState) Adjust(delta int) {
	max := e.MaxLevels
	if max <= 0 {
		max = DefaultMaxExhaustion
	}

	e.CurrentLevel += delta
	if e.CurrentLevel < 0 {
		e.CurrentLevel = 0
	}
	if e.CurrentLevel > max {
		e.CurrentLevel = max
	}
}
