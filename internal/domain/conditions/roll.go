package conditions

import (
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/dice"
)

// RollForInjury determines the injury a single hit forces, rolling the
// severity die when the damage calls for one. Hits under the severe
// threshold never need the roller.
func RollForInjury(roller dice.Roller, damage int) (ConditionType, bool, error) {
	if damage < severeDamageThreshold {
		tier, ok := InjuryFromDamage(damage, 0)
		return tier, ok, nil
	}

	result, err := roller.Roll(1, 6, 0)
	if err != nil {
		return "", false, err
	}

	tier, ok := InjuryFromDamage(damage, result.Total)
	return tier, ok, nil
}
