package character

// HPResource tracks hit points and temporary HP
type HPResource struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// Damage applies damage, using temp HP first. The second return reports
// whether this hit dropped the character from above 0 to exactly 0, which
// callers must answer with a level of exhaustion.
func (hp *HPResource) Damage(amount int) (int, bool) {
	if amount <= 0 {
		return 0, false
	}

	originalAmount := amount
	wasUp := hp.Current > 0

	// Apply to temporary HP first
	if hp.Temporary > 0 {
		if hp.Temporary >= amount {
			hp.Temporary -= amount
			return originalAmount, false // All absorbed by temp HP
		}
		amount -= hp.Temporary
		hp.Temporary = 0
	}

	// Apply remaining to current HP
	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}

	return originalAmount, wasUp && hp.Current == 0
}

// Heal restores hit points up to max
func (hp *HPResource) Heal(amount int) int {
	if amount <= 0 || hp.Current >= hp.Max {
		return 0
	}

	oldHP := hp.Current
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	return hp.Current - oldHP
}

// AddTemporaryHP adds temporary hit points (doesn't stack)
func (hp *HPResource) AddTemporaryHP(amount int) {
	if amount > hp.Temporary {
		hp.Temporary = amount
	}
}

// HitDice tracks hit dice for rest healing
type HitDice struct {
	DiceType  int `json:"dice_type"` // d6, d8, d10, d12
	Max       int `json:"max"`       // Usually equals level
	Remaining int `json:"remaining"`
}

// LongRestRecovery returns how many hit dice a long rest restores:
// half the spent dice, rounded up
func (h *HitDice) LongRestRecovery() int {
	spent := h.Max - h.Remaining
	if spent <= 0 {
		return 0
	}
	return (spent + 1) / 2
}

// Recover restores up to n hit dice, returning how many came back
func (h *HitDice) Recover(n int) int {
	if n <= 0 || h.Remaining >= h.Max {
		return 0
	}
	before := h.Remaining
	h.Remaining += n
	if h.Remaining > h.Max {
		h.Remaining = h.Max
	}
	return h.Remaining - before
}

// SuperiorityDice tracks superiority dice, which any rest restores to max
type SuperiorityDice struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// RestoreToMax refills the pool, returning how many dice came back
func (s *SuperiorityDice) RestoreToMax() int {
	restored := s.Max - s.Current
	if restored <= 0 {
		return 0
	}
	s.Current = s.Max
	return restored
}
