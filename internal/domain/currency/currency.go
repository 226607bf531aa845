// Package currency implements fixed-denomination coinage with lossless
// copper-piece conversion. All arithmetic happens in copper; denomination
// breakdowns are canonicalized to the fewest-coins representation.
package currency

import (
	"strconv"
	"strings"
)

// Denomination is a coin type
type Denomination string

const (
	Copper   Denomination = "cp"
	Silver   Denomination = "sp"
	Gold     Denomination = "gp"
	Platinum Denomination = "pp"
)

// copper value of one coin of each denomination
const (
	copperPerCopper   = 1
	copperPerSilver   = 10
	copperPerGold     = 100
	copperPerPlatinum = 1000
)

// Currency is a purse of coins. Fields are never negative.
type Currency struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// Value is a single amount in a single denomination, as parsed from an
// item's free-text value string (e.g. "10 gp").
type Value struct {
	Amount       int          `json:"amount"`
	Denomination Denomination `json:"denomination"`
}

// Multiplier returns the copper value of one coin of the denomination.
// Unknown denominations are treated as gold.
func Multiplier(denom Denomination) int {
	switch denom {
	case Copper:
		return copperPerCopper
	case Silver:
		return copperPerSilver
	case Platinum:
		return copperPerPlatinum
	default:
		return copperPerGold
	}
}

// Parse extracts the first numeric substring and a denomination token from
// a free-text value string. Defaults to gold when no denomination is found;
// a string with no parseable number yields amount 0.
func Parse(valueStr string) Value {
	lower := strings.ToLower(valueStr)

	denom := Gold
	switch {
	case strings.Contains(lower, string(Platinum)):
		denom = Platinum
	case strings.Contains(lower, string(Silver)):
		denom = Silver
	case strings.Contains(lower, string(Copper)):
		denom = Copper
	}

	start := -1
	end := len(lower)
	for i, r := range lower {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			end = i
			break
		}
	}
	if start < 0 {
		return Value{Amount: 0, Denomination: denom}
	}

	amount, err := strconv.Atoi(lower[start:end])
	if err != nil {
		return Value{Amount: 0, Denomination: denom}
	}

	return Value{Amount: amount, Denomination: denom}
}

// ToCopper converts an amount of a denomination to copper pieces
func ToCopper(amount int, denom Denomination) int {
	return amount * Multiplier(denom)
}

// FromCopper expresses a copper total as a single value in the largest
// denomination that divides it evenly. Used for display of single amounts,
// not for purse breakdowns.
func FromCopper(cp int) Value {
	if cp == 0 {
		return Value{Amount: 0, Denomination: Gold}
	}

	switch {
	case cp%copperPerPlatinum == 0:
		return Value{Amount: cp / copperPerPlatinum, Denomination: Platinum}
	case cp%copperPerGold == 0:
		return Value{Amount: cp / copperPerGold, Denomination: Gold}
	case cp%copperPerSilver == 0:
		return Value{Amount: cp / copperPerSilver, Denomination: Silver}
	default:
		return Value{Amount: cp, Denomination: Copper}
	}
}

// TotalCopper returns the purse's total value in copper pieces
func (c *Currency) TotalCopper() int {
	return c.CP*copperPerCopper + c.SP*copperPerSilver + c.GP*copperPerGold + c.PP*copperPerPlatinum
}

// Breakdown decomposes a copper total into the fewest-coins purse,
// greedy largest denomination first. Round-trips with TotalCopper.
func Breakdown(cp int) Currency {
	if cp < 0 {
		cp = 0
	}

	c := Currency{}
	c.PP = cp / copperPerPlatinum
	cp %= copperPerPlatinum
	c.GP = cp / copperPerGold
	cp %= copperPerGold
	c.SP = cp / copperPerSilver
	cp %= copperPerSilver
	c.CP = cp
	return c
}

// Deduct removes an amount of copper from the purse, re-canonicalizing the
// remainder. Returns false and leaves the purse untouched when the purse
// holds less than the amount.
func (c *Currency) Deduct(amountCP int) bool {
	if amountCP <= 0 {
		return amountCP == 0
	}

	total := c.TotalCopper()
	if total < amountCP {
		return false
	}

	*c = Breakdown(total - amountCP)
	return true
}

// Add credits an amount of copper to the purse, re-canonicalizing
func (c *Currency) Add(amountCP int) {
	if amountCP <= 0 {
		return
	}
	*c = Breakdown(c.TotalCopper() + amountCP)
}

// CoinCount returns the total number of physical coins in the purse
func (c *Currency) CoinCount() int {
	return c.CP + c.SP + c.GP + c.PP
}
