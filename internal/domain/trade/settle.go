package trade

import (
	"math"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/currency"
)

// SettleP2P computes the balancing payment for a player-to-player trade.
// The side offering less value owes the difference. Inputs are never
// mutated.
func SettleP2P(offerA, offerB Offer) Settlement {
	net := offerA.TotalCopper() - offerB.TotalCopper()

	switch {
	case net > 0:
		return settlementFor(net, OwedToPartyB)
	case net < 0:
		return settlementFor(-net, OwedToPartyA)
	default:
		return Settlement{OwedTo: OwedEven, Denomination: currency.Gold}
	}
}

// SettleMerchant computes the balancing payment for a merchant trade. The
// buy side is valued at listed price; the sell side is credited at
// listedValue x buybackRate. The owed amount always rounds up so neither
// side is underpaid.
func SettleMerchant(itemsToBuy, itemsToSell []*character.Item, buybackRate float64) Settlement {
	var buyCP int
	for _, item := range itemsToBuy {
		buyCP += item.TotalValueCopper()
	}

	var sellCredit float64
	for _, item := range itemsToSell {
		sellCredit += float64(item.TotalValueCopper()) * buybackRate
	}

	net := float64(buyCP) - sellCredit

	switch {
	case net > 0:
		return settlementFor(int(math.Ceil(net)), OwedToMerchant)
	case net < 0:
		return settlementFor(int(math.Ceil(-net)), OwedToPlayer)
	default:
		return Settlement{OwedTo: OwedEven, Denomination: currency.Gold}
	}
}

// settlementFor expresses an owed copper amount as a display value
func settlementFor(owedCP int, owedTo OwedTo) Settlement {
	v := currency.FromCopper(owedCP)
	return Settlement{
		Amount:       v.Amount,
		Denomination: v.Denomination,
		OwedTo:       owedTo,
	}
}

// OwedCopper converts a settlement back to copper for transfer arithmetic
func (s Settlement) OwedCopper() int {
	if s.OwedTo == OwedEven {
		return 0
	}
	return currency.ToCopper(s.Amount, s.Denomination)
}
