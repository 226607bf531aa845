// Package trade implements offer valuation and the settlement rules for
// player-to-player and merchant trades. Settlement is pure computation;
// executing a trade (moving items and coin) belongs to the trade service.
package trade

import (
	"time"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/currency"
)

// OwedTo names which side of a trade owes the balancing payment
type OwedTo string

const (
	OwedToPartyA   OwedTo = "partyA"
	OwedToPartyB   OwedTo = "partyB"
	OwedToMerchant OwedTo = "merchant"
	OwedToPlayer   OwedTo = "player"
	OwedEven       OwedTo = "even"
)

// Settlement is the signed net result of a trade: who owes, and how much
// in the largest denomination that divides the amount evenly
type Settlement struct {
	Amount       int                   `json:"amount"`
	Denomination currency.Denomination `json:"denomination"`
	OwedTo       OwedTo                `json:"owed_to"`
}

// Offer is one side of a trade: items plus coin, valued together
type Offer struct {
	Items    []*character.Item `json:"items,omitempty"`
	CoinCP   int               `json:"coin_cp,omitempty"`
}

// TotalCopper values the whole offer in copper pieces
func (o Offer) TotalCopper() int {
	total := o.CoinCP
	for _, item := range o.Items {
		total += item.TotalValueCopper()
	}
	return total
}

// Record is the shared trade negotiation both parties edit and confirm.
// It lives in the host store until the trade executes or is cancelled;
// a missing record means the trade already settled.
type Record struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`

	PartyA string `json:"party_a"` // character ID
	PartyB string `json:"party_b"` // character ID

	OfferA Offer `json:"offer_a"`
	OfferB Offer `json:"offer_b"`

	ConfirmedA bool `json:"confirmed_a"`
	ConfirmedB bool `json:"confirmed_b"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BothConfirmed reports whether the trade is ready to execute
func (r *Record) BothConfirmed() bool {
	return r.ConfirmedA && r.ConfirmedB
}
