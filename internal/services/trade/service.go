// Package trade orchestrates trade negotiations: shared records both
// parties edit, double confirmation, and the all-or-nothing transfer that
// settles a confirmed trade exactly once.
package trade

import (
	"context"
	"log"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	tradedomain "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/trade"
	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/characters"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/trades"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/uuid"
)

// Service manages trade negotiations and settlement
type Service interface {
	// Propose opens a trade between two characters
	Propose(ctx context.Context, campaignID, partyA, partyB string) (*tradedomain.Record, error)

	// Get returns a trade record by ID
	Get(ctx context.Context, id string) (*tradedomain.Record, error)

	// UpdateOffer replaces one party's offer. Any change to either offer
	// clears both confirmations.
	UpdateOffer(ctx context.Context, tradeID, characterID string, offer tradedomain.Offer) (*tradedomain.Record, error)

	// Confirm marks one party as agreeing to the trade as it stands.
	// When the second confirmation lands the trade executes; the bool
	// reports whether this call performed the transfer.
	Confirm(ctx context.Context, tradeID, characterID string) (*tradedomain.Record, bool, error)

	// ExecuteIfReady settles the trade if both confirmations are in
	// place, reporting whether this call performed the transfer. Used by
	// the watch loop to pick up trades confirmed on the host platform.
	ExecuteIfReady(ctx context.Context, tradeID string) (bool, error)

	// Cancel abandons an unexecuted trade
	Cancel(ctx context.Context, tradeID string) error

	// Settle previews the balancing payment for the trade as it stands
	Settle(record *tradedomain.Record) tradedomain.Settlement

	// MerchantSettlement prices a merchant exchange at the configured
	// buyback rate
	MerchantSettlement(itemsToBuy, itemsToSell []*character.Item) tradedomain.Settlement

	// ExecuteMerchant settles a merchant exchange against one character:
	// sold items leave the inventory, bought items enter it, and the
	// balancing payment moves through the purse
	ExecuteMerchant(ctx context.Context, characterID string, itemsToBuy []*character.Item, sellItemIDs []string) (tradedomain.Settlement, error)
}

// ServiceConfig holds the service's dependencies
type ServiceConfig struct {
	Repository    trades.Repository
	Characters    characters.Repository
	UUIDGenerator uuid.Generator

	// BuybackRate is the fraction of listed value a merchant credits for
	// sold items, in (0, 1]
	BuybackRate float64
}

// DefaultBuybackRate applies when the config leaves the rate unset
const DefaultBuybackRate = 0.8

type service struct {
	repo          trades.Repository
	characters    characters.Repository
	uuidGenerator uuid.Generator
	buybackRate   float64
}

// NewService creates a new trade service
func NewService(cfg *ServiceConfig) Service {
	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	buybackRate := cfg.BuybackRate
	if buybackRate <= 0 || buybackRate > 1 {
		buybackRate = DefaultBuybackRate
	}
	return &service{
		repo:          cfg.Repository,
		characters:    cfg.Characters,
		uuidGenerator: uuidGenerator,
		buybackRate:   buybackRate,
	}
}

func (s *service) Propose(ctx context.Context, campaignID, partyA, partyB string) (*tradedomain.Record, error) {
	if partyA == "" || partyB == "" {
		return nil, apperrors.InvalidArgument("a trade needs two parties")
	}
	if partyA == partyB {
		return nil, apperrors.Validation("cannot trade with yourself")
	}

	// Both characters must exist before a record is opened
	if _, err := s.characters.Get(ctx, partyA); err != nil {
		return nil, err
	}
	if _, err := s.characters.Get(ctx, partyB); err != nil {
		return nil, err
	}

	record := &tradedomain.Record{
		ID:         s.uuidGenerator.New(),
		CampaignID: campaignID,
		PartyA:     partyA,
		PartyB:     partyB,
	}
	if err := s.repo.Put(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("[TRADE] opened trade %s between %s and %s", record.ID, partyA, partyB)
	return record, nil
}

func (s *service) Get(ctx context.Context, id string) (*tradedomain.Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) UpdateOffer(ctx context.Context, tradeID, characterID string, offer tradedomain.Offer) (*tradedomain.Record, error) {
	record, err := s.repo.Get(ctx, tradeID)
	if err != nil {
		return nil, err
	}

	switch characterID {
	case record.PartyA:
		record.OfferA = offer
	case record.PartyB:
		record.OfferB = offer
	default:
		return nil, apperrors.Validationf("character '%s' is not part of this trade", characterID)
	}

	// Either side changing the terms voids both agreements
	record.ConfirmedA = false
	record.ConfirmedB = false

	if err := s.repo.Put(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) Confirm(ctx context.Context, tradeID, characterID string) (*tradedomain.Record, bool, error) {
	record, err := s.repo.Get(ctx, tradeID)
	if err != nil {
		return nil, false, err
	}

	switch characterID {
	case record.PartyA:
		record.ConfirmedA = true
	case record.PartyB:
		record.ConfirmedB = true
	default:
		return nil, false, apperrors.Validationf("character '%s' is not part of this trade", characterID)
	}

	if err := s.repo.Put(ctx, record); err != nil {
		return nil, false, err
	}

	if !record.BothConfirmed() {
		return record, false, nil
	}

	executed, err := s.execute(ctx, record)
	if err != nil {
		return nil, false, err
	}
	return record, executed, nil
}

func (s *service) ExecuteIfReady(ctx context.Context, tradeID string) (bool, error) {
	record, err := s.repo.Get(ctx, tradeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Already consumed by whoever executed first
			return false, nil
		}
		return false, err
	}
	if !record.BothConfirmed() {
		return false, nil
	}
	return s.execute(ctx, record)
}

// execute performs the transfer for a fully confirmed trade. The record
// is consumed from the store first; losing that claim means the other
// client already executed, which is a clean no-op.
func (s *service) execute(ctx context.Context, record *tradedomain.Record) (bool, error) {
	charA, err := s.characters.Get(ctx, record.PartyA)
	if err != nil {
		return false, err
	}
	charB, err := s.characters.Get(ctx, record.PartyB)
	if err != nil {
		return false, err
	}

	if err := validateTransfer(charA, record.OfferA); err != nil {
		return false, err
	}
	if err := validateTransfer(charB, record.OfferB); err != nil {
		return false, err
	}

	if _, err := s.repo.Consume(ctx, record.ID); err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	transferOffer(charA, charB, record.OfferA)
	transferOffer(charB, charA, record.OfferB)

	if err := s.characters.Update(ctx, charA); err != nil {
		return false, apperrors.Wrap(err, "trade executed but saving party A failed")
	}
	if err := s.characters.Update(ctx, charB); err != nil {
		return false, apperrors.Wrap(err, "trade executed but saving party B failed")
	}

	log.Printf("[TRADE] executed trade %s (%s <-> %s)", record.ID, record.PartyA, record.PartyB)
	return true, nil
}

// validateTransfer checks a party can actually deliver its offer
func validateTransfer(from *character.Character, offer tradedomain.Offer) error {
	for _, item := range offer.Items {
		if _, ok := from.FindItem(item.ID); !ok {
			return apperrors.Validationf("%s no longer has '%s'", from.Name, item.Name)
		}
	}
	if offer.CoinCP > 0 && from.Currency.TotalCopper() < offer.CoinCP {
		return apperrors.Validationf("%s cannot cover the offered coin", from.Name)
	}
	return nil
}

// transferOffer moves an already-validated offer between characters
func transferOffer(from, to *character.Character, offer tradedomain.Offer) {
	for _, offered := range offer.Items {
		if item, ok := from.RemoveItem(offered.ID); ok {
			to.AddItem(item)
		}
	}
	if offer.CoinCP > 0 {
		from.Currency.Deduct(offer.CoinCP)
		to.Currency.Add(offer.CoinCP)
	}
}

func (s *service) Cancel(ctx context.Context, tradeID string) error {
	if err := s.repo.Delete(ctx, tradeID); err != nil {
		return err
	}
	log.Printf("[TRADE] cancelled trade %s", tradeID)
	return nil
}

func (s *service) Settle(record *tradedomain.Record) tradedomain.Settlement {
	return tradedomain.SettleP2P(record.OfferA, record.OfferB)
}

func (s *service) MerchantSettlement(itemsToBuy, itemsToSell []*character.Item) tradedomain.Settlement {
	return tradedomain.SettleMerchant(itemsToBuy, itemsToSell, s.buybackRate)
}

func (s *service) ExecuteMerchant(ctx context.Context, characterID string, itemsToBuy []*character.Item, sellItemIDs []string) (tradedomain.Settlement, error) {
	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return tradedomain.Settlement{}, err
	}

	var itemsToSell []*character.Item
	for _, id := range sellItemIDs {
		item, ok := char.FindItem(id)
		if !ok {
			return tradedomain.Settlement{}, apperrors.Validationf("item '%s' is not in the inventory", id)
		}
		itemsToSell = append(itemsToSell, item)
	}

	settlement := tradedomain.SettleMerchant(itemsToBuy, itemsToSell, s.buybackRate)

	if settlement.OwedTo == tradedomain.OwedToMerchant {
		owed := settlement.OwedCopper()
		if char.Currency.TotalCopper() < owed {
			return tradedomain.Settlement{}, apperrors.Validationf(
				"%s cannot cover the %d %s owed", char.Name, settlement.Amount, settlement.Denomination)
		}
		char.Currency.Deduct(owed)
	} else if settlement.OwedTo == tradedomain.OwedToPlayer {
		char.Currency.Add(settlement.OwedCopper())
	}

	for _, id := range sellItemIDs {
		char.RemoveItem(id)
	}
	for _, item := range itemsToBuy {
		if item.ID == "" {
			item.ID = s.uuidGenerator.New()
		}
		char.AddItem(item)
	}

	if err := s.characters.Update(ctx, char); err != nil {
		return tradedomain.Settlement{}, err
	}

	log.Printf("[TRADE] merchant exchange settled for %s (%d %s to %s)",
		char.Name, settlement.Amount, settlement.Denomination, settlement.OwedTo)
	return settlement, nil
}
