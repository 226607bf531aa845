package services

import (
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/characters"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/trades"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/services/rest"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/services/trade"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/uuid"
)

// Provider holds all services
type Provider struct {
	RestService  rest.Service
	TradeService trade.Service
}

// ProviderConfig holds dependencies for creating services. Repositories
// left nil fall back to in-memory implementations.
type ProviderConfig struct {
	CharacterRepository characters.Repository
	TradeRepository     trades.Repository
	TimeProvider        repositories.TimeProvider
	UUIDGenerator       uuid.Generator

	// MerchantBuybackRate is the fraction of listed value merchants pay
	// for sold items; zero means the default
	MerchantBuybackRate float64
}

// NewProvider creates all services with their dependencies wired
func NewProvider(cfg *ProviderConfig) *Provider {
	characterRepo := cfg.CharacterRepository
	if characterRepo == nil {
		characterRepo = characters.NewInMemoryRepository()
	}
	tradeRepo := cfg.TradeRepository
	if tradeRepo == nil {
		tradeRepo = trades.NewInMemoryRepository()
	}

	restService := rest.NewService(&rest.ServiceConfig{
		Repository:    characterRepo,
		TimeProvider:  cfg.TimeProvider,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	tradeService := trade.NewService(&trade.ServiceConfig{
		Repository:    tradeRepo,
		Characters:    characterRepo,
		UUIDGenerator: cfg.UUIDGenerator,
		BuybackRate:   cfg.MerchantBuybackRate,
	})

	return &Provider{
		RestService:  restService,
		TradeService: tradeService,
	}
}
