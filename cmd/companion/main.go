package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/config"
	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/characters"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories/trades"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Campaign ID: %s", cfg.Campaign.ID)
	log.Printf("Merchant buyback rate: %.2f", cfg.Trade.BuybackRate)

	providerConfig := &services.ProviderConfig{
		MerchantBuybackRate: cfg.Trade.BuybackRate,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		log.Printf("Connecting to Redis at: %s", redisURL)

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)
		}
	} else {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			cancel()
			log.Printf("Failed to connect to Redis: %v", pingErr)
			log.Println("Falling back to in-memory repositories")
			redisClient = nil
		} else {
			cancel()
			log.Println("Successfully connected to Redis")
			providerConfig.CharacterRepository = characters.NewRedis(redisClient)
			providerConfig.TradeRepository = trades.NewRedis(redisClient)
			log.Println("Using Redis for persistence")
		}
	}

	serviceProvider := services.NewProvider(providerConfig)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return watchTrades(ctx, serviceProvider, providerConfig.TradeRepository)
	})

	log.Println("Companion is now running. Press CTRL-C to exit.")

	if err := group.Wait(); err != nil && ctx.Err() == nil {
		log.Printf("Watch loop failed: %v", err)
	}

	log.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// watchTrades settles trades as soon as both confirmations land,
// regardless of which client wrote the second one
func watchTrades(ctx context.Context, provider *services.Provider, repo trades.Repository) error {
	if repo == nil {
		// In-memory mode has no external writers to watch
		<-ctx.Done()
		return nil
	}

	changes, err := repo.Watch(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case tradeID, ok := <-changes:
			if !ok {
				return nil
			}
			executed, execErr := provider.TradeService.ExecuteIfReady(ctx, tradeID)
			if execErr != nil {
				// Validation failures mean the trade cannot settle as it
				// stands; the parties need to amend it, not the watcher
				if apperrors.IsValidation(execErr) || apperrors.IsNotFound(execErr) {
					log.Printf("[TRADE] trade %s not settled: %v", tradeID, execErr)
					continue
				}
				return execErr
			}
			if executed {
				log.Printf("[TRADE] settled trade %s from watch", tradeID)
			}
		}
	}
}
