package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	characterKeys, err := client.Keys(ctx, "character:*").Result()
	if err != nil {
		log.Fatalf("Failed to get character keys: %v", err)
	}

	fmt.Printf("Found %d characters:\n", len(characterKeys))
	for _, key := range characterKeys {
		data, getErr := client.Get(ctx, key).Result()
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}

		var char character.Character
		if unmarshalErr := json.Unmarshal([]byte(data), &char); unmarshalErr != nil {
			fmt.Printf("  %s: %d bytes (unreadable: %v)\n", key, len(data), unmarshalErr)
			continue
		}

		char.Normalize()
		fmt.Printf("  %s: %s (%s %s, level %d) HP %d/%d, exhaustion %d, %d cp\n",
			key, char.Name, char.Race, char.Class, char.Level,
			char.HP.Current, char.HP.Max,
			char.Exhaustion.CurrentLevel, char.Currency.TotalCopper())
	}

	tradeKeys, err := client.Keys(ctx, "trade:*").Result()
	if err != nil {
		log.Fatalf("Failed to get trade keys: %v", err)
	}

	fmt.Printf("\nFound %d open trades:\n", len(tradeKeys))
	for _, key := range tradeKeys {
		fmt.Printf("  %s\n", key)
	}
}
