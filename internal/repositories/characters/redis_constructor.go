package characters

import (
	"github.com/redis/go-redis/v9"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories"
)

// RedisRepoConfig holds the dependencies of the Redis-backed repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider repositories.TimeProvider
}

// NewRedisRepository creates a Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = repositories.RealTimeProvider{}
	}
	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

// NewRedis creates a Redis-backed character repository with the real clock
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}
