package trades

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/trade"
	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories"
)

// tradeChangeChannel is the pub/sub channel trade writes are announced on
const tradeChangeChannel = "trades:changed"

// redisRepo implements the Repository interface using Redis. Consume
// relies on GETDEL so only one client can ever claim a record.
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider repositories.TimeProvider
}

// RedisRepoConfig holds the dependencies of the Redis-backed repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider repositories.TimeProvider
}

// NewRedisRepository creates a Redis-backed trade repository
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

// NewRedis creates a Redis-backed trade repository with default
// dependencies
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func tradeKey(id string) string {
	return fmt.Sprintf("trade:%s", id)
}

// Put creates or fully replaces a trade record and announces the change
func (r *redisRepo) Put(ctx context.Context, record *trade.Record) error {
	if record == nil {
		return apperrors.InvalidArgument("trade record cannot be nil")
	}
	if record.ID == "" {
		return apperrors.InvalidArgument("trade record ID is required")
	}

	now := r.timeProvider.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	jsonData, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal trade record")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, tradeKey(record.ID), string(jsonData), 0)
	pipe.Publish(ctx, tradeChangeChannel, record.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to put trade record in Redis")
	}

	return nil
}

// Get retrieves a trade record by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*trade.Record, error) {
	jsonData, err := r.client.Get(ctx, tradeKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("trade record '%s' not found", id)
		}
		return nil, apperrors.Wrap(err, "failed to get trade record from Redis")
	}

	var record trade.Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal trade record")
	}

	return &record, nil
}

// Consume atomically removes and returns the record. GETDEL guarantees
// that when both parties race to execute, one sees the record and the
// other sees not-found.
func (r *redisRepo) Consume(ctx context.Context, id string) (*trade.Record, error) {
	jsonData, err := r.client.GetDel(ctx, tradeKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("trade record '%s' not found", id)
		}
		return nil, apperrors.Wrap(err, "failed to consume trade record from Redis")
	}

	var record trade.Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal trade record")
	}

	if err := r.client.Publish(ctx, tradeChangeChannel, id).Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to announce trade consumption")
	}

	return &record, nil
}

// Delete cancels a trade by removing its record
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	deleted, err := r.client.Del(ctx, tradeKey(id)).Result()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete trade record from Redis")
	}
	if deleted == 0 {
		return apperrors.NotFoundf("trade record '%s' not found", id)
	}

	if err := r.client.Publish(ctx, tradeChangeChannel, id).Err(); err != nil {
		return apperrors.Wrap(err, "failed to announce trade deletion")
	}

	return nil
}

// Watch subscribes to the trade change channel and forwards record IDs
// until the context is cancelled
func (r *redisRepo) Watch(ctx context.Context) (<-chan string, error) {
	pubsub := r.client.Subscribe(ctx, tradeChangeChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, apperrors.Wrap(err, "failed to subscribe to trade changes")
	}

	ch := make(chan string, 16)
	go func() {
		defer close(ch)
		defer func() { _ = pubsub.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				select {
				case ch <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
