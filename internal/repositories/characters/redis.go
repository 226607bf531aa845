package characters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider repositories.TimeProvider
}

func characterKey(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character, stamping creation and update times
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.InvalidArgument("character ID is required")
	}

	now := r.timeProvider.Now()
	char.CreatedAt = now
	char.UpdatedAt = now

	jsonData, err := json.Marshal(char)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal character")
	}

	created, err := r.client.SetNX(ctx, characterKey(char.ID), string(jsonData), 0).Result()
	if err != nil {
		return apperrors.Wrap(err, "failed to create character in Redis")
	}
	if !created {
		return apperrors.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	if err := r.client.SAdd(ctx, ownerKey(char.OwnerID), char.ID).Err(); err != nil {
		return apperrors.Wrap(err, "failed to index character by owner")
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, characterKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, apperrors.Wrap(err, "failed to get character from Redis")
	}

	var char character.Character
	if err := json.Unmarshal(jsonData, &char); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal character")
	}

	char.Normalize()
	return &char, nil
}

// Update replaces a stored character record in full
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.InvalidArgument("character ID is required")
	}

	char.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(char)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal character")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, characterKey(char.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerKey(char.OwnerID), char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to update character in Redis")
	}

	return nil
}

// Delete removes a character and its owner-index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, characterKey(id))
	pipe.SRem(ctx, ownerKey(char.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to delete character from Redis")
	}

	return nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list owner characters from Redis")
	}

	chars := make([]*character.Character, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			char, err := r.Get(ctx, id)
			if err != nil {
				return apperrors.Wrapf(err, "failed to get character %s", id)
			}
			chars[i] = char
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return chars, nil
}
