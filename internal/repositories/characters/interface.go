package characters

import (
	"context"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
)

// Repository defines the interface for character storage operations.
// Writes are always full-record replaces; the host store offers no
// locking, so partial patches would widen the lost-update window.
type Repository interface {
	Create(ctx context.Context, char *character.Character) error
	Get(ctx context.Context, id string) (*character.Character, error)
	Update(ctx context.Context, char *character.Character) error
	Delete(ctx context.Context, id string) error
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)
}
