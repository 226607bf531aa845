package characters

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/character"
	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// deepCopy round-trips through JSON so stored records cannot alias the
// caller's nested slices and maps
func deepCopy(char *character.Character) (*character.Character, error) {
	data, err := json.Marshal(char)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to copy character")
	}
	var copied character.Character
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, apperrors.Wrap(err, "failed to copy character")
	}
	copied.Normalize()
	return &copied, nil
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return apperrors.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	copied, err := deepCopy(char)
	if err != nil {
		return err
	}
	r.characters[char.ID] = copied

	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, apperrors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return deepCopy(char)
}

// Update replaces a stored character
func (r *InMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return apperrors.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	copied, err := deepCopy(char)
	if err != nil {
		return err
	}
	r.characters[char.ID] = copied

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return apperrors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*character.Character
	for _, char := range r.characters {
		if char.OwnerID != ownerID {
			continue
		}
		copied, err := deepCopy(char)
		if err != nil {
			return nil, err
		}
		result = append(result, copied)
	}

	return result, nil
}
