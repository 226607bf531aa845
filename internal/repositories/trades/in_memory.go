package trades

import (
	"context"
	"sync"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/trade"
	apperrors "github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/errors"
	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories"
)

// InMemoryRepository is an in-memory trade record store with channel
// fan-out for watchers. Useful for testing and development.
type InMemoryRepository struct {
	mu           sync.RWMutex
	records      map[string]*trade.Record
	watchers     []chan string
	timeProvider repositories.TimeProvider
}

// NewInMemoryRepository creates a new in-memory trade repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records:      make(map[string]*trade.Record),
		timeProvider: repositories.RealTimeProvider{},
	}
}

func (r *InMemoryRepository) notifyLocked(id string) {
	for _, ch := range r.watchers {
		select {
		case ch <- id:
		default: // slow watcher, drop rather than block the write path
		}
	}
}

// Put creates or fully replaces a trade record
func (r *InMemoryRepository) Put(ctx context.Context, record *trade.Record) error {
	if record == nil {
		return apperrors.InvalidArgument("trade record cannot be nil")
	}
	if record.ID == "" {
		return apperrors.InvalidArgument("trade record ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	stored := *record
	r.records[record.ID] = &stored
	r.notifyLocked(record.ID)

	return nil
}

// Get retrieves a trade record by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*trade.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, apperrors.NotFoundf("trade record '%s' not found", id)
	}

	copied := *record
	return &copied, nil
}

// Consume removes and returns the record in one step. A missing record
// means another client already claimed it.
func (r *InMemoryRepository) Consume(ctx context.Context, id string) (*trade.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.records[id]
	if !exists {
		return nil, apperrors.NotFoundf("trade record '%s' not found", id)
	}

	delete(r.records, id)
	r.notifyLocked(id)

	copied := *record
	return &copied, nil
}

// Delete cancels a trade by removing its record
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return apperrors.NotFoundf("trade record '%s' not found", id)
	}

	delete(r.records, id)
	r.notifyLocked(id)
	return nil
}

// Watch delivers changed record IDs until the context is cancelled
func (r *InMemoryRepository) Watch(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 16)

	r.mu.Lock()
	r.watchers = append(r.watchers, ch)
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		for i, w := range r.watchers {
			if w == ch {
				r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
				break
			}
		}
		r.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}
