package trades

import (
	"context"

	"github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/domain/trade"
)

// Repository stores the shared trade records both parties edit. Consume is
// the atomic claim used at execution time: it removes and returns the
// record in one step, so of the two clients that may simultaneously
// observe "both confirmed", exactly one gets to perform the transfer.
type Repository interface {
	Put(ctx context.Context, record *trade.Record) error
	Get(ctx context.Context, id string) (*trade.Record, error)
	Consume(ctx context.Context, id string) (*trade.Record, error)
	Delete(ctx context.Context, id string) error

	// Watch delivers the IDs of trade records as they change, until the
	// context is cancelled. It replaces interval polling of the host
	// store.
	Watch(ctx context.Context) (<-chan string, error)
}
