package ports

import (
	"context"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/drug"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
)

// DrugRepository defines the persistence contract for the inventory store.
// Quantity changes triggered by order delivery go through IncrementQuantity,
// an increment-by-delta primitive that is atomic per drug record, so two
// orders delivering the same drug concurrently both apply without a
// read-modify-write race.
type DrugRepository interface {
	// Add persists a new drug record.
	Add(ctx context.Context, aggregate *drug.Drug) error

	// Update persists changes to an existing drug record.
	Update(ctx context.Context, aggregate *drug.Drug) error

	// Get retrieves a drug by its unique identifier.
	// Fails with errs.ObjectNotFoundError for unknown identifiers.
	Get(ctx context.Context, id kernel.UUID) (*drug.Drug, error)

	// IncrementQuantity atomically adds delta to the drug's stored quantity
	// and returns the updated aggregate. Delta may be negative; the operation
	// fails if it would take the quantity below zero. The returned aggregate
	// carries the stored (stale) status: callers must re-derive it via the
	// status policy and persist the result with Update.
	IncrementQuantity(ctx context.Context, id kernel.UUID, delta int) (*drug.Drug, error)

	// GetExpiredBefore retrieves drugs whose expiry date is before the given
	// time and whose stored status is not yet Expired. Used by the expiry
	// sweep to refresh derived statuses.
	GetExpiredBefore(ctx context.Context, now time.Time) ([]*drug.Drug, error)
}
