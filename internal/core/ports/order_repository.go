// Package ports defines repository interfaces for the drug inventory domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are persisted with their full timeline and an optimistic concurrency
// version so that concurrent transitions on the same order are serialized.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, checking the
	// version the aggregate was loaded with. Fails with a
	// errs.VersionIsInvalidError when the stored version no longer matches
	// (another writer saved first); the caller must reload and retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its full timeline and current version.
	// Fails with errs.ObjectNotFoundError for unknown identifiers.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextOrderNumber atomically increments and returns the order number
	// sequence shared by the whole order collection. Values are never reused;
	// gaps are tolerated (a rolled-back creation burns its number).
	NextOrderNumber(ctx context.Context) (int64, error)
}
