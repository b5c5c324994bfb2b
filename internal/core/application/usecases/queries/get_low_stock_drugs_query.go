// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read projections directly from storage.
package queries

import (
	"errors"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

var (
	ErrGetLowStockDrugsQueryIsNotConstructed = errors.New(
		"GetLowStockDrugsQuery must be created via NewGetLowStockDrugsQuery constructor",
	)
)

// GetLowStockDrugsQuery retrieves drugs at or below their reorder level.
// Used by purchasing staff to decide what to reorder.
//
// Example:
//
//	query := NewGetLowStockDrugsQuery()
//	handler := NewGetLowStockDrugsQueryHandler(db)
//
//	drugs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get low stock drugs: %w", err)
//	}
//
//	for _, d := range drugs {
//	    fmt.Printf("%s (%s): %d left, reorder at %d\n",
//	        d.Name, d.DrugCode, d.Quantity, d.ReorderLevel)
//	}
type GetLowStockDrugsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockDrugsQuery creates a query to retrieve drugs needing reorder.
// This is a parameterless query over the whole inventory.
func NewGetLowStockDrugsQuery() GetLowStockDrugsQuery {
	return GetLowStockDrugsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockDrugsQueryIsNotConstructed if validation fails.
func (q GetLowStockDrugsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockDrugsQueryIsNotConstructed)
}

// GetLowStockDrugsQueryResponse represents a drug flagged for reorder.
type GetLowStockDrugsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	DrugCode     string
	Quantity     int
	ReorderLevel int
	Status       string
}
