package queries

import (
	"errors"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery or NewGetAllOrdersQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves orders from the order book, optionally
// filtered by lifecycle status. Used by the order listing endpoint for
// monitoring the purchasing pipeline.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Pending)
//	if err != nil {
//	    return fmt.Errorf("invalid status filter: %w", err)
//	}
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	status    order.Status
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query filtered to a single status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status:    status,
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewGetAllOrdersQuery creates an unfiltered query over the whole order book.
func NewGetAllOrdersQuery() GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status filter. Only meaningful when HasFilter is true.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// HasFilter reports whether a status filter was supplied.
func (q GetOrdersByStatusQuery) HasFilter() bool {
	return q.hasFilter
}

// GetOrdersByStatusQueryResponse represents a row of the order listing.
// The status and priority are returned as their string representations so
// presentation layers do not depend on the internal enum values.
type GetOrdersByStatusQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	VendorID    kernel.UUID
	Status      string
	Priority    string
	TotalAmount float64
}
