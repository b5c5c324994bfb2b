package queries

import (
	"context"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves order listings from the database.
// Reads the order book directly, bypassing aggregate rehydration: listings do
// not need the timeline or the concurrency version.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the order listing query.
// Results are sorted by order number for consistent output.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_number,
			vendor_id,
			status,
			priority,
			total_amount
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.HasFilter() {
		sql += ` WHERE status = ?`
		args = append(args, int(query.Status()))
	}
	sql += ` ORDER BY order_number`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	for rows.Next() {
		var orderResp GetOrdersByStatusQueryResponse
		var id, vendorID uuid.UUID
		var status, priority int

		err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&vendorID,
			&status,
			&priority,
			&orderResp.TotalAmount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderVendorID, idErr := kernel.UUIDFromBytes(vendorID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.VendorID = orderVendorID

		orderResp.Status = order.Status(status).String()
		orderResp.Priority = order.Priority(priority).String()
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
