package queries

import (
	"context"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/drug"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockDrugsQueryHandler retrieves reorder candidates from the database.
// The quantity comparison runs against stored columns rather than the stored
// status, so a drug whose status has not been refreshed yet is still caught.
type GetLowStockDrugsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockDrugsQueryHandler creates a handler for low stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockDrugsQueryHandler(db *gorm.DB) GetLowStockDrugsQueryHandler {
	return GetLowStockDrugsQueryHandler{db: db}
}

// Handle executes the query to retrieve drugs at or below their reorder level.
// Results are sorted by quantity so the most depleted drugs come first.
func (h GetLowStockDrugsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockDrugsQuery,
) ([]GetLowStockDrugsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drugs := make([]GetLowStockDrugsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			drug_code,
			quantity,
			reorder_level,
			status
		FROM drugs
		WHERE quantity <= reorder_level
		ORDER BY quantity, drug_code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var drugResp GetLowStockDrugsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&drugResp.Name,
			&drugResp.DrugCode,
			&drugResp.Quantity,
			&drugResp.ReorderLevel,
			&status,
		)
		if err != nil {
			return nil, err
		}

		drugID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		drugResp.ID = drugID

		drugResp.Status = drug.StockStatus(status).String()
		drugs = append(drugs, drugResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drugs, nil
}
