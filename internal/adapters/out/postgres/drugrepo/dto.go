// Package drugrepo provides data transfer objects and mapping functions for
// inventory persistence. Implements the repository pattern for the drug
// aggregate, including the atomic increment primitive used by order delivery.
package drugrepo

import (
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/drug"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DrugDTO represents the database structure for persisting drug aggregates.
// The status column stores the derived stock status as of the last
// recomputation; reads return it as stored, without re-deriving.
type DrugDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	GenericName  string
	DrugCode     string `gorm:"uniqueIndex"`
	Category     string
	Manufacturer string
	BatchNumber  string
	ExpiryDate   *time.Time `gorm:"index"`
	Quantity     int
	UnitPrice    float64
	ReorderLevel int
	Status       int `gorm:"index"`
}

// TableName specifies the database table name for drug entities.
// Overrides GORM's default naming convention to use "drugs".
func (DrugDTO) TableName() string {
	return "drugs"
}

// fromDomain converts a drug domain aggregate to its database representation.
func fromDomain(aggregate *drug.Drug) DrugDTO {
	return DrugDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		GenericName:  aggregate.GenericName(),
		DrugCode:     aggregate.DrugCode(),
		Category:     aggregate.Category(),
		Manufacturer: aggregate.Manufacturer(),
		BatchNumber:  aggregate.BatchNumber(),
		ExpiryDate:   aggregate.ExpiryDate(),
		Quantity:     aggregate.Quantity(),
		UnitPrice:    aggregate.UnitPrice(),
		ReorderLevel: aggregate.ReorderLevel(),
		Status:       int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a drug domain aggregate using RestoreDrug,
// keeping the stored status rather than re-deriving it.
func toDomain(dto DrugDTO) (*drug.Drug, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return drug.RestoreDrug(
		id,
		dto.Name,
		dto.GenericName,
		dto.DrugCode,
		dto.Category,
		dto.Manufacturer,
		dto.BatchNumber,
		dto.ExpiryDate,
		dto.Quantity,
		dto.UnitPrice,
		dto.ReorderLevel,
		drug.StockStatus(dto.Status),
	)
}
