// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the status timeline are stored as JSONB documents: they are
// value collections owned by the order and are never queried independently.
// The version column carries the optimistic concurrency token.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber    string     `gorm:"uniqueIndex"`
	VendorID       uuid.UUID  `gorm:"type:uuid;index"`
	HospitalID     *uuid.UUID `gorm:"type:uuid"`
	Items          ItemsJSON  `gorm:"type:jsonb"`
	TotalAmount    float64
	Status         int `gorm:"index"`
	Priority       int
	Timeline       TimelineJSON `gorm:"type:jsonb"`
	ActualDelivery *time.Time
	Version        int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CounterDTO represents a named monotonic sequence shared by the application,
// such as the order and shipment number sequences. Increments run as a single
// upsert so concurrent readers never observe the same value.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for sequence counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// ItemDTO represents a single order line item within the JSONB items column.
type ItemDTO struct {
	DrugID    uuid.UUID `json:"drugId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

// ItemsJSON maps the order's line items to a JSONB column.
type ItemsJSON []ItemDTO

func (j ItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *ItemsJSON) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		s, sok := value.(string)
		if !sok {
			return fmt.Errorf("unsupported items column type %T", value)
		}
		raw = []byte(s)
	}
	return json.Unmarshal(raw, j)
}

// TimelineEntryDTO represents a single timeline entry within the JSONB timeline column.
type TimelineEntryDTO struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// TimelineJSON maps the order's append-only timeline to a JSONB column.
type TimelineJSON []TimelineEntryDTO

func (j TimelineJSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *TimelineJSON) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		s, sok := value.(string)
		if !sok {
			return fmt.Errorf("unsupported timeline column type %T", value)
		}
		raw = []byte(s)
	}
	return json.Unmarshal(raw, j)
}

// fromDomain converts an order domain aggregate to its database representation.
// The version column is written as-is; the repository bumps it on update.
func fromDomain(aggregate *order.Order) OrderDTO {
	var hospitalID *uuid.UUID
	if id := aggregate.HospitalID(); id != nil {
		raw := id.Bytes()
		hospitalID = &raw
	}

	items := make(ItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			DrugID:    item.DrugID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	timeline := make(TimelineJSON, 0, len(aggregate.Timeline()))
	for _, entry := range aggregate.Timeline() {
		timeline = append(timeline, TimelineEntryDTO{
			Status:    int(entry.Status()),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderNumber:    aggregate.OrderNumber().String(),
		VendorID:       aggregate.VendorID().Bytes(),
		HospitalID:     hospitalID,
		Items:          items,
		TotalAmount:    aggregate.TotalAmount(),
		Status:         int(aggregate.Status()),
		Priority:       int(aggregate.Priority()),
		Timeline:       timeline,
		ActualDelivery: aggregate.ActualDelivery(),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including timeline and version using RestoreOrder,
// so corrupted rows are rejected at the boundary.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var hospitalID *kernel.UUID
	if dto.HospitalID != nil {
		hID, hospitalErr := kernel.UUIDFromBytes((*dto.HospitalID)[:])
		if hospitalErr != nil {
			return nil, hospitalErr
		}

		hospitalID = &hID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		drugID, drugErr := kernel.UUIDFromBytes(itemDTO.DrugID[:])
		if drugErr != nil {
			return nil, drugErr
		}

		item, itemErr := order.NewItem(drugID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	timeline := make([]order.TimelineEntry, 0, len(dto.Timeline))
	for _, entryDTO := range dto.Timeline {
		entry, entryErr := order.NewTimelineEntry(
			order.Status(entryDTO.Status), entryDTO.Timestamp, entryDTO.Note)
		if entryErr != nil {
			return nil, entryErr
		}
		timeline = append(timeline, entry)
	}

	return order.RestoreOrder(
		id,
		orderNumber,
		vendorID,
		hospitalID,
		items,
		dto.TotalAmount,
		order.Status(dto.Status),
		order.Priority(dto.Priority),
		timeline,
		dto.ActualDelivery,
		dto.Version,
	)
}
