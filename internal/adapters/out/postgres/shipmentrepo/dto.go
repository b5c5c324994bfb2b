// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence.
package shipmentrepo

import (
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
type ShipmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentNumber    string    `gorm:"uniqueIndex"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber    string
	Carrier           string
	Status            int `gorm:"index"`
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		ShipmentNumber:    aggregate.ShipmentNumber(),
		OrderID:           aggregate.OrderID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber(),
		Carrier:           aggregate.Carrier(),
		Status:            int(aggregate.Status()),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.ShipmentNumber,
		orderID,
		dto.TrackingNumber,
		dto.Carrier,
		shipment.Status(dto.Status),
		dto.EstimatedDelivery,
		dto.ActualDelivery,
	)
}
