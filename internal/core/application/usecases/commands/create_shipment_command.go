package commands

import (
	"errors"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to open a shipment for a shipped
// order. The shipment number is not part of the command: it is assigned
// server-side from the shipment sequence.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	orderID           kernel.UUID
	trackingNumber    string
	carrier           string
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
// Tracking number and carrier may be empty until the carrier assigns them.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderID kernel.UUID,
	trackingNumber, carrier string,
	estimatedDelivery *time.Time,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		trackingNumber: trackingNumber,
		carrier:        carrier,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setOrderID(orderID),
		shipmentCommand.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the identifier of the order to ship.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the carrier tracking number, if assigned.
func (c CreateShipmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Carrier returns the carrier name, if assigned.
func (c CreateShipmentCommand) Carrier() string {
	return c.carrier
}

// EstimatedDelivery returns the promised delivery time, if known.
func (c CreateShipmentCommand) EstimatedDelivery() *time.Time {
	if c.estimatedDelivery == nil {
		return nil
	}
	t := *c.estimatedDelivery
	return &t
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setEstimatedDelivery(estimatedDelivery *time.Time) error {
	if estimatedDelivery == nil {
		return nil
	}
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsInvalidError("estimated delivery")
	}

	t := *estimatedDelivery
	c.estimatedDelivery = &t
	return nil
}
