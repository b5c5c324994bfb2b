// Package shipment provides the Shipment aggregate tracking physical delivery
// of a shipped purchase order. A shipment is created when its order reaches
// Shipped status and follows its own transit state machine, mirroring the
// terminal-state discipline of the order lifecycle.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")

	// ErrShipmentAlreadyTerminal is returned when a transition is attempted out
	// of a terminal status (Delivered or Returned).
	ErrShipmentAlreadyTerminal = errors.New("shipment is in a terminal status")
)

// Shipment tracks the physical transit of a shipped purchase order.
type Shipment struct {
	id                kernel.UUID
	shipmentNumber    string
	orderID           kernel.UUID
	trackingNumber    string
	carrier           string
	status            Status
	estimatedDelivery *time.Time
	actualDelivery    *time.Time

	isConstructed bool
}

// NewShipment creates a shipment in Preparing status for the given order.
// Tracking number and carrier may be empty until the carrier assigns them.
func NewShipment(
	id kernel.UUID,
	shipmentNumber string,
	orderID kernel.UUID,
	trackingNumber, carrier string,
	estimatedDelivery *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		trackingNumber:    trackingNumber,
		carrier:           carrier,
		estimatedDelivery: copyTime(estimatedDelivery),
		status:            Preparing,
		isConstructed:     true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setShipmentNumber(shipmentNumber),
		s.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	shipmentNumber string,
	orderID kernel.UUID,
	trackingNumber, carrier string,
	status Status,
	estimatedDelivery, actualDelivery *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		trackingNumber:    trackingNumber,
		carrier:           carrier,
		estimatedDelivery: copyTime(estimatedDelivery),
		actualDelivery:    copyTime(actualDelivery),
		isConstructed:     true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setShipmentNumber(shipmentNumber),
		s.setOrderID(orderID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s.status = status
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a factory method.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ShipmentNumber returns the human-readable shipment number.
func (s *Shipment) ShipmentNumber() string {
	return s.shipmentNumber
}

// OrderID returns the identifier of the order this shipment carries.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// TrackingNumber returns the carrier tracking number, if assigned.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Carrier returns the carrier name, if assigned.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// Status returns the current transit status.
func (s *Shipment) Status() Status {
	return s.status
}

// EstimatedDelivery returns the promised delivery time, if known.
func (s *Shipment) EstimatedDelivery() *time.Time {
	return copyTime(s.estimatedDelivery)
}

// ActualDelivery returns when the shipment arrived, or nil while in transit.
func (s *Shipment) ActualDelivery() *time.Time {
	return copyTime(s.actualDelivery)
}

// ChangeStatus moves the shipment to the target transit status.
// Terminal statuses (Delivered, Returned) reject further transitions.
// Reaching Delivered stamps the actual delivery time.
func (s *Shipment) ChangeStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrShipmentAlreadyTerminal, s.status)
	}

	s.status = target
	if target == Delivered {
		s.actualDelivery = &now
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setShipmentNumber(shipmentNumber string) error {
	if shipmentNumber == "" {
		return errs.NewValueIsRequiredError("shipment number")
	}
	s.shipmentNumber = shipmentNumber
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	s.orderID = orderID
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
