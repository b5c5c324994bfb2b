package commands

import (
	"context"
	"fmt"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/shipment"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles shipment creation for shipped orders.
// Verifies the order exists and has reached Shipped status before opening a
// shipment in Preparing status with the next shipment number.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory spanning the shipment store and the order book.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// The order lookup, sequence increment, and shipment insert share one
// transaction so a rejected order state never burns a shipment number that
// was also persisted.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if orderAggregate.Status() != order.Shipped {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("shipment requires order in %s status, order %s is %s",
				order.Shipped, orderAggregate.OrderNumber(), orderAggregate.Status()),
		)
	}

	shipmentRepo := uow.ShipmentRepository()

	seq, err := shipmentRepo.NextShipmentNumber(ctx)
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		fmt.Sprintf("SHP%06d", seq),
		cmd.OrderID(),
		cmd.TrackingNumber(),
		cmd.Carrier(),
		cmd.EstimatedDelivery(),
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
