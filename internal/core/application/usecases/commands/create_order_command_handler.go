package commands

import (
	"context"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Assigns the next order number from the collection-wide sequence, computes
// the total amount from the line items, and creates the order in Pending
// status with its initial timeline entry.
//
// The order number is obtained inside the same transaction as the insert, so
// concurrent creations never collide; a rolled-back creation burns its
// number, which is acceptable (numbers are unique, not gapless).
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the order creation command.
// Uses a transaction to ensure the order number increment and the order
// insert are persisted together or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	seq, err := orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return err
	}

	orderNumber, err := kernel.OrderNumberFromSequence(seq)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		orderNumber,
		cmd.VendorID(),
		cmd.HospitalID(),
		cmd.Items(),
		cmd.Priority(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
