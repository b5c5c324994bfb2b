package commands

import (
	"errors"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new purchase order.
// Encapsulates the vendor, optional destination hospital, line items, and
// priority. The order number and total amount are not part of the command:
// both are computed server-side.
//
// Example:
//
//	item, _ := order.NewItem(drugID, 3, 10)
//	cmd, err := NewCreateOrderCommand(orderID, vendorID, nil, []order.Item{item}, order.High)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	vendorID   kernel.UUID
	hospitalID *kernel.UUID
	items      []order.Item
	priority   order.Priority

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates that identifiers are valid, the item list is non-empty with
// properly constructed items, and the priority is a valid member of the
// priority set.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	hospitalID *kernel.UUID,
	items []order.Item,
	priority order.Priority,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setVendorID(vendorID),
		orderCommand.setHospitalID(hospitalID),
		orderCommand.setItems(items),
		orderCommand.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the supplying vendor's identifier.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// HospitalID returns the optional destination hospital's identifier.
func (c CreateOrderCommand) HospitalID() *kernel.UUID {
	return c.hospitalID
}

// Items returns the order line items.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// Priority returns the requested order priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setHospitalID(hospitalID *kernel.UUID) error {
	if hospitalID == nil {
		return nil
	}
	if err := hospitalID.Validate(); err != nil {
		return err
	}

	id := *hospitalID
	c.hospitalID = &id
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return order.ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
