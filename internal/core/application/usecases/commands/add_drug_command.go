package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

var (
	ErrAddDrugCommandIsNotConstructed = errors.New(
		"AddDrugCommand must be created via NewAddDrugCommand constructor",
	)
)

// AddDrugCommand represents a request to register a new drug in the inventory.
// The stock status is not part of the command: it is derived from the
// quantity, reorder level, and expiry date at creation time.
type AddDrugCommand struct { //nolint:recvcheck //using for validation
	drugID       kernel.UUID
	name         string
	genericName  string
	drugCode     string
	category     string
	manufacturer string
	batchNumber  string
	expiryDate   *time.Time
	quantity     int
	unitPrice    float64
	reorderLevel int

	guard guard.ConstructorGuard
}

// NewAddDrugCommand creates a command to register a new inventory drug.
// Name, generic name, and drug code are required; quantity, unit price, and
// reorder level must be non-negative. Category, manufacturer, batch number,
// and expiry date are optional catalog attributes.
func NewAddDrugCommand(
	drugID kernel.UUID,
	name, genericName, drugCode, category, manufacturer, batchNumber string,
	expiryDate *time.Time,
	quantity int,
	unitPrice float64,
	reorderLevel int,
) (AddDrugCommand, error) {
	drugCommand := AddDrugCommand{
		category:     category,
		manufacturer: manufacturer,
		batchNumber:  batchNumber,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		drugCommand.setDrugID(drugID),
		drugCommand.setName(name),
		drugCommand.setGenericName(genericName),
		drugCommand.setDrugCode(drugCode),
		drugCommand.setExpiryDate(expiryDate),
		drugCommand.setQuantity(quantity),
		drugCommand.setUnitPrice(unitPrice),
		drugCommand.setReorderLevel(reorderLevel),
	); err != nil {
		return AddDrugCommand{}, err
	}

	return drugCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddDrugCommandIsNotConstructed if validation fails.
func (c AddDrugCommand) Validate() error {
	return c.guard.Validate(ErrAddDrugCommandIsNotConstructed)
}

// DrugID returns the unique identifier for the new drug.
func (c AddDrugCommand) DrugID() kernel.UUID {
	return c.drugID
}

// Name returns the drug's brand name.
func (c AddDrugCommand) Name() string {
	return c.name
}

// GenericName returns the drug's generic name.
func (c AddDrugCommand) GenericName() string {
	return c.genericName
}

// DrugCode returns the unique catalog code.
func (c AddDrugCommand) DrugCode() string {
	return c.drugCode
}

// Category returns the therapeutic category.
func (c AddDrugCommand) Category() string {
	return c.category
}

// Manufacturer returns the manufacturer name.
func (c AddDrugCommand) Manufacturer() string {
	return c.manufacturer
}

// BatchNumber returns the batch number.
func (c AddDrugCommand) BatchNumber() string {
	return c.batchNumber
}

// ExpiryDate returns the optional expiry date.
func (c AddDrugCommand) ExpiryDate() *time.Time {
	if c.expiryDate == nil {
		return nil
	}
	t := *c.expiryDate
	return &t
}

// Quantity returns the initial stock quantity.
func (c AddDrugCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the unit price.
func (c AddDrugCommand) UnitPrice() float64 {
	return c.unitPrice
}

// ReorderLevel returns the low-stock threshold.
func (c AddDrugCommand) ReorderLevel() int {
	return c.reorderLevel
}

func (c *AddDrugCommand) setDrugID(drugID kernel.UUID) error {
	if err := drugID.Validate(); err != nil {
		return err
	}

	c.drugID = drugID
	return nil
}

func (c *AddDrugCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddDrugCommand) setGenericName(genericName string) error {
	if genericName == "" {
		return errs.NewValueIsRequiredError("generic name")
	}

	c.genericName = genericName
	return nil
}

func (c *AddDrugCommand) setDrugCode(drugCode string) error {
	if drugCode == "" {
		return errs.NewValueIsRequiredError("drug code")
	}

	c.drugCode = drugCode
	return nil
}

func (c *AddDrugCommand) setExpiryDate(expiryDate *time.Time) error {
	if expiryDate == nil {
		return nil
	}
	if expiryDate.IsZero() {
		return errs.NewValueIsInvalidError("expiry date")
	}

	t := *expiryDate
	c.expiryDate = &t
	return nil
}

func (c *AddDrugCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than or equal to 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

func (c *AddDrugCommand) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%v is not greater than or equal to 0", unitPrice),
		)
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *AddDrugCommand) setReorderLevel(reorderLevel int) error {
	if reorderLevel < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"reorder level",
			fmt.Errorf("%d is not greater than or equal to 0", reorderLevel),
		)
	}

	c.reorderLevel = reorderLevel
	return nil
}
