package order

import (
	"fmt"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

// Item is a value object representing a single order line: a drug reference,
// an ordered quantity, and the unit price agreed with the vendor.
//
// Items are immutable; the line total is always quantity times unit price and
// the order total is always the sum of line totals, computed server-side and
// never trusted from caller input.
type Item struct {
	drugID    kernel.UUID
	quantity  int
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation: the drug reference must be
// valid, quantity must be positive, and unit price must not be negative.
func NewItem(drugID kernel.UUID, quantity int, unitPrice float64) (Item, error) {
	if err := drugID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item unit price",
			fmt.Errorf("%v is not greater than or equal to 0", unitPrice),
		)
	}

	return Item{
		drugID:    drugID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(errs.NewValueIsRequiredError("item must be created via NewItem"))
}

// DrugID returns the referenced drug's identifier.
func (i Item) DrugID() kernel.UUID {
	return i.drugID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the agreed unit price.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// TotalPrice returns the line total (quantity times unit price).
func (i Item) TotalPrice() float64 {
	return float64(i.quantity) * i.unitPrice
}

// StockAdjustment is a (drugID, delta) pair describing a quantity increment to
// apply atomically to inventory. Adjustments are emitted by the Delivered
// transition, exactly once per order, and applied by the caller through the
// inventory store's atomic increment primitive.
type StockAdjustment struct {
	DrugID kernel.UUID
	Delta  int
}
