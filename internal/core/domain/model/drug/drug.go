package drug

import (
	"errors"
	"fmt"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

var (
	// ErrDrugIsNotConstructed is returned when a Drug instance was not created
	// through the NewDrug or RestoreDrug factory methods.
	ErrDrugIsNotConstructed = errors.New("Drug must be created via NewDrug or RestoreDrug constructor")
)

// Drug represents a pharmaceutical product held in inventory. It is an
// aggregate root tracking identity, catalog attributes, and stock level.
//
// Drug follows these invariants:
//   - Must have a valid unique identifier, name, and drug code
//   - Quantity and reorder level are never negative
//   - Unit price is never negative
//   - Stock status is always the result of DeriveStockStatus over
//     (quantity, reorderLevel, expiryDate) at the last recomputation;
//     it is never independently settable
//
// Quantity is mutated by order delivery and manual adjustment only. A drug is
// never deleted while referenced by an order.
type Drug struct {
	id           kernel.UUID
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
	status       StockStatus

	isConstructed bool
}

// NewDrug creates a new Drug for inventory intake with validation.
// The stock status is derived from the initial quantity, reorder level, and
// expiry date at the given time.
func NewDrug(
	id kernel.UUID,
	name, genericName, drugCode, category, manufacturer, batchNumber string,
	expiryDate *time.Time,
	quantity int,
	unitPrice float64,
	reorderLevel int,
	now time.Time,
) (*Drug, error) {
	d := &Drug{
		category:      category,
		manufacturer:  manufacturer,
		batchNumber:   batchNumber,
		expiryDate:    copyTime(expiryDate),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setGenericName(genericName),
		d.setDrugCode(drugCode),
		d.setQuantity(quantity),
		d.setUnitPrice(unitPrice),
		d.setReorderLevel(reorderLevel),
	); err != nil {
		return nil, err
	}

	d.status = DeriveStockStatus(d.quantity, d.reorderLevel, d.expiryDate, now)
	return d, nil
}

// RestoreDrug reconstructs a Drug from persistence.
// The stored status is validated but not re-derived: rehydration must not
// change state that was persisted.
func RestoreDrug(
	id kernel.UUID,
	name, genericName, drugCode, category, manufacturer, batchNumber string,
	expiryDate *time.Time,
	quantity int,
	unitPrice float64,
	reorderLevel int,
	status StockStatus,
) (*Drug, error) {
	d := &Drug{
		category:      category,
		manufacturer:  manufacturer,
		batchNumber:   batchNumber,
		expiryDate:    copyTime(expiryDate),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setGenericName(genericName),
		d.setDrugCode(drugCode),
		d.setQuantity(quantity),
		d.setUnitPrice(unitPrice),
		d.setReorderLevel(reorderLevel),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Drug instance was properly constructed through a factory method.
func (d *Drug) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDrugIsNotConstructed
	}
	return nil
}

// IsEqual compares two drugs by their unique identifiers.
func (d *Drug) IsEqual(other *Drug) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the drug's unique identifier.
func (d *Drug) ID() kernel.UUID {
	return d.id
}

// Name returns the drug's brand name.
func (d *Drug) Name() string {
	return d.name
}

// GenericName returns the drug's generic (non-proprietary) name.
func (d *Drug) GenericName() string {
	return d.genericName
}

// DrugCode returns the unique catalog code.
func (d *Drug) DrugCode() string {
	return d.drugCode
}

// Category returns the therapeutic category.
func (d *Drug) Category() string {
	return d.category
}

// Manufacturer returns the manufacturer name.
func (d *Drug) Manufacturer() string {
	return d.manufacturer
}

// BatchNumber returns the current batch number, if recorded.
func (d *Drug) BatchNumber() string {
	return d.batchNumber
}

// ExpiryDate returns the expiry date, or nil if none was recorded.
func (d *Drug) ExpiryDate() *time.Time {
	return copyTime(d.expiryDate)
}

// Quantity returns the current stock quantity.
func (d *Drug) Quantity() int {
	return d.quantity
}

// UnitPrice returns the unit price.
func (d *Drug) UnitPrice() float64 {
	return d.unitPrice
}

// ReorderLevel returns the quantity threshold at which the drug is flagged low.
func (d *Drug) ReorderLevel() int {
	return d.reorderLevel
}

// Status returns the derived stock status as of the last recomputation.
func (d *Drug) Status() StockStatus {
	return d.status
}

// AdjustQuantity applies a manual stock adjustment of delta units (positive or
// negative) and re-derives the stock status. Fails if the adjustment would
// take the quantity below zero.
func (d *Drug) AdjustQuantity(delta int, now time.Time) error {
	newQuantity := d.quantity + delta
	if newQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity adjustment",
			fmt.Errorf("delta %d would take quantity %d below 0", delta, d.quantity),
		)
	}

	d.quantity = newQuantity
	d.status = DeriveStockStatus(d.quantity, d.reorderLevel, d.expiryDate, now)
	return nil
}

// RefreshStatus re-derives the stock status at the given time and reports
// whether it changed. Used by the expiry sweep: a drug whose expiry date has
// passed moves to Expired without any quantity mutation.
func (d *Drug) RefreshStatus(now time.Time) bool {
	derived := DeriveStockStatus(d.quantity, d.reorderLevel, d.expiryDate, now)
	if derived == d.status {
		return false
	}

	d.status = derived
	return true
}

func (d *Drug) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drug) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Drug) setGenericName(genericName string) error {
	if genericName == "" {
		return errs.NewValueIsRequiredError("generic name")
	}
	d.genericName = genericName
	return nil
}

func (d *Drug) setDrugCode(drugCode string) error {
	if drugCode == "" {
		return errs.NewValueIsRequiredError("drug code")
	}
	d.drugCode = drugCode
	return nil
}

func (d *Drug) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than or equal to 0", quantity),
		)
	}
	d.quantity = quantity
	return nil
}

func (d *Drug) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%v is not greater than or equal to 0", unitPrice),
		)
	}
	d.unitPrice = unitPrice
	return nil
}

func (d *Drug) setReorderLevel(reorderLevel int) error {
	if reorderLevel < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"reorder level",
			fmt.Errorf("%d is not greater than or equal to 0", reorderLevel),
		)
	}
	d.reorderLevel = reorderLevel
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
