package drug

import (
	"fmt"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

// StockStatus represents the derived availability state of a drug.
// It is never set directly: the status is always a pure function of
// (quantity, reorderLevel, expiryDate) computed by DeriveStockStatus
// before the drug is persisted.
type StockStatus int

const (
	// StockStatusUnknown represents an invalid or undefined stock status.
	// This value (0) helps catch uninitialized StockStatus values.
	StockStatusUnknown StockStatus = iota

	// InStock indicates the drug is available above its reorder level
	// and within its shelf life.
	InStock

	// LowStock indicates the quantity has fallen to or below the reorder level.
	LowStock

	// OutOfStock indicates the quantity is exactly zero.
	OutOfStock

	// Expired indicates the drug's expiry date has passed while stock remains.
	Expired
)

// getStockStatusStrings returns a map of StockStatus values to their string
// representations. All statuses are included for string conversion.
func getStockStatusStrings() map[StockStatus]string {
	return map[StockStatus]string{
		StockStatusUnknown: "Unknown",
		InStock:            "In Stock",
		LowStock:           "Low Stock",
		OutOfStock:         "Out of Stock",
		Expired:            "Expired",
	}
}

// getValidStockStatusStrings returns a map of only valid StockStatus values.
func getValidStockStatusStrings() map[StockStatus]string {
	//nolint:exhaustive // StockStatusUnknown is intentionally excluded as it's invalid
	return map[StockStatus]string{
		InStock:    "In Stock",
		LowStock:   "Low Stock",
		OutOfStock: "Out of Stock",
		Expired:    "Expired",
	}
}

// Validate checks if the StockStatus value is valid.
// Valid statuses are: In Stock, Low Stock, Out of Stock, Expired.
func (s StockStatus) Validate() error {
	if _, ok := getValidStockStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock status is invalid",
			fmt.Errorf("%d is not a valid stock status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the stock status.
// Implements the fmt.Stringer interface and is safe to call on any
// StockStatus value, including invalid ones.
func (s StockStatus) String() string {
	if str, ok := getStockStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DeriveStockStatus computes the stock status for the given quantity,
// reorder level, and optional expiry date at the given point in time.
//
// Rules are evaluated in precedence order, first match wins:
//  1. quantity == 0            -> OutOfStock
//  2. quantity <= reorderLevel -> LowStock
//  3. expiry set, before now   -> Expired
//  4. otherwise                -> InStock
//
// The ordering is a deliberate policy choice: depletion and reorder signals
// take priority over expiry flags, because a zero-quantity drug cannot be
// expired-but-available. Callers must not reorder these checks.
func DeriveStockStatus(quantity, reorderLevel int, expiryDate *time.Time, now time.Time) StockStatus {
	switch {
	case quantity == 0:
		return OutOfStock
	case quantity <= reorderLevel:
		return LowStock
	case expiryDate != nil && expiryDate.Before(now):
		return Expired
	default:
		return InStock
	}
}
