package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through one of the constructor functions.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via OrderNumberFromSequence or OrderNumberFromString",
)

// orderNumberPattern matches the fixed-width order number format, e.g. "ORD000007".
var orderNumberPattern = regexp.MustCompile(`^ORD(\d{6,})$`)

// OrderNumber is a value object representing the human-readable purchase order
// number. Numbers are derived from a monotonically increasing counter scoped to
// the whole order collection and formatted as a fixed-width zero-padded
// sequence: counter 7 becomes "ORD000007".
//
// The zero value is invalid; use OrderNumberFromSequence for new orders or
// OrderNumberFromString when rehydrating from persistence.
type OrderNumber struct {
	value string
}

// OrderNumberFromSequence formats a counter value into an order number.
// The sequence must be positive; counters start at 1.
func OrderNumberFromSequence(seq int64) (OrderNumber, error) {
	if seq <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number sequence",
			fmt.Errorf("%d is not greater than 0", seq),
		)
	}

	return OrderNumber{value: fmt.Sprintf("ORD%06d", seq)}, nil
}

// OrderNumberFromString parses a persisted order number.
// Returns an error if the string does not match the "ORD" + zero-padded
// sequence format.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not match the ORD format", s),
		)
	}

	return OrderNumber{value: s}, nil
}

// String returns the formatted order number, e.g. "ORD000042".
func (n OrderNumber) String() string {
	return n.value
}

// Sequence returns the counter value the order number was derived from.
func (n OrderNumber) Sequence() int64 {
	match := orderNumberPattern.FindStringSubmatch(n.value)
	if match == nil {
		return 0
	}
	seq, _ := strconv.ParseInt(match[1], 10, 64)
	return seq
}

// IsEqual compares two order numbers for equality.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks if the order number is properly constructed.
// Returns ErrOrderNumberIsNotConstructed for the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
