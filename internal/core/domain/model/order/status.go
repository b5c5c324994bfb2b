package order

import (
	"fmt"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with a terminal-state guard to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered (terminal)
//	   │            │              │            │
//	   └────────────┴──────────────┴────────────┴──────> Cancelled (terminal)
//
// Any non-terminal status may move to any other valid status, including
// itself (re-entrant transitions append a duplicate timeline entry).
// Delivered and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the vendor has acknowledged the order.
	// Line items are immutable from this point on.
	Confirmed

	// Processing indicates the vendor is preparing the order.
	Processing

	// Shipped indicates the order has left the vendor's facility.
	Shipped

	// Delivered indicates the order has arrived and stock has been received.
	// This is a terminal state; reaching it triggers inventory reconciliation
	// exactly once.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	// This is a terminal state with no inventory side effects.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Confirmed:     "Confirmed",
		Processing:    "Processing",
		Shipped:       "Shipped",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status name as received from external callers.
// Returns an error for any value outside the closed status set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is a member of the closed status set.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
