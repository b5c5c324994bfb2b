package shipment

import (
	"fmt"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

// Status represents the transit state of a shipment.
// Delivered and Returned are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Preparing is the initial status while the carrier packs the shipment.
	Preparing

	// InTransit indicates the shipment is on its way.
	InTransit

	// Delivered indicates the shipment arrived. Terminal.
	Delivered

	// Delayed indicates the carrier reported a delay.
	Delayed

	// Returned indicates the shipment went back to the vendor. Terminal.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Preparing:     "Preparing",
		InTransit:     "In Transit",
		Delivered:     "Delivered",
		Delayed:       "Delayed",
		Returned:      "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing: "Preparing",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Delayed:   "Delayed",
		Returned:  "Returned",
	}
}

// StatusFromString parses a shipment status name as received from external callers.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks if the Status value is a member of the closed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned
}
