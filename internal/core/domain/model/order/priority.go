package order

import (
	"fmt"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

// Priority represents the urgency of a purchase order.
// It has no effect on the lifecycle state machine; it is carried for
// reporting and vendor communication.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// Low priority orders can wait for the next regular shipment.
	Low

	// Medium is the default priority for routine restocking.
	Medium

	// High priority orders should be expedited.
	High

	// Urgent orders cover imminent stockouts of critical drugs.
	Urgent
)

// getPriorityStrings returns a map of Priority values to their string representations.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		Low:             "Low",
		Medium:          "Medium",
		High:            "High",
		Urgent:          "Urgent",
	}
}

// getValidPriorityStrings returns a map of only valid Priority values.
func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		Low:    "Low",
		Medium: "Medium",
		High:   "High",
		Urgent: "Urgent",
	}
}

// PriorityFromString parses a priority name as received from external callers.
func PriorityFromString(s string) (Priority, error) {
	for priority, name := range getValidPriorityStrings() {
		if name == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order priority",
		fmt.Errorf("%q is not a valid order priority", s),
	)
}

// Validate checks if the Priority value is a member of the closed priority set.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order priority",
			fmt.Errorf("%d is not a valid order priority", p),
		)
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
