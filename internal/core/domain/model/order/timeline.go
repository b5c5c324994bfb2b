package order

import (
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

// TimelineEntry is a value object recording one status change in an order's
// append-only audit log. The timeline is the single source of truth for the
// order's current status: the status field of the most recent entry always
// equals the order's status.
type TimelineEntry struct {
	status    Status
	timestamp time.Time
	note      string

	guard guard.ConstructorGuard
}

// NewTimelineEntry creates a timeline entry with validation.
// The status must be a valid member of the status set and the timestamp must
// not be zero.
func NewTimelineEntry(status Status, timestamp time.Time, note string) (TimelineEntry, error) {
	if err := status.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if timestamp.IsZero() {
		return TimelineEntry{}, errs.NewValueIsRequiredError("timeline entry timestamp")
	}

	return TimelineEntry{
		status:    status,
		timestamp: timestamp,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through NewTimelineEntry.
func (e TimelineEntry) Validate() error {
	return e.guard.Validate(errs.NewValueIsRequiredError("timeline entry must be created via NewTimelineEntry"))
}

// Status returns the status recorded by this entry.
func (e TimelineEntry) Status() Status {
	return e.status
}

// Timestamp returns when the status change occurred.
func (e TimelineEntry) Timestamp() time.Time {
	return e.timestamp
}

// Note returns the human-readable note attached to the change.
func (e TimelineEntry) Note() string {
	return e.note
}
