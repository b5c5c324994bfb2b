package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyTerminal is returned when a transition is attempted out of
	// a terminal status (Delivered or Cancelled). Terminal orders are immutable;
	// this guard is also what makes the Delivered inventory reconciliation an
	// exactly-once effect.
	ErrOrderAlreadyTerminal = errors.New("order is in a terminal status")

	// ErrItemsAreRequired is returned when an order is created with no line items.
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// Order represents a purchase order in the supply chain. It is the aggregate
// root owning the order's status, priority, line items, and the append-only
// status timeline.
//
// Order maintains these invariants:
//   - The timeline has at least one entry; the first is always Pending at
//     creation time
//   - Timeline timestamps are monotonically non-decreasing
//   - The status field always equals the status of the most recent
//     timeline entry
//   - actualDelivery is set if and only if the order reached Delivered,
//     and is set exactly once
//   - Line items are immutable after construction; cancellation is the only
//     late change and never touches the item list
//
// All mutation goes through ChangeStatus; there is no other way to move an
// order through its lifecycle.
type Order struct {
	id             kernel.UUID
	orderNumber    kernel.OrderNumber
	vendorID       kernel.UUID
	hospitalID     *kernel.UUID
	items          []Item
	totalAmount    float64
	status         Status
	priority       Priority
	timeline       []TimelineEntry
	actualDelivery *time.Time

	// version is the optimistic concurrency token assigned by the repository.
	// Zero for aggregates that have never been persisted.
	version int64

	isConstructed bool
}

// NewOrder creates a new purchase order in Pending status with validation.
// The total amount is computed from the line items; the timeline is
// initialized with a single Pending entry at creation time.
//
// hospitalID is optional and may be nil for orders destined for the central
// warehouse rather than a specific hospital.
func NewOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	vendorID kernel.UUID,
	hospitalID *kernel.UUID,
	items []Item,
	priority Priority,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setVendorID(vendorID),
		o.setHospitalID(hospitalID),
		o.setItems(items),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	created, err := NewTimelineEntry(Pending, now, "Order created")
	if err != nil {
		return nil, err
	}
	o.timeline = []TimelineEntry{created}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its full
// timeline and optimistic concurrency version. The aggregate invariants are
// re-checked so that corrupted rows are rejected at the boundary.
func RestoreOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	vendorID kernel.UUID,
	hospitalID *kernel.UUID,
	items []Item,
	totalAmount float64,
	status Status,
	priority Priority,
	timeline []TimelineEntry,
	actualDelivery *time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setVendorID(vendorID),
		o.setHospitalID(hospitalID),
		o.setItems(items),
		o.setPriority(priority),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(timeline) == 0 {
		return nil, errs.NewValueIsRequiredError("order timeline")
	}
	for _, entry := range timeline {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	if last := timeline[len(timeline)-1].Status(); last != status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("status %s does not match last timeline entry %s", status, last),
		)
	}
	if (actualDelivery != nil) != (status == Delivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"actual delivery",
			fmt.Errorf("actual delivery must be set exactly when status is Delivered, status is %s", status),
		)
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order")
	}

	o.status = status
	o.totalAmount = totalAmount
	o.timeline = append([]TimelineEntry(nil), timeline...)
	o.actualDelivery = copyTime(actualDelivery)
	o.version = version

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// VendorID returns the supplying vendor's identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// HospitalID returns the destination hospital's identifier.
// Returns nil for central warehouse orders.
func (o *Order) HospitalID() *kernel.UUID {
	return o.hospitalID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalAmount returns the server-computed order total: the sum of
// quantity times unit price over all line items.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current status of the order. It always equals the
// status of the most recent timeline entry.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the order's priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Timeline returns a copy of the append-only status change log.
func (o *Order) Timeline() []TimelineEntry {
	return append([]TimelineEntry(nil), o.timeline...)
}

// ActualDelivery returns when the order was delivered, or nil if it has not
// reached Delivered.
func (o *Order) ActualDelivery() *time.Time {
	return copyTime(o.actualDelivery)
}

// Version returns the optimistic concurrency token loaded from persistence.
// Zero for aggregates that have never been saved.
func (o *Order) Version() int64 {
	return o.version
}

// ChangeStatus validates and applies a status transition, appending a timeline
// entry and returning the stock adjustments the caller must apply atomically.
//
// Rules:
//   - target must be a member of the status set
//   - no transition is allowed out of a terminal status (Delivered,
//     Cancelled); such attempts fail with ErrOrderAlreadyTerminal and leave
//     the order unchanged
//   - a re-entrant transition to the current (non-terminal) status is
//     permitted and appends a duplicate timeline entry
//   - now must not precede the most recent timeline entry, keeping the
//     timeline monotonically non-decreasing
//
// When target is Delivered, actualDelivery is set to now and one
// StockAdjustment per line item is returned, with delta equal to the ordered
// quantity. The terminal guard ensures this happens at most once per order;
// no other transition produces adjustments.
//
// If note is empty, a default "Order status changed to <status>" note is
// recorded.
func (o *Order) ChangeStatus(target Status, note string, now time.Time) ([]StockAdjustment, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if o.status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", ErrOrderAlreadyTerminal, o.status)
	}
	if last := o.timeline[len(o.timeline)-1].Timestamp(); now.Before(last) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"transition time",
			fmt.Errorf("%s precedes the last timeline entry at %s", now.Format(time.RFC3339), last.Format(time.RFC3339)),
		)
	}

	if note == "" {
		note = fmt.Sprintf("Order status changed to %s", target)
	}
	entry, err := NewTimelineEntry(target, now, note)
	if err != nil {
		return nil, err
	}

	o.timeline = append(o.timeline, entry)
	o.status = target

	if target != Delivered {
		return nil, nil
	}

	o.actualDelivery = &now
	adjustments := make([]StockAdjustment, 0, len(o.items))
	for _, item := range o.items {
		adjustments = append(adjustments, StockAdjustment{
			DrugID: item.DrugID(),
			Delta:  item.Quantity(),
		})
	}

	return adjustments, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendor id", err)
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setHospitalID(hospitalID *kernel.UUID) error {
	if hospitalID == nil {
		return nil
	}
	if err := hospitalID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("hospital id", err)
	}
	id := *hospitalID
	o.hospitalID = &id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.TotalPrice()
	}

	o.items = append([]Item(nil), items...)
	o.totalAmount = total
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
