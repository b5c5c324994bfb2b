package order_test

import (
	"testing"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func mustItem(t *testing.T, drugID kernel.UUID, quantity int, unitPrice float64) order.Item {
	t.Helper()
	item, err := order.NewItem(drugID, quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func mustOrderNumber(t *testing.T, seq int64) kernel.OrderNumber {
	t.Helper()
	number, err := kernel.OrderNumberFromSequence(seq)
	require.NoError(t, err)
	return number
}

func newTestOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.Item{mustItem(t, kernel.NewUUID(), 10, 2.50)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), mustOrderNumber(t, 1), kernel.NewUUID(), nil,
		items, order.Medium, testNow,
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	drugID := kernel.NewUUID()

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem(drugID, 3, 10)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.DrugID().IsEqual(drugID))
		assert.Equal(t, 3, item.Quantity())
		assert.InDelta(t, 10.0, item.UnitPrice(), 1e-9)
		assert.InDelta(t, 30.0, item.TotalPrice(), 1e-9)
	})

	t.Run("should allow zero unit price", func(t *testing.T) {
		item, err := order.NewItem(drugID, 3, 0)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, item.TotalPrice(), 1e-9)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(drugID, 0, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item quantity")
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewItem(drugID, 3, -0.01)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item unit price")
	})

	t.Run("should fail with invalid drug reference", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(invalidID, 3, 10)

		require.Error(t, err)
	})

	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item

		require.Error(t, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	number := mustOrderNumber(t, 7)

	t.Run("should create pending order with initial timeline entry", func(t *testing.T) {
		items := []order.Item{mustItem(t, kernel.NewUUID(), 3, 10)}

		o, err := order.NewOrder(validID, number, vendorID, nil, items, order.High, testNow)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "ORD000007", o.OrderNumber().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.High, o.Priority())
		assert.Nil(t, o.HospitalID())
		assert.Nil(t, o.ActualDelivery())
		assert.Zero(t, o.Version())

		timeline := o.Timeline()
		require.Len(t, timeline, 1)
		assert.Equal(t, order.Pending, timeline[0].Status())
		assert.Equal(t, testNow, timeline[0].Timestamp())
		assert.Equal(t, "Order created", timeline[0].Note())
	})

	t.Run("should compute total from items ignoring caller totals", func(t *testing.T) {
		// [{qty 3, price 10}, {qty 2, price 5}] => 40
		items := []order.Item{
			mustItem(t, kernel.NewUUID(), 3, 10),
			mustItem(t, kernel.NewUUID(), 2, 5),
		}

		o, err := order.NewOrder(validID, number, vendorID, nil, items, order.Medium, testNow)

		require.NoError(t, err)
		assert.InDelta(t, 40.0, o.TotalAmount(), 1e-9)
	})

	t.Run("should keep optional hospital reference", func(t *testing.T) {
		hospitalID := kernel.NewUUID()
		items := []order.Item{mustItem(t, kernel.NewUUID(), 1, 1)}

		o, err := order.NewOrder(validID, number, vendorID, &hospitalID, items, order.Medium, testNow)

		require.NoError(t, err)
		require.NotNil(t, o.HospitalID())
		assert.True(t, o.HospitalID().IsEqual(hospitalID))
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		o, err := order.NewOrder(validID, number, vendorID, nil, nil, order.Medium, testNow)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should fail with invalid vendor", func(t *testing.T) {
		var invalidVendor kernel.UUID
		items := []order.Item{mustItem(t, kernel.NewUUID(), 1, 1)}

		_, err := order.NewOrder(validID, number, invalidVendor, nil, items, order.Medium, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "vendor id")
	})

	t.Run("should fail with invalid priority", func(t *testing.T) {
		items := []order.Item{mustItem(t, kernel.NewUUID(), 1, 1)}

		_, err := order.NewOrder(validID, number, vendorID, nil, items, order.PriorityUnknown, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order priority")
	})

	t.Run("should fail with unconstructed item in list", func(t *testing.T) {
		items := []order.Item{{}}

		_, err := order.NewOrder(validID, number, vendorID, nil, items, order.Medium, testNow)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should append timeline entry and update status", func(t *testing.T) {
		o := newTestOrder(t)

		adjustments, err := o.ChangeStatus(order.Confirmed, "Vendor confirmed by phone", testNow.Add(time.Hour))

		require.NoError(t, err)
		assert.Nil(t, adjustments)
		assert.Equal(t, order.Confirmed, o.Status())

		timeline := o.Timeline()
		require.Len(t, timeline, 2)
		assert.Equal(t, order.Confirmed, timeline[1].Status())
		assert.Equal(t, "Vendor confirmed by phone", timeline[1].Note())
	})

	t.Run("should generate default note when none given", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ChangeStatus(order.Processing, "", testNow.Add(time.Hour))

		require.NoError(t, err)
		timeline := o.Timeline()
		assert.Equal(t, "Order status changed to Processing", timeline[len(timeline)-1].Note())
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ChangeStatus(order.Status(42), "", testNow.Add(time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Timeline(), 1)
	})

	t.Run("should permit re-entrant transition with duplicate entry", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.ChangeStatus(order.Processing, "", testNow.Add(time.Hour))
		require.NoError(t, err)

		adjustments, err := o.ChangeStatus(order.Processing, "", testNow.Add(2*time.Hour))

		require.NoError(t, err)
		assert.Nil(t, adjustments)
		assert.Equal(t, order.Processing, o.Status())
		assert.Len(t, o.Timeline(), 3)
	})

	t.Run("should reject timestamps moving backwards", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.ChangeStatus(order.Confirmed, "", testNow.Add(2*time.Hour))
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.Processing, "", testNow.Add(time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "transition time")
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Len(t, o.Timeline(), 2)
	})

	t.Run("should emit stock adjustments exactly on delivery", func(t *testing.T) {
		drugA := kernel.NewUUID()
		drugB := kernel.NewUUID()
		o := newTestOrder(t,
			mustItem(t, drugA, 3, 10),
			mustItem(t, drugB, 2, 5),
		)
		deliveredAt := testNow.Add(72 * time.Hour)

		adjustments, err := o.ChangeStatus(order.Delivered, "", deliveredAt)

		require.NoError(t, err)
		require.Len(t, adjustments, 2)
		assert.True(t, adjustments[0].DrugID.IsEqual(drugA))
		assert.Equal(t, 3, adjustments[0].Delta)
		assert.True(t, adjustments[1].DrugID.IsEqual(drugB))
		assert.Equal(t, 2, adjustments[1].Delta)

		require.NotNil(t, o.ActualDelivery())
		assert.Equal(t, deliveredAt, *o.ActualDelivery())
	})

	t.Run("should reject any transition after delivery", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.ChangeStatus(order.Delivered, "", testNow.Add(time.Hour))
		require.NoError(t, err)

		adjustments, err := o.ChangeStatus(order.Delivered, "", testNow.Add(2*time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
		assert.Nil(t, adjustments)
		assert.Len(t, o.Timeline(), 2)
	})

	t.Run("should reject any transition after cancellation", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.ChangeStatus(order.Cancelled, "Vendor out of business", testNow.Add(time.Hour))
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.Confirmed, "", testNow.Add(2*time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.ActualDelivery())
	})

	t.Run("status always equals last timeline entry across transitions", func(t *testing.T) {
		o := newTestOrder(t)
		sequence := []order.Status{order.Confirmed, order.Processing, order.Processing, order.Shipped}

		for i, target := range sequence {
			_, err := o.ChangeStatus(target, "", testNow.Add(time.Duration(i+1)*time.Hour))
			require.NoError(t, err)

			timeline := o.Timeline()
			assert.Equal(t, o.Status(), timeline[len(timeline)-1].Status())
		}

		// Timestamps are monotonically non-decreasing.
		timeline := o.Timeline()
		for i := 1; i < len(timeline); i++ {
			assert.False(t, timeline[i].Timestamp().Before(timeline[i-1].Timestamp()))
		}
	})
}

// TestOrder_Lifecycle walks the full scenario: Pending order, processing,
// delivery with stock adjustments, then a rejected late cancellation.
func TestOrder_Lifecycle(t *testing.T) {
	drugA := kernel.NewUUID()
	drugB := kernel.NewUUID()
	o := newTestOrder(t,
		mustItem(t, drugA, 3, 10),
		mustItem(t, drugB, 2, 5),
	)
	require.Equal(t, order.Pending, o.Status())
	require.Len(t, o.Timeline(), 1)
	require.InDelta(t, 40.0, o.TotalAmount(), 1e-9)

	// Pending -> Processing
	adjustments, err := o.ChangeStatus(order.Processing, "", testNow.Add(time.Hour))
	require.NoError(t, err)
	require.Nil(t, adjustments)
	require.Len(t, o.Timeline(), 2)

	// Processing -> Delivered
	adjustments, err = o.ChangeStatus(order.Delivered, "", testNow.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, o.Timeline(), 3)
	require.NotNil(t, o.ActualDelivery())
	require.Len(t, adjustments, 2)
	assert.Equal(t, 3, adjustments[0].Delta)
	assert.Equal(t, 2, adjustments[1].Delta)

	// Delivered -> Cancelled is rejected, order unchanged
	_, err = o.ChangeStatus(order.Cancelled, "", testNow.Add(3*time.Hour))
	require.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Len(t, o.Timeline(), 3)
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	number := mustOrderNumber(t, 12)
	items := []order.Item{mustItem(t, kernel.NewUUID(), 4, 2.5)}

	pendingEntry, err := order.NewTimelineEntry(order.Pending, testNow, "Order created")
	require.NoError(t, err)
	shippedEntry, err := order.NewTimelineEntry(order.Shipped, testNow.Add(time.Hour), "Left vendor warehouse")
	require.NoError(t, err)

	t.Run("should restore order with timeline and version", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, number, vendorID, nil, items, 10.0,
			order.Shipped, order.Medium,
			[]order.TimelineEntry{pendingEntry, shippedEntry},
			nil, 3,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, int64(3), o.Version())
		assert.Len(t, o.Timeline(), 2)
	})

	t.Run("should reject empty timeline", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, number, vendorID, nil, items, 10.0,
			order.Pending, order.Medium, nil, nil, 1,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order timeline")
	})

	t.Run("should reject status not matching last timeline entry", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, number, vendorID, nil, items, 10.0,
			order.Processing, order.Medium,
			[]order.TimelineEntry{pendingEntry, shippedEntry},
			nil, 1,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match last timeline entry")
	})

	t.Run("should reject delivered order without actual delivery", func(t *testing.T) {
		deliveredEntry, err := order.NewTimelineEntry(order.Delivered, testNow.Add(2*time.Hour), "")
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			id, number, vendorID, nil, items, 10.0,
			order.Delivered, order.Medium,
			[]order.TimelineEntry{pendingEntry, deliveredEntry},
			nil, 1,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actual delivery")
	})

	t.Run("should reject actual delivery on undelivered order", func(t *testing.T) {
		deliveredAt := testNow.Add(2 * time.Hour)

		_, err := order.RestoreOrder(
			id, number, vendorID, nil, items, 10.0,
			order.Shipped, order.Medium,
			[]order.TimelineEntry{pendingEntry, shippedEntry},
			&deliveredAt, 1,
		)

		require.Error(t, err)
	})

	t.Run("should reject non-positive version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, number, vendorID, nil, items, 10.0,
			order.Shipped, order.Medium,
			[]order.TimelineEntry{pendingEntry, shippedEntry},
			nil, 0,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}
