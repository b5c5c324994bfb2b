package order_test

import (
	"testing"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all valid statuses", func(t *testing.T) {
		valid := []order.Status{
			order.Pending, order.Confirmed, order.Processing,
			order.Shipped, order.Delivered, order.Cancelled,
		}
		for _, s := range valid {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid order status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
		require.Error(t, order.Status(-1).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Processing", order.Processing.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.StatusUnknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.False(t, order.StatusUnknown.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		for _, name := range []string{"Pending", "Confirmed", "Processing", "Shipped", "Delivered", "Cancelled"} {
			s, err := order.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("should reject unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("Teleported")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid order status")
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("delivered")

		require.Error(t, err)
	})
}

func TestPriority_Validate(t *testing.T) {
	t.Run("should accept all valid priorities", func(t *testing.T) {
		for _, p := range []order.Priority{order.Low, order.Medium, order.High, order.Urgent} {
			require.NoError(t, p.Validate(), p.String())
		}
	})

	t.Run("should reject unknown priority", func(t *testing.T) {
		require.Error(t, order.PriorityUnknown.Validate())
		require.Error(t, order.Priority(42).Validate())
	})
}

func TestPriorityFromString(t *testing.T) {
	t.Run("should parse every valid priority name", func(t *testing.T) {
		for _, name := range []string{"Low", "Medium", "High", "Urgent"} {
			p, err := order.PriorityFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, p.String())
		}
	})

	t.Run("should reject unknown name", func(t *testing.T) {
		_, err := order.PriorityFromString("Critical")

		require.Error(t, err)
	})
}
