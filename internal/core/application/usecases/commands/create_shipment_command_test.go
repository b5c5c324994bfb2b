package commands_test

import (
	"testing"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/commands"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	shipmentID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	eta := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID, "1Z999AA1", "UPS", &eta)
	require.NoError(t, err)
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "1Z999AA1", cmd.TrackingNumber())
	assert.Equal(t, "UPS", cmd.Carrier())
	assert.Equal(t, eta, *cmd.EstimatedDelivery())
}

func TestNewCreateShipmentCommand_CarrierDetailsAreOptional(t *testing.T) {
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.TrackingNumber())
	assert.Empty(t, cmd.Carrier())
	assert.Nil(t, cmd.EstimatedDelivery())
}

func TestNewCreateShipmentCommand_InvalidIDs(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error

	_, err := commands.NewCreateShipmentCommand(invalidID, kernel.NewUUID(), "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreateShipmentCommand(kernel.NewUUID(), invalidID, "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
