package commands_test

import (
	"testing"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/commands"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddDrugCommand_ValidInput(t *testing.T) {
	drugID := kernel.NewUUID()
	expiry := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewAddDrugCommand(
		drugID, "Amoxil", "Amoxicillin", "AMX-500", "Antibiotic", "GSK", "B-100",
		&expiry, 120, 4.2, 30)
	require.NoError(t, err)
	assert.Equal(t, drugID, cmd.DrugID())
	assert.Equal(t, "Amoxil", cmd.Name())
	assert.Equal(t, "Amoxicillin", cmd.GenericName())
	assert.Equal(t, "AMX-500", cmd.DrugCode())
	assert.Equal(t, "Antibiotic", cmd.Category())
	assert.Equal(t, "GSK", cmd.Manufacturer())
	assert.Equal(t, "B-100", cmd.BatchNumber())
	assert.Equal(t, expiry, *cmd.ExpiryDate())
	assert.Equal(t, 120, cmd.Quantity())
	assert.InDelta(t, 4.2, cmd.UnitPrice(), 1e-9)
	assert.Equal(t, 30, cmd.ReorderLevel())
}

func TestNewAddDrugCommand_OptionalAttributes(t *testing.T) {
	cmd, err := commands.NewAddDrugCommand(
		kernel.NewUUID(), "Amoxil", "Amoxicillin", "AMX-500", "", "", "",
		nil, 0, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, cmd.ExpiryDate())
	assert.Empty(t, cmd.Category())
}

func TestNewAddDrugCommand_MissingRequiredFields(t *testing.T) {
	_, err := commands.NewAddDrugCommand(
		kernel.NewUUID(), "", "", "", "", "", "", nil, 10, 1, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAddDrugCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewAddDrugCommand(
		kernel.NewUUID(), "Amoxil", "Amoxicillin", "AMX-500", "", "", "",
		nil, -1, 1, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAddDrugCommand_NegativeUnitPrice(t *testing.T) {
	_, err := commands.NewAddDrugCommand(
		kernel.NewUUID(), "Amoxil", "Amoxicillin", "AMX-500", "", "", "",
		nil, 1, -0.5, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAddDrugCommand_InvalidDrugID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewAddDrugCommand(
		invalidID, "Amoxil", "Amoxicillin", "AMX-500", "", "", "", nil, 1, 1, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
