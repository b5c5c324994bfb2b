package commands

import (
	"errors"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

var (
	ErrAdjustDrugStockCommandIsNotConstructed = errors.New(
		"AdjustDrugStockCommand must be created via NewAdjustDrugStockCommand constructor",
	)
)

// AdjustDrugStockCommand represents a manual stock correction: a positive or
// negative delta applied to a drug's quantity, for example after a physical
// stock count or a damaged batch write-off.
type AdjustDrugStockCommand struct { //nolint:recvcheck //using for validation
	drugID kernel.UUID
	delta  int

	guard guard.ConstructorGuard
}

// NewAdjustDrugStockCommand creates a command to correct a drug's stock level.
// Delta must be non-zero; whether it would take the quantity below zero is
// decided against current stock by the handler, not here.
func NewAdjustDrugStockCommand(drugID kernel.UUID, delta int) (AdjustDrugStockCommand, error) {
	stockCommand := AdjustDrugStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stockCommand.setDrugID(drugID),
		stockCommand.setDelta(delta),
	); err != nil {
		return AdjustDrugStockCommand{}, err
	}

	return stockCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdjustDrugStockCommandIsNotConstructed if validation fails.
func (c AdjustDrugStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustDrugStockCommandIsNotConstructed)
}

// DrugID returns the identifier of the drug to adjust.
func (c AdjustDrugStockCommand) DrugID() kernel.UUID {
	return c.drugID
}

// Delta returns the signed quantity change.
func (c AdjustDrugStockCommand) Delta() int {
	return c.delta
}

func (c *AdjustDrugStockCommand) setDrugID(drugID kernel.UUID) error {
	if err := drugID.Validate(); err != nil {
		return err
	}

	c.drugID = drugID
	return nil
}

func (c *AdjustDrugStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return errs.NewValueIsInvalidError("delta")
	}

	c.delta = delta
	return nil
}
