package commands

import (
	"context"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/drug"
)

// AddDrugCommandHandler handles the business logic for inventory intake.
// Creates the drug record with its stock status derived at intake time.
type AddDrugCommandHandler struct {
	uowFactory DrugUoWFactory
	clock      func() time.Time
}

// NewAddDrugCommandHandler creates a handler for drug registration operations.
// Requires a DrugUoWFactory for transactional persistence.
func NewAddDrugCommandHandler(uowFactory DrugUoWFactory) AddDrugCommandHandler {
	return AddDrugCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the drug registration command.
func (h *AddDrugCommandHandler) Handle(ctx context.Context, cmd AddDrugCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := drug.NewDrug(
		cmd.DrugID(),
		cmd.Name(),
		cmd.GenericName(),
		cmd.DrugCode(),
		cmd.Category(),
		cmd.Manufacturer(),
		cmd.BatchNumber(),
		cmd.ExpiryDate(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		cmd.ReorderLevel(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	if err = uow.DrugRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
