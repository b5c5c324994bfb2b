package commands

import (
	"context"
	"time"
)

// AdjustDrugStockCommandHandler handles manual stock corrections.
// Loads the drug, applies the delta through the aggregate (which re-derives
// the stock status and rejects adjustments below zero), and persists the
// result.
type AdjustDrugStockCommandHandler struct {
	uowFactory DrugUoWFactory
	clock      func() time.Time
}

// NewAdjustDrugStockCommandHandler creates a handler for stock correction operations.
// Requires a DrugUoWFactory for transactional persistence.
func NewAdjustDrugStockCommandHandler(uowFactory DrugUoWFactory) AdjustDrugStockCommandHandler {
	return AdjustDrugStockCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the stock adjustment command.
func (h *AdjustDrugStockCommandHandler) Handle(ctx context.Context, cmd AdjustDrugStockCommand) error {
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

	drugRepo := uow.DrugRepository()

	aggregate, err := drugRepo.Get(ctx, cmd.DrugID())
	if err != nil {
		return err
	}

	if err = aggregate.AdjustQuantity(cmd.Delta(), h.clock()); err != nil {
		return err
	}

	if err = drugRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
