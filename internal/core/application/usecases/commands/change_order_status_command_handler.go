package commands

import (
	"context"
	"errors"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/ports"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"
)

// maxTransitionAttempts bounds retries on optimistic concurrency conflicts.
// Each attempt reloads the order in a fresh transaction, so a conflict with
// another writer is resolved by replaying the transition against the new state.
const maxTransitionAttempts = 3

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Loads the order, applies the transition through the aggregate, and persists
// the result with an optimistic version check. When the transition lands on
// Delivered, the stock adjustments emitted by the aggregate are applied to the
// inventory store in the same transaction, so the order save and its stock
// increments commit together or not at all.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderInventoryUoWFactory
	clock      func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for order transitions.
// Requires an OrderInventoryUoWFactory spanning the order book and the
// inventory store.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderInventoryUoWFactory,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the status change command.
// Retries the whole load-transition-save cycle on version conflicts, up to
// maxTransitionAttempts times. Domain rejections (terminal state, invalid
// status) are returned immediately without retrying.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		err = h.transition(ctx, cmd)
		if err == nil || !errors.Is(err, errs.ErrVersionIsInvalid) {
			return err
		}
	}

	return err
}

func (h *ChangeOrderStatusCommandHandler) transition(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := h.clock()

	adjustments, err := aggregate.ChangeStatus(cmd.TargetStatus(), cmd.Note(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.applyStockAdjustments(ctx, uow.DrugRepository(), adjustments, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyStockAdjustments credits delivered quantities to the inventory store.
// The increment itself is atomic per drug record; the aggregate it returns
// carries the stale stored status, so the derived status is refreshed here
// and persisted.
func (h *ChangeOrderStatusCommandHandler) applyStockAdjustments(
	ctx context.Context,
	drugRepo ports.DrugRepository,
	adjustments []order.StockAdjustment,
	now time.Time,
) error {
	for _, adjustment := range adjustments {
		drugAggregate, err := drugRepo.IncrementQuantity(ctx, adjustment.DrugID, adjustment.Delta)
		if err != nil {
			return err
		}

		if drugAggregate.RefreshStatus(now) {
			if err = drugRepo.Update(ctx, drugAggregate); err != nil {
				return err
			}
		}
	}

	return nil
}
