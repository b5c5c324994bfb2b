package commands

import (
	"context"
	"time"
)

// ExpireDrugsCommandHandler orchestrates the expiry sweep.
// Retrieves drugs whose expiry date has passed but whose stored status does
// not yet reflect it, re-derives each status, and persists the changes within
// a single transaction. Status derivation stays in the aggregate; the sweep
// only decides which records to revisit.
type ExpireDrugsCommandHandler struct {
	uowFactory DrugUoWFactory
	clock      func() time.Time
}

// NewExpireDrugsCommandHandler creates a handler for the expiry sweep.
// Requires a DrugUoWFactory for transactional persistence.
func NewExpireDrugsCommandHandler(uowFactory DrugUoWFactory) ExpireDrugsCommandHandler {
	return ExpireDrugsCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the expiry sweep command.
// A drug with zero quantity keeps OutOfStock even when expired, so a refresh
// may legitimately report no change; those records are not rewritten.
func (h *ExpireDrugsCommandHandler) Handle(ctx context.Context, cmd ExpireDrugsCommand) error {
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
	now := h.clock()

	expired, err := drugRepo.GetExpiredBefore(ctx, now)
	if err != nil {
		return err
	}

	for _, aggregate := range expired {
		if !aggregate.RefreshStatus(now) {
			continue
		}

		if err = drugRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
