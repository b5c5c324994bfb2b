package commands

import (
	"errors"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/guard"
)

// ExpireDrugsCommand triggers the expiry sweep over the inventory store.
// This batch operation refreshes the derived stock status of drugs whose
// expiry date has passed since the last recomputation.
//
// Example:
//
//	cmd := NewExpireDrugsCommand()
//	handler := NewExpireDrugsCommandHandler(uowFactory)
//
//	// Run periodically so expiry takes effect without a quantity mutation
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Expiry sweep failed: %v", err)
//	}
type ExpireDrugsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrExpireDrugsCommandIsNotConstructed = errors.New(
		"ExpireDrugsCommand must be created via NewExpireDrugsCommand constructor",
	)
)

// NewExpireDrugsCommand creates a command to trigger the expiry sweep.
// This is a parameterless command that processes all newly expired drugs.
func NewExpireDrugsCommand() ExpireDrugsCommand {
	command := ExpireDrugsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireDrugsCommandIsNotConstructed if validation fails.
func (c *ExpireDrugsCommand) Validate() error {
	return c.guard.Validate(ErrExpireDrugsCommandIsNotConstructed)
}
