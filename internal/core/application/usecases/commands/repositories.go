// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DrugRepoFactory provides access to the drug repository within a transaction.
	DrugRepoFactory interface {
		DrugRepository() ports.DrugRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DrugUoW manages transactions for inventory-only operations.
	DrugUoW interface {
		TxManager
		DrugRepoFactory
	}

	// DrugUoWFactory creates new inventory unit of work instances.
	DrugUoWFactory interface {
		Create() DrugUoW
	}

	// OrderInventoryUoW manages transactions spanning the order book and the
	// inventory store. Used by the status transition handler so the order
	// save and its delivery stock increments commit atomically.
	OrderInventoryUoW interface {
		TxManager
		OrderRepoFactory
		DrugRepoFactory
	}

	// OrderInventoryUoWFactory creates new order+inventory unit of work instances.
	OrderInventoryUoWFactory interface {
		Create() OrderInventoryUoW
	}

	// ShipmentUoW manages transactions for shipment creation, which reads the
	// order book to verify the order is in Shipped status.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		OrderRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
