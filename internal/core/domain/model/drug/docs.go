// Package drug provides domain entities and business logic for pharmaceutical
// inventory management. It implements the Drug aggregate root and the stock
// status derivation policy.
//
// The package includes:
//   - Drug: The aggregate root tracking catalog attributes and stock level
//   - StockStatus: A closed enum of availability states
//   - DeriveStockStatus: The pure policy function mapping
//     (quantity, reorderLevel, expiryDate, now) to a StockStatus
//
// Key business rules:
//   - Stock status is derived, never independently settable
//   - Depletion and reorder signals take precedence over expiry
//   - Quantity can never go negative, through adjustment or delivery
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package drug
