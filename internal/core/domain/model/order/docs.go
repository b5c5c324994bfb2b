// Package order provides domain entities and business logic for purchase
// order management in the drug inventory system. It implements the Order
// aggregate root with lifecycle management and the inventory-reconciliation
// decision.
//
// The package includes:
//   - Order: The aggregate root owning status, priority, line items, and the
//     append-only status timeline
//   - Status: A state machine with a terminal-state guard on Delivered and
//     Cancelled
//   - Priority: The order urgency classification
//   - Item: An immutable order line (drug reference, quantity, unit price)
//   - TimelineEntry: One record in the audit log of status changes
//   - StockAdjustment: A (drugID, delta) increment emitted by the Delivered
//     transition for the caller to apply atomically
//
// Key business rules:
//   - The timeline is append-only, non-empty, and monotonically non-decreasing
//     in timestamp; its last entry always matches the order status
//   - Delivered and Cancelled are terminal; no transition leaves them
//   - Reaching Delivered emits stock adjustments exactly once and stamps
//     actualDelivery exactly once
//   - Order totals are computed from line items, never accepted from callers
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
