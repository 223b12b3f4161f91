// Package delivery provides the Delivery aggregate for scheduling and
// tracking vehicle handovers.
//
// Key business rules:
//   - A delivery exists only for an order with a paid payment
//   - At most one non-deleted delivery per order
//   - Status follows Scheduled -> {InTransit, Delivered, Cancelled},
//     InTransit -> {Delivered, Cancelled}; Delivered and Cancelled are terminal
//   - Completing a delivery sets the actual date and forces the owning order
//     to Delivered in the same unit of work
package delivery
