// Package order provides domain entities and business logic for vehicle
// purchase orders. It implements the Order aggregate root with its owned
// line items, invoice and payment records.
//
// The package includes:
//   - Order: The aggregate root managing identity, items, invoice and lifecycle
//   - Status: A state machine enforcing valid order status transitions
//   - Item: A line item snapshotting the vehicle price at purchase time
//   - Invoice: The billing document owning gateway-reported Payments
//   - Payment: An immutable payment attempt reported by the gateway
//
// Key business rules:
//   - The total amount equals the sum of item unit prices, fixed at creation
//   - Status follows Pending -> {Confirmed, Cancelled}, Confirmed ->
//     {Delivered, Cancelled}; Delivered and Cancelled are terminal
//   - Confirmation requires at least one paid payment on the invoice
//   - Cancellation is blocked by a paid payment and voids a pending invoice
//   - Delivered is reached only through the delivery lifecycle
//
// Stock compensation on cancellation is coordinated by the application layer
// inside the same unit of work as the order mutation.
package order
