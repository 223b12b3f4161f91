// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence. Every stock mutation shares its
// transaction with the order mutation it is paired with.
package commands

import (
	"context"

	"evdealer/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest interface covering the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a
	// transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a
	// transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OrderUoW manages transactions for order-only operations: payment
	// recording and the invoice overdue sweep.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StaffOrderUoW manages transactions for staff actions on orders:
	// status changes and staff assignment, which need the user repository
	// for capability checks.
	StaffOrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// StaffOrderUoWFactory creates new staff order unit of work instances.
	StaffOrderUoWFactory interface {
		Create() StaffOrderUoW
	}

	// StockOrderUoW manages transactions pairing an order mutation with a
	// vehicle stock mutation. Used by order creation.
	StockOrderUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
	}

	// StockOrderUoWFactory creates new stock order unit of work instances.
	StockOrderUoWFactory interface {
		Create() StockOrderUoW
	}

	// CancelOrderUoW manages transactions for order cancellation, which
	// checks actor capability and restores stock per item.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
		UserRepoFactory
	}

	// CancelOrderUoWFactory creates new cancellation unit of work instances.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}

	// DeliveryUoW manages transactions for the delivery lifecycle. The order
	// repository rides along so payment gates and delivered propagation read
	// and write the order on the same transaction as the delivery.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		UserRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
