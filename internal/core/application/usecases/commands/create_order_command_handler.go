package commands

import (
	"context"
	"log/slog"

	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/core/ports"

	"github.com/google/uuid"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves one unit of vehicle stock, allocates the day-based order and
// invoice numbers and persists the whole aggregate in one transaction.
//
// The vehicle row is read with a write lock, so concurrent orders against
// the same vehicle serialize and stock never drops below zero.
type CreateOrderCommandHandler struct {
	uowFactory StockOrderUoWFactory
	publisher  ports.OrderEventPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory StockOrderUoWFactory,
	publisher ports.OrderEventPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the order creation command.
//
// Fails with NotFound when the vehicle is missing or soft-deleted and with
// Conflict when it is inactive or out of stock. On success the stock
// decrement, order, item and pending invoice commit atomically.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	orderRepo := uow.OrderRepository()

	v, err := vehicleRepo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = v.ReserveUnit(now); err != nil {
		return err
	}

	orderCount, err := orderRepo.CountByNumberPrefix(ctx, order.OrderNumberPrefix(now))
	if err != nil {
		return err
	}
	invoiceCount, err := orderRepo.CountInvoicesByNumberPrefix(ctx, order.InvoiceNumberPrefix(now))
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), order.NewOrderNumber(now, orderCount),
		cmd.CustomerID(), cmd.ShippingAddress(), cmd.Notes(), now)
	if err != nil {
		return err
	}

	item, err := order.NewItem(uuid.New(), o.ID(), v.ID(), v.BasePrice())
	if err != nil {
		return err
	}
	if err = o.AddItem(item); err != nil {
		return err
	}

	invoice, err := order.NewInvoice(uuid.New(), o.ID(), o.CustomerID(),
		order.NewInvoiceNumber(now, invoiceCount), o.TotalAmount(), now)
	if err != nil {
		return err
	}
	if err = o.AttachInvoice(invoice); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}
	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order created",
		slog.String("order_id", o.ID().String()),
		slog.String("order_number", o.Number()),
		slog.Int("order_item_count", len(o.Items())),
		slog.Int("remaining_stock", v.Stock()))

	publishStatusChanged(ctx, h.publisher, h.logger, o, now)
	return nil
}
