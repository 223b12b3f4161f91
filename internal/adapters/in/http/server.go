// Package http exposes the order and delivery use cases over a REST API.
// The acting user is identified by the X-User-Id header supplied by the
// identity-aware proxy in front of the service; requests without it are
// rejected as unauthenticated.
package http

import (
	"net/http"
	"strconv"
	"time"

	"evdealer/internal/core/application/usecases/commands"
	"evdealer/internal/core/application/usecases/queries"
	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const actorHeader = "X-User-Id"

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	AssignStaff          commands.AssignStaffCommandHandler
	RecordPayment        commands.RecordPaymentCommandHandler
	CreateDelivery       commands.CreateDeliveryCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	ListMyOrders      queries.ListMyOrdersQueryHandler
	ListAllOrders     queries.ListAllOrdersQueryHandler
	GetDelivery       queries.GetDeliveryQueryHandler
	ListAllDeliveries queries.ListAllDeliveriesQueryHandler
	TotalRevenue      queries.GetTotalRevenueQueryHandler
	TotalOrdersCount  queries.GetTotalOrdersCountQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.ListAllOrders)
	v1.GET("/orders/my", s.ListMyOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/assign", s.AssignStaff)
	v1.GET("/orders/:id/delivery", s.GetOrderDelivery)

	v1.POST("/invoices/:id/payments", s.RecordPayment)

	v1.POST("/deliveries", s.CreateDelivery)
	v1.GET("/deliveries", s.ListAllDeliveries)
	v1.GET("/deliveries/:id", s.GetDelivery)
	v1.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)

	v1.GET("/stats/revenue", s.TotalRevenue)
	v1.GET("/stats/orders-count", s.TotalOrdersCount)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID := uuid.New()
	cmd, err := commands.NewCreateOrderCommand(orderID, actorID, req.VehicleID,
		req.ShippingAddress, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "id", "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "id", "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorID, newStatus, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignStaff handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignStaff(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "id", "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignStaffRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAssignStaffCommand(orderID, actorID, req.StaffID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.AssignStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/invoices/:id/payments. Called by the
// payment gateway webhook relay, which authenticates upstream.
func (s *Server) RecordPayment(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id", "invoiceID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.PaymentStatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentID := uuid.New()
	cmd, err := commands.NewRecordPaymentCommand(paymentID, invoiceID, req.Amount,
		status, req.PaymentIntentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, RecordPaymentResponse{ID: paymentID})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	deliveryID := uuid.New()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, req.OrderID, actorID,
		req.PlannedDate, req.ShippingAddress, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateDeliveryResponse{ID: deliveryID})
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	deliveryID, err := pathUUID(ctx, "id", "deliveryID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	newStatus, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, actorID, newStatus,
		req.PlannedDate, req.ActualDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "id", "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// ListMyOrders handles GET /api/v1/orders/my.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	pageNumber, pageSize := pagingParams(ctx)
	query, err := queries.NewListMyOrdersQuery(actorID, pageNumber, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.handlers.ListMyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderPageResponse(page))
}

// ListAllOrders handles GET /api/v1/orders. Staff only.
func (s *Server) ListAllOrders(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	filter, err := orderFilterParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	pageNumber, pageSize := pagingParams(ctx)
	query, err := queries.NewListAllOrdersQuery(actorID, filter, pageNumber, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.handlers.ListAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderPageResponse(page))
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	deliveryID, err := pathUUID(ctx, "id", "deliveryID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(&deliveryID, nil, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.handlers.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryDetailsResponse(summary))
}

// GetOrderDelivery handles GET /api/v1/orders/:id/delivery.
func (s *Server) GetOrderDelivery(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "id", "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(nil, &orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.handlers.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryDetailsResponse(summary))
}

// ListAllDeliveries handles GET /api/v1/deliveries. Staff only.
func (s *Server) ListAllDeliveries(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	filter, err := deliveryFilterParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	pageNumber, pageSize := pagingParams(ctx)
	query, err := queries.NewListAllDeliveriesQuery(actorID, filter, pageNumber, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.handlers.ListAllDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryPageResponse(page))
}

// TotalRevenue handles GET /api/v1/stats/revenue.
func (s *Server) TotalRevenue(ctx echo.Context) error {
	from, to, err := dateWindowParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTotalRevenueQuery(from, to)
	if err != nil {
		return writeError(ctx, err)
	}

	total, err := s.handlers.TotalRevenue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, RevenueResponse{TotalRevenue: total})
}

// TotalOrdersCount handles GET /api/v1/stats/orders-count.
func (s *Server) TotalOrdersCount(ctx echo.Context) error {
	from, to, err := dateWindowParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTotalOrdersCountQuery(from, to)
	if err != nil {
		return writeError(ctx, err)
	}

	count, err := s.handlers.TotalOrdersCount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrdersCountResponse{TotalOrders: count})
}

func actorFromHeader(ctx echo.Context) (uuid.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return uuid.Nil, errs.NewUnauthenticatedError()
	}
	actorID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewUnauthenticatedErrorWithCause(err)
	}
	return actorID, nil
}

func pathUUID(ctx echo.Context, param, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		return uuid.Nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func pagingParams(ctx echo.Context) (int, int) {
	pageNumber, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	// Out-of-range values are clamped by the query constructors.
	return pageNumber, pageSize
}

func dateWindowParams(ctx echo.Context) (*time.Time, *time.Time, error) {
	from, err := optionalTimeParam(ctx, "from")
	if err != nil {
		return nil, nil, err
	}
	to, err := optionalTimeParam(ctx, "to")
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func optionalTimeParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &t, nil
}

func optionalUUIDParam(ctx echo.Context, name string) (*uuid.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}

func orderFilterParams(ctx echo.Context) (queries.OrderFilter, error) {
	var filter queries.OrderFilter

	customerID, err := optionalUUIDParam(ctx, "customer_id")
	if err != nil {
		return filter, err
	}
	staffID, err := optionalUUIDParam(ctx, "staff_id")
	if err != nil {
		return filter, err
	}
	from, to, err := dateWindowParams(ctx)
	if err != nil {
		return filter, err
	}

	filter.CustomerID = customerID
	filter.StaffID = staffID
	filter.From = from
	filter.To = to
	filter.Search = ctx.QueryParam("search")

	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return filter, statusErr
		}
		filter.Status = &status
	}
	return filter, nil
}

func deliveryFilterParams(ctx echo.Context) (queries.DeliveryFilter, error) {
	var filter queries.DeliveryFilter

	from, to, err := dateWindowParams(ctx)
	if err != nil {
		return filter, err
	}

	filter.From = from
	filter.To = to
	filter.Search = ctx.QueryParam("search")

	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := delivery.StatusFromString(raw)
		if statusErr != nil {
			return filter, statusErr
		}
		filter.Status = &status
	}
	return filter, nil
}
