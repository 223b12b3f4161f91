package cmd

import (
	"log/slog"
	"time"

	"evdealer/internal/adapters/in/http"
	"evdealer/internal/adapters/out/kafka"
	"evdealer/internal/adapters/out/postgres"
	"evdealer/internal/core/application/usecases/commands"
	"evdealer/internal/core/application/usecases/queries"
	"evdealer/internal/core/ports"
	"evdealer/internal/jobs"

	"gorm.io/gorm"
)

// systemClock implements ports.Clock over the wall clock. Handlers receive
// the clock as a dependency so tests can pin time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph shared by the HTTP server and
// the background jobs.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewOrderEventPublisher([]string{config.KafkaHost}, config.KafkaOrderChangedTopic),
		clock:      systemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.StockOrderUoWFactory = FuncStockOrderUoWFactory(func() commands.StockOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.StaffOrderUoWFactory = FuncStaffOrderUoWFactory(func() commands.StaffOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateAssignStaffCommandHandler() commands.AssignStaffCommandHandler {
	var f commands.StaffOrderUoWFactory = FuncStaffOrderUoWFactory(func() commands.StaffOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignStaffCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateMarkInvoicesOverdueCommandHandler() commands.MarkInvoicesOverdueCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkInvoicesOverdueCommandHandler(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateServerHandlers() http.Handlers {
	return http.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		AssignStaff:          c.CreateAssignStaffCommandHandler(),
		RecordPayment:        c.CreateRecordPaymentCommandHandler(),
		CreateDelivery:       c.CreateCreateDeliveryCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),

		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		ListMyOrders:      queries.NewListMyOrdersQueryHandler(c.gormDB),
		ListAllOrders:     queries.NewListAllOrdersQueryHandler(c.gormDB),
		GetDelivery:       queries.NewGetDeliveryQueryHandler(c.gormDB),
		ListAllDeliveries: queries.NewListAllDeliveriesQueryHandler(c.gormDB),
		TotalRevenue:      queries.NewGetTotalRevenueQueryHandler(c.gormDB),
		TotalOrdersCount:  queries.NewGetTotalOrdersCountQueryHandler(c.gormDB),
	}
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(schedule string, overdueAfter time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMarkInvoicesOverdueCommandHandler(),
		c.clock,
		schedule,
		overdueAfter,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffOrderUoWFactory func() commands.StaffOrderUoW

func (f FuncStaffOrderUoWFactory) Create() commands.StaffOrderUoW {
	return f()
}

type FuncStockOrderUoWFactory func() commands.StockOrderUoW

func (f FuncStockOrderUoWFactory) Create() commands.StockOrderUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
