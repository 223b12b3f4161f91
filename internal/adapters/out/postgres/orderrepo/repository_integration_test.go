package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"evdealer/internal/adapters/out/postgres/orderrepo"
	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies persistence of the full order
// aggregate, items, invoice and payments included, against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.InvoiceDTO{},
		&orderrepo.PaymentDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments, invoices, order_items, orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

var testCreatedAt = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number, invoiceNumber string) *order.Order {
	o, err := order.NewOrder(uuid.New(), number, uuid.New(), "12 Harbor Rd", "", testCreatedAt)
	suite.Require().NoError(err)

	item, err := order.NewItem(uuid.New(), o.ID(), uuid.New(), 52800)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(item))

	invoice, err := order.NewInvoice(uuid.New(), o.ID(), o.CustomerID(), invoiceNumber,
		o.TotalAmount(), testCreatedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AttachInvoice(invoice))

	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsFullAggregate() {
	ctx := context.Background()
	o := suite.createTestOrder("ORD-20260830-0001", "INV-20260830-0001")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.Number(), loaded.Number())
	suite.Equal(o.CustomerID(), loaded.CustomerID())
	suite.Equal(order.StatusPending, loaded.Status())
	suite.InDelta(52800, loaded.TotalAmount(), 0.001)
	suite.Require().Len(loaded.Items(), 1)
	suite.InDelta(52800, loaded.Items()[0].UnitPrice(), 0.001)
	suite.Require().NotNil(loaded.Invoice())
	suite.Equal("INV-20260830-0001", loaded.Invoice().Number())
	suite.Equal(order.InvoiceStatusPending, loaded.Invoice().Status())
	suite.Empty(loaded.Invoice().Payments())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsConflict() {
	ctx := context.Background()
	first := suite.createTestOrder("ORD-20260830-0001", "INV-20260830-0001")
	second := suite.createTestOrder("ORD-20260830-0001", "INV-20260830-0002")

	suite.Require().NoError(suite.repository.Add(ctx, first))
	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsRecordedPayment() {
	ctx := context.Background()
	o := suite.createTestOrder("ORD-20260830-0001", "INV-20260830-0001")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	now := testCreatedAt.Add(2 * time.Hour)
	payment, err := order.NewPayment(uuid.New(), o.Invoice().ID(), o.TotalAmount(),
		order.PaymentStatusPaid, now, "pi_3NxYzA")
	suite.Require().NoError(err)
	suite.Require().NoError(o.RecordPayment(payment, now))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.HasPaidPayment())
	suite.Equal(order.InvoiceStatusPaid, loaded.Invoice().Status())
	suite.Require().Len(loaded.Invoice().Payments(), 1)
	suite.Equal("pi_3NxYzA", loaded.Invoice().Payments()[0].PaymentIntentID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByInvoiceID_FindsOwningOrder() {
	ctx := context.Background()
	o := suite.createTestOrder("ORD-20260830-0001", "INV-20260830-0001")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.GetByInvoiceID(ctx, o.Invoice().ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), loaded.ID())

	_, err = suite.repository.GetByInvoiceID(ctx, uuid.New())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountByNumberPrefix_CountsOnlyMatchingDay() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestOrder("ORD-20260830-0001", "INV-20260830-0001")))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestOrder("ORD-20260830-0002", "INV-20260830-0002")))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestOrder("ORD-20260829-0001", "INV-20260829-0001")))

	count, err := suite.repository.CountByNumberPrefix(ctx, "ORD-20260830-")
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	invoiceCount, err := suite.repository.CountInvoicesByNumberPrefix(ctx, "INV-20260829-")
	suite.Require().NoError(err)
	suite.Equal(int64(1), invoiceCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), uuid.New())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetWithPendingInvoicesBefore_SelectsOnlyStalePending() {
	ctx := context.Background()

	stale := suite.createTestOrder("ORD-20260827-0001", "INV-20260827-0001")
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	paid := suite.createTestOrder("ORD-20260827-0002", "INV-20260827-0002")
	payment, err := order.NewPayment(uuid.New(), paid.Invoice().ID(), paid.TotalAmount(),
		order.PaymentStatusPaid, testCreatedAt, "pi_paid")
	suite.Require().NoError(err)
	suite.Require().NoError(paid.RecordPayment(payment, testCreatedAt))
	suite.Require().NoError(suite.repository.Add(ctx, paid))

	cutoff := testCreatedAt.Add(time.Hour)
	orders, err := suite.repository.GetWithPendingInvoicesBefore(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(stale.ID(), orders[0].ID())

	// A cutoff before every invoice matches nothing.
	orders, err = suite.repository.GetWithPendingInvoicesBefore(ctx, testCreatedAt.Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
