package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"evdealer/internal/core/application/usecases/commands"
	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/core/domain/model/user"
	"evdealer/internal/core/domain/model/vehicle"
	"evdealer/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func testClock() ports.Clock { return fixedClock{now: testNow} }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepository) CountInvoicesByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepository) GetWithPendingInvoicesBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStaffOrderUoWFactory struct{ mock.Mock }

func (m *MockStaffOrderUoWFactory) Create() commands.StaffOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffOrderUoW)
}

type MockStockOrderUoWFactory struct{ mock.Mock }

func (m *MockStockOrderUoWFactory) Create() commands.StockOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.StockOrderUoW)
}

type MockCancelOrderUoWFactory struct{ mock.Mock }

func (m *MockCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CancelOrderUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func quietPublisher() *MockPublisher {
	p := new(MockPublisher)
	p.On("PublishOrderStatusChanged", mock.Anything, mock.Anything).Return(nil).Maybe()
	return p
}

// Domain fixtures.

func makeStaff(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(uuid.New(), "Dana Reyes", "dana@example.com", "", user.RoleDealerStaff)
	require.NoError(t, err)
	return u
}

func makeCustomer(t *testing.T, id uuid.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "Alex Kim", "alex@example.com", "", user.RoleCustomer)
	require.NoError(t, err)
	return u
}

func makeVehicle(t *testing.T, stock int) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(uuid.New(), "Ionix 5", "Long Range AWD", 2026, 49990, stock, testNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return v
}

func makePendingOrder(t *testing.T, customerID, vehicleID uuid.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(uuid.New(), "ORD-20260829-0001", customerID, "1 Main St", "", testNow.Add(-24*time.Hour))
	require.NoError(t, err)

	item, err := order.NewItem(uuid.New(), o.ID(), vehicleID, 49990)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))

	inv, err := order.NewInvoice(uuid.New(), o.ID(), customerID, "INV-20260829-0001", o.TotalAmount(), testNow.Add(-24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, o.AttachInvoice(inv))

	return o
}

func makePaidOrder(t *testing.T, customerID, vehicleID uuid.UUID) *order.Order {
	t.Helper()

	o := makePendingOrder(t, customerID, vehicleID)
	payment, err := order.NewPayment(uuid.New(), o.Invoice().ID(), o.TotalAmount(),
		order.PaymentStatusPaid, testNow.Add(-time.Hour), "pi_3NxYzA")
	require.NoError(t, err)
	require.NoError(t, o.RecordPayment(payment, testNow.Add(-time.Hour)))

	return o
}
