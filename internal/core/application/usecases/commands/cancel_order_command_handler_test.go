package commands_test

import (
	"testing"

	"evdealer/internal/core/application/usecases/commands"
	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_OwnerCancels(t *testing.T) {
	ctx := t.Context()
	customerID := uuid.New()
	v := makeVehicle(t, 0)
	o := makePendingOrder(t, customerID, v.ID())
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID, "changed my mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	vehicleRepo.On("GetForUpdate", mock.Anything, v.ID()).Return(v, nil).Once()
	vehicleRepo.On("Update", mock.Anything, v).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, o.Status())
	assert.Equal(t, order.InvoiceStatusCancelled, o.Invoice().Status())
	assert.Equal(t, 1, v.Stock())
	assert.Contains(t, o.Notes(), "Cancelled: changed my mind")

	orderRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	// Owner cancellation never consults the user repository.
	userRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_StaffCancels(t *testing.T) {
	ctx := t.Context()
	staff := makeStaff(t)
	v := makeVehicle(t, 2)
	o := makePendingOrder(t, uuid.New(), v.ID())
	cmd, err := commands.NewCancelOrderCommand(o.ID(), staff.ID(), "customer no-show")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	userRepo.On("Get", mock.Anything, staff.ID()).Return(staff, nil).Once()
	vehicleRepo.On("GetForUpdate", mock.Anything, v.ID()).Return(v, nil).Once()
	vehicleRepo.On("Update", mock.Anything, v).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, o.Status())
	assert.Equal(t, 3, v.Stock())
}

func TestCancelOrderCommandHandler_Handle_StrangerIsForbidden(t *testing.T) {
	ctx := t.Context()
	stranger := makeCustomer(t, uuid.New())
	o := makePendingOrder(t, uuid.New(), uuid.New())
	cmd, err := commands.NewCancelOrderCommand(o.ID(), stranger.ID(), "not mine")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	userRepo.On("Get", mock.Anything, stranger.ID()).Return(stranger, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.StatusPending, o.Status())
	vehicleRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_PaidOrderConflict(t *testing.T) {
	ctx := t.Context()
	customerID := uuid.New()
	o := makePaidOrder(t, customerID, uuid.New())
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID, "too late")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.StatusPending, o.Status())
	vehicleRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_SecondCancelConflict(t *testing.T) {
	ctx := t.Context()
	customerID := uuid.New()
	o := makePendingOrder(t, customerID, uuid.New())
	require.NoError(t, o.Cancel(customerID, "first", testNow))
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID, "second")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	vehicleRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_MissingVehicleIsFatal(t *testing.T) {
	ctx := t.Context()
	customerID := uuid.New()
	vehicleID := uuid.New()
	o := makePendingOrder(t, customerID, vehicleID)
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID, "changed my mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	vehicleRepo.On("GetForUpdate", mock.Anything, vehicleID).
		Return(nil, errs.NewObjectNotFoundError("vehicleID", vehicleID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrFatal)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
