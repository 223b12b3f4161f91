package commands_test

import (
	"testing"
	"time"

	"evdealer/internal/core/application/usecases/commands"
	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staff := makeStaff(t)
	o := makePaidOrder(t, uuid.New(), uuid.New())
	planned := testNow.AddDate(0, 0, 7)
	cmd, err := commands.NewCreateDeliveryCommand(uuid.New(), o.ID(), staff.ID(), &planned, "", "call ahead")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, staff.ID()).Return(staff, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", o.ID())).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, testClock())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)

	added := deliveryRepo.Calls[1].Arguments.Get(1).(*delivery.Delivery)
	assert.Equal(t, delivery.StatusScheduled, added.Status())
	assert.Equal(t, o.ID(), added.OrderID())
	require.NotNil(t, added.PlannedDate())
	assert.Equal(t, planned, *added.PlannedDate())
	// Address falls back to the order's shipping address when not supplied.
	assert.Equal(t, o.ShippingAddress(), added.ShippingAddress())
	assert.Nil(t, added.ActualDate())

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_UnpaidOrderConflict(t *testing.T) {
	ctx := t.Context()
	staff := makeStaff(t)
	o := makePendingOrder(t, uuid.New(), uuid.New())
	cmd, err := commands.NewCreateDeliveryCommand(uuid.New(), o.ID(), staff.ID(), nil, "", "")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", mock.Anything, staff.ID()).Return(staff, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, testClock())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "paid payment")
	deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_DuplicateDeliveryConflict(t *testing.T) {
	ctx := t.Context()
	staff := makeStaff(t)
	o := makePaidOrder(t, uuid.New(), uuid.New())
	existing, err := delivery.NewDelivery(uuid.New(), o.ID(), nil, "", "", testNow.Add(-time.Hour))
	require.NoError(t, err)
	cmd, err := commands.NewCreateDeliveryCommand(uuid.New(), o.ID(), staff.ID(), nil, "", "")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", mock.Anything, staff.ID()).Return(staff, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, testClock())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "already exists")
	deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_NonStaffForbidden(t *testing.T) {
	ctx := t.Context()
	customer := makeCustomer(t, uuid.New())
	cmd, err := commands.NewCreateDeliveryCommand(uuid.New(), uuid.New(), customer.ID(), nil, "", "")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", mock.Anything, customer.ID()).Return(customer, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, testClock())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "OrderRepository")
}
