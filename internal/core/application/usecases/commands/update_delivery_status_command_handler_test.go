package commands_test

import (
	"testing"
	"time"

	"evdealer/internal/core/application/usecases/commands"
	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/core/ports"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeScheduledDelivery(t *testing.T, orderID uuid.UUID) *delivery.Delivery {
	t.Helper()
	planned := testNow.AddDate(0, 0, 7)
	d, err := delivery.NewDelivery(uuid.New(), orderID, &planned, "1 Main St", "", testNow.Add(-time.Hour))
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_InTransit(t *testing.T) {
	ctx := t.Context()
	staff := makeStaff(t)
	d := makeScheduledDelivery(t, uuid.New())
	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), staff.ID(), delivery.StatusInTransit, nil, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, staff.ID()).Return(staff, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusInTransit, d.Status())
	// The order is only touched when the delivery completes.
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredPropagatesToOrder(t *testing.T) {
	ctx := t.Context()
	staff := makeStaff(t)
	o := makePaidOrder(t, uuid.New(), uuid.New())
	d := makeScheduledDelivery(t, o.ID())
	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), staff.ID(), delivery.StatusDelivered, nil, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, staff.ID()).Return(staff, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderStatusChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderStatusChangedEvent) bool {
		return e.OrderID == o.ID() && e.Status == "Delivered"
	})).Return(nil).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher, testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusDelivered, d.Status())
	assert.Equal(t, order.StatusDelivered, o.Status())
	require.NotNil(t, d.ActualDate())
	assert.Equal(t, testNow, *d.ActualDate())
	require.NotNil(t, o.UpdatedBy())
	assert.Equal(t, staff.ID(), *o.UpdatedBy())

	publisher.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredWithExplicitDate(t *testing.T) {
	ctx := t.Context()
	staff := makeStaff(t)
	o := makePaidOrder(t, uuid.New(), uuid.New())
	d := makeScheduledDelivery(t, o.ID())
	actual := testNow.Add(-2 * time.Hour)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), staff.ID(), delivery.StatusDelivered, nil, &actual)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", mock.Anything, staff.ID()).Return(staff, nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, d.ActualDate())
	assert.Equal(t, actual, *d.ActualDate())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_TerminalConflict(t *testing.T) {
	ctx := t.Context()
	staff := makeStaff(t)
	d := makeScheduledDelivery(t, uuid.New())
	_, err := d.ChangeStatus(staff.ID(), delivery.StatusCancelled, nil, nil, testNow)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), staff.ID(), delivery.StatusInTransit, nil, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", mock.Anything, staff.ID()).Return(staff, nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, quietPublisher(), testClock(), testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
