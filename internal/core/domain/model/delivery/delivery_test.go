package delivery_test

import (
	"testing"
	"time"

	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	planned := testCreatedAt.AddDate(0, 0, 7)
	d, err := delivery.NewDelivery(uuid.New(), uuid.New(), &planned, "1 Main St", "", testCreatedAt)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create scheduled delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		assert.Equal(t, delivery.StatusScheduled, d.Status())
		assert.NotNil(t, d.PlannedDate())
		assert.Nil(t, d.ActualDate())
		assert.False(t, d.IsDeleted())
	})

	t.Run("should allow missing planned date", func(t *testing.T) {
		d, err := delivery.NewDelivery(uuid.New(), uuid.New(), nil, "", "", testCreatedAt)

		require.NoError(t, err)
		assert.Nil(t, d.PlannedDate())
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		_, err := delivery.NewDelivery(uuid.Nil, uuid.New(), nil, "", "", testCreatedAt)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = delivery.NewDelivery(uuid.New(), uuid.Nil, nil, "", "", testCreatedAt)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value delivery", func(t *testing.T) {
		var d delivery.Delivery

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, err)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow defined transitions", func(t *testing.T) {
		testCases := []struct {
			from delivery.Status
			to   delivery.Status
		}{
			{delivery.StatusScheduled, delivery.StatusInTransit},
			{delivery.StatusScheduled, delivery.StatusDelivered},
			{delivery.StatusScheduled, delivery.StatusCancelled},
			{delivery.StatusInTransit, delivery.StatusDelivered},
			{delivery.StatusInTransit, delivery.StatusCancelled},
		}

		for _, tc := range testCases {
			newStatus, err := tc.from.TransitionTo(tc.to)

			require.NoError(t, err)
			assert.Equal(t, tc.to, newStatus)
		}
	})

	t.Run("should reject transitions out of terminal states", func(t *testing.T) {
		testCases := []struct {
			from delivery.Status
			to   delivery.Status
		}{
			{delivery.StatusDelivered, delivery.StatusInTransit},
			{delivery.StatusDelivered, delivery.StatusCancelled},
			{delivery.StatusCancelled, delivery.StatusScheduled},
			{delivery.StatusInTransit, delivery.StatusScheduled},
		}

		for _, tc := range testCases {
			newStatus, err := tc.from.TransitionTo(tc.to)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrConflict)
			assert.Equal(t, delivery.StatusUnknown, newStatus)
		}
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := delivery.StatusScheduled.TransitionTo(delivery.Status(42))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected delivery.Status
		}{
			{"Scheduled", delivery.StatusScheduled},
			{"InTransit", delivery.StatusInTransit},
			{"Delivered", delivery.StatusDelivered},
			{"Cancelled", delivery.StatusCancelled},
		}

		for _, tc := range testCases {
			status, err := delivery.StatusFromString(tc.name)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := delivery.StatusFromString("Shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_ChangeStatus(t *testing.T) {
	actorID := uuid.New()
	now := testCreatedAt.Add(2 * time.Hour)

	t.Run("should move scheduled delivery in transit", func(t *testing.T) {
		d := newTestDelivery(t)

		becameDelivered, err := d.ChangeStatus(actorID, delivery.StatusInTransit, nil, nil, now)

		require.NoError(t, err)
		assert.False(t, becameDelivered)
		assert.Equal(t, delivery.StatusInTransit, d.Status())
		assert.Nil(t, d.ActualDate())
		require.NotNil(t, d.UpdatedBy())
		assert.Equal(t, actorID, *d.UpdatedBy())
	})

	t.Run("should stamp actual date with supplied value on delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		actual := now.Add(30 * time.Minute)

		becameDelivered, err := d.ChangeStatus(actorID, delivery.StatusDelivered, nil, &actual, now)

		require.NoError(t, err)
		assert.True(t, becameDelivered)
		assert.Equal(t, delivery.StatusDelivered, d.Status())
		require.NotNil(t, d.ActualDate())
		assert.Equal(t, actual, *d.ActualDate())
	})

	t.Run("should default actual date to now when absent", func(t *testing.T) {
		d := newTestDelivery(t)

		becameDelivered, err := d.ChangeStatus(actorID, delivery.StatusDelivered, nil, nil, now)

		require.NoError(t, err)
		assert.True(t, becameDelivered)
		require.NotNil(t, d.ActualDate())
		assert.Equal(t, now, *d.ActualDate())
	})

	t.Run("should update planned date when supplied", func(t *testing.T) {
		d := newTestDelivery(t)
		planned := now.AddDate(0, 0, 3)

		_, err := d.ChangeStatus(actorID, delivery.StatusInTransit, &planned, nil, now)

		require.NoError(t, err)
		require.NotNil(t, d.PlannedDate())
		assert.Equal(t, planned, *d.PlannedDate())
	})

	t.Run("should reject transitions out of terminal states", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.ChangeStatus(actorID, delivery.StatusDelivered, nil, nil, now)
		require.NoError(t, err)

		becameDelivered, err := d.ChangeStatus(actorID, delivery.StatusCancelled, nil, nil, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.False(t, becameDelivered)
		assert.Equal(t, delivery.StatusDelivered, d.Status())
	})
}

func TestDelivery_Reschedule(t *testing.T) {
	actorID := uuid.New()
	now := testCreatedAt.Add(time.Hour)

	t.Run("should update planned date", func(t *testing.T) {
		d := newTestDelivery(t)
		planned := now.AddDate(0, 0, 14)

		err := d.Reschedule(actorID, planned, now)

		require.NoError(t, err)
		require.NotNil(t, d.PlannedDate())
		assert.Equal(t, planned, *d.PlannedDate())
	})

	t.Run("should reject rescheduling a completed delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.ChangeStatus(actorID, delivery.StatusDelivered, nil, nil, now)
		require.NoError(t, err)

		err = d.Reschedule(actorID, now.AddDate(0, 0, 1), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}
