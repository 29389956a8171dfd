package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/lock"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/service"
	mocks "github.com/SergeyBogomolovv/merch-fulfillment/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentService_HandlePayment(t *testing.T) {
	type MockBehavior func(orders *mocks.MockPaymentRecorder, fulfiller *mocks.MockFulfiller)

	testCases := []struct {
		name         string
		status       entities.PaymentStatus
		autoFulfill  bool
		mockBehavior MockBehavior
		wantErr      error
		wantAnyErr   bool
	}{
		{
			name:   "paid without auto fulfillment",
			status: entities.PaymentPaid,
			mockBehavior: func(orders *mocks.MockPaymentRecorder, _ *mocks.MockFulfiller) {
				orders.EXPECT().MarkPaid(mock.Anything, "1").Return(entities.Order{ID: "1"}, nil).Once()
			},
		},
		{
			name:        "paid and fulfilled",
			status:      entities.PaymentPaid,
			autoFulfill: true,
			mockBehavior: func(orders *mocks.MockPaymentRecorder, fulfiller *mocks.MockFulfiller) {
				orders.EXPECT().MarkPaid(mock.Anything, "1").Return(entities.Order{ID: "1"}, nil).Once()
				fulfiller.EXPECT().Fulfill(mock.Anything, "1").Return(service.FulfillResult{ProviderOrderID: "42"}, nil).Once()
			},
		},
		{
			name:        "confirmation warning is handled",
			status:      entities.PaymentPaid,
			autoFulfill: true,
			mockBehavior: func(orders *mocks.MockPaymentRecorder, fulfiller *mocks.MockFulfiller) {
				orders.EXPECT().MarkPaid(mock.Anything, "1").Return(entities.Order{ID: "1"}, nil).Once()
				fulfiller.EXPECT().Fulfill(mock.Anything, "1").
					Return(service.FulfillResult{ProviderOrderID: "42", Warning: entities.ErrConfirmationFailed}, nil).Once()
			},
		},
		{
			name:        "manual-only order is handled",
			status:      entities.PaymentPaid,
			autoFulfill: true,
			mockBehavior: func(orders *mocks.MockPaymentRecorder, fulfiller *mocks.MockFulfiller) {
				orders.EXPECT().MarkPaid(mock.Anything, "1").Return(entities.Order{ID: "1"}, nil).Once()
				fulfiller.EXPECT().Fulfill(mock.Anything, "1").Return(service.FulfillResult{}, entities.ErrNoEligibleItems).Once()
			},
		},
		{
			name:        "duplicate event is handled",
			status:      entities.PaymentPaid,
			autoFulfill: true,
			mockBehavior: func(orders *mocks.MockPaymentRecorder, fulfiller *mocks.MockFulfiller) {
				orders.EXPECT().MarkPaid(mock.Anything, "1").Return(entities.Order{ID: "1"}, nil).Once()
				fulfiller.EXPECT().Fulfill(mock.Anything, "1").Return(service.FulfillResult{}, entities.ErrAlreadyInProgress).Once()
			},
		},
		{
			name:        "submission failure goes to dlq",
			status:      entities.PaymentPaid,
			autoFulfill: true,
			mockBehavior: func(orders *mocks.MockPaymentRecorder, fulfiller *mocks.MockFulfiller) {
				orders.EXPECT().MarkPaid(mock.Anything, "1").Return(entities.Order{ID: "1"}, nil).Once()
				fulfiller.EXPECT().Fulfill(mock.Anything, "1").Return(service.FulfillResult{}, entities.ErrProviderSubmissionFailed).Once()
			},
			wantErr: entities.ErrProviderSubmissionFailed,
		},
		{
			name:   "unknown order",
			status: entities.PaymentPaid,
			mockBehavior: func(orders *mocks.MockPaymentRecorder, _ *mocks.MockFulfiller) {
				orders.EXPECT().MarkPaid(mock.Anything, "1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "cancelled",
			status: entities.PaymentCancelled,
			mockBehavior: func(orders *mocks.MockPaymentRecorder, _ *mocks.MockFulfiller) {
				orders.EXPECT().CancelPayment(mock.Anything, "1").Return(entities.Order{ID: "1"}, nil).Once()
			},
		},
		{
			name:         "unknown status",
			status:       entities.PaymentStatus("refunded"),
			mockBehavior: func(_ *mocks.MockPaymentRecorder, _ *mocks.MockFulfiller) {},
			wantAnyErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockPaymentRecorder(t)
			fulfiller := mocks.NewMockFulfiller(t)
			tc.mockBehavior(orders, fulfiller)

			svc := service.NewPaymentService(discardLogger(), orders, fulfiller, lock.NewLocal(), time.Minute, tc.autoFulfill)

			err := svc.HandlePayment(context.Background(), "1", tc.status)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentService_CancelDuringFulfillment(t *testing.T) {
	locker := lock.NewLocal()
	unlock, err := locker.TryLock(context.Background(), "fulfillment:1", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	defer unlock()

	svc := service.NewPaymentService(discardLogger(), mocks.NewMockPaymentRecorder(t), mocks.NewMockFulfiller(t), locker, time.Minute, false)

	err = svc.HandlePayment(context.Background(), "1", entities.PaymentCancelled)
	assert.True(t, errors.Is(err, entities.ErrAlreadyInProgress))
}
