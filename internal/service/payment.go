package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/lock"
)

type PaymentRecorder interface {
	MarkPaid(ctx context.Context, id string) (entities.Order, error)
	CancelPayment(ctx context.Context, id string) (entities.Order, error)
}

type Fulfiller interface {
	Fulfill(ctx context.Context, orderID string) (FulfillResult, error)
}

type paymentService struct {
	logger      *slog.Logger
	orders      PaymentRecorder
	fulfiller   Fulfiller
	locker      Locker
	lockTTL     time.Duration
	autoFulfill bool
}

func NewPaymentService(logger *slog.Logger, orders PaymentRecorder, fulfiller Fulfiller, locker Locker, lockTTL time.Duration, autoFulfill bool) *paymentService {
	return &paymentService{
		logger:      logger.With(slog.String("service", "payment")),
		orders:      orders,
		fulfiller:   fulfiller,
		locker:      locker,
		lockTTL:     lockTTL,
		autoFulfill: autoFulfill,
	}
}

// HandlePayment применяет событие платёжного контура. Возвращённая ошибка означает,
// что событие нужно отложить в DLQ.
func (s *paymentService) HandlePayment(ctx context.Context, orderID string, status entities.PaymentStatus) error {
	logger := s.logger.With(slog.String("order_id", orderID), slog.String("status", string(status)))

	switch status {
	case entities.PaymentPaid:
		if _, err := s.orders.MarkPaid(ctx, orderID); err != nil {
			return fmt.Errorf("failed to mark order paid: %w", err)
		}
		if !s.autoFulfill {
			return nil
		}
		return s.fulfill(ctx, logger, orderID)

	case entities.PaymentCancelled:
		unlock, err := s.locker.TryLock(ctx, lockKey(orderID), s.lockTTL)
		if errors.Is(err, lock.ErrLocked) {
			return fmt.Errorf("order is being fulfilled: %w", entities.ErrAlreadyInProgress)
		}
		if err != nil {
			return fmt.Errorf("failed to lock order: %w", err)
		}
		defer unlock()

		if _, err := s.orders.CancelPayment(ctx, orderID); err != nil {
			return fmt.Errorf("failed to cancel payment: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown payment status %q", status)
	}
}

func (s *paymentService) fulfill(ctx context.Context, logger *slog.Logger, orderID string) error {
	res, err := s.fulfiller.Fulfill(ctx, orderID)
	switch {
	case err == nil && res.Warning != nil:
		logger.Warn("order submitted but not confirmed", slog.String("provider_order_id", res.ProviderOrderID), slog.Any("warning", res.Warning))
		return nil
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrAlreadyInProgress),
		errors.Is(err, entities.ErrNoEligibleItems),
		errors.Is(err, entities.ErrOrderCancelled):
		logger.Info("order skipped by auto fulfillment", slog.Any("reason", err))
		return nil
	default:
		return fmt.Errorf("failed to fulfill order: %w", err)
	}
}
