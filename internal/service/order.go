package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/trm"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type OrderStore interface {
	GetOrderWithItems(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	CreateOrder(ctx context.Context, o entities.Order) error
	SetPaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) error
}

type CreateOrderItem struct {
	ProductID string
	VariantID string
	Quantity  int
	Price     decimal.Decimal
}

type CreateOrderInput struct {
	UserID          string
	Items           []CreateOrderItem
	TotalAmount     decimal.Decimal
	ShippingAddress entities.ShippingAddress
	BillingAddress  *entities.ShippingAddress
	PaymentIntentID string
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderStore
	validate  *validator.Validate
	retry     utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderStore) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		validate:  validator.New(),
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  3,
			Multiplier:   2,
		},
	}
}

// CreateOrder создаёт заказ в pending/unfulfilled. Цены позиций фиксируются здесь.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if len(in.Items) == 0 {
		return entities.Order{}, fmt.Errorf("%w: order has no items", entities.ErrInvalidOrder)
	}
	if err := s.validate.Struct(in.ShippingAddress); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrInvalidShippingAddress, err)
	}

	shipping, err := in.ShippingAddress.Marshal()
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to marshal shipping address: %w", err)
	}
	var billing string
	if in.BillingAddress != nil {
		if billing, err = in.BillingAddress.Marshal(); err != nil {
			return entities.Order{}, fmt.Errorf("failed to marshal billing address: %w", err)
		}
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:                uuid.NewString(),
		UserID:            in.UserID,
		PaymentStatus:     entities.PaymentPending,
		FulfillmentStatus: entities.FulfillmentUnfulfilled,
		TotalAmount:       in.TotalAmount,
		PaymentIntentID:   in.PaymentIntentID,
		ShippingAddress:   shipping,
		BillingAddress:    billing,
		CreatedAt:         now,
		UpdatedAt:         now,
		Items:             make([]entities.OrderItem, 0, len(in.Items)),
	}

	total := decimal.Zero
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.Price.IsNegative() {
			return entities.Order{}, fmt.Errorf("%w: invalid item for product %q", entities.ErrInvalidOrder, it.ProductID)
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		order.Items = append(order.Items, entities.OrderItem{
			ID:        uuid.NewString(),
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	if order.TotalAmount.IsZero() {
		order.TotalAmount = total
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.CreateOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created", slog.String("order_id", order.ID), slog.Int("items", len(order.Items)))
	return s.GetOrder(ctx, order.ID)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderWithItems(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset = max(offset, 0)

	orders, err := s.repo.ListOrders(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// MarkPaid - запись платёжного контура. Повторная отметка оплаченного заказа ничего не меняет.
func (s *orderService) MarkPaid(ctx context.Context, id string) (entities.Order, error) {
	order, err := s.repo.GetOrderWithItems(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	switch order.PaymentStatus {
	case entities.PaymentPaid:
		return order, nil
	case entities.PaymentCancelled:
		return entities.Order{}, entities.ErrOrderCancelled
	}

	if err := s.repo.SetPaymentStatus(ctx, id, entities.PaymentPaid); err != nil {
		return entities.Order{}, fmt.Errorf("failed to mark order paid: %w", err)
	}
	order.PaymentStatus = entities.PaymentPaid

	s.logger.Info("order paid", slog.String("order_id", id))
	return order, nil
}

// CancelPayment отменяет оплату, пока заказ не ушёл к провайдеру.
func (s *orderService) CancelPayment(ctx context.Context, id string) (entities.Order, error) {
	order, err := s.repo.GetOrderWithItems(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.PaymentStatus == entities.PaymentCancelled {
		return order, nil
	}
	if order.FulfillmentStatus != entities.FulfillmentUnfulfilled {
		return entities.Order{}, fmt.Errorf("cannot cancel payment: %w", entities.ErrAlreadyInProgress)
	}

	if err := s.repo.SetPaymentStatus(ctx, id, entities.PaymentCancelled); err != nil {
		return entities.Order{}, fmt.Errorf("failed to cancel payment: %w", err)
	}
	order.PaymentStatus = entities.PaymentCancelled

	s.logger.Info("order payment cancelled", slog.String("order_id", id))
	return order, nil
}
