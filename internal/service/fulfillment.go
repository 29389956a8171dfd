package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/lock"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/printful"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/utils"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/SergeyBogomolovv/merch-fulfillment/internal/service")

type OrderRepo interface {
	GetOrderWithItems(ctx context.Context, id string) (entities.Order, error)

	// CompareAndSetFulfillment возвращает false, если статус заказа уже не expected.
	CompareAndSetFulfillment(ctx context.Context, id string, expected, next entities.FulfillmentStatus, externalID string) (bool, error)
}

type Provider interface {
	Sandbox() bool
	CreateOrder(ctx context.Context, req printful.OrderRequest) (printful.Order, error)
	ConfirmOrder(ctx context.Context, orderID string) (printful.Order, error)
	GetOrder(ctx context.Context, orderID string) (printful.Order, error)
}

type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (lock.Unlock, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// FulfillResult - итог Fulfill. Warning заполняется, когда заказ создан у провайдера,
// но не подтверждён: это не ошибка, отправку повторять нельзя.
type FulfillResult struct {
	Order             entities.Order
	ProviderOrderID   string
	EligibleItemCount int
	SkippedItemCount  int
	Confirmed         bool
	Warning           error
}

type fulfillmentService struct {
	logger   *slog.Logger
	cfg      config.Fulfillment
	country  string
	shipping string

	repo     OrderRepo
	provider Provider
	locker   Locker
	cache    Cache
	validate *validator.Validate
}

func NewFulfillmentService(
	logger *slog.Logger,
	cfg config.Fulfillment,
	providerCfg config.Printful,
	repo OrderRepo,
	provider Provider,
	locker Locker,
	cache Cache,
) *fulfillmentService {
	return &fulfillmentService{
		logger:   logger.With(slog.String("service", "fulfillment")),
		cfg:      cfg,
		country:  providerCfg.DefaultCountry,
		shipping: providerCfg.Shipping,
		repo:     repo,
		provider: provider,
		locker:   locker,
		cache:    cache,
		validate: validator.New(),
	}
}

func (s *fulfillmentService) Fulfill(ctx context.Context, orderID string) (res FulfillResult, err error) {
	ctx, span := tracer.Start(ctx, "fulfillment.Fulfill", trace.WithAttributes(attribute.String("order_id", orderID)))
	start := time.Now()
	defer func() {
		outcome := fulfillOutcome(res, err)
		fulfillmentOutcomes.WithLabelValues(outcome).Inc()
		fulfillDuration.Observe(time.Since(start).Seconds())
		span.SetAttributes(attribute.String("outcome", outcome))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	logger := s.logger.With(slog.String("order_id", orderID))

	unlock, err := s.locker.TryLock(ctx, lockKey(orderID), s.cfg.LockTTL)
	if errors.Is(err, lock.ErrLocked) {
		return FulfillResult{}, entities.ErrAlreadyInProgress
	}
	if err != nil {
		return FulfillResult{}, fmt.Errorf("failed to lock order: %w", err)
	}
	defer unlock()

	order, err := s.repo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		return FulfillResult{}, fmt.Errorf("failed to get order: %w", err)
	}
	if order.FulfillmentStatus != entities.FulfillmentUnfulfilled {
		return FulfillResult{}, entities.ErrAlreadyInProgress
	}
	if order.PaymentStatus == entities.PaymentCancelled {
		return FulfillResult{}, entities.ErrOrderCancelled
	}

	eligible, skipped := partitionItems(order.Items)
	if len(eligible) == 0 {
		return FulfillResult{}, entities.ErrNoEligibleItems
	}

	recipient, err := s.buildRecipient(order.ShippingAddress)
	if err != nil {
		return FulfillResult{}, err
	}

	req := printful.OrderRequest{
		ExternalID: order.ID,
		Shipping:   s.shipping,
		Recipient:  recipient,
		Items:      s.buildItems(logger, eligible),
	}

	// после отправки отмена уже не безопасна: заказ у провайдера останется без записи у нас
	if err := ctx.Err(); err != nil {
		return FulfillResult{}, err
	}
	ctx = context.WithoutCancel(ctx)

	providerOrder, err := s.submit(ctx, req)
	if err != nil {
		logger.Warn("provider submission failed", slog.Any("error", err))
		return FulfillResult{}, fmt.Errorf("%w: %w", entities.ErrProviderSubmissionFailed, err)
	}
	providerID := providerOrder.IDString()
	logger = logger.With(slog.String("provider_order_id", providerID))

	if err := s.recordSubmission(ctx, orderID, providerID); err != nil {
		logger.Error("provider order created but not recorded", slog.Any("error", err))
		return FulfillResult{ProviderOrderID: providerID}, fmt.Errorf("%w: provider order %s: %w", entities.ErrStateWriteFailed, providerID, err)
	}

	order.FulfillmentStatus = entities.FulfillmentPending
	order.ExternalFulfillmentID = providerID
	res = FulfillResult{
		Order:             order,
		ProviderOrderID:   providerID,
		EligibleItemCount: len(eligible),
		SkippedItemCount:  len(skipped),
	}
	logger.Info("order submitted to provider", slog.Int("eligible", len(eligible)), slog.Int("skipped", len(skipped)))

	if s.provider.Sandbox() {
		return res, nil
	}

	if err := s.confirm(ctx, orderID, providerID); err != nil {
		logger.Warn("order left pending confirmation", slog.Any("error", err))
		res.Warning = err
		return res, nil
	}

	res.Order.FulfillmentStatus = entities.FulfillmentFulfilled
	res.Confirmed = true
	logger.Info("order confirmed")
	return res, nil
}

// ConfirmOrder подтверждает заказ, который остался в pending после неудачного подтверждения.
func (s *fulfillmentService) ConfirmOrder(ctx context.Context, orderID string) (entities.Order, error) {
	ctx, span := tracer.Start(ctx, "fulfillment.ConfirmOrder", trace.WithAttributes(attribute.String("order_id", orderID)))
	defer span.End()

	unlock, err := s.locker.TryLock(ctx, lockKey(orderID), s.cfg.LockTTL)
	if errors.Is(err, lock.ErrLocked) {
		return entities.Order{}, entities.ErrAlreadyInProgress
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to lock order: %w", err)
	}
	defer unlock()

	order, err := s.repo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	if order.FulfillmentStatus != entities.FulfillmentPending || order.ExternalFulfillmentID == "" {
		return entities.Order{}, entities.ErrOrderNotPending
	}

	if err := s.confirm(context.WithoutCancel(ctx), orderID, order.ExternalFulfillmentID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entities.Order{}, err
	}

	s.cache.Delete(providerOrderKey(order.ExternalFulfillmentID))
	s.logger.Info("order confirmed manually", slog.String("order_id", orderID), slog.String("provider_order_id", order.ExternalFulfillmentID))
	order.FulfillmentStatus = entities.FulfillmentFulfilled
	return order, nil
}

// ProviderStatus возвращает состояние заказа у провайдера. Локально ничего не пишется.
func (s *fulfillmentService) ProviderStatus(ctx context.Context, orderID string) (entities.ProviderOrder, error) {
	order, err := s.repo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		return entities.ProviderOrder{}, fmt.Errorf("failed to get order: %w", err)
	}
	if order.ExternalFulfillmentID == "" {
		return entities.ProviderOrder{}, entities.ErrNotSubmitted
	}

	key := providerOrderKey(order.ExternalFulfillmentID)
	if data, ok := s.cache.Get(key); ok {
		var cached entities.ProviderOrder
		if err := cached.Unmarshal(data); err == nil {
			return cached, nil
		}
		s.logger.Error("failed to unmarshal provider order", slog.String("key", key))
	}

	providerOrder, err := s.provider.GetOrder(ctx, order.ExternalFulfillmentID)
	if err != nil {
		return entities.ProviderOrder{}, fmt.Errorf("failed to get provider order: %w", err)
	}

	result := providerOrder.ToEntity()
	data, err := result.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal provider order", slog.Any("error", err))
		return result, nil
	}
	s.cache.Set(key, data)
	return result, nil
}

func (s *fulfillmentService) submit(ctx context.Context, req printful.OrderRequest) (printful.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.SubmitTimeout)
	defer cancel()
	return s.provider.CreateOrder(ctx, req)
}

// recordSubmission переводит заказ в pending. Запись повторяется, потому что без неё
// созданный у провайдера заказ не связан с нашим.
func (s *fulfillmentService) recordSubmission(ctx context.Context, orderID, providerID string) error {
	errLost := errors.New("fulfillment status changed concurrently")

	fn := func() error {
		ok, err := s.repo.CompareAndSetFulfillment(ctx, orderID, entities.FulfillmentUnfulfilled, entities.FulfillmentPending, providerID)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		// предыдущая попытка могла записаться, но вернуть ошибку
		current, err := s.repo.GetOrderWithItems(ctx, orderID)
		if err != nil {
			return err
		}
		if current.FulfillmentStatus == entities.FulfillmentPending && current.ExternalFulfillmentID == providerID {
			return nil
		}
		return errLost
	}

	cfg := utils.RetryConfig{
		MaxAttempts:  s.cfg.WriteAttempts,
		InitialDelay: s.cfg.WriteInitialDelay,
		Multiplier:   config.WriteBackoffMultiplier,
	}
	return utils.Retry(ctx, cfg, fn, errLost, entities.ErrOrderNotFound)
}

func (s *fulfillmentService) confirm(ctx context.Context, orderID, providerID string) error {
	confirmCtx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout)
	defer cancel()

	if _, err := s.provider.ConfirmOrder(confirmCtx, providerID); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrConfirmationFailed, err)
	}

	ok, err := s.repo.CompareAndSetFulfillment(ctx, orderID, entities.FulfillmentPending, entities.FulfillmentFulfilled, providerID)
	if err != nil {
		return fmt.Errorf("%w: provider confirmed but status not saved: %w", entities.ErrConfirmationFailed, err)
	}
	if !ok {
		return fmt.Errorf("%w: provider confirmed but order is no longer pending", entities.ErrConfirmationFailed)
	}
	return nil
}

func (s *fulfillmentService) buildRecipient(raw string) (printful.Recipient, error) {
	addr, err := entities.ParseShippingAddress(raw)
	if err != nil {
		return printful.Recipient{}, err
	}
	if err := s.validate.Struct(addr); err != nil {
		return printful.Recipient{}, fmt.Errorf("%w: %w", entities.ErrInvalidShippingAddress, err)
	}

	country := strings.ToUpper(addr.Country)
	if country == "" {
		country = s.country
	}

	return printful.Recipient{
		Name:        addr.Name,
		Address1:    addr.Address,
		Address2:    addr.Address2,
		City:        addr.City,
		StateCode:   addr.State,
		CountryCode: country,
		Zip:         addr.ZipCode,
		Email:       addr.Email,
		Phone:       addr.Phone,
	}, nil
}

func (s *fulfillmentService) buildItems(logger *slog.Logger, items []entities.OrderItem) []printful.OrderItem {
	res := make([]printful.OrderItem, 0, len(items))
	for _, it := range items {
		externalID := it.Product.ExternalCatalogExtID
		if externalID == "" {
			// Printful не знает наш id, такая позиция скорее всего будет отклонена
			externalID = it.Product.ID
			missingExternalIDs.Inc()
			logger.Warn("missing external catalog id, using product id",
				slog.String("product_id", it.Product.ID),
				slog.String("item_id", it.ID),
			)
		}

		res = append(res, printful.OrderItem{
			ExternalVariantID: externalID,
			Quantity:          it.Quantity,
			RetailPrice:       it.Price.StringFixed(2),
		})
	}
	return res
}

func partitionItems(items []entities.OrderItem) (eligible, skipped []entities.OrderItem) {
	for _, it := range items {
		if it.Product.IsProviderFulfilled() {
			eligible = append(eligible, it)
		} else {
			skipped = append(skipped, it)
		}
	}
	return eligible, skipped
}

func providerOrderKey(providerID string) string {
	return "provider-order:" + providerID
}

func lockKey(orderID string) string {
	return "fulfillment:" + orderID
}

func fulfillOutcome(res FulfillResult, err error) string {
	switch {
	case err == nil && res.Confirmed:
		return outcomeConfirmed
	case err == nil && res.Warning != nil:
		return outcomeConfirmationFailed
	case err == nil:
		return outcomeSubmitted
	case errors.Is(err, entities.ErrAlreadyInProgress):
		return outcomeAlreadyInProgress
	case errors.Is(err, entities.ErrOrderNotFound):
		return outcomeNotFound
	case errors.Is(err, entities.ErrOrderCancelled):
		return outcomeCancelled
	case errors.Is(err, entities.ErrNoEligibleItems):
		return outcomeNoEligibleItems
	case errors.Is(err, entities.ErrInvalidShippingAddress):
		return outcomeInvalidAddress
	case errors.Is(err, entities.ErrProviderSubmissionFailed):
		return outcomeSubmissionFailed
	case errors.Is(err, entities.ErrStateWriteFailed):
		return outcomeStateWriteFailed
	default:
		return outcomeError
	}
}
