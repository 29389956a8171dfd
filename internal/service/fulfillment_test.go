package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/lock"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/printful"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/repo"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/service"
	mocks "github.com/SergeyBogomolovv/merch-fulfillment/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const springfieldAddress = `{"name":"A B","address":"1 Main St","city":"Springfield","state":"IL","zipCode":"62701","country":"US"}`

var (
	testFulfillmentCfg = config.Fulfillment{
		SubmitTimeout:     time.Second,
		ConfirmTimeout:    time.Second,
		LockTTL:           time.Minute,
		WriteAttempts:     3,
		WriteInitialDelay: time.Millisecond,
	}
	testPrintfulCfg = config.Printful{
		DefaultCountry: "US",
		Shipping:       "STANDARD",
	}
)

type orderStore interface {
	service.OrderRepo
	CreateProduct(ctx context.Context, p entities.Product) error
	CreateOrder(ctx context.Context, o entities.Order) error
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedProducts(t *testing.T, store orderStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.CreateProduct(ctx, entities.Product{
		ID:                   "hoodie",
		Name:                 "Tour Hoodie",
		Slug:                 "tour-hoodie",
		Price:                decimal.RequireFromString("45.00"),
		Status:               entities.ProductActive,
		FulfillmentType:      entities.FulfillmentPrintful,
		ExternalCatalogID:    "101",
		ExternalCatalogExtID: "ext-hoodie",
	}))
	require.NoError(t, store.CreateProduct(ctx, entities.Product{
		ID:              "poster",
		Name:            "Signed Poster",
		Slug:            "signed-poster",
		Price:           decimal.RequireFromString("15.00"),
		Status:          entities.ProductActive,
		FulfillmentType: entities.FulfillmentManual,
	}))
	require.NoError(t, store.CreateProduct(ctx, entities.Product{
		ID:              "mug",
		Name:            "Mug",
		Slug:            "mug",
		Price:           decimal.RequireFromString("12.50"),
		Status:          entities.ProductActive,
		FulfillmentType: entities.FulfillmentPrintful,
	}))
}

type orderOption func(o *entities.Order)

func withItem(productID string, qty int, price string) orderOption {
	return func(o *entities.Order) {
		o.Items = append(o.Items, entities.OrderItem{
			ID:        productID + "-item",
			ProductID: productID,
			Quantity:  qty,
			Price:     decimal.RequireFromString(price),
		})
	}
}

func withAddress(raw string) orderOption {
	return func(o *entities.Order) { o.ShippingAddress = raw }
}

func withStatus(payment entities.PaymentStatus, fulfillment entities.FulfillmentStatus, externalID string) orderOption {
	return func(o *entities.Order) {
		o.PaymentStatus = payment
		o.FulfillmentStatus = fulfillment
		o.ExternalFulfillmentID = externalID
	}
}

func seedOrder(t *testing.T, store orderStore, id string, opts ...orderOption) {
	t.Helper()
	o := entities.Order{
		ID:                id,
		PaymentStatus:     entities.PaymentPaid,
		FulfillmentStatus: entities.FulfillmentUnfulfilled,
		ShippingAddress:   springfieldAddress,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	require.NoError(t, store.CreateOrder(context.Background(), o))
}

func newStore(t *testing.T) orderStore {
	store := repo.NewMemoryRepo()
	seedProducts(t, store)
	return store
}

func newFulfillment(store service.OrderRepo, provider service.Provider, cache service.Cache) service.Fulfiller {
	return service.NewFulfillmentService(discardLogger(), testFulfillmentCfg, testPrintfulCfg, store, provider, lock.NewLocal(), cache)
}

func TestFulfillmentService_Fulfill(t *testing.T) {
	type MockBehavior func(provider *mocks.MockProvider)

	providerErr := &printful.APIError{Operation: "create_order", StatusCode: http.StatusBadRequest, Message: "Invalid recipient"}

	testCases := []struct {
		name         string
		order        []orderOption
		mockBehavior MockBehavior
		wantErr      error

		wantStatus     entities.FulfillmentStatus
		wantExternalID string
		wantConfirmed  bool
		wantWarning    error
		wantEligible   int
		wantSkipped    int
	}{
		{
			name:  "production: submitted and confirmed",
			order: []orderOption{withItem("hoodie", 2, "45.00")},
			mockBehavior: func(provider *mocks.MockProvider) {
				provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(printful.Order{ID: 555, Status: "draft"}, nil).Once()
				provider.EXPECT().Sandbox().Return(false)
				provider.EXPECT().ConfirmOrder(mock.Anything, "555").
					Return(printful.Order{ID: 555, Status: "pending"}, nil).Once()
			},
			wantStatus:     entities.FulfillmentFulfilled,
			wantExternalID: "555",
			wantConfirmed:  true,
			wantEligible:   1,
		},
		{
			name:  "sandbox: stays pending without confirmation",
			order: []orderOption{withItem("hoodie", 2, "45.00")},
			mockBehavior: func(provider *mocks.MockProvider) {
				provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(printful.Order{ID: 777}, nil).Once()
				provider.EXPECT().Sandbox().Return(true)
			},
			wantStatus:     entities.FulfillmentPending,
			wantExternalID: "777",
			wantEligible:   1,
		},
		{
			name:  "manual items are skipped",
			order: []orderOption{withItem("hoodie", 1, "45.00"), withItem("poster", 1, "15.00")},
			mockBehavior: func(provider *mocks.MockProvider) {
				provider.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req printful.OrderRequest) bool {
					return len(req.Items) == 1 && req.Items[0].ExternalVariantID == "ext-hoodie"
				})).Return(printful.Order{ID: 1}, nil).Once()
				provider.EXPECT().Sandbox().Return(true)
			},
			wantStatus:     entities.FulfillmentPending,
			wantExternalID: "1",
			wantEligible:   1,
			wantSkipped:    1,
		},
		{
			name:  "confirmation failure leaves order pending",
			order: []orderOption{withItem("hoodie", 1, "45.00")},
			mockBehavior: func(provider *mocks.MockProvider) {
				provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(printful.Order{ID: 42}, nil).Once()
				provider.EXPECT().Sandbox().Return(false)
				provider.EXPECT().ConfirmOrder(mock.Anything, "42").
					Return(printful.Order{}, &printful.APIError{Operation: "confirm_order", StatusCode: http.StatusBadGateway, Message: "upstream"}).Once()
			},
			wantStatus:     entities.FulfillmentPending,
			wantExternalID: "42",
			wantWarning:    entities.ErrConfirmationFailed,
			wantEligible:   1,
		},
		{
			name:         "manual-only order",
			order:        []orderOption{withItem("poster", 1, "15.00")},
			mockBehavior: func(_ *mocks.MockProvider) {},
			wantErr:      entities.ErrNoEligibleItems,
			wantStatus:   entities.FulfillmentUnfulfilled,
		},
		{
			name: "missing city",
			order: []orderOption{
				withItem("hoodie", 1, "45.00"),
				withAddress(`{"name":"A B","address":"1 Main St","zipCode":"62701"}`),
			},
			mockBehavior: func(_ *mocks.MockProvider) {},
			wantErr:      entities.ErrInvalidShippingAddress,
			wantStatus:   entities.FulfillmentUnfulfilled,
		},
		{
			name: "malformed address",
			order: []orderOption{
				withItem("hoodie", 1, "45.00"),
				withAddress(`not json`),
			},
			mockBehavior: func(_ *mocks.MockProvider) {},
			wantErr:      entities.ErrInvalidShippingAddress,
			wantStatus:   entities.FulfillmentUnfulfilled,
		},
		{
			name:  "provider rejects order",
			order: []orderOption{withItem("hoodie", 1, "45.00")},
			mockBehavior: func(provider *mocks.MockProvider) {
				provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(printful.Order{}, providerErr).Once()
			},
			wantErr:    entities.ErrProviderSubmissionFailed,
			wantStatus: entities.FulfillmentUnfulfilled,
		},
		{
			name: "already pending",
			order: []orderOption{
				withItem("hoodie", 1, "45.00"),
				withStatus(entities.PaymentPaid, entities.FulfillmentPending, "9"),
			},
			mockBehavior:   func(_ *mocks.MockProvider) {},
			wantErr:        entities.ErrAlreadyInProgress,
			wantStatus:     entities.FulfillmentPending,
			wantExternalID: "9",
		},
		{
			name: "already fulfilled",
			order: []orderOption{
				withItem("hoodie", 1, "45.00"),
				withStatus(entities.PaymentPaid, entities.FulfillmentFulfilled, "9"),
			},
			mockBehavior:   func(_ *mocks.MockProvider) {},
			wantErr:        entities.ErrAlreadyInProgress,
			wantStatus:     entities.FulfillmentFulfilled,
			wantExternalID: "9",
		},
		{
			name: "cancelled payment",
			order: []orderOption{
				withItem("hoodie", 1, "45.00"),
				withStatus(entities.PaymentCancelled, entities.FulfillmentUnfulfilled, ""),
			},
			mockBehavior: func(_ *mocks.MockProvider) {},
			wantErr:      entities.ErrOrderCancelled,
			wantStatus:   entities.FulfillmentUnfulfilled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStore(t)
			seedOrder(t, store, "order-1", tc.order...)

			provider := mocks.NewMockProvider(t)
			tc.mockBehavior(provider)

			svc := newFulfillment(store, provider, mocks.NewMockCache(t))
			res, err := svc.Fulfill(context.Background(), "order-1")

			got, getErr := store.GetOrderWithItems(context.Background(), "order-1")
			require.NoError(t, getErr)
			assert.Equal(t, tc.wantStatus, got.FulfillmentStatus)
			assert.Equal(t, tc.wantExternalID, got.ExternalFulfillmentID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.wantExternalID, res.ProviderOrderID)
			assert.Equal(t, tc.wantStatus, res.Order.FulfillmentStatus)
			assert.Equal(t, tc.wantConfirmed, res.Confirmed)
			assert.Equal(t, tc.wantEligible, res.EligibleItemCount)
			assert.Equal(t, tc.wantSkipped, res.SkippedItemCount)
			if tc.wantWarning != nil {
				assert.ErrorIs(t, res.Warning, tc.wantWarning)
			} else {
				assert.NoError(t, res.Warning)
			}
		})
	}
}

func TestFulfillmentService_Fulfill_Request(t *testing.T) {
	store := newStore(t)
	seedOrder(t, store, "order-1", withItem("hoodie", 2, "45"))

	var captured printful.OrderRequest
	provider := mocks.NewMockProvider(t)
	provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req printful.OrderRequest) (printful.Order, error) {
			captured = req
			return printful.Order{ID: 10}, nil
		}).Once()
	provider.EXPECT().Sandbox().Return(true)

	_, err := newFulfillment(store, provider, mocks.NewMockCache(t)).Fulfill(context.Background(), "order-1")
	require.NoError(t, err)

	assert.Equal(t, "order-1", captured.ExternalID)
	assert.Equal(t, "STANDARD", captured.Shipping)
	assert.Equal(t, printful.Recipient{
		Name:        "A B",
		Address1:    "1 Main St",
		City:        "Springfield",
		StateCode:   "IL",
		CountryCode: "US",
		Zip:         "62701",
	}, captured.Recipient)
	assert.Equal(t, []printful.OrderItem{
		{ExternalVariantID: "ext-hoodie", Quantity: 2, RetailPrice: "45.00"},
	}, captured.Items)
}

func TestFulfillmentService_Fulfill_Fallbacks(t *testing.T) {
	store := newStore(t)
	seedOrder(t, store, "order-1",
		withItem("mug", 3, "12.5"),
		withAddress(`{"name":"C D","address":"2 High St","city":"Leeds","zipCode":"LS1"}`),
	)

	provider := mocks.NewMockProvider(t)
	provider.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req printful.OrderRequest) bool {
		return req.Recipient.CountryCode == "US" &&
			len(req.Items) == 1 &&
			req.Items[0].ExternalVariantID == "mug" &&
			req.Items[0].RetailPrice == "12.50"
	})).Return(printful.Order{ID: 11}, nil).Once()
	provider.EXPECT().Sandbox().Return(true)

	res, err := newFulfillment(store, provider, mocks.NewMockCache(t)).Fulfill(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "11", res.ProviderOrderID)
}

func TestFulfillmentService_Fulfill_NotFound(t *testing.T) {
	svc := newFulfillment(newStore(t), mocks.NewMockProvider(t), mocks.NewMockCache(t))

	_, err := svc.Fulfill(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestFulfillmentService_Fulfill_ProviderDetail(t *testing.T) {
	store := newStore(t)
	seedOrder(t, store, "order-1", withItem("hoodie", 1, "45.00"))

	provider := mocks.NewMockProvider(t)
	provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(printful.Order{}, &printful.APIError{Operation: "create_order", StatusCode: http.StatusBadRequest, Message: "Invalid zip"}).Once()

	_, err := newFulfillment(store, provider, mocks.NewMockCache(t)).Fulfill(context.Background(), "order-1")
	require.ErrorIs(t, err, entities.ErrProviderSubmissionFailed)

	var apiErr *printful.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid zip", apiErr.Message)
}

func TestFulfillmentService_Fulfill_CancelledBeforeSubmit(t *testing.T) {
	store := newStore(t)
	seedOrder(t, store, "order-1", withItem("hoodie", 1, "45.00"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFulfillment(store, mocks.NewMockProvider(t), mocks.NewMockCache(t)).Fulfill(ctx, "order-1")
	assert.ErrorIs(t, err, context.Canceled)

	got, err := store.GetOrderWithItems(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, entities.FulfillmentUnfulfilled, got.FulfillmentStatus)
}

func TestFulfillmentService_Fulfill_Concurrent(t *testing.T) {
	store := newStore(t)
	seedOrder(t, store, "order-1", withItem("hoodie", 1, "45.00"))

	var creates atomic.Int32
	provider := mocks.NewMockProvider(t)
	provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, printful.OrderRequest) (printful.Order, error) {
			creates.Add(1)
			time.Sleep(20 * time.Millisecond)
			return printful.Order{ID: 99}, nil
		}).Once()
	provider.EXPECT().Sandbox().Return(true).Once()

	svc := newFulfillment(store, provider, mocks.NewMockCache(t))

	const callers = 8
	var (
		wg         sync.WaitGroup
		succeeded  atomic.Int32
		inProgress atomic.Int32
	)
	for range callers {
		wg.Go(func() {
			_, err := svc.Fulfill(context.Background(), "order-1")
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, entities.ErrAlreadyInProgress):
				inProgress.Add(1)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), creates.Load())
	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(callers-1), inProgress.Load())

	got, err := store.GetOrderWithItems(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, entities.FulfillmentPending, got.FulfillmentStatus)
	assert.Equal(t, "99", got.ExternalFulfillmentID)
}

func TestFulfillmentService_Fulfill_ReplicasShareStoreLock(t *testing.T) {
	store := repo.NewMemoryRepo()
	seedProducts(t, store)
	seedOrder(t, store, "order-1", withItem("hoodie", 1, "45.00"))

	var creates atomic.Int32
	provider := mocks.NewMockProvider(t)
	provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, printful.OrderRequest) (printful.Order, error) {
			creates.Add(1)
			time.Sleep(20 * time.Millisecond)
			return printful.Order{ID: 102}, nil
		}).Once()
	provider.EXPECT().Sandbox().Return(true).Once()

	// две реплики со своими сервисами, блокировка берётся из общего хранилища
	replicas := []service.Fulfiller{
		service.NewFulfillmentService(discardLogger(), testFulfillmentCfg, testPrintfulCfg, store, provider, store, mocks.NewMockCache(t)),
		service.NewFulfillmentService(discardLogger(), testFulfillmentCfg, testPrintfulCfg, store, provider, store, mocks.NewMockCache(t)),
	}

	const callersPerReplica = 4
	var (
		wg         sync.WaitGroup
		succeeded  atomic.Int32
		inProgress atomic.Int32
		other      atomic.Int32
	)
	for _, svc := range replicas {
		for range callersPerReplica {
			wg.Go(func() {
				_, err := svc.Fulfill(context.Background(), "order-1")
				switch {
				case err == nil:
					succeeded.Add(1)
				case errors.Is(err, entities.ErrAlreadyInProgress):
					inProgress.Add(1)
				default:
					other.Add(1)
				}
			})
		}
	}
	wg.Wait()

	assert.Equal(t, int32(1), creates.Load())
	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(2*callersPerReplica-1), inProgress.Load())
	assert.Zero(t, other.Load(), "no caller may see a state write failure")

	got, err := store.GetOrderWithItems(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, entities.FulfillmentPending, got.FulfillmentStatus)
	assert.Equal(t, "102", got.ExternalFulfillmentID)
}

// flakyStore отказывает в записи статуса, чтение работает.
type flakyStore struct {
	orderStore
	casErr error
}

func (s *flakyStore) CompareAndSetFulfillment(context.Context, string, entities.FulfillmentStatus, entities.FulfillmentStatus, string) (bool, error) {
	return false, s.casErr
}

func TestFulfillmentService_Fulfill_StateWriteFailed(t *testing.T) {
	store := newStore(t)
	seedOrder(t, store, "order-1", withItem("hoodie", 1, "45.00"))
	flaky := &flakyStore{orderStore: store, casErr: errors.New("connection reset")}

	provider := mocks.NewMockProvider(t)
	provider.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(printful.Order{ID: 31}, nil).Once()

	res, err := newFulfillment(flaky, provider, mocks.NewMockCache(t)).Fulfill(context.Background(), "order-1")
	require.ErrorIs(t, err, entities.ErrStateWriteFailed)
	assert.ErrorContains(t, err, "31")
	assert.Equal(t, "31", res.ProviderOrderID)
}

func TestFulfillmentService_ConfirmOrder(t *testing.T) {
	t.Run("pending order is confirmed", func(t *testing.T) {
		store := newStore(t)
		seedOrder(t, store, "order-1",
			withItem("hoodie", 1, "45.00"),
			withStatus(entities.PaymentPaid, entities.FulfillmentPending, "42"),
		)

		provider := mocks.NewMockProvider(t)
		provider.EXPECT().ConfirmOrder(mock.Anything, "42").Return(printful.Order{ID: 42, Status: "pending"}, nil).Once()

		cache := mocks.NewMockCache(t)
		cache.EXPECT().Delete("provider-order:42").Return().Once()

		svc := service.NewFulfillmentService(discardLogger(), testFulfillmentCfg, testPrintfulCfg, store, provider, lock.NewLocal(), cache)
		order, err := svc.ConfirmOrder(context.Background(), "order-1")
		require.NoError(t, err)
		assert.Equal(t, entities.FulfillmentFulfilled, order.FulfillmentStatus)

		got, err := store.GetOrderWithItems(context.Background(), "order-1")
		require.NoError(t, err)
		assert.Equal(t, entities.FulfillmentFulfilled, got.FulfillmentStatus)
		assert.Equal(t, "42", got.ExternalFulfillmentID)
	})

	t.Run("provider failure keeps pending", func(t *testing.T) {
		store := newStore(t)
		seedOrder(t, store, "order-1",
			withItem("hoodie", 1, "45.00"),
			withStatus(entities.PaymentPaid, entities.FulfillmentPending, "42"),
		)

		provider := mocks.NewMockProvider(t)
		provider.EXPECT().ConfirmOrder(mock.Anything, "42").Return(printful.Order{}, errors.New("timeout")).Once()

		svc := service.NewFulfillmentService(discardLogger(), testFulfillmentCfg, testPrintfulCfg, store, provider, lock.NewLocal(), mocks.NewMockCache(t))
		_, err := svc.ConfirmOrder(context.Background(), "order-1")
		require.ErrorIs(t, err, entities.ErrConfirmationFailed)

		got, err := store.GetOrderWithItems(context.Background(), "order-1")
		require.NoError(t, err)
		assert.Equal(t, entities.FulfillmentPending, got.FulfillmentStatus)
	})

	t.Run("unfulfilled order", func(t *testing.T) {
		store := newStore(t)
		seedOrder(t, store, "order-1", withItem("hoodie", 1, "45.00"))

		svc := service.NewFulfillmentService(discardLogger(), testFulfillmentCfg, testPrintfulCfg, store, mocks.NewMockProvider(t), lock.NewLocal(), mocks.NewMockCache(t))
		_, err := svc.ConfirmOrder(context.Background(), "order-1")
		assert.ErrorIs(t, err, entities.ErrOrderNotPending)
	})
}

func TestFulfillmentService_ProviderStatus(t *testing.T) {
	providerOrder := printful.Order{
		ID:         42,
		ExternalID: "order-1",
		Status:     "fulfilled",
		Shipments:  []printful.Shipment{{Carrier: "USPS", TrackingNumber: "9400"}},
	}
	cached := providerOrder.ToEntity()
	cachedData, err := cached.Marshal()
	require.NoError(t, err)

	type MockBehavior func(provider *mocks.MockProvider, cache *mocks.MockCache)

	testCases := []struct {
		name         string
		order        []orderOption
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "from provider and set to cache",
			order: []orderOption{withStatus(entities.PaymentPaid, entities.FulfillmentFulfilled, "42")},
			mockBehavior: func(provider *mocks.MockProvider, cache *mocks.MockCache) {
				cache.EXPECT().Get("provider-order:42").Return(nil, false).Once()
				provider.EXPECT().GetOrder(mock.Anything, "42").Return(providerOrder, nil).Once()
				cache.EXPECT().Set("provider-order:42", cachedData).Return().Once()
			},
		},
		{
			name:  "from cache",
			order: []orderOption{withStatus(entities.PaymentPaid, entities.FulfillmentFulfilled, "42")},
			mockBehavior: func(_ *mocks.MockProvider, cache *mocks.MockCache) {
				cache.EXPECT().Get("provider-order:42").Return(cachedData, true).Once()
			},
		},
		{
			name:         "not submitted",
			mockBehavior: func(_ *mocks.MockProvider, _ *mocks.MockCache) {},
			wantErr:      entities.ErrNotSubmitted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStore(t)
			seedOrder(t, store, "order-1", append([]orderOption{withItem("hoodie", 1, "45.00")}, tc.order...)...)

			provider := mocks.NewMockProvider(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(provider, cache)

			svc := service.NewFulfillmentService(discardLogger(), testFulfillmentCfg, testPrintfulCfg, store, provider, lock.NewLocal(), cache)
			got, err := svc.ProviderStatus(context.Background(), "order-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cached, got)
		})
	}
}
