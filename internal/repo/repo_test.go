package repo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/repo"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/trm"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type store interface {
	GetOrderWithItems(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	CompareAndSetFulfillment(ctx context.Context, id string, expected, next entities.FulfillmentStatus, externalID string) (bool, error)
	SetPaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) error
	CreateOrder(ctx context.Context, o entities.Order) error

	GetProductByExtID(ctx context.Context, extID string) (entities.Product, error)
	GetProductByID(ctx context.Context, id string) (entities.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateProduct(ctx context.Context, p entities.Product) error
	UpdateProductFromCatalog(ctx context.Context, p entities.Product) error
	ListProductsByFulfillment(ctx context.Context, t entities.FulfillmentType) ([]entities.Product, error)
	ProductStats(ctx context.Context) (entities.ProductStats, error)
}

func TestMemoryRepo(t *testing.T) {
	runStoreTests(t, func(t *testing.T) store { return repo.NewMemoryRepo() })
}

// TEST_POSTGRES_DSN указывает на пустую БД: схема пересоздаётся перед каждым тестом.
func TestPostgresRepo(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	up, err := os.ReadFile("../../migrations/000001_init.up.sql")
	require.NoError(t, err)
	down, err := os.ReadFile("../../migrations/000001_init.down.sql")
	require.NoError(t, err)

	runStoreTests(t, func(t *testing.T) store {
		db.MustExec(string(down))
		db.MustExec(string(up))
		return repo.NewPostgresRepo(db)
	})

	t.Run("create order in rolled back transaction", func(t *testing.T) {
		db.MustExec(string(down))
		db.MustExec(string(up))
		s := repo.NewPostgresRepo(db)
		seedProducts(t, s)

		manager := trm.NewManager(db)
		err := manager.Do(context.Background(), func(ctx context.Context) error {
			require.NoError(t, s.CreateOrder(ctx, newOrder("order-1", time.Now())))
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		_, err = s.GetOrderWithItems(context.Background(), "order-1")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func seedProducts(t *testing.T, s store) {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	for _, p := range []entities.Product{
		{
			ID: "hoodie", Name: "Hoodie", Slug: "hoodie", Price: decimal.RequireFromString("45.00"),
			Images: []string{"https://img/hoodie.png"}, Status: entities.ProductActive,
			FulfillmentType: entities.FulfillmentPrintful, InventoryQty: 999,
			ExternalCatalogID: "1", ExternalCatalogExtID: "ext-hoodie", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "poster", Name: "Poster", Slug: "poster", Price: decimal.RequireFromString("15.00"),
			Status: entities.ProductActive, FulfillmentType: entities.FulfillmentManual, InventoryQty: 10,
			CreatedAt: now, UpdatedAt: now,
		},
	} {
		require.NoError(t, s.CreateProduct(context.Background(), p))
	}
}

func newOrder(id string, createdAt time.Time) entities.Order {
	return entities.Order{
		ID:                id,
		PaymentStatus:     entities.PaymentPaid,
		FulfillmentStatus: entities.FulfillmentUnfulfilled,
		TotalAmount:       decimal.RequireFromString("105.00"),
		ShippingAddress:   `{"name":"A B","address":"1 Main St","city":"Springfield","zipCode":"62701"}`,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
		Items: []entities.OrderItem{
			{ID: id + "-1", ProductID: "hoodie", Quantity: 2, Price: decimal.RequireFromString("45.00")},
			{ID: id + "-2", ProductID: "poster", Quantity: 1, Price: decimal.RequireFromString("15.00")},
		},
	}
}

func runStoreTests(t *testing.T, newStore func(t *testing.T) store) {
	ctx := context.Background()

	t.Run("order with items", func(t *testing.T) {
		s := newStore(t)
		seedProducts(t, s)
		require.NoError(t, s.CreateOrder(ctx, newOrder("order-1", time.Now())))

		got, err := s.GetOrderWithItems(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, entities.FulfillmentUnfulfilled, got.FulfillmentStatus)
		assert.Empty(t, got.ExternalFulfillmentID)
		assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("105")))

		require.Len(t, got.Items, 2)
		assert.Equal(t, "hoodie", got.Items[0].ProductID)
		assert.Equal(t, "Hoodie", got.Items[0].Product.Name)
		assert.Equal(t, entities.FulfillmentPrintful, got.Items[0].Product.FulfillmentType)
		assert.Equal(t, "ext-hoodie", got.Items[0].Product.ExternalCatalogExtID)
		assert.Equal(t, entities.FulfillmentManual, got.Items[1].Product.FulfillmentType)
		assert.Nil(t, got.Items[1].Variant)
	})

	t.Run("order not found", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetOrderWithItems(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		assert.ErrorIs(t, s.SetPaymentStatus(ctx, "missing", entities.PaymentPaid), entities.ErrOrderNotFound)

		ok, err := s.CompareAndSetFulfillment(ctx, "missing", entities.FulfillmentUnfulfilled, entities.FulfillmentPending, "42")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("compare and set fulfillment", func(t *testing.T) {
		s := newStore(t)
		seedProducts(t, s)
		require.NoError(t, s.CreateOrder(ctx, newOrder("order-1", time.Now())))

		ok, err := s.CompareAndSetFulfillment(ctx, "order-1", entities.FulfillmentUnfulfilled, entities.FulfillmentPending, "42")
		require.NoError(t, err)
		assert.True(t, ok)

		// второй отправитель проигрывает
		ok, err = s.CompareAndSetFulfillment(ctx, "order-1", entities.FulfillmentUnfulfilled, entities.FulfillmentPending, "43")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.CompareAndSetFulfillment(ctx, "order-1", entities.FulfillmentPending, entities.FulfillmentFulfilled, "43")
		require.NoError(t, err)
		assert.False(t, ok, "external id must not be replaced")

		ok, err = s.CompareAndSetFulfillment(ctx, "order-1", entities.FulfillmentPending, entities.FulfillmentFulfilled, "42")
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := s.GetOrderWithItems(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, entities.FulfillmentFulfilled, got.FulfillmentStatus)
		assert.Equal(t, "42", got.ExternalFulfillmentID)
	})

	t.Run("payment status", func(t *testing.T) {
		s := newStore(t)
		seedProducts(t, s)
		require.NoError(t, s.CreateOrder(ctx, newOrder("order-1", time.Now())))

		require.NoError(t, s.SetPaymentStatus(ctx, "order-1", entities.PaymentCancelled))

		got, err := s.GetOrderWithItems(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentCancelled, got.PaymentStatus)
	})

	t.Run("list orders newest first", func(t *testing.T) {
		s := newStore(t)
		seedProducts(t, s)
		base := time.Now().UTC().Truncate(time.Second)
		for i, id := range []string{"old", "mid", "new"} {
			require.NoError(t, s.CreateOrder(ctx, newOrder(id, base.Add(time.Duration(i)*time.Minute))))
		}

		orders, err := s.ListOrders(ctx, 2, 0)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "new", orders[0].ID)
		assert.Equal(t, "mid", orders[1].ID)
		assert.Len(t, orders[0].Items, 2)

		orders, err = s.ListOrders(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "old", orders[0].ID)

		orders, err = s.ListOrders(ctx, 2, 10)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("products", func(t *testing.T) {
		s := newStore(t)
		seedProducts(t, s)

		hoodie, err := s.GetProductByExtID(ctx, "ext-hoodie")
		require.NoError(t, err)
		assert.Equal(t, "hoodie", hoodie.ID)
		assert.Equal(t, []string{"https://img/hoodie.png"}, hoodie.Images)

		_, err = s.GetProductByExtID(ctx, "ext-missing")
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
		_, err = s.GetProductByID(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrProductNotFound)

		exists, err := s.SlugExists(ctx, "hoodie")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = s.SlugExists(ctx, "hoodie-1")
		require.NoError(t, err)
		assert.False(t, exists)

		assert.Error(t, s.CreateProduct(ctx, entities.Product{
			ID: "dup", Name: "Dup", Slug: "hoodie", Status: entities.ProductActive, FulfillmentType: entities.FulfillmentManual,
		}))
	})

	t.Run("update from catalog keeps price", func(t *testing.T) {
		s := newStore(t)
		seedProducts(t, s)

		hoodie, err := s.GetProductByID(ctx, "hoodie")
		require.NoError(t, err)

		synced := time.Now().UTC().Add(time.Hour).Truncate(time.Millisecond)
		hoodie.Name = "Tour Hoodie"
		hoodie.Price = decimal.RequireFromString("99.00")
		hoodie.MockupImages = []string{"https://img/mockup.png"}
		hoodie.Status = entities.ProductArchived
		hoodie.UpdatedAt = synced
		require.NoError(t, s.UpdateProductFromCatalog(ctx, hoodie))

		got, err := s.GetProductByID(ctx, "hoodie")
		require.NoError(t, err)
		assert.Equal(t, "Tour Hoodie", got.Name)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("45.00")))
		assert.Equal(t, []string{"https://img/mockup.png"}, got.MockupImages)
		assert.Equal(t, entities.ProductArchived, got.Status)

		stats, err := s.ProductStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Total)
		assert.Equal(t, 1, stats.Printful)
		assert.Equal(t, 1, stats.Manual)
		assert.True(t, synced.Equal(stats.LastSyncedAt))

		printful, err := s.ListProductsByFulfillment(ctx, entities.FulfillmentPrintful)
		require.NoError(t, err)
		require.Len(t, printful, 1)
		assert.Equal(t, "hoodie", printful[0].ID)
	})

	t.Run("empty stats", func(t *testing.T) {
		s := newStore(t)

		stats, err := s.ProductStats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
		assert.True(t, stats.LastSyncedAt.IsZero())
	})
}

func TestMemoryRepo_CreateOrderUnknownProduct(t *testing.T) {
	s := repo.NewMemoryRepo()
	err := s.CreateOrder(context.Background(), newOrder("order-1", time.Now()))
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	s := repo.NewMemoryRepo()
	seedProducts(t, s)
	require.NoError(t, s.CreateOrder(context.Background(), newOrder("order-1", time.Now())))

	got, err := s.GetOrderWithItems(context.Background(), "order-1")
	require.NoError(t, err)
	got.Items[0].Quantity = 100
	got.Items[0].Product.Images[0] = "changed"

	again, err := s.GetOrderWithItems(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
	assert.Equal(t, "https://img/hoodie.png", again.Items[0].Product.Images[0])
}
