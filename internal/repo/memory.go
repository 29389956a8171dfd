package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/lock"
)

// memoryRepo - хранилище в памяти для STORAGE=memory и тестов.
// Заказы и товары хранятся копиями, наружу тоже отдаются копии.
type memoryRepo struct {
	mu       sync.RWMutex
	orders   map[string]entities.Order
	products map[string]entities.Product

	// блокировки заказов живут рядом с данными: все, кто делит хранилище, делят и их
	locks *lock.Local
}

func NewMemoryRepo() *memoryRepo {
	return &memoryRepo{
		orders:   make(map[string]entities.Order),
		products: make(map[string]entities.Product),
		locks:    lock.NewLocal(),
	}
}

func (r *memoryRepo) TryLock(ctx context.Context, key string, ttl time.Duration) (lock.Unlock, error) {
	return r.locks.TryLock(ctx, key, ttl)
}

func (r *memoryRepo) GetOrderWithItems(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.withProducts(order), nil
}

func (r *memoryRepo) ListOrders(_ context.Context, limit, offset int) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	slices.SortFunc(orders, func(a, b entities.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if offset >= len(orders) {
		return []entities.Order{}, nil
	}
	orders = orders[offset:]
	if limit > 0 && limit < len(orders) {
		orders = orders[:limit]
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, r.withProducts(o))
	}
	return result, nil
}

// withProducts подставляет актуальные товары в позиции заказа, как JOIN в postgres.
func (r *memoryRepo) withProducts(o entities.Order) entities.Order {
	o.Items = slices.Clone(o.Items)
	for i, it := range o.Items {
		if p, ok := r.products[it.ProductID]; ok {
			o.Items[i].Product = cloneProduct(p)
		}
		if it.Variant != nil {
			v := *it.Variant
			o.Items[i].Variant = &v
		}
	}
	return o
}

func (r *memoryRepo) CompareAndSetFulfillment(_ context.Context, id string, expected, next entities.FulfillmentStatus, externalID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.FulfillmentStatus != expected {
		return false, nil
	}
	if externalID != "" {
		if order.ExternalFulfillmentID != "" && order.ExternalFulfillmentID != externalID {
			return false, nil
		}
		order.ExternalFulfillmentID = externalID
	}

	order.FulfillmentStatus = next
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return true, nil
}

func (r *memoryRepo) SetPaymentStatus(_ context.Context, id string, status entities.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	order.PaymentStatus = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

func (r *memoryRepo) CreateOrder(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return fmt.Errorf("%w: order %s already exists", entities.ErrInvalidOrder, o.ID)
	}
	for _, it := range o.Items {
		if _, ok := r.products[it.ProductID]; !ok {
			return fmt.Errorf("%w: product %s", entities.ErrProductNotFound, it.ProductID)
		}
	}

	o.Items = slices.Clone(o.Items)
	r.orders[o.ID] = o
	return nil
}

func (r *memoryRepo) GetProductByExtID(_ context.Context, extID string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ExternalCatalogExtID != "" && p.ExternalCatalogExtID == extID {
			return cloneProduct(p), nil
		}
	}
	return entities.Product{}, entities.ErrProductNotFound
}

func (r *memoryRepo) GetProductByID(_ context.Context, id string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *memoryRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo) CreateProduct(_ context.Context, p entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.Slug == p.Slug {
			return fmt.Errorf("slug %q already exists", p.Slug)
		}
		if p.ExternalCatalogExtID != "" && existing.ExternalCatalogExtID == p.ExternalCatalogExtID {
			return fmt.Errorf("product with printful ext id %q already exists", p.ExternalCatalogExtID)
		}
	}
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *memoryRepo) UpdateProductFromCatalog(_ context.Context, p entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[p.ID]
	if !ok {
		return entities.ErrProductNotFound
	}
	existing.Name = p.Name
	existing.Images = slices.Clone(p.Images)
	existing.MockupImages = slices.Clone(p.MockupImages)
	existing.ExternalCatalogID = p.ExternalCatalogID
	existing.FulfillmentType = p.FulfillmentType
	existing.Status = p.Status
	existing.UpdatedAt = p.UpdatedAt
	r.products[p.ID] = existing
	return nil
}

func (r *memoryRepo) ListProductsByFulfillment(_ context.Context, t entities.FulfillmentType) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Product, 0)
	for _, p := range r.products {
		if p.FulfillmentType == t {
			result = append(result, cloneProduct(p))
		}
	}
	slices.SortFunc(result, func(a, b entities.Product) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return result, nil
}

func (r *memoryRepo) ProductStats(_ context.Context) (entities.ProductStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats entities.ProductStats
	for _, p := range r.products {
		stats.Total++
		switch p.FulfillmentType {
		case entities.FulfillmentPrintful:
			stats.Printful++
			if p.UpdatedAt.After(stats.LastSyncedAt) {
				stats.LastSyncedAt = p.UpdatedAt
			}
		case entities.FulfillmentManual:
			stats.Manual++
		}
	}
	return stats, nil
}

func cloneProduct(p entities.Product) entities.Product {
	p.Images = slices.Clone(p.Images)
	p.MockupImages = slices.Clone(p.MockupImages)
	p.Tags = slices.Clone(p.Tags)
	return p
}
