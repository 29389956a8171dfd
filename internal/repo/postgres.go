package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var (
	orderColumns = []string{
		"id", "user_id", "payment_status", "fulfillment_status", "external_fulfillment_id",
		"total_amount", "payment_intent_id", "shipping_address", "billing_address",
		"created_at", "updated_at",
	}

	itemColumns = []string{
		"i.id", "i.order_id", "i.product_id", "i.variant_id", "i.quantity", "i.price",
		"p.name AS product_name", "p.slug AS product_slug", "p.images AS product_images",
		"p.status AS product_status", "p.fulfillment_type AS product_fulfillment_type",
		"p.printful_id AS product_printful_id", "p.printful_ext_id AS product_printful_ext_id",
		"v.size AS variant_size", "v.color AS variant_color", "v.sku AS variant_sku",
	}

	productColumns = []string{
		"id", "name", "slug", "description", "price", "images", "mockup_images", "tags",
		"status", "fulfillment_type", "inventory_qty", "printful_id", "printful_ext_id",
		"created_at", "updated_at",
	}
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderWithItems(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.selectItems(ctx, []string{id})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := r.selectItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) selectItems(ctx context.Context, orderIDs []string) ([]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items i").
		Join("products p ON p.id = i.product_id").
		LeftJoin("product_variants v ON v.id = i.variant_id").
		Where(sq.Eq{"i.order_id": orderIDs}).
		OrderBy("i.order_id", "i.position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return items, nil
}

// CompareAndSetFulfillment меняет статус только если текущий равен expected.
// externalID записывается один раз: уже записанный id другим значением не перезаписывается.
func (r *postgresRepo) CompareAndSetFulfillment(ctx context.Context, id string, expected, next entities.FulfillmentStatus, externalID string) (bool, error) {
	q := r.qb.Update("orders").
		Set("fulfillment_status", string(next)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id, "fulfillment_status": string(expected)})

	if externalID != "" {
		q = q.Set("external_fulfillment_id", externalID).
			Where(sq.Or{
				sq.Eq{"external_fulfillment_id": nil},
				sq.Eq{"external_fulfillment_id": externalID},
			})
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update fulfillment status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected == 1, nil
}

func (r *postgresRepo) SetPaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) error {
	query, args := r.qb.Update("orders").
		Set("payment_status", string(status)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "user_id", "payment_status", "fulfillment_status", "total_amount",
			"payment_intent_id", "shipping_address", "billing_address", "created_at", "updated_at",
		).
		Values(
			o.ID, nullString(o.UserID), string(o.PaymentStatus), string(o.FulfillmentStatus), o.TotalAmount,
			nullString(o.PaymentIntentID), o.ShippingAddress, nullString(o.BillingAddress), o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("id", "order_id", "product_id", "variant_id", "position", "quantity", "price")
	for i, it := range o.Items {
		q = q.Values(it.ID, o.ID, it.ProductID, nullString(it.VariantID), i, it.Quantity, it.Price)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetProductByExtID(ctx context.Context, extID string) (entities.Product, error) {
	return r.getProduct(ctx, sq.Eq{"printful_ext_id": extID})
}

func (r *postgresRepo) GetProductByID(ctx context.Context, id string) (entities.Product, error) {
	return r.getProduct(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) getProduct(ctx context.Context, where sq.Eq) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(where).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS(").
		From("products").
		Where(sq.Eq{"slug": slug}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns(
			"id", "name", "slug", "description", "price", "images", "mockup_images", "tags",
			"status", "fulfillment_type", "inventory_qty", "printful_id", "printful_ext_id",
			"created_at", "updated_at",
		).
		Values(
			p.ID, p.Name, p.Slug, nullString(p.Description), p.Price,
			encodeList(p.Images), encodeList(p.MockupImages), encodeList(p.Tags),
			string(p.Status), string(p.FulfillmentType), p.InventoryQty,
			nullString(p.ExternalCatalogID), nullString(p.ExternalCatalogExtID),
			p.CreatedAt, p.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// UpdateProductFromCatalog обновляет только поля, которые приходят из Printful. Цена не трогается.
func (r *postgresRepo) UpdateProductFromCatalog(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		Set("name", p.Name).
		Set("images", encodeList(p.Images)).
		Set("mockup_images", encodeList(p.MockupImages)).
		Set("printful_id", nullString(p.ExternalCatalogID)).
		Set("fulfillment_type", string(p.FulfillmentType)).
		Set("status", string(p.Status)).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) ListProductsByFulfillment(ctx context.Context, t entities.FulfillmentType) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"fulfillment_type": string(t)}).
		OrderBy("updated_at DESC").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) ProductStats(ctx context.Context) (entities.ProductStats, error) {
	query, args := r.qb.Select(
		"COUNT(*) AS total",
		"COUNT(*) FILTER (WHERE fulfillment_type = 'printful') AS printful",
		"COUNT(*) FILTER (WHERE fulfillment_type = 'manual') AS manual",
		"MAX(updated_at) FILTER (WHERE fulfillment_type = 'printful') AS last_synced_at",
	).From("products").MustSql()

	var row struct {
		Total        int          `db:"total"`
		Printful     int          `db:"printful"`
		Manual       int          `db:"manual"`
		LastSyncedAt sql.NullTime `db:"last_synced_at"`
	}
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.ProductStats{}, fmt.Errorf("failed to get product stats: %w", err)
	}

	stats := entities.ProductStats{
		Total:    row.Total,
		Printful: row.Printful,
		Manual:   row.Manual,
	}
	if row.LastSyncedAt.Valid {
		stats.LastSyncedAt = row.LastSyncedAt.Time
	}
	return stats, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.QuerierFrom(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.QuerierFrom(ctx, r.db).SelectContext(ctx, dest, query, args...)
}
