package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID                    string          `db:"id"`
	UserID                sql.NullString  `db:"user_id"`
	PaymentStatus         string          `db:"payment_status"`
	FulfillmentStatus     string          `db:"fulfillment_status"`
	ExternalFulfillmentID sql.NullString  `db:"external_fulfillment_id"`
	TotalAmount           decimal.Decimal `db:"total_amount"`
	PaymentIntentID       sql.NullString  `db:"payment_intent_id"`
	ShippingAddress       string          `db:"shipping_address"`
	BillingAddress        sql.NullString  `db:"billing_address"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

// Item - строка order_items вместе с товаром и вариантом.
type Item struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	VariantID sql.NullString  `db:"variant_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`

	ProductName            string         `db:"product_name"`
	ProductSlug            string         `db:"product_slug"`
	ProductImages          string         `db:"product_images"`
	ProductStatus          string         `db:"product_status"`
	ProductFulfillmentType string         `db:"product_fulfillment_type"`
	ProductPrintfulID      sql.NullString `db:"product_printful_id"`
	ProductPrintfulExtID   sql.NullString `db:"product_printful_ext_id"`

	VariantSize  sql.NullString `db:"variant_size"`
	VariantColor sql.NullString `db:"variant_color"`
	VariantSKU   sql.NullString `db:"variant_sku"`
}

type Product struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Slug            string          `db:"slug"`
	Description     sql.NullString  `db:"description"`
	Price           decimal.Decimal `db:"price"`
	Images          string          `db:"images"`
	MockupImages    string          `db:"mockup_images"`
	Tags            string          `db:"tags"`
	Status          string          `db:"status"`
	FulfillmentType string          `db:"fulfillment_type"`
	InventoryQty    int             `db:"inventory_qty"`
	PrintfulID      sql.NullString  `db:"printful_id"`
	PrintfulExtID   sql.NullString  `db:"printful_ext_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func ItemToEntity(i Item) entities.OrderItem {
	item := entities.OrderItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		VariantID: nullStringToString(i.VariantID),
		Quantity:  i.Quantity,
		Price:     i.Price,
		Product: entities.Product{
			ID:                   i.ProductID,
			Name:                 i.ProductName,
			Slug:                 i.ProductSlug,
			Images:               decodeList(i.ProductImages),
			Status:               entities.ProductStatus(i.ProductStatus),
			FulfillmentType:      entities.FulfillmentType(i.ProductFulfillmentType),
			ExternalCatalogID:    nullStringToString(i.ProductPrintfulID),
			ExternalCatalogExtID: nullStringToString(i.ProductPrintfulExtID),
		},
	}

	if i.VariantID.Valid {
		item.Variant = &entities.Variant{
			ID:        i.VariantID.String,
			ProductID: i.ProductID,
			Size:      nullStringToString(i.VariantSize),
			Color:     nullStringToString(i.VariantColor),
			SKU:       nullStringToString(i.VariantSKU),
		}
	}
	return item
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:                    o.ID,
		UserID:                nullStringToString(o.UserID),
		PaymentStatus:         entities.PaymentStatus(o.PaymentStatus),
		FulfillmentStatus:     entities.FulfillmentStatus(o.FulfillmentStatus),
		ExternalFulfillmentID: nullStringToString(o.ExternalFulfillmentID),
		TotalAmount:           o.TotalAmount,
		PaymentIntentID:       nullStringToString(o.PaymentIntentID),
		ShippingAddress:       o.ShippingAddress,
		BillingAddress:        nullStringToString(o.BillingAddress),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:                   p.ID,
		Name:                 p.Name,
		Slug:                 p.Slug,
		Description:          nullStringToString(p.Description),
		Price:                p.Price,
		Images:               decodeList(p.Images),
		MockupImages:         decodeList(p.MockupImages),
		Tags:                 decodeList(p.Tags),
		Status:               entities.ProductStatus(p.Status),
		FulfillmentType:      entities.FulfillmentType(p.FulfillmentType),
		InventoryQty:         p.InventoryQty,
		ExternalCatalogID:    nullStringToString(p.PrintfulID),
		ExternalCatalogExtID: nullStringToString(p.PrintfulExtID),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// списки картинок и тегов хранятся JSON-массивом в текстовой колонке
func encodeList(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeList(raw string) []string {
	var list []string
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
