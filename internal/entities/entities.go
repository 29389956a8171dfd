package entities

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// FulfillmentStatus меняется только вперёд: unfulfilled -> pending -> fulfilled.
type FulfillmentStatus string

const (
	FulfillmentUnfulfilled FulfillmentStatus = "unfulfilled"
	FulfillmentPending     FulfillmentStatus = "pending"
	FulfillmentFulfilled   FulfillmentStatus = "fulfilled"
)

type FulfillmentType string

const (
	FulfillmentManual   FulfillmentType = "manual"
	FulfillmentPrintful FulfillmentType = "printful"
)

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductArchived ProductStatus = "archived"
	ProductDraft    ProductStatus = "draft"
)

type Order struct {
	ID                    string
	UserID                string
	PaymentStatus         PaymentStatus
	FulfillmentStatus     FulfillmentStatus
	ExternalFulfillmentID string
	TotalAmount           decimal.Decimal
	PaymentIntentID       string

	// адреса хранятся в сериализованном виде, как их прислал checkout
	ShippingAddress string
	BillingAddress  string

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItem
}

type OrderItem struct {
	ID        string
	ProductID string
	VariantID string
	Quantity  int
	Price     decimal.Decimal

	Product Product
	Variant *Variant
}

type Product struct {
	ID              string
	Name            string
	Slug            string
	Description     string
	Price           decimal.Decimal
	Images          []string
	MockupImages    []string
	Tags            []string
	Status          ProductStatus
	FulfillmentType FulfillmentType
	InventoryQty    int

	ExternalCatalogID    string
	ExternalCatalogExtID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductStats struct {
	Total        int
	Printful     int
	Manual       int
	LastSyncedAt time.Time
}

type Variant struct {
	ID        string
	ProductID string
	Size      string
	Color     string
	SKU       string
}

// IsProviderFulfilled сообщает, отправляется ли товар в Printful.
func (p Product) IsProviderFulfilled() bool {
	return p.FulfillmentType == FulfillmentPrintful
}

type ShippingAddress struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode" validate:"required"`
	Country  string `json:"country,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func ParseShippingAddress(raw string) (ShippingAddress, error) {
	var addr ShippingAddress
	if strings.TrimSpace(raw) == "" {
		return addr, fmt.Errorf("%w: empty address", ErrInvalidShippingAddress)
	}
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		return addr, fmt.Errorf("%w: %w", ErrInvalidShippingAddress, err)
	}

	addr.Name = strings.TrimSpace(addr.Name)
	addr.Address = strings.TrimSpace(addr.Address)
	addr.Address2 = strings.TrimSpace(addr.Address2)
	addr.City = strings.TrimSpace(addr.City)
	addr.State = strings.TrimSpace(addr.State)
	addr.ZipCode = strings.TrimSpace(addr.ZipCode)
	addr.Country = strings.TrimSpace(addr.Country)
	addr.Email = strings.TrimSpace(addr.Email)
	addr.Phone = strings.TrimSpace(addr.Phone)
	return addr, nil
}

func (a ShippingAddress) Marshal() (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ProviderOrder - состояние заказа на стороне Printful, локально не хранится.
type ProviderOrder struct {
	ID         string
	ExternalID string
	Status     string
	Shipping   string
	Created    time.Time
	Updated    time.Time
	Shipments  []Shipment
}

type Shipment struct {
	Carrier        string
	Service        string
	TrackingNumber string
	TrackingURL    string
	ShipDate       string
}

func (o *ProviderOrder) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *ProviderOrder) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(ProviderOrder{})
	gob.Register(Shipment{})
}
