package handler

import (
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/printful"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/service"
	"github.com/shopspring/decimal"
)

// Address адрес доставки или оплаты
type Address struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode" validate:"required"`
	Country  string `json:"country,omitempty" validate:"omitempty,len=2"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
}

// Order заказ
type Order struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"userId,omitempty"`
	PaymentStatus         string          `json:"paymentStatus"`
	FulfillmentStatus     string          `json:"fulfillmentStatus"`
	ExternalFulfillmentID string          `json:"externalFulfillmentId,omitempty"`
	TotalAmount           decimal.Decimal `json:"totalAmount" swaggertype:"string"`
	PaymentIntentID       string          `json:"paymentIntentId,omitempty"`
	ShippingAddress       *Address        `json:"shippingAddress,omitempty"`
	BillingAddress        *Address        `json:"billingAddress,omitempty"`
	Items                 []OrderItem     `json:"items"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	VariantID string          `json:"variantId,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
	Product   ProductSummary  `json:"product"`
	Variant   *Variant        `json:"variant,omitempty"`
}

// ProductSummary краткая информация о товаре
type ProductSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Status          string `json:"status"`
	FulfillmentType string `json:"fulfillmentType"`
	PrintfulID      string `json:"printfulId,omitempty"`
	PrintfulExtID   string `json:"printfulExtId,omitempty"`
}

type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
	SKU   string `json:"sku,omitempty"`
}

// CreateOrderRequest запрос на создание заказа
type CreateOrderRequest struct {
	UserID          string                   `json:"userId,omitempty"`
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal          `json:"totalAmount" swaggertype:"string"`
	ShippingAddress Address                  `json:"shippingAddress"`
	BillingAddress  *Address                 `json:"billingAddress,omitempty"`
	PaymentIntentID string                   `json:"paymentIntentId,omitempty"`
}

type CreateOrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	VariantID string          `json:"variantId,omitempty"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
}

// FulfillResponse результат отправки заказа в Printful
type FulfillResponse struct {
	Order             Order  `json:"order"`
	ProviderOrderID   string `json:"providerOrderId"`
	EligibleItemCount int    `json:"eligibleItemCount"`
	SkippedItemCount  int    `json:"skippedItemCount"`
	Confirmed         bool   `json:"confirmed"`
	Warning           string `json:"warning,omitempty"`
}

// ProviderOrder состояние заказа в Printful
type ProviderOrder struct {
	ID         string     `json:"id"`
	ExternalID string     `json:"externalId"`
	Status     string     `json:"status"`
	Shipping   string     `json:"shipping,omitempty"`
	Created    *time.Time `json:"created,omitempty"`
	Updated    *time.Time `json:"updated,omitempty"`
	Shipments  []Shipment `json:"shipments"`
}

type Shipment struct {
	Carrier        string `json:"carrier"`
	Service        string `json:"service"`
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl"`
	ShipDate       string `json:"shipDate,omitempty"`
}

// SyncResponse итог синхронизации каталога
type SyncResponse struct {
	Message string       `json:"message"`
	Results []SyncDetail `json:"results"`
	Summary SyncSummary  `json:"summary"`
}

type SyncDetail struct {
	Action     string `json:"action"`
	ExternalID string `json:"externalId"`
	PrintfulID int64  `json:"printfulId"`
	Name       string `json:"name"`
	ProductID  string `json:"productId,omitempty"`
	Slug       string `json:"slug,omitempty"`
	Error      string `json:"error,omitempty"`
}

type SyncSummary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Errors  int `json:"errors"`
}

// SyncStatusResponse состояние каталога Printful
type SyncStatusResponse struct {
	Stats    SyncStats        `json:"stats"`
	Products []ProductSummary `json:"products"`
}

type SyncStats struct {
	TotalProducts    int        `json:"totalProducts"`
	PrintfulProducts int        `json:"printfulProducts"`
	ManualProducts   int        `json:"manualProducts"`
	LastSync         *time.Time `json:"lastSync"`
}

// MockupRequest запрос на генерацию мокапов
type MockupRequest struct {
	VariantIDs []int64       `json:"variantIds" validate:"required,min=1"`
	Format     string        `json:"format,omitempty" validate:"omitempty,oneof=jpg png"`
	Files      []MockupFile  `json:"files" validate:"required,min=1,dive"`
}

type MockupFile struct {
	Placement string `json:"placement" validate:"required"`
	ImageURL  string `json:"imageUrl" validate:"required,url"`
}

// MockupTask задача генерации мокапов
type MockupTask struct {
	TaskKey string `json:"taskKey"`
	Status  string `json:"status"`
}

// PaymentEvent сообщение платёжного контура из Kafka
type PaymentEvent struct {
	OrderID string `json:"order_id" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=paid cancelled"`
}

func AddressJSONToEntity(a Address) entities.ShippingAddress {
	return entities.ShippingAddress{
		Name:     a.Name,
		Address:  a.Address,
		Address2: a.Address2,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
		Email:    a.Email,
		Phone:    a.Phone,
	}
}

func AddressEntityToJSON(a entities.ShippingAddress) Address {
	return Address{
		Name:     a.Name,
		Address:  a.Address,
		Address2: a.Address2,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
		Email:    a.Email,
		Phone:    a.Phone,
	}
}

// addressFromRaw возвращает nil, если сохранённый адрес не разбирается.
func addressFromRaw(raw string) *Address {
	if raw == "" {
		return nil
	}
	addr, err := entities.ParseShippingAddress(raw)
	if err != nil {
		return nil
	}
	res := AddressEntityToJSON(addr)
	return &res
}

func ProductEntityToSummary(p entities.Product) ProductSummary {
	return ProductSummary{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Status:          string(p.Status),
		FulfillmentType: string(p.FulfillmentType),
		PrintfulID:      p.ExternalCatalogID,
		PrintfulExtID:   p.ExternalCatalogExtID,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		item := OrderItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Product:   ProductEntityToSummary(it.Product),
		}
		if it.Variant != nil {
			item.Variant = &Variant{Size: it.Variant.Size, Color: it.Variant.Color, SKU: it.Variant.SKU}
		}
		items = append(items, item)
	}

	return Order{
		ID:                    o.ID,
		UserID:                o.UserID,
		PaymentStatus:         string(o.PaymentStatus),
		FulfillmentStatus:     string(o.FulfillmentStatus),
		ExternalFulfillmentID: o.ExternalFulfillmentID,
		TotalAmount:           o.TotalAmount,
		PaymentIntentID:       o.PaymentIntentID,
		ShippingAddress:       addressFromRaw(o.ShippingAddress),
		BillingAddress:        addressFromRaw(o.BillingAddress),
		Items:                 items,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

func CreateOrderJSONToInput(req CreateOrderRequest) service.CreateOrderInput {
	in := service.CreateOrderInput{
		UserID:          req.UserID,
		TotalAmount:     req.TotalAmount,
		ShippingAddress: AddressJSONToEntity(req.ShippingAddress),
		PaymentIntentID: req.PaymentIntentID,
		Items:           make([]service.CreateOrderItem, 0, len(req.Items)),
	}
	if req.BillingAddress != nil {
		billing := AddressJSONToEntity(*req.BillingAddress)
		in.BillingAddress = &billing
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, service.CreateOrderItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return in
}

func FulfillResultToJSON(res service.FulfillResult) FulfillResponse {
	out := FulfillResponse{
		Order:             OrderEntityToJSON(res.Order),
		ProviderOrderID:   res.ProviderOrderID,
		EligibleItemCount: res.EligibleItemCount,
		SkippedItemCount:  res.SkippedItemCount,
		Confirmed:         res.Confirmed,
	}
	if res.Warning != nil {
		out.Warning = res.Warning.Error()
	}
	return out
}

func ProviderOrderEntityToJSON(o entities.ProviderOrder) ProviderOrder {
	res := ProviderOrder{
		ID:         o.ID,
		ExternalID: o.ExternalID,
		Status:     o.Status,
		Shipping:   o.Shipping,
		Created:    timePtr(o.Created),
		Updated:    timePtr(o.Updated),
		Shipments:  make([]Shipment, 0, len(o.Shipments)),
	}
	for _, s := range o.Shipments {
		res.Shipments = append(res.Shipments, Shipment{
			Carrier:        s.Carrier,
			Service:        s.Service,
			TrackingNumber: s.TrackingNumber,
			TrackingURL:    s.TrackingURL,
			ShipDate:       s.ShipDate,
		})
	}
	return res
}

func SyncResultToJSON(res service.SyncResult) SyncResponse {
	out := SyncResponse{
		Results: make([]SyncDetail, 0, len(res.Details)),
		Summary: SyncSummary{
			Total:   res.Total,
			Created: res.Created,
			Updated: res.Updated,
			Errors:  res.Errored,
		},
	}
	for _, d := range res.Details {
		out.Results = append(out.Results, SyncDetail{
			Action:     string(d.Action),
			ExternalID: d.ExternalID,
			PrintfulID: d.ProviderID,
			Name:       d.Name,
			ProductID:  d.ProductID,
			Slug:       d.Slug,
			Error:      d.Error,
		})
	}
	return out
}

func SyncStatusToJSON(s service.SyncStatus) SyncStatusResponse {
	res := SyncStatusResponse{
		Stats: SyncStats{
			TotalProducts:    s.Stats.Total,
			PrintfulProducts: s.Stats.Printful,
			ManualProducts:   s.Stats.Manual,
			LastSync:         timePtr(s.Stats.LastSyncedAt),
		},
		Products: make([]ProductSummary, 0, len(s.Products)),
	}
	for _, p := range s.Products {
		res.Products = append(res.Products, ProductEntityToSummary(p))
	}
	return res
}

func MockupJSONToRequest(req MockupRequest) printful.MockupRequest {
	res := printful.MockupRequest{
		VariantIDs: req.VariantIDs,
		Format:     req.Format,
		Files:      make([]printful.MockupFile, 0, len(req.Files)),
	}
	for _, f := range req.Files {
		res.Files = append(res.Files, printful.MockupFile{Placement: f.Placement, ImageURL: f.ImageURL})
	}
	return res
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
