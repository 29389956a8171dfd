package printful

import (
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
)

// envelope - общий формат ответа Printful API.
type envelope[T any] struct {
	Code   int       `json:"code"`
	Result T         `json:"result"`
	Error  *apiError `json:"error,omitempty"`
}

type apiError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type SyncProduct struct {
	ID           int64  `json:"id"`
	ExternalID   string `json:"external_id"`
	Name         string `json:"name"`
	Variants     int    `json:"variants"`
	Synced       int    `json:"synced"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsIgnored    bool   `json:"is_ignored"`
}

type SyncVariant struct {
	ID            int64          `json:"id"`
	ExternalID    string         `json:"external_id"`
	SyncProductID int64          `json:"sync_product_id"`
	Name          string         `json:"name"`
	Synced        bool           `json:"synced"`
	VariantID     int64          `json:"variant_id"`
	RetailPrice   string         `json:"retail_price"`
	Currency      string         `json:"currency"`
	IsIgnored     bool           `json:"is_ignored"`
	SKU           string         `json:"sku"`
	Product       CatalogVariant `json:"product"`
}

type CatalogVariant struct {
	VariantID int64  `json:"variant_id"`
	ProductID int64  `json:"product_id"`
	Image     string `json:"image"`
	Name      string `json:"name"`
}

type ProductDetail struct {
	SyncProduct  SyncProduct   `json:"sync_product"`
	SyncVariants []SyncVariant `json:"sync_variants"`
}

type Recipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type OrderItem struct {
	SyncVariantID     int64  `json:"sync_variant_id,omitempty"`
	ExternalVariantID string `json:"external_variant_id,omitempty"`
	Quantity          int    `json:"quantity"`
	RetailPrice       string `json:"retail_price,omitempty"`
}

type OrderRequest struct {
	ExternalID string      `json:"external_id"`
	Shipping   string      `json:"shipping"`
	Recipient  Recipient   `json:"recipient"`
	Items      []OrderItem `json:"items"`
}

type Shipment struct {
	ID             int64  `json:"id"`
	Carrier        string `json:"carrier"`
	Service        string `json:"service"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
	ShipDate       string `json:"ship_date"`
}

type Order struct {
	ID         int64       `json:"id"`
	ExternalID string      `json:"external_id"`
	Status     string      `json:"status"`
	Shipping   string      `json:"shipping"`
	Created    int64       `json:"created"`
	Updated    int64       `json:"updated"`
	Recipient  Recipient   `json:"recipient"`
	Items      []OrderItem `json:"items"`
	Shipments  []Shipment  `json:"shipments"`
}

// IDString - идентификатор в том виде, в котором он хранится у нас.
func (o Order) IDString() string {
	if o.ID == 0 {
		return ""
	}
	return strconv.FormatInt(o.ID, 10)
}

func (o Order) ToEntity() entities.ProviderOrder {
	res := entities.ProviderOrder{
		ID:         o.IDString(),
		ExternalID: o.ExternalID,
		Status:     o.Status,
		Shipping:   o.Shipping,
	}
	if o.Created > 0 {
		res.Created = time.Unix(o.Created, 0).UTC()
	}
	if o.Updated > 0 {
		res.Updated = time.Unix(o.Updated, 0).UTC()
	}
	for _, s := range o.Shipments {
		res.Shipments = append(res.Shipments, entities.Shipment{
			Carrier:        s.Carrier,
			Service:        s.Service,
			TrackingNumber: s.TrackingNumber,
			TrackingURL:    s.TrackingURL,
			ShipDate:       s.ShipDate,
		})
	}
	return res
}

type MockupFile struct {
	Placement string `json:"placement"`
	ImageURL  string `json:"image_url"`
}

type MockupRequest struct {
	VariantIDs []int64      `json:"variant_ids"`
	Format     string       `json:"format"`
	Files      []MockupFile `json:"files"`
}

type MockupTask struct {
	TaskKey string `json:"task_key"`
	Status  string `json:"status"`
}
