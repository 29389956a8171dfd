package printful

import (
	"bytes"
	"encoding/json"
	"hash/crc32"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// sandboxTransport отвечает заготовленными данными в том же формате, что и живой API,
// поэтому весь разбор ответов в клиенте работает одинаково в обоих режимах.
type sandboxTransport struct {
	now func() time.Time
}

func NewSandboxTransport() http.RoundTripper {
	return &sandboxTransport{now: time.Now}
}

var sandboxProducts = []SyncProduct{
	{
		ID:           1,
		ExternalID:   "mock-hoodie-1",
		Name:         "999 Club Hoodie",
		Variants:     2,
		Synced:       2,
		ThumbnailURL: "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=300",
	},
	{
		ID:           2,
		ExternalID:   "mock-tshirt-1",
		Name:         "Legends Never Die Tee",
		Variants:     1,
		Synced:       1,
		ThumbnailURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300",
	},
}

var sandboxVariants = map[string][]SyncVariant{
	"mock-hoodie-1": {
		{
			ID: 11, ExternalID: "mock-hoodie-1-black-s", SyncProductID: 1, Name: "999 Club Hoodie - Black / S",
			Synced: true, VariantID: 4012, RetailPrice: "45.00", Currency: "USD", SKU: "999-HOODIE-BLACK-S",
			Product: CatalogVariant{VariantID: 4012, ProductID: 146, Name: "Unisex Heavy Blend Hooded Sweatshirt"},
		},
		{
			ID: 12, ExternalID: "mock-hoodie-1-black-m", SyncProductID: 1, Name: "999 Club Hoodie - Black / M",
			Synced: true, VariantID: 4013, RetailPrice: "45.00", Currency: "USD", SKU: "999-HOODIE-BLACK-M",
			Product: CatalogVariant{VariantID: 4013, ProductID: 146, Name: "Unisex Heavy Blend Hooded Sweatshirt"},
		},
	},
	"mock-tshirt-1": {
		{
			ID: 21, ExternalID: "mock-tshirt-1-white-m", SyncProductID: 2, Name: "Legends Never Die Tee - White / M",
			Synced: true, VariantID: 4018, RetailPrice: "29.99", Currency: "USD", SKU: "LND-TEE-WHITE-M",
			Product: CatalogVariant{VariantID: 4018, ProductID: 71, Name: "Unisex Staple T-Shirt"},
		},
	},
}

func (t *sandboxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		defer req.Body.Close()
	}
	path := strings.TrimRight(req.URL.Path, "/")

	switch {
	case req.Method == http.MethodGet && path == "/store/products":
		return respond(req, http.StatusOK, sandboxProducts)

	case req.Method == http.MethodGet && strings.HasPrefix(path, "/store/products/"):
		id := strings.TrimPrefix(strings.TrimPrefix(path, "/store/products/"), "@")
		for _, p := range sandboxProducts {
			if p.ExternalID == id || strconv.FormatInt(p.ID, 10) == id {
				return respond(req, http.StatusOK, ProductDetail{SyncProduct: p, SyncVariants: sandboxVariants[p.ExternalID]})
			}
		}
		return respondError(req, http.StatusNotFound, "NotFound", "Product not found")

	case req.Method == http.MethodPost && path == "/orders":
		var order OrderRequest
		if req.Body == nil {
			return respondError(req, http.StatusBadRequest, "BadRequest", "Empty request body")
		}
		if err := json.NewDecoder(req.Body).Decode(&order); err != nil {
			return respondError(req, http.StatusBadRequest, "BadRequest", "Invalid JSON")
		}
		if len(order.Items) == 0 {
			return respondError(req, http.StatusBadRequest, "BadRequest", "Order must contain items")
		}
		now := t.now().Unix()
		return respond(req, http.StatusOK, Order{
			ID:         sandboxOrderID(order.ExternalID),
			ExternalID: order.ExternalID,
			Status:     "draft",
			Shipping:   order.Shipping,
			Created:    now,
			Updated:    now,
			Recipient:  order.Recipient,
			Items:      order.Items,
		})

	case req.Method == http.MethodPost && strings.HasPrefix(path, "/orders/") && strings.HasSuffix(path, "/confirm"):
		id := strings.TrimSuffix(strings.TrimPrefix(path, "/orders/"), "/confirm")
		return t.orderStatus(req, id, "pending")

	case req.Method == http.MethodGet && strings.HasPrefix(path, "/orders/"):
		return t.orderStatus(req, strings.TrimPrefix(path, "/orders/"), "draft")

	case req.Method == http.MethodPost && strings.HasPrefix(path, "/mockup-generator/create-task/"):
		id := strings.TrimPrefix(path, "/mockup-generator/create-task/")
		return respond(req, http.StatusOK, MockupTask{TaskKey: "gt-sandbox-" + id, Status: "pending"})
	}

	return respondError(req, http.StatusNotFound, "NotFound", "Not found")
}

func (t *sandboxTransport) orderStatus(req *http.Request, id, status string) (*http.Response, error) {
	order := Order{Status: status, Shipping: "STANDARD", Updated: t.now().Unix()}
	if ext, ok := strings.CutPrefix(id, "@"); ok {
		order.ID = sandboxOrderID(ext)
		order.ExternalID = ext
	} else {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil || n <= 0 {
			return respondError(req, http.StatusNotFound, "NotFound", "Order not found")
		}
		order.ID = n
	}
	return respond(req, http.StatusOK, order)
}

// sandboxOrderID детерминирован: один и тот же external_id всегда даёт один id.
func sandboxOrderID(externalID string) int64 {
	return 10_000_000 + int64(crc32.ChecksumIEEE([]byte(externalID))%90_000_000)
}

func respond[T any](req *http.Request, code int, result T) (*http.Response, error) {
	return encode(req, code, envelope[T]{Code: code, Result: result})
}

func respondError(req *http.Request, code int, reason, message string) (*http.Response, error) {
	return encode(req, code, envelope[string]{Code: code, Result: message, Error: &apiError{Reason: reason, Message: message}})
}

func encode(req *http.Request, code int, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &http.Response{
		StatusCode:    code,
		Status:        strconv.Itoa(code) + " " + http.StatusText(code),
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Request:       req,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
	}, nil
}
