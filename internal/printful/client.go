package printful

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/SergeyBogomolovv/merch-fulfillment/internal/printful")

// APIError - единый формат ошибки клиента. StatusCode == 0 означает,
// что ответа от Printful не было (сеть, таймаут).
type APIError struct {
	Operation  string
	StatusCode int
	Reason     string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("printful %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("printful %s: %d %s", e.Operation, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound сообщает, что Printful ответил 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client не хранит изменяемого состояния и безопасен для конкурентного использования.
type Client struct {
	logger  *slog.Logger
	baseURL string
	token   string
	storeID string
	sandbox bool
	http    *http.Client
}

func NewClient(logger *slog.Logger, cfg config.Printful) *Client {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	if cfg.Sandbox {
		httpClient.Transport = NewSandboxTransport()
	}

	return &Client{
		logger:  logger.With(slog.String("client", "printful"), slog.Bool("sandbox", cfg.Sandbox)),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		storeID: cfg.StoreID,
		sandbox: cfg.Sandbox,
		http:    httpClient,
	}
}

func (c *Client) Sandbox() bool {
	return c.sandbox
}

func (c *Client) GetProducts(ctx context.Context) ([]SyncProduct, error) {
	var res []SyncProduct
	if err := c.do(ctx, "list_products", http.MethodGet, "/store/products", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetProduct принимает внешний идентификатор товара магазина (external_id).
func (c *Client) GetProduct(ctx context.Context, externalID string) (ProductDetail, error) {
	var res ProductDetail
	path := "/store/products/@" + url.PathEscape(externalID)
	if err := c.do(ctx, "get_product", http.MethodGet, path, nil, &res); err != nil {
		return ProductDetail{}, err
	}
	return res, nil
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	var res Order
	if err := c.do(ctx, "create_order", http.MethodPost, "/orders", req, &res); err != nil {
		return Order{}, err
	}
	if res.ID == 0 {
		return Order{}, &APIError{Operation: "create_order", StatusCode: http.StatusOK, Message: "response without order id"}
	}
	return res, nil
}

func (c *Client) ConfirmOrder(ctx context.Context, orderID string) (Order, error) {
	var res Order
	path := "/orders/" + url.PathEscape(orderID) + "/confirm"
	if err := c.do(ctx, "confirm_order", http.MethodPost, path, nil, &res); err != nil {
		return Order{}, err
	}
	return res, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (Order, error) {
	var res Order
	if err := c.do(ctx, "get_order", http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &res); err != nil {
		return Order{}, err
	}
	return res, nil
}

func (c *Client) CreateMockupTask(ctx context.Context, productID int64, req MockupRequest) (MockupTask, error) {
	if req.Format == "" {
		req.Format = "jpg"
	}
	var res MockupTask
	path := "/mockup-generator/create-task/" + strconv.FormatInt(productID, 10)
	if err := c.do(ctx, "create_mockup", http.MethodPost, path, req, &res); err != nil {
		return MockupTask{}, err
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) (err error) {
	ctx, span := tracer.Start(ctx, "printful."+operation)
	defer span.End()
	span.SetAttributes(attribute.String("http.method", method), attribute.String("printful.path", path))

	start := time.Now()
	status := 0
	defer func() {
		providerRequestDuration.WithLabelValues(operation, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", operation, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	if c.storeID != "" {
		req.Header.Set("X-PF-Store-Id", c.storeID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Operation: operation, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Operation: operation, StatusCode: status, Message: err.Error(), Err: err}
	}

	c.logger.DebugContext(ctx, "printful request",
		slog.String("operation", operation),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)

	if status < 200 || status >= 300 {
		return decodeError(operation, status, data)
	}

	var env envelope[json.RawMessage]
	if err := json.Unmarshal(data, &env); err != nil {
		return &APIError{Operation: operation, StatusCode: status, Message: "malformed response", Err: err}
	}
	if out == nil || len(env.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return &APIError{Operation: operation, StatusCode: status, Message: "malformed result", Err: err}
	}
	return nil
}

func decodeError(operation string, status int, data []byte) error {
	apiErr := &APIError{Operation: operation, StatusCode: status, Message: http.StatusText(status)}

	var env envelope[json.RawMessage]
	if err := json.Unmarshal(data, &env); err != nil {
		return apiErr
	}
	if env.Error != nil {
		apiErr.Reason = env.Error.Reason
		if env.Error.Message != "" {
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	// старые эндпоинты кладут текст ошибки прямо в result
	var msg string
	if json.Unmarshal(env.Result, &msg) == nil && msg != "" {
		apiErr.Message = msg
	}
	return apiErr
}
