package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/printful"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/service"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
}

type FulfillmentService interface {
	Fulfill(ctx context.Context, orderID string) (service.FulfillResult, error)
	ConfirmOrder(ctx context.Context, orderID string) (entities.Order, error)
	ProviderStatus(ctx context.Context, orderID string) (entities.ProviderOrder, error)
}

type CatalogService interface {
	SyncCatalog(ctx context.Context) (service.SyncResult, error)
	SyncStatus(ctx context.Context) (service.SyncStatus, error)
	CreateMockupTask(ctx context.Context, productID int64, req printful.MockupRequest) (printful.MockupTask, error)
}

type HTTPHandler struct {
	logger      *slog.Logger
	validate    *validator.Validate
	orders      OrderService
	fulfillment FulfillmentService
	catalog     CatalogService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, fulfillment FulfillmentService, catalog CatalogService) *HTTPHandler {
	return &HTTPHandler{
		logger:      logger.With(slog.String("handler", "http")),
		validate:    validator.New(),
		orders:      orders,
		fulfillment: fulfillment,
		catalog:     catalog,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Post("/", h.CreateOrder)
			r.Get("/{order_id}", h.GetOrder)
			r.Post("/{order_id}/fulfill", h.Fulfill)
			r.Post("/{order_id}/confirm", h.ConfirmOrder)
			r.Get("/{order_id}/provider-status", h.ProviderStatus)
		})

		r.Route("/printful", func(r chi.Router) {
			r.Post("/sync", h.SyncCatalog)
			r.Get("/sync", h.SyncStatus)
			r.Post("/mockups/{product_id}", h.CreateMockupTask)
		})
	})
}

// ListOrders возвращает последние заказы.
// @Summary      Список заказов
// @Description  Возвращает заказы с позициями, новые первыми
// @Tags         orders
// @Param        limit   query     int  false  "Количество заказов (по умолчанию 50, максимум 200)"
// @Param        offset  query     int  false  "Смещение"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.WriteError(w, "invalid limit", http.StatusBadRequest)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		utils.WriteError(w, "invalid offset", http.StatusBadRequest)
		return
	}

	orders, err := h.orders.ListOrders(ctx, limit, offset)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateOrder создаёт заказ в статусе ожидания оплаты.
// @Summary      Создать заказ
// @Tags         orders
// @Accept       json
// @Param        order  body      CreateOrderRequest  true  "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      422  {object}  utils.ErrorResponse "Некорректный заказ"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, CreateOrderJSONToInput(req))
	switch {
	case errors.Is(err, entities.ErrInvalidOrder),
		errors.Is(err, entities.ErrInvalidShippingAddress),
		errors.Is(err, entities.ErrProductNotFound):
		utils.WriteErrorDetails(w, "invalid order", err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.GetOrder(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Fulfill отправляет заказ в Printful.
// @Summary      Отправить заказ в Printful
// @Description  Создаёт заказ у провайдера для позиций print-on-demand и подтверждает его
// @Tags         fulfillment
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  FulfillResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже отправлен или обрабатывается"
// @Failure      422  {object}  utils.ErrorResponse "Нет позиций для отправки, некорректный адрес или оплата отменена"
// @Failure      502  {object}  utils.ErrorResponse "Printful не принял заказ, можно повторить"
// @Failure      500  {object}  utils.ErrorResponse "Заказ создан у провайдера, но не сохранён, повторять нельзя"
// @Router       /admin/orders/{order_id}/fulfill [post]
func (h *HTTPHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")
	start := time.Now()

	res, err := h.fulfillment.Fulfill(ctx, orderID)
	code := h.writeFulfillError(ctx, w, orderID, res, err)
	if err == nil {
		code = http.StatusOK
		utils.WriteJSON(w, FulfillResultToJSON(res), code)
	}

	fulfillRequestTotal.WithLabelValues(strconv.Itoa(code)).Inc()
	fulfillRequestDuration.Observe(time.Since(start).Seconds())
}

// writeFulfillError пишет ответ по ошибке Fulfill и возвращает код ответа.
func (h *HTTPHandler) writeFulfillError(ctx context.Context, w http.ResponseWriter, orderID string, res service.FulfillResult, err error) int {
	var code int
	switch {
	case err == nil:
		return 0
	case errors.Is(err, entities.ErrOrderNotFound):
		code = http.StatusNotFound
		utils.WriteError(w, "order not found", code)
	case errors.Is(err, entities.ErrAlreadyInProgress):
		code = http.StatusConflict
		utils.WriteError(w, err.Error(), code)
	case errors.Is(err, entities.ErrNoEligibleItems),
		errors.Is(err, entities.ErrInvalidShippingAddress),
		errors.Is(err, entities.ErrOrderCancelled):
		code = http.StatusUnprocessableEntity
		utils.WriteErrorDetails(w, "order cannot be fulfilled", err.Error(), code)
	case errors.Is(err, entities.ErrProviderSubmissionFailed):
		code = http.StatusBadGateway
		utils.WriteErrorDetails(w, "provider submission failed, safe to retry", providerMessage(err), code)
	case errors.Is(err, entities.ErrStateWriteFailed):
		code = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "provider order not recorded", slog.Any("error", err),
			slog.String("order_id", orderID), slog.String("provider_order_id", res.ProviderOrderID))
		utils.WriteErrorDetails(w, fmt.Sprintf("do not retry, provider order %s exists", res.ProviderOrderID), err.Error(), code)
	default:
		code = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to fulfill order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", code)
	}
	return code
}

// ConfirmOrder повторяет подтверждение заказа у провайдера.
// @Summary      Подтвердить заказ в Printful
// @Tags         fulfillment
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не ожидает подтверждения"
// @Failure      502  {object}  utils.ErrorResponse "Printful не подтвердил заказ"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_id}/confirm [post]
func (h *HTTPHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	order, err := h.fulfillment.ConfirmOrder(ctx, orderID)
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotPending), errors.Is(err, entities.ErrAlreadyInProgress):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrConfirmationFailed):
		utils.WriteErrorDetails(w, "provider confirmation failed", providerMessage(err), http.StatusBadGateway)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to confirm order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
	}
}

// ProviderStatus возвращает состояние заказа у провайдера.
// @Summary      Статус заказа в Printful
// @Tags         fulfillment
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  ProviderOrder
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ ещё не отправлен"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка Printful"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_id}/provider-status [get]
func (h *HTTPHandler) ProviderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	status, err := h.fulfillment.ProviderStatus(ctx, orderID)
	var apiErr *printful.APIError
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNotSubmitted):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.As(err, &apiErr):
		utils.WriteErrorDetails(w, "provider request failed", apiErr.Message, http.StatusBadGateway)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to get provider status", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, ProviderOrderEntityToJSON(status), http.StatusOK)
	}
}

// SyncCatalog синхронизирует каталог с Printful.
// @Summary      Синхронизировать каталог
// @Description  Создаёт и обновляет локальные товары по товарам магазина Printful
// @Tags         catalog
// @Success      200  {object}  SyncResponse
// @Failure      502  {object}  utils.ErrorResponse "Не удалось получить каталог Printful"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/printful/sync [post]
func (h *HTTPHandler) SyncCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.catalog.SyncCatalog(ctx)
	var apiErr *printful.APIError
	if errors.As(err, &apiErr) {
		utils.WriteErrorDetails(w, "failed to fetch provider catalog", apiErr.Message, http.StatusBadGateway)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to sync catalog", slog.Any("error", err))
		utils.WriteErrorDetails(w, "failed to sync catalog", err.Error(), http.StatusInternalServerError)
		return
	}

	out := SyncResultToJSON(res)
	out.Message = fmt.Sprintf("Synced %d products", res.Total)
	utils.WriteJSON(w, out, http.StatusOK)
}

// SyncStatus возвращает состояние локального каталога Printful.
// @Summary      Состояние каталога
// @Tags         catalog
// @Success      200  {object}  SyncStatusResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/printful/sync [get]
func (h *HTTPHandler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, err := h.catalog.SyncStatus(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get sync status", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, SyncStatusToJSON(status), http.StatusOK)
}

// CreateMockupTask запускает генерацию мокапов.
// @Summary      Сгенерировать мокапы
// @Tags         catalog
// @Accept       json
// @Param        product_id  path      int            true  "Идентификатор товара в каталоге Printful"
// @Param        request     body      MockupRequest  true  "Параметры генерации"
// @Success      202  {object}  MockupTask
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка Printful"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/printful/mockups/{product_id} [post]
func (h *HTTPHandler) CreateMockupTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req MockupRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	task, err := h.catalog.CreateMockupTask(ctx, productID, MockupJSONToRequest(req))
	var apiErr *printful.APIError
	switch {
	case errors.Is(err, entities.ErrInvalidMockupRequest):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &apiErr):
		utils.WriteErrorDetails(w, "provider request failed", apiErr.Message, http.StatusBadGateway)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to create mockup task", slog.Any("error", err), slog.Int64("product_id", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, MockupTask{TaskKey: task.TaskKey, Status: task.Status}, http.StatusAccepted)
	}
}

// providerMessage достаёт сообщение Printful из цепочки ошибок.
func providerMessage(err error) string {
	var apiErr *printful.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
