package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/printful"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

type ProductRepo interface {
	GetProductByExtID(ctx context.Context, extID string) (entities.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateProduct(ctx context.Context, p entities.Product) error

	// UpdateProductFromCatalog не меняет цену.
	UpdateProductFromCatalog(ctx context.Context, p entities.Product) error

	ListProductsByFulfillment(ctx context.Context, t entities.FulfillmentType) ([]entities.Product, error)
	ProductStats(ctx context.Context) (entities.ProductStats, error)
}

type CatalogProvider interface {
	GetProducts(ctx context.Context) ([]printful.SyncProduct, error)
	GetProduct(ctx context.Context, externalID string) (printful.ProductDetail, error)
	CreateMockupTask(ctx context.Context, productID int64, req printful.MockupRequest) (printful.MockupTask, error)
}

type SyncAction string

const (
	SyncCreated SyncAction = "created"
	SyncUpdated SyncAction = "updated"
	SyncError   SyncAction = "error"
)

type SyncDetail struct {
	Action     SyncAction
	ExternalID string
	ProviderID int64
	Name       string
	ProductID  string
	Slug       string
	Error      string
}

type SyncResult struct {
	Total   int
	Created int
	Updated int
	Errored int
	Details []SyncDetail
}

type SyncStatus struct {
	Stats    entities.ProductStats
	Products []entities.Product
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

type catalogService struct {
	logger    *slog.Logger
	cfg       config.Catalog
	txManager trm.Manager
	repo      ProductRepo
	provider  CatalogProvider
}

func NewCatalogService(logger *slog.Logger, cfg config.Catalog, txManager trm.Manager, repo ProductRepo, provider CatalogProvider) *catalogService {
	return &catalogService{
		logger:    logger.With(slog.String("service", "catalog")),
		cfg:       cfg,
		txManager: txManager,
		repo:      repo,
		provider:  provider,
	}
}

// SyncCatalog переносит товары Printful в локальный каталог.
// Ошибка одного товара попадает в Details и не прерывает остальные.
func (s *catalogService) SyncCatalog(ctx context.Context) (SyncResult, error) {
	ctx, span := tracer.Start(ctx, "catalog.SyncCatalog")
	defer span.End()

	products, err := s.provider.GetProducts(ctx)
	if err != nil {
		span.RecordError(err)
		return SyncResult{}, fmt.Errorf("failed to get provider products: %w", err)
	}
	span.SetAttributes(attribute.Int("products", len(products)))

	details := make([]printful.ProductDetail, len(products))
	fetchErrs := make([]error, len(products))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.FetchConcurrency)
	for i, p := range products {
		g.Go(func() error {
			details[i], fetchErrs[i] = s.provider.GetProduct(ctx, p.ExternalID)
			return nil
		})
	}
	_ = g.Wait()

	result := SyncResult{Details: make([]SyncDetail, 0, len(products))}
	for i, p := range products {
		detail := SyncDetail{ExternalID: p.ExternalID, ProviderID: p.ID, Name: p.Name}

		var product entities.Product
		var action SyncAction
		err := fetchErrs[i]
		if err == nil {
			product, action, err = s.syncProduct(ctx, p, details[i])
		}

		if err != nil {
			s.logger.Error("failed to sync product", slog.String("external_id", p.ExternalID), slog.Any("error", err))
			detail.Action = SyncError
			detail.Error = err.Error()
			result.Errored++
		} else {
			detail.Action = action
			detail.ProductID = product.ID
			detail.Slug = product.Slug
			if action == SyncCreated {
				result.Created++
			} else {
				result.Updated++
			}
		}

		catalogSyncProducts.WithLabelValues(string(detail.Action)).Inc()
		result.Details = append(result.Details, detail)
	}
	result.Total = len(result.Details)

	s.logger.Info("catalog synced",
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("errored", result.Errored),
	)
	return result, nil
}

func (s *catalogService) syncProduct(ctx context.Context, p printful.SyncProduct, detail printful.ProductDetail) (entities.Product, SyncAction, error) {
	if p.ExternalID == "" {
		return entities.Product{}, SyncError, errors.New("provider product has no external id")
	}

	var product entities.Product
	var action SyncAction

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetProductByExtID(ctx, p.ExternalID)
		switch {
		case err == nil:
			product = s.applyCatalog(existing, p, detail)
			action = SyncUpdated
			return s.repo.UpdateProductFromCatalog(ctx, product)
		case errors.Is(err, entities.ErrProductNotFound):
			product, err = s.newProduct(ctx, p, detail)
			if err != nil {
				return err
			}
			action = SyncCreated
			return s.repo.CreateProduct(ctx, product)
		default:
			return err
		}
	})
	if err != nil {
		return entities.Product{}, SyncError, err
	}
	return product, action, nil
}

// applyCatalog переносит поля, которые однозначно выводятся из Printful.
func (s *catalogService) applyCatalog(product entities.Product, p printful.SyncProduct, detail printful.ProductDetail) entities.Product {
	product.Name = p.Name
	product.Images = imageList(p.ThumbnailURL)
	product.MockupImages = imageList(detail.SyncProduct.ThumbnailURL)
	product.ExternalCatalogID = strconv.FormatInt(p.ID, 10)
	product.ExternalCatalogExtID = p.ExternalID
	product.FulfillmentType = entities.FulfillmentPrintful
	product.Status = entities.ProductActive
	if p.IsIgnored || detail.SyncProduct.IsIgnored {
		product.Status = entities.ProductArchived
	}
	product.UpdatedAt = time.Now()
	return product
}

func (s *catalogService) newProduct(ctx context.Context, p printful.SyncProduct, detail printful.ProductDetail) (entities.Product, error) {
	slug, err := s.uniqueSlug(ctx, p.Name)
	if err != nil {
		return entities.Product{}, err
	}

	now := time.Now()
	product := entities.Product{
		ID:           uuid.NewString(),
		Slug:         slug,
		Description:  fmt.Sprintf("High-quality %s - Print-on-demand", p.Name),
		Price:        s.initialPrice(detail),
		Tags:         []string{"printful", "print-on-demand"},
		InventoryQty: s.cfg.InventoryQty,
		CreatedAt:    now,
	}
	return s.applyCatalog(product, p, detail), nil
}

func (s *catalogService) initialPrice(detail printful.ProductDetail) decimal.Decimal {
	if len(detail.SyncVariants) == 0 {
		return s.cfg.FallbackPrice
	}
	price, err := decimal.NewFromString(detail.SyncVariants[0].RetailPrice)
	if err != nil || price.IsNegative() {
		return s.cfg.FallbackPrice
	}
	return price
}

func (s *catalogService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "product"
	}

	slug := base
	for counter := 1; ; counter++ {
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(counter)
	}
}

func (s *catalogService) SyncStatus(ctx context.Context) (SyncStatus, error) {
	stats, err := s.repo.ProductStats(ctx)
	if err != nil {
		return SyncStatus{}, fmt.Errorf("failed to get product stats: %w", err)
	}
	products, err := s.repo.ListProductsByFulfillment(ctx, entities.FulfillmentPrintful)
	if err != nil {
		return SyncStatus{}, fmt.Errorf("failed to list printful products: %w", err)
	}
	return SyncStatus{Stats: stats, Products: products}, nil
}

func (s *catalogService) CreateMockupTask(ctx context.Context, productID int64, req printful.MockupRequest) (printful.MockupTask, error) {
	if len(req.VariantIDs) == 0 || len(req.Files) == 0 {
		return printful.MockupTask{}, fmt.Errorf("%w: variant ids and files are required", entities.ErrInvalidMockupRequest)
	}
	task, err := s.provider.CreateMockupTask(ctx, productID, req)
	if err != nil {
		return printful.MockupTask{}, fmt.Errorf("failed to create mockup task: %w", err)
	}
	return task, nil
}

// Slugify приводит название к виду, пригодному для URL.
func Slugify(name string) string {
	return strings.Trim(slugRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

func imageList(url string) []string {
	if url == "" {
		return nil
	}
	return []string{url}
}
