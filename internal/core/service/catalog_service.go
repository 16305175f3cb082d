package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/product-factory/internal/core/domain"
	"github.com/rl1809/product-factory/internal/metrics"
)

// Draft carries the builder steps requested by a caller. Nil fields are left
// at their zero value.
type Draft struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
}

type VariantInfo struct {
	Variant domain.Variant
	Family  domain.Family
	Product domain.Product
}

type CatalogService struct {
	registry *InventoryRegistry
	logger   *zap.Logger
	strict   bool
}

type Option func(*CatalogService)

func WithLogger(logger *zap.Logger) Option {
	return func(s *CatalogService) {
		s.logger = logger
	}
}

// WithStrictValidation makes Build and Register reject products that fail
// domain.Product.Validate.
func WithStrictValidation(strict bool) Option {
	return func(s *CatalogService) {
		s.strict = strict
	}
}

func NewCatalogService(registry *InventoryRegistry, opts ...Option) *CatalogService {
	s := &CatalogService{
		registry: registry,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CatalogService) Create(ctx context.Context, variant domain.Variant) (domain.Product, error) {
	product, err := variant.CreateProduct()
	if err != nil {
		return domain.Product{}, err
	}

	metrics.ProductsCreated.WithLabelValues(metrics.PathFactory, variant.String()).Inc()
	s.logger.Debug("product created",
		zap.String("variant", variant.String()),
		zap.String("family", string(variant.Family())),
		zap.String("product", product.Name))

	return product, nil
}

func (s *CatalogService) Build(ctx context.Context, draft Draft) (domain.Product, error) {
	b := domain.NewBuilder()
	if draft.Name != nil {
		b.SetName(*draft.Name)
	}
	if draft.Price != nil {
		b.SetPrice(*draft.Price)
	}
	if draft.Description != nil {
		b.SetDescription(*draft.Description)
	}

	var product domain.Product
	if s.strict {
		var err error
		if product, err = b.BuildValid(); err != nil {
			return domain.Product{}, fmt.Errorf("build product: %w", err)
		}
	} else {
		product = b.Build()
	}

	metrics.ProductsCreated.WithLabelValues(metrics.PathBuilder, "custom").Inc()
	s.logger.Debug("product built", zap.String("product", product.Name))

	return product, nil
}

func (s *CatalogService) Clone(ctx context.Context, source domain.Product) (domain.Product, error) {
	clone := domain.NewPrototype(source).Clone()

	metrics.ProductsCreated.WithLabelValues(metrics.PathPrototype, "clone").Inc()
	s.logger.Debug("product cloned", zap.String("product", clone.Name))

	return clone, nil
}

func (s *CatalogService) Register(ctx context.Context, product domain.Product) error {
	if s.strict {
		if err := product.Validate(); err != nil {
			return fmt.Errorf("register product: %w", err)
		}
	}
	return s.registry.Register(ctx, product)
}

func (s *CatalogService) Variants() []VariantInfo {
	variants := domain.Variants()
	infos := make([]VariantInfo, 0, len(variants))
	for _, v := range variants {
		p, err := v.CreateProduct()
		if err != nil {
			continue
		}
		infos = append(infos, VariantInfo{Variant: v, Family: v.Family(), Product: p})
	}
	return infos
}
