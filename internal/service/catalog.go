package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// ProductFilter abstracts JMESPath filtering for testability.
type ProductFilter interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathProductFilter implements ProductFilter using go-jmespath.
type jmespathProductFilter struct{}

func (jmespathProductFilter) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (jmespathProductFilter) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Catalog ports.Catalog
	Filter  ProductFilter
}

// CatalogService exposes the product-management backend's catalog with
// server-side JMESPath filtering, e.g.
// "[?wholesalePrice < `20`]" or "[?category == 'furniture']".
type CatalogService struct {
	catalog ports.Catalog
	filter  ProductFilter
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	filter := opts.Filter
	if filter == nil {
		filter = jmespathProductFilter{}
	}
	return &CatalogService{catalog: opts.Catalog, filter: filter}
}

// List returns the full catalog.
func (s *CatalogService) List(ctx context.Context) ([]ports.Product, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID returns a single product.
func (s *CatalogService) GetByID(ctx context.Context, productID string) (ports.Product, error) {
	if productID == "" {
		return ports.Product{}, apperrors.ValidationField("productID", "product ID is required")
	}
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return ports.Product{}, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Search returns the products matching a JMESPath filter expression applied
// to the catalog's JSON shape. An empty expression returns the full catalog.
func (s *CatalogService) Search(ctx context.Context, expression string) ([]ports.Product, error) {
	if err := s.filter.Validate(expression); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid filter expression")
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if strings.TrimSpace(expression) == "" {
		return products, nil
	}

	filtered, err := s.applyFilter(expression, products)
	if err != nil {
		return nil, err
	}
	return filtered, nil
}

// applyFilter round-trips the products through their JSON shape so the
// expression operates on the same field names the backend serves.
func (s *CatalogService) applyFilter(expression string, products []ports.Product) ([]ports.Product, error) {
	raw, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("encode products: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	result, err := s.filter.Evaluate(expression, data)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "evaluate filter expression")
	}
	if result == nil {
		return nil, nil
	}

	out, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode filter result: %w", err)
	}
	var filtered []ports.Product
	if err := json.Unmarshal(out, &filtered); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "filter expression must select products")
	}
	return filtered, nil
}
