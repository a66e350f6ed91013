package catalog

import (
	"context"

	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the catalog entry input
type CreateProductRequest struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Colors      []string
	Img         string
	Stock       int
}

// ProductService handles catalog operations
type ProductService struct {
	products catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	product, err := catalog.NewProduct(req.ID, req.Name, req.Price)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.Colors = req.Colors
	product.Img = req.Img
	product.Stock = req.Stock

	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a product by identifier
func (s *ProductService) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	return s.products.FindByID(ctx, id)
}

// List returns the full catalog
func (s *ProductService) List(ctx context.Context) ([]catalog.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return products, nil
}
