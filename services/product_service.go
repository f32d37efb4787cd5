package services

import (
	"context"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/repository"
	"go.uber.org/zap"
)

// ProductService defines the operations on the products inside a shopcart.
type ProductService interface {
	List(ctx context.Context, userID string, q repository.ProductQuery) ([]models.Product, error)
	Get(ctx context.Context, userID, productID string) (*models.Product, error)
	Add(ctx context.Context, userID string, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, userID, productID string, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, userID, productID string) error
}

type productServiceImpl struct {
	carts    repository.ShopcartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(carts repository.ShopcartRepository, products repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productServiceImpl{carts: carts, products: products, logger: logger}
}

func (s *productServiceImpl) List(ctx context.Context, userID string, q repository.ProductQuery) ([]models.Product, error) {
	if err := s.requireCart(ctx, userID); err != nil {
		return nil, err
	}
	products, err := s.products.Search(ctx, userID, q)
	if err != nil {
		return nil, storeError(s.logger, "Failed to fetch products", err)
	}
	return products, nil
}

func (s *productServiceImpl) Get(ctx context.Context, userID, productID string) (*models.Product, error) {
	product, err := s.find(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("Product with id %s was not found in shopcart %s.", productID, userID)
	}
	return product, nil
}

// Add puts the product into the user's shopcart. Adding a product_id the cart
// already holds overwrites that line item.
func (s *productServiceImpl) Add(ctx context.Context, userID string, product *models.Product) (*models.Product, error) {
	if err := s.requireCart(ctx, userID); err != nil {
		return nil, err
	}
	product.UserID = userID
	if err := s.products.Create(ctx, product); err != nil {
		return nil, storeError(s.logger, "Failed to add product to shopcart", err)
	}
	s.logger.Info("Product added",
		zap.String("user_id", userID),
		zap.String("product_id", product.ProductID),
		zap.Uint("id", product.ID),
	)
	return product, nil
}

// Update replaces the product's fields and keeps its id.
func (s *productServiceImpl) Update(ctx context.Context, userID, productID string, product *models.Product) (*models.Product, error) {
	existing, err := s.Get(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.UserID = userID
	if err := s.products.Update(ctx, product); err != nil {
		return nil, storeError(s.logger, "Failed to update product", err)
	}
	s.logger.Info("Product updated", zap.String("user_id", userID), zap.String("product_id", productID))
	return product, nil
}

// Delete removes the product. Deleting a missing product succeeds.
func (s *productServiceImpl) Delete(ctx context.Context, userID, productID string) error {
	product, err := s.find(ctx, userID, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}
	if err := s.products.Delete(ctx, product); err != nil {
		return storeError(s.logger, "Failed to delete product", err)
	}
	s.logger.Info("Product deleted", zap.String("user_id", userID), zap.String("product_id", productID))
	return nil
}

func (s *productServiceImpl) requireCart(ctx context.Context, userID string) error {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return storeError(s.logger, "Failed to fetch shopcart", err)
	}
	if cart == nil {
		return notFound("Shopcart with id '%s' was not found.", userID)
	}
	return nil
}

func (s *productServiceImpl) find(ctx context.Context, userID, productID string) (*models.Product, error) {
	product, err := s.products.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, storeError(s.logger, "Failed to fetch product", err)
	}
	return product, nil
}
