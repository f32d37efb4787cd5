package repository

import (
	"context"
	"errors"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"gorm.io/gorm"
)

// SortOrder orders a product listing by price.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "asc"
	SortPriceDesc SortOrder = "desc"
)

// ProductQuery filters a user's products. Nil bounds are unbounded and both
// bounds are inclusive.
type ProductQuery struct {
	MinPrice *float64
	MaxPrice *float64
	Name     string
	Order    SortOrder
}

// ProductRepository defines data-access operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
	Find(ctx context.Context, id uint) (*models.Product, error)
	FindOrFail(ctx context.Context, id uint) (*models.Product, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Product, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Product, error)
	FindByPriceRange(ctx context.Context, userID string, minPrice, maxPrice *float64) ([]models.Product, error)
	FindByName(ctx context.Context, name string) ([]models.Product, error)
	Search(ctx context.Context, userID string, q ProductQuery) ([]models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts the product, or overwrites the existing row with the same
// (user_id, product_id) and takes over its id. When a concurrent insert of the
// same pair wins, the upsert is retried once and updates that row.
func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	upsert := func(tx *gorm.DB) error { return upsertProduct(tx, product) }

	err := r.db.WithContext(ctx).Transaction(upsert)
	if IsDuplicateKey(err) {
		err = r.db.WithContext(ctx).Transaction(upsert)
	}
	if IsDuplicateKey(err) {
		return models.NewDataValidationError("Product %s is already in shopcart %s", product.ProductID, product.UserID)
	}
	return err
}

func upsertProduct(tx *gorm.DB, product *models.Product) error {
	var existing models.Product
	err := tx.Where("user_id = ? AND product_id = ?", product.UserID, product.ProductID).First(&existing).Error
	switch {
	case err == nil:
		product.ID = existing.ID
		return tx.Save(product).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		product.ID = 0
		return tx.Create(product).Error
	default:
		return err
	}
}

// Update saves the product under its existing id.
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	if product.ID == 0 {
		return models.NewDataValidationError("Update called with empty ID field")
	}
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, product.ID).Error
}

// Find returns the product with the given id, or nil when there is none.
func (r *GormProductRepository) Find(ctx context.Context, id uint) (*models.Product, error) {
	product, err := r.FindOrFail(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return product, err
}

func (r *GormProductRepository) FindOrFail(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByUserID(ctx context.Context, userID string) ([]models.Product, error) {
	return r.Search(ctx, userID, ProductQuery{})
}

// FindByUserAndProduct returns the product, or nil when the cart does not hold it.
func (r *GormProductRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByPriceRange(ctx context.Context, userID string, minPrice, maxPrice *float64) ([]models.Product, error) {
	return r.Search(ctx, userID, ProductQuery{MinPrice: minPrice, MaxPrice: maxPrice})
}

func (r *GormProductRepository) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	products := []models.Product{}
	if err := byID(r.db.WithContext(ctx).Where("name = ?", name)).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Search lists a user's products matching q, ordered by id unless a price
// order is requested.
func (r *GormProductRepository) Search(ctx context.Context, userID string, q ProductQuery) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}
	if q.Name != "" {
		query = query.Where("name = ?", q.Name)
	}

	switch q.Order {
	case SortPriceAsc:
		query = query.Order("price asc")
	case SortPriceDesc:
		query = query.Order("price desc")
	}

	products := []models.Product{}
	if err := byID(query).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) All(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := byID(r.db.WithContext(ctx)).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
