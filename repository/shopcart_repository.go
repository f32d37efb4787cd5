package repository

import (
	"context"
	"errors"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShopcartRepository defines data-access operations for shopcarts.
type ShopcartRepository interface {
	Create(ctx context.Context, cart *models.Shopcart) error
	Update(ctx context.Context, cart *models.Shopcart) error
	Delete(ctx context.Context, cart *models.Shopcart) error
	Find(ctx context.Context, id uint) (*models.Shopcart, error)
	FindOrFail(ctx context.Context, id uint) (*models.Shopcart, error)
	FindByUserID(ctx context.Context, userID string) (*models.Shopcart, error)
	All(ctx context.Context) ([]models.Shopcart, error)
	Empty(ctx context.Context, cart *models.Shopcart) error
	ReplaceProducts(ctx context.Context, cart *models.Shopcart, products []models.Product) error
}

// GormShopcartRepository implements ShopcartRepository using GORM.
type GormShopcartRepository struct {
	db *gorm.DB
}

// NewGormShopcartRepository creates a new GormShopcartRepository.
func NewGormShopcartRepository(db *gorm.DB) ShopcartRepository {
	return &GormShopcartRepository{db: db}
}

// Create inserts the shopcart and upserts any products it carries, in one
// transaction. A missing or taken user_id is a validation error.
func (r *GormShopcartRepository) Create(ctx context.Context, cart *models.Shopcart) error {
	if cart.UserID == "" {
		return models.NewDataValidationError("Create called with empty user_id field")
	}

	products := cart.Products
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Shopcart{}).Where("user_id = ?", cart.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.NewDataValidationError("Shopcart %s already exists", cart.UserID)
		}

		cart.ID = 0
		if err := tx.Omit(clause.Associations).Create(cart).Error; err != nil {
			if IsDuplicateKey(err) {
				return models.NewDataValidationError("Shopcart %s already exists", cart.UserID)
			}
			return err
		}

		created := make([]models.Product, 0, len(products))
		for _, p := range products {
			p.UserID = cart.UserID
			if err := upsertProduct(tx, &p); err != nil {
				return err
			}
			created = append(created, p)
		}
		cart.Products = created
		return nil
	})
	if err != nil {
		cart.ID = 0
		cart.Products = products
	}
	return err
}

// Update saves the shopcart row. The shopcart must have been created first.
func (r *GormShopcartRepository) Update(ctx context.Context, cart *models.Shopcart) error {
	if cart.ID == 0 {
		return models.NewDataValidationError("Update called with empty ID field")
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(cart).Error
}

// Delete removes the shopcart's products and then the shopcart row.
func (r *GormShopcartRepository) Delete(ctx context.Context, cart *models.Shopcart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", cart.UserID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", cart.UserID).Delete(&models.Shopcart{}).Error
	})
}

// Find returns the shopcart with the given id, or nil when there is none.
func (r *GormShopcartRepository) Find(ctx context.Context, id uint) (*models.Shopcart, error) {
	cart, err := r.FindOrFail(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return cart, err
}

func (r *GormShopcartRepository) FindOrFail(ctx context.Context, id uint) (*models.Shopcart, error) {
	var cart models.Shopcart
	if err := r.db.WithContext(ctx).Preload("Products", byID).First(&cart, id).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindByUserID returns the user's shopcart, or nil when there is none.
func (r *GormShopcartRepository) FindByUserID(ctx context.Context, userID string) (*models.Shopcart, error) {
	var cart models.Shopcart
	err := r.db.WithContext(ctx).
		Preload("Products", byID).
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormShopcartRepository) All(ctx context.Context) ([]models.Shopcart, error) {
	carts := []models.Shopcart{}
	if err := r.db.WithContext(ctx).Preload("Products", byID).Order("id").Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// Empty deletes every product in the shopcart and leaves the shopcart row.
func (r *GormShopcartRepository) Empty(ctx context.Context, cart *models.Shopcart) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", cart.UserID).Delete(&models.Product{}).Error; err != nil {
		return err
	}
	cart.Products = []models.Product{}
	return nil
}

// ReplaceProducts swaps the shopcart's products for the given ones inside a
// single transaction, so readers never see a half-replaced cart.
func (r *GormShopcartRepository) ReplaceProducts(ctx context.Context, cart *models.Shopcart, products []models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", cart.UserID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].UserID = cart.UserID
			if err := upsertProduct(tx, &products[i]); err != nil {
				return err
			}
		}
		replaced := []models.Product{}
		if err := byID(tx.Where("user_id = ?", cart.UserID)).Find(&replaced).Error; err != nil {
			return err
		}
		cart.Products = replaced
		return nil
	})
}
