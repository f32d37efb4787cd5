package services

import (
	"context"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/repository"
	"go.uber.org/zap"
)

// ShopcartService defines the shopcart business operations.
type ShopcartService interface {
	List(ctx context.Context, userID string) ([]models.Shopcart, error)
	Get(ctx context.Context, userID string) (*models.Shopcart, error)
	Create(ctx context.Context, cart *models.Shopcart) (*models.Shopcart, error)
	Replace(ctx context.Context, userID string, products []models.Product) (*models.Shopcart, error)
	Delete(ctx context.Context, userID string) error
	Empty(ctx context.Context, userID string) (*models.Shopcart, error)
}

type shopcartServiceImpl struct {
	carts  repository.ShopcartRepository
	logger *zap.Logger
}

// NewShopcartService creates a new ShopcartService.
func NewShopcartService(carts repository.ShopcartRepository, logger *zap.Logger) ShopcartService {
	return &shopcartServiceImpl{carts: carts, logger: logger}
}

// List returns every shopcart, or only the one of userID when it is set.
func (s *shopcartServiceImpl) List(ctx context.Context, userID string) ([]models.Shopcart, error) {
	if userID == "" {
		carts, err := s.carts.All(ctx)
		if err != nil {
			return nil, storeError(s.logger, "Failed to fetch shopcarts", err)
		}
		return carts, nil
	}

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storeError(s.logger, "Failed to fetch shopcarts", err)
	}
	if cart == nil {
		return []models.Shopcart{}, nil
	}
	return []models.Shopcart{*cart}, nil
}

func (s *shopcartServiceImpl) Get(ctx context.Context, userID string) (*models.Shopcart, error) {
	cart, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, notFound("Shopcart with id '%s' was not found.", userID)
	}
	return cart, nil
}

// Create stores a new shopcart. A second shopcart for the same user is a conflict.
func (s *shopcartServiceImpl) Create(ctx context.Context, cart *models.Shopcart) (*models.Shopcart, error) {
	existing, err := s.find(ctx, cart.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflict("Shopcart %s already exists", cart.UserID)
	}

	if err := s.carts.Create(ctx, cart); err != nil {
		// A concurrent create for the same user may have won since the check above.
		if winner, findErr := s.carts.FindByUserID(ctx, cart.UserID); findErr == nil && winner != nil {
			return nil, conflict("Shopcart %s already exists", cart.UserID)
		}
		return nil, storeError(s.logger, "Failed to create shopcart", err)
	}
	s.logger.Info("Shopcart created", zap.String("user_id", cart.UserID), zap.Uint("id", cart.ID))
	return cart, nil
}

// Replace swaps all products of the user's shopcart for the given ones.
func (s *shopcartServiceImpl) Replace(ctx context.Context, userID string, products []models.Product) (*models.Shopcart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.ReplaceProducts(ctx, cart, products); err != nil {
		return nil, storeError(s.logger, "Failed to update shopcart", err)
	}
	s.logger.Info("Shopcart products replaced", zap.String("user_id", userID), zap.Int("products", len(cart.Products)))
	return cart, nil
}

// Delete removes the shopcart and its products. Deleting a missing shopcart succeeds.
func (s *shopcartServiceImpl) Delete(ctx context.Context, userID string) error {
	cart, err := s.find(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	if err := s.carts.Delete(ctx, cart); err != nil {
		return storeError(s.logger, "Failed to delete shopcart", err)
	}
	s.logger.Info("Shopcart deleted", zap.String("user_id", userID))
	return nil
}

// Empty removes every product and returns the now empty shopcart.
func (s *shopcartServiceImpl) Empty(ctx context.Context, userID string) (*models.Shopcart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.Empty(ctx, cart); err != nil {
		return nil, storeError(s.logger, "Failed to empty shopcart", err)
	}
	s.logger.Info("Shopcart emptied", zap.String("user_id", userID))
	return cart, nil
}

func (s *shopcartServiceImpl) find(ctx context.Context, userID string) (*models.Shopcart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storeError(s.logger, "Failed to fetch shopcart", err)
	}
	return cart, nil
}
