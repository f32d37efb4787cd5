package routes_test

import (
	"context"
	"sort"
	"sync"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/repository"
)

// memoryStore backs both repositories with plain slices so the HTTP tests can
// run the real services without a database.
type memoryStore struct {
	mu       sync.Mutex
	seq      uint
	carts    []models.Shopcart
	products []models.Product
}

func (s *memoryStore) productsOf(userID string) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

func (s *memoryStore) upsert(product *models.Product) {
	for i, p := range s.products {
		if p.UserID == product.UserID && p.ProductID == product.ProductID {
			product.ID = p.ID
			s.products[i] = *product
			return
		}
	}
	s.seq++
	product.ID = s.seq
	s.products = append(s.products, *product)
}

func (s *memoryStore) dropProducts(userID string) {
	kept := s.products[:0]
	for _, p := range s.products {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	s.products = kept
}

type memoryShopcarts struct{ s *memoryStore }

func (r memoryShopcarts) Create(_ context.Context, cart *models.Shopcart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cart.UserID == "" {
		return models.NewDataValidationError("Create called with empty user_id field")
	}
	for _, c := range r.s.carts {
		if c.UserID == cart.UserID {
			return models.NewDataValidationError("Shopcart %s already exists", cart.UserID)
		}
	}
	r.s.seq++
	cart.ID = r.s.seq
	r.s.carts = append(r.s.carts, models.Shopcart{ID: cart.ID, UserID: cart.UserID})
	for i := range cart.Products {
		cart.Products[i].UserID = cart.UserID
		r.s.upsert(&cart.Products[i])
	}
	cart.Products = r.s.productsOf(cart.UserID)
	return nil
}

func (r memoryShopcarts) Update(_ context.Context, cart *models.Shopcart) error {
	if cart.ID == 0 {
		return models.NewDataValidationError("Update called with empty ID field")
	}
	return nil
}

func (r memoryShopcarts) Delete(_ context.Context, cart *models.Shopcart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dropProducts(cart.UserID)
	kept := r.s.carts[:0]
	for _, c := range r.s.carts {
		if c.UserID != cart.UserID {
			kept = append(kept, c)
		}
	}
	r.s.carts = kept
	return nil
}

func (r memoryShopcarts) Find(ctx context.Context, id uint) (*models.Shopcart, error) {
	cart, err := r.FindOrFail(ctx, id)
	if err == repository.ErrNotFound {
		return nil, nil
	}
	return cart, err
}

func (r memoryShopcarts) FindOrFail(_ context.Context, id uint) (*models.Shopcart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.carts {
		if c.ID == id {
			c.Products = r.s.productsOf(c.UserID)
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memoryShopcarts) FindByUserID(_ context.Context, userID string) (*models.Shopcart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.carts {
		if c.UserID == userID {
			c.Products = r.s.productsOf(c.UserID)
			return &c, nil
		}
	}
	return nil, nil
}

func (r memoryShopcarts) All(_ context.Context) ([]models.Shopcart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Shopcart, 0, len(r.s.carts))
	for _, c := range r.s.carts {
		c.Products = r.s.productsOf(c.UserID)
		out = append(out, c)
	}
	return out, nil
}

func (r memoryShopcarts) Empty(_ context.Context, cart *models.Shopcart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dropProducts(cart.UserID)
	cart.Products = []models.Product{}
	return nil
}

func (r memoryShopcarts) ReplaceProducts(_ context.Context, cart *models.Shopcart, products []models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dropProducts(cart.UserID)
	for i := range products {
		products[i].UserID = cart.UserID
		r.s.upsert(&products[i])
	}
	cart.Products = r.s.productsOf(cart.UserID)
	return nil
}

type memoryProducts struct{ s *memoryStore }

func (r memoryProducts) Create(_ context.Context, product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.upsert(product)
	return nil
}

func (r memoryProducts) Update(_ context.Context, product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if product.ID == 0 {
		return models.NewDataValidationError("Update called with empty ID field")
	}
	for i, p := range r.s.products {
		if p.ID == product.ID {
			r.s.products[i] = *product
		}
	}
	return nil
}

func (r memoryProducts) Delete(_ context.Context, product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.products[:0]
	for _, p := range r.s.products {
		if p.ID != product.ID {
			kept = append(kept, p)
		}
	}
	r.s.products = kept
	return nil
}

func (r memoryProducts) Find(ctx context.Context, id uint) (*models.Product, error) {
	product, err := r.FindOrFail(ctx, id)
	if err == repository.ErrNotFound {
		return nil, nil
	}
	return product, err
}

func (r memoryProducts) FindOrFail(_ context.Context, id uint) (*models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memoryProducts) FindByUserID(ctx context.Context, userID string) ([]models.Product, error) {
	return r.Search(ctx, userID, repository.ProductQuery{})
}

func (r memoryProducts) FindByUserAndProduct(_ context.Context, userID, productID string) (*models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.UserID == userID && p.ProductID == productID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r memoryProducts) FindByPriceRange(ctx context.Context, userID string, minPrice, maxPrice *float64) ([]models.Product, error) {
	return r.Search(ctx, userID, repository.ProductQuery{MinPrice: minPrice, MaxPrice: maxPrice})
}

func (r memoryProducts) FindByName(_ context.Context, name string) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Product{}
	for _, p := range r.s.products {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memoryProducts) Search(_ context.Context, userID string, q repository.ProductQuery) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Product{}
	for _, p := range r.s.productsOf(userID) {
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if q.Name != "" && p.Name != q.Name {
			continue
		}
		out = append(out, p)
	}
	switch q.Order {
	case repository.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case repository.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out, nil
}

func (r memoryProducts) All(_ context.Context) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]models.Product{}, r.s.products...), nil
}
