package store

import (
	"strconv"

	"shopdata/pkg/domain"
)

// Products returns a copy of all products in insertion order.
func (s *DataStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product{}, s.products...)
}

// ProductByID looks up a product by ID.
func (s *DataStore) ProductByID(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.products, id, productID); i >= 0 {
		return s.products[i], true
	}
	return domain.Product{}, false
}

// CreateProduct assigns the next product id and timestamps, then persists.
func (s *DataStore) CreateProduct(in domain.ProductInput) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p := domain.Product{
		ID:          strconv.Itoa(s.counters.NextProductID),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products = append(s.products, p)
	s.counters.NextProductID++
	s.persistLocked()
	return p
}

// UpdateProduct merges patch over the product with id.
func (s *DataStore) UpdateProduct(id string, patch domain.ProductPatch) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.products, id, productID)
	if i < 0 {
		return domain.Product{}, false
	}
	p := patch.Apply(s.products[i])
	p.UpdatedAt = s.now()
	s.products[i] = p
	s.persistLocked()
	return p, true
}

// DeleteProduct removes the product with id.
func (s *DataStore) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, ok := removeByID(s.products, id, productID)
	if !ok {
		return false
	}
	s.products = products
	s.persistLocked()
	return true
}
