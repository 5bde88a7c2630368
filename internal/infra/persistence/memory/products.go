package memory

import (
	"context"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"

	"github.com/pkg/errors"
)

// CreateProduct implements repository.ProductRepository.
func (s *Store) CreateProduct(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = newID()
	s.putProduct(product)

	return nil
}

// UpsertProduct implements repository.ProductRepository.
func (s *Store) UpsertProduct(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putProduct(product)

	return nil
}

func (s *Store) putProduct(product *entity.Product) {
	if _, ok := s.products[product.ID]; !ok {
		s.productOrder = append(s.productOrder, product.ID)
	}
	stored := *product
	s.products[product.ID] = &stored
}

// FindProductByID implements repository.ProductRepository.
func (s *Store) FindProductByID(_ context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrProductNotFound)
	}
	found := *product

	return &found, nil
}

// FindActiveProducts implements repository.ProductRepository.
func (s *Store) FindActiveProducts(_ context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*entity.Product, 0)
	for _, id := range s.productOrder {
		product := s.products[id]
		if product.UserID != filter.UserID || !product.IsActive {
			continue
		}
		if filter.ShopID != "" && product.ShopID != filter.ShopID {
			continue
		}
		found := *product
		products = append(products, &found)
	}

	return products, nil
}

// FindProductIDsByShop implements repository.ProductRepository.
func (s *Store) FindProductIDsByShop(_ context.Context, userID, shopID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for _, id := range s.productOrder {
		product := s.products[id]
		if product.UserID == userID && product.ShopID == shopID {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// FindProductIDsByUser implements repository.ProductRepository.
func (s *Store) FindProductIDsByUser(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for _, id := range s.productOrder {
		if s.products[id].UserID == userID {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// UpdateProduct implements repository.ProductRepository.
func (s *Store) UpdateProduct(_ context.Context, id string, patch *entity.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return errors.WithStack(repository.ErrProductNotFound)
	}
	patch.Apply(product)

	return nil
}
