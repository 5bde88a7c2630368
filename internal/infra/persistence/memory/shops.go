package memory

import (
	"context"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"

	"github.com/pkg/errors"
)

// CreateShop implements repository.ShopRepository.
func (s *Store) CreateShop(_ context.Context, shop *entity.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop.ID = newID()
	s.putShop(shop)

	return nil
}

// UpsertShop implements repository.ShopRepository.
func (s *Store) UpsertShop(_ context.Context, shop *entity.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putShop(shop)

	return nil
}

func (s *Store) putShop(shop *entity.Shop) {
	if _, ok := s.shops[shop.ID]; !ok {
		s.shopOrder = append(s.shopOrder, shop.ID)
	}
	stored := *shop
	s.shops[shop.ID] = &stored
}

// FindShopByID implements repository.ShopRepository.
func (s *Store) FindShopByID(_ context.Context, id string) (*entity.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shop, ok := s.shops[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrShopNotFound)
	}
	found := *shop

	return &found, nil
}

// FindActiveShopsByUser implements repository.ShopRepository.
func (s *Store) FindActiveShopsByUser(_ context.Context, userID string) ([]*entity.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shops := make([]*entity.Shop, 0)
	for _, id := range s.shopOrder {
		shop := s.shops[id]
		if shop.UserID == userID && shop.IsActive {
			found := *shop
			shops = append(shops, &found)
		}
	}

	return shops, nil
}

// CountActiveShopsByUser implements repository.ShopRepository.
func (s *Store) CountActiveShopsByUser(ctx context.Context, userID string) (int64, error) {
	shops, err := s.FindActiveShopsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	return int64(len(shops)), nil
}

// FindShopIDsByUser implements repository.ShopRepository.
func (s *Store) FindShopIDsByUser(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for _, id := range s.shopOrder {
		if s.shops[id].UserID == userID {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// UpdateShop implements repository.ShopRepository.
func (s *Store) UpdateShop(_ context.Context, id string, patch *entity.ShopPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[id]
	if !ok {
		return errors.WithStack(repository.ErrShopNotFound)
	}
	patch.Apply(shop)

	return nil
}
