package memory

import (
	"context"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"

	"github.com/pkg/errors"
)

// CreateTransaction implements repository.TransactionRepository.
func (s *Store) CreateTransaction(_ context.Context, txn *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn.ID = newID()
	s.putTransaction(txn)

	return nil
}

// UpsertTransaction implements repository.TransactionRepository.
func (s *Store) UpsertTransaction(_ context.Context, txn *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putTransaction(txn)

	return nil
}

func (s *Store) putTransaction(txn *entity.Transaction) {
	if _, ok := s.txns[txn.ID]; !ok {
		s.txnOrder = append(s.txnOrder, txn.ID)
	}
	stored := *txn
	s.txns[txn.ID] = &stored
}

// PutRawTransaction stores a transaction as-is, bypassing type normalization.
// It seeds documents written by older clients.
func (s *Store) PutRawTransaction(txn *entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putTransaction(txn)
}

// FindTransactionByID implements repository.TransactionRepository.
func (s *Store) FindTransactionByID(_ context.Context, id string) (*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txn, ok := s.txns[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrTransactionNotFound)
	}
	found := *txn

	return &found, nil
}

func (s *Store) matchActive(filter entity.TransactionFilter) []*entity.Transaction {
	txns := make([]*entity.Transaction, 0)
	for _, id := range s.txnOrder {
		txn := s.txns[id]
		if txn.UserID != filter.UserID || !txn.IsActive {
			continue
		}
		if filter.ShopID != "" && txn.ShopID != filter.ShopID {
			continue
		}
		txns = append(txns, txn)
	}

	return txns
}

// FindActiveTransactions implements repository.TransactionRepository.
func (s *Store) FindActiveTransactions(_ context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matchActive(filter)
	txns := make([]*entity.Transaction, 0, len(matched))
	for _, txn := range matched {
		found := *txn
		txns = append(txns, &found)
	}

	return txns, nil
}

// FindActiveTransactionAmounts implements repository.TransactionRepository.
func (s *Store) FindActiveTransactionAmounts(_ context.Context, filter entity.TransactionFilter) ([]entity.TransactionAmount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matchActive(filter)
	amounts := make([]entity.TransactionAmount, 0, len(matched))
	for _, txn := range matched {
		amounts = append(amounts, entity.TransactionAmount{Amount: txn.Amount, Type: txn.Type})
	}

	return amounts, nil
}

func (s *Store) transactionIDs(match func(*entity.Transaction) bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for _, id := range s.txnOrder {
		if match(s.txns[id]) {
			ids = append(ids, id)
		}
	}

	return ids
}

// FindTransactionIDsByShop implements repository.TransactionRepository.
func (s *Store) FindTransactionIDsByShop(_ context.Context, userID, shopID string) ([]string, error) {
	return s.transactionIDs(func(txn *entity.Transaction) bool {
		return txn.UserID == userID && txn.ShopID == shopID
	}), nil
}

// FindTransactionIDsByRelatedProduct implements repository.TransactionRepository.
func (s *Store) FindTransactionIDsByRelatedProduct(_ context.Context, userID, productID string) ([]string, error) {
	return s.transactionIDs(func(txn *entity.Transaction) bool {
		return txn.UserID == userID && txn.RelatedProductID == productID
	}), nil
}

// FindTransactionIDsByUser implements repository.TransactionRepository.
func (s *Store) FindTransactionIDsByUser(_ context.Context, userID string) ([]string, error) {
	return s.transactionIDs(func(txn *entity.Transaction) bool {
		return txn.UserID == userID
	}), nil
}
