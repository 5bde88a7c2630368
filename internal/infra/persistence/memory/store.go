// Package memory provides an in-process ledger store. It backs local runs with
// store.driver=memory and the usecase tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"kanakku/internal/domain/constants"
	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned by Commit when an update targets a missing document.
var ErrDocumentNotFound = errors.New("document not found")

// Store keeps every collection in maps guarded by a single mutex. Lists are
// returned in insertion order.
type Store struct {
	mu sync.RWMutex

	maxOps int

	shops        map[string]*entity.Shop
	shopOrder    []string
	products     map[string]*entity.Product
	productOrder []string
	txns         map[string]*entity.Transaction
	txnOrder     []string
	profiles     map[string]*entity.Profile

	commits    []int
	failCommit int
	failErr    error
}

// Option configures a Store.
type Option func(*Store)

// WithMaxOperations sets the per-commit operation bound.
func WithMaxOperations(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxOps = n
		}
	}
}

// NewStore creates an empty store with the Firestore batch bound unless overridden.
func NewStore(opts ...Option) *Store {
	s := &Store{
		maxOps:   constants.FirestoreMaxBatchOperations,
		shops:    make(map[string]*entity.Shop),
		products: make(map[string]*entity.Product),
		txns:     make(map[string]*entity.Transaction),
		profiles: make(map[string]*entity.Profile),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FailCommit makes the n-th following Commit (1-based) return err without writing.
func (s *Store) FailCommit(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failCommit = len(s.commits) + n
	s.failErr = err
}

// CommittedBatchSizes returns the size of every successful commit in order.
func (s *Store) CommittedBatchSizes() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.commits)
}

// Close implements the store lifecycle; there is nothing to release.
func (s *Store) Close() error {
	return nil
}

// MaxOperations implements repository.BatchWriter.
func (s *Store) MaxOperations() int {
	return s.maxOps
}

// Commit implements repository.BatchWriter. The batch is validated before any
// write so it applies entirely or not at all.
func (s *Store) Commit(ctx context.Context, batch *repository.Batch) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if batch.Len() > s.maxOps {
		return errors.Wrapf(repository.ErrBatchTooLarge, "%d > %d", batch.Len(), s.maxOps)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil && len(s.commits)+1 == s.failCommit {
		err := s.failErr
		s.failCommit, s.failErr = 0, nil

		return err
	}

	for _, op := range batch.Ops() {
		if op.Kind == repository.OpDeactivate && !s.exists(op.Collection, op.ID) {
			return errors.Wrapf(ErrDocumentNotFound, "%s/%s", op.Collection, op.ID)
		}
	}
	for _, op := range batch.Ops() {
		switch op.Kind {
		case repository.OpDeactivate:
			s.deactivate(op.Collection, op.ID)
		case repository.OpDelete:
			s.delete(op.Collection, op.ID)
		}
	}
	s.commits = append(s.commits, batch.Len())

	return nil
}

func (s *Store) exists(collection entity.Collection, id string) bool {
	switch collection {
	case entity.CollectionShops:
		_, ok := s.shops[id]

		return ok
	case entity.CollectionProducts:
		_, ok := s.products[id]

		return ok
	case entity.CollectionTransactions:
		_, ok := s.txns[id]

		return ok
	case entity.CollectionUsers:
		_, ok := s.profiles[id]

		return ok
	}

	return false
}

func (s *Store) deactivate(collection entity.Collection, id string) {
	switch collection {
	case entity.CollectionShops:
		s.shops[id].IsActive = false
	case entity.CollectionProducts:
		s.products[id].IsActive = false
	case entity.CollectionTransactions:
		s.txns[id].IsActive = false
	}
}

func (s *Store) delete(collection entity.Collection, id string) {
	switch collection {
	case entity.CollectionShops:
		if _, ok := s.shops[id]; ok {
			delete(s.shops, id)
			s.shopOrder = removeID(s.shopOrder, id)
		}
	case entity.CollectionProducts:
		if _, ok := s.products[id]; ok {
			delete(s.products, id)
			s.productOrder = removeID(s.productOrder, id)
		}
	case entity.CollectionTransactions:
		if _, ok := s.txns[id]; ok {
			delete(s.txns, id)
			s.txnOrder = removeID(s.txnOrder, id)
		}
	case entity.CollectionUsers:
		delete(s.profiles, id)
	}
}

func removeID(order []string, id string) []string {
	return slices.DeleteFunc(order, func(v string) bool { return v == id })
}

func newID() string {
	return uuid.NewString()
}

var (
	_ repository.ShopRepository        = (*Store)(nil)
	_ repository.ProductRepository     = (*Store)(nil)
	_ repository.TransactionRepository = (*Store)(nil)
	_ repository.ProfileRepository     = (*Store)(nil)
	_ repository.BatchWriter           = (*Store)(nil)
)
