package firestore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"kanakku/internal/domain/entity"

	fs "cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const countAlias = "count"

// Store wraps the Firestore client shared by the ledger repositories.
type Store struct {
	client *fs.Client
}

// NewStore wraps an open Firestore client. The store owns the client and
// closes it in Close.
func NewStore(client *fs.Client) *Store {
	return &Store{client: client}
}

// Close releases the Firestore client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) collection(c entity.Collection) *fs.CollectionRef {
	return s.client.Collection(string(c))
}

// getData reads one document. ok is false when the document does not exist.
func (s *Store) getData(ctx context.Context, c entity.Collection, id string) (data map[string]any, ok bool, err error) {
	if id == "" {
		return nil, false, nil
	}

	snap, err := s.collection(c).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to get %s/%s", c, id)
	}

	return snap.Data(), true, nil
}

// create inserts data under an auto-generated document ID.
func (s *Store) create(ctx context.Context, c entity.Collection, data map[string]any) (string, error) {
	ref := s.collection(c).NewDoc()
	if _, err := ref.Create(ctx, data); err != nil {
		return "", errors.Wrapf(err, "failed to create %s document", c)
	}

	return ref.ID, nil
}

// upsert merges data into the document at id, creating it when absent.
func (s *Store) upsert(ctx context.Context, c entity.Collection, id string, data map[string]any) error {
	if _, err := s.collection(c).Doc(id).Set(ctx, data, fs.MergeAll); err != nil {
		return errors.Wrapf(err, "failed to upsert %s/%s", c, id)
	}

	return nil
}

// update applies field updates. notFound is returned when the document is missing.
func (s *Store) update(ctx context.Context, c entity.Collection, id string, updates []fs.Update, notFound error) error {
	if len(updates) == 0 {
		return nil
	}

	if _, err := s.collection(c).Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return errors.WithStack(notFound)
		}

		return errors.Wrapf(err, "failed to update %s/%s", c, id)
	}

	return nil
}

// each iterates the query results.
func each(ctx context.Context, q fs.Query, fn func(*fs.DocumentSnapshot)) error {
	iter := q.Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to iterate query")
		}
		fn(snap)
	}
}

// ids lists the document IDs matching the query without reading any field.
func ids(ctx context.Context, q fs.Query) ([]string, error) {
	result := make([]string, 0)
	err := each(ctx, q.Select(), func(snap *fs.DocumentSnapshot) {
		result = append(result, snap.Ref.ID)
	})

	return result, err
}

// count runs a server-side count aggregation.
func count(ctx context.Context, q fs.Query) (int64, error) {
	res, err := q.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count documents")
	}

	v, ok := res[countAlias].(*firestorepb.Value)
	if !ok {
		return 0, errors.Errorf("unexpected count result %T", res[countAlias])
	}

	return v.GetIntegerValue(), nil
}

// activeByUser selects active documents of a user, optionally within one shop.
func (s *Store) activeByUser(c entity.Collection, userID, shopID string) fs.Query {
	q := s.collection(c).
		Where(fieldUserID, "==", userID).
		Where(fieldIsActive, "==", true)
	if shopID != "" {
		q = q.Where(fieldShopID, "==", shopID)
	}

	return q
}

func sortByCreatedAt[T any](items []T, createdAt func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(createdAt(a).UnixNano(), createdAt(b).UnixNano())
	})
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}
