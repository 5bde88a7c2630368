// Package storage stores product images in a gocloud.dev blob bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"kanakku/config"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/domain/service"
	"kanakku/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const defaultPrefix = "kanakku_products"

// allowedImageTypes are the accepted image formats keyed by MIME type.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// BlobStorage implements service.ImageStorage on a gocloud.dev bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	prefix        string
	publicBaseURL string
	maxBytes      int64
	logger        *slog.Logger
}

var _ service.ImageStorage = (*BlobStorage)(nil)

// Open opens the bucket named by upload.bucketUrl.
func Open(ctx context.Context, cfg *config.UploadConfig, logger *slog.Logger) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	return NewBlobStorage(bucket, cfg, logger), nil
}

// NewBlobStorage wraps an open bucket. The storage owns the bucket and closes it in Close.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.UploadConfig, logger *slog.Logger) *BlobStorage {
	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &BlobStorage{
		bucket:        bucket,
		prefix:        prefix,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:      cfg.MaxBytes,
		logger:        logger,
	}
}

// Save sniffs the content type, enforces the size bound and writes the image
// under <prefix>/<userID>/. It returns the public URL when one is configured,
// the object key otherwise.
func (s *BlobStorage) Save(ctx context.Context, userID, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}

	switch {
	case len(data) == 0:
		return "", errors.WithStack(domainerrors.ErrImageRejected.WithDetails("image is empty"))
	case int64(len(data)) > s.maxBytes:
		return "", errors.WithStack(domainerrors.ErrImageRejected.WithDetails(
			fmt.Sprintf("image exceeds %s", util.FormatBytes(s.maxBytes))))
	}

	mt := mimetype.Detect(data)
	if _, ok := allowedImageTypes[mt.String()]; !ok {
		return "", errors.WithStack(domainerrors.ErrImageRejected.WithDetails(
			fmt.Sprintf("unsupported image type %s, expected jpg, png or webp", mt.String())))
	}

	key := s.objectKey(userID, mt.Extension())
	opts := &blob.WriterOptions{
		ContentType: mt.String(),
		Metadata:    map[string]string{"filename": path.Base(filename)},
	}
	if err := s.bucket.Upload(ctx, key, bytes.NewReader(data), opts); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", key)
	}

	s.logger.Debug("Product image stored",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}

// Close closes the bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}

func (s *BlobStorage) objectKey(userID, ext string) string {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	return path.Join(s.prefix, userID, name)
}
