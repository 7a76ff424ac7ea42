package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"library-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store is the file-storage boundary the catalog needs: opaque names in a
// logical bucket, nothing more.
type Store interface {
	Save(ctx context.Context, name string, data []byte, contentType string) error
	Read(ctx context.Context, name string) ([]byte, error)
	Exists(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, name string) error
}

// BucketStore implements Store over a single MinIO bucket.
type BucketStore struct {
	client *minio.Client
	bucket string
}

var _ Store = (*BucketStore)(nil)

// NewBuckets connects to MinIO and returns one store per logical bucket:
// documents (PDFs) and covers (images). Missing buckets are created.
func NewBuckets(cfg config.MinIOConfig) (documents, covers *BucketStore, err error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	for _, bucket := range []string{cfg.DocumentsBucket, cfg.CoversBucket} {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
	}

	documents = &BucketStore{client: client, bucket: cfg.DocumentsBucket}
	covers = &BucketStore{client: client, bucket: cfg.CoversBucket}
	return documents, covers, nil
}

func (s *BucketStore) Save(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		name,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

func (s *BucketStore) Read(ctx context.Context, name string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", name, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", name, err)
	}
	return data, nil
}

func (s *BucketStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object %s: %w", name, err)
	}
	return true, nil
}

func (s *BucketStore) Delete(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", name, err)
	}
	return nil
}
