package upload

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"sync/atomic"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/samara-logia/cadaster-portal/internal/config"
)

// MinIOStore keeps documents in an object-storage bucket for deployments
// where the portal does not own local disk. Same naming scheme as DiskStore.
type MinIOStore struct {
	client *minio.Client
	bucket string
	seq    atomic.Uint64
}

// NewMinIOStore creates the client and ensures the bucket exists.
func NewMinIOStore(cfg config.MinIOConfig) (*MinIOStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &MinIOStore{client: mc, bucket: cfg.Bucket}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

var _ DocumentStore = (*MinIOStore)(nil)

func (s *MinIOStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	key := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), s.seq.Add(1), sanitizeName(originalName))
	_, err := s.client.PutObject(ctx, s.bucket, key, r, -1, minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", &Error{Err: err}
	}
	return path.Join(s.bucket, key), nil
}

func (s *MinIOStore) Remove(ctx context.Context, storedPath string) error {
	if storedPath == "" {
		return nil
	}
	return s.client.RemoveObject(ctx, s.bucket, path.Base(storedPath), minio.RemoveObjectOptions{})
}

// PresignedURL returns a presigned GET URL so office staff can fetch a
// document without bucket credentials.
func (s *MinIOStore) PresignedURL(ctx context.Context, storedPath string, expires time.Duration) (string, error) {
	reqParams := make(url.Values)
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, path.Base(storedPath), expires, reqParams)
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
