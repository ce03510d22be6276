// Package minio stores export artifacts in an S3-compatible bucket.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Rkreels/powerbi-sub001/internal/config"
)

// BlobStore uploads objects to a MinIO bucket.
type BlobStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	log       *slog.Logger
}

// NewBlobStore connects to MinIO and makes sure the bucket exists.
func NewBlobStore(ctx context.Context, log *slog.Logger, cfg config.ExportConfig) (*BlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	b := &BlobStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicBaseURL(cfg.Endpoint, cfg.PublicEndpoint, cfg.UseSSL),
		log:       log.With("adapter", "minio"),
	}

	if err := b.ensureBucket(ctx); err != nil {
		return nil, err
	}

	b.log.InfoContext(ctx, "minio blob store initialized",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("bucket", cfg.Bucket),
	)
	return b, nil
}

func (b *BlobStore) ensureBucket(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", b.bucket, err)
	}
	if exists {
		return nil
	}

	if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", b.bucket, err)
	}
	b.log.InfoContext(ctx, "bucket created", slog.String("bucket", b.bucket))
	return nil
}

// Put uploads data under key and returns its URL.
func (b *BlobStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	info, err := b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	b.log.DebugContext(ctx, "object uploaded",
		slog.String("key", key),
		slog.Int64("size", info.Size),
	)
	return objectURL(b.publicURL, b.bucket, key), nil
}

// Ping checks that the bucket is reachable.
func (b *BlobStore) Ping(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("minio health check: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", b.bucket)
	}
	return nil
}

// publicBaseURL returns the scheme-qualified base for object URLs.
// publicEndpoint wins over endpoint; a value without a scheme gets one from useSSL.
func publicBaseURL(endpoint, publicEndpoint string, useSSL bool) string {
	base := strings.TrimSpace(publicEndpoint)
	if base == "" {
		base = endpoint
	}
	base = strings.TrimSuffix(strings.Trim(base, `"'`), "/")

	if strings.Contains(base, "://") {
		return base
	}
	if useSSL {
		return "https://" + base
	}
	return "http://" + base
}

func objectURL(base, bucket, key string) string {
	return base + "/" + bucket + "/" + (&url.URL{Path: key}).EscapedPath()
}
