package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hirelane/invoices/internal/entity"
	"github.com/hirelane/invoices/pkg/config"
)

// Client wraps the MinIO SDK: bucket lifecycle with templated access
// policies, uploads and presigned download URLs. Every underlying failure
// is wrapped as entity.ErrStorage with its cause.
type Client struct {
	mc     *minio.Client
	region string
}

func NewClient(cfg config.S3) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("new minio client: %w", err)
	}

	return &Client{
		mc:     mc,
		region: cfg.Region,
	}, nil
}

func (c *Client) BucketExists(ctx context.Context, name string) (bool, error) {
	exists, err := c.mc.BucketExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("%w: bucket exists %q: %s", entity.ErrStorage, name, err)
	}

	return exists, nil
}

// CreateBucket makes the bucket and applies the visibility policy. It is
// not idempotent: callers go through EnsureBucket.
func (c *Client) CreateBucket(ctx context.Context, name string, public bool) error {
	err := c.mc.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: c.region})
	if err != nil {
		return fmt.Errorf("%w: make bucket %q: %s", entity.ErrStorage, name, err)
	}

	policy, err := bucketPolicyJSON(name, public)
	if err != nil {
		return err
	}

	err = c.mc.SetBucketPolicy(ctx, name, policy)
	if err != nil {
		return fmt.Errorf("%w: set policy on bucket %q: %s", entity.ErrStorage, name, err)
	}

	return nil
}

func (c *Client) EnsureBucket(ctx context.Context, name string, public bool) error {
	exists, err := c.BucketExists(ctx, name)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return c.CreateBucket(ctx, name, public)
}

func (c *Client) Upload(ctx context.Context, bucket, key, filePath, contentType string, public bool) error {
	slog.InfoContext(ctx, "uploading object", "bucket", bucket, "key", key)

	err := c.EnsureBucket(ctx, bucket, public)
	if err != nil {
		return err
	}

	_, err = c.mc.FPutObject(ctx, bucket, key, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("%w: put object %s/%s: %s", entity.ErrStorage, bucket, key, err)
	}

	slog.InfoContext(ctx, "object uploaded", "bucket", bucket, "key", key)

	return nil
}

func (c *Client) PresignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	u, err := c.mc.PresignedGetObject(ctx, bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("%w: presign %s/%s: %s", entity.ErrStorage, bucket, key, err)
	}

	return u.String(), nil
}

func (c *Client) RemoveObject(ctx context.Context, bucket, key string) error {
	err := c.mc.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: remove object %s/%s: %s", entity.ErrStorage, bucket, key, err)
	}

	return nil
}
