package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tekimax.app/docs/core/config"
)

// Client issues presigned URLs against an S3-compatible bucket so browsers
// upload avatars and workspace logos directly.
type Client struct {
	minio     *minio.Client
	bucket    string
	uploadTTL time.Duration
	urlTTL    time.Duration
	now       func() time.Time
}

func New(cfg config.StorageConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &Client{
		minio:     mc,
		bucket:    cfg.Bucket,
		uploadTTL: cfg.UploadTTL,
		urlTTL:    cfg.URLTTL,
		now:       time.Now,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.minio.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := c.minio.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %s: %w", c.bucket, err)
	}
	slog.InfoContext(ctx, "storage bucket created", "bucket", c.bucket)
	return nil
}

func (c *Client) PresignUpload(ctx context.Context, key string) (*url.URL, time.Time, error) {
	expiresAt := c.now().Add(c.uploadTTL)
	u, err := c.minio.PresignedPutObject(ctx, c.bucket, key, c.uploadTTL)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("presigning put %s: %w", key, err)
	}
	return u, expiresAt, nil
}

func (c *Client) PresignDownload(ctx context.Context, key string) (*url.URL, error) {
	u, err := c.minio.PresignedGetObject(ctx, c.bucket, key, c.urlTTL, nil)
	if err != nil {
		return nil, fmt.Errorf("presigning get %s: %w", key, err)
	}
	return u, nil
}

func (c *Client) Remove(ctx context.Context, key string) error {
	if err := c.minio.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}
