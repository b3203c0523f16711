package minio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/dtroode/newsletter-server/internal/model"
)

const issueContentType = "text/html; charset=utf-8"

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

var _ model.IssueArchive = (*Client)(nil)

// Client archives published issues in a MinIO bucket.
type Client struct {
	api    minioAPI
	bucket string
}

// NewClient creates a new MinIO archive client using a real *minio.Client instance.
func NewClient(ctx context.Context, client *minio.Client, bucket string) (*Client, error) {
	return NewClientWithAPI(ctx, client, bucket)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket string) (*Client, error) {
	c := &Client{
		api:    api,
		bucket: bucket,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Store uploads the issue HTML under issues/{id}.html and returns the object key.
func (c *Client) Store(ctx context.Context, issue model.Issue) (string, error) {
	key := IssueKey(issue)
	content := strings.NewReader(issue.HTMLContent)

	_, err := c.api.PutObject(ctx, c.bucket, key, content, content.Size(), minio.PutObjectOptions{
		ContentType: issueContentType,
		UserMetadata: map[string]string{
			"issue-id":     issue.ID.String(),
			"published-at": issue.PublishedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload issue %s: %w", issue.ID, err)
	}

	return key, nil
}

// IssueKey returns the object key of an archived issue.
func IssueKey(issue model.Issue) string {
	return "issues/" + issue.ID.String() + ".html"
}
