package minio

import (
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/newsletter-server/internal/model"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr     error
	putBucket  string
	putKey     string
	putBody    string
	putSize    int64
	putOptions minioLib.PutObjectOptions
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, bucket string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeMinio) PutObject(_ context.Context, bucket, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	body, _ := io.ReadAll(r)
	f.putBucket, f.putKey, f.putBody, f.putSize, f.putOptions = bucket, key, string(body), size, opts
	return minioLib.UploadInfo{Bucket: bucket, Key: key, Size: size}, nil
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "issues")
	require.NoError(t, err)
	assert.Equal(t, "issues", c.bucket)
	assert.Empty(t, api.madeBucket)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	api := &fakeMinio{bucketExists: false}
	c, err := NewClientWithAPI(context.Background(), api, "issues")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "issues", api.madeBucket)
}

func TestNewClientWithAPI_Errors(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeMinio
	}{
		{name: "bucket check fails", api: &fakeMinio{bucketExistsErr: errors.New("boom")}},
		{name: "bucket creation fails", api: &fakeMinio{makeBucketErr: errors.New("denied")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClientWithAPI(context.Background(), tt.api, "issues")
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to ensure bucket exists")
		})
	}
}

func TestClient_Store(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "issues")
	require.NoError(t, err)

	issue, err := model.NewIssue("Issue #1", "<p>Hello</p>")
	require.NoError(t, err)

	key, err := c.Store(context.Background(), issue)
	require.NoError(t, err)

	assert.Equal(t, "issues/"+issue.ID.String()+".html", key)
	assert.Equal(t, "issues", api.putBucket)
	assert.Equal(t, key, api.putKey)
	assert.Equal(t, "<p>Hello</p>", api.putBody)
	assert.EqualValues(t, len("<p>Hello</p>"), api.putSize)
	assert.Equal(t, issueContentType, api.putOptions.ContentType)
	assert.Equal(t, issue.ID.String(), api.putOptions.UserMetadata["issue-id"])
}

func TestClient_Store_UploadError(t *testing.T) {
	api := &fakeMinio{bucketExists: true, putErr: errors.New("network down")}
	c, err := NewClientWithAPI(context.Background(), api, "issues")
	require.NoError(t, err)

	issue, err := model.NewIssue("Issue #1", "<p>Hello</p>")
	require.NoError(t, err)

	key, err := c.Store(context.Background(), issue)
	require.Error(t, err)
	assert.Empty(t, key)
	assert.Contains(t, err.Error(), "failed to upload issue")
}
