// Package s3 implements the storage client contract on AWS S3 and
// S3-compatible services.
package s3

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/fenceai/s3kit/pkg/credentials"
	"github.com/fenceai/s3kit/pkg/storage"
)

// Client is an S3-backed storage client.
type Client struct {
	api      *s3.Client
	uploader *manager.Uploader
}

// Build constructs a client from resolved options. It matches the
// storage.ClientBuilder signature for wiring into a factory.
func Build(ctx context.Context, opts storage.Options) (storage.Client, error) {
	return New(ctx, opts)
}

// New creates an S3 client from resolved credentials. An Endpoint in opts
// points the client at an S3-compatible service.
func New(ctx context.Context, opts storage.Options) (*Client, error) {
	ak := opts.Credentials[credentials.KeyAccessKeyID]
	sk := opts.Credentials[credentials.KeySecretAccessKey]
	if ak == "" || sk == "" {
		return nil, storage.WrapError("init", "s3", storage.ErrMissingCredentials)
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(ak, sk, opts.Credentials[credentials.KeySessionToken]),
		),
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, storage.WrapError("init", "s3", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.ForcePathStyle
	})

	return &Client{
		api:      api,
		uploader: manager.NewUploader(api),
	}, nil
}

// Upload copies a local file to bucket/key, retrying transient failures.
func (c *Client) Upload(ctx context.Context, bucket, key, sourcePath string) error {
	return storage.WithRetry(ctx, storage.DefaultRetryConfig(), func() error {
		file, err := os.Open(sourcePath)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = c.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   file,
		})
		if err != nil {
			return classify("upload", key, err)
		}
		return nil
	})
}

// Download fetches bucket/key into destPath and returns the local path.
func (c *Client) Download(ctx context.Context, bucket, key, destPath string) (string, error) {
	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", storage.WrapError("download", key, err)
		}
	}

	result, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", classify("download", key, err)
	}
	defer result.Body.Close()

	file, err := os.Create(destPath)
	if err != nil {
		return "", storage.WrapError("download", key, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, result.Body); err != nil {
		return "", storage.WrapError("download", key, err)
	}
	return destPath, nil
}

// List returns objects matching the glob pattern, newest first.
func (c *Client) List(ctx context.Context, bucket, pattern string) ([]storage.ObjectInfo, error) {
	var objects []storage.ObjectInfo

	paginator := s3.NewListObjectsV2Paginator(c.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(extractPrefix(pattern)),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, classify("list", bucket, err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !matchesGlob(key, pattern) {
				continue
			}
			objects = append(objects, storage.ObjectInfo{
				Key:     key,
				Size:    aws.ToInt64(obj.Size),
				ModTime: aws.ToTime(obj.LastModified),
			})
		}
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].ModTime.After(objects[j].ModTime)
	})

	return objects, nil
}

// Delete removes an object from S3
func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classify("delete", key, err)
	}
	return nil
}

// Exists checks if an object exists
func (c *Client) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		wrapped := classify("stat", key, err)
		if errors.Is(wrapped, storage.ErrNotFound) {
			return false, nil
		}
		return false, wrapped
	}
	return true, nil
}

// Close is a no-op for S3
func (c *Client) Close() error {
	return nil
}

// classify maps SDK errors onto the storage error taxonomy.
func classify(operation, target string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return storage.WrapError(operation, target, storage.ErrNotFound)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "Forbidden":
			return storage.WrapError(operation, target, storage.ErrAccess)
		case "RequestTimeout", "SlowDown":
			return storage.WrapError(operation, target, storage.ErrTimeout)
		}
	}
	return storage.WrapError(operation, target, err)
}

// Helper functions

func extractPrefix(pattern string) string {
	// Everything before the first wildcard narrows the server-side listing.
	if idx := strings.Index(pattern, "*"); idx >= 0 {
		return pattern[:idx]
	}
	return pattern
}

func matchesGlob(key, pattern string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(key, strings.TrimPrefix(pattern, "*"))
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(key, strings.TrimSuffix(pattern, "*"))
	}
	if strings.Contains(pattern, "*") {
		parts := strings.SplitN(pattern, "*", 2)
		return strings.HasPrefix(key, parts[0]) && strings.HasSuffix(key, parts[1])
	}
	return key == pattern
}
