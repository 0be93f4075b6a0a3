//go:build integration
// +build integration

package s3_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	awsCreds "github.com/aws/aws-sdk-go-v2/credentials"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"

	"github.com/fenceai/s3kit/pkg/credentials"
	"github.com/fenceai/s3kit/pkg/storage"
	"github.com/fenceai/s3kit/pkg/storage/s3"
)

func TestS3RoundTripIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, endpoint, err := setupLocalStackContainer(ctx)
	require.NoError(t, err, "Failed to start LocalStack")
	defer container.Terminate(ctx)

	const bucket = "s3kit-test"
	require.NoError(t, createBucket(ctx, endpoint, bucket))

	factory := storage.NewFactory(s3.Build,
		credentials.Mapping{
			"access_key_id":     "test",
			"secret_access_key": "test",
			"region":            "us-east-1",
		},
		storage.WithEndpoint(endpoint, true),
	)

	client, err := factory.Client(ctx, nil)
	require.NoError(t, err)
	defer client.Close()

	// Upload
	source := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello s3kit"), 0o600))
	require.NoError(t, client.Upload(ctx, bucket, "data/payload.txt", source))

	// Exists
	exists, err := client.Exists(ctx, bucket, "data/payload.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	// List
	objects, err := client.List(ctx, bucket, "data/*.txt")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "data/payload.txt", objects[0].Key)
	assert.Equal(t, int64(len("hello s3kit")), objects[0].Size)

	// Download
	dest := filepath.Join(t.TempDir(), "nested", "copy.txt")
	path, err := client.Download(ctx, bucket, "data/payload.txt", dest)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello s3kit", string(data))

	// Delete
	require.NoError(t, client.Delete(ctx, bucket, "data/payload.txt"))
	exists, err = client.Exists(ctx, bucket, "data/payload.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

// setupLocalStackContainer starts a LocalStack container with S3 service
func setupLocalStackContainer(ctx context.Context) (*localstack.LocalStackContainer, string, error) {
	container, err := localstack.RunContainer(ctx,
		testcontainers.WithImage("localstack/localstack:3.0"),
		testcontainers.WithEnv(map[string]string{
			"SERVICES": "s3",
		}),
	)
	if err != nil {
		return nil, "", err
	}

	mappedPort, err := container.MappedPort(ctx, "4566/tcp")
	if err != nil {
		container.Terminate(ctx)
		return nil, "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx)
		return nil, "", err
	}

	endpoint := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return container, endpoint, nil
}

// createBucket provisions the test bucket with the raw SDK
func createBucket(ctx context.Context, endpoint, bucket string) error {
	cfg, err := awsConfig.LoadDefaultConfig(ctx,
		awsConfig.WithRegion("us-east-1"),
		awsConfig.WithCredentialsProvider(
			awsCreds.NewStaticCredentialsProvider("test", "test", ""),
		),
	)
	if err != nil {
		return err
	}

	api := awsS3.NewFromConfig(cfg, func(o *awsS3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	_, err = api.CreateBucket(ctx, &awsS3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	return err
}
