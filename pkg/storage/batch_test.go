package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fenceai/s3kit/pkg/storage"
	"github.com/fenceai/s3kit/pkg/storage/mocks"
)

func TestBatchUploader_Upload(t *testing.T) {
	t.Run("single_file_success", func(t *testing.T) {
		mockClient := mocks.NewMockClient(t)
		mockClient.On("Upload",
			mock.Anything,
			"bucket",
			"data/report.json",
			"/tmp/report.json",
		).Return(nil).Once()

		uploader := storage.NewBatchUploader(zerolog.Nop(), 3)

		results := uploader.Upload(context.Background(), mockClient, "bucket", map[string]string{
			"/tmp/report.json": "data/report.json",
		})

		require.Len(t, results, 1)
		assert.True(t, results[0].Success)
		assert.Equal(t, "/tmp/report.json", results[0].Source)
		assert.Equal(t, "data/report.json", results[0].Key)
		assert.NoError(t, results[0].Error)
		assert.Greater(t, results[0].Duration, time.Duration(0))
	})

	t.Run("all_files_succeed", func(t *testing.T) {
		mockClient := mocks.NewMockClient(t)
		mockClient.On("Upload",
			mock.Anything,
			"bucket",
			mock.Anything,
			mock.Anything,
		).Return(nil).Times(3)

		uploader := storage.NewBatchUploader(zerolog.Nop(), 2)

		results := uploader.Upload(context.Background(), mockClient, "bucket", map[string]string{
			"/tmp/a": "a",
			"/tmp/b": "b",
			"/tmp/c": "c",
		})

		require.Len(t, results, 3)
		for _, result := range results {
			assert.True(t, result.Success, "upload of %s should succeed", result.Key)
		}
	})

	t.Run("partial_failure", func(t *testing.T) {
		mockClient := mocks.NewMockClient(t)
		mockClient.On("Upload", mock.Anything, "bucket", "good", "/tmp/good").Return(nil).Once()
		mockClient.On("Upload", mock.Anything, "bucket", "bad", "/tmp/bad").Return(storage.ErrConnFailed).Once()

		uploader := storage.NewBatchUploader(zerolog.Nop(), 2)

		results := uploader.Upload(context.Background(), mockClient, "bucket", map[string]string{
			"/tmp/good": "good",
			"/tmp/bad":  "bad",
		})

		require.Len(t, results, 2)

		byKey := map[string]storage.Result{}
		for _, result := range results {
			byKey[result.Key] = result
		}
		assert.True(t, byKey["good"].Success)
		assert.False(t, byKey["bad"].Success)
		assert.ErrorIs(t, byKey["bad"].Error, storage.ErrConnFailed)
	})

	t.Run("empty_batch", func(t *testing.T) {
		uploader := storage.NewBatchUploader(zerolog.Nop(), 2)

		results := uploader.Upload(context.Background(), mocks.NewMockClient(t), "bucket", nil)

		assert.Nil(t, results)
	})
}
