package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// BatchUploader uploads multiple local files to one client in parallel with
// bounded concurrency.
type BatchUploader struct {
	logger        zerolog.Logger
	maxConcurrent int
}

// NewBatchUploader creates a batch uploader. maxConcurrent caps in-flight
// uploads; values below 1 fall back to 3.
func NewBatchUploader(logger zerolog.Logger, maxConcurrent int) *BatchUploader {
	if maxConcurrent < 1 {
		maxConcurrent = 3
	}
	return &BatchUploader{logger: logger, maxConcurrent: maxConcurrent}
}

// Upload pushes every source path in files to its destination key in bucket.
// Failures do not stop the batch; each file gets its own Result.
func (u *BatchUploader) Upload(ctx context.Context, client Client, bucket string, files map[string]string) []Result {
	if len(files) == 0 {
		return nil
	}

	sem := semaphore.NewWeighted(int64(u.maxConcurrent))
	g, gCtx := errgroup.WithContext(ctx)
	resultsChan := make(chan Result, len(files))

	for source, key := range files {
		source, key := source, key

		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return fmt.Errorf("failed to acquire semaphore: %w", err)
			}
			defer sem.Release(1)

			start := time.Now()

			u.logger.Debug().
				Str("source", source).
				Str("key", key).
				Msg("starting upload")

			err := client.Upload(gCtx, bucket, key, source)
			duration := time.Since(start)

			resultsChan <- Result{
				Source:   source,
				Key:      key,
				Success:  err == nil,
				Error:    err,
				Duration: duration,
			}

			if err != nil {
				u.logger.Error().
					Err(err).
					Str("key", key).
					Dur("duration", duration).
					Msg("upload failed")
			} else {
				u.logger.Info().
					Str("key", key).
					Dur("duration", duration).
					Msg("upload succeeded")
			}

			return nil
		})
	}

	// Upload errors are reported per file, never through the group.
	_ = g.Wait()
	close(resultsChan)

	var results []Result
	for result := range resultsChan {
		results = append(results, result)
	}

	return results
}
