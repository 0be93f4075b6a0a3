// Package storage builds object storage clients from resolved credentials
// and defines the operation contract they implement.
package storage

import (
	"context"
	"time"
)

// Client represents an object storage client bound to a single service
// endpoint. Buckets are addressed per call.
type Client interface {
	// Upload copies a local file to bucket/key.
	Upload(ctx context.Context, bucket, key, sourcePath string) error

	// Download fetches bucket/key into destPath, creating parent
	// directories as needed, and returns the local path.
	Download(ctx context.Context, bucket, key, destPath string) (string, error)

	// List returns objects whose keys match the glob pattern
	// (e.g. "reports/*.json"), sorted by modification time, newest first.
	List(ctx context.Context, bucket, pattern string) ([]ObjectInfo, error)

	// Delete removes bucket/key.
	Delete(ctx context.Context, bucket, key string) error

	// Exists checks whether bucket/key is present.
	Exists(ctx context.Context, bucket, key string) (bool, error)

	// Close releases resources (connections, sessions)
	Close() error
}

// ObjectInfo represents metadata about a stored object
type ObjectInfo struct {
	Key     string    // Object key within the bucket
	Size    int64     // Size in bytes
	ModTime time.Time // Last modification time
}

// Result represents the outcome of one operation in a batch
type Result struct {
	Source   string        // Local source path
	Key      string        // Destination object key
	Success  bool
	Error    error
	Duration time.Duration
}
