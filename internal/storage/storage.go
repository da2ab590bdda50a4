package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts the file backend used for learning resources.
type Storage interface {
	// Upload stores the content under key and returns a public URL.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)

	// Download opens the stored object for reading.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the stored object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for a stored key.
	URL(key string) string
}

// Config selects and configures a backend.
type Config struct {
	Type       string // "local", "s3" or "cloudflare_r2"
	BasePath   string // local only
	BaseURL    string
	Bucket     string
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	PublicRead bool
}

// New builds the backend named by cfg.Type.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg.BasePath, cfg.BaseURL)
	case "s3", "cloudflare_r2":
		// R2 is S3-compatible; only the endpoint differs.
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
