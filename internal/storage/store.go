// Package storage keeps item photos in a blob store addressed by slash
// separated keys.
package storage

import (
	"WhereIsIt/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	DriverFilesystem = "fs"
	DriverS3         = "s3"
)

// ErrNotExist is returned by Get when no blob is stored under the key.
var ErrNotExist = errors.New("storage: blob does not exist")

type Info struct {
	Key         string
	Size        int64
	ContentType string
}

type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Driver() string
}

func NewStore(ctx context.Context, configuration *config.Configuration) (Store, error) {
	switch strings.ToLower(configuration.Storage.Driver) {
	case DriverFilesystem:
		return NewFilesystemStore(configuration.Storage.Path)
	case DriverS3:
		return NewS3Store(ctx, configuration.Storage.S3)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", configuration.Storage.Driver)
	}
}

// ValidKey rejects keys that are empty, absolute or climb out of the store.
func ValidKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}
