package services

import (
	"strings"

	"github.com/google/uuid"
)

// SlugGenerator issues a new box slug.
type SlugGenerator func() string

// NewSlugGenerator returns random UUIDv4 strings.
func NewSlugGenerator() SlugGenerator {
	return uuid.NewString
}

// ResolveSlug keeps a caller supplied slug verbatim. Uniqueness is left to
// the store's unique index.
func ResolveSlug(requested *string, generate SlugGenerator) string {
	if requested != nil && strings.TrimSpace(*requested) != "" {
		return *requested
	}
	return generate()
}
