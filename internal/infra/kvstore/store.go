package kvstore

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Store is a per-visitor key-value namespace. Values are opaque bytes; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, visitorID uuid.UUID, key string) ([]byte, bool, error)
	Set(ctx context.Context, visitorID uuid.UUID, key string, value []byte) error
	Delete(ctx context.Context, visitorID uuid.UUID, key string) error
}

func namespacedKey(prefix string, visitorID uuid.UUID, key string) string {
	parts := []string{visitorID.String(), key}
	if prefix != "" {
		parts = append([]string{prefix}, parts...)
	}
	return strings.Join(parts, ":")
}
