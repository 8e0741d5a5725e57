package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fdrates/internal/domain"
	"fdrates/pkg/errcodes"
)

// FingerprintStore remembers the digest of the last successfully ingested
// payload per source, so unchanged feeds skip the table rewrite.
type FingerprintStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFingerprintStore(client *redis.Client, ttl time.Duration) *FingerprintStore {
	return &FingerprintStore{client: client, ttl: ttl}
}

func fingerprintKey(source string) string {
	return fmt.Sprintf("fdrates:fingerprint:%s", source)
}

// Get returns the stored digest, or "" when none is known.
func (s *FingerprintStore) Get(ctx context.Context, source string) (string, error) {
	digest, err := s.client.Get(ctx, fingerprintKey(source)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", domain.WrapError(err, errcodes.InternalServerError, "failed to get fingerprint")
	}

	return digest, nil
}

func (s *FingerprintStore) Set(ctx context.Context, source, digest string) error {
	if err := s.client.Set(ctx, fingerprintKey(source), digest, s.ttl).Err(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to set fingerprint")
	}

	return nil
}
