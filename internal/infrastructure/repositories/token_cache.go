package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

// TokenCacheImpl implements domain.TokenCache using Redis. It remembers
// the most recent access token the provider issued per account; Redis TTL
// tracks the token's own lifetime, so an expired token simply vanishes.
type TokenCacheImpl struct {
	client *redis.Client
	prefix string
}

// NewTokenCache creates a new Redis-backed token cache
func NewTokenCache(client *redis.Client) domain.TokenCache {
	return &TokenCacheImpl{
		client: client,
		prefix: "token:",
	}
}

// Store implements domain.TokenCache
func (c *TokenCacheImpl) Store(ctx context.Context, accountID uint, token string, ttl time.Duration) error {
	key := c.key(accountID)
	cached := domain.CachedToken{
		AccessToken: token,
		Expires:     time.Now().Add(ttl),
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to marshal cached token: %w", err)
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Find implements domain.TokenCache
func (c *TokenCacheImpl) Find(ctx context.Context, accountID uint) (*domain.CachedToken, error) {
	data, err := c.client.Get(ctx, c.key(accountID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNoActiveToken
		}
		return nil, err
	}

	var cached domain.CachedToken
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached token: %w", err)
	}
	return &cached, nil
}

func (c *TokenCacheImpl) key(accountID uint) string {
	return fmt.Sprintf("%s%d", c.prefix, accountID)
}
