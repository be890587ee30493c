package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
)

// DefaultCartTTL keeps abandoned carts around longer than sessions so a
// returning shopper still finds theirs.
const DefaultCartTTL = 7 * 24 * time.Hour

// CartStore persists per-session cart state in Redis, one key per session.
type CartStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewCartStore creates a new Redis-based cart store.
func NewCartStore(client redis.UniversalClient) *CartStore {
	return &CartStore{
		client: client,
		prefix: "cart:",
		ttl:    DefaultCartTTL,
	}
}

// NewCartStoreWithOptions creates a Redis cart store with a custom key prefix
// and TTL. Zero values fall back to the defaults.
func NewCartStoreWithOptions(client redis.UniversalClient, prefix string, ttl time.Duration) *CartStore {
	if prefix == "" {
		prefix = "cart:"
	}
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *CartStore) Save(ctx context.Context, sessionID string, c domaincart.Cart) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	key := s.prefix + sessionID
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get returns the cart for the session. A missing key is an empty cart, not
// an error; the cart's initial state is empty.
func (s *CartStore) Get(ctx context.Context, sessionID string) (domaincart.Cart, error) {
	if sessionID == "" {
		return domaincart.Cart{}, errors.New("session ID cannot be empty")
	}

	key := s.prefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domaincart.Empty(), nil
		}
		return domaincart.Cart{}, fmt.Errorf("redis get: %w", err)
	}

	var c domaincart.Cart
	if unmarshalErr := json.Unmarshal([]byte(data), &c); unmarshalErr != nil {
		return domaincart.Cart{}, fmt.Errorf("unmarshal cart: %w", unmarshalErr)
	}

	return c, nil
}

func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	key := s.prefix + sessionID
	return s.client.Del(ctx, key).Err()
}
