package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	"github.com/tradeport/tradeport-ui-api/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testutil.NewAuthenticatedSession("test-session-1")

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.True(t, retrieved.IsAuthenticated)
	assert.Equal(t, session.Token, retrieved.Token)
	require.NotNil(t, retrieved.User)
	assert.Equal(t, session.User.Email, retrieved.User.Email)
	assert.Equal(t, domainauth.RoleRetailer, retrieved.User.Role)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	_, err := store.Get(ctx, "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_EmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	err := store.Save(ctx, domainauth.Session{})
	assert.Error(t, err)

	_, err = store.Get(ctx, "")
	assert.Equal(t, ErrNotFound, err)

	assert.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testutil.NewAuthenticatedSession("test-session-delete")

	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID))

	_, err := store.Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_TTLApplied(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithOptions(client, "session:", time.Minute)
	ctx := context.Background()

	session := testutil.NewAuthenticatedSession("test-session-ttl")
	require.NoError(t, store.Save(ctx, session))

	ttl, err := client.TTL(ctx, "session:"+session.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}
