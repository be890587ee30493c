package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	"github.com/tradeport/tradeport-ui-api/internal/testutil"
)

func TestCartStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCartStore(client)
	ctx := context.Background()

	c := domaincart.Add(domaincart.Empty(), testutil.NewProduct("p1", 10))
	c = domaincart.Add(c, testutil.NewProduct("p2", 25))

	require.NoError(t, store.Save(ctx, "sess-1", c))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, c.Items, got.Items)
}

func TestCartStore_MissingKeyIsEmptyCart(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCartStore(client)
	ctx := context.Background()

	got, err := store.Get(ctx, "never-saved")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCartStore(client)
	ctx := context.Background()

	c := domaincart.Add(domaincart.Empty(), testutil.NewProduct("p1", 10))
	require.NoError(t, store.Save(ctx, "sess-del", c))
	require.NoError(t, store.Delete(ctx, "sess-del"))

	got, err := store.Get(ctx, "sess-del")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartStore_EmptySessionID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCartStore(client)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", domaincart.Empty()))
	_, err := store.Get(ctx, "")
	assert.Error(t, err)
	assert.NoError(t, store.Delete(ctx, ""))
}
