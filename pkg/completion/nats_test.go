package completion_test

import (
	"context"
	"os"
	"testing"

	"github.com/fivetwenty-io/cloudres/pkg/completion"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNATSKVCache runs against a JetStream-enabled server named by
// CLOUDRES_NATS_URL.
func TestNATSKVCache(t *testing.T) {
	url := os.Getenv("CLOUDRES_NATS_URL")
	if url == "" {
		t.Skip("CLOUDRES_NATS_URL not set")
	}

	ctx := context.Background()
	bucket := "cloudres_test_" + uuid.NewString()[:8]

	cache, err := completion.NewNATSKVCache(ctx, &completion.NATSKVConfig{URL: url, Bucket: bucket})
	require.NoError(t, err)

	defer func() {
		_ = cache.Close()
	}()

	id := uuid.NewString()

	require.NoError(t, cache.Add(ctx, "servers", resource.CompletionUUID, id))
	require.NoError(t, cache.Add(ctx, "servers", resource.CompletionHumanID, "web-1"))
	require.NoError(t, cache.Add(ctx, "servers", resource.CompletionHumanID, "web-1"))

	uuids, err := cache.List(ctx, "servers", resource.CompletionUUID)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, uuids)

	humanIDs, err := cache.List(ctx, "servers", resource.CompletionHumanID)
	require.NoError(t, err)
	assert.Equal(t, []string{"web-1"}, humanIDs)

	require.NoError(t, cache.Add(ctx, "servers-old", resource.CompletionHumanID, "web-2"))
	require.NoError(t, cache.Clear(ctx, "servers"))

	others, err := cache.List(ctx, "servers-old", resource.CompletionHumanID)
	require.NoError(t, err)
	assert.Equal(t, []string{"web-2"}, others)

	uuids, err = cache.List(ctx, "servers", resource.CompletionUUID)
	require.NoError(t, err)
	assert.Empty(t, uuids)
}
