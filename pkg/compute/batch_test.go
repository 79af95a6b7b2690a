package compute_test

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/cloudres/pkg/compute"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadAll(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.delay = 20 * time.Millisecond

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		api.servers[id] = map[string]interface{}{"id": id, "name": id, "status": "BUILD"}
	}

	client := newClient(t, api, nil)
	ctx := context.Background()

	servers, err := client.Servers().List(ctx)
	require.NoError(t, err)
	require.Len(t, servers, 7)

	for id := range api.servers {
		api.setStatus(id, "ACTIVE")
	}

	api.peak.Store(0)

	batch := append([]*resource.Resource{servers[0], nil}, servers...)

	results, err := compute.ReloadAll(ctx, batch, 2)
	require.NoError(t, err)
	require.Len(t, results, len(batch))

	assert.Nil(t, results[1].Resource)
	assert.Same(t, servers[0], results[0].Resource)
	assert.Same(t, servers[0], results[2].Resource)

	for _, server := range servers {
		assert.Equal(t, "ACTIVE", server.Attributes()["status"])

		id, _ := server.ID()
		assert.Equal(t, 1, api.getCount("/servers/"+id.(string)))
	}

	assert.LessOrEqual(t, api.peak.Load(), int32(2))
}

func TestReloadAll_JoinsFailures(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	client := newClient(t, api, nil)
	ctx := context.Background()

	web, err := client.Servers().Get(ctx, webID)
	require.NoError(t, err)

	db, err := client.Servers().Get(ctx, dbID)
	require.NoError(t, err)

	api.mutex.Lock()
	delete(api.servers, dbID)
	api.mutex.Unlock()

	results, err := compute.ReloadAll(ctx, []*resource.Resource{web, db}, 0)
	require.Error(t, err)
	assert.True(t, compute.IsNotFound(err))

	require.NoError(t, results[0].Error)
	require.Error(t, results[1].Error)
}

func TestReloadAll_WithoutAPI(t *testing.T) {
	t.Parallel()

	orphan := resource.New(nil, compute.ServerVariant, map[string]interface{}{"id": "x"}, true)

	results, err := compute.ReloadAll(context.Background(), []*resource.Resource{orphan}, 1)
	require.ErrorIs(t, err, resource.ErrNoAPI)
	require.ErrorIs(t, results[0].Error, resource.ErrNoAPI)
}
