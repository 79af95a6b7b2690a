package completion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/cloudres/pkg/completion"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("unavailable")

type failingCache struct {
	completion.NoOpCache
}

func (c *failingCache) Add(ctx context.Context, resourceName string, kind resource.CompletionKind, value string) error {
	return errUnavailable
}

type recordingLogger struct {
	warnings []map[string]interface{}
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnings = append(l.warnings, fields)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}

func TestWriter_RecordsResourceIdentifiers(t *testing.T) {
	t.Parallel()

	cache := completion.NewMemoryCache()
	writer := completion.NewWriter(cache, "servers", nil)

	resource.New(writer, resource.Variant{Name: "Server", HumanID: true}, map[string]interface{}{
		"id":   "3fa85f64-5717-4562-b3fc-2c963f66afa6",
		"name": "My Server!",
	}, false)

	uuids, err := cache.List(context.Background(), "servers", resource.CompletionUUID)
	require.NoError(t, err)
	assert.Equal(t, []string{"3fa85f64-5717-4562-b3fc-2c963f66afa6"}, uuids)

	humanIDs, err := cache.List(context.Background(), "servers", resource.CompletionHumanID)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-server"}, humanIDs)
	assert.Same(t, cache, writer.Cache())
}

func TestWriter_LogsFailures(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	writer := completion.NewWriter(&failingCache{}, "servers", logger)

	writer.WriteToCompletionCache(resource.CompletionUUID, "3fa85f64-5717-4562-b3fc-2c963f66afa6")

	require.Len(t, logger.warnings, 1)
	assert.Equal(t, "servers", logger.warnings[0]["resource"])
	assert.Equal(t, "uuid", logger.warnings[0]["kind"])
	assert.Equal(t, "unavailable", logger.warnings[0]["error"])
}

func TestWriter_NilCache(t *testing.T) {
	t.Parallel()

	writer := completion.NewWriter(nil, "servers", nil)

	assert.NotPanics(t, func() {
		writer.WriteToCompletionCache(resource.CompletionHumanID, "web-1")
	})
	assert.IsType(t, &completion.NoOpCache{}, writer.Cache())
}
