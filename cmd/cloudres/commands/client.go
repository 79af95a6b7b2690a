package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/pkg/completion"
	"github.com/fivetwenty-io/cloudres/pkg/compute"
	"github.com/fivetwenty-io/cloudres/pkg/logging"
	"github.com/spf13/viper"
)

// completionConfig merges the "completion" section of the config file with
// the cache flags, flags winning.
func completionConfig() (*completion.Config, error) {
	config := completion.DefaultConfig()

	if viper.IsSet("completion") {
		err := viper.UnmarshalKey("completion", config)
		if err != nil {
			return nil, fmt.Errorf("reading completion config: %w", err)
		}
	}

	if cacheType := viper.GetString("cache-type"); cacheType != "" {
		config.Type = completion.Type(cacheType)
	}

	if dir := viper.GetString("cache-dir"); dir != "" {
		config.File = &completion.FileConfig{Dir: dir}
	}

	if url := viper.GetString("nats-url"); url != "" {
		config.NATS = &completion.NATSKVConfig{
			URL:    url,
			Bucket: viper.GetString("nats-bucket"),
		}
	}

	return config, nil
}

// openCompletionCache builds the configured cache. The returned close func
// releases backend connections and is never nil.
func openCompletionCache(ctx context.Context) (completion.Cache, func(), error) {
	config, err := completionConfig()
	if err != nil {
		return nil, func() {}, err
	}

	cache, err := completion.NewFromConfig(ctx, config)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening completion cache: %w", err)
	}

	closeCache := func() {}
	if closer, ok := cache.(io.Closer); ok {
		closeCache = func() { _ = closer.Close() }
	}

	return cache, closeCache, nil
}

func newLogger() logging.Logger {
	if !viper.GetBool("verbose") {
		return logging.New(logging.Config{Level: logging.LevelWarn, Output: os.Stderr})
	}

	return logging.New(logging.Config{Level: logging.LevelDebug, Output: os.Stderr})
}

// newComputeClient creates a client from flags, environment and config file.
func newComputeClient(ctx context.Context) (*compute.Client, func(), error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, func() {}, constants.ErrNoAPIEndpoint
	}

	cache, closeCache, err := openCompletionCache(ctx)
	if err != nil {
		return nil, closeCache, err
	}

	client, err := compute.New(&compute.Config{
		Endpoint:        endpoint,
		AccessToken:     viper.GetString("token"),
		Debug:           viper.GetBool("verbose"),
		Logger:          newLogger(),
		CompletionCache: cache,
	})
	if err != nil {
		closeCache()

		return nil, func() {}, fmt.Errorf("creating client: %w", err)
	}

	return client, closeCache, nil
}
