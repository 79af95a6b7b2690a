package completion

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSKVConfig configures the NATS JetStream key-value backend.
type NATSKVConfig struct {
	// URL of the NATS server, e.g. nats://127.0.0.1:4222.
	URL string

	// Bucket defaults to constants.DefaultNATSBucket.
	Bucket string

	// TTL expires completion values; zero keeps them forever.
	TTL time.Duration

	// Options are passed to nats.Connect.
	Options []nats.Option
}

// NATSKVCache shares completion values between machines through a
// JetStream key-value bucket. Keys have the form
// "<resource>.<kind>.<base64url(value)>".
type NATSKVCache struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

// NewNATSKVCache connects to NATS and opens (or creates) the bucket.
func NewNATSKVCache(ctx context.Context, config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil || config.URL == "" {
		return nil, ErrNATSConfigRequired
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = constants.DefaultNATSBucket
	}

	opts := append([]nats.Option{
		nats.Name("cloudres-completion"),
		nats.Timeout(constants.NATSConnectTimeout),
	}, config.Options...)

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "cloudres shell completion values",
		TTL:         config.TTL,
	})
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening key-value bucket %s: %w", bucket, err)
	}

	return &NATSKVCache{conn: conn, kv: kv}, nil
}

// Add implements Cache.
func (c *NATSKVCache) Add(ctx context.Context, resourceName string, kind resource.CompletionKind, value string) error {
	err := validate(resourceName, kind)
	if err != nil {
		return err
	}

	if value == "" {
		return nil
	}

	_, err = c.kv.Put(ctx, natsKey(resourceName, kind, value), []byte(value))
	if err != nil {
		return fmt.Errorf("storing completion value: %w", err)
	}

	return nil
}

// List implements Cache.
func (c *NATSKVCache) List(ctx context.Context, resourceName string, kind resource.CompletionKind) ([]string, error) {
	err := validate(resourceName, kind)
	if err != nil {
		return nil, err
	}

	keys, err := c.keys(ctx, natsPrefix(resourceName, kind)+">")
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(keys))

	for _, key := range keys {
		encoded := key[strings.LastIndex(key, ".")+1:]

		value, err := base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			continue
		}

		values = append(values, string(value))
	}

	sort.Strings(values)

	return values, nil
}

// Clear implements Cache.
func (c *NATSKVCache) Clear(ctx context.Context, resourceName string) error {
	keys, err := c.keys(ctx, natsSubject(resourceName)+".>")
	if err != nil {
		return err
	}

	for _, key := range keys {
		err := c.kv.Purge(ctx, key)
		if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
			return fmt.Errorf("purging completion value: %w", err)
		}
	}

	return nil
}

// Close drains the NATS connection.
func (c *NATSKVCache) Close() error {
	err := c.conn.Drain()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}

// keys lists the keys matching filter, a NATS subject wildcard evaluated by
// the server.
func (c *NATSKVCache) keys(ctx context.Context, filter string) ([]string, error) {
	lister, err := c.kv.ListKeysFiltered(ctx, filter)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("listing completion keys: %w", err)
	}

	defer func() {
		_ = lister.Stop()
	}()

	var keys []string

	for key := range lister.Keys() {
		keys = append(keys, key)
	}

	return keys, nil
}

func natsKey(resourceName string, kind resource.CompletionKind, value string) string {
	return natsPrefix(resourceName, kind) + base64.RawURLEncoding.EncodeToString([]byte(value))
}

func natsPrefix(resourceName string, kind resource.CompletionKind) string {
	return natsSubject(resourceName) + "." + string(kind) + "."
}

// natsSubject maps a resource name onto the characters NATS accepts in keys.
func natsSubject(resourceName string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, resourceName)
}
