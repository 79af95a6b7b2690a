package completion

import (
	"context"
	"fmt"
)

// Type represents the type of completion cache backend.
type Type string

const (
	// TypeMemory keeps values in process memory.
	TypeMemory Type = "memory"

	// TypeFile writes one file per group under a directory.
	TypeFile Type = "file"

	// TypeNATS uses a NATS JetStream key-value bucket.
	TypeNATS Type = "nats"

	// TypeNone disables the completion cache.
	TypeNone Type = "none"
)

// FileConfig configures the file backend.
type FileConfig struct {
	// Dir defaults to DefaultDir() when empty.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Config configures a completion cache backend.
type Config struct {
	// Type is the cache backend type
	Type Type `mapstructure:"type" yaml:"type"`

	// File backend configuration
	File *FileConfig `mapstructure:"file" yaml:"file,omitempty"`

	// NATS backend configuration
	NATS *NATSKVConfig `mapstructure:"-" yaml:"-"`
}

// DefaultConfig returns the default configuration: a file cache in the
// user's home directory.
func DefaultConfig() *Config {
	return &Config{
		Type: TypeFile,
		File: &FileConfig{},
	}
}

// NewFromConfig creates a cache backend from configuration.
func NewFromConfig(ctx context.Context, config *Config) (Cache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Type {
	case TypeMemory:
		return NewMemoryCache(), nil

	case TypeFile, "":
		return newFileCacheFromConfig(config.File)

	case TypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVCache(ctx, config.NATS)

	case TypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, config.Type)
	}
}

func newFileCacheFromConfig(config *FileConfig) (Cache, error) {
	dir := ""
	if config != nil {
		dir = config.Dir
	}

	if dir == "" {
		defaultDir, err := DefaultDir()
		if err != nil {
			return nil, err
		}

		dir = defaultDir
	}

	return NewFileCache(dir), nil
}

// Builder helps build cache configurations.
type Builder struct {
	config *Config
}

// NewBuilder creates a new cache builder.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithType sets the cache type.
func (b *Builder) WithType(cacheType Type) *Builder {
	b.config.Type = cacheType

	return b
}

// WithDir sets the file cache directory.
func (b *Builder) WithDir(dir string) *Builder {
	b.config.File = &FileConfig{Dir: dir}

	return b
}

// WithNATSConfig sets NATS cache configuration.
func (b *Builder) WithNATSConfig(config *NATSKVConfig) *Builder {
	b.config.NATS = config

	return b
}

// Config returns the configuration built so far.
func (b *Builder) Config() *Config {
	return b.config
}

// Build creates the cache from the configuration.
func (b *Builder) Build(ctx context.Context) (Cache, error) {
	return NewFromConfig(ctx, b.config)
}
