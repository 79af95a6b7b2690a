package completion

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
)

// FileCache stores each (resource, kind) group in its own file named
// "<resource>-<kind>-cache", one value per line, so shell completion
// scripts can read them with cat.
type FileCache struct {
	dir   string
	mutex sync.Mutex
}

// NewFileCache returns a cache rooted at dir. The directory is created on
// first write.
func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

// DefaultDir returns the completion directory under the user's home.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCacheDirUnavailable, err)
	}

	return filepath.Join(home, constants.DefaultCompletionDir), nil
}

// Dir returns the directory the cache writes to.
func (c *FileCache) Dir() string {
	return c.dir
}

// Path returns the file backing a group.
func (c *FileCache) Path(resourceName string, kind resource.CompletionKind) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s-%s-cache", sanitize(resourceName), kind))
}

// Add implements Cache.
func (c *FileCache) Add(ctx context.Context, resourceName string, kind resource.CompletionKind, value string) error {
	err := validate(resourceName, kind)
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	existing, err := c.read(resourceName, kind)
	if err != nil {
		return err
	}

	for _, seen := range existing {
		if seen == value {
			return nil
		}
	}

	err = os.MkdirAll(c.dir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating completion cache directory: %w", err)
	}

	return c.write(resourceName, kind, append(existing, value))
}

// List implements Cache.
func (c *FileCache) List(ctx context.Context, resourceName string, kind resource.CompletionKind) ([]string, error) {
	err := validate(resourceName, kind)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	values, err := c.read(resourceName, kind)
	if err != nil {
		return nil, err
	}

	sort.Strings(values)

	return values, nil
}

// Clear implements Cache.
func (c *FileCache) Clear(ctx context.Context, resourceName string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, kind := range Kinds() {
		err := os.Remove(c.Path(resourceName, kind))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing completion cache: %w", err)
		}
	}

	return nil
}

func (c *FileCache) read(resourceName string, kind resource.CompletionKind) ([]string, error) {
	file, err := os.Open(c.Path(resourceName, kind))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}

		return nil, fmt.Errorf("opening completion cache: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	values := []string{}
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if _, dup := seen[line]; dup {
			continue
		}

		seen[line] = struct{}{}
		values = append(values, line)
	}

	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("reading completion cache: %w", err)
	}

	return values, nil
}

// write replaces a group's file through a temp file and rename, so readers
// never see a partial file.
func (c *FileCache) write(resourceName string, kind resource.CompletionKind, values []string) error {
	tmp, err := os.CreateTemp(c.dir, sanitize(resourceName)+"-"+string(kind)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating completion cache: %w", err)
	}

	tmpName := tmp.Name()

	_, err = tmp.WriteString(strings.Join(values, "\n") + "\n")
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("writing completion cache: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("closing completion cache: %w", err)
	}

	err = os.Chmod(tmpName, constants.ConfigFilePerm)
	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("setting completion cache permissions: %w", err)
	}

	err = os.Rename(tmpName, c.Path(resourceName, kind))
	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("replacing completion cache: %w", err)
	}

	return nil
}

// sanitize keeps resource names from escaping the cache directory.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator {
			return '_'
		}

		return r
	}, strings.ReplaceAll(name, "..", "_"))
}
