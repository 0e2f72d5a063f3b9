package lexicon

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

// Default configuration values for snapshot files
const (
	// DefaultCompressionLevel is the gzip level used for snapshot files
	DefaultCompressionLevel = gzip.DefaultCompression

	// DefaultFileMode is the permission of written snapshot files
	DefaultFileMode = 0644
)

// StorageConfig contains configuration for persisting a TokenStore to disk.
type StorageConfig struct {
	// Path is the snapshot file
	Path string `yaml:"path"`

	// CompressionLevel is the gzip level (gzip.NoCompression..gzip.BestCompression)
	CompressionLevel int `yaml:"compressionLevel"`

	// CompressOnSave writes a compressed copy of the trie; the saved store
	// itself is not modified
	CompressOnSave bool `yaml:"compressOnSave"`

	// Logger receives persistence events; nil selects slog.Default()
	Logger *slog.Logger `yaml:"-"`
}

// DefaultStorageConfig returns a default storage configuration.
func DefaultStorageConfig(path string) *StorageConfig {
	return &StorageConfig{
		Path:             path,
		CompressionLevel: DefaultCompressionLevel,
	}
}

// LoadStorageConfig reads a YAML storage configuration. Fields missing from
// the file keep their defaults.
func LoadStorageConfig(file string) (*StorageConfig, error) {
	cfg := DefaultStorageConfig("")
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", file, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values SaveFile and LoadFile cannot
// work with.
func (c *StorageConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("storage path must not be empty")
	}
	if c.CompressionLevel < gzip.HuffmanOnly || c.CompressionLevel > gzip.BestCompression {
		return fmt.Errorf("invalid compression level %d", c.CompressionLevel)
	}
	return nil
}

// logger returns the configured logger scoped to this package.
func (c *StorageConfig) logger() *slog.Logger {
	l := c.Logger
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", "lexicon")
}
