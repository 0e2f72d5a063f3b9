package lexicon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// SaveFile writes store to cfg.Path as a gzip compressed snapshot.
//
// The file is written to a temporary sibling and renamed into place, so a
// reader never observes a partially written snapshot.
//
// With cfg.CompressOnSave the written trie is compressed, but store itself
// is left as is: a copy is compressed, so the caller may keep adding tokens
// and save again.
//
// Returns:
//   - error: Error if the configuration is invalid or any write fails
func SaveFile(store *TokenStore, cfg *StorageConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := cfg.logger()

	if cfg.CompressOnSave {
		before := store.Nodes()
		store = FromSnapshot(store.ToSnapshot())
		store.Compress()
		log.Debug("compressed trie", "nodes_before", before, "nodes_after", store.Nodes())
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(cfg.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	gz, err := gzip.NewWriterLevel(tmp, cfg.CompressionLevel)
	if err != nil {
		cleanup()
		return fmt.Errorf("failed to create gzip writer: %w", err)
	}

	n, err := store.WriteTo(gz)
	if err != nil {
		cleanup()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := gz.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to flush gzip writer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Chmod(tmpPath, DefaultFileMode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}
	if err := os.Rename(tmpPath, cfg.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}

	log.Info("saved token store",
		"path", cfg.Path,
		"tokens", store.Len(),
		"pairs", store.Length(),
		"bytes", n,
	)
	return nil
}

// LoadFile reads a snapshot written by SaveFile.
//
// Returns:
//   - *TokenStore: The restored store
//   - error: Error if the file cannot be opened or the envelope is invalid
func LoadFile(cfg *StorageConfig) (*TokenStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()

	file, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	store := NewTokenStore()
	n, err := store.ReadFrom(gz)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	log.Info("loaded token store",
		"path", cfg.Path,
		"tokens", store.Len(),
		"pairs", store.Length(),
		"bytes", n,
	)
	return store, nil
}
