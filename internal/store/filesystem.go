package store

import (
	"fmt"
	"os"
	"path/filepath"

	"hangar-go/internal/hangar"
)

// FileSystemStore persists each snapshot key as its own file under a root
// directory, mirroring the key's path structure:
//
//	<root>/
//	  hangar/
//	    catalog.json
//	    collection.json
//	    wishlist.json
//	    locations.json
type FileSystemStore struct {
	root string
}

// NewFileSystemStore creates a store rooted at the given directory, creating
// it if necessary.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating store root: %w", err)
	}
	return &FileSystemStore{root: root}, nil
}

func (s *FileSystemStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key)+".json")
}

// Get returns the snapshot blob for key, or (nil, nil) if it has never been
// written.
func (s *FileSystemStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot %s: %w", key, err)
	}
	return data, nil
}

// Set atomically replaces the snapshot for key using a temp file + rename in
// the destination directory, so a crashed write never leaves a partial
// snapshot behind.
func (s *FileSystemStore) Set(key string, data []byte) error {
	destPath := s.path(key)
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// ValidateSetup verifies the root exists and is a directory.
func (s *FileSystemStore) ValidateSetup() error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("store root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store root is not a directory: %s", s.root)
	}
	return nil
}

// Compile-time check that FileSystemStore implements hangar.Store
var _ hangar.Store = (*FileSystemStore)(nil)
