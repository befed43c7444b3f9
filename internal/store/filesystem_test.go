package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"hangar-go/internal/hangar"
)

func TestFileSystemStore(t *testing.T) {
	t.Run("missing key returns nil, nil", func(t *testing.T) {
		s, err := NewFileSystemStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}

		data, err := s.Get(hangar.KeyCatalog)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if data != nil {
			t.Errorf("Get() = %v, want nil", data)
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		s, err := NewFileSystemStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}

		if err := s.Set(hangar.KeyCollection, []byte(`[{"id":"a"}]`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		data, err := s.Get(hangar.KeyCollection)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !bytes.Equal(data, []byte(`[{"id":"a"}]`)) {
			t.Errorf("Get() = %q", data)
		}
	})

	t.Run("survives reopening the store", func(t *testing.T) {
		root := t.TempDir()

		first, err := NewFileSystemStore(root)
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}
		if err := first.Set(hangar.KeyWishlist, []byte("persisted")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		second, err := NewFileSystemStore(root)
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}
		data, err := second.Get(hangar.KeyWishlist)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !bytes.Equal(data, []byte("persisted")) {
			t.Errorf("Get() after reopen = %q, want %q", data, "persisted")
		}
	})

	t.Run("set leaves no temp files behind", func(t *testing.T) {
		root := t.TempDir()
		s, err := NewFileSystemStore(root)
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}

		if err := s.Set(hangar.KeyLocations, []byte(`["Home"]`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		matches, err := filepath.Glob(filepath.Join(root, "hangar", ".tmp-*"))
		if err != nil {
			t.Fatalf("Glob() error = %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("temp files left behind: %v", matches)
		}
	})

	t.Run("validate setup fails for a missing root", func(t *testing.T) {
		s := &FileSystemStore{root: filepath.Join(t.TempDir(), "gone")}
		if err := s.ValidateSetup(); err == nil {
			t.Error("ValidateSetup() expected error for missing root")
		}
	})

	t.Run("validate setup fails when root is a file", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(root, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		s := &FileSystemStore{root: root}
		if err := s.ValidateSetup(); err == nil {
			t.Error("ValidateSetup() expected error for non-directory root")
		}
	})
}
