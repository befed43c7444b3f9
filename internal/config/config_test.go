package config

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestManagerRoundTrip(t *testing.T) {
	m := &Manager{}
	cfg := NewConfig("/home/amuro/.local/share/hangar")
	cfg.Store = StoreConfig{Type: "sqlite", Path: "/tmp/hangar.db"}
	cfg.Encryption.Enabled = true

	var buf bytes.Buffer
	if err := m.Write(&buf, cfg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, cfg)
	}
}

func TestManagerReadInvalid(t *testing.T) {
	m := &Manager{}
	if _, err := m.Read(strings.NewReader("[store\ntype=")); err == nil {
		t.Error("Read() with malformed toml: expected error")
	}
}

func TestReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangar.toml")
	cfg := NewConfig(t.TempDir())

	if err := Init(path, cfg); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	got, err := ReadFromFile(path)
	if err != nil {
		t.Fatalf("ReadFromFile() error = %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("ReadFromFile() mismatch:\ngot  %+v\nwant %+v", got, cfg)
	}
}

func TestReadFromFileMissing(t *testing.T) {
	if _, err := ReadFromFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("ReadFromFile() on missing file: expected error")
	}
}

func TestInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangar.toml")
	cfg := NewConfig(t.TempDir())

	if err := Init(path, cfg); err != nil {
		t.Fatalf("first Init() error = %v", err)
	}
	if err := Init(path, cfg); err == nil {
		t.Error("second Init() over existing file: expected error")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("/base")

	if cfg.Store.Type != "filesystem" {
		t.Errorf("Store.Type = %q, want filesystem", cfg.Store.Type)
	}
	if cfg.Store.Root != filepath.Join("/base", "data") {
		t.Errorf("Store.Root = %q", cfg.Store.Root)
	}
	if cfg.Encryption.Enabled {
		t.Error("Encryption.Enabled should default to false")
	}
	if cfg.LogDir != filepath.Join("/base", "log") {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
}
