package hangar_test

import (
	"slices"
	"testing"

	"hangar-go/internal/hangar"
	"hangar-go/internal/testutil"
)

func TestLocationRegistry_Initialize(t *testing.T) {
	t.Run("seeds defaults on first call", func(t *testing.T) {
		f := testutil.NewFixture()

		if err := f.Locations.Initialize(); err != nil {
			t.Fatalf("Initialize() error = %v", err)
		}

		locations, err := f.Locations.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !slices.Equal(locations, hangar.DefaultLocations) {
			t.Errorf("List() = %v, want %v", locations, hangar.DefaultLocations)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := testutil.NewFixture()

		if err := f.Locations.Initialize(); err != nil {
			t.Fatalf("first Initialize() error = %v", err)
		}
		if _, err := f.Locations.Add("Attic"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		// A second Initialize must not reset the list.
		if err := f.Locations.Initialize(); err != nil {
			t.Fatalf("second Initialize() error = %v", err)
		}

		locations, err := f.Locations.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !slices.Contains(locations, "Attic") {
			t.Errorf("Initialize() overwrote custom location, got %v", locations)
		}
	})
}

func TestLocationRegistry_List(t *testing.T) {
	t.Run("falls back to defaults when nothing persisted", func(t *testing.T) {
		f := testutil.NewFixture()

		locations, err := f.Locations.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !slices.Equal(locations, hangar.DefaultLocations) {
			t.Errorf("List() = %v, want defaults %v", locations, hangar.DefaultLocations)
		}
	})

	t.Run("returns storage fault as error", func(t *testing.T) {
		registry := hangar.NewLocationRegistry(testutil.FailingStore{}, hangar.NewNopLogger())

		if _, err := registry.List(); err == nil {
			t.Error("List() expected error from failing store")
		}
	})
}

func TestLocationRegistry_Add(t *testing.T) {
	t.Run("appends and persists a new location", func(t *testing.T) {
		f := testutil.NewFixture()

		locations, err := f.Locations.Add("Garage")
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		want := append(slices.Clone(hangar.DefaultLocations), "Garage")
		if !slices.Equal(locations, want) {
			t.Errorf("Add() = %v, want %v", locations, want)
		}

		// Re-read to confirm persistence.
		persisted, err := f.Locations.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !slices.Equal(persisted, want) {
			t.Errorf("List() after Add = %v, want %v", persisted, want)
		}
	})

	t.Run("duplicate add is a silent no-op", func(t *testing.T) {
		f := testutil.NewFixture()

		if _, err := f.Locations.Add("Garage"); err != nil {
			t.Fatalf("first Add() error = %v", err)
		}
		locations, err := f.Locations.Add("Garage")
		if err != nil {
			t.Fatalf("second Add() error = %v", err)
		}

		count := 0
		for _, loc := range locations {
			if loc == "Garage" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("Garage appears %d times, want exactly 1", count)
		}
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		f := testutil.NewFixture()

		if _, err := f.Locations.Add("garage"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		locations, err := f.Locations.Add("Garage")
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		if !slices.Contains(locations, "garage") || !slices.Contains(locations, "Garage") {
			t.Errorf("expected both casings present, got %v", locations)
		}
	})
}
