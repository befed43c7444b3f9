package hangar_test

import (
	"errors"
	"testing"

	"hangar-go/internal/hangar"
	"hangar-go/internal/model"
	"hangar-go/internal/testutil"
)

func TestService_EnsureInitialized(t *testing.T) {
	f := testutil.NewFixture()

	if err := f.Service.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized() error = %v", err)
	}

	catalog, err := f.Catalog.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(catalog) == 0 {
		t.Error("catalog was not seeded")
	}

	locations, err := f.Locations.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(locations) != len(hangar.DefaultLocations) {
		t.Errorf("locations = %v, want seed defaults", locations)
	}

	// Second call must not duplicate the seed.
	if err := f.Service.EnsureInitialized(); err != nil {
		t.Fatalf("second EnsureInitialized() error = %v", err)
	}
	again, _ := f.Catalog.GetAll()
	if len(again) != len(catalog) {
		t.Errorf("catalog length changed from %d to %d", len(catalog), len(again))
	}
}

func TestService_Search(t *testing.T) {
	t.Run("resolves query against the seeded catalog", func(t *testing.T) {
		f := testutil.NewFixture()
		if err := f.Service.EnsureInitialized(); err != nil {
			t.Fatalf("EnsureInitialized() error = %v", err)
		}

		results := f.Service.Search("zaku", hangar.Filters{})
		if len(results) != 1 || results[0].Name != "Zaku II Char Custom" {
			t.Errorf("Search() = %+v, want the single Zaku entry", results)
		}
	})

	t.Run("searches the catalog, not owned items", func(t *testing.T) {
		f := testutil.NewFixture()
		if err := f.Service.EnsureInitialized(); err != nil {
			t.Fatalf("EnsureInitialized() error = %v", err)
		}

		variant := model.ModelVariant{ModelNumber: "XX-01", Name: "Scratch Build", Grade: "High Grade"}
		if _, err := f.Collection.Add(variant, hangar.AddOptions{}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		if results := f.Service.Search("Scratch Build", hangar.Filters{}); len(results) != 0 {
			t.Errorf("Search() found non-catalog item: %+v", results)
		}
	})

	t.Run("degrades to empty on storage fault", func(t *testing.T) {
		logger := hangar.NewNopLogger()
		st := testutil.FailingStore{}
		svc := hangar.NewService(
			hangar.NewCatalogRepository(st, logger),
			hangar.NewCollectionRepository(st, logger, testutil.FixedClock{}, &testutil.SeqIDGenerator{}),
			hangar.NewWishlistRepository(st, logger, testutil.FixedClock{}, &testutil.SeqIDGenerator{}),
			hangar.NewLocationRegistry(st, logger),
			logger,
		)

		results := svc.Search("zaku", hangar.Filters{})
		if results == nil || len(results) != 0 {
			t.Errorf("Search() = %v, want empty non-nil slice", results)
		}
	})
}

func TestService_FindVariant(t *testing.T) {
	f := testutil.NewFixture()
	if err := f.Service.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized() error = %v", err)
	}

	t.Run("resolves by model number and grade", func(t *testing.T) {
		v, err := f.Service.FindVariant("RX-78-2", "Perfect Grade")
		if err != nil {
			t.Fatalf("FindVariant() error = %v", err)
		}
		if v.Scale != "1/60" {
			t.Errorf("Scale = %q, want 1/60", v.Scale)
		}
	})

	t.Run("grade match is case-insensitive", func(t *testing.T) {
		if _, err := f.Service.FindVariant("RX-78-2", "perfect grade"); err != nil {
			t.Errorf("FindVariant() error = %v", err)
		}
	})

	t.Run("unknown variant returns ErrNotFound", func(t *testing.T) {
		_, err := f.Service.FindVariant("RX-78-2", "Mega Size")
		if !errors.Is(err, hangar.ErrNotFound) {
			t.Errorf("FindVariant() error = %v, want ErrNotFound", err)
		}
	})
}

func TestService_AddToCollection(t *testing.T) {
	t.Run("rejects unknown location", func(t *testing.T) {
		f := testutil.NewFixture()
		if err := f.Service.EnsureInitialized(); err != nil {
			t.Fatalf("EnsureInitialized() error = %v", err)
		}

		_, err := f.Service.AddToCollection(zaku(), hangar.AddOptions{Location: "Submarine"})
		if err == nil {
			t.Error("AddToCollection() expected error for unknown location")
		}
	})

	t.Run("accepts a registered custom location", func(t *testing.T) {
		f := testutil.NewFixture()
		if err := f.Service.EnsureInitialized(); err != nil {
			t.Fatalf("EnsureInitialized() error = %v", err)
		}
		if _, err := f.Locations.Add("Attic"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		item, err := f.Service.AddToCollection(zaku(), hangar.AddOptions{Location: "Attic"})
		if err != nil {
			t.Fatalf("AddToCollection() error = %v", err)
		}
		if item.Location != "Attic" {
			t.Errorf("Location = %q, want Attic", item.Location)
		}
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		f := testutil.NewFixture()
		if _, err := f.Service.AddToCollection(zaku(), hangar.AddOptions{Status: "painted"}); err == nil {
			t.Error("AddToCollection() expected error for invalid status")
		}
	})
}

func TestService_OwnedAndWished(t *testing.T) {
	f := testutil.NewFixture()

	v := zaku()
	owned, err := f.Service.Owned(v)
	if err != nil || owned {
		t.Fatalf("Owned() = %v, %v; want false, nil", owned, err)
	}

	if _, err := f.Collection.Add(v, hangar.AddOptions{}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	owned, err = f.Service.Owned(v)
	if err != nil || !owned {
		t.Errorf("Owned() = %v, %v; want true, nil", owned, err)
	}

	// Same model number in a different grade is a different variant.
	other := v
	other.Grade = "Real Grade"
	owned, err = f.Service.Owned(other)
	if err != nil || owned {
		t.Errorf("Owned(other grade) = %v, %v; want false, nil", owned, err)
	}

	wished, err := f.Service.Wished(v)
	if err != nil || wished {
		t.Errorf("Wished() = %v, %v; want false, nil", wished, err)
	}
}

func TestService_AppendPhoto(t *testing.T) {
	t.Run("appends one photo per call", func(t *testing.T) {
		f := testutil.NewFixture()

		added, err := f.Collection.Add(zaku(), hangar.AddOptions{})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		if _, err := f.Service.AppendPhoto(added.ID, "file:///a.jpg"); err != nil {
			t.Fatalf("AppendPhoto() error = %v", err)
		}
		item, err := f.Service.AppendPhoto(added.ID, "file:///b.jpg")
		if err != nil {
			t.Fatalf("AppendPhoto() error = %v", err)
		}

		if len(item.Photos) != 2 || item.Photos[0] != "file:///a.jpg" || item.Photos[1] != "file:///b.jpg" {
			t.Errorf("Photos = %v, want ordered append", item.Photos)
		}
	})

	t.Run("absent id returns ErrNotFound", func(t *testing.T) {
		f := testutil.NewFixture()

		_, err := f.Service.AppendPhoto("missing", "file:///a.jpg")
		if !errors.Is(err, hangar.ErrNotFound) {
			t.Errorf("AppendPhoto() error = %v, want ErrNotFound", err)
		}
	})
}

func TestService_MoveToCollection(t *testing.T) {
	f := testutil.NewFixture()
	if err := f.Service.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized() error = %v", err)
	}

	wished, err := f.Wishlist.Add(zaku(), hangar.WishOptions{Priority: model.PriorityHigh})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	item, err := f.Service.MoveToCollection(wished.ID, hangar.AddOptions{Status: model.StatusBuilding})
	if err != nil {
		t.Fatalf("MoveToCollection() error = %v", err)
	}
	if item.ModelNumber != "MS-06S" || item.Status != model.StatusBuilding {
		t.Errorf("moved item = %+v", item)
	}

	wishlist, _ := f.Wishlist.GetAll()
	if len(wishlist) != 0 {
		t.Errorf("wishlist still has %d item(s)", len(wishlist))
	}
	collection, _ := f.Collection.GetAll()
	if len(collection) != 1 {
		t.Errorf("collection has %d item(s), want 1", len(collection))
	}
}

func TestService_SortedWishlist(t *testing.T) {
	f := testutil.NewFixture()

	f.Wishlist.Add(model.ModelVariant{Name: "A", Price: 10}, hangar.WishOptions{Priority: model.PriorityLow})
	f.Wishlist.Add(model.ModelVariant{Name: "B", Price: 30}, hangar.WishOptions{Priority: model.PriorityHigh})
	f.Wishlist.Add(model.ModelVariant{Name: "C", Price: 20}, hangar.WishOptions{Priority: model.PriorityMedium})

	t.Run("by priority", func(t *testing.T) {
		items, err := f.Service.SortedWishlist(hangar.SortByPriority)
		if err != nil {
			t.Fatalf("SortedWishlist() error = %v", err)
		}
		if items[0].Name != "B" || items[1].Name != "C" || items[2].Name != "A" {
			t.Errorf("priority order = %s,%s,%s; want B,C,A", items[0].Name, items[1].Name, items[2].Name)
		}
	})

	t.Run("by price", func(t *testing.T) {
		items, err := f.Service.SortedWishlist(hangar.SortByPrice)
		if err != nil {
			t.Fatalf("SortedWishlist() error = %v", err)
		}
		if items[0].Name != "B" || items[1].Name != "C" || items[2].Name != "A" {
			t.Errorf("price order = %s,%s,%s; want B,C,A", items[0].Name, items[1].Name, items[2].Name)
		}
	})

	t.Run("unknown mode keeps stored order", func(t *testing.T) {
		items, err := f.Service.SortedWishlist("alphabetical")
		if err != nil {
			t.Fatalf("SortedWishlist() error = %v", err)
		}
		if items[0].Name != "A" || items[1].Name != "B" || items[2].Name != "C" {
			t.Errorf("order = %s,%s,%s; want stored A,B,C", items[0].Name, items[1].Name, items[2].Name)
		}
	})
}

func TestService_Stats(t *testing.T) {
	f := testutil.NewFixture()

	f.Collection.Add(zaku(), hangar.AddOptions{Status: model.StatusCompleted})
	f.Collection.Add(zaku(), hangar.AddOptions{})
	f.Wishlist.Add(zaku(), hangar.WishOptions{})

	stats, err := f.Service.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalModels != 2 || stats.WishlistCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", stats.TotalModels, stats.WishlistCount)
	}
	if stats.CompletionRate != 50.0 {
		t.Errorf("CompletionRate = %v, want 50.0", stats.CompletionRate)
	}
}
