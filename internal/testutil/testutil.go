// Package testutil provides deterministic fakes for repository and service
// tests.
package testutil

import (
	"errors"
	"fmt"
	"time"

	"hangar-go/internal/hangar"
	"hangar-go/internal/store"
)

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

// SeqIDGenerator produces "id-1", "id-2", ... in order.
type SeqIDGenerator struct {
	n int
}

func (g *SeqIDGenerator) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// ErrStoreBroken is returned by every FailingStore operation.
var ErrStoreBroken = errors.New("store is broken")

// FailingStore fails every operation, for exercising storage-fault paths.
type FailingStore struct{}

func (FailingStore) Get(string) ([]byte, error) { return nil, ErrStoreBroken }
func (FailingStore) Set(string, []byte) error   { return ErrStoreBroken }
func (FailingStore) ValidateSetup() error       { return ErrStoreBroken }

var _ hangar.Store = FailingStore{}

// Fixture is a fully wired service over an in-memory store with a fixed
// clock and sequential ids.
type Fixture struct {
	Store      *store.MemoryStore
	Service    *hangar.Service
	Catalog    *hangar.CatalogRepository
	Collection *hangar.CollectionRepository
	Wishlist   *hangar.WishlistRepository
	Locations  *hangar.LocationRegistry
}

// NewFixture builds a deterministic test fixture. The clock is pinned to
// 2024-06-01T12:00:00Z.
func NewFixture() *Fixture {
	st := store.NewMemoryStore()
	logger := hangar.NewNopLogger()
	clock := FixedClock{Time: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	idgen := &SeqIDGenerator{}

	catalog := hangar.NewCatalogRepository(st, logger)
	collection := hangar.NewCollectionRepository(st, logger, clock, idgen)
	wishlist := hangar.NewWishlistRepository(st, logger, clock, idgen)
	locations := hangar.NewLocationRegistry(st, logger)

	return &Fixture{
		Store:      st,
		Service:    hangar.NewService(catalog, collection, wishlist, locations, logger),
		Catalog:    catalog,
		Collection: collection,
		Wishlist:   wishlist,
		Locations:  locations,
	}
}
