package hangar

import (
	"fmt"
	"sort"
	"strings"

	"hangar-go/internal/model"
)

// Service is the orchestration layer the presentation code talks to. It wires
// the repositories together and adds the cross-collection behavior: first-use
// seeding, location validation on add, ownership checks by (modelNumber,
// grade) identity, and wishlist-to-collection moves.
type Service struct {
	catalog    *CatalogRepository
	collection *CollectionRepository
	wishlist   *WishlistRepository
	locations  *LocationRegistry
	logger     Logger
}

// NewService creates a Service over the given repositories.
func NewService(catalog *CatalogRepository, collection *CollectionRepository, wishlist *WishlistRepository, locations *LocationRegistry, logger Logger) *Service {
	return &Service{
		catalog:    catalog,
		collection: collection,
		wishlist:   wishlist,
		locations:  locations,
		logger:     logger,
	}
}

// EnsureInitialized seeds the location registry and the master catalog on
// first use. Safe to call on every startup.
func (s *Service) EnsureInitialized() error {
	if err := s.locations.Initialize(); err != nil {
		return fmt.Errorf("initializing locations: %w", err)
	}
	if _, err := s.catalog.SeedIfEmpty(SeedCatalog()); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	return nil
}

// Search resolves the free-text query and facet filters against the current
// catalog snapshot. On a storage fault it degrades to an empty result rather
// than failing the caller.
func (s *Service) Search(query string, filters Filters) []model.ModelVariant {
	catalog, err := s.catalog.GetAll()
	if err != nil {
		s.logger.Error("search failed, returning empty results", "error", err)
		return []model.ModelVariant{}
	}
	return FilterVariants(catalog, query, filters)
}

// Catalog returns the current catalog snapshot.
func (s *Service) Catalog() ([]model.ModelVariant, error) {
	return s.catalog.GetAll()
}

// FacetOptions enumerates the filterable values in the current catalog.
func (s *Service) FacetOptions() (FacetOptions, error) {
	catalog, err := s.catalog.GetAll()
	if err != nil {
		return FacetOptions{}, err
	}
	return Facets(catalog), nil
}

// FindVariant resolves a catalog variant by its (modelNumber, grade)
// identity. The grade match is case-insensitive to be forgiving on the CLI;
// the model number must match exactly.
func (s *Service) FindVariant(modelNumber, grade string) (*model.ModelVariant, error) {
	catalog, err := s.catalog.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if catalog[i].ModelNumber == modelNumber && strings.EqualFold(catalog[i].Grade, grade) {
			return &catalog[i], nil
		}
	}
	return nil, fmt.Errorf("variant %s (%s): %w", modelNumber, grade, ErrNotFound)
}

// Owned reports whether a variant with the same (modelNumber, grade) identity
// is already in the collection.
func (s *Service) Owned(variant model.ModelVariant) (bool, error) {
	items, err := s.collection.GetAll()
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.ModelNumber == variant.ModelNumber && item.Grade == variant.Grade {
			return true, nil
		}
	}
	return false, nil
}

// Wished reports whether a variant with the same (modelNumber, grade)
// identity is already on the wishlist.
func (s *Service) Wished(variant model.ModelVariant) (bool, error) {
	items, err := s.wishlist.GetAll()
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.ModelNumber == variant.ModelNumber && item.Grade == variant.Grade {
			return true, nil
		}
	}
	return false, nil
}

// AddToCollection validates opts and adds variant to the collection. The
// status must be a recognized build status and the location must exist in
// the registry at creation time; neither is re-validated afterward.
func (s *Service) AddToCollection(variant model.ModelVariant, opts AddOptions) (*model.CollectionItem, error) {
	if opts.Status != "" && !model.ValidStatus(opts.Status) {
		return nil, fmt.Errorf("invalid status: %s", opts.Status)
	}
	if opts.Location != "" {
		locations, err := s.locations.List()
		if err != nil {
			return nil, err
		}
		known := false
		for _, loc := range locations {
			if loc == opts.Location {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown location: %s", opts.Location)
		}
	}
	return s.collection.Add(variant, opts)
}

// AddToWishlist validates opts and adds variant to the wishlist.
func (s *Service) AddToWishlist(variant model.ModelVariant, opts WishOptions) (*model.WishlistItem, error) {
	if opts.Priority != "" && !model.ValidPriority(opts.Priority) {
		return nil, fmt.Errorf("invalid priority: %s", opts.Priority)
	}
	return s.wishlist.Add(variant, opts)
}

// AppendPhoto adds one photo URI to a collection item. This is the documented
// compound read-modify-write: read current photos, append, write back via a
// partial update. Not atomic with respect to other updates to the same item.
func (s *Service) AppendPhoto(id, uri string) (*model.CollectionItem, error) {
	items, err := s.collection.GetAll()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			photos := append(append([]string{}, item.Photos...), uri)
			return s.collection.Update(id, CollectionUpdate{Photos: photos})
		}
	}
	return nil, fmt.Errorf("appending photo to %s: %w", id, ErrNotFound)
}

// MoveToCollection adds the wishlist item's variant to the collection and
// removes it from the wishlist. Two independent single-collection writes; if
// the removal fails the item ends up in both places, which the user can fix
// by removing it again.
func (s *Service) MoveToCollection(wishlistID string, opts AddOptions) (*model.CollectionItem, error) {
	items, err := s.wishlist.GetAll()
	if err != nil {
		return nil, err
	}

	var wished *model.WishlistItem
	for i := range items {
		if items[i].ID == wishlistID {
			wished = &items[i]
			break
		}
	}
	if wished == nil {
		return nil, fmt.Errorf("moving wishlist item %s: %w", wishlistID, ErrNotFound)
	}

	added, err := s.AddToCollection(wished.ModelVariant, opts)
	if err != nil {
		return nil, err
	}
	if err := s.wishlist.Remove(wishlistID); err != nil {
		s.logger.Warn("item added to collection but not removed from wishlist", "id", wishlistID, "error", err)
		return added, err
	}

	s.logger.Info("moved from wishlist to collection", "wishlistID", wishlistID, "collectionID", added.ID)
	return added, nil
}

// Wishlist sort modes.
const (
	SortByDate     = "date"
	SortByPriority = "priority"
	SortByPrice    = "price"
)

// SortedWishlist returns the wishlist ordered by the given mode: newest
// first, high priority first, or most expensive first. Unknown modes fall
// back to stored order.
func (s *Service) SortedWishlist(by string) ([]model.WishlistItem, error) {
	items, err := s.wishlist.GetAll()
	if err != nil {
		return nil, err
	}

	switch by {
	case SortByDate:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].AddedDate.After(items[j].AddedDate)
		})
	case SortByPriority:
		rank := map[string]int{model.PriorityHigh: 0, model.PriorityMedium: 1, model.PriorityLow: 2}
		sort.SliceStable(items, func(i, j int) bool {
			return rank[items[i].Priority] < rank[items[j].Priority]
		})
	case SortByPrice:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	}
	return items, nil
}

// Stats derives the aggregate statistics over the current collection and
// wishlist snapshots.
func (s *Service) Stats() (Stats, error) {
	collection, err := s.collection.GetAll()
	if err != nil {
		return Stats{}, err
	}
	wishlist, err := s.wishlist.GetAll()
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(collection, wishlist), nil
}

// Collection exposes the collection repository for direct operations.
func (s *Service) Collection() *CollectionRepository { return s.collection }

// Wishlist exposes the wishlist repository for direct operations.
func (s *Service) Wishlist() *WishlistRepository { return s.wishlist }

// Locations exposes the location registry for direct operations.
func (s *Service) Locations() *LocationRegistry { return s.locations }
