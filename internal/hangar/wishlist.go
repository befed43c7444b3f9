package hangar

import (
	"encoding/json"
	"fmt"

	"hangar-go/internal/model"
)

// WishOptions carries the caller-supplied metadata for a new wishlist item.
// Zero-value fields fall back to the defaults: priority "medium", empty notes.
type WishOptions struct {
	Priority string
	Notes    string
}

// WishlistUpdate is a partial-field update for a wishlist item. Nil fields
// are left untouched.
type WishlistUpdate struct {
	Priority *string
	Notes    *string
}

// WishlistRepository owns the user's wishlist, persisted as a single ordered
// snapshot. Structurally parallel to CollectionRepository, with priority in
// place of status/location and no photos.
type WishlistRepository struct {
	store  Store
	logger Logger
	clock  Clock
	idgen  IDGenerator
}

// NewWishlistRepository creates a WishlistRepository with the given
// dependencies.
func NewWishlistRepository(store Store, logger Logger, clock Clock, idgen IDGenerator) *WishlistRepository {
	return &WishlistRepository{store: store, logger: logger, clock: clock, idgen: idgen}
}

// GetAll returns the wishlist snapshot in insertion order, or an empty slice
// if nothing has been persisted.
func (r *WishlistRepository) GetAll() ([]model.WishlistItem, error) {
	data, err := r.store.Get(KeyWishlist)
	if err != nil {
		return nil, fmt.Errorf("reading wishlist: %w", err)
	}
	if data == nil {
		return []model.WishlistItem{}, nil
	}

	var items []model.WishlistItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding wishlist: %w", err)
	}
	return items, nil
}

// Add copies variant into a new wishlist item, stamps id and added date,
// applies opts over the defaults, appends it to the snapshot and persists.
func (r *WishlistRepository) Add(variant model.ModelVariant, opts WishOptions) (*model.WishlistItem, error) {
	items, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	item := model.WishlistItem{
		ModelVariant: variant,
		ID:           r.idgen.New(),
		AddedDate:    r.clock.Now(),
		Priority:     model.PriorityMedium,
		Notes:        "",
	}
	if opts.Priority != "" {
		item.Priority = opts.Priority
	}
	if opts.Notes != "" {
		item.Notes = opts.Notes
	}

	items = append(items, item)
	if err := r.save(items); err != nil {
		return nil, err
	}

	r.logger.Info("added to wishlist", "id", item.ID, "name", item.Name, "priority", item.Priority)
	return &item, nil
}

// Update locates the item by id, merges the non-nil fields of update over it
// and persists the whole snapshot. Returns ErrNotFound when no item has the
// given id.
func (r *WishlistRepository) Update(id string, update WishlistUpdate) (*model.WishlistItem, error) {
	items, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("updating wishlist item %s: %w", id, ErrNotFound)
	}

	if update.Priority != nil {
		items[idx].Priority = *update.Priority
	}
	if update.Notes != nil {
		items[idx].Notes = *update.Notes
	}

	if err := r.save(items); err != nil {
		return nil, err
	}

	r.logger.Debug("wishlist item updated", "id", id)
	return &items[idx], nil
}

// Remove filters the item with the given id out of the snapshot and persists
// the remainder. Removing a nonexistent id is a successful no-op.
func (r *WishlistRepository) Remove(id string) error {
	items, err := r.GetAll()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if err := r.save(kept); err != nil {
		return err
	}

	r.logger.Info("removed from wishlist", "id", id)
	return nil
}

func (r *WishlistRepository) save(items []model.WishlistItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding wishlist: %w", err)
	}
	if err := r.store.Set(KeyWishlist, data); err != nil {
		return fmt.Errorf("writing wishlist: %w", err)
	}
	return nil
}
