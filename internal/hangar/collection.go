package hangar

import (
	"encoding/json"
	"fmt"

	"hangar-go/internal/model"
)

// AddOptions carries the caller-supplied metadata for a new collection item.
// Zero-value fields fall back to the defaults: status "unbuilt", location
// "Home", empty notes.
type AddOptions struct {
	Status   string
	Location string
	Notes    string
}

// CollectionUpdate is a partial-field update for a collection item. Nil
// fields are left untouched; non-nil fields replace the stored value
// (shallow merge).
type CollectionUpdate struct {
	Status   *string
	Location *string
	Notes    *string
	Photos   []string // full replacement photo list, nil = untouched
}

// CollectionRepository owns the user's collection of owned kits, persisted as
// a single ordered snapshot. Mutations read the full snapshot, modify it in
// memory, and persist the whole thing back; there is no locking, so
// overlapping mutations can lose updates (accepted single-user limitation).
type CollectionRepository struct {
	store  Store
	logger Logger
	clock  Clock
	idgen  IDGenerator
}

// NewCollectionRepository creates a CollectionRepository with the given
// dependencies.
func NewCollectionRepository(store Store, logger Logger, clock Clock, idgen IDGenerator) *CollectionRepository {
	return &CollectionRepository{store: store, logger: logger, clock: clock, idgen: idgen}
}

// GetAll returns the collection snapshot in insertion order, or an empty
// slice if nothing has been persisted.
func (r *CollectionRepository) GetAll() ([]model.CollectionItem, error) {
	data, err := r.store.Get(KeyCollection)
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}
	if data == nil {
		return []model.CollectionItem{}, nil
	}

	var items []model.CollectionItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding collection: %w", err)
	}
	return items, nil
}

// Add copies variant into a new collection item, stamps id and added date,
// applies opts over the defaults, appends it to the snapshot and persists.
// On a storage fault nothing is applied and the item is not created.
func (r *CollectionRepository) Add(variant model.ModelVariant, opts AddOptions) (*model.CollectionItem, error) {
	items, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	item := model.CollectionItem{
		ModelVariant: variant,
		ID:           r.idgen.New(),
		AddedDate:    r.clock.Now(),
		Status:       model.StatusUnbuilt,
		Location:     "Home",
		Photos:       []string{},
		Notes:        "",
	}
	if opts.Status != "" {
		item.Status = opts.Status
	}
	if opts.Location != "" {
		item.Location = opts.Location
	}
	if opts.Notes != "" {
		item.Notes = opts.Notes
	}

	items = append(items, item)
	if err := r.save(items); err != nil {
		return nil, err
	}

	r.logger.Info("added to collection", "id", item.ID, "name", item.Name, "grade", item.Grade)
	return &item, nil
}

// Update locates the item by id, merges the non-nil fields of update over it
// and persists the whole snapshot. Returns ErrNotFound when no item has the
// given id.
func (r *CollectionRepository) Update(id string, update CollectionUpdate) (*model.CollectionItem, error) {
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
		return nil, fmt.Errorf("updating collection item %s: %w", id, ErrNotFound)
	}

	if update.Status != nil {
		items[idx].Status = *update.Status
	}
	if update.Location != nil {
		items[idx].Location = *update.Location
	}
	if update.Notes != nil {
		items[idx].Notes = *update.Notes
	}
	if update.Photos != nil {
		items[idx].Photos = update.Photos
	}

	if err := r.save(items); err != nil {
		return nil, err
	}

	r.logger.Debug("collection item updated", "id", id)
	return &items[idx], nil
}

// Remove filters the item with the given id out of the snapshot and persists
// the remainder. Removing a nonexistent id is a successful no-op: the same
// snapshot is simply persisted again.
func (r *CollectionRepository) Remove(id string) error {
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

	r.logger.Info("removed from collection", "id", id)
	return nil
}

func (r *CollectionRepository) save(items []model.CollectionItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}
	if err := r.store.Set(KeyCollection, data); err != nil {
		return fmt.Errorf("writing collection: %w", err)
	}
	return nil
}
