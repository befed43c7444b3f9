package hangar

import (
	"encoding/json"
	"fmt"

	"hangar-go/internal/model"
)

// CatalogRepository owns the immutable reference catalog of known model
// variants. The catalog is seeded once when empty and is otherwise read-only
// from the app's point of view.
type CatalogRepository struct {
	store  Store
	logger Logger
}

// NewCatalogRepository creates a CatalogRepository backed by the given store.
func NewCatalogRepository(store Store, logger Logger) *CatalogRepository {
	return &CatalogRepository{store: store, logger: logger}
}

// GetAll returns the persisted catalog, or an empty slice if none exists.
func (r *CatalogRepository) GetAll() ([]model.ModelVariant, error) {
	data, err := r.store.Get(KeyCatalog)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if data == nil {
		return []model.ModelVariant{}, nil
	}

	var catalog []model.ModelVariant
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return catalog, nil
}

// SeedIfEmpty writes defaults as the catalog if no catalog has been persisted
// yet, and returns whichever set is now authoritative. Safe to call on every
// catalog access.
func (r *CatalogRepository) SeedIfEmpty(defaults []model.ModelVariant) ([]model.ModelVariant, error) {
	existing, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	if err := r.Save(defaults); err != nil {
		return nil, err
	}
	r.logger.Info("catalog seeded", "variants", len(defaults))
	return defaults, nil
}

// Save overwrites the entire catalog snapshot.
func (r *CatalogRepository) Save(catalog []model.ModelVariant) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := r.store.Set(KeyCatalog, data); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}
