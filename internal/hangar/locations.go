package hangar

import (
	"encoding/json"
	"fmt"
	"slices"
)

// DefaultLocations is the seed set written on first initialization. Entries
// are never removed or renamed once added.
var DefaultLocations = []string{"Home", "Storage", "Work", "Display Case"}

// LocationRegistry manages the set of named storage locations. The set
// preserves insertion order for display.
type LocationRegistry struct {
	store  Store
	logger Logger
}

// NewLocationRegistry creates a LocationRegistry backed by the given store.
func NewLocationRegistry(store Store, logger Logger) *LocationRegistry {
	return &LocationRegistry{store: store, logger: logger}
}

// Initialize writes the default location set if no location list has been
// persisted yet. Idempotent: calling it when data exists is a no-op.
func (r *LocationRegistry) Initialize() error {
	data, err := r.store.Get(KeyLocations)
	if err != nil {
		return fmt.Errorf("reading locations: %w", err)
	}
	if data != nil {
		return nil
	}
	if err := r.save(DefaultLocations); err != nil {
		return err
	}
	r.logger.Info("locations initialized", "count", len(DefaultLocations))
	return nil
}

// List returns the persisted locations, falling back to the default set when
// nothing has been persisted yet.
func (r *LocationRegistry) List() ([]string, error) {
	data, err := r.store.Get(KeyLocations)
	if err != nil {
		return nil, fmt.Errorf("reading locations: %w", err)
	}
	if data == nil {
		return slices.Clone(DefaultLocations), nil
	}

	var locations []string
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("decoding locations: %w", err)
	}
	return locations, nil
}

// Add appends name to the registry unless it is already present (exact,
// case-sensitive match), and returns the resulting full list either way.
func (r *LocationRegistry) Add(name string) ([]string, error) {
	locations, err := r.List()
	if err != nil {
		return nil, err
	}
	if slices.Contains(locations, name) {
		return locations, nil
	}

	locations = append(locations, name)
	if err := r.save(locations); err != nil {
		return nil, err
	}
	r.logger.Info("location added", "name", name)
	return locations, nil
}

func (r *LocationRegistry) save(locations []string) error {
	data, err := json.Marshal(locations)
	if err != nil {
		return fmt.Errorf("encoding locations: %w", err)
	}
	if err := r.store.Set(KeyLocations, data); err != nil {
		return fmt.Errorf("writing locations: %w", err)
	}
	return nil
}
