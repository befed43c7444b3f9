package hangar

import "errors"

// Snapshot keys, one per logical collection. Each key holds the full current
// snapshot of its collection as a single serialized value; every mutation is a
// read-modify-write of the whole snapshot.
const (
	KeyCatalog    = "hangar/catalog"
	KeyCollection = "hangar/collection"
	KeyWishlist   = "hangar/wishlist"
	KeyLocations  = "hangar/locations"
)

// ErrNotFound signals that an update target id is absent. It is distinct from
// a storage fault: the snapshot was read fine, the item just isn't in it.
var ErrNotFound = errors.New("item not found")

// Store is the durable key-value backing store behind the repositories.
// Implementations live in internal/store.
type Store interface {
	// Get returns the blob stored under key, or (nil, nil) if the key has
	// never been written. A non-nil error means the read itself failed.
	Get(key string) ([]byte, error)

	// Set durably replaces the blob under key. The write either fully
	// replaces the previous value or leaves it untouched.
	Set(key string, data []byte) error

	// ValidateSetup verifies the backend is usable (paths exist, bucket
	// reachable, schema current).
	ValidateSetup() error
}
