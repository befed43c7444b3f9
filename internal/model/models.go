package model

import "time"

// ModelVariant is one entry in the master catalog. Catalog entries are seeded
// once and never mutated in place; identity for matching purposes is the
// (ModelNumber, Grade) pair, since the same kit is released in several grades
// and scales.
type ModelVariant struct {
	ModelNumber  string  `json:"modelNumber"`
	Name         string  `json:"name"`
	Series       string  `json:"series"`
	Grade        string  `json:"grade"`
	Scale        string  `json:"scale"`
	Manufacturer string  `json:"manufacturer"`
	ReleaseYear  int     `json:"releaseYear"`
	Price        float64 `json:"price"`
	Barcode      string  `json:"barcode,omitempty"`
	Description  string  `json:"description"`
}

// Build statuses for owned kits.
const (
	StatusUnbuilt   = "unbuilt"
	StatusBuilding  = "building"
	StatusCompleted = "completed"
)

// Wishlist priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// CollectionItem is an owned kit. It carries a full independent copy of the
// catalog variant's fields; later catalog edits do not propagate to it.
type CollectionItem struct {
	ModelVariant

	ID        string    `json:"id"` // UUID, unique within the collection
	AddedDate time.Time `json:"addedDate"`
	Status    string    `json:"status"`   // one of the Status constants
	Location  string    `json:"location"` // registry value at creation time, not re-validated afterward
	Photos    []string  `json:"photos"`   // opaque URIs, append-only
	Notes     string    `json:"notes"`
}

// WishlistItem is a kit the user wants but does not own.
type WishlistItem struct {
	ModelVariant

	ID        string    `json:"id"` // UUID, independent namespace from collection ids
	AddedDate time.Time `json:"addedDate"`
	Priority  string    `json:"priority"` // one of the Priority constants
	Notes     string    `json:"notes"`
}

// ValidStatus reports whether s is a recognized build status.
func ValidStatus(s string) bool {
	return s == StatusUnbuilt || s == StatusBuilding || s == StatusCompleted
}

// ValidPriority reports whether p is a recognized wishlist priority.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
