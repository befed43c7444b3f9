package hangar

import (
	"math"

	"hangar-go/internal/model"
)

// StatusCounts is the build-status histogram over a collection snapshot.
// Items with an unrecognized status contribute to no bucket.
type StatusCounts struct {
	Unbuilt   int
	Building  int
	Completed int
}

// Stats is the set of derived figures over a collection and wishlist
// snapshot. Histogram keys are the literal string values on the items; no
// normalization, so distinct casing produces distinct buckets.
type Stats struct {
	TotalModels    int
	WishlistCount  int
	StatusCounts   StatusCounts
	GradeCounts    map[string]int
	SeriesCounts   map[string]int
	LocationCounts map[string]int

	CollectionValue float64
	WishlistValue   float64

	// CompletionRate is completed/total as a percentage, rounded to one
	// decimal; 0 for an empty collection.
	CompletionRate float64

	// AveragePerModel is CollectionValue/TotalModels; 0 for an empty
	// collection.
	AveragePerModel float64
}

// ComputeStats derives statistics from the given snapshots. It is a pure
// read-time computation; nothing here is persisted.
func ComputeStats(collection []model.CollectionItem, wishlist []model.WishlistItem) Stats {
	stats := Stats{
		TotalModels:    len(collection),
		WishlistCount:  len(wishlist),
		GradeCounts:    make(map[string]int),
		SeriesCounts:   make(map[string]int),
		LocationCounts: make(map[string]int),
	}

	for _, item := range collection {
		switch item.Status {
		case model.StatusUnbuilt:
			stats.StatusCounts.Unbuilt++
		case model.StatusBuilding:
			stats.StatusCounts.Building++
		case model.StatusCompleted:
			stats.StatusCounts.Completed++
		}
		stats.GradeCounts[item.Grade]++
		stats.SeriesCounts[item.Series]++
		stats.LocationCounts[item.Location]++
		stats.CollectionValue += item.Price
	}

	for _, item := range wishlist {
		stats.WishlistValue += item.Price
	}

	if stats.TotalModels > 0 {
		rate := float64(stats.StatusCounts.Completed) / float64(stats.TotalModels) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
		stats.AveragePerModel = stats.CollectionValue / float64(stats.TotalModels)
	}

	return stats
}
