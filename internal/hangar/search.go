package hangar

import (
	"slices"
	"strings"

	"hangar-go/internal/model"
)

// Filters restricts search results. Empty facet slices mean unrestricted;
// YearFrom/YearTo of 0 mean no bound on that side. All predicates are
// AND-combined.
type Filters struct {
	Grades   []string
	Series   []string
	Scales   []string
	YearFrom int
	YearTo   int
}

// FilterVariants applies the free-text query and facet filters to variants,
// preserving the input order. The text predicate is a case-insensitive
// substring match over name, series and model number; a variant passes when
// at least one field contains the query.
func FilterVariants(variants []model.ModelVariant, query string, filters Filters) []model.ModelVariant {
	results := make([]model.ModelVariant, 0, len(variants))

	q := strings.ToLower(strings.TrimSpace(query))
	for _, v := range variants {
		if q != "" && !matchesQuery(v, q) {
			continue
		}
		if len(filters.Grades) > 0 && !slices.Contains(filters.Grades, v.Grade) {
			continue
		}
		if len(filters.Series) > 0 && !slices.Contains(filters.Series, v.Series) {
			continue
		}
		if len(filters.Scales) > 0 && !slices.Contains(filters.Scales, v.Scale) {
			continue
		}
		if filters.YearFrom != 0 && v.ReleaseYear < filters.YearFrom {
			continue
		}
		if filters.YearTo != 0 && v.ReleaseYear > filters.YearTo {
			continue
		}
		results = append(results, v)
	}
	return results
}

func matchesQuery(v model.ModelVariant, q string) bool {
	return strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Series), q) ||
		strings.Contains(strings.ToLower(v.ModelNumber), q)
}

// FacetOptions enumerates the filterable values present in a catalog
// snapshot, for building filter UIs.
type FacetOptions struct {
	Grades  []string
	Series  []string
	Scales  []string
	MinYear int
	MaxYear int
}

// Facets collects the distinct grades, series and scales (sorted) and the
// release year range of the given catalog.
func Facets(variants []model.ModelVariant) FacetOptions {
	opts := FacetOptions{
		Grades: distinctSorted(variants, func(v model.ModelVariant) string { return v.Grade }),
		Series: distinctSorted(variants, func(v model.ModelVariant) string { return v.Series }),
		Scales: distinctSorted(variants, func(v model.ModelVariant) string { return v.Scale }),
	}
	for i, v := range variants {
		if i == 0 || v.ReleaseYear < opts.MinYear {
			opts.MinYear = v.ReleaseYear
		}
		if v.ReleaseYear > opts.MaxYear {
			opts.MaxYear = v.ReleaseYear
		}
	}
	return opts
}

func distinctSorted(variants []model.ModelVariant, field func(model.ModelVariant) string) []string {
	seen := make(map[string]bool, len(variants))
	var values []string
	for _, v := range variants {
		f := field(v)
		if f != "" && !seen[f] {
			seen[f] = true
			values = append(values, f)
		}
	}
	slices.Sort(values)
	return values
}
