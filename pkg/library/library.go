// Package library provides lookups over device libraries: slug resolution,
// display names, the starter seed and the curated brand packs.
package library

import "github.com/braunma/rackarr/pkg/models"

// FindDeviceType returns the device type with the given slug, or nil
func FindDeviceType(types []models.DeviceType, slug string) *models.DeviceType {
	for i := range types {
		if types[i].Slug == slug {
			return &types[i]
		}
	}
	return nil
}

// DisplayName resolves the name shown for a placement. Resolution order is
// explicit placement name, then the type's model, then the raw slug. A
// missing type never fails; it falls back to the slug string.
func DisplayName(placement models.Placement, types []models.DeviceType) string {
	if placement.Name != "" {
		return placement.Name
	}
	if dt := FindDeviceType(types, placement.DeviceType); dt != nil && dt.Model != "" {
		return dt.Model
	}
	return placement.DeviceType
}

// DuplicateSlugs returns the slugs that appear more than once, each reported
// a single time, in first-occurrence order.
func DuplicateSlugs(types []models.DeviceType) []string {
	seen := make(map[string]int)
	var duplicates []string
	for _, dt := range types {
		seen[dt.Slug]++
		if seen[dt.Slug] == 2 {
			duplicates = append(duplicates, dt.Slug)
		}
	}
	return duplicates
}
