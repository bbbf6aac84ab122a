package collision

import "github.com/braunma/rackarr/pkg/models"

// Slug-family checks. Device types may be half-U tall, so occupancy is
// computed on a half-unit grid and reuses the same inclusive overlap test.

// HalfUnitRange returns the half-unit span for a device of uHeight rack
// units with its bottom at position.
func HalfUnitRange(position int, uHeight float64) URange {
	bottom := position * 2
	return URange{Bottom: bottom, Top: bottom + int(uHeight*2) - 1}
}

// CanPlaceType reports whether a device type of the given height may be
// placed at target on the given face. Placements on the opposite plane are
// ignored; "both" occupies front and rear alike. exclude is the index in
// rack.Devices to skip, or NoExclude.
func CanPlaceType(rack *models.RackV02, types []models.DeviceType, uHeight float64, target int, face models.DeviceFace, exclude int) bool {
	if target < 1 {
		return false
	}
	if float64(target)+uHeight-1 > float64(rack.Height) {
		return false
	}

	newRange := HalfUnitRange(target, uHeight)
	for i, placed := range rack.Devices {
		if i == exclude {
			continue
		}
		if !FacesOverlap(face, placed.Face) {
			continue
		}
		dt := findType(types, placed.DeviceType)
		if dt == nil {
			continue
		}
		if RangesOverlap(newRange, HalfUnitRange(placed.Position, dt.UHeight)) {
			return false
		}
	}
	return true
}

// FindTypeCollisions returns the placements that block a device type of the
// given height at target on the given face.
func FindTypeCollisions(rack *models.RackV02, types []models.DeviceType, uHeight float64, target int, face models.DeviceFace, exclude int) []models.Placement {
	var collisions []models.Placement
	newRange := HalfUnitRange(target, uHeight)

	for i, placed := range rack.Devices {
		if i == exclude {
			continue
		}
		if !FacesOverlap(face, placed.Face) {
			continue
		}
		dt := findType(types, placed.DeviceType)
		if dt == nil {
			continue
		}
		if RangesOverlap(newRange, HalfUnitRange(placed.Position, dt.UHeight)) {
			collisions = append(collisions, placed)
		}
	}
	return collisions
}

func findType(types []models.DeviceType, slug string) *models.DeviceType {
	for i := range types {
		if types[i].Slug == slug {
			return &types[i]
		}
	}
	return nil
}
