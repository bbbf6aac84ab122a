// Package collision implements the rack occupancy engine: integer-interval
// math over U positions, placement legality checks and valid-position search.
package collision

import (
	"math"

	"github.com/braunma/rackarr/pkg/models"
)

// NoExclude is passed as the exclude index when no placement should be
// skipped during a collision scan.
const NoExclude = -1

// URange is the inclusive span of U positions a device occupies
type URange struct {
	Bottom int
	Top    int
}

// DeviceURange returns the span occupied by a device of the given height
// placed with its bottom at position. Height must be >= 1.
func DeviceURange(position, height int) URange {
	return URange{Bottom: position, Top: position + height - 1}
}

// RangesOverlap reports whether two spans share at least one U. Touching
// edges ({1,2} vs {2,3}) count as overlapping.
func RangesOverlap(a, b URange) bool {
	return a.Bottom <= b.Top && a.Top >= b.Bottom
}

// FacesOverlap reports whether two placements share a collision plane.
// Front and rear are independent; "both" collides with everything.
func FacesOverlap(a, b models.DeviceFace) bool {
	return a == models.FaceBoth || b == models.FaceBoth || a == b
}

// CanPlace reports whether a device of the given height may be placed with
// its bottom at target in the rack. exclude is the index in rack.Devices to
// skip (the device being moved), or NoExclude. Placements whose library
// reference does not resolve are skipped; dangling references are the
// validators' concern, not the engine's.
func CanPlace(rack *models.Rack, library []models.Device, height, target, exclude int) bool {
	if target < 1 {
		return false
	}
	if target+height-1 > rack.Height {
		return false
	}

	newRange := DeviceURange(target, height)
	for i, placed := range rack.Devices {
		if i == exclude {
			continue
		}
		device := findDevice(library, placed.LibraryID)
		if device == nil {
			continue
		}
		if RangesOverlap(newRange, DeviceURange(placed.Position, device.Height)) {
			return false
		}
	}
	return true
}

// FindCollisions returns the placements a device of the given height at
// target would overlap. Same scan as CanPlace, reporting offenders instead
// of a boolean.
func FindCollisions(rack *models.Rack, library []models.Device, height, target, exclude int) []models.PlacedDevice {
	var collisions []models.PlacedDevice
	newRange := DeviceURange(target, height)

	for i, placed := range rack.Devices {
		if i == exclude {
			continue
		}
		device := findDevice(library, placed.LibraryID)
		if device == nil {
			continue
		}
		if RangesOverlap(newRange, DeviceURange(placed.Position, device.Height)) {
			collisions = append(collisions, placed)
		}
	}
	return collisions
}

// FindValidDropPositions returns every bottom position, ascending, where a
// device of the given height can be placed. Brute force over 1..height-h+1;
// rack heights are small enough that this is fine.
func FindValidDropPositions(rack *models.Rack, library []models.Device, height int) []int {
	var valid []int
	maxPosition := rack.Height - height + 1
	for position := 1; position <= maxPosition; position++ {
		if CanPlace(rack, library, height, position, NoExclude) {
			valid = append(valid, position)
		}
	}
	return valid
}

// yToUPosition converts a pixel Y (SVG convention, y=0 at the rack top) to
// an approximate U coordinate.
func yToUPosition(y float64, rackHeight int, uHeightPx float64) int {
	return rackHeight - int(math.Floor(y/uHeightPx))
}

// SnapToNearestValidPosition maps a pixel Y to the closest valid drop
// position. Ties keep the lower position (first found in ascending order).
// ok is false when the rack has no valid position for the height.
func SnapToNearestValidPosition(rack *models.Rack, library []models.Device, height int, targetY, uHeightPx float64) (position int, ok bool) {
	valid := FindValidDropPositions(rack, library, height)
	if len(valid) == 0 {
		return 0, false
	}

	targetU := yToUPosition(targetY, rack.Height, uHeightPx)
	closest := valid[0]
	closestDist := abs(targetU - closest)
	for _, candidate := range valid[1:] {
		if d := abs(targetU - candidate); d < closestDist {
			closestDist = d
			closest = candidate
		}
	}
	return closest, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func findDevice(library []models.Device, id string) *models.Device {
	for i := range library {
		if library[i].ID == id {
			return &library[i]
		}
	}
	return nil
}
