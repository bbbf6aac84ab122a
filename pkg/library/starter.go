package library

import (
	"github.com/braunma/rackarr/internal/constants"
	"github.com/braunma/rackarr/pkg/models"
	"github.com/braunma/rackarr/pkg/slug"
)

type starterEntry struct {
	name     string
	height   int
	category models.DeviceCategory
}

// 22 entries, every category represented
var starterEntries = []starterEntry{
	{"1U Server", 1, models.CategoryServer},
	{"2U Server", 2, models.CategoryServer},
	{"4U Server", 4, models.CategoryServer},
	{"1U Switch", 1, models.CategoryNetwork},
	{"1U Router", 1, models.CategoryNetwork},
	{"1U Firewall", 1, models.CategoryNetwork},
	{"1U Patch Panel", 1, models.CategoryPatchPanel},
	{"2U Patch Panel", 2, models.CategoryPatchPanel},
	{"1U PDU", 1, models.CategoryPower},
	{"2U UPS", 2, models.CategoryPower},
	{"4U UPS", 4, models.CategoryPower},
	{"2U NAS", 2, models.CategoryStorage},
	{"4U Disk Shelf", 4, models.CategoryStorage},
	{"1U KVM Console", 1, models.CategoryKVM},
	{"1U KVM Switch", 1, models.CategoryKVM},
	{"2U AV Receiver", 2, models.CategoryAVMedia},
	{"1U Audio Mixer", 1, models.CategoryAVMedia},
	{"1U Fan Panel", 1, models.CategoryCooling},
	{"2U Cooling Unit", 2, models.CategoryCooling},
	{"1U Blank", 1, models.CategoryBlank},
	{"2U Blank", 2, models.CategoryBlank},
	{"1U Shelf", 1, models.CategoryOther},
}

// Starter returns the predefined starter device library seeded into new
// legacy-family layouts. IDs are deterministic ("starter-" + slugified name)
// so they stay stable across sessions.
func Starter() []models.Device {
	devices := make([]models.Device, len(starterEntries))
	for i, e := range starterEntries {
		devices[i] = models.Device{
			ID:       constants.StarterIDPrefix + slug.Slugify(e.name),
			Name:     e.name,
			Height:   e.height,
			Colour:   models.CategoryColours[e.category],
			Category: e.category,
		}
	}
	return devices
}

// StarterTypes returns the starter library expressed as slug-family device
// types, for seeding new single-rack layouts.
func StarterTypes() []models.DeviceType {
	uniquer := slug.NewUniquer()
	types := make([]models.DeviceType, len(starterEntries))
	for i, e := range starterEntries {
		types[i] = models.DeviceType{
			Slug:    uniquer.Unique(slug.Slugify(e.name)),
			UHeight: float64(e.height),
			Model:   e.name,
			Rackarr: models.RackarrExtensions{
				Colour:   models.CategoryColours[e.category],
				Category: e.category,
			},
		}
	}
	return types
}
