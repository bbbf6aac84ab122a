// Package migrate upgrades layout documents across schema generations: the
// additive within-family version bump, and the structural conversion from
// the legacy by-id multi-rack shape to the slug-keyed single-rack shape.
package migrate

import (
	"encoding/json"

	"github.com/braunma/rackarr/internal/constants"
	"github.com/braunma/rackarr/pkg/models"
)

// Migrate upgrades a legacy-family layout to the current version. Purely
// additive: missing optional fields get their generation defaults, nothing
// is removed or renamed, and the version stamp is overwritten
// unconditionally. The input is never mutated.
func Migrate(layout models.Layout) models.Layout {
	migrated := clone(layout)
	migrated.Version = constants.CurrentVersion
	migrated.Settings = migrateSettings(migrated.Settings)
	for i := range migrated.Racks {
		migrated.Racks[i] = migrateRack(migrated.Racks[i])
	}
	return migrated
}

func migrateSettings(settings models.LayoutSettings) models.LayoutSettings {
	if settings.DisplayMode == nil {
		mode := models.DisplayMode(constants.DefaultDisplayMode)
		settings.DisplayMode = &mode
	}
	if settings.ShowLabelsOnImages == nil {
		show := constants.DefaultShowLabelsOnImages
		settings.ShowLabelsOnImages = &show
	}
	if settings.View == nil {
		view := models.RackView(constants.DefaultRackView)
		settings.View = &view
	}
	return settings
}

func migrateRack(rack models.Rack) models.Rack {
	if rack.View == nil {
		view := models.RackView(constants.DefaultRackView)
		rack.View = &view
	}
	if rack.FormFactor == nil {
		ff := models.FormFactor(constants.DefaultFormFactor)
		rack.FormFactor = &ff
	}
	if rack.DescUnits == nil {
		descUnits := constants.DefaultDescUnits
		rack.DescUnits = &descUnits
	}
	if rack.StartingUnit == nil {
		startingUnit := constants.DefaultStartingUnit
		rack.StartingUnit = &startingUnit
	}
	for i := range rack.Devices {
		if rack.Devices[i].Face == nil {
			face := models.DeviceFace(constants.DefaultDeviceFace)
			rack.Devices[i].Face = &face
		}
	}
	return rack
}

// clone deep-copies a layout through JSON so slices and pointers of the
// original stay untouched.
func clone(layout models.Layout) models.Layout {
	data, err := json.Marshal(layout)
	if err != nil {
		// Layout contains only marshalable types
		panic(err)
	}
	var copied models.Layout
	if err := json.Unmarshal(data, &copied); err != nil {
		panic(err)
	}
	return copied
}
