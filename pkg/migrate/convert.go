package migrate

import (
	"fmt"

	"github.com/braunma/rackarr/internal/constants"
	"github.com/braunma/rackarr/pkg/models"
	"github.com/braunma/rackarr/pkg/slug"
)

// DetectVersion identifies the schema version of a parsed document. An
// explicit version field wins; otherwise the document shape is
// fingerprinted: a deviceLibrary array marks the legacy by-id family, a
// device_types array with a singular rack marks the slug family.
func DetectVersion(doc any) string {
	obj, ok := doc.(map[string]any)
	if !ok {
		return constants.VersionUnknown
	}

	if version, ok := obj["version"].(string); ok && version != "" {
		return version
	}
	if _, ok := obj["deviceLibrary"].([]any); ok {
		return constants.VersionLegacyInferred
	}
	_, hasTypes := obj["device_types"].([]any)
	_, hasRack := obj["rack"].(map[string]any)
	if hasTypes && hasRack {
		return constants.VersionV02
	}
	return constants.VersionUnknown
}

// Diagnostics reports what the lossy cross-family conversion narrowed away
type Diagnostics struct {
	// DroppedPlacements counts placements whose libraryId resolved to
	// nothing in the source library.
	DroppedPlacements int
	// DroppedRacks names the racks beyond the first, which the single-rack
	// shape has no slot for.
	DroppedRacks []string
}

// ToV02 converts a legacy by-id multi-rack layout to the slug-keyed
// single-rack shape. The conversion is one-way and intentionally lossy:
// only the first rack survives, dangling placements are dropped, and the
// theme setting has no equivalent in the target shape. The returned id→slug
// map lets callers translate other id-keyed references (image-store keys).
func ToV02(layout models.Layout) (models.LayoutV02, map[string]string, Diagnostics) {
	var diags Diagnostics

	idToSlug := make(map[string]string, len(layout.DeviceLibrary))
	uniquer := slug.NewUniquer()
	deviceTypes := make([]models.DeviceType, 0, len(layout.DeviceLibrary))
	for _, device := range layout.DeviceLibrary {
		dt := convertDevice(device, uniquer)
		idToSlug[device.ID] = dt.Slug
		deviceTypes = append(deviceTypes, dt)
	}

	rack := convertRack(layout.Racks, idToSlug, &diags)

	converted := models.LayoutV02{
		Version:     constants.VersionV02,
		Name:        layout.Name,
		Rack:        rack,
		DeviceTypes: deviceTypes,
		Settings:    convertSettings(layout.Settings),
	}
	return converted, idToSlug, diags
}

func convertDevice(device models.Device, uniquer *slug.Uniquer) models.DeviceType {
	base := slug.ForDevice(device.Manufacturer, device.Model, device.Name)
	return models.DeviceType{
		Slug:         uniquer.Unique(base),
		UHeight:      float64(device.Height),
		Manufacturer: device.Manufacturer,
		Model:        device.Model,
		IsFullDepth:  device.IsFullDepth,
		Weight:       device.Weight,
		WeightUnit:   device.WeightUnit,
		Airflow:      device.Airflow,
		Comments:     device.Notes,
		Rackarr: models.RackarrExtensions{
			Colour:   device.Colour,
			Category: device.Category,
		},
	}
}

// convertRack narrows the source racks to the single slot the target shape
// has. The runtime-only view field is never carried over.
func convertRack(racks []models.Rack, idToSlug map[string]string, diags *Diagnostics) models.RackV02 {
	if len(racks) == 0 {
		return models.NewRackV02(constants.DefaultRackName, constants.DefaultRackHeight, constants.DefaultRackWidth)
	}
	for _, dropped := range racks[1:] {
		diags.DroppedRacks = append(diags.DroppedRacks, dropped.Name)
	}

	source := racks[0]
	rack := models.RackV02{
		Name:         source.Name,
		Height:       source.Height,
		Width:        source.Width,
		DescUnits:    constants.DefaultDescUnits,
		FormFactor:   models.FormFactor(constants.DefaultFormFactor),
		StartingUnit: constants.DefaultStartingUnit,
		Position:     source.Position,
		Devices:      []models.Placement{},
	}
	if source.FormFactor != nil {
		rack.FormFactor = *source.FormFactor
	}
	if source.DescUnits != nil {
		rack.DescUnits = *source.DescUnits
	}
	if source.StartingUnit != nil {
		rack.StartingUnit = *source.StartingUnit
	}

	for _, placed := range source.Devices {
		typeSlug, ok := idToSlug[placed.LibraryID]
		if !ok {
			diags.DroppedPlacements++
			continue
		}
		rack.Devices = append(rack.Devices, models.Placement{
			DeviceType: typeSlug,
			Position:   placed.Position,
			Face:       placed.EffectiveFace(),
		})
	}
	return rack
}

// convertSettings renames the settings fields to their snake_case target
// names. Theme is dropped; it has no slug-family equivalent. A source
// without showLabelsOnImages gets true, unlike the within-family default:
// image labels default on in the single-rack product.
func convertSettings(settings models.LayoutSettings) models.SettingsV02 {
	converted := models.SettingsV02{
		DisplayMode:        models.DisplayMode(constants.DefaultDisplayMode),
		ShowLabelsOnImages: true,
	}
	if settings.DisplayMode != nil {
		converted.DisplayMode = *settings.DisplayMode
	}
	if settings.ShowLabelsOnImages != nil {
		converted.ShowLabelsOnImages = *settings.ShowLabelsOnImages
	}
	return converted
}

// TranslateImageKeys rewrites an id-keyed map through the id→slug map from
// ToV02, dropping entries with no surviving device type.
func TranslateImageKeys[V any](store map[string]V, idToSlug map[string]string) map[string]V {
	translated := make(map[string]V, len(store))
	for id, value := range store {
		if typeSlug, ok := idToSlug[id]; ok {
			translated[typeSlug] = value
		}
	}
	return translated
}

// Describe renders diagnostics for CLI reporting, one line per finding
func (d Diagnostics) Describe() []string {
	var lines []string
	if d.DroppedPlacements > 0 {
		lines = append(lines, fmt.Sprintf("%d placement(s) referenced missing devices and were dropped", d.DroppedPlacements))
	}
	for _, name := range d.DroppedRacks {
		lines = append(lines, fmt.Sprintf("rack %q was dropped (single-rack format)", name))
	}
	return lines
}
