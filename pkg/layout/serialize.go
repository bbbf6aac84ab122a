// Package layout creates, serializes and deserializes layout documents.
// Deserialization validates structure and version strictly; migration of
// older documents is an explicit pre-step owned by pkg/migrate, never
// performed implicitly here.
package layout

import (
	"encoding/json"
	"fmt"

	"github.com/braunma/rackarr/internal/constants"
	"github.com/braunma/rackarr/pkg/collision"
	"github.com/braunma/rackarr/pkg/library"
	"github.com/braunma/rackarr/pkg/models"
	"github.com/braunma/rackarr/pkg/validate"
)

// New creates an empty legacy-family layout seeded with the starter library
func New(name string) models.Layout {
	if name == "" {
		name = constants.DefaultLayoutName
	}
	now := models.Timestamp()
	return models.Layout{
		Version:       constants.CurrentVersion,
		Name:          name,
		Created:       now,
		Modified:      now,
		Settings:      models.LayoutSettings{Theme: models.ThemeDark},
		DeviceLibrary: library.Starter(),
		Racks:         []models.Rack{},
	}
}

// NewV02 creates a slug-family layout with one default rack and the starter
// device types
func NewV02(name string) models.LayoutV02 {
	if name == "" {
		name = constants.DefaultLayoutNameV02
	}
	return models.LayoutV02{
		Version:     constants.VersionV02,
		Name:        name,
		Rack:        models.NewRackV02(name, constants.DefaultRackHeight, constants.DefaultRackWidth),
		DeviceTypes: library.StarterTypes(),
		Settings: models.SettingsV02{
			DisplayMode:        models.DisplayMode(constants.DefaultDisplayMode),
			ShowLabelsOnImages: constants.DefaultShowLabelsOnImages,
		},
	}
}

// Serialize renders a layout as indented JSON, stamping the modified time.
// The caller's layout is not mutated; the stamp goes on a copy.
func Serialize(layout models.Layout) ([]byte, error) {
	layout.Modified = models.Timestamp()
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// SerializeV02 renders a slug-family layout as indented JSON
func SerializeV02(layout models.LayoutV02) ([]byte, error) {
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// Deserialize parses and validates a legacy-family document. Failures map
// to the load taxonomy: *SyntaxError for malformed JSON, *StructureError
// for schema/semantic violations, *VersionError for a version that is not
// current. Acceptance is all-or-nothing.
func Deserialize(data []byte) (models.Layout, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Layout{}, &SyntaxError{Err: err}
	}
	if err := checkShape(raw); err != nil {
		return models.Layout{}, err
	}

	var parsed models.Layout
	if err := json.Unmarshal(data, &parsed); err != nil {
		return models.Layout{}, &StructureError{Reason: err.Error()}
	}
	if err := validateSemantics(&parsed); err != nil {
		return models.Layout{}, err
	}
	if parsed.Version != constants.CurrentVersion {
		return models.Layout{}, &VersionError{Version: parsed.Version}
	}
	return parsed, nil
}

// ValidateStructure checks a parsed document against the legacy-family
// schema without the version gate, for callers that migrate afterwards.
func ValidateStructure(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return &SyntaxError{Err: err}
	}
	if err := checkShape(raw); err != nil {
		return err
	}
	var parsed models.Layout
	if err := json.Unmarshal(data, &parsed); err != nil {
		return &StructureError{Reason: err.Error()}
	}
	return validateSemantics(&parsed)
}

// checkShape verifies presence and primitive type of every top-level and
// settings field.
func checkShape(raw any) error {
	obj, ok := raw.(map[string]any)
	if !ok {
		return &StructureError{Reason: "document is not a JSON object"}
	}

	for _, field := range []string{"version", "name", "created", "modified"} {
		if _, ok := obj[field].(string); !ok {
			return &StructureError{Reason: fmt.Sprintf("missing or invalid field %q", field)}
		}
	}
	settings, ok := obj["settings"].(map[string]any)
	if !ok {
		return &StructureError{Reason: `missing or invalid field "settings"`}
	}
	theme, ok := settings["theme"].(string)
	if !ok || !models.Theme(theme).Valid() {
		return &StructureError{Reason: `settings.theme must be "dark" or "light"`}
	}
	if _, ok := obj["deviceLibrary"].([]any); !ok {
		return &StructureError{Reason: `"deviceLibrary" must be an array`}
	}
	if _, ok := obj["racks"].([]any); !ok {
		return &StructureError{Reason: `"racks" must be an array`}
	}
	return nil
}

// validateSemantics checks field validity, reference integrity and the
// no-overlap invariant.
func validateSemantics(parsed *models.Layout) error {
	if len(parsed.Racks) > constants.MaxRacks {
		return &StructureError{Reason: fmt.Sprintf("at most %d racks allowed, got %d", constants.MaxRacks, len(parsed.Racks))}
	}

	ids := make(map[string]bool, len(parsed.DeviceLibrary))
	for _, device := range parsed.DeviceLibrary {
		if result := validate.Device(device); !result.Valid {
			return &StructureError{Reason: fmt.Sprintf("device %q: %s", device.Name, result.Errors[0])}
		}
		ids[device.ID] = true
	}
	for _, rack := range parsed.Racks {
		if result := validate.Rack(rack); !result.Valid {
			return &StructureError{Reason: fmt.Sprintf("rack %q: %s", rack.Name, result.Errors[0])}
		}
		for _, placed := range rack.Devices {
			if !ids[placed.LibraryID] {
				return &StructureError{Reason: fmt.Sprintf("placement references unknown device %q in rack %q", placed.LibraryID, rack.Name)}
			}
			if placed.Position < 1 {
				return &StructureError{Reason: fmt.Sprintf("placement in rack %q has position %d, must be at least 1", rack.Name, placed.Position)}
			}
			if placed.Face != nil && !placed.Face.Valid() {
				return &StructureError{Reason: fmt.Sprintf("placement in rack %q has unknown face %q", rack.Name, *placed.Face)}
			}
		}
	}

	for _, rack := range parsed.Racks {
		for i := 0; i < len(rack.Devices); i++ {
			deviceA := parsed.FindDevice(rack.Devices[i].LibraryID)
			if deviceA == nil {
				continue
			}
			rangeA := collision.DeviceURange(rack.Devices[i].Position, deviceA.Height)
			for j := i + 1; j < len(rack.Devices); j++ {
				deviceB := parsed.FindDevice(rack.Devices[j].LibraryID)
				if deviceB == nil {
					continue
				}
				rangeB := collision.DeviceURange(rack.Devices[j].Position, deviceB.Height)
				if collision.RangesOverlap(rangeA, rangeB) {
					return &StructureError{Reason: fmt.Sprintf("overlapping devices at U%d and U%d in rack %q",
						rack.Devices[i].Position, rack.Devices[j].Position, rack.Name)}
				}
			}
		}
	}
	return nil
}

// DeserializeV02 parses and validates a slug-family document
func DeserializeV02(data []byte) (models.LayoutV02, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.LayoutV02{}, &SyntaxError{Err: err}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.LayoutV02{}, &StructureError{Reason: "document is not a JSON object"}
	}
	if _, ok := obj["rack"].(map[string]any); !ok {
		return models.LayoutV02{}, &StructureError{Reason: `missing or invalid field "rack"`}
	}
	if _, ok := obj["device_types"].([]any); !ok {
		return models.LayoutV02{}, &StructureError{Reason: `"device_types" must be an array`}
	}

	var parsed models.LayoutV02
	if err := json.Unmarshal(data, &parsed); err != nil {
		return models.LayoutV02{}, &StructureError{Reason: err.Error()}
	}
	if err := validateSemanticsV02(&parsed); err != nil {
		return models.LayoutV02{}, err
	}
	if parsed.Version != constants.VersionV02 {
		return models.LayoutV02{}, &VersionError{Version: parsed.Version}
	}
	return parsed, nil
}

func validateSemanticsV02(parsed *models.LayoutV02) error {
	if result := validate.RackV02(parsed.Rack); !result.Valid {
		return &StructureError{Reason: fmt.Sprintf("rack %q: %s", parsed.Rack.Name, result.Errors[0])}
	}
	if result := validate.Settings(parsed.Settings); !result.Valid {
		return &StructureError{Reason: "settings: " + result.Errors[0]}
	}
	for _, dt := range parsed.DeviceTypes {
		if result := validate.DeviceType(dt); !result.Valid {
			return &StructureError{Reason: fmt.Sprintf("device type %q: %s", dt.Slug, result.Errors[0])}
		}
	}
	if duplicates := library.DuplicateSlugs(parsed.DeviceTypes); len(duplicates) > 0 {
		return &StructureError{Reason: fmt.Sprintf("duplicate device type slug %q", duplicates[0])}
	}
	for _, placed := range parsed.Rack.Devices {
		if result := validate.Placement(placed); !result.Valid {
			return &StructureError{Reason: fmt.Sprintf("placement of %q: %s", placed.DeviceType, result.Errors[0])}
		}
		if library.FindDeviceType(parsed.DeviceTypes, placed.DeviceType) == nil {
			return &StructureError{Reason: fmt.Sprintf("placement references unknown device type %q", placed.DeviceType)}
		}
	}

	devices := parsed.Rack.Devices
	for i := 0; i < len(devices); i++ {
		typeA := library.FindDeviceType(parsed.DeviceTypes, devices[i].DeviceType)
		rangeA := collision.HalfUnitRange(devices[i].Position, typeA.UHeight)
		for j := i + 1; j < len(devices); j++ {
			if !collision.FacesOverlap(devices[i].Face, devices[j].Face) {
				continue
			}
			typeB := library.FindDeviceType(parsed.DeviceTypes, devices[j].DeviceType)
			rangeB := collision.HalfUnitRange(devices[j].Position, typeB.UHeight)
			if collision.RangesOverlap(rangeA, rangeB) {
				return &StructureError{Reason: fmt.Sprintf("overlapping devices at U%d and U%d",
					devices[i].Position, devices[j].Position)}
			}
		}
	}
	return nil
}
