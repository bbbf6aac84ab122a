package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/braunma/rackarr/internal/constants"
)

// Device is a library entry in the legacy by-id family. Placements reference
// it by opaque ID; the entry itself is never copied into a rack.
type Device struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Height       int            `json:"height"`
	Colour       string         `json:"colour"`
	Category     DeviceCategory `json:"category"`
	Notes        string         `json:"notes,omitempty"`
	Manufacturer string         `json:"manufacturer,omitempty"`
	Model        string         `json:"model,omitempty"`
	IsFullDepth  *bool          `json:"is_full_depth,omitempty"`
	Weight       *float64       `json:"weight,omitempty"`
	WeightUnit   WeightUnit     `json:"weight_unit,omitempty"`
	Airflow      Airflow        `json:"airflow,omitempty"`
}

// PlacedDevice is a placement in a legacy-family rack: a reference to a
// library Device plus a bottom U position. Face is nil in pre-0.2 documents;
// migration fills it with "front".
type PlacedDevice struct {
	LibraryID string      `json:"libraryId"`
	Position  int         `json:"position"`
	Face      *DeviceFace `json:"face,omitempty"`
}

// EffectiveFace resolves the placement's face, defaulting to front when the
// document predates the face field.
func (p PlacedDevice) EffectiveFace() DeviceFace {
	if p.Face == nil {
		return FaceFront
	}
	return *p.Face
}

// Rack is a legacy-family rack. View, FormFactor, DescUnits and StartingUnit
// were added across schema generations and are nil when a document predates
// them.
type Rack struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Height       int            `json:"height"`
	Width        int            `json:"width"`
	Position     int            `json:"position"`
	View         *RackView      `json:"view,omitempty"`
	FormFactor   *FormFactor    `json:"form_factor,omitempty"`
	DescUnits    *bool          `json:"desc_units,omitempty"`
	StartingUnit *int           `json:"starting_unit,omitempty"`
	Devices      []PlacedDevice `json:"devices"`
}

// LayoutSettings holds legacy-family document settings. DisplayMode,
// ShowLabelsOnImages and View are nil in pre-0.3 documents.
type LayoutSettings struct {
	Theme              Theme        `json:"theme"`
	DisplayMode        *DisplayMode `json:"displayMode,omitempty"`
	ShowLabelsOnImages *bool        `json:"showLabelsOnImages,omitempty"`
	View               *RackView    `json:"view,omitempty"`
}

// Layout is the legacy-family document root: multiple racks referencing a
// shared device library by ID.
type Layout struct {
	Version       string         `json:"version"`
	Name          string         `json:"name"`
	Created       string         `json:"created"`
	Modified      string         `json:"modified"`
	Settings      LayoutSettings `json:"settings"`
	DeviceLibrary []Device       `json:"deviceLibrary"`
	Racks         []Rack         `json:"racks"`
}

// FindDevice returns the library entry with the given ID, or nil
func (l *Layout) FindDevice(id string) *Device {
	for i := range l.DeviceLibrary {
		if l.DeviceLibrary[i].ID == id {
			return &l.DeviceLibrary[i]
		}
	}
	return nil
}

// NewDeviceParams are the caller-supplied fields for a new library device
type NewDeviceParams struct {
	Name     string
	Height   int
	Category DeviceCategory
	ID       string
	Colour   string
	Notes    string
}

// NewDevice builds a library device, generating the ID and falling back to
// the category's default colour when none is given.
func NewDevice(params NewDeviceParams) Device {
	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}
	colour := params.Colour
	if colour == "" {
		colour = CategoryColours[params.Category]
	}
	return Device{
		ID:       id,
		Name:     params.Name,
		Height:   params.Height,
		Colour:   colour,
		Category: params.Category,
		Notes:    params.Notes,
	}
}

// NewRack builds a legacy rack with a generated ID and an empty device list
func NewRack(name string, height, width, position int) Rack {
	view := ViewFront
	ff := FormFactor(constants.DefaultFormFactor)
	descUnits := constants.DefaultDescUnits
	startingUnit := constants.DefaultStartingUnit
	return Rack{
		ID:           uuid.NewString(),
		Name:         name,
		Height:       height,
		Width:        width,
		Position:     position,
		View:         &view,
		FormFactor:   &ff,
		DescUnits:    &descUnits,
		StartingUnit: &startingUnit,
		Devices:      []PlacedDevice{},
	}
}

// Timestamp returns the current time in the document timestamp format
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
