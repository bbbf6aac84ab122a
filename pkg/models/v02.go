package models

import "github.com/braunma/rackarr/internal/constants"

// RackarrExtensions carries the vendor-extension fields of a DeviceType that
// have no NetBox equivalent. The "rackarr" key is part of the wire format.
type RackarrExtensions struct {
	Colour   string         `json:"colour" yaml:"colour"`
	Category DeviceCategory `json:"category" yaml:"category"`
	Tags     []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// DeviceType is a slug-keyed device template in the single-rack family.
// Heights are in rack units and may be half-U (0.5 steps).
type DeviceType struct {
	Slug         string            `json:"slug" yaml:"slug"`
	UHeight      float64           `json:"u_height" yaml:"u_height"`
	Manufacturer string            `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string            `json:"model,omitempty" yaml:"model,omitempty"`
	IsFullDepth  *bool             `json:"is_full_depth,omitempty" yaml:"is_full_depth,omitempty"`
	Weight       *float64          `json:"weight,omitempty" yaml:"weight,omitempty"`
	WeightUnit   WeightUnit        `json:"weight_unit,omitempty" yaml:"weight_unit,omitempty"`
	Airflow      Airflow           `json:"airflow,omitempty" yaml:"airflow,omitempty"`
	Comments     string            `json:"comments,omitempty" yaml:"comments,omitempty"`
	Rackarr      RackarrExtensions `json:"rackarr" yaml:"rackarr"`
}

// DisplayName resolves the name shown for the type itself: model, else slug
func (dt DeviceType) DisplayName() string {
	if dt.Model != "" {
		return dt.Model
	}
	return dt.Slug
}

// Placement is a device placed in a slug-family rack, referencing its
// DeviceType by slug. Name overrides the resolved display name when set.
type Placement struct {
	DeviceType string     `json:"device_type" yaml:"device_type"`
	Position   int        `json:"position" yaml:"position"`
	Face       DeviceFace `json:"face" yaml:"face"`
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
}

// RackV02 is the single rack of a slug-family document. View is runtime-only
// and never serialized.
type RackV02 struct {
	Name         string      `json:"name" yaml:"name"`
	Height       int         `json:"height" yaml:"height"`
	Width        int         `json:"width" yaml:"width"`
	DescUnits    bool        `json:"desc_units" yaml:"desc_units"`
	FormFactor   FormFactor  `json:"form_factor" yaml:"form_factor"`
	StartingUnit int         `json:"starting_unit" yaml:"starting_unit"`
	Position     int         `json:"position" yaml:"position"`
	Devices      []Placement `json:"devices" yaml:"devices"`
	View         RackView    `json:"-" yaml:"-"`
}

// SettingsV02 holds slug-family document settings
type SettingsV02 struct {
	DisplayMode        DisplayMode `json:"display_mode" yaml:"display_mode"`
	ShowLabelsOnImages bool        `json:"show_labels_on_images" yaml:"show_labels_on_images"`
}

// LayoutV02 is the slug-family document root: exactly one rack and a
// device-type library keyed by slug.
type LayoutV02 struct {
	Version     string       `json:"version" yaml:"version"`
	Name        string       `json:"name" yaml:"name"`
	Rack        RackV02      `json:"rack" yaml:"rack"`
	DeviceTypes []DeviceType `json:"device_types" yaml:"device_types"`
	Settings    SettingsV02  `json:"settings" yaml:"settings"`
}

// NewRackV02 builds a slug-family rack with defaults for the optional fields
func NewRackV02(name string, height, width int) RackV02 {
	return RackV02{
		Name:         name,
		Height:       height,
		Width:        width,
		DescUnits:    constants.DefaultDescUnits,
		FormFactor:   FormFactor(constants.DefaultFormFactor),
		StartingUnit: constants.DefaultStartingUnit,
		Position:     0,
		Devices:      []Placement{},
		View:         ViewFront,
	}
}
