package models

// DeviceCategory classifies a device in the library
type DeviceCategory string

const (
	CategoryServer     DeviceCategory = "server"
	CategoryNetwork    DeviceCategory = "network"
	CategoryPatchPanel DeviceCategory = "patch-panel"
	CategoryPower      DeviceCategory = "power"
	CategoryStorage    DeviceCategory = "storage"
	CategoryKVM        DeviceCategory = "kvm"
	CategoryAVMedia    DeviceCategory = "av-media"
	CategoryCooling    DeviceCategory = "cooling"
	CategoryBlank      DeviceCategory = "blank"
	CategoryOther      DeviceCategory = "other"
)

// AllCategories lists every device category in display order
var AllCategories = []DeviceCategory{
	CategoryServer,
	CategoryNetwork,
	CategoryPatchPanel,
	CategoryPower,
	CategoryStorage,
	CategoryKVM,
	CategoryAVMedia,
	CategoryCooling,
	CategoryBlank,
	CategoryOther,
}

// Valid reports whether the category is one of the closed set
func (c DeviceCategory) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryColours maps each category to its default display colour
var CategoryColours = map[DeviceCategory]string{
	CategoryServer:     "#4A90D9",
	CategoryNetwork:    "#7B68EE",
	CategoryPatchPanel: "#50C878",
	CategoryPower:      "#E74C3C",
	CategoryStorage:    "#F39C12",
	CategoryKVM:        "#16A085",
	CategoryAVMedia:    "#D35400",
	CategoryCooling:    "#3498DB",
	CategoryBlank:      "#95A5A6",
	CategoryOther:      "#8E8E93",
}

// DeviceFace identifies which plane(s) of the rack a placement occupies.
// Front and rear are independent collision planes; "both" collides with
// everything.
type DeviceFace string

const (
	FaceFront DeviceFace = "front"
	FaceRear  DeviceFace = "rear"
	FaceBoth  DeviceFace = "both"
)

// Valid reports whether the face is front, rear or both
func (f DeviceFace) Valid() bool {
	return f == FaceFront || f == FaceRear || f == FaceBoth
}

// RackView is the display plane currently shown for a rack. Runtime-only in
// the slug family; persisted in the legacy family.
type RackView string

const (
	ViewFront RackView = "front"
	ViewRear  RackView = "rear"
)

// Valid reports whether the view is front or rear
func (v RackView) Valid() bool {
	return v == ViewFront || v == ViewRear
}

// FormFactor describes the physical rack construction
type FormFactor string

const (
	FormFactor2Post       FormFactor = "2-post"
	FormFactor4Post       FormFactor = "4-post"
	FormFactor4PostCab    FormFactor = "4-post-cabinet"
	FormFactorWallMount   FormFactor = "wall-mount"
	FormFactorOpenFrame   FormFactor = "open-frame"
)

// AllFormFactors lists the supported rack form factors
var AllFormFactors = []FormFactor{
	FormFactor2Post,
	FormFactor4Post,
	FormFactor4PostCab,
	FormFactorWallMount,
	FormFactorOpenFrame,
}

// Valid reports whether the form factor is one of the closed set
func (ff FormFactor) Valid() bool {
	for _, known := range AllFormFactors {
		if ff == known {
			return true
		}
	}
	return false
}

// Airflow describes the cooling direction of a device type
type Airflow string

const (
	AirflowPassive     Airflow = "passive"
	AirflowFrontToRear Airflow = "front-to-rear"
	AirflowRearToFront Airflow = "rear-to-front"
	AirflowSideToRear  Airflow = "side-to-rear"
)

// Valid reports whether the airflow is one of the closed set
func (a Airflow) Valid() bool {
	switch a {
	case AirflowPassive, AirflowFrontToRear, AirflowRearToFront, AirflowSideToRear:
		return true
	}
	return false
}

// WeightUnit is the unit for a device type's weight
type WeightUnit string

const (
	WeightKG WeightUnit = "kg"
	WeightLB WeightUnit = "lb"
)

// Valid reports whether the weight unit is kg or lb
func (w WeightUnit) Valid() bool {
	return w == WeightKG || w == WeightLB
}

// DisplayMode controls how placed devices are rendered
type DisplayMode string

const (
	DisplayLabel DisplayMode = "label"
	DisplayImage DisplayMode = "image"
)

// Valid reports whether the display mode is label or image
func (d DisplayMode) Valid() bool {
	return d == DisplayLabel || d == DisplayImage
}

// Theme is the UI colour theme stored in legacy-family settings
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether the theme is dark or light
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}
