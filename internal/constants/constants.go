package constants

// Schema versions
const (
	// CurrentVersion is the current legacy-family document version.
	CurrentVersion = "1.0"
	// VersionV02 is the single-rack slug-family document version.
	VersionV02 = "0.2.0"
	// VersionLegacyInferred is reported when a versionless document is
	// recognized by its deviceLibrary fingerprint.
	VersionLegacyInferred = "0.3.0"
	// VersionUnknown is reported when a document matches neither family.
	VersionUnknown = "unknown"
)

// Migration defaults
const (
	DefaultRackView           = "front"
	DefaultDeviceFace         = "front"
	DefaultDisplayMode        = "label"
	DefaultShowLabelsOnImages = false
	DefaultFormFactor         = "4-post-cabinet"
	DefaultDescUnits          = false
	DefaultStartingUnit       = 1
)

// Legacy-family bounds
const (
	MinDeviceHeight = 1
	MaxDeviceHeight = 42
	MinRackHeight   = 1
	MaxRackHeight   = 100
	MaxRacks        = 6
)

// Slug-family bounds
const (
	MinUHeight       = 0.5
	MaxUHeight       = 50.0
	MinRackHeightV02 = 1
	MaxRackHeightV02 = 50
	MaxNameLength    = 100
	MaxSlugLength    = 100
)

// Rack widths in inches
var RackWidths = []int{10, 19}

// Default document names
const (
	DefaultLayoutName    = "Untitled Layout"
	DefaultLayoutNameV02 = "Racky McRackface"
	DefaultRackName      = "Rack"
	DefaultRackHeight    = 42
	DefaultRackWidth     = 19
)

// Archive container layout
const (
	LayoutFilename       = "layout.json"
	ImagesFolder         = "images"
	ArchiveExtension     = ".rackarr.zip"
	LegacyJSONExtension  = ".rackarr.json"
	DefaultImageExt      = "png"
	FallbackFilenameBase = "untitled"
)

// FallbackSlug is used when a device name reduces to nothing slugifiable.
const FallbackSlug = "device"

// StarterIDPrefix marks devices seeded by the starter library.
const StarterIDPrefix = "starter-"
