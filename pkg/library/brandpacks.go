package library

import "github.com/braunma/rackarr/pkg/models"

// BrandSection groups a brand's curated device types for the palette
type BrandSection struct {
	ID      string
	Title   string
	Devices []models.DeviceType
}

func boolPtr(b bool) *bool { return &b }

func networkType(slugName, manufacturer, model string, uHeight float64, airflow models.Airflow) models.DeviceType {
	return models.DeviceType{
		Slug:         slugName,
		UHeight:      uHeight,
		Manufacturer: manufacturer,
		Model:        model,
		IsFullDepth:  boolPtr(true),
		Airflow:      airflow,
		Rackarr: models.RackarrExtensions{
			Colour:   models.CategoryColours[models.CategoryNetwork],
			Category: models.CategoryNetwork,
		},
	}
}

// UbiquitiDevices is the Ubiquiti brand pack
var UbiquitiDevices = []models.DeviceType{
	networkType("usw-pro-24-poe", "Ubiquiti", "USW-Pro-24-PoE", 1, models.AirflowSideToRear),
	networkType("usw-pro-48-poe", "Ubiquiti", "USW-Pro-48-PoE", 1, models.AirflowSideToRear),
	networkType("usw-aggregation", "Ubiquiti", "USW-Aggregation", 1, models.AirflowSideToRear),
	networkType("udm-pro", "Ubiquiti", "UDM-Pro", 1, models.AirflowFrontToRear),
	networkType("unvr", "Ubiquiti", "UNVR", 1, models.AirflowFrontToRear),
}

// MikrotikDevices is the Mikrotik brand pack
var MikrotikDevices = []models.DeviceType{
	networkType("crs326-24g-2s-plus", "Mikrotik", "CRS326-24G-2S+", 1, models.AirflowSideToRear),
	networkType("crs328-24p-4s-plus", "Mikrotik", "CRS328-24P-4S+", 1, models.AirflowSideToRear),
	networkType("crs309-1g-8s-plus", "Mikrotik", "CRS309-1G-8S+", 1, models.AirflowSideToRear),
	networkType("ccr2004-16g-2s-plus", "Mikrotik", "CCR2004-16G-2S+", 1, models.AirflowFrontToRear),
}

// HPEDevices is the HPE brand pack
var HPEDevices = []models.DeviceType{
	{
		Slug:         "hpe-proliant-dl360-gen10",
		UHeight:      1,
		Manufacturer: "HPE",
		Model:        "ProLiant DL360 Gen10",
		IsFullDepth:  boolPtr(true),
		Airflow:      models.AirflowFrontToRear,
		Rackarr: models.RackarrExtensions{
			Colour:   models.CategoryColours[models.CategoryServer],
			Category: models.CategoryServer,
		},
	},
	{
		Slug:         "hpe-proliant-dl380-gen10",
		UHeight:      2,
		Manufacturer: "HPE",
		Model:        "ProLiant DL380 Gen10",
		IsFullDepth:  boolPtr(true),
		Airflow:      models.AirflowFrontToRear,
		Rackarr: models.RackarrExtensions{
			Colour:   models.CategoryColours[models.CategoryServer],
			Category: models.CategoryServer,
		},
	},
	{
		Slug:         "hpe-msa-2062",
		UHeight:      2,
		Manufacturer: "HPE",
		Model:        "MSA 2062",
		IsFullDepth:  boolPtr(true),
		Airflow:      models.AirflowFrontToRear,
		Rackarr: models.RackarrExtensions{
			Colour:   models.CategoryColours[models.CategoryStorage],
			Category: models.CategoryStorage,
		},
	},
}

// BrandPacks returns every brand section. The generic starter section is not
// included; it comes from the layout itself.
func BrandPacks() []BrandSection {
	return []BrandSection{
		{ID: "ubiquiti", Title: "Ubiquiti", Devices: UbiquitiDevices},
		{ID: "mikrotik", Title: "Mikrotik", Devices: MikrotikDevices},
		{ID: "hpe", Title: "HPE", Devices: HPEDevices},
	}
}

// BrandDevices returns the devices for a brand pack id, or nil
func BrandDevices(brandID string) []models.DeviceType {
	for _, section := range BrandPacks() {
		if section.ID == brandID {
			return section.Devices
		}
	}
	return nil
}

// FindBrandDevice looks a device type up by slug across all brand packs
func FindBrandDevice(slug string) *models.DeviceType {
	for _, section := range BrandPacks() {
		if dt := FindDeviceType(section.Devices, slug); dt != nil {
			return dt
		}
	}
	return nil
}
