package models

import "testing"

func TestEffectiveFace(t *testing.T) {
	rear := FaceRear

	tests := []struct {
		name     string
		placed   PlacedDevice
		expected DeviceFace
	}{
		{
			name:     "nil face defaults to front",
			placed:   PlacedDevice{LibraryID: "dev-1", Position: 1},
			expected: FaceFront,
		},
		{
			name:     "explicit face wins",
			placed:   PlacedDevice{LibraryID: "dev-1", Position: 1, Face: &rear},
			expected: FaceRear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.placed.EffectiveFace()
			if result != tt.expected {
				t.Errorf("EffectiveFace() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, category := range AllCategories {
		if !category.Valid() {
			t.Errorf("category %q reported invalid", category)
		}
		if _, ok := CategoryColours[category]; !ok {
			t.Errorf("category %q has no default colour", category)
		}
	}
	if DeviceCategory("mainframe").Valid() {
		t.Error("unknown category reported valid")
	}
}

func TestEnumValidity(t *testing.T) {
	tests := []struct {
		name     string
		valid    bool
		reported bool
	}{
		{"face front", true, FaceFront.Valid()},
		{"face both", true, FaceBoth.Valid()},
		{"face empty", false, DeviceFace("").Valid()},
		{"view rear", true, ViewRear.Valid()},
		{"view bogus", false, RackView("top").Valid()},
		{"form factor 2-post", true, FormFactor2Post.Valid()},
		{"form factor bogus", false, FormFactor("6-post").Valid()},
		{"airflow passive", true, AirflowPassive.Valid()},
		{"airflow bogus", false, Airflow("up").Valid()},
		{"weight kg", true, WeightKG.Valid()},
		{"weight bogus", false, WeightUnit("stone").Valid()},
		{"display image", true, DisplayImage.Valid()},
		{"display bogus", false, DisplayMode("3d").Valid()},
		{"theme light", true, ThemeLight.Valid()},
		{"theme bogus", false, Theme("solarized").Valid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.reported != tt.valid {
				t.Errorf("Valid() = %v, expected %v", tt.reported, tt.valid)
			}
		})
	}
}

func TestNewDevice(t *testing.T) {
	device := NewDevice(NewDeviceParams{
		Name:     "My Server",
		Height:   2,
		Category: CategoryServer,
	})

	if device.ID == "" {
		t.Error("NewDevice did not generate an ID")
	}
	if device.Colour != CategoryColours[CategoryServer] {
		t.Errorf("Colour = %q, expected the category default", device.Colour)
	}

	explicit := NewDevice(NewDeviceParams{
		Name:     "My Server",
		Height:   2,
		Category: CategoryServer,
		ID:       "fixed-id",
		Colour:   "#112233",
	})
	if explicit.ID != "fixed-id" || explicit.Colour != "#112233" {
		t.Errorf("explicit ID/colour not honoured: %+v", explicit)
	}
}

func TestNewRack(t *testing.T) {
	rack := NewRack("Main", 42, 19, 0)

	if rack.ID == "" {
		t.Error("NewRack did not generate an ID")
	}
	if rack.View == nil || *rack.View != ViewFront {
		t.Errorf("View = %v, expected front", rack.View)
	}
	if rack.FormFactor == nil || *rack.FormFactor != FormFactor4PostCab {
		t.Errorf("FormFactor = %v, expected 4-post-cabinet", rack.FormFactor)
	}
	if rack.Devices == nil {
		t.Error("Devices slice not initialized")
	}
}

func TestDeviceTypeDisplayName(t *testing.T) {
	withModel := DeviceType{Slug: "dell-r740", Model: "PowerEdge R740"}
	if got := withModel.DisplayName(); got != "PowerEdge R740" {
		t.Errorf("DisplayName = %q, expected the model", got)
	}
	bare := DeviceType{Slug: "dell-r740"}
	if got := bare.DisplayName(); got != "dell-r740" {
		t.Errorf("DisplayName = %q, expected the slug", got)
	}
}
