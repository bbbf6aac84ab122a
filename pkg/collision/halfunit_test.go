package collision

import (
	"testing"

	"github.com/braunma/rackarr/pkg/models"
)

func testTypes() []models.DeviceType {
	return []models.DeviceType{
		{Slug: "server-1u", UHeight: 1, Rackarr: models.RackarrExtensions{Colour: "#4A90D9", Category: models.CategoryServer}},
		{Slug: "server-2u", UHeight: 2, Rackarr: models.RackarrExtensions{Colour: "#4A90D9", Category: models.CategoryServer}},
		{Slug: "half-u-tray", UHeight: 0.5, Rackarr: models.RackarrExtensions{Colour: "#95A5A6", Category: models.CategoryOther}},
	}
}

func testRackV02(devices ...models.Placement) models.RackV02 {
	rack := models.NewRackV02("Test Rack", 10, 19)
	rack.Devices = devices
	return rack
}

func TestHalfUnitRange(t *testing.T) {
	tests := []struct {
		name     string
		position int
		uHeight  float64
		expected URange
	}{
		{
			name:     "1U device",
			position: 3,
			uHeight:  1,
			expected: URange{Bottom: 6, Top: 7},
		},
		{
			name:     "half-U device",
			position: 3,
			uHeight:  0.5,
			expected: URange{Bottom: 6, Top: 6},
		},
		{
			name:     "2.5U device",
			position: 1,
			uHeight:  2.5,
			expected: URange{Bottom: 2, Top: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HalfUnitRange(tt.position, tt.uHeight)
			if result != tt.expected {
				t.Errorf("HalfUnitRange(%d, %v) = %v, expected %v", tt.position, tt.uHeight, result, tt.expected)
			}
		})
	}
}

func TestFacesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        models.DeviceFace
		b        models.DeviceFace
		expected bool
	}{
		{name: "front vs front", a: models.FaceFront, b: models.FaceFront, expected: true},
		{name: "front vs rear", a: models.FaceFront, b: models.FaceRear, expected: false},
		{name: "both vs front", a: models.FaceBoth, b: models.FaceFront, expected: true},
		{name: "rear vs both", a: models.FaceRear, b: models.FaceBoth, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FacesOverlap(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("FacesOverlap(%q, %q) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestCanPlaceType(t *testing.T) {
	types := testTypes()

	tests := []struct {
		name     string
		rack     models.RackV02
		uHeight  float64
		target   int
		face     models.DeviceFace
		exclude  int
		expected bool
	}{
		{
			name:     "empty rack accepts placement",
			rack:     testRackV02(),
			uHeight:  2,
			target:   4,
			face:     models.FaceFront,
			exclude:  NoExclude,
			expected: true,
		},
		{
			name:     "same face collision",
			rack:     testRackV02(models.Placement{DeviceType: "server-2u", Position: 4, Face: models.FaceFront}),
			uHeight:  1,
			target:   5,
			face:     models.FaceFront,
			exclude:  NoExclude,
			expected: false,
		},
		{
			name:     "opposite faces coexist",
			rack:     testRackV02(models.Placement{DeviceType: "server-2u", Position: 4, Face: models.FaceFront}),
			uHeight:  1,
			target:   5,
			face:     models.FaceRear,
			exclude:  NoExclude,
			expected: true,
		},
		{
			name:     "both blocks every face",
			rack:     testRackV02(models.Placement{DeviceType: "server-2u", Position: 4, Face: models.FaceBoth}),
			uHeight:  1,
			target:   5,
			face:     models.FaceRear,
			exclude:  NoExclude,
			expected: false,
		},
		{
			name:     "half-U devices share a unit",
			rack:     testRackV02(models.Placement{DeviceType: "half-u-tray", Position: 3, Face: models.FaceFront}),
			uHeight:  0.5,
			target:   3,
			face:     models.FaceFront,
			exclude:  NoExclude,
			expected: false,
		},
		{
			name:     "overflow past the top",
			rack:     testRackV02(),
			uHeight:  2,
			target:   10,
			face:     models.FaceFront,
			exclude:  NoExclude,
			expected: false,
		},
		{
			name:     "fractional height at the top unit",
			rack:     testRackV02(),
			uHeight:  0.5,
			target:   10,
			face:     models.FaceFront,
			exclude:  NoExclude,
			expected: true,
		},
		{
			name:     "moving over own slot",
			rack:     testRackV02(models.Placement{DeviceType: "server-2u", Position: 4, Face: models.FaceFront}),
			uHeight:  2,
			target:   4,
			face:     models.FaceFront,
			exclude:  0,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanPlaceType(&tt.rack, types, tt.uHeight, tt.target, tt.face, tt.exclude)
			if result != tt.expected {
				t.Errorf("CanPlaceType(uHeight=%v, target=%d, face=%q, exclude=%d) = %v, expected %v",
					tt.uHeight, tt.target, tt.face, tt.exclude, result, tt.expected)
			}
		})
	}
}

func TestFindTypeCollisions(t *testing.T) {
	types := testTypes()
	rack := testRackV02(
		models.Placement{DeviceType: "server-2u", Position: 2, Face: models.FaceFront},
		models.Placement{DeviceType: "server-1u", Position: 4, Face: models.FaceRear},
	)

	collisions := FindTypeCollisions(&rack, types, 3, 2, models.FaceFront, NoExclude)
	if len(collisions) != 1 {
		t.Fatalf("FindTypeCollisions returned %d placements, expected 1", len(collisions))
	}
	if collisions[0].DeviceType != "server-2u" {
		t.Errorf("FindTypeCollisions returned %q, expected server-2u", collisions[0].DeviceType)
	}

	both := FindTypeCollisions(&rack, types, 3, 2, models.FaceBoth, NoExclude)
	if len(both) != 2 {
		t.Errorf("FindTypeCollisions on both faces returned %d placements, expected 2", len(both))
	}
}
