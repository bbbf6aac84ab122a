package layout

import (
	"strings"
	"testing"

	"github.com/braunma/rackarr/pkg/models"
)

func TestPackRoundTrip(t *testing.T) {
	pack := DevicePack{
		Name: "Network Essentials",
		Devices: []models.DeviceType{
			{
				Slug:         "mikrotik-crs326",
				UHeight:      1,
				Manufacturer: "MikroTik",
				Model:        "CRS326",
				Rackarr:      models.RackarrExtensions{Colour: "#7B68EE", Category: models.CategoryNetwork},
			},
		},
	}

	data, err := MarshalPack(pack)
	if err != nil {
		t.Fatalf("MarshalPack failed: %v", err)
	}
	if !strings.Contains(string(data), "u_height: 1") {
		t.Errorf("output missing u_height key:\n%s", data)
	}
	if !strings.Contains(string(data), "rackarr:") {
		t.Errorf("output missing rackarr extension block:\n%s", data)
	}

	loaded, err := UnmarshalPack(data)
	if err != nil {
		t.Fatalf("UnmarshalPack failed: %v", err)
	}
	if loaded.Name != pack.Name || len(loaded.Devices) != 1 {
		t.Fatalf("round trip changed the pack: %+v", loaded)
	}
	if loaded.Devices[0].Slug != "mikrotik-crs326" || loaded.Devices[0].Rackarr.Category != models.CategoryNetwork {
		t.Errorf("round trip changed the device type: %+v", loaded.Devices[0])
	}
}

func TestUnmarshalPackRejectsInvalidEntry(t *testing.T) {
	doc := `
name: Broken Pack
devices:
  - slug: ok-device
    u_height: 1
    rackarr:
      colour: "#4A90D9"
      category: server
  - slug: Bad Slug
    u_height: 1
    rackarr:
      colour: "#4A90D9"
      category: server
`
	if _, err := UnmarshalPack([]byte(doc)); err == nil {
		t.Error("UnmarshalPack accepted a pack with an invalid slug")
	}
}

func TestUnmarshalPackRejectsMalformedYAML(t *testing.T) {
	if _, err := UnmarshalPack([]byte("devices: [")); err == nil {
		t.Error("UnmarshalPack accepted malformed YAML")
	}
}
