package layout

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/braunma/rackarr/pkg/models"
	"github.com/braunma/rackarr/pkg/validate"
)

// DevicePack is a shareable YAML bundle of device types, the unit of the
// folder-based project format.
type DevicePack struct {
	Name    string              `yaml:"name"`
	Devices []models.DeviceType `yaml:"devices"`
}

// MarshalPack serializes a device pack as YAML with 2-space indentation
func MarshalPack(pack DevicePack) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(pack); err != nil {
		return nil, fmt.Errorf("encode device pack: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode device pack: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalPack parses a YAML device pack and validates every device type
// in it. A single invalid entry rejects the whole pack.
func UnmarshalPack(data []byte) (DevicePack, error) {
	var pack DevicePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return DevicePack{}, fmt.Errorf("parse device pack: %w", err)
	}
	for _, dt := range pack.Devices {
		if result := validate.DeviceType(dt); !result.Valid {
			return DevicePack{}, fmt.Errorf("invalid device type %q: %s", dt.Slug, result.Errors[0])
		}
	}
	return pack, nil
}
