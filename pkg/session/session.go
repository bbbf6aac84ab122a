// Package session owns the mutable state of one editing session: the
// current layout, the selection and the image cache. The original UI kept
// these in module-level singleton stores; an explicit session object is
// threaded through instead so operations stay testable and sessions never
// bleed into each other.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/braunma/rackarr/pkg/archive"
	"github.com/braunma/rackarr/pkg/collision"
	"github.com/braunma/rackarr/pkg/layout"
	"github.com/braunma/rackarr/pkg/library"
	"github.com/braunma/rackarr/pkg/models"
	"github.com/braunma/rackarr/pkg/slug"
	"github.com/braunma/rackarr/pkg/utils"
	"github.com/braunma/rackarr/pkg/validate"
)

// ErrBlocked is returned when a placement or move would collide or leave
// the rack bounds. It is a decision, not a fault: the document is never
// mutated when it is returned.
var ErrBlocked = errors.New("placement blocked")

// Selection identifies what the user currently has selected
type Selection struct {
	// DeviceIndex is the index into the rack's devices, or -1
	DeviceIndex int
	// TypeSlug is the selected library entry, or ""
	TypeSlug string
}

// Session is one editing session over a slug-family layout
type Session struct {
	ID        string
	Layout    models.LayoutV02
	Selection Selection
	Images    archive.ImageStore
}

// New starts a session with a fresh starter-seeded layout
func New(name string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Layout:    layout.NewV02(name),
		Selection: Selection{DeviceIndex: -1},
		Images:    make(archive.ImageStore),
	}
}

// Open starts a session over an existing layout
func Open(l models.LayoutV02) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Layout:    l,
		Selection: Selection{DeviceIndex: -1},
		Images:    make(archive.ImageStore),
	}
}

// DeviceTypeInput is the caller-supplied data for a new device type
type DeviceTypeInput struct {
	Name         string
	UHeight      float64
	Category     models.DeviceCategory
	Colour       string
	Manufacturer string
	Model        string
	IsFullDepth  *bool
	Weight       *float64
	WeightUnit   models.WeightUnit
	Airflow      models.Airflow
	Comments     string
	Tags         []string
}

// AddDeviceType validates the input, derives a unique slug and adds the
// type to the library. Colour input is normalized to canonical #rrggbb
// form; anything unnormalizable fails validation. On validation failure
// the library is untouched and the failures are returned for field-level
// display.
func (s *Session) AddDeviceType(input DeviceTypeInput) (models.DeviceType, validate.ValidationResult) {
	colour := models.CategoryColours[input.Category]
	if input.Colour != "" {
		colour = utils.NormalizeColour(input.Colour)
	}

	uniquer := slug.NewUniquer()
	for _, dt := range s.Layout.DeviceTypes {
		uniquer.Claim(dt.Slug)
	}

	dt := models.DeviceType{
		Slug:         uniquer.Unique(slug.ForDevice(input.Manufacturer, input.Model, input.Name)),
		UHeight:      input.UHeight,
		Manufacturer: input.Manufacturer,
		Model:        input.Model,
		IsFullDepth:  input.IsFullDepth,
		Weight:       input.Weight,
		WeightUnit:   input.WeightUnit,
		Airflow:      input.Airflow,
		Comments:     input.Comments,
		Rackarr: models.RackarrExtensions{
			Colour:   colour,
			Category: input.Category,
			Tags:     input.Tags,
		},
	}

	result := validate.DeviceType(dt)
	if !result.Valid {
		return models.DeviceType{}, result
	}
	s.Layout.DeviceTypes = append(s.Layout.DeviceTypes, dt)
	return dt, result
}

// RemoveDeviceType deletes a library entry and cascades: every placement
// referencing it is removed (a dangling placement would invalidate the
// document), along with its cached images.
func (s *Session) RemoveDeviceType(typeSlug string) bool {
	idx := -1
	for i, dt := range s.Layout.DeviceTypes {
		if dt.Slug == typeSlug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	s.Layout.DeviceTypes = append(s.Layout.DeviceTypes[:idx], s.Layout.DeviceTypes[idx+1:]...)

	kept := s.Layout.Rack.Devices[:0]
	for _, placed := range s.Layout.Rack.Devices {
		if placed.DeviceType != typeSlug {
			kept = append(kept, placed)
		}
	}
	s.Layout.Rack.Devices = kept

	delete(s.Images, typeSlug)
	s.ClearSelection()
	return true
}

// PlaceDevice places a device type at position on the given face. Returns
// ErrBlocked when the spot is occupied on an overlapping plane or out of
// bounds; the layout is only mutated on success.
func (s *Session) PlaceDevice(typeSlug string, position int, face models.DeviceFace, name string) error {
	dt := library.FindDeviceType(s.Layout.DeviceTypes, typeSlug)
	if dt == nil {
		return fmt.Errorf("unknown device type %q", typeSlug)
	}
	if !face.Valid() {
		return fmt.Errorf("unknown face %q", face)
	}
	if !collision.CanPlaceType(&s.Layout.Rack, s.Layout.DeviceTypes, dt.UHeight, position, face, collision.NoExclude) {
		return ErrBlocked
	}

	s.Layout.Rack.Devices = append(s.Layout.Rack.Devices, models.Placement{
		DeviceType: typeSlug,
		Position:   position,
		Face:       face,
		Name:       name,
	})
	return nil
}

// MoveDevice moves the placement at index to a new position, excluding the
// device itself from the collision scan so moving onto its own footprint is
// always allowed.
func (s *Session) MoveDevice(index, newPosition int) error {
	if index < 0 || index >= len(s.Layout.Rack.Devices) {
		return fmt.Errorf("no placement at index %d", index)
	}
	placed := s.Layout.Rack.Devices[index]
	dt := library.FindDeviceType(s.Layout.DeviceTypes, placed.DeviceType)
	if dt == nil {
		return fmt.Errorf("unknown device type %q", placed.DeviceType)
	}
	if !collision.CanPlaceType(&s.Layout.Rack, s.Layout.DeviceTypes, dt.UHeight, newPosition, placed.Face, index) {
		return ErrBlocked
	}

	s.Layout.Rack.Devices[index].Position = newPosition
	return nil
}

// RemoveDevice removes the placement at index
func (s *Session) RemoveDevice(index int) bool {
	if index < 0 || index >= len(s.Layout.Rack.Devices) {
		return false
	}
	s.Layout.Rack.Devices = append(s.Layout.Rack.Devices[:index], s.Layout.Rack.Devices[index+1:]...)
	s.ClearSelection()
	return true
}

// SetRackHeight resizes the rack. Rejected when any occupant would no
// longer fit, or when the new height fails rack validation.
func (s *Session) SetRackHeight(height int) error {
	resized := s.Layout.Rack
	resized.Height = height
	if result := validate.RackV02(resized); !result.Valid {
		return fmt.Errorf("invalid rack height: %s", result.Errors[0])
	}
	for _, placed := range s.Layout.Rack.Devices {
		dt := library.FindDeviceType(s.Layout.DeviceTypes, placed.DeviceType)
		if dt == nil {
			continue
		}
		if float64(placed.Position)+dt.UHeight-1 > float64(height) {
			return fmt.Errorf("device at U%d would not fit in a %dU rack", placed.Position, height)
		}
	}
	s.Layout.Rack.Height = height
	return nil
}

// SetView switches the displayed rack plane. Runtime-only; never persisted.
func (s *Session) SetView(view models.RackView) {
	if view.Valid() {
		s.Layout.Rack.View = view
	}
}

// SelectDevice records the placement at index as selected
func (s *Session) SelectDevice(index int) {
	if index >= 0 && index < len(s.Layout.Rack.Devices) {
		s.Selection = Selection{DeviceIndex: index, TypeSlug: s.Layout.Rack.Devices[index].DeviceType}
	}
}

// ClearSelection resets the selection
func (s *Session) ClearSelection() {
	s.Selection = Selection{DeviceIndex: -1}
}
