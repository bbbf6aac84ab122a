package session

import (
	"errors"
	"testing"

	"github.com/braunma/rackarr/pkg/models"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s := New("Test Layout")
	s.Layout.Rack.Devices = nil
	return s
}

func TestNew(t *testing.T) {
	s := New("")
	if s.ID == "" {
		t.Error("session has no ID")
	}
	if s.Layout.Name != "Racky McRackface" {
		t.Errorf("Layout.Name = %q, expected the default", s.Layout.Name)
	}
	if s.Selection.DeviceIndex != -1 {
		t.Errorf("Selection.DeviceIndex = %d, expected -1", s.Selection.DeviceIndex)
	}
	if len(s.Layout.DeviceTypes) == 0 {
		t.Error("new session has no starter device types")
	}
}

func TestAddDeviceType(t *testing.T) {
	s := newSession(t)

	dt, result := s.AddDeviceType(DeviceTypeInput{
		Name:     "My Custom Server",
		UHeight:  2,
		Category: models.CategoryServer,
	})
	if !result.Valid {
		t.Fatalf("AddDeviceType failed: %v", result.Errors)
	}
	if dt.Slug != "my-custom-server" {
		t.Errorf("Slug = %q, expected my-custom-server", dt.Slug)
	}
	if dt.Rackarr.Colour != models.CategoryColours[models.CategoryServer] {
		t.Errorf("Colour = %q, expected the category default", dt.Rackarr.Colour)
	}

	// Same name again gets a suffixed slug
	dt2, result := s.AddDeviceType(DeviceTypeInput{
		Name:     "My Custom Server",
		UHeight:  2,
		Category: models.CategoryServer,
	})
	if !result.Valid {
		t.Fatalf("second AddDeviceType failed: %v", result.Errors)
	}
	if dt2.Slug != "my-custom-server-2" {
		t.Errorf("second Slug = %q, expected my-custom-server-2", dt2.Slug)
	}
}

func TestAddDeviceTypeNormalizesColour(t *testing.T) {
	s := newSession(t)

	dt, result := s.AddDeviceType(DeviceTypeInput{
		Name:     "Bare Hex Colour",
		UHeight:  1,
		Category: models.CategoryServer,
		Colour:   "4A90D9",
	})
	if !result.Valid {
		t.Fatalf("AddDeviceType failed: %v", result.Errors)
	}
	if dt.Rackarr.Colour != "#4a90d9" {
		t.Errorf("Colour = %q, expected canonical #4a90d9", dt.Rackarr.Colour)
	}

	before := len(s.Layout.DeviceTypes)
	_, result = s.AddDeviceType(DeviceTypeInput{
		Name:     "Bad Colour",
		UHeight:  1,
		Category: models.CategoryServer,
		Colour:   "not-a-colour",
	})
	if result.Valid {
		t.Fatal("AddDeviceType accepted an unnormalizable colour")
	}
	if len(s.Layout.DeviceTypes) != before {
		t.Error("library mutated despite validation failure")
	}
}

func TestAddDeviceTypeRejectsInvalid(t *testing.T) {
	s := newSession(t)
	before := len(s.Layout.DeviceTypes)

	_, result := s.AddDeviceType(DeviceTypeInput{
		Name:     "Bad Height",
		UHeight:  1.25,
		Category: models.CategoryServer,
	})
	if result.Valid {
		t.Fatal("AddDeviceType accepted a quarter-unit height")
	}
	if len(s.Layout.DeviceTypes) != before {
		t.Error("library mutated despite validation failure")
	}
}

func TestRemoveDeviceTypeCascades(t *testing.T) {
	s := newSession(t)
	typeSlug := s.Layout.DeviceTypes[0].Slug
	other := s.Layout.DeviceTypes[1].Slug

	if err := s.PlaceDevice(typeSlug, 1, models.FaceFront, ""); err != nil {
		t.Fatalf("PlaceDevice failed: %v", err)
	}
	if err := s.PlaceDevice(other, 20, models.FaceFront, ""); err != nil {
		t.Fatalf("PlaceDevice failed: %v", err)
	}
	s.Images.Set(typeSlug, models.FaceFront, nil)

	if !s.RemoveDeviceType(typeSlug) {
		t.Fatal("RemoveDeviceType did not find the type")
	}

	for _, dt := range s.Layout.DeviceTypes {
		if dt.Slug == typeSlug {
			t.Error("device type still in library")
		}
	}
	for _, placed := range s.Layout.Rack.Devices {
		if placed.DeviceType == typeSlug {
			t.Error("placement referencing the removed type survived")
		}
	}
	if len(s.Layout.Rack.Devices) != 1 {
		t.Errorf("got %d placements, expected the unrelated one to survive", len(s.Layout.Rack.Devices))
	}
	if _, ok := s.Images[typeSlug]; ok {
		t.Error("images for the removed type survived")
	}
}

func TestRemoveDeviceTypeUnknown(t *testing.T) {
	s := newSession(t)
	if s.RemoveDeviceType("ghost") {
		t.Error("RemoveDeviceType reported success for an unknown slug")
	}
}

func TestPlaceDevice(t *testing.T) {
	s := newSession(t)
	typeSlug := s.Layout.DeviceTypes[0].Slug // 1U Server

	if err := s.PlaceDevice(typeSlug, 10, models.FaceFront, "prod-01"); err != nil {
		t.Fatalf("PlaceDevice failed: %v", err)
	}
	if len(s.Layout.Rack.Devices) != 1 {
		t.Fatalf("got %d placements, expected 1", len(s.Layout.Rack.Devices))
	}
	placed := s.Layout.Rack.Devices[0]
	if placed.DeviceType != typeSlug || placed.Position != 10 || placed.Name != "prod-01" {
		t.Errorf("placement = %+v", placed)
	}

	// Same unit, same face: blocked, nothing appended
	if err := s.PlaceDevice(typeSlug, 10, models.FaceFront, ""); !errors.Is(err, ErrBlocked) {
		t.Errorf("overlapping placement error = %v, expected ErrBlocked", err)
	}
	if len(s.Layout.Rack.Devices) != 1 {
		t.Error("layout mutated by a blocked placement")
	}

	// Same unit, opposite face: allowed
	if err := s.PlaceDevice(typeSlug, 10, models.FaceRear, ""); err != nil {
		t.Errorf("rear placement on an occupied front unit failed: %v", err)
	}
}

func TestPlaceDeviceUnknownType(t *testing.T) {
	s := newSession(t)
	err := s.PlaceDevice("ghost", 1, models.FaceFront, "")
	if err == nil || errors.Is(err, ErrBlocked) {
		t.Errorf("error = %v, expected a non-blocked failure", err)
	}
}

func TestMoveDevice(t *testing.T) {
	s := newSession(t)
	typeSlug := s.Layout.DeviceTypes[0].Slug

	if err := s.PlaceDevice(typeSlug, 10, models.FaceFront, ""); err != nil {
		t.Fatalf("PlaceDevice failed: %v", err)
	}
	if err := s.PlaceDevice(typeSlug, 12, models.FaceFront, ""); err != nil {
		t.Fatalf("PlaceDevice failed: %v", err)
	}

	// Moving onto its own footprint is a no-op, not a collision
	if err := s.MoveDevice(0, 10); err != nil {
		t.Errorf("move onto own footprint failed: %v", err)
	}
	// Moving onto the other device is blocked and position is unchanged
	if err := s.MoveDevice(0, 12); !errors.Is(err, ErrBlocked) {
		t.Errorf("move onto occupied unit error = %v, expected ErrBlocked", err)
	}
	if s.Layout.Rack.Devices[0].Position != 10 {
		t.Errorf("Position = %d after blocked move, expected 10", s.Layout.Rack.Devices[0].Position)
	}
	// A free unit works
	if err := s.MoveDevice(0, 5); err != nil {
		t.Fatalf("MoveDevice failed: %v", err)
	}
	if s.Layout.Rack.Devices[0].Position != 5 {
		t.Errorf("Position = %d, expected 5", s.Layout.Rack.Devices[0].Position)
	}

	if err := s.MoveDevice(99, 1); err == nil {
		t.Error("MoveDevice accepted an out-of-range index")
	}
}

func TestRemoveDevice(t *testing.T) {
	s := newSession(t)
	typeSlug := s.Layout.DeviceTypes[0].Slug
	if err := s.PlaceDevice(typeSlug, 10, models.FaceFront, ""); err != nil {
		t.Fatalf("PlaceDevice failed: %v", err)
	}
	s.SelectDevice(0)

	if !s.RemoveDevice(0) {
		t.Fatal("RemoveDevice failed")
	}
	if len(s.Layout.Rack.Devices) != 0 {
		t.Error("placement survived removal")
	}
	if s.Selection.DeviceIndex != -1 {
		t.Error("selection not cleared after removal")
	}
	if s.RemoveDevice(0) {
		t.Error("RemoveDevice reported success on an empty rack")
	}
}

func TestSetRackHeight(t *testing.T) {
	s := newSession(t)
	typeSlug := s.Layout.DeviceTypes[0].Slug // 1U Server
	if err := s.PlaceDevice(typeSlug, 40, models.FaceFront, ""); err != nil {
		t.Fatalf("PlaceDevice failed: %v", err)
	}

	if err := s.SetRackHeight(48); err != nil {
		t.Fatalf("SetRackHeight(48) failed: %v", err)
	}
	if s.Layout.Rack.Height != 48 {
		t.Errorf("Height = %d, expected 48", s.Layout.Rack.Height)
	}

	// Shrinking below the occupant is rejected and height unchanged
	if err := s.SetRackHeight(39); err == nil {
		t.Error("SetRackHeight(39) accepted despite an occupant at U40")
	}
	if s.Layout.Rack.Height != 48 {
		t.Errorf("Height = %d after rejected resize, expected 48", s.Layout.Rack.Height)
	}

	// Out-of-range heights fail validation
	if err := s.SetRackHeight(51); err == nil {
		t.Error("SetRackHeight(51) accepted an out-of-range height")
	}
}

func TestSetView(t *testing.T) {
	s := newSession(t)
	s.SetView(models.ViewRear)
	if s.Layout.Rack.View != models.ViewRear {
		t.Errorf("View = %q, expected rear", s.Layout.Rack.View)
	}
	s.SetView("sideways")
	if s.Layout.Rack.View != models.ViewRear {
		t.Errorf("View = %q after invalid SetView, expected rear", s.Layout.Rack.View)
	}
}

func TestSelection(t *testing.T) {
	s := newSession(t)
	typeSlug := s.Layout.DeviceTypes[0].Slug
	if err := s.PlaceDevice(typeSlug, 10, models.FaceFront, ""); err != nil {
		t.Fatalf("PlaceDevice failed: %v", err)
	}

	s.SelectDevice(0)
	if s.Selection.DeviceIndex != 0 || s.Selection.TypeSlug != typeSlug {
		t.Errorf("Selection = %+v", s.Selection)
	}

	s.SelectDevice(99)
	if s.Selection.DeviceIndex != 0 {
		t.Error("out-of-range SelectDevice changed the selection")
	}

	s.ClearSelection()
	if s.Selection.DeviceIndex != -1 || s.Selection.TypeSlug != "" {
		t.Errorf("Selection after clear = %+v", s.Selection)
	}
}
