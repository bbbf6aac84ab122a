// Package validate provides structural validation of single device and rack
// objects. Validators are pure, never mutate their input and never return an
// error: interactive callers need every field failure at once, so results
// are collected into a ValidationResult instead.
package validate

import (
	"fmt"
	"strings"

	"github.com/braunma/rackarr/internal/constants"
	"github.com/braunma/rackarr/pkg/models"
	"github.com/braunma/rackarr/pkg/slug"
	"github.com/braunma/rackarr/pkg/utils"
)

// ValidationResult collects field-level validation failures
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func result(errors []string) ValidationResult {
	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// Device validates a legacy-family library device
func Device(d models.Device) ValidationResult {
	var errors []string

	if strings.TrimSpace(d.Name) == "" {
		errors = append(errors, "Name is required")
	}
	if d.Height < constants.MinDeviceHeight || d.Height > constants.MaxDeviceHeight {
		errors = append(errors, fmt.Sprintf("Height must be between %d and %d",
			constants.MinDeviceHeight, constants.MaxDeviceHeight))
	}
	if !utils.IsHexColour(d.Colour) {
		errors = append(errors, "Colour must be a valid hex colour (e.g., #4A90D9)")
	}
	if !d.Category.Valid() {
		errors = append(errors, fmt.Sprintf("Unknown category: %s", d.Category))
	}

	return result(errors)
}

// Rack validates a legacy-family rack
func Rack(r models.Rack) ValidationResult {
	var errors []string

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, "Name is required")
	}
	if len(r.Name) > constants.MaxNameLength {
		errors = append(errors, fmt.Sprintf("Name must be at most %d characters", constants.MaxNameLength))
	}
	if r.Height < constants.MinRackHeight || r.Height > constants.MaxRackHeight {
		errors = append(errors, fmt.Sprintf("Height must be between %d and %d",
			constants.MinRackHeight, constants.MaxRackHeight))
	}
	if !utils.ContainsInt(constants.RackWidths, r.Width) {
		errors = append(errors, "Width must be 10 or 19 inches")
	}

	return result(errors)
}

// DeviceType validates a slug-family device type. Heights step in 0.5U.
func DeviceType(dt models.DeviceType) ValidationResult {
	var errors []string

	if !slug.IsValid(dt.Slug) {
		errors = append(errors, fmt.Sprintf("Invalid slug: %q", dt.Slug))
	}
	if dt.UHeight < constants.MinUHeight || dt.UHeight > constants.MaxUHeight {
		errors = append(errors, fmt.Sprintf("Height must be between %g and %g",
			constants.MinUHeight, constants.MaxUHeight))
	} else if dt.UHeight*2 != float64(int(dt.UHeight*2)) {
		errors = append(errors, "Height must be a multiple of 0.5U")
	}
	if !utils.IsHexColour(dt.Rackarr.Colour) {
		errors = append(errors, "Colour must be a valid hex colour (e.g., #4A90D9)")
	}
	if !dt.Rackarr.Category.Valid() {
		errors = append(errors, fmt.Sprintf("Unknown category: %s", dt.Rackarr.Category))
	}
	if dt.WeightUnit != "" && !dt.WeightUnit.Valid() {
		errors = append(errors, fmt.Sprintf("Unknown weight unit: %s", dt.WeightUnit))
	}
	if dt.Airflow != "" && !dt.Airflow.Valid() {
		errors = append(errors, fmt.Sprintf("Unknown airflow: %s", dt.Airflow))
	}

	return result(errors)
}

// RackV02 validates a slug-family rack
func RackV02(r models.RackV02) ValidationResult {
	var errors []string

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, "Name is required")
	}
	if len(r.Name) > constants.MaxNameLength {
		errors = append(errors, fmt.Sprintf("Name must be at most %d characters", constants.MaxNameLength))
	}
	if r.Height < constants.MinRackHeightV02 || r.Height > constants.MaxRackHeightV02 {
		errors = append(errors, fmt.Sprintf("Height must be between %d and %d",
			constants.MinRackHeightV02, constants.MaxRackHeightV02))
	}
	if !utils.ContainsInt(constants.RackWidths, r.Width) {
		errors = append(errors, "Width must be 10 or 19 inches")
	}
	if !r.FormFactor.Valid() {
		errors = append(errors, fmt.Sprintf("Unknown form factor: %s", r.FormFactor))
	}
	if r.StartingUnit < 1 {
		errors = append(errors, "Starting unit must be at least 1")
	}

	return result(errors)
}

// Placement validates a slug-family placement's own fields. Reference
// resolution is document-level and handled by the serialization layer.
func Placement(p models.Placement) ValidationResult {
	var errors []string

	if !slug.IsValid(p.DeviceType) {
		errors = append(errors, fmt.Sprintf("Invalid device type slug: %q", p.DeviceType))
	}
	if p.Position < 1 {
		errors = append(errors, "Position must be at least 1")
	}
	if !p.Face.Valid() {
		errors = append(errors, fmt.Sprintf("Unknown face: %s", p.Face))
	}

	return result(errors)
}

// Settings validates slug-family document settings
func Settings(s models.SettingsV02) ValidationResult {
	var errors []string
	if !s.DisplayMode.Valid() {
		errors = append(errors, fmt.Sprintf("Unknown display mode: %s", s.DisplayMode))
	}
	return result(errors)
}
