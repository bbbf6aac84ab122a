package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/braunma/rackarr/internal/constants"
	"github.com/braunma/rackarr/pkg/archive"
	"github.com/braunma/rackarr/pkg/layout"
	"github.com/braunma/rackarr/pkg/migrate"
	"github.com/braunma/rackarr/pkg/models"
	"github.com/braunma/rackarr/pkg/utils"
)

var (
	verbose    bool
	outputPath string
	layoutName string
	legacy     bool
	imagesDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rackarr",
		Short: "Rackarr layout tool",
		Long:  `Create, validate, migrate and package rack layout documents`,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new layout document",
		RunE:  runNew,
	}
	newCmd.Flags().StringVar(&layoutName, "name", "", "Layout name")
	newCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default derived from name)")
	newCmd.Flags().BoolVar(&legacy, "legacy", false, "Create a legacy multi-rack document")

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a layout document",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate <file>",
		Short: "Upgrade a legacy document to the current version",
		Args:  cobra.ExactArgs(1),
		RunE:  runMigrate,
	}
	migrateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: overwrite input)")

	convertCmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a legacy document to the single-rack format",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default derived from name)")

	packCmd := &cobra.Command{
		Use:   "pack <layout file>",
		Short: "Bundle a layout and its images into an archive",
		Args:  cobra.ExactArgs(1),
		RunE:  runPack,
	}
	packCmd.Flags().StringVar(&imagesDir, "images", "", "Directory of device images (<id>-<face>.<ext>)")
	packCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output archive (default derived from name)")

	unpackCmd := &cobra.Command{
		Use:   "unpack <archive>",
		Short: "Extract a layout archive",
		Args:  cobra.ExactArgs(1),
		RunE:  runUnpack,
	}
	unpackCmd.Flags().StringVarP(&outputPath, "output", "o", ".", "Output directory")

	infoCmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show document version and contents",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	rootCmd.AddCommand(newCmd, validateCmd, migrateCmd, convertCmd, packCmd, unpackCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(verbose)

	var data []byte
	var err error
	var name string
	if legacy {
		doc := layout.New(layoutName)
		name = doc.Name
		data, err = layout.Serialize(doc)
	} else {
		doc := layout.NewV02(layoutName)
		name = doc.Name
		data, err = layout.SerializeV02(doc)
	}
	if err != nil {
		logger.Error("Failed to serialize layout", err)
		return err
	}

	path := outputPath
	if path == "" {
		path = layout.Filename(name)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("Failed to write layout", err)
		return err
	}
	logger.Success("Created %s", path)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(verbose)

	data, version, err := readDocument(args[0])
	if err != nil {
		logger.Error("Failed to read document", err)
		return err
	}
	logger.Debug("Detected version %s", version)

	switch version {
	case constants.VersionV02:
		if _, err := layout.DeserializeV02(data); err != nil {
			logger.Error("Validation failed", err)
			return err
		}
	case constants.CurrentVersion:
		if _, err := layout.Deserialize(data); err != nil {
			logger.Error("Validation failed", err)
			return err
		}
	case constants.VersionUnknown:
		err := fmt.Errorf("unrecognized document shape")
		logger.Error("Validation failed", err)
		return err
	default:
		if err := layout.ValidateStructure(data); err != nil {
			logger.Error("Validation failed", err)
			return err
		}
		logger.Warning("Document is valid but outdated (version %s); run 'rackarr migrate'", version)
		return nil
	}

	logger.Success("Document is valid (version %s)", version)
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(verbose)

	data, version, err := readDocument(args[0])
	if err != nil {
		logger.Error("Failed to read document", err)
		return err
	}
	if version == constants.VersionUnknown || version == constants.VersionV02 {
		err := fmt.Errorf("cannot migrate version %q", version)
		logger.Error("Migration failed", err)
		return err
	}
	if err := layout.ValidateStructure(data); err != nil {
		logger.Error("Document is not a valid layout", err)
		return err
	}

	parsed, err := parseLegacy(data)
	if err != nil {
		logger.Error("Failed to parse layout", err)
		return err
	}
	migrated := migrate.Migrate(parsed)
	out, err := layout.Serialize(migrated)
	if err != nil {
		logger.Error("Failed to serialize migrated layout", err)
		return err
	}

	path := outputPath
	if path == "" {
		path = layout.MigratedFilename(args[0])
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		logger.Error("Failed to write layout", err)
		return err
	}
	logger.Success("Migrated %s from %s to %s", path, version, constants.CurrentVersion)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(verbose)

	data, version, err := readDocument(args[0])
	if err != nil {
		logger.Error("Failed to read document", err)
		return err
	}
	if version == constants.VersionUnknown || version == constants.VersionV02 {
		err := fmt.Errorf("cannot convert version %q", version)
		logger.Error("Conversion failed", err)
		return err
	}
	if err := layout.ValidateStructure(data); err != nil {
		logger.Error("Document is not a valid layout", err)
		return err
	}

	parsed, err := parseLegacy(data)
	if err != nil {
		logger.Error("Failed to parse layout", err)
		return err
	}
	converted, _, diags := migrate.ToV02(migrate.Migrate(parsed))
	for _, line := range diags.Describe() {
		logger.Warning("%s", line)
	}

	out, err := layout.SerializeV02(converted)
	if err != nil {
		logger.Error("Failed to serialize converted layout", err)
		return err
	}
	path := outputPath
	if path == "" {
		path = layout.Filename(converted.Name)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		logger.Error("Failed to write layout", err)
		return err
	}
	logger.Success("Converted %s to %s (version %s)", args[0], path, constants.VersionV02)
	return nil
}

func runPack(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(verbose)

	data, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("Failed to read layout", err)
		return err
	}

	images := make(archive.ImageStore)
	if imagesDir != "" {
		images, err = loadImagesDir(imagesDir, logger)
		if err != nil {
			logger.Error("Failed to load images", err)
			return err
		}
	}

	bundle, err := archive.Create(data, images)
	if err != nil {
		logger.Error("Failed to create archive", err)
		return err
	}

	path := outputPath
	if path == "" {
		base := filepath.Base(args[0])
		base = strings.TrimSuffix(base, constants.LegacyJSONExtension)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		path = layout.ArchiveFilename(base)
	}
	if err := os.WriteFile(path, bundle, 0644); err != nil {
		logger.Error("Failed to write archive", err)
		return err
	}
	logger.Success("Packed %s (%d image(s))", path, len(images))
	return nil
}

func runUnpack(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(verbose)

	data, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("Failed to read archive", err)
		return err
	}

	layoutJSON, images, err := archive.Extract(data)
	if err != nil {
		logger.Error("Failed to extract archive", err)
		return err
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		logger.Error("Failed to create output directory", err)
		return err
	}
	layoutPath := filepath.Join(outputPath, constants.LayoutFilename)
	if err := os.WriteFile(layoutPath, layoutJSON, 0644); err != nil {
		logger.Error("Failed to write layout", err)
		return err
	}
	logger.Debug("Wrote %s", layoutPath)

	if len(images) > 0 {
		imagesPath := filepath.Join(outputPath, constants.ImagesFolder)
		if err := os.MkdirAll(imagesPath, 0755); err != nil {
			logger.Error("Failed to create images directory", err)
			return err
		}
		for _, deviceImages := range images {
			for _, image := range []*archive.ImageData{deviceImages.Front, deviceImages.Rear} {
				if image == nil {
					continue
				}
				if err := os.WriteFile(filepath.Join(imagesPath, image.Filename), image.Data, 0644); err != nil {
					logger.Error("Failed to write image", err)
					return err
				}
			}
		}
	}

	logger.Success("Unpacked %s into %s (%d image(s))", args[0], outputPath, len(images))
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(verbose)

	data, version, err := readDocument(args[0])
	if err != nil {
		logger.Error("Failed to read document", err)
		return err
	}

	logger.Info("Version: %s", version)
	if version == constants.VersionV02 {
		doc, err := layout.DeserializeV02(data)
		if err != nil {
			return err
		}
		logger.Info("Name:    %s", doc.Name)
		logger.Info("Rack:    %s (%dU, %d\")", doc.Rack.Name, doc.Rack.Height, doc.Rack.Width)
		logger.Info("Library: %d device type(s)", len(doc.DeviceTypes))
		logger.Info("Placed:  %d device(s)", len(doc.Rack.Devices))
		return nil
	}

	parsed, err := parseLegacy(data)
	if err != nil {
		logger.Error("Failed to parse layout", err)
		return err
	}
	logger.Info("Name:    %s", parsed.Name)
	logger.Info("Racks:   %d", len(parsed.Racks))
	logger.Info("Library: %d device(s)", len(parsed.DeviceLibrary))
	return nil
}

// readDocument reads a file, unwrapping the archive container when the
// filename carries the archive suffix, and detects the schema version.
func readDocument(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	if layout.DetectFormat(path) == layout.FormatArchive {
		layoutJSON, _, err := archive.Extract(data)
		if err != nil {
			return nil, "", err
		}
		data = layoutJSON
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, "", fmt.Errorf("invalid JSON: %w", err)
	}
	return data, migrate.DetectVersion(raw), nil
}

// parseLegacy decodes bytes already vetted by ValidateStructure
func parseLegacy(data []byte) (models.Layout, error) {
	var parsed models.Layout
	if err := json.Unmarshal(data, &parsed); err != nil {
		return models.Layout{}, err
	}
	return parsed, nil
}

func loadImagesDir(dir string, logger *utils.Logger) (archive.ImageStore, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	images := make(archive.ImageStore)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		deviceID, face, ok := archive.ParseImageName(name)
		if !ok {
			logger.Warning("Skipping %s: not named <id>-<face>.<ext>", name)
			continue
		}
		if !archive.SupportedImageExt(archive.Extension(name)) {
			logger.Warning("Skipping %s: unsupported image format", name)
			continue
		}
		images.Set(deviceID, face, archive.NewImage(data, name))
	}
	return images, nil
}
