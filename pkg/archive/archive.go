// Package archive reads and writes the zip container format: one
// layout.json document plus binary device images under images/.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/braunma/rackarr/internal/constants"
	"github.com/braunma/rackarr/pkg/models"
)

// ErrLayoutMissing is returned when an archive has no layout.json member,
// regardless of how many image files it contains.
var ErrLayoutMissing = errors.New("layout.json not found in archive")

// imageNamePattern recovers (deviceID, face, ext) from an image member name
var imageNamePattern = regexp.MustCompile(`^(.+)-(front|rear)\.(\w+)$`)

// ParseImageName splits an image filename of the form <id>-<face>.<ext>
// into its device ID and face. ok is false when the name does not match.
func ParseImageName(filename string) (deviceID string, face models.DeviceFace, ok bool) {
	match := imageNamePattern.FindStringSubmatch(filename)
	if match == nil {
		return "", "", false
	}
	return match[1], models.DeviceFace(match[2]), true
}

// Create builds an archive from serialized layout JSON and an image store.
// Images are stored as images/<id>-<face>.<ext>, the extension taken from
// each image's filename metadata.
func Create(layoutJSON []byte, images ImageStore) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create(constants.LayoutFilename)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", constants.LayoutFilename, err)
	}
	if _, err := w.Write(layoutJSON); err != nil {
		return nil, fmt.Errorf("write %s: %w", constants.LayoutFilename, err)
	}

	for deviceID, deviceImages := range images {
		if deviceImages.Front != nil {
			if err := writeImage(zw, deviceID, models.FaceFront, deviceImages.Front); err != nil {
				return nil, err
			}
		}
		if deviceImages.Rear != nil {
			if err := writeImage(zw, deviceID, models.FaceRear, deviceImages.Rear); err != nil {
				return nil, err
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeImage(zw *zip.Writer, deviceID string, face models.DeviceFace, image *ImageData) error {
	name := fmt.Sprintf("%s/%s-%s.%s", constants.ImagesFolder, deviceID, face, Extension(image.Filename))
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := w.Write(image.Data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Extract opens an archive and returns the raw layout JSON plus the image
// store. The layout is returned unparsed so callers can run migration
// before deserializing. Image members whose names do not match the
// <id>-<face>.<ext> pattern are skipped.
func Extract(data []byte) ([]byte, ImageStore, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("open archive: %w", err)
	}

	var layoutJSON []byte
	images := make(ImageStore)

	for _, file := range zr.File {
		switch {
		case file.Name == constants.LayoutFilename:
			layoutJSON, err = readMember(file)
			if err != nil {
				return nil, nil, err
			}
		case strings.HasPrefix(file.Name, constants.ImagesFolder+"/") && !strings.HasSuffix(file.Name, "/"):
			filename := strings.TrimPrefix(file.Name, constants.ImagesFolder+"/")
			deviceID, face, ok := ParseImageName(filename)
			if !ok {
				continue
			}

			imageBytes, err := readMember(file)
			if err != nil {
				return nil, nil, err
			}
			images.Set(deviceID, face, NewImage(imageBytes, filename))
		}
	}

	if layoutJSON == nil {
		return nil, nil, ErrLayoutMissing
	}
	return layoutJSON, images, nil
}

func readMember(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.Name, err)
	}
	return data, nil
}
