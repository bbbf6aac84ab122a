package archive

import (
	"encoding/base64"
	"strings"

	"github.com/braunma/rackarr/internal/constants"
	"github.com/braunma/rackarr/pkg/models"
	"github.com/braunma/rackarr/pkg/utils"
)

// ImageData is a device image held in memory during an edit session
type ImageData struct {
	// Data is the raw image bytes
	Data []byte
	// DataURL is a self-contained base64 rendition for immediate display
	DataURL string
	// Filename is the image's stored filename metadata; its extension is
	// reused when packing.
	Filename string
}

// DeviceImages holds the front and rear images of one device
type DeviceImages struct {
	Front *ImageData
	Rear  *ImageData
}

// ImageStore maps device IDs (or device type slugs) to their images
type ImageStore map[string]DeviceImages

// NewImage builds an ImageData from raw bytes, deriving the data URL from
// the filename's extension.
func NewImage(data []byte, filename string) *ImageData {
	return &ImageData{
		Data:     data,
		DataURL:  DataURL(data, Extension(filename)),
		Filename: filename,
	}
}

// Set stores an image for a device on the given face. Only front and rear
// are addressable; "both" placements reuse the front image.
func (s ImageStore) Set(deviceID string, face models.DeviceFace, image *ImageData) {
	images := s[deviceID]
	if face == models.FaceRear {
		images.Rear = image
	} else {
		images.Front = image
	}
	s[deviceID] = images
}

// Get returns the image for a device face, or nil
func (s ImageStore) Get(deviceID string, face models.DeviceFace) *ImageData {
	images, ok := s[deviceID]
	if !ok {
		return nil
	}
	if face == models.FaceRear {
		return images.Rear
	}
	return images.Front
}

// Extension returns the lowercased extension of filename, defaulting to png
func Extension(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return constants.DefaultImageExt
	}
	return strings.ToLower(filename[idx+1:])
}

var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
	"gif":  "image/gif",
}

var supportedImageExts = []string{"png", "jpg", "jpeg", "webp", "gif"}

// SupportedImageExt reports whether ext is an image extension the store
// can render a proper data URL for.
func SupportedImageExt(ext string) bool {
	return utils.Contains(supportedImageExts, strings.ToLower(ext))
}

// DataURL encodes image bytes as a base64 data URL for the given extension
func DataURL(data []byte, ext string) string {
	mime, ok := mimeTypes[strings.ToLower(ext)]
	if !ok {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
