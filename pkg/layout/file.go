package layout

import (
	"regexp"
	"strings"

	"github.com/braunma/rackarr/internal/constants"
)

// Format identifies an on-disk document format
type Format string

const (
	// FormatArchive is the zip container with the document and image assets
	FormatArchive Format = "archive"
	// FormatJSON is a bare JSON document
	FormatJSON Format = "json"
)

// DetectFormat classifies a filename by its suffix. Anything that is not an
// archive is treated as JSON.
func DetectFormat(filename string) Format {
	if IsArchiveName(filename) {
		return FormatArchive
	}
	return FormatJSON
}

// IsArchiveName reports whether the filename carries the archive suffix
func IsArchiveName(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), constants.ArchiveExtension)
}

var (
	invalidFilenameChars = regexp.MustCompile(`[/\\:*?"<>|]`)
	whitespaceRuns       = regexp.MustCompile(`\s+`)
)

// BaseName sanitizes a layout name for use as a filename stem
func BaseName(layoutName string) string {
	safe := invalidFilenameChars.ReplaceAllString(layoutName, "-")
	safe = whitespaceRuns.ReplaceAllString(safe, " ")
	safe = strings.TrimSpace(safe)
	if safe == "" {
		return constants.FallbackFilenameBase
	}
	return safe
}

// Filename returns the JSON document filename for a layout name
func Filename(layoutName string) string {
	return BaseName(layoutName) + constants.LegacyJSONExtension
}

// ArchiveFilename returns the archive filename for a layout name
func ArchiveFilename(layoutName string) string {
	return BaseName(layoutName) + constants.ArchiveExtension
}

// MigratedFilename maps an input document path to the path its migrated
// JSON should be written to. Archive inputs get the JSON extension so the
// container is never overwritten with a bare document.
func MigratedFilename(path string) string {
	if IsArchiveName(path) {
		return path[:len(path)-len(constants.ArchiveExtension)] + constants.LegacyJSONExtension
	}
	return path
}
