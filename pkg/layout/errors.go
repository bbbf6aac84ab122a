package layout

import "fmt"

// SyntaxError reports input that is not well-formed JSON. Always fatal to
// the load; never recovered locally.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON syntax: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// StructureError reports well-formed JSON that fails schema or semantic
// validation. The reason is meant to be surfaced to the user verbatim.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return "invalid layout structure: " + e.Reason
}

// VersionError reports a recognizable document with an unsupported version.
// Fatal unless the caller migrates first.
type VersionError struct {
	Version string
}

func (e *VersionError) Error() string {
	return "unsupported layout version: " + e.Version
}
