package chromedriver

import (
	"fmt"
)

// NetworkError indicates that a remote request could not be completed,
// either because the transport failed or because the server answered
// with a non 2xx status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError indicates that the version metadata body couldn't be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse version metadata: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError indicates that the version metadata decoded fine but
// the expected field was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("version metadata is missing the %s field", e.Field)
}

// UnsupportedPlatformError indicates that there is no release artifact
// for the operating system this code is running on.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported operating system: %s", e.OS)
}

// ArchiveError indicates that the downloaded payload is not a readable
// zip archive.
type ArchiveError struct {
	Err error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("failed to read release archive: %v", e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// FilesystemError indicates that a directory couldn't be created, a file
// couldn't be written or permissions couldn't be changed.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem operation on %s failed: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// ProcessError indicates that the driver executable couldn't be spawned.
// Note that a non-zero exit status is not a ProcessError; only spawn and
// wait failures are.
type ProcessError struct {
	Path string
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }
