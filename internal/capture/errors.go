package capture

import "errors"

var (
	// ErrUnsupportedScheme is returned when the target URL is not http or
	// https.
	ErrUnsupportedScheme = errors.New("capture: unsupported URL scheme")

	// ErrNavigation is returned when the browser fails to navigate to the
	// target page.
	ErrNavigation = errors.New("capture: navigation failed")

	// ErrExtraction is returned when the in-page extraction script fails.
	ErrExtraction = errors.New("capture: signal extraction failed")

	// ErrEmptyDocument is returned when the served document has no body.
	ErrEmptyDocument = errors.New("capture: empty document")

	// ErrBadStatus is returned when the target responds with an HTTP error
	// status.
	ErrBadStatus = errors.New("capture: unexpected HTTP status")
)
