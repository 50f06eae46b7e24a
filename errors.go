package inkpad

import "errors"

// Errors returned by inkpad operations.
var (
	// ErrExportInFlight is returned when Export is called while another
	// export on the same Exporter has not finished. Only one export may be
	// in flight at a time.
	ErrExportInFlight = errors.New("inkpad: export already in flight")

	// ErrEmptySurface is returned when an export request carries a nil or
	// zero-sized surface.
	ErrEmptySurface = errors.New("inkpad: empty surface")

	// ErrUnknownFace is returned when a typeface identifier has not been
	// registered with the renderer.
	ErrUnknownFace = errors.New("inkpad: unknown typeface")

	// ErrBadFont is returned when typeface data cannot be parsed.
	ErrBadFont = errors.New("inkpad: invalid font data")
)
