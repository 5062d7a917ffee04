package domain

import "errors"

// Extraction pipeline errors
var (
	ErrUnsupportedImage     = errors.New("unsupported or corrupted image")
	ErrNoTextFound          = errors.New("no text found in image")
	ErrNoCoordinatesFound   = errors.New("no gps coordinates found in image text")
	ErrMalformedCoordinates = errors.New("malformed coordinate string")
	ErrInvalidLatitude      = errors.New("latitude out of range [-90, 90]")
	ErrInvalidLongitude     = errors.New("longitude out of range [-180, 180]")
)

// History errors
var (
	ErrExtractionNotFound = errors.New("extraction not found")
	ErrHistoryDisabled    = errors.New("extraction history is disabled")
)
