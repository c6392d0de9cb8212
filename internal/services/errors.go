package services

import "errors"

var (
	// ErrRunLocked is returned when another scheduled run holds the day's lock.
	ErrRunLocked = errors.New("batch run already in progress for this day")
	// ErrBackgroundFailed is returned when the shared background cannot be produced; the run is aborted.
	ErrBackgroundFailed = errors.New("shared background generation failed")
	// ErrCapabilityNotReady is returned when the inference capability did not report ready.
	ErrCapabilityNotReady = errors.New("inference capability not ready")
	// ErrMissingSourcePhoto marks a user without a usable selfie.
	ErrMissingSourcePhoto = errors.New("missing source photo")
	// ErrMissingEmbedding marks a user whose embedding artifact cannot be loaded.
	ErrMissingEmbedding = errors.New("missing embedding")
)
