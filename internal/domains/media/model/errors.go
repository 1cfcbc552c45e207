package model

import "errors"

var (
	// ErrImageNotFound means the requested key does not exist in the bucket.
	ErrImageNotFound = errors.New("image not found")

	// ErrMissingImageKey means the delete request carried no imagekey.
	ErrMissingImageKey = errors.New("imagekey is required")

	// ErrInvalidImage means the uploaded data failed format or size checks.
	ErrInvalidImage = errors.New("invalid image")
)
