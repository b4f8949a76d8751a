package adapter

import "errors"

var (
	// ErrNoImage indicates the image-metadata service answered normally
	// but has no original image for the requested title.
	ErrNoImage = errors.New("no image found for title")

	// ErrUnexpectedStatus indicates a non-200 response from an external
	// collaborator.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMailNotConfigured indicates the SMTP relay settings are missing,
	// so contact messages cannot be delivered.
	ErrMailNotConfigured = errors.New("mail delivery is not configured")
)
