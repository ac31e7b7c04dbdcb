package content

import "errors"

// Sentinel errors for content loading and validation.
var (
	ErrInvalidContent       = errors.New("invalid dashboard content")
	ErrEmptyDescription     = errors.New("description is empty")
	ErrContentNotConfigured = errors.New("no content file configured")
)
