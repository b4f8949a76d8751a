package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidImageConfigs indicates invalid image-lookup settings
	// (for example, a missing API base URL or fallback path).
	ErrInvalidImageConfigs = errors.New("invalid image lookup configuration")
	// ErrInvalidGeoDataConfigs indicates invalid geographic dataset settings.
	ErrInvalidGeoDataConfigs = errors.New("invalid geodata configuration")
)
