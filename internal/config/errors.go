package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a required
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing database URI or name.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listen or throttling settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates incomplete image host settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
