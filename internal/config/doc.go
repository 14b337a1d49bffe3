// Package config loads, normalizes, and validates converter configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Settings cover the default output path,
// log level and format, and whether the watched-confirmation prompt should
// be answered with its default instead of asking.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
