// Package config loads, normalizes, and validates fitframes configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the FITFRAMES_LOG_LEVEL
// environment fallback. Always obtain settings through this package so
// downstream code receives sanitized paths, canonical log formats, and clear
// validation errors.
package config
