// Package config loads, normalizes, and validates docbridge configuration.
//
// Settings come from a TOML file found at an explicit path, at
// ~/.config/docbridge/config.toml, or at docbridge.toml in the working
// directory, in that order. Missing files are not an error: the defaults
// from Default apply. Environment variables DOCBRIDGE_CREDENTIALS and
// GOOGLE_APPLICATION_CREDENTIALS fill in the Docs credentials file when the
// file leaves it empty.
package config
