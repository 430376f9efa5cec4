// Package config loads, normalizes, and validates wordcounter configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment overrides such as WORDCOUNTER_LOG_LEVEL,
// optionally sourced from a .env file in the working directory. Run history
// and the log file are off by default, so a default run touches no directory
// besides the report folder.
package config
