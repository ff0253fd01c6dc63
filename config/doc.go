// Package config loads server settings from defaults, an optional config file and
// SKILLSWAP_-prefixed environment variables, and validates them before use.
package config
