// Package config loads lsmdash settings from a TOML file and the environment.
//
// # Resolution
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lsmdash/config.toml
//  3. If the file doesn't exist, start from defaults
//  4. LSMDASH_API_URL, when non-empty, replaces api_url
//
// # Defaults
//
//   - api_url: http://localhost:8080
//   - poll_interval: 2s
//   - request_timeout: 0 (no client-side bound)
//   - log_file: ~/.local/state/lsmdash/lsmdash.log
//   - ordered_stats: false
//
// # TOML Format
//
//	api_url = "http://localhost:8080"
//	poll_interval = "2s"
//	request_timeout = "5s"
//	log_file = "~/.local/state/lsmdash/lsmdash.log"
//	ordered_stats = true
//
// Durations use Go syntax. Every field is optional and blank strings fall back
// to defaults. Tilde expansion applies to the config path and log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - Invalid TOML syntax
//   - Unparsable durations, a non-positive poll_interval or a negative
//     request_timeout
package config
