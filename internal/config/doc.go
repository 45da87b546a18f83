// Package config loads, normalizes, and validates sermonref configuration.
//
// Settings come from a TOML file looked up in order: an explicit path, the
// user config directory ($XDG_CONFIG_HOME/sermonref/config.toml, falling back
// to ~/.config/sermonref/config.toml), then ./sermonref.toml. A missing file
// leaves the defaults in place: the bundled KJV corpus, info-level logging in
// auto format, and text output.
package config
