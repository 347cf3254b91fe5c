// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for glide viewers.
//
// Configuration is loaded from a single file specified by either the
// GLIDE_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no automatic file search. Files ending in
// .json or .jsonc are read as JSON with comments and trailing commas;
// anything else is YAML.
//
// The scroll options accept the same shorthand in both formats: grab,
// wheel, bar, and bar.track may each be a boolean or a mapping. A
// mapping enables the feature and sets only the fields it names; the
// rest take their zero value, which the scroll view treats as its
// default.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${GLIDE_CONFIG_DIR} (the directory holding the config file),
// and ${VAR:-default} patterns are expanded. No environment variable
// overrides a config value.
//
// Key exports:
//
//   - [Config] -- master struct with View, Content, Theme, Logging
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.ScrollOptions] and [Config.Palette] -- conversion to the
//     types the scroll view consumes
package config
