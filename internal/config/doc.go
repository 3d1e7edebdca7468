// SPDX-License-Identifier: MPL-2.0

// Package config loads binlaunch settings with Viper, using CUE as the file format.
//
// Values are layered: built-in defaults, then at most one CUE file validated
// against the embedded #Config schema (config_schema.cue), then BINLAUNCH_*
// environment variables. The file is the first that exists of $BINLAUNCH_CONFIG,
// <install-dir>/binlaunch.cue and <user-config-dir>/binlaunch/config.cue.
// A missing file means defaults; an explicitly named missing file is an error.
package config
