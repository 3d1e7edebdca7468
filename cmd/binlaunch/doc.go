// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the binlaunch command.
//
// The root command is a transparent proxy: it parses no flags of its own and
// hands every argument to the binary selected for the host platform, then
// exits with that binary's status. Settings come from the config package.
package cmd
