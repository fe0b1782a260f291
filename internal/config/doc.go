// Package config holds the plsteno application configuration.
//
// Settings come from three layers, each overriding the previous one:
//
//  1. Built-in defaults (Default)
//  2. An optional TOML file
//  3. PLSTENO_* environment variables
//
// Command-line flags are applied on top by the caller. Unknown keys in the
// file are rejected so that typos do not silently fall back to defaults.
//
// Example file:
//
//	rules = "rules/custom.toml"
//	corpus = "odm.txt"
//	output_dir = "out"
//	first_form_only = true
//	stroke_delimiter = "/"
//	log_level = "debug"
package config
