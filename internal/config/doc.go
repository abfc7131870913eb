// Package config loads keyline settings.
//
// Settings come from three places, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension (.toml, .yaml, .yml)
//  3. KEYLINE_* environment variables
//
// A missing file is not an error; the defaults are used. Command line
// flags are applied by the host after Load returns, and Validate is run
// last.
//
// Example TOML:
//
//	prompt = "keyline>"
//	separator = " "
//	quote = "\""
//	margin = 1
//	log_level = "debug"
//	log_file = "/tmp/keyline.log"
//	script = "commands.lua"
//
//	[keys]
//	"line.submit" = ["Enter", "Ctrl+J"]
//	"view.repaint" = ["Ctrl+L", "F5"]
package config
