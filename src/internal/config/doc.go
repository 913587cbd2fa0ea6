// Package config handles the debug-tools configuration file.
//
// The file is TOML and declares named logger profiles. A profile picks the
// categories a DebugLogger is created with, the name printed in front of
// every line and, optionally, a log file.
//
// # Configuration Structure
//
//	[general]
//	output_dir = "logs"   # base for relative output files
//	cygwin = "auto"       # auto, on or off
//
//	[categories]
//	errors = 1
//	trace = 2
//
//	[[logger]]
//	name = "plugin"
//	categories = ["errors", "trace"]
//	output_file = "{{name}}-{{date}}.log"
//
// A profile's mask is its numeric "mask" ORed with the values of the
// named categories. With neither, every category is enabled.
//
// # Template Variables
//
// output_file may contain {{name}}, {{pid}} and {{date}} (YYYY-MM-DD).
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/debug-tools.toml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    return err // config.ValidationErrors lists every problem
//	}
//	profile := cfg.LoggerByName("plugin")
//	path, err := cfg.RenderOutputFile(profile, time.Now())
package config
