// Package commands implements CLI command handlers for debug-tools.
//
// Each command implements the Runner interface: Init parses the command's
// own flags and positional arguments and loads what it needs, Run does
// the work, Name routes the subcommand.
//
// # Available Commands
//
//   - init: Write a starter configuration file
//   - check-config: Validate the configuration and list logger profiles
//   - log: Emit a debug message through a logger profile
//   - clear: Truncate the log file of a logger profile
//   - follow: Follow the log file of a logger profile
//   - bench: Time a disabled debug logger against log/slog
//
// # Example Usage
//
//	cmd := commands.CreateLogCommand()
//	ctx := &commands.AppContext{ConfigPath: "debug-tools.toml"}
//	if err := cmd.Init([]string{"plugin", "trace", "hello"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
