package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/debug-tools/src/internal/commands"
	"github.com/maksimkurb/debug-tools/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "debug-tools.toml", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Category-filtered debug logger\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  init                    Write a starter configuration file\n")
		fmt.Fprintf(os.Stderr, "  check-config            Validate the configuration and list logger profiles\n")
		fmt.Fprintf(os.Stderr, "  log                     Emit a message: log [-clean] <profile> <category> [message...]\n")
		fmt.Fprintf(os.Stderr, "  clear                   Truncate the log file of a profile: clear <profile>\n")
		fmt.Fprintf(os.Stderr, "  follow                  Follow the log file of a profile: follow [-from-end] <profile>\n")
		fmt.Fprintf(os.Stderr, "  bench                   Benchmark a disabled debug logger against log/slog\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// Stdout carries debug lines; keep application logs off it
	log.SetForceStdErr(true)
	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateInitCommand(),
		commands.CreateCheckConfigCommand(),
		commands.CreateLogCommand(),
		commands.CreateClearCommand(),
		commands.CreateFollowCommand(),
		commands.CreateBenchCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
