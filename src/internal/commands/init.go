package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/debug-tools/src/internal/config"
	"github.com/maksimkurb/debug-tools/src/internal/log"
)

func CreateInitCommand() *InitCommand {
	gc := &InitCommand{
		fs: flag.NewFlagSet("init", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.force, "force", false, "Overwrite an existing configuration file")
	return gc
}

type InitCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	force bool
}

func (g *InitCommand) Name() string {
	return g.fs.Name()
}

func (g *InitCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *InitCommand) Run() error {
	if _, err := os.Stat(g.ctx.ConfigPath); err == nil && !g.force {
		return fmt.Errorf("configuration file already exists: %s (use -force to overwrite)", g.ctx.ConfigPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check configuration file: %v", err)
	}

	cfg, err := config.DefaultConfig(g.ctx.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write configuration: %v", err)
	}

	log.Infof("Configuration written to %s", g.ctx.ConfigPath)
	return nil
}
