package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/debug-tools/src/internal/config"
	"github.com/maksimkurb/debug-tools/src/internal/log"
	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

func CreateClearCommand() *ClearCommand {
	gc := &ClearCommand{
		fs: flag.NewFlagSet("clear", flag.ExitOnError),
	}
	return gc
}

type ClearCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	cfg     *config.Config
	profile *config.LoggerConfig
}

func (g *ClearCommand) Name() string {
	return g.fs.Name()
}

func (g *ClearCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.fs.NArg() != 1 {
		return fmt.Errorf("usage: clear <profile>")
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	profile, err := profileOrFail(g.cfg, g.fs.Arg(0))
	if err != nil {
		return err
	}
	if err := stableFileOrFail(profile); err != nil {
		return err
	}
	g.profile = profile

	return nil
}

func (g *ClearCommand) Run() error {
	if g.profile.OutputFile == "" {
		log.Warnf("Logger profile %s writes to stdout, nothing to clear", g.profile.Name)
		return nil
	}

	logger, err := openProfile(g.cfg, g.profile, g.ctx.stdout())
	if err != nil {
		return err
	}
	defer utils.CloseOrWarn(logger)

	if err := logger.ClearLogFile(); err != nil {
		return err
	}

	log.Infof("Cleared log file %s", logger.OutputFile())
	return nil
}
