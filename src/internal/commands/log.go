package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/debug-tools/src/internal/config"
	"github.com/maksimkurb/debug-tools/src/internal/debuglog"
	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

func CreateLogCommand() *LogCommand {
	gc := &LogCommand{
		fs: flag.NewFlagSet("log", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.clean, "clean", false, "Write the message without the time prefix")
	return gc
}

type LogCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	cfg      *config.Config
	profile  *config.LoggerConfig
	category debuglog.Mask
	message  string
	clean    bool
}

func (g *LogCommand) Name() string {
	return g.fs.Name()
}

func (g *LogCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.fs.NArg() < 2 {
		return fmt.Errorf("usage: log [-clean] <profile> <category> [message...]")
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
	g.profile = profile

	category, err := g.cfg.ResolveCategory(g.fs.Arg(1))
	if err != nil {
		return err
	}
	g.category = debuglog.Mask(category)
	g.message = strings.Join(g.fs.Args()[2:], " ")

	return nil
}

func (g *LogCommand) Run() error {
	logger, err := openProfile(g.cfg, g.profile, g.ctx.stdout())
	if err != nil {
		return err
	}
	defer utils.CloseOrWarn(logger)

	if g.clean {
		return logger.Clean(g.category, g.message)
	}
	return logger.Log(g.category, g.message)
}
