package commands

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/maksimkurb/debug-tools/src/internal/config"
	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

func CreateCheckConfigCommand() *CheckConfigCommand {
	gc := &CheckConfigCommand{
		fs: flag.NewFlagSet("check-config", flag.ExitOnError),
	}
	return gc
}

type CheckConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (g *CheckConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *CheckConfigCommand) Run() error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Configuration %s is valid\n", g.ctx.ConfigPath))
	sb.WriteString(fmt.Sprintf("Cygwin path rewrite: %v\n", g.cfg.CygwinDetector()()))

	for _, profile := range g.cfg.Loggers {
		output := "stdout"
		if profile.OutputFile != "" {
			path, err := g.cfg.RenderOutputFile(profile, time.Now())
			if err != nil {
				return err
			}
			output = path
			if profile.UsesProcessID() {
				output += " (per process)"
			}
		}

		sb.WriteString(fmt.Sprintf("  %-16s mask %-32s -> %s\n",
			profile.Name, utils.FormatMask(profile.EffectiveMask(g.cfg.Categories)), output))
	}

	_, err := fmt.Fprint(g.ctx.stdout(), sb.String())
	return err
}
