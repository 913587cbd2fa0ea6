package commands

import (
	"flag"
	"fmt"
	"time"

	"github.com/maksimkurb/debug-tools/src/internal/config"
	"github.com/maksimkurb/debug-tools/src/internal/follow"
	"github.com/maksimkurb/debug-tools/src/internal/log"
	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

func CreateFollowCommand() *FollowCommand {
	gc := &FollowCommand{
		fs: flag.NewFlagSet("follow", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.fromEnd, "from-end", false, "Skip the content already in the file")
	return gc
}

type FollowCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	cfg     *config.Config
	path    string
	fromEnd bool
}

func (g *FollowCommand) Name() string {
	return g.fs.Name()
}

func (g *FollowCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.fs.NArg() != 1 {
		return fmt.Errorf("usage: follow [-from-end] <profile>")
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
	if profile.OutputFile == "" {
		return fmt.Errorf("logger profile %s writes to stdout, there is no file to follow", profile.Name)
	}
	if err := stableFileOrFail(profile); err != nil {
		return err
	}

	path, err := g.cfg.RenderOutputFile(profile, time.Now())
	if err != nil {
		return err
	}
	g.path = utils.ResolveLogPath(path, g.cfg.CygwinDetector()())

	return nil
}

func (g *FollowCommand) Run() error {
	ctx, cancel := interruptContext()
	defer cancel()

	follower, err := follow.New(g.path, g.ctx.stdout(), g.fromEnd)
	if err != nil {
		return err
	}

	log.Infof("Following %s (Ctrl+C to stop)", g.path)
	return follower.Run(ctx)
}
