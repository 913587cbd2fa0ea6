package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/maksimkurb/debug-tools/src/internal/config"
	"github.com/maksimkurb/debug-tools/src/internal/debuglog"
	"github.com/maksimkurb/debug-tools/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	// Stdout receives command output and stream-mode debug lines (default: os.Stdout).
	Stdout io.Writer
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// profileOrFail returns the named logger profile.
func profileOrFail(cfg *config.Config, name string) (*config.LoggerConfig, error) {
	profile := cfg.LoggerByName(name)
	if profile == nil {
		return nil, fmt.Errorf("unknown logger profile: %s", name)
	}
	return profile, nil
}

// stableFileOrFail rejects profiles whose log file name changes from one
// process to the next.
func stableFileOrFail(profile *config.LoggerConfig) error {
	if profile.UsesProcessID() {
		return fmt.Errorf("output_file of logger profile %s contains {{pid}} and names a different file in every run", profile.Name)
	}
	return nil
}

// openProfile creates the DebugLogger described by a profile. Stream-mode
// lines go to stdout. Profiles with clear_on_start get their file truncated.
func openProfile(cfg *config.Config, profile *config.LoggerConfig, stdout io.Writer) (*debuglog.Logger, error) {
	outputFile, err := cfg.RenderOutputFile(profile, time.Now())
	if err != nil {
		return nil, err
	}

	logger, err := debuglog.NewWithConfig(debuglog.Config{
		Mask:         debuglog.Mask(profile.EffectiveMask(cfg.Categories)),
		Name:         profile.Name,
		OutputFile:   outputFile,
		Stdout:       stdout,
		DetectCygwin: cfg.CygwinDetector(),
	})
	if err != nil {
		return nil, err
	}

	if profile.ClearOnStart {
		if err := logger.ClearLogFile(); err != nil {
			_ = logger.Close()
			return nil, err
		}
	}

	log.Debugf("Opened logger profile %s (mask %v, mode %v)", profile.Name, logger.Mask(), logger.Mode())
	return logger, nil
}
