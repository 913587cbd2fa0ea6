package config

import (
	"path/filepath"
	"strings"

	"github.com/maksimkurb/debug-tools/src/internal/debuglog"
	"github.com/maksimkurb/debug-tools/src/internal/errors"
	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

const (
	CygwinAuto = "auto"
	CygwinOn   = "on"
	CygwinOff  = "off"
)

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general" json:"general"`
	// Categories maps category names to their bit values.
	Categories map[string]uint64 `toml:"categories,omitempty" json:"categories,omitempty"`
	// Loggers are the logger profiles. You can add multiple profiles.
	Loggers []*LoggerConfig `toml:"logger,omitempty" json:"logger,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// OutputDir is the base directory for relative output files (default: config directory).
	OutputDir string `toml:"output_dir,omitempty" json:"output_dir,omitempty"`
	// Cygwin controls the /cygdrive/ rewrite of drive-letter paths: auto, on or off (default: auto).
	Cygwin string `toml:"cygwin,omitempty" json:"cygwin,omitempty" validate:"omitempty,oneof=auto on off"`
}

type LoggerConfig struct {
	// Name identifies the profile and prefixes every line.
	Name string `toml:"name" json:"name" validate:"required,logger_name"`
	// Mask is a numeric category mask (optional).
	Mask *uint64 `toml:"mask,omitempty" json:"mask,omitempty"`
	// Categories are category names ORed into the mask (optional).
	Categories []string `toml:"categories,omitempty" json:"categories,omitempty" validate:"dive,category_name"`
	// OutputFile switches the logger to file mode (optional). Available variables: {{name}}, {{pid}}, {{date}}.
	// {{pid}} differs between runs; clear and follow refuse such profiles.
	OutputFile string `toml:"output_file,omitempty" json:"output_file,omitempty"`
	// ClearOnStart truncates the output file whenever the profile is opened.
	ClearOnStart bool `toml:"clear_on_start" json:"clear_on_start"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsOutputDir returns the directory relative output files live in.
func (c *Config) GetAbsOutputDir() string {
	if c.General == nil || c.General.OutputDir == "" {
		return c.GetConfigDir()
	}
	return utils.GetAbsolutePath(c.General.OutputDir, c.GetConfigDir())
}

// CygwinDetector returns the probe a DebugLogger should use to decide on
// the /cygdrive/ rewrite.
func (c *Config) CygwinDetector() func() bool {
	mode := CygwinAuto
	if c.General != nil && c.General.Cygwin != "" {
		mode = c.General.Cygwin
	}

	switch mode {
	case CygwinOn:
		return func() bool { return true }
	case CygwinOff:
		return func() bool { return false }
	default:
		return utils.IsCygwin
	}
}

// LoggerByName returns the profile with the given name, or nil.
func (c *Config) LoggerByName(name string) *LoggerConfig {
	for _, lc := range c.Loggers {
		if lc.Name == name {
			return lc
		}
	}
	return nil
}

// ResolveCategory turns a category given on the command line into its
// value. Numbers (decimal, 0x, 0b, 0o) are taken as is, anything else is
// looked up in the categories table.
func (c *Config) ResolveCategory(category string) (uint64, error) {
	category = strings.TrimSpace(category)
	if mask, err := debuglog.ParseMask(category); err == nil {
		return uint64(mask), nil
	}
	if value, ok := c.Categories[category]; ok {
		return value, nil
	}
	return 0, errors.NewConfigError("unknown category: "+category, nil)
}

// EffectiveMask returns the mask a logger is created with: the numeric
// mask ORed with the named categories, or all bits when neither is set.
func (lc *LoggerConfig) EffectiveMask(categories map[string]uint64) uint64 {
	if lc.Mask == nil && len(lc.Categories) == 0 {
		return ^uint64(0)
	}

	var mask uint64
	if lc.Mask != nil {
		mask = *lc.Mask
	}
	for _, name := range lc.Categories {
		mask |= categories[name]
	}
	return mask
}
