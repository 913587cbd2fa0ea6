package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/debug-tools/src/internal/log"
)

func LoadConfig(configPath string) (*Config, error) {
	configFile, err := absConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file: error at line %d, column %d", row, col)
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if config.General == nil {
		config.General = &GeneralConfig{}
	}
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Output directory: %s", config.GetAbsOutputDir())

	return &config, nil
}

// DefaultConfig returns the configuration written by "init": two sample
// categories and one stream profile.
func DefaultConfig(configPath string) (*Config, error) {
	configFile, err := absConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	return &Config{
		General: &GeneralConfig{
			Cygwin: CygwinAuto,
		},
		Categories: map[string]uint64{
			"errors": 1,
			"trace":  2,
		},
		Loggers: []*LoggerConfig{
			{
				Name:       "default",
				Categories: []string{"errors", "trace"},
			},
		},
		_absConfigFilePath: configFile,
	}, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.GetConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}
	return os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644)
}

func absConfigPath(configPath string) (string, error) {
	configFile := filepath.Clean(configPath)
	if filepath.IsAbs(configFile) {
		return configFile, nil
	}

	path, err := filepath.Abs(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %v", err)
	}
	return path, nil
}
