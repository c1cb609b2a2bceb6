package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultConfigPath = "config/icoforge.json"
	defaultSource     = "icon.png"
	defaultOutput     = "icon.ico"
	defaultOutDir     = "."
)

// Config describes one icon pipeline run. Zero-valued fields fall back to
// the defaults, so an absent config file means "icon.png in, icon.ico out".
type Config struct {
	Source    string `json:"source"`
	Output    string `json:"output"`
	OutDir    string `json:"out_dir"`
	AppName   string `json:"app_name,omitempty"`
	WriteSyso bool   `json:"write_syso,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Source: defaultSource,
		Output: defaultOutput,
		OutDir: defaultOutDir,
	}
}

func ResolveConfigPath() string {
	if fromEnv := os.Getenv("ICOFORGE_CONFIG"); fromEnv != "" {
		return fromEnv
	}
	return DefaultConfigPath
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return DefaultConfig(), err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = defaultSource
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	if c.OutDir == "" {
		c.OutDir = defaultOutDir
	}
}

func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source must not be empty")
	}
	if c.OutDir == "" {
		return fmt.Errorf("out_dir must not be empty")
	}
	if ext := filepath.Ext(c.Output); ext != ".ico" {
		return fmt.Errorf("output must be a .ico path, got %q", c.Output)
	}
	return nil
}
