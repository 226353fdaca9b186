package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Host      string  `json:"host" yaml:"host" toml:"host"`
	Port      int     `json:"port" yaml:"port" toml:"port"`
	Model     string  `json:"model" yaml:"model" toml:"model"`
	OutputDir string  `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	Mock      bool    `json:"mock" yaml:"mock" toml:"mock"`
	MockDelay float64 `json:"mock_delay" yaml:"mock_delay" toml:"mock_delay"`
	Runtime   string  `json:"runtime" yaml:"runtime" toml:"runtime"`
	SDBin     string  `json:"sd_bin" yaml:"sd_bin" toml:"sd_bin"`
	Threads   int     `json:"threads" yaml:"threads" toml:"threads"`
	LogLevel  string  `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
