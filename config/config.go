package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Start     uint   `json:"start"      yaml:"start"`
	Step      int    `json:"step"       yaml:"step"`
	Format    string `json:"format"     yaml:"format"`
	Separator string `json:"separator"  yaml:"separator"`
	Width     int    `json:"width"      yaml:"width"`
	JSONPath  string `json:"json_path"  yaml:"json_path"`
	LogLevel  string `json:"log_level"  yaml:"log_level"`
	CacheSize int64  `json:"cache_size" yaml:"cache_size"`
}

func Default() *Config {
	return &Config{
		Start:     DefaultStart,
		Step:      DefaultStep,
		Format:    FormatText,
		Separator: DefaultSeparator,
		Width:     0,
		JSONPath:  "",
		LogLevel:  DefaultLogLevel,
		CacheSize: DefaultCacheSize,
	}
}

func (cfg *Config) validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON}, cfg.Format) {
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}

	if cfg.Width < 0 {
		return errors.New("width is negative")
	}

	if cfg.CacheSize <= 0 {
		return errors.New("cache size must be positive")
	}

	return nil
}

func FromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if nil != err {
		return nil, fmt.Errorf("failed to read config file %q: %v", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); nil != err {
		return nil, fmt.Errorf("failed to unmarshal config file %q: %v", filePath, err)
	}

	if err := cfg.validate(); nil != err {
		return nil, fmt.Errorf("validation failed: %v", err)
	}

	return cfg, nil
}

func FromString(data string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(data), cfg); nil != err {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := cfg.validate(); nil != err {
		return nil, fmt.Errorf("validation failed: %v", err)
	}

	return cfg, nil
}

// Validate checks cfg after command line overrides were applied.
func (cfg *Config) Validate() error {
	return cfg.validate()
}
