// Package config holds the scanning and generation configuration.
package config

import (
	"embed"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alex/strum/logger"
)

//go:embed config.yml
var defaultConfigFile embed.FS

// Config is the top-level strum configuration.
type Config struct {
	Scanning   ScanningConfig   `json:"scanning" yaml:"scanning"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	LogLevel   *logger.LogLevel `json:"logLevel" yaml:"logLevel"`
}

// ScanningConfig controls which packages are scanned for annotated enums.
type ScanningConfig struct {
	// Packages are go/packages patterns (e.g. "./...") or file globs.
	Packages []string `json:"packages" yaml:"packages"`
	// Types restricts generation to the named enum types. Empty means all.
	Types []string `json:"types" yaml:"types"`
}

// GenerationConfig controls where and how generated files are written.
type GenerationConfig struct {
	// OutDir overrides the output directory. Empty writes each file next
	// to the package that declares the enum.
	OutDir string `json:"out_dir" yaml:"out_dir"`
	// Suffix is appended to the lowercased enum name to build the output
	// file name.
	Suffix string `json:"suffix" yaml:"suffix"`
	// Capabilities generated when an enum's @strum annotation names none.
	DefaultCapabilities []string `json:"default_capabilities" yaml:"default_capabilities"`
	// Workers limits parallel file emission. Zero means GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`
}

// NewDefaultConfig loads the embedded default configuration.
func NewDefaultConfig() *Config {
	config, err := LoadConfigFromFS(defaultConfigFile, "config.yml")
	if err != nil {
		panic("failed to load default config: " + err.Error())
	}
	return config
}

// LoadConfigFromFS reads a YAML config from an embedded filesystem.
func LoadConfigFromFS(fs embed.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfigFromYAML(data)
}

// LoadConfigFromFile reads a YAML config from disk, layered over the defaults.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := NewDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFromYAML parses a YAML config.
func LoadConfigFromYAML(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadConfigFromJSON parses a JSON config.
func LoadConfigFromJSON(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
