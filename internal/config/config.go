package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root    string   `yaml:"root"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"project"`
	Output struct {
		Format string `yaml:"format"`
		File   string `yaml:"file"`
		Sort   bool   `yaml:"sort"`
		Link   bool   `yaml:"link"`
	} `yaml:"output"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Project.Root = "."
	cfg.Output.Format = "text"
	return cfg
}

// LoadConfig reads the YAML config file, then applies .env and
// environment overrides.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	applyEnv(cfg)
	return cfg, nil
}

// LoadOrDefault behaves like LoadConfig but falls back to defaults
// (plus environment overrides) when the file is missing.
func LoadOrDefault(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		cfg = Default()
		_ = godotenv.Load()
		applyEnv(cfg)
	}
	return cfg
}

func applyEnv(cfg *Config) {
	if root := os.Getenv("RUSTSCOPE_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if format := os.Getenv("RUSTSCOPE_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
	if file := os.Getenv("RUSTSCOPE_OUTPUT"); file != "" {
		cfg.Output.File = file
	}
}
