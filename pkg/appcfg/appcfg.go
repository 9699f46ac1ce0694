package appcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel             string `yaml:"log_level"` // "debug"|"info"|"warn"|"error"
	LogFile              string `yaml:"log_file"`  // optional app.log path; "" -> console only
	HideSecretsInConsole bool   `yaml:"hide_secrets_in_console"`
	Workers              int    `yaml:"workers"` // default worker count; 0 -> all CPUs
}

func Default() *Config {
	return &Config{LogLevel: "info"}
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open app config %q: %w", path, err)
	}
	defer f.Close()

	var c Config
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode app yaml %q: %w", path, err)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Workers < 0 {
		return nil, fmt.Errorf("app config %q: workers must be >= 0", path)
	}
	return &c, nil
}
