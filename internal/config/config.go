package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level monify.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Host    HostConfig    `yaml:"host,omitempty"`
	Import  ImportConfig  `yaml:"import"`
	Git     GitConfig     `yaml:"git"`
}

// ProfileConfig locates the persisted document.
type ProfileConfig struct {
	Path string `yaml:"path"`
}

// HostConfig configures the external host process that owns the document
// file. When Command is empty the document is read and written directly.
type HostConfig struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// ImportConfig controls the statement import flow.
type ImportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// GitConfig controls version history of the profile document.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a monify.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Path: filepath.Join(dir, "profile.json"),
		},
		Import: ImportConfig{
			Dir:    filepath.Join(dir, "import"),
			Format: "intesa",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Monify",
			AuthorEmail: "monify@localhost",
		},
	}
}
