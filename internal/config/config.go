// Package config handles loading and validation of the mkdocsctl
// configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "git.home.luguber.info/inful/mkdocsctl/internal/errors"
)

// Config is the root configuration for mkdocsctl.
type Config struct {
	Version   string          `yaml:"version,omitempty"`
	Site      SiteConfig      `yaml:"site"`
	Toolchain ToolchainConfig `yaml:"toolchain"`
	Serve     ServeConfig     `yaml:"serve"`
	Deploy    DeployConfig    `yaml:"deploy"`
}

// SiteConfig locates the documentation project on disk.
type SiteConfig struct {
	// Dir is the project directory containing mkdocs.yml. Every external
	// invocation runs with this directory as its working directory; the
	// process-wide working directory is never changed.
	Dir        string `yaml:"dir,omitempty"`
	ConfigFile string `yaml:"config_file,omitempty"` // passed as -f when set
	DocsDir    string `yaml:"docs_dir,omitempty"`
	OutputDir  string `yaml:"output_dir,omitempty"`
}

// ToolchainConfig describes the external Python toolchain.
type ToolchainConfig struct {
	Generator    string   `yaml:"generator,omitempty"` // generator binary, normally "mkdocs"
	Python       string   `yaml:"python,omitempty"`
	Requirements string   `yaml:"requirements,omitempty"`
	Modules      []string `yaml:"modules,omitempty"` // modules the dependency probe imports
}

// ServeConfig controls the local development server.
type ServeConfig struct {
	Addr string `yaml:"addr,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// DeployConfig controls publishing.
type DeployConfig struct {
	Force bool `yaml:"force,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{Version: "1.0"}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in zero-valued fields.
func (c *Config) applyDefaults() {
	if c.Site.Dir == "" {
		c.Site.Dir = "."
	}
	if c.Site.DocsDir == "" {
		c.Site.DocsDir = "docs"
	}
	if c.Site.OutputDir == "" {
		c.Site.OutputDir = "site"
	}
	if c.Toolchain.Generator == "" {
		c.Toolchain.Generator = "mkdocs"
	}
	if c.Toolchain.Python == "" {
		c.Toolchain.Python = "python3"
	}
	if c.Toolchain.Requirements == "" {
		c.Toolchain.Requirements = "docs/requirements.txt"
	}
	if len(c.Toolchain.Modules) == 0 {
		c.Toolchain.Modules = []string{"mkdocs", "mkdocstrings"}
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = "127.0.0.1"
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = 8000
	}
}

// Validate checks invariants after defaults are applied.
func (c *Config) Validate() error {
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return apperrors.ValidationFailed("serve.port", fmt.Sprintf("port %d out of range 1-65535", c.Serve.Port))
	}
	if c.Toolchain.Generator == "" {
		return apperrors.ValidationFailed("toolchain.generator", "generator binary must not be empty")
	}
	if c.Toolchain.Python == "" {
		return apperrors.ValidationFailed("toolchain.python", "python binary must not be empty")
	}
	if len(c.Toolchain.Modules) == 0 {
		return apperrors.ValidationFailed("toolchain.modules", "at least one probe module required")
	}
	return nil
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ConfigNotFound(path)
		}
		return nil, apperrors.ConfigInvalid(path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.ConfigInvalid(path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the configuration file when it exists; a missing file
// yields the default configuration so the tool works without one.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Init writes a commented starter configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Version: "1.0",
		Site: SiteConfig{
			Dir:       ".",
			DocsDir:   "docs",
			OutputDir: "site",
		},
		Toolchain: ToolchainConfig{
			Generator:    "mkdocs",
			Python:       "python3",
			Requirements: "docs/requirements.txt",
			Modules:      []string{"mkdocs", "mkdocstrings"},
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1",
			Port: 8000,
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("marshal example config: %w", err)
	}

	header := "# mkdocsctl configuration\n# All fields are optional; defaults shown below.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
