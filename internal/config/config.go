package config

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // named zones in timezone work without system tzdata

	"github.com/toba/ghtask/internal/constants"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the config file at project root.
const ConfigFileName = constants.ConfigFileName

// Config holds the settings read from .ghtask.yaml.
type Config struct {
	// Repository is the repository URL, e.g. https://github.com/owner/project.
	Repository  string `yaml:"repository"`
	Username    string `yaml:"username,omitempty"`
	Token       string `yaml:"token,omitempty"`
	TokenEnv    string `yaml:"token_env,omitempty"`
	APIURL      string `yaml:"api_url,omitempty"`
	GravatarURL string `yaml:"gravatar_url,omitempty"`
	DateLayout  string `yaml:"date_layout,omitempty"`
	Timezone    string `yaml:"timezone,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		TokenEnv: constants.DefaultTokenEnv,
		LogLevel: "info",
	}
}

// FindConfig searches upward from the given directory for a .ghtask.yaml
// file. Returns the absolute path to the config file, or empty string if not
// found.
func FindConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Load reads the config file at configPath. A missing file yields the
// defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}

	// Apply defaults for missing values
	def := Default()
	cfg.TokenEnv = cmp.Or(cfg.TokenEnv, def.TokenEnv)
	cfg.LogLevel = cmp.Or(cfg.LogLevel, def.LogLevel)

	if cfg.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Timezone); err != nil {
			return nil, fmt.Errorf("invalid timezone %q in %s: %w", cfg.Timezone, configPath, err)
		}
	}

	return &cfg, nil
}

// LoadFromDirectory finds the nearest config file above startDir and loads
// it, or returns the defaults when there is none.
func LoadFromDirectory(startDir string) (*Config, error) {
	configPath, err := FindConfig(startDir)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		return Default(), nil
	}

	return Load(configPath)
}

// ResolveToken returns the configured token, falling back to the variable
// named by TokenEnv.
func (c *Config) ResolveToken(getenv func(string) string) string {
	if c.Token != "" {
		return c.Token
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return strings.TrimSpace(getenv(cmp.Or(c.TokenEnv, constants.DefaultTokenEnv)))
}

// Location returns the display time zone, defaulting to the local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Save writes the config to dir/.ghtask.yaml. The token is never written.
func (c *Config) Save(dir string) error {
	out := *c
	out.Token = ""
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
