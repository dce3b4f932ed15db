// Package config loads and validates site configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pvidal/ebolg/internal/fileutil"
	"github.com/pvidal/ebolg/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid workers value")
)

// Field length limits to keep generated pages and paths sane.
const (
	MaxTitleLength      = 200  // Site title
	MaxAuthorLength     = 100  // Author name
	MaxBaseURLLength    = 2048 // Browser limit
	MaxDateFormatLength = 50   // Display date format
	MaxStylesheetLength = 260  // Href to the stylesheet
)

// Config holds all configuration for site generation.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
	Build  BuildConfig  `yaml:"build"`
}

// SiteConfig holds site-wide metadata.
type SiteConfig struct {
	Title      string `yaml:"title"`      // Index page heading (default: "Posts")
	Author     string `yaml:"author"`     // Fallback author for posts without one
	BaseURL    string `yaml:"baseURL"`    // Optional absolute base for index links
	DateFormat string `yaml:"dateFormat"` // Display format tokens (default: "MMMM D, YYYY")
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default source directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = must specify)
}

// StyleConfig defines styling options.
type StyleConfig struct {
	Stylesheet string `yaml:"stylesheet"` // Href written into pages (default: style/tailwind.css)
	AssetDir   string `yaml:"assetDir"`   // Override embedded templates/styles (empty = embedded)
	Disabled   bool   `yaml:"disabled"`   // Skip installing stylesheets into the output tree
}

// BuildConfig defines build behavior.
type BuildConfig struct {
	Workers       int  `yaml:"workers"`       // Parallel render workers (0 = auto)
	IncludeDrafts bool `yaml:"includeDrafts"` // Render posts marked draft: true
	NoIndex       bool `yaml:"noIndex"`       // Skip generating index.html
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:      "",
			DateFormat: "",
		},
	}
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.title", c.Site.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.author", c.Site.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.baseURL", c.Site.BaseURL, MaxBaseURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.dateFormat", c.Site.DateFormat, MaxDateFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.stylesheet", c.Style.Stylesheet, MaxStylesheetLength); err != nil {
		return err
	}
	if c.Build.Workers < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkers, c.Build.Workers)
	}
	return nil
}

// validateFieldLength checks a single field against its limit.
func validateFieldLength(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s is %d characters (max %d)", ErrFieldTooLong, field, len(value), max)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations checked for a named config, in order.
func SearchPaths(name string) []string {
	paths := []string{
		name + ".yaml",
		name + ".yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "ebolg", name+".yaml"),
			filepath.Join(home, ".config", "ebolg", name+".yml"),
		)
	}
	return paths
}

// resolveConfigPath searches standard locations for a named config.
func resolveConfigPath(name string) (string, error) {
	searched := SearchPaths(name)
	for _, p := range searched {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (searched %s)", ErrConfigNotFound, name, strings.Join(searched, ", "))
}
