package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig drops a YAML config in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ebolg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `site:
  title: My Blog
  author: Jane
  dateFormat: iso
input:
  defaultDir: posts
output:
  defaultDir: public
style:
  stylesheet: style/tailwind.css
build:
  workers: 4
  includeDrafts: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Site.Title != "My Blog" {
		t.Errorf("Site.Title = %q", cfg.Site.Title)
	}
	if cfg.Site.Author != "Jane" {
		t.Errorf("Site.Author = %q", cfg.Site.Author)
	}
	if cfg.Site.DateFormat != "iso" {
		t.Errorf("Site.DateFormat = %q", cfg.Site.DateFormat)
	}
	if cfg.Input.DefaultDir != "posts" {
		t.Errorf("Input.DefaultDir = %q", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "public" {
		t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
	}
	if cfg.Style.Stylesheet != "style/tailwind.css" {
		t.Errorf("Style.Stylesheet = %q", cfg.Style.Stylesheet)
	}
	if cfg.Build.Workers != 4 {
		t.Errorf("Build.Workers = %d", cfg.Build.Workers)
	}
	if !cfg.Build.IncludeDrafts {
		t.Error("Build.IncludeDrafts = false, want true")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty name",
			path:    func(t *testing.T) string { return "" },
			wantErr: ErrEmptyConfigName,
		},
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			wantErr: ErrConfigNotFound,
		},
		{
			name: "unknown field",
			path: func(t *testing.T) string {
				return writeConfig(t, "site:\n  titel: typo\n")
			},
			wantErr: ErrConfigParse,
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string {
				return writeConfig(t, "site: [unclosed\n")
			},
			wantErr: ErrConfigParse,
		},
		{
			name: "negative workers",
			path: func(t *testing.T) string {
				return writeConfig(t, "build:\n  workers: -1\n")
			},
			wantErr: ErrInvalidWorkers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name: "title too long",
			mutate: func(c *Config) {
				c.Site.Title = strings.Repeat("t", MaxTitleLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "author too long",
			mutate: func(c *Config) {
				c.Site.Author = strings.Repeat("a", MaxAuthorLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "stylesheet too long",
			mutate: func(c *Config) {
				c.Style.Stylesheet = strings.Repeat("s", MaxStylesheetLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "negative workers",
			mutate: func(c *Config) {
				c.Build.Workers = -1
			},
			wantErr: ErrInvalidWorkers,
		},
		{
			name: "zero workers means auto",
			mutate: func(c *Config) {
				c.Build.Workers = 0
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("ebolg")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() returned %d paths, want at least 2", len(paths))
	}
	if paths[0] != "ebolg.yaml" {
		t.Errorf("paths[0] = %q, want %q", paths[0], "ebolg.yaml")
	}
	if paths[1] != "ebolg.yml" {
		t.Errorf("paths[1] = %q, want %q", paths[1], "ebolg.yml")
	}
}
