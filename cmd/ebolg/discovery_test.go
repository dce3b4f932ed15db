package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeSource creates a file under dir with the given relative path.
func writeSource(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDiscoverSourcesDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "a.md", "# a")
	writeSource(t, dir, "notes.txt", "skip me")
	writeSource(t, dir, "sub/b.markdown", "# b")
	writeSource(t, dir, "sub/deep/c.md", "# c")

	sources, isDir, err := discoverSources(dir)
	if err != nil {
		t.Fatalf("discoverSources() error = %v", err)
	}
	if !isDir {
		t.Error("isDir = false, want true")
	}
	if len(sources) != 3 {
		t.Fatalf("len(sources) = %d, want 3", len(sources))
	}

	byRel := map[string]string{}
	for _, src := range sources {
		byRel[filepath.Base(src.Path)] = src.RelDir
	}

	if byRel["a.md"] != "." {
		t.Errorf("RelDir for a.md = %q, want %q", byRel["a.md"], ".")
	}
	if byRel["b.markdown"] != "sub" {
		t.Errorf("RelDir for b.markdown = %q, want %q", byRel["b.markdown"], "sub")
	}
	if byRel["c.md"] != filepath.Join("sub", "deep") {
		t.Errorf("RelDir for c.md = %q, want %q", byRel["c.md"], filepath.Join("sub", "deep"))
	}
}

func TestDiscoverSourcesSingleFile(t *testing.T) {
	t.Parallel()

	path := writeSource(t, t.TempDir(), "post.md", "# post")

	sources, isDir, err := discoverSources(path)
	if err != nil {
		t.Fatalf("discoverSources() error = %v", err)
	}
	if isDir {
		t.Error("isDir = true, want false")
	}
	if len(sources) != 1 || sources[0].Path != path || sources[0].RelDir != "." {
		t.Errorf("sources = %+v", sources)
	}
}

func TestDiscoverSourcesWrongExtension(t *testing.T) {
	t.Parallel()

	path := writeSource(t, t.TempDir(), "post.txt", "not markdown")

	_, _, err := discoverSources(path)
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("discoverSources() error = %v, want %v", err, ErrInvalidExtension)
	}
}

func TestDiscoverSourcesMissingPath(t *testing.T) {
	t.Parallel()

	_, _, err := discoverSources(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("discoverSources() error = %v, want os.ErrNotExist", err)
	}
}

func TestDiscoverSourcesEmptyDirectory(t *testing.T) {
	t.Parallel()

	sources, isDir, err := discoverSources(t.TempDir())
	if err != nil {
		t.Fatalf("discoverSources() error = %v", err)
	}
	if !isDir {
		t.Error("isDir = false, want true")
	}
	if len(sources) != 0 {
		t.Errorf("len(sources) = %d, want 0", len(sources))
	}
}

func TestValidateMarkdownExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "post.md", wantErr: false},
		{path: "post.markdown", wantErr: false},
		{path: "post.txt", wantErr: true},
		{path: "post", wantErr: true},
		{path: "post.MD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			err := validateMarkdownExtension(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateMarkdownExtension(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
