package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// SourceFile is one Markdown source found under the input path.
type SourceFile struct {
	Path   string // full path to the .md file
	RelDir string // directory relative to the input root ("." for top level)
}

// discoverSources finds all Markdown sources to build.
// Returns the sources and whether the input path is a directory.
func discoverSources(inputPath string) ([]SourceFile, bool, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, false, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, false, err
		}
		return []SourceFile{{Path: inputPath, RelDir: "."}}, false, nil
	}

	var files []SourceFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}

		relDir, err := filepath.Rel(inputPath, filepath.Dir(path))
		if err != nil {
			relDir = "."
		}
		files = append(files, SourceFile{Path: path, RelDir: relDir})
		return nil
	})

	return files, true, err
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}
