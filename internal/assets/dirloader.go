package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirLoader loads assets from a directory on the filesystem, expecting
// styles/ and templates/ subdirectories. Names that don't resolve on disk
// fall back to the embedded assets, so a custom asset directory only needs
// to carry the files it overrides.
type DirLoader struct {
	baseDir  string
	fallback *EmbeddedLoader
}

// NewDirLoader creates a DirLoader for the given directory.
// Returns ErrInvalidBaseDir if the path is not a valid, readable directory.
func NewDirLoader(baseDir string) (*DirLoader, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBaseDir)
	}

	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}

	// Resolve symlinks so the containment check below compares real paths.
	if realDir, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = realDir
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBaseDir, absDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBaseDir, absDir)
	}

	return &DirLoader{baseDir: absDir, fallback: NewEmbeddedLoader()}, nil
}

// LoadStyle loads {baseDir}/styles/{name}.css, falling back to the
// embedded stylesheet of the same name.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	return d.load(name, "styles", name+".css", d.fallback.LoadStyle)
}

// LoadTemplate loads {baseDir}/templates/{name}.html, falling back to the
// embedded template of the same name.
func (d *DirLoader) LoadTemplate(name string) (string, error) {
	return d.load(name, "templates", name+".html", d.fallback.LoadTemplate)
}

// load reads one asset file with name validation, containment checks,
// and embedded fallback on missing files.
func (d *DirLoader) load(name, subdir, filename string, fallback func(string) (string, error)) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(d.baseDir, subdir, filename)
	if err := d.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return fallback(name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return string(content), nil
}

// verifyPathContainment ensures the resolved file path is within baseDir.
// Prevents path traversal even if name validation is bypassed, including
// escape via symlinks pointing outside the base directory.
func (d *DirLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// If the file doesn't exist yet EvalSymlinks fails; the prefix check
	// still runs against the unresolved path and ReadFile fails anyway.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	if !strings.HasPrefix(absFilePath, d.baseDir+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes asset directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ AssetLoader = (*DirLoader)(nil)
