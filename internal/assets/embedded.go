package assets

import (
	"embed"
	"fmt"
)

// builtin carries the generator's default look: the prebuilt Tailwind
// utility subset, the chroma token palette, and the post/index page
// shells. Pages render from these unless --asset-path overrides a file.
//
//go:embed styles templates
var builtin embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the embedded stylesheet with the given stem
// (no .css extension).
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readBuiltin("styles", name, ".css", ErrStyleNotFound)
}

// LoadTemplate returns the embedded page template with the given stem
// (no .html extension).
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readBuiltin("templates", name, ".html", ErrTemplateNotFound)
}

// readBuiltin validates the stem and reads one embedded asset.
func readBuiltin(subdir, name, ext string, missing error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := builtin.ReadFile(subdir + "/" + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", missing, name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
