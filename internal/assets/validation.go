package assets

import (
	"fmt"
	"regexp"
)

// assetNamePattern restricts style and template names to bare file stems:
// letters, digits, hyphens, underscores. The loaders append the extension
// and subdirectory themselves, so dots (extension smuggling) and path
// separators (traversal) never reach the filesystem.
var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateAssetName checks that name is usable as a stylesheet or
// template stem. Returns ErrInvalidAssetName otherwise.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
