package ebolg

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrNilPost       = errors.New("post cannot be nil")

	// Frontmatter parsing errors.
	ErrNoFrontMatter = errors.New("missing YAML frontmatter")
	ErrFrontMatter   = errors.New("invalid YAML frontmatter")
	ErrMissingTitle  = errors.New("frontmatter is missing required field \"title\"")
	ErrMissingDate   = errors.New("frontmatter is missing required field \"date\"")
	ErrInvalidSlug   = errors.New("invalid slug")

	// Asset loading errors.
	ErrInvalidAssetDir = errors.New("invalid asset directory")
)
