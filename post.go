package ebolg

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"

	"github.com/pvidal/ebolg/internal/dateutil"
)

// frontMatterDelimiter opens and closes the YAML block at the top of a post.
const frontMatterDelimiter = "---"

// utf8BOM is stripped from post sources before parsing; editors on some
// platforms prepend it and it would hide the frontmatter delimiter.
var utf8BOM = []byte("\uFEFF")

// metaEnvelope is the YAML shape of post frontmatter. Date stays a string
// here so multiple layouts can be accepted; see internal/dateutil.
type metaEnvelope struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Slug        string   `yaml:"slug"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

// ParsePost parses a Markdown source document into a Post.
// The source must start with a YAML frontmatter block carrying at least
// title and date. The path is only used for error context and as the
// slug fallback; ParsePost does not touch the filesystem.
func ParsePost(path string, source []byte) (*Post, error) {
	source = bytes.TrimPrefix(source, utf8BOM)
	if len(bytes.TrimSpace(source)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyMarkdown, path)
	}
	if !strings.HasPrefix(strings.TrimLeft(string(source), "\n\r\t "), frontMatterDelimiter) {
		return nil, fmt.Errorf("%w: %s", ErrNoFrontMatter, path)
	}

	var env metaEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrontMatter, path, err)
	}

	meta, err := envelopeToMeta(env, path)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveSlug(meta, path)
	if err != nil {
		return nil, err
	}

	return &Post{
		Meta:       meta,
		Markdown:   strings.TrimSpace(string(body)),
		SourcePath: path,
		Slug:       resolved,
	}, nil
}

// envelopeToMeta validates required fields and parses the date.
func envelopeToMeta(env metaEnvelope, path string) (Meta, error) {
	if strings.TrimSpace(env.Title) == "" {
		return Meta{}, fmt.Errorf("%w: %s", ErrMissingTitle, path)
	}
	if strings.TrimSpace(env.Date) == "" {
		return Meta{}, fmt.Errorf("%w: %s", ErrMissingDate, path)
	}

	date, err := dateutil.ParseDate(env.Date)
	if err != nil {
		return Meta{}, fmt.Errorf("%s: %w", path, err)
	}

	return Meta{
		Title:       strings.TrimSpace(env.Title),
		Date:        date,
		Slug:        env.Slug,
		Author:      env.Author,
		Description: env.Description,
		Tags:        env.Tags,
		Draft:       env.Draft,
	}, nil
}

// resolveSlug picks the output slug for a post.
// Priority: explicit frontmatter slug > slugified title > source filename.
func resolveSlug(meta Meta, path string) (string, error) {
	if meta.Slug != "" {
		if !slug.IsValid(meta.Slug) {
			return "", fmt.Errorf("%w: %q in %s", ErrInvalidSlug, meta.Slug, path)
		}
		return meta.Slug, nil
	}

	if s, err := slug.Normalize(meta.Title); err == nil && s != "" {
		return s, nil
	}

	// Title didn't survive normalization (e.g. all punctuation);
	// fall back to the source filename stem.
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := slug.Normalize(base)
	if err != nil || s == "" {
		return "", fmt.Errorf("%w: cannot derive slug for %s", ErrInvalidSlug, path)
	}
	return s, nil
}
