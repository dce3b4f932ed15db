package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/pvidal/ebolg/internal/assets"
)

// Sentinel errors for layout rendering.
var (
	ErrLayoutRender = errors.New("page layout rendering failed")
	ErrIndexRender  = errors.New("index layout rendering failed")
)

// NavLink is a prev/next navigation target on a post page.
type NavLink struct {
	Title string
	Href  string
}

// PostPage is the data handed to the post template.
type PostPage struct {
	Title          string
	Author         string
	DateISO        string // machine-readable, for <time datetime>
	DateDisplay    string // human-readable
	Tags           []string
	Content        template.HTML // rendered and class-injected fragment
	Prev           *NavLink
	Next           *NavLink
	StylesheetHref string
}

// IndexEntry is one post row handed to the index template.
type IndexEntry struct {
	Title       string
	Href        string
	DateISO     string
	DateDisplay string
	Description string
	Tags        []string
}

// IndexPage is the data handed to the index template.
type IndexPage struct {
	SiteTitle      string
	Entries        []IndexEntry
	StylesheetHref string
}

// LayoutRenderer defines the contract for wrapping rendered fragments in
// complete HTML documents.
type LayoutRenderer interface {
	RenderPost(ctx context.Context, page PostPage) (string, error)
	RenderIndex(ctx context.Context, page IndexPage) (string, error)
}

// TemplateLayout renders pages through html/template shells loaded from
// an asset loader (embedded by default, filesystem via --asset-path).
type TemplateLayout struct {
	post  *template.Template
	index *template.Template
}

// NewTemplateLayout loads and parses the post and index templates.
func NewTemplateLayout(loader assets.AssetLoader) (*TemplateLayout, error) {
	post, err := loadTemplate(loader, "post")
	if err != nil {
		return nil, err
	}

	index, err := loadTemplate(loader, "index")
	if err != nil {
		return nil, err
	}

	return &TemplateLayout{post: post, index: index}, nil
}

// loadTemplate fetches a template by name and parses it.
func loadTemplate(loader assets.AssetLoader, name string) (*template.Template, error) {
	src, err := loader.LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s template: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}

	return tmpl, nil
}

// RenderPost wraps a rendered post fragment in the page shell.
func (l *TemplateLayout) RenderPost(ctx context.Context, page PostPage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := l.post.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLayoutRender, err)
	}
	return buf.String(), nil
}

// RenderIndex renders the front page listing.
func (l *TemplateLayout) RenderIndex(ctx context.Context, page IndexPage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := l.index.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.String(), nil
}
