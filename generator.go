package ebolg

import (
	"context"
	"fmt"
	"html/template"

	"github.com/pvidal/ebolg/internal/assets"
	"github.com/pvidal/ebolg/internal/dateutil"
	"github.com/pvidal/ebolg/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.PostPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.ClassInjector        = (*pipeline.ClassInjection)(nil)
	_ pipeline.LayoutRenderer       = (*pipeline.TemplateLayout)(nil)
	_ assets.AssetLoader            = (*assets.EmbeddedLoader)(nil)
	_ assets.AssetLoader            = (*assets.DirLoader)(nil)
)

// Generator orchestrates the post rendering pipeline.
// Create with NewGenerator; Generators are safe for concurrent use.
type Generator struct {
	cfg          generatorConfig
	assetLoader  assets.AssetLoader
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
	injector     pipeline.ClassInjector
	layout       pipeline.LayoutRenderer
	dateGoFmt    string // resolved Go layout for display dates
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithAssetDir, WithDateFormat).
// Returns an error if asset loading or template parsing fails.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			stylesheetHref: DefaultStylesheetHref,
			dateFormat:     DefaultDateFormat,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.PostPreprocessor{},
		converter:    pipeline.NewGoldmarkConverter(),
		injector:     pipeline.NewClassInjection(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.assetDir != "" {
		loader, err := assets.NewDirLoader(g.cfg.assetDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
		}
		g.assetLoader = loader
	}

	goFmt, err := dateutil.ParseDateFormat(g.cfg.dateFormat)
	if err != nil {
		return nil, fmt.Errorf("date format: %w", err)
	}
	g.dateGoFmt = goFmt

	layout, err := pipeline.NewTemplateLayout(g.assetLoader)
	if err != nil {
		return nil, err
	}
	g.layout = layout

	return g, nil
}

// Render runs the full pipeline for one post and returns the complete
// HTML page. The context is checked between stages.
func (g *Generator) Render(ctx context.Context, input Input) (*RenderResult, error) {
	if err := g.validateInput(input); err != nil {
		return nil, err
	}

	post := input.Post

	// Preprocess markdown
	mdContent := g.preprocessor.PreprocessMarkdown(ctx, post.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to an HTML fragment
	fragment, err := g.converter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Inject Tailwind utility classes
	fragment = g.injector.InjectClasses(ctx, fragment)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Wrap in the page shell
	// Content went through Goldmark with raw HTML escaping on, so marking
	// it trusted here does not reopen injection from sources.
	page, err := g.layout.RenderPost(ctx, pipeline.PostPage{
		Title:          post.Meta.Title,
		Author:         post.Meta.Author,
		DateISO:        post.Meta.Date.Format("2006-01-02"),
		DateDisplay:    post.Meta.Date.Format(g.dateGoFmt),
		Tags:           post.Meta.Tags,
		Content:        template.HTML(fragment), // #nosec G203
		Prev:           toNavLink(input.Prev),
		Next:           toNavLink(input.Next),
		StylesheetHref: g.resolveStylesheetHref(input.StylesheetHref),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	return &RenderResult{
		HTML:  []byte(page),
		Title: post.Meta.Title,
		Slug:  post.Slug,
	}, nil
}

// RenderIndex renders the front page listing. Entries are rendered in
// the order given; the CLI sorts them newest first.
func (g *Generator) RenderIndex(ctx context.Context, input IndexInput) (*RenderResult, error) {
	siteTitle := input.SiteTitle
	if siteTitle == "" {
		siteTitle = "Posts"
	}

	entries := make([]pipeline.IndexEntry, len(input.Entries))
	for i, e := range input.Entries {
		entries[i] = pipeline.IndexEntry{
			Title:       e.Title,
			Href:        e.Href,
			DateISO:     e.Date.Format("2006-01-02"),
			DateDisplay: e.Date.Format(g.dateGoFmt),
			Description: e.Description,
			Tags:        e.Tags,
		}
	}

	page, err := g.layout.RenderIndex(ctx, pipeline.IndexPage{
		SiteTitle:      siteTitle,
		Entries:        entries,
		StylesheetHref: g.resolveStylesheetHref(input.StylesheetHref),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering index: %w", err)
	}

	return &RenderResult{
		HTML:  []byte(page),
		Title: siteTitle,
		Slug:  "index",
	}, nil
}

// validateInput checks that required fields are present.
func (g *Generator) validateInput(input Input) error {
	if input.Post == nil {
		return ErrNilPost
	}
	if input.Post.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return nil
}

// resolveStylesheetHref falls back to the generator default.
func (g *Generator) resolveStylesheetHref(href string) string {
	if href != "" {
		return href
	}
	return g.cfg.stylesheetHref
}

// toNavLink converts the public Neighbor type to the internal NavLink.
func toNavLink(n *Neighbor) *pipeline.NavLink {
	if n == nil {
		return nil
	}
	return &pipeline.NavLink{Title: n.Title, Href: n.Href}
}
