package ebolg

import "time"

// DefaultStylesheetHref is where generated pages expect the prebuilt
// Tailwind stylesheet, relative to the output root.
const DefaultStylesheetHref = "style/tailwind.css"

// DefaultDateFormat renders dates on pages and index entries.
// Tokens follow internal/dateutil (YYYY, MM, DD, MMMM, ...).
const DefaultDateFormat = "MMMM D, YYYY"

// Meta holds the frontmatter of a post.
// Title and Date are required; everything else is optional.
type Meta struct {
	Title       string
	Date        time.Time
	Slug        string
	Author      string
	Description string
	Tags        []string
	Draft       bool
}

// Post is a parsed Markdown source document.
type Post struct {
	Meta       Meta
	Markdown   string // body with frontmatter stripped
	SourcePath string
	Slug       string // resolved output slug: Meta.Slug, else slugified title
}

// Neighbor points at an adjacent post in the date-ordered sequence.
type Neighbor struct {
	Title string
	Href  string
}

// Input contains the parameters for rendering one post page.
type Input struct {
	Post           *Post
	Prev           *Neighbor // older post, nil at the start of the sequence
	Next           *Neighbor // newer post, nil at the end
	StylesheetHref string    // "" = generator default
}

// IndexEntry is one row on the generated index page.
type IndexEntry struct {
	Title       string
	Href        string
	Date        time.Time
	Description string
	Tags        []string
}

// IndexInput contains the parameters for rendering the index page.
// Entries are rendered in the order given; callers sort newest first.
type IndexInput struct {
	SiteTitle      string
	Entries        []IndexEntry
	StylesheetHref string
}

// RenderResult holds a rendered page.
type RenderResult struct {
	HTML  []byte
	Title string
	Slug  string
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	assetDir       string
	stylesheetHref string
	dateFormat     string
}

// WithAssetDir overrides the embedded templates and styles with files
// from the given directory (expects templates/ and styles/ subdirs).
func WithAssetDir(path string) Option {
	return func(g *Generator) {
		g.cfg.assetDir = path
	}
}

// WithStylesheetHref sets the default stylesheet href used when
// Input.StylesheetHref is empty.
func WithStylesheetHref(href string) Option {
	return func(g *Generator) {
		g.cfg.stylesheetHref = href
	}
}

// WithDateFormat sets the display format for post and index dates.
// The format is validated in NewGenerator.
func WithDateFormat(format string) Option {
	return func(g *Generator) {
		g.cfg.dateFormat = format
	}
}
