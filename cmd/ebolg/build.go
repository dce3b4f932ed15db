package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ebolg "github.com/pvidal/ebolg"
	"github.com/pvidal/ebolg/internal/assets"
	"github.com/pvidal/ebolg/internal/config"
	"github.com/pvidal/ebolg/internal/fileutil"
)

// Sentinel errors for build operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrNoOutput      = errors.New("no output directory specified")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWritePage     = errors.New("failed to write HTML file")
	ErrGeneratorInit = errors.New("failed to initialize generator")
)

// stylesheetNames are installed into the output tree's style/ directory.
var stylesheetNames = []string{"tailwind", "chroma"}

// renderJob is one page to render and write.
type renderJob struct {
	post       *ebolg.Post
	input      ebolg.Input
	outputRel  string // output path relative to the output root
	outputPath string
}

// runBuild orchestrates the whole build: discover, parse, order, render,
// write pages, write the index, and install stylesheets.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, env *Environment) error {
	if err := validateWorkers(flags.build.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve input and output
	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	outputDir, err := resolveOutputDir(positional, cfg)
	if err != nil {
		return err
	}

	// Discover sources
	sources, isDir, err := discoverSources(inputPath)
	if err != nil {
		return fmt.Errorf("discovering posts: %w", err)
	}
	if len(sources) == 0 {
		return fmt.Errorf("no markdown posts found in %s", inputPath)
	}

	// Parse posts. In directory mode sources with broken frontmatter are
	// skipped with a report; a single explicit file is a hard error.
	posts, err := loadPosts(sources, isDir, cfg, env)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return fmt.Errorf("no publishable posts found in %s", inputPath)
	}

	// Order chronologically and wire up neighbors
	sortPosts(posts)
	jobs := buildJobs(posts, outputDir, cfg)

	// Resolve the asset loader (custom directory overrides embedded)
	loader := env.AssetLoader
	if cfg.Style.AssetDir != "" {
		loader, err = assets.NewDirLoader(cfg.Style.AssetDir)
		if err != nil {
			return fmt.Errorf("%w: %v", ebolg.ErrInvalidAssetDir, err)
		}
	}

	// Render pages
	pool := NewGeneratorPool(resolvePoolSize(cfg.Build.Workers), generatorFactory(cfg))
	results := renderBatch(ctx, pool, jobs)
	if err := pool.InitErr(); err != nil {
		return err
	}

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)

	// Write the index page (directory builds only)
	if isDir && !cfg.Build.NoIndex {
		if err := writeIndex(ctx, pool, jobs, outputDir, cfg); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", filepath.Join(outputDir, "index.html"))
		}
	}

	// Install stylesheets the generated pages reference
	if !cfg.Style.Disabled {
		if err := installStylesheets(outputDir, loader); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d page(s) failed", failed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.site.title != "" {
		cfg.Site.Title = flags.site.title
	}
	if flags.site.author != "" {
		cfg.Site.Author = flags.site.author
	}
	if flags.site.baseURL != "" {
		cfg.Site.BaseURL = flags.site.baseURL
	}
	if flags.site.dateFormat != "" {
		cfg.Site.DateFormat = flags.site.dateFormat
	}

	if flags.style.stylesheet != "" {
		cfg.Style.Stylesheet = flags.style.stylesheet
	}
	if flags.style.assetDir != "" {
		cfg.Style.AssetDir = flags.style.assetDir
	}
	if flags.style.disabled {
		cfg.Style.Disabled = true
	}

	if flags.build.workers != 0 {
		cfg.Build.Workers = flags.build.workers
	}
	if flags.build.drafts {
		cfg.Build.IncludeDrafts = true
	}
	if flags.build.noIndex {
		cfg.Build.NoIndex = true
	}
}

// resolveInputPath picks the input from positional args or config.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir picks the output directory from positional args or config.
func resolveOutputDir(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 1 {
		return positional[1], nil
	}
	if cfg.Output.DefaultDir != "" {
		return cfg.Output.DefaultDir, nil
	}
	return "", ErrNoOutput
}

// loadPosts reads and parses the discovered sources.
// Directory mode skips unparsable posts and drafts; single-file mode
// propagates parse errors and builds drafts unconditionally.
func loadPosts(sources []SourceFile, isDir bool, cfg *config.Config, env *Environment) ([]postEntry, error) {
	posts := make([]postEntry, 0, len(sources))

	for _, src := range sources {
		content, err := os.ReadFile(src.Path) // #nosec G304 -- discovered path
		if err != nil {
			if !isDir {
				return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
			}
			fmt.Fprintf(env.Stderr, "skipping %s: %v\n", src.Path, err)
			continue
		}

		post, err := ebolg.ParsePost(src.Path, content)
		if err != nil {
			if !isDir {
				return nil, err
			}
			fmt.Fprintf(env.Stderr, "skipping %s: %v\n", src.Path, err)
			continue
		}

		if post.Meta.Draft && isDir && !cfg.Build.IncludeDrafts {
			continue
		}
		if post.Meta.Author == "" {
			post.Meta.Author = cfg.Site.Author
		}

		posts = append(posts, postEntry{post: post, relDir: src.RelDir})
	}

	return posts, nil
}

// postEntry pairs a parsed post with its location in the source tree.
type postEntry struct {
	post   *ebolg.Post
	relDir string
}

// sortPosts orders posts by date ascending. Equal dates break ties by
// slug so the prev/next chain is deterministic.
func sortPosts(posts []postEntry) {
	sort.SliceStable(posts, func(i, j int) bool {
		di, dj := posts[i].post.Meta.Date, posts[j].post.Meta.Date
		if di.Equal(dj) {
			return posts[i].post.Slug < posts[j].post.Slug
		}
		return di.Before(dj)
	})
}

// buildJobs computes output paths, neighbor links, and per-page
// stylesheet hrefs for the ordered posts.
func buildJobs(posts []postEntry, outputDir string, cfg *config.Config) []renderJob {
	stylesheet := cfg.Style.Stylesheet
	if stylesheet == "" {
		stylesheet = ebolg.DefaultStylesheetHref
	}

	rels := make([]string, len(posts))
	for i, p := range posts {
		rels[i] = outputRelPath(p.relDir, p.post.Slug)
	}

	jobs := make([]renderJob, len(posts))
	for i, p := range posts {
		job := renderJob{
			post:       p.post,
			outputRel:  rels[i],
			outputPath: filepath.Join(outputDir, filepath.FromSlash(rels[i])),
		}

		job.input = ebolg.Input{
			Post:           p.post,
			StylesheetHref: stylesheetHref(rels[i], stylesheet),
		}
		if i > 0 {
			job.input.Prev = &ebolg.Neighbor{
				Title: posts[i-1].post.Meta.Title,
				Href:  relativeHref(rels[i], rels[i-1]),
			}
		}
		if i < len(posts)-1 {
			job.input.Next = &ebolg.Neighbor{
				Title: posts[i+1].post.Meta.Title,
				Href:  relativeHref(rels[i], rels[i+1]),
			}
		}

		jobs[i] = job
	}

	return jobs
}

// outputRelPath is the page location relative to the output root.
func outputRelPath(relDir, slug string) string {
	if relDir == "" || relDir == "." {
		return slug + ".html"
	}
	return filepath.ToSlash(filepath.Join(relDir, slug+".html"))
}

// stylesheetHref adjusts the stylesheet reference for a page's depth in
// the output tree. Absolute URLs and absolute paths pass through.
func stylesheetHref(fromRel, stylesheet string) string {
	if fileutil.IsURL(stylesheet) || strings.HasPrefix(stylesheet, "/") {
		return stylesheet
	}
	return relativeHref(fromRel, stylesheet)
}

// relativeHref computes the href from a page (by its output-relative
// path) to another output-relative target.
func relativeHref(fromRel, targetRel string) string {
	rel, err := filepath.Rel(filepath.Dir(filepath.FromSlash(fromRel)), filepath.FromSlash(targetRel))
	if err != nil {
		return targetRel
	}
	return filepath.ToSlash(rel)
}

// generatorFactory builds generators configured from the merged config.
func generatorFactory(cfg *config.Config) func() (*ebolg.Generator, error) {
	return func() (*ebolg.Generator, error) {
		var opts []ebolg.Option
		if cfg.Style.AssetDir != "" {
			opts = append(opts, ebolg.WithAssetDir(cfg.Style.AssetDir))
		}
		if cfg.Site.DateFormat != "" {
			opts = append(opts, ebolg.WithDateFormat(cfg.Site.DateFormat))
		}
		return ebolg.NewGenerator(opts...)
	}
}

// writeIndex renders and writes index.html listing posts newest first.
func writeIndex(ctx context.Context, pool Pool, jobs []renderJob, outputDir string, cfg *config.Config) error {
	entries := make([]ebolg.IndexEntry, 0, len(jobs))
	for i := len(jobs) - 1; i >= 0; i-- { // newest first
		job := jobs[i]
		entries = append(entries, ebolg.IndexEntry{
			Title:       job.post.Meta.Title,
			Href:        indexHref(job.outputRel, cfg.Site.BaseURL),
			Date:        job.post.Meta.Date,
			Description: job.post.Meta.Description,
			Tags:        job.post.Meta.Tags,
		})
	}

	gen := pool.Acquire()
	if gen == nil {
		return ErrGeneratorInit
	}
	defer pool.Release(gen)

	stylesheet := cfg.Style.Stylesheet
	if stylesheet == "" {
		stylesheet = ebolg.DefaultStylesheetHref
	}

	result, err := gen.RenderIndex(ctx, ebolg.IndexInput{
		SiteTitle:      cfg.Site.Title,
		Entries:        entries,
		StylesheetHref: stylesheet,
	})
	if err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}

	indexPath := filepath.Join(outputDir, "index.html")
	if err := fileutil.WriteFileAtomic(indexPath, result.HTML); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return nil
}

// indexHref prefixes index links with the configured base URL, if any.
func indexHref(rel, baseURL string) string {
	if baseURL == "" {
		return rel
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + rel
}

// installStylesheets writes the prebuilt stylesheets into the output
// tree's style/ directory. Files already present are left untouched so a
// hand-rolled tailwind.css survives rebuilds.
func installStylesheets(outputDir string, loader assets.AssetLoader) error {
	for _, name := range stylesheetNames {
		dst := filepath.Join(outputDir, "style", name+".css")
		if fileutil.FileExists(dst) {
			continue
		}

		content, err := loader.LoadStyle(name)
		if err != nil {
			return fmt.Errorf("loading %s stylesheet: %w", name, err)
		}
		if err := fileutil.WriteFileAtomic(dst, []byte(content)); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePage, err)
		}
	}
	return nil
}
