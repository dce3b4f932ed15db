package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across concerns.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds site metadata flags.
type siteFlags struct {
	title      string
	author     string
	baseURL    string
	dateFormat string
}

// styleFlags holds styling flags.
type styleFlags struct {
	stylesheet string
	assetDir   string
	disabled   bool
}

// buildOptFlags holds build behavior flags.
type buildOptFlags struct {
	workers int
	drafts  bool
	noIndex bool
}

// buildFlags holds all flags for the build invocation.
type buildFlags struct {
	common      commonFlags
	site        siteFlags
	style       styleFlags
	build       buildOptFlags
	showVersion bool
	showHelp    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds site metadata flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.title, "site-title", "", "index page heading")
	fs.StringVar(&f.author, "site-author", "", "fallback author for posts without one")
	fs.StringVar(&f.baseURL, "base-url", "", "absolute base for index links")
	fs.StringVar(&f.dateFormat, "date-format", "", "display date format (tokens: YYYY, MM, DD, ...)")
}

// addStyleFlags adds styling flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.stylesheet, "stylesheet", "", "stylesheet href written into pages")
	fs.StringVar(&f.assetDir, "asset-path", "", "override embedded templates and styles")
	fs.BoolVar(&f.disabled, "no-style", false, "don't install stylesheets into the output tree")
}

// addBuildFlags adds build behavior flags to a FlagSet.
func addBuildFlags(fs *flag.FlagSet, f *buildOptFlags) {
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include posts marked draft: true")
	fs.BoolVar(&f.noIndex, "no-index", false, "skip generating index.html")
}

// parseFlags parses CLI arguments into buildFlags and positional arguments.
func parseFlags(args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}

	fs := flag.NewFlagSet("ebolg", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage printing is handled by help.go

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addStyleFlags(fs, &f.style)
	addBuildFlags(fs, &f.build)
	fs.BoolVar(&f.showVersion, "version", false, "show version information")
	fs.BoolVarP(&f.showHelp, "help", "h", false, "show usage")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			f.showHelp = true
			return f, nil, nil
		}
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
