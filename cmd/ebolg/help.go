package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ebolg [flags] <FILE or DIRECTORY> <OUTPUT DIRECTORY>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown posts to Tailwind-styled HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "  output    Output directory (optional if config has output.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --site-title <s>    Index page heading")
	fmt.Fprintln(w, "      --site-author <s>   Fallback author for posts without one")
	fmt.Fprintln(w, "      --base-url <s>      Absolute base for index links")
	fmt.Fprintln(w, "      --date-format <s>   Display date format")
	fmt.Fprintln(w, "                          Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                          Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                          Use [text] to escape literals: [posted] DD/MM")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --stylesheet <s>    Stylesheet href written into pages")
	fmt.Fprintln(w, "      --asset-path <dir>  Override embedded templates and styles")
	fmt.Fprintln(w, "      --no-style          Don't install stylesheets into the output tree")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --drafts            Include posts marked draft: true")
	fmt.Fprintln(w, "      --no-index          Skip generating index.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed timing")
	fmt.Fprintln(w, "      --version           Show version information")
}
