// Package ebolg turns Markdown blog posts into Tailwind-styled HTML pages.
//
// A post is a Markdown file with YAML frontmatter carrying at least a title
// and a date. Rendering runs a four-stage pipeline:
//
//  1. Markdown preprocessing (line ending normalization, blank line cleanup)
//  2. Markdown to HTML conversion via Goldmark (GFM tables, footnotes,
//     syntax highlighting with CSS classes)
//  3. Tailwind utility class injection into the rendered fragment
//  4. Page layout rendering (head, prev/next navigation, article, footer)
//
// Use NewGenerator to build a Generator, ParsePost to read sources,
// Render for a single post, and RenderIndex for the front page. The
// cmd/ebolg CLI layers file discovery, chronological neighbor linking,
// and output writing on top of this package.
//
// Generated pages reference a prebuilt stylesheet at style/tailwind.css
// relative to the output root; the embedded copy is installed by the CLI
// when the output tree doesn't already carry one.
package ebolg
