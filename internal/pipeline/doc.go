// Package pipeline implements the Markdown-to-HTML rendering pipeline.
//
// This package handles the stages between a parsed post body and a
// complete HTML document:
//   - Markdown preprocessing (line normalization, blank line cleanup)
//   - Markdown to HTML conversion via Goldmark
//   - Tailwind utility class injection into the rendered fragment
//   - Page and index layout rendering via html/template
//
// Frontmatter parsing and post sequencing live in the root ebolg package;
// file discovery and output writing live in cmd/ebolg. This separation
// keeps the pipeline focused on turning one document into one page.
package pipeline
