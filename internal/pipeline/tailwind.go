package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// ClassInjector defines the contract for Tailwind class injection.
type ClassInjector interface {
	InjectClasses(ctx context.Context, htmlContent string) string
}

// tagClasses maps an HTML tag emitted by the Markdown renderer to the
// Tailwind utility classes that style it. The page shell supplies the
// dark background; these classes skin the article content.
var tagClasses = []struct {
	tag     string
	classes string
}{
	{"h1", "text-3xl font-bold mt-6 mb-4"},
	{"h2", "text-2xl font-bold mb-2"},
	{"h3", "text-xl font-semibold mb-2"},
	{"h4", "text-lg font-semibold mb-2"},
	{"p", "text-gray-400 mb-4"},
	{"a", "text-green-400 underline hover:text-green-300"},
	{"ul", "list-disc ml-6 mb-4 text-gray-400"},
	{"ol", "list-decimal ml-6 mb-4 text-gray-400"},
	{"blockquote", "border-l-4 border-green-500 pl-4 italic text-gray-500 mb-4"},
	{"pre", "bg-gray-700 text-green-300 p-4 rounded mb-4 overflow-x-auto"},
	{"code", "inline-block"},
	{"table", "table-auto border-collapse mb-4"},
	{"th", "border border-gray-600 px-4 py-2 font-bold"},
	{"td", "border border-gray-600 px-4 py-2 text-gray-400"},
	{"hr", "border-gray-600 my-6"},
	{"img", "rounded mb-4 max-w-full"},
}

// classAttrPrefix locates an existing class attribute inside a matched tag.
const classAttrPrefix = `class="`

// classRule rewrites opening tags of one element to carry utility classes.
type classRule struct {
	tag     string
	classes string
	pattern *regexp.Regexp
}

// openingTagPattern matches a complete opening (or self-closing) tag for
// the given element, with or without attributes. The character after the
// name must be whitespace or ">" so that "p" does not match "pre" and
// "th" does not match "thead". Closing tags never match because "/"
// precedes the name there.
func openingTagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`<` + tag + `(\s[^>]*)?>`)
}

// rewrite returns the matched tag with utility classes injected. Tags that
// already carry a class attribute (e.g. chroma's <pre class="chroma">) get
// the utilities prepended to it instead of a duplicate attribute.
func (r classRule) rewrite(match string) string {
	if i := strings.Index(match, classAttrPrefix); i != -1 {
		at := i + len(classAttrPrefix)
		return match[:at] + r.classes + " " + match[at:]
	}

	// Insert a class attribute right after the element name. Works for
	// attribute-free tags (<p>) and self-closing ones (<hr />) alike.
	at := 1 + len(r.tag)
	return match[:at] + " " + classAttrPrefix + r.classes + `"` + match[at:]
}

// ClassInjection adds Tailwind utility classes to rendered HTML tags.
// Only real tag boundaries are rewritten; text content is never touched,
// and escaped markup inside code blocks (&lt;h1&gt;) cannot match.
type ClassInjection struct {
	rules []classRule
}

// NewClassInjection creates a ClassInjection with the blog's class map.
func NewClassInjection() *ClassInjection {
	rules := make([]classRule, 0, len(tagClasses))
	for _, tc := range tagClasses {
		rules = append(rules, classRule{
			tag:     tc.tag,
			classes: tc.classes,
			pattern: openingTagPattern(tc.tag),
		})
	}
	return &ClassInjection{rules: rules}
}

// InjectClasses rewrites opening tags to carry Tailwind utility classes.
// Returns the input unchanged if ctx is already canceled.
func (c *ClassInjection) InjectClasses(ctx context.Context, htmlContent string) string {
	if ctx.Err() != nil {
		return htmlContent
	}

	for _, rule := range c.rules {
		htmlContent = rule.pattern.ReplaceAllStringFunc(htmlContent, rule.rewrite)
	}
	return htmlContent
}
