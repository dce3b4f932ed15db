package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestInjectClasses(t *testing.T) {
	t.Parallel()

	injector := NewClassInjection()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "h1 without attributes",
			input:    "<h1>Title</h1>",
			expected: `<h1 class="text-3xl font-bold mt-6 mb-4">Title</h1>`,
		},
		{
			name:     "h2 with id attribute",
			input:    `<h2 id="section">Section</h2>`,
			expected: `<h2 class="text-2xl font-bold mb-2" id="section">Section</h2>`,
		},
		{
			name:     "paragraph",
			input:    "<p>text</p>",
			expected: `<p class="text-gray-400 mb-4">text</p>`,
		},
		{
			name:     "anchor keeps href",
			input:    `<a href="https://example.com">link</a>`,
			expected: `<a class="text-green-400 underline hover:text-green-300" href="https://example.com">link</a>`,
		},
		{
			name:     "existing class attribute is merged",
			input:    `<pre tabindex="0" class="chroma"><code>x</code></pre>`,
			expected: `<pre tabindex="0" class="bg-gray-700 text-green-300 p-4 rounded mb-4 overflow-x-auto chroma"><code class="inline-block">x</code></pre>`,
		},
		{
			name:     "self-closing hr",
			input:    "<hr />",
			expected: `<hr class="border-gray-600 my-6" />`,
		},
		{
			name:     "image with attributes",
			input:    `<img src="cat.png" alt="cat" />`,
			expected: `<img class="rounded mb-4 max-w-full" src="cat.png" alt="cat" />`,
		},
		{
			name:     "closing tags untouched",
			input:    "</p></h1></ul>",
			expected: "</p></h1></ul>",
		},
		{
			name:     "escaped markup untouched",
			input:    "<p>use &lt;h1&gt; sparingly</p>",
			expected: `<p class="text-gray-400 mb-4">use &lt;h1&gt; sparingly</p>`,
		},
		{
			name:     "plain text untouched",
			input:    "no tags here",
			expected: "no tags here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectClasses(context.Background(), tt.input)
			if got != tt.expected {
				t.Errorf("InjectClasses() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// A "p" rule must not rewrite "pre", and "th" must not rewrite "thead".
func TestInjectClassesTagBoundaries(t *testing.T) {
	t.Parallel()

	injector := NewClassInjection()

	got := injector.InjectClasses(context.Background(), "<thead><tr><th>A</th></tr></thead>")
	if strings.Contains(got, "<thead class=") {
		t.Errorf("InjectClasses() rewrote thead: %s", got)
	}
	if !strings.Contains(got, `<th class="border border-gray-600 px-4 py-2 font-bold">A</th>`) {
		t.Errorf("InjectClasses() missed th: %s", got)
	}
}

func TestInjectClassesNestedDocument(t *testing.T) {
	t.Parallel()

	injector := NewClassInjection()

	input := `<h1 id="t">T</h1>
<p>first</p>
<ul>
<li>item</li>
</ul>
<blockquote>
<p>quote</p>
</blockquote>`

	got := injector.InjectClasses(context.Background(), input)

	for _, want := range []string{
		`<h1 class="text-3xl font-bold mt-6 mb-4" id="t">`,
		`<p class="text-gray-400 mb-4">first</p>`,
		`<ul class="list-disc ml-6 mb-4 text-gray-400">`,
		`<blockquote class="border-l-4 border-green-500 pl-4 italic text-gray-500 mb-4">`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("InjectClasses() output missing %q:\n%s", want, got)
		}
	}

	// <li> has no rule and stays bare.
	if !strings.Contains(got, "<li>item</li>") {
		t.Errorf("InjectClasses() rewrote li: %s", got)
	}
}

func TestInjectClassesCanceledContext(t *testing.T) {
	t.Parallel()

	injector := NewClassInjection()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "<p>text</p>"
	got := injector.InjectClasses(ctx, input)
	if got != input {
		t.Errorf("InjectClasses() with canceled context = %q, want input unchanged", got)
	}
}
