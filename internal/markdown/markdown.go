// Package markdown renders hero descriptions written in Markdown.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Options configures a Formatter.
type Options struct {
	// Unsafe skips sanitising. Raw HTML in the source is kept as written.
	Unsafe bool
}

// Formatter converts Markdown to HTML. It is safe for concurrent use.
type Formatter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	unsafe bool
}

// New creates a Formatter with GitHub-flavoured Markdown and typographic
// punctuation.
func New(opts Options) *Formatter {
	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Formatter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: policy,
		unsafe: opts.Unsafe,
	}
}

// FormatHTML renders source. Unless the formatter is unsafe, the result is
// sanitised with a user-generated-content policy.
func (f *Formatter) FormatHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	if f.unsafe {
		return strings.TrimSpace(buf.String()), nil
	}
	return strings.TrimSpace(string(f.policy.SanitizeBytes(buf.Bytes()))), nil
}
