package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	sanitize = bluemonday.UGCPolicy()
)

// renderMarkdown converts trusted-authored or model-produced markdown to
// sanitized HTML safe to inline in a page.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(sanitize.SanitizeBytes(buf.Bytes())), nil
}

// mustMarkdown is the template helper; render errors fall back to the
// escaped source text.
func mustMarkdown(src string) template.HTML {
	out, err := renderMarkdown(src)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return out
}
