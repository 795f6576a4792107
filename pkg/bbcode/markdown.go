package bbcode

import (
	"bytes"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// mdInline is a pre-configured goldmark instance for text runs. Its default
// renderer omits raw HTML; the elements it does emit are filtered by the
// renderer's allowlist.
var mdInline = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
)

// markdownInline renders a run of markdown text and strips the paragraph
// wrapper goldmark puts around it.
func markdownInline(text string) (string, error) {
	var buf bytes.Buffer
	if err := mdInline.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = out[len("<p>") : len(out)-len("</p>")]
	}
	return out, nil
}

// ToMarkdown converts rendered HTML to markdown.
func ToMarkdown(htmlStr string) (string, error) {
	if htmlStr == "" {
		return "", nil
	}
	markdown, err := htmltomarkdown.ConvertString(htmlStr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown), nil
}
