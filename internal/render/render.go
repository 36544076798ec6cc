// Package render turns a finished article, which arrives from the edit
// stage as light markdown, into presentation pieces: HTML, a headline, and a
// short digest.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

// digestLimit caps the fallback digest length in bytes.
const digestLimit = 120

var headingLine = regexp.MustCompile(`(?m)^#{1,2}\s+(.+)$`)

// Article is the rendered form of a polished article.
type Article struct {
	Headline string `json:"headline,omitempty"`
	Digest   string `json:"digest,omitempty"`
	HTML     string `json:"html,omitempty"`
}

// FromMarkdown renders article text into HTML and extracts a headline and
// digest. Empty input yields a zero Article.
func FromMarkdown(text string) (Article, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Article{}, nil
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return Article{}, fmt.Errorf("failed to render article markdown: %w", err)
	}

	return Article{
		Headline: extractHeadline(text),
		Digest:   extractDigest(text),
		HTML:     buf.String(),
	}, nil
}

// extractHeadline returns the first #/## heading, if any.
func extractHeadline(text string) string {
	if m := headingLine.FindStringSubmatch(text); len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractDigest returns the first non-heading, non-blank line, truncated to
// the digest limit.
func extractDigest(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) > digestLimit {
			return line[:digestLimit]
		}
		return line
	}
	return ""
}
