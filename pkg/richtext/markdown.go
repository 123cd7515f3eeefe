package richtext

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// markdownToHTML renders Markdown source to HTML. The result goes through
// the regular HTML admission path, link rewrite included.
func markdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
