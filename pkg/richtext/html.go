package richtext

import (
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2/widget"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ispapp/richedit/pkg/fyneedit"
)

// blockFormats is the set of block elements the HTML boundary understands,
// mapped to the widget's block formats. Everything else that is block-like
// falls back to a plain paragraph.
var blockFormats = map[string]string{
	"p":          fyneedit.FormatParagraph,
	"h1":         fyneedit.FormatHeading,
	"h2":         fyneedit.FormatHeading,
	"h3":         fyneedit.FormatSubHeading,
	"h4":         fyneedit.FormatSubHeading,
	"h5":         fyneedit.FormatSubHeading,
	"h6":         fyneedit.FormatSubHeading,
	"pre":        fyneedit.FormatCodeBlock,
	"blockquote": fyneedit.FormatBlockquote,
}

// inlineFormats maps inline elements to the widget's inline formats.
var inlineFormats = map[string]string{
	"b":      fyneedit.FormatBold,
	"strong": fyneedit.FormatBold,
	"i":      fyneedit.FormatItalic,
	"em":     fyneedit.FormatItalic,
	"code":   fyneedit.FormatCode,
}

// paragraphBlockSelector matches every paragraph-level block element for the
// margin/padding normalization applied on export.
const paragraphBlockSelector = "p, h1, h2, h3, h4, h5, h6, pre, blockquote"

// normalizedBlockStyle is the inline style stamped onto every exported
// paragraph-level block so exported HTML matches the in-editor rendering,
// which flattens block margins through its own stylesheet.
const normalizedBlockStyle = "margin: 0; padding: 0;"

// parseFragment converts an HTML fragment into widget segments. Links are
// admitted through SanitizeHref. Markup the boundary does not understand
// contributes its text content; sanitization beyond the link rewrite is not
// this package's job.
func parseFragment(src string) ([]widget.RichTextSegment, error) {
	nodes, err := html.ParseFragment(strings.NewReader(src), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, fmt.Errorf("parse html fragment: %w", err)
	}

	var segs []widget.RichTextSegment
	for _, n := range nodes {
		segs = walkNode(segs, n, fyneedit.FormatPlain)
	}
	return segs, nil
}

// walkNode appends the segments for one HTML node, carrying the innermost
// inline format down the tree.
func walkNode(segs []widget.RichTextSegment, n *html.Node, format string) []widget.RichTextSegment {
	switch n.Type {
	case html.TextNode:
		if text := collapseSpace(n.Data); text != "" {
			segs = append(segs, inlineSegment(text, format))
		}
		return segs
	case html.ElementNode:
		// handled below
	default:
		return segs
	}

	tag := n.Data
	if blockFormat, ok := blockFormats[tag]; ok {
		return appendBlock(segs, n, blockFormat)
	}

	switch tag {
	case "a":
		return append(segs, linkSegment(n))
	case "br":
		return append(segs, blockTerminator(fyneedit.FormatParagraph))
	case "span":
		if hasClass(n, "placeholder") {
			format = fyneedit.FormatPlaceholder
		}
	default:
		if f, ok := inlineFormats[tag]; ok && f != fyneedit.FormatPlain {
			format = f
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		segs = walkNode(segs, c, format)
	}
	return segs
}

// appendBlock converts one block element into its inline children followed
// by a block terminator. A block with nothing but plain text collapses into
// a single block segment.
func appendBlock(segs []widget.RichTextSegment, n *html.Node, blockFormat string) []widget.RichTextSegment {
	if blockFormat == fyneedit.FormatCodeBlock {
		// Code blocks keep their text verbatim, whitespace included.
		return append(segs, &widget.TextSegment{
			Text:  strings.TrimSuffix(textContent(n), "\n"),
			Style: fyneedit.Style(fyneedit.FormatCodeBlock),
		})
	}

	if text, plain := plainTextOnly(n); plain {
		return append(segs, &widget.TextSegment{
			Text:  text,
			Style: fyneedit.Style(blockFormat),
		})
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		segs = walkNode(segs, c, fyneedit.FormatPlain)
	}
	return append(segs, blockTerminator(blockFormat))
}

// linkSegment builds a hyperlink segment from an anchor element, rewriting
// the destination on the way in.
func linkSegment(n *html.Node) widget.RichTextSegment {
	href := ""
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			href = attr.Val
		}
	}
	u, err := url.Parse(SanitizeHref(href))
	if err != nil {
		u = &url.URL{}
	}
	return &widget.HyperlinkSegment{Text: collapseSpace(textContent(n)), URL: u}
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func inlineSegment(text, format string) widget.RichTextSegment {
	style := fyneedit.Style(format)
	style.Inline = true
	return &widget.TextSegment{Text: text, Style: style}
}

func blockTerminator(format string) widget.RichTextSegment {
	return &widget.TextSegment{Style: fyneedit.Style(format)}
}

// plainTextOnly reports whether a node contains nothing but text, returning
// the collapsed text when it does.
func plainTextOnly(n *html.Node) (string, bool) {
	if n.FirstChild == nil {
		return "", true
	}
	if n.FirstChild == n.LastChild && n.FirstChild.Type == html.TextNode {
		return collapseSpace(n.FirstChild.Data), true
	}
	return "", false
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// collapseSpace folds runs of HTML whitespace into single spaces without
// trimming, so formatting boundaries keep their separators.
func collapseSpace(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\t'
	}), " ")
}

// serializeSegments renders widget segments back to an HTML string. Inline
// runs are grouped into their enclosing block element; a trailing run with
// no terminator is wrapped in a paragraph.
func serializeSegments(segs []widget.RichTextSegment) string {
	var b strings.Builder
	var pending strings.Builder

	flush := func(blockTag string, blockText string) {
		inner := pending.String()
		pending.Reset()
		inner += html.EscapeString(blockText)
		if inner == "" && blockTag == "" {
			return
		}
		if blockTag == "" {
			blockTag = "p"
		}
		b.WriteString("<" + blockTag + ">" + inner + "</" + blockTag + ">")
	}

	for _, seg := range segs {
		switch s := seg.(type) {
		case *widget.HyperlinkSegment:
			href := ""
			if s.URL != nil {
				href = s.URL.String()
			}
			pending.WriteString(`<a href="` + html.EscapeString(href) + `">` +
				html.EscapeString(s.Text) + `</a>`)
		case *widget.TextSegment:
			if s.Inline() {
				pending.WriteString(inlineHTML(s))
				continue
			}
			flush(blockTag(fyneedit.StyleName(s.Style)), s.Text)
		default:
			if !seg.Inline() {
				flush("p", "")
			}
		}
	}
	if pending.Len() > 0 {
		flush("p", "")
	}
	return b.String()
}

func inlineHTML(s *widget.TextSegment) string {
	text := html.EscapeString(s.Text)
	switch fyneedit.StyleName(s.Style) {
	case fyneedit.FormatBold:
		return "<b>" + text + "</b>"
	case fyneedit.FormatItalic:
		return "<i>" + text + "</i>"
	case fyneedit.FormatCode:
		return "<code>" + text + "</code>"
	case fyneedit.FormatPlaceholder:
		return `<span class="placeholder">` + text + `</span>`
	default:
		return text
	}
}

func blockTag(format string) string {
	switch format {
	case fyneedit.FormatHeading:
		return "h2"
	case fyneedit.FormatSubHeading:
		return "h3"
	case fyneedit.FormatCodeBlock:
		return "pre"
	case fyneedit.FormatBlockquote:
		return "blockquote"
	default:
		return "p"
	}
}

// normalizeExport stamps explicit zero margin and padding onto every
// paragraph-level block so the exported HTML visually matches the in-editor
// rendering. Applied on every export, and idempotent.
func normalizeExport(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("normalize html: %w", err)
	}
	doc.Find(paragraphBlockSelector).SetAttr("style", normalizedBlockStyle)
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("normalize html: %w", err)
	}
	return out, nil
}
