package richtext

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/widget"

	"github.com/ispapp/richedit/pkg/fyneedit"
)

func TestParseFragmentPlainParagraph(t *testing.T) {
	segs, err := parseFragment("<p>Hello</p>")
	if err != nil {
		t.Fatalf("parseFragment returned error: %v", err)
	}

	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	ts, ok := segs[0].(*widget.TextSegment)
	if !ok {
		t.Fatalf("Expected a text segment, got %#v", segs[0])
	}
	if ts.Text != "Hello" {
		t.Errorf("Expected text 'Hello', got %q", ts.Text)
	}
	if fyneedit.StyleName(ts.Style) != fyneedit.FormatParagraph {
		t.Errorf("Expected a paragraph block, got %q", fyneedit.StyleName(ts.Style))
	}
}

func TestParseFragmentInlineFormats(t *testing.T) {
	segs, err := parseFragment("<p>a <b>b</b> <i>c</i> <code>d</code></p>")
	if err != nil {
		t.Fatalf("parseFragment returned error: %v", err)
	}

	var names []string
	for _, seg := range segs {
		if ts, ok := seg.(*widget.TextSegment); ok && ts.Inline() {
			names = append(names, fyneedit.StyleName(ts.Style))
		}
	}

	want := map[string]bool{
		fyneedit.FormatBold:   false,
		fyneedit.FormatItalic: false,
		fyneedit.FormatCode:   false,
	}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("Expected an inline %q run in %v", name, names)
		}
	}
}

func TestParseFragmentPlaceholderSpan(t *testing.T) {
	segs, err := parseFragment(`<p><span class="placeholder">NAME</span></p>`)
	if err != nil {
		t.Fatalf("parseFragment returned error: %v", err)
	}

	found := false
	for _, seg := range segs {
		ts, ok := seg.(*widget.TextSegment)
		if ok && fyneedit.StyleName(ts.Style) == fyneedit.FormatPlaceholder {
			found = true
			if ts.Text != "NAME" {
				t.Errorf("Expected placeholder text 'NAME', got %q", ts.Text)
			}
		}
	}
	if !found {
		t.Errorf("Expected a placeholder run in %#v", segs)
	}
}

func TestParseFragmentPlaceholderClassList(t *testing.T) {
	countPlaceholders := func(segs []widget.RichTextSegment) int {
		n := 0
		for _, seg := range segs {
			ts, ok := seg.(*widget.TextSegment)
			if ok && fyneedit.StyleName(ts.Style) == fyneedit.FormatPlaceholder {
				n++
			}
		}
		return n
	}

	segs, err := parseFragment(`<p><span class="field placeholder required">NAME</span></p>`)
	if err != nil {
		t.Fatalf("parseFragment returned error: %v", err)
	}
	if countPlaceholders(segs) != 1 {
		t.Errorf("Expected one placeholder run in multi-class span, got %#v", segs)
	}

	segs, err = parseFragment(`<p><span class="placeholders">NAME</span></p>`)
	if err != nil {
		t.Fatalf("parseFragment returned error: %v", err)
	}
	if countPlaceholders(segs) != 0 {
		t.Errorf("Expected no placeholder run for unrelated class, got %#v", segs)
	}
}

func TestParseFragmentRewritesLinks(t *testing.T) {
	segs, err := parseFragment(`<a href="example.com/x">site</a>`)
	if err != nil {
		t.Fatalf("parseFragment returned error: %v", err)
	}

	var link *widget.HyperlinkSegment
	for _, seg := range segs {
		if l, ok := seg.(*widget.HyperlinkSegment); ok {
			link = l
		}
	}
	if link == nil {
		t.Fatal("Expected a hyperlink segment")
	}
	if link.URL.String() != "https://example.com/x" {
		t.Errorf("Expected rewritten destination, got %q", link.URL.String())
	}
	if link.Text != "site" {
		t.Errorf("Expected link text 'site', got %q", link.Text)
	}
}

func TestParseFragmentKeepsHTTPLinks(t *testing.T) {
	segs, err := parseFragment(`<a href="http://example.com">site</a>`)
	if err != nil {
		t.Fatalf("parseFragment returned error: %v", err)
	}
	for _, seg := range segs {
		if l, ok := seg.(*widget.HyperlinkSegment); ok {
			if l.URL.String() != "http://example.com" {
				t.Errorf("Plain HTTP destination should be untouched, got %q", l.URL.String())
			}
			return
		}
	}
	t.Fatal("Expected a hyperlink segment")
}

func TestParseFragmentHeadingsAndCode(t *testing.T) {
	segs, err := parseFragment("<h1>Title</h1><pre>x := 1</pre><blockquote>quoted</blockquote>")
	if err != nil {
		t.Fatalf("parseFragment returned error: %v", err)
	}

	if len(segs) != 3 {
		t.Fatalf("Expected 3 block segments, got %d: %#v", len(segs), segs)
	}
	wantNames := []string{
		fyneedit.FormatHeading,
		fyneedit.FormatCodeBlock,
		fyneedit.FormatBlockquote,
	}
	for i, want := range wantNames {
		ts := segs[i].(*widget.TextSegment)
		if got := fyneedit.StyleName(ts.Style); got != want {
			t.Errorf("Block %d: expected %q, got %q", i, want, got)
		}
	}
	if segs[1].(*widget.TextSegment).Text != "x := 1" {
		t.Errorf("Code block should keep its text verbatim, got %q",
			segs[1].(*widget.TextSegment).Text)
	}
}

func TestSerializeSegmentsWrapsTrailingRun(t *testing.T) {
	out := serializeSegments([]widget.RichTextSegment{
		&widget.TextSegment{Text: "loose", Style: widget.RichTextStyleInline},
	})
	if out != "<p>loose</p>" {
		t.Errorf("Trailing inline run should be wrapped in a paragraph, got %q", out)
	}
}

func TestSerializeSegmentsEscapesText(t *testing.T) {
	out := serializeSegments([]widget.RichTextSegment{
		&widget.TextSegment{Text: "a < b & c", Style: widget.RichTextStyleParagraph},
	})
	if !strings.Contains(out, "a &lt; b &amp; c") {
		t.Errorf("Text should be escaped, got %q", out)
	}
}

func TestNormalizeExportStampsBlocks(t *testing.T) {
	out, err := normalizeExport("<p>a</p><h2>b</h2><pre>c</pre>")
	if err != nil {
		t.Fatalf("normalizeExport returned error: %v", err)
	}

	if strings.Count(out, `style="margin: 0; padding: 0;"`) != 3 {
		t.Errorf("Every paragraph-level block should carry the zero style, got %q", out)
	}
}

func TestNormalizeExportIdempotent(t *testing.T) {
	once, err := normalizeExport("<p>a</p><blockquote>b</blockquote>")
	if err != nil {
		t.Fatalf("normalizeExport returned error: %v", err)
	}
	twice, err := normalizeExport(once)
	if err != nil {
		t.Fatalf("normalizeExport returned error: %v", err)
	}
	if once != twice {
		t.Errorf("Normalization should be idempotent:\n1: %q\n2: %q", once, twice)
	}
}

func TestNormalizeExportLeavesInlineElementsAlone(t *testing.T) {
	out, err := normalizeExport(`<p><a href="https://example.com">x</a></p>`)
	if err != nil {
		t.Fatalf("normalizeExport returned error: %v", err)
	}
	if !strings.Contains(out, `<a href="https://example.com">x</a>`) {
		t.Errorf("Inline elements should be untouched, got %q", out)
	}
}
