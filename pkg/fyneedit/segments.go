package fyneedit

import (
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2/widget"
)

// Character index arithmetic over a rich text segment list. A segment whose
// style is not inline terminates a paragraph-level block and contributes one
// extra character (a newline) on top of its text, mirroring the rendered
// layout. All indexes count runes, not bytes.

// segLen returns the number of characters a segment contributes.
func segLen(seg widget.RichTextSegment) int {
	n := utf8.RuneCountInString(seg.Textual())
	if !seg.Inline() {
		n++
	}
	return n
}

// docLen returns the character length of a whole segment list.
func docLen(segs []widget.RichTextSegment) int {
	total := 0
	for _, seg := range segs {
		total += segLen(seg)
	}
	return total
}

// docText returns the plain text of a segment list, with a newline after
// every block terminator.
func docText(segs []widget.RichTextSegment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Textual())
		if !seg.Inline() {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// splitSeg splits a single segment at a rune offset within its own text.
// For block segments the left half becomes an inline run with the same text
// styling, so the block terminator stays with the right half.
func splitSeg(seg widget.RichTextSegment, off int) (widget.RichTextSegment, widget.RichTextSegment) {
	text := seg.Textual()
	runes := []rune(text)
	pre, post := string(runes[:off]), string(runes[off:])

	switch s := seg.(type) {
	case *widget.TextSegment:
		leftStyle := s.Style
		leftStyle.Inline = true
		left := &widget.TextSegment{Text: pre, Style: leftStyle}
		right := &widget.TextSegment{Text: post, Style: s.Style}
		return left, right
	case *widget.HyperlinkSegment:
		left := &widget.HyperlinkSegment{Text: pre, URL: s.URL, Alignment: s.Alignment}
		right := &widget.HyperlinkSegment{Text: post, URL: s.URL, Alignment: s.Alignment}
		return left, right
	default:
		// Segments with no splittable text keep their identity on the right.
		return &widget.TextSegment{Text: "", Style: widget.RichTextStyleInline}, seg
	}
}

// splitDoc splits a segment list at a character index. Segments fully before
// the index go left, the rest right; a segment straddling the index is split.
// Indexes past the end attach everything to the left.
func splitDoc(segs []widget.RichTextSegment, index int) (left, right []widget.RichTextSegment) {
	if index < 0 {
		index = 0
	}
	remaining := index
	for i, seg := range segs {
		n := segLen(seg)
		if remaining >= n {
			left = append(left, seg)
			remaining -= n
			continue
		}
		textLen := utf8.RuneCountInString(seg.Textual())
		if remaining >= textLen {
			// Inside the block terminator: the whole text stays left as an
			// inline run, the (now empty) terminator goes right.
			l, r := splitSeg(seg, textLen)
			left = append(left, l)
			right = append(right, r)
		} else if remaining == 0 {
			right = append(right, seg)
		} else {
			l, r := splitSeg(seg, remaining)
			left = append(left, l)
			right = append(right, r)
		}
		right = append(right, segs[i+1:]...)
		return left, right
	}
	return left, nil
}

// normalizeDoc drops empty inline runs left behind by splits. Empty block
// segments survive, they are empty paragraphs.
func normalizeDoc(segs []widget.RichTextSegment) []widget.RichTextSegment {
	// Filter into a fresh slice; SetSegments hands in caller-owned memory.
	out := make([]widget.RichTextSegment, 0, len(segs))
	for _, seg := range segs {
		if seg.Inline() && seg.Textual() == "" {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// plainSeg rewrites a segment as unformatted text. Inline runs become plain
// inline text, block terminators become plain paragraphs, links lose their
// destination but keep their text.
func plainSeg(seg widget.RichTextSegment) widget.RichTextSegment {
	style := widget.RichTextStyleInline
	if !seg.Inline() {
		style = widget.RichTextStyleParagraph
	}
	return &widget.TextSegment{Text: seg.Textual(), Style: style}
}
