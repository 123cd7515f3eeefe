// Package fyneedit implements a rich text editor widget for Fyne. The
// document model is Fyne's own rich text segment list; this package adds
// character-index editing operations, focus and selection tracking, and a
// change callback on top of it.
package fyneedit

import (
	"errors"
	"net/url"
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ErrNilMount is returned when the editor is constructed without a mount
// container.
var ErrNilMount = errors.New("fyneedit: nil mount container")

// Range is a selection range in character indexes.
type Range struct {
	Index  int
	Length int
}

// Editor is a rich text editing widget. Content lives in a Fyne rich text
// segment list and is rendered through a widget.RichText.
type Editor struct {
	widget.BaseWidget

	doc  []widget.RichTextSegment
	view *widget.RichText
	cfg  Config

	focused   bool
	selection Range

	onChanged func()
}

// New creates an editor bound to the given mount container using the given
// configuration, and adds it to the container.
func New(mount *fyne.Container, cfg Config) (*Editor, error) {
	if mount == nil {
		return nil, ErrNilMount
	}

	e := &Editor{cfg: cfg}
	e.view = widget.NewRichText()
	e.view.Wrapping = cfg.Wrapping
	e.ExtendBaseWidget(e)
	e.refreshView()

	mount.Add(e)
	return e, nil
}

// SetOnChanged sets the callback invoked once per content mutation.
func (e *Editor) SetOnChanged(callback func()) {
	e.onChanged = callback
}

// Segments returns the current document segments.
func (e *Editor) Segments() []widget.RichTextSegment {
	return e.doc
}

// SetSegments replaces the whole document.
func (e *Editor) SetSegments(segs []widget.RichTextSegment) {
	e.doc = normalizeDoc(segs)
	e.clampSelection()
	e.contentChanged()
}

// Text returns the plain text content, formatting stripped. Every
// paragraph-level block contributes a trailing newline.
func (e *Editor) Text() string {
	return docText(e.doc)
}

// Length returns the character length of the content.
func (e *Editor) Length() int {
	return docLen(e.doc)
}

// IsBlank reports whether the document has no meaningful content: no links
// and nothing but whitespace.
func (e *Editor) IsBlank() bool {
	for _, seg := range e.doc {
		if _, ok := seg.(*widget.HyperlinkSegment); ok {
			return false
		}
		for _, r := range seg.Textual() {
			if !unicode.IsSpace(r) {
				return false
			}
		}
	}
	return true
}

// InsertSegments inserts segments at a character index. Indexes past the end
// append.
func (e *Editor) InsertSegments(index int, segs []widget.RichTextSegment) {
	before, after := splitDoc(e.doc, index)
	merged := make([]widget.RichTextSegment, 0, len(before)+len(segs)+len(after))
	merged = append(merged, before...)
	merged = append(merged, segs...)
	merged = append(merged, after...)
	e.doc = normalizeDoc(merged)
	e.contentChanged()
}

// InsertText inserts plain text wrapped in the named inline format at a
// character index, overriding whatever format is present at that position.
func (e *Editor) InsertText(index int, text, format string) {
	style := Style(format)
	style.Inline = true
	e.InsertSegments(index, []widget.RichTextSegment{
		&widget.TextSegment{Text: text, Style: style},
	})
}

// InsertLink inserts a hyperlink at a character index. The destination is
// stored as given; callers rewrite it beforehand if they need to.
func (e *Editor) InsertLink(index int, text, href string) error {
	u, err := url.Parse(href)
	if err != nil {
		return err
	}
	e.InsertSegments(index, []widget.RichTextSegment{
		&widget.HyperlinkSegment{Text: text, URL: u},
	})
	return nil
}

// Delete removes length characters starting at index.
func (e *Editor) Delete(index, length int) {
	if length <= 0 {
		return
	}
	before, rest := splitDoc(e.doc, index)
	_, after := splitDoc(rest, length)
	e.doc = normalizeDoc(append(before, after...))
	e.clampSelection()
	e.contentChanged()
}

// RemoveFormat strips formatting, but not text, over the given range. Links
// in the range become plain text, styled blocks become plain paragraphs.
func (e *Editor) RemoveFormat(index, length int) {
	if length <= 0 {
		return
	}
	before, rest := splitDoc(e.doc, index)
	mid, after := splitDoc(rest, length)
	for i, seg := range mid {
		mid[i] = plainSeg(seg)
	}
	merged := append(before, mid...)
	e.doc = normalizeDoc(append(merged, after...))
	e.contentChanged()
}

// Select sets the active selection range, clamped to the content bounds.
func (e *Editor) Select(index, length int) {
	if index < 0 {
		index = 0
	}
	if max := e.Length(); index > max {
		index = max
	}
	if length < 0 {
		length = 0
	}
	if rest := e.Length() - index; length > rest {
		length = rest
	}
	e.selection = Range{Index: index, Length: length}
	e.Refresh()
}

// Selection returns the active selection, or nil while the editor does not
// hold focus.
func (e *Editor) Selection() *Range {
	if !e.focused {
		return nil
	}
	sel := e.selection
	return &sel
}

// RequestFocus moves keyboard focus onto the editor. When the editor is not
// attached to a canvas the focus state is set directly, so selection queries
// behave the same either way.
func (e *Editor) RequestFocus() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
		c.Focus(e)
	}
	// The canvas ignores focus requests for objects outside its content
	// tree, so make sure the focus state took either way.
	if !e.focused {
		e.FocusGained()
	}
}

// FocusGained implements fyne.Focusable.
func (e *Editor) FocusGained() {
	e.focused = true
	e.Refresh()
}

// FocusLost implements fyne.Focusable.
func (e *Editor) FocusLost() {
	e.focused = false
	e.Refresh()
}

// TypedRune implements fyne.Focusable; printable input is inserted at the
// selection index.
func (e *Editor) TypedRune(r rune) {
	if e.cfg.ReadOnly || !unicode.IsPrint(r) {
		return
	}
	if e.selection.Length > 0 {
		e.Delete(e.selection.Index, e.selection.Length)
	}
	e.InsertText(e.selection.Index, string(r), FormatPlain)
	e.selection = Range{Index: e.selection.Index + 1}
}

// TypedKey implements fyne.Focusable.
func (e *Editor) TypedKey(key *fyne.KeyEvent) {
	if e.cfg.ReadOnly {
		return
	}
	switch key.Name {
	case fyne.KeyBackspace:
		if e.selection.Length > 0 {
			e.Delete(e.selection.Index, e.selection.Length)
			e.selection.Length = 0
		} else if e.selection.Index > 0 {
			e.Delete(e.selection.Index-1, 1)
			e.selection.Index--
		}
	case fyne.KeyDelete:
		if e.selection.Length > 0 {
			e.Delete(e.selection.Index, e.selection.Length)
			e.selection.Length = 0
		} else if e.selection.Index < e.Length() {
			e.Delete(e.selection.Index, 1)
		}
	case fyne.KeyReturn, fyne.KeyEnter:
		e.InsertSegments(e.selection.Index, []widget.RichTextSegment{
			&widget.TextSegment{Style: widget.RichTextStyleParagraph},
		})
		e.selection = Range{Index: e.selection.Index + 1}
	case fyne.KeyLeft:
		if e.selection.Index > 0 {
			e.selection.Index--
			e.selection.Length = 0
			e.Refresh()
		}
	case fyne.KeyRight:
		if e.selection.Index < e.Length() {
			e.selection.Index++
			e.selection.Length = 0
			e.Refresh()
		}
	case fyne.KeyHome:
		e.selection = Range{}
		e.Refresh()
	case fyne.KeyEnd:
		e.selection = Range{Index: e.Length()}
		e.Refresh()
	}
}

// CreateRenderer implements fyne.Widget.
func (e *Editor) CreateRenderer() fyne.WidgetRenderer {
	return newEditorRenderer(e)
}

// Refresh re-renders the view from the document.
func (e *Editor) Refresh() {
	e.refreshView()
	e.BaseWidget.Refresh()
}

func (e *Editor) contentChanged() {
	e.Refresh()
	if e.onChanged != nil {
		e.onChanged()
	}
}

func (e *Editor) clampSelection() {
	max := e.Length()
	if e.selection.Index > max {
		e.selection.Index = max
	}
	if rest := max - e.selection.Index; e.selection.Length > rest {
		e.selection.Length = rest
	}
}

// refreshView rebuilds the rendered segments from the document, applying the
// empty-document placeholder and code block highlighting.
func (e *Editor) refreshView() {
	if e.view == nil {
		return
	}
	switch {
	case len(e.doc) == 0 && e.cfg.Placeholder != "":
		e.view.Segments = []widget.RichTextSegment{
			&widget.TextSegment{Text: e.cfg.Placeholder, Style: placeholderStyle},
		}
	case e.cfg.HighlightCode:
		e.view.Segments = highlightSegments(e.doc, e.cfg.CodeLanguage)
	default:
		e.view.Segments = e.doc
	}
	e.view.Refresh()
}
