// Package richtext provides a thin facade over the rich text editor widget:
// get/set HTML, indexed insert and delete, selection management, and a
// content-changed notification. The document model, formatting, and
// rendering belong to the widget; this package only delegates.
package richtext

import (
	"errors"

	"fyne.io/fyne/v2"

	"github.com/ispapp/richedit/pkg/events"
	"github.com/ispapp/richedit/pkg/fyneedit"
)

// EventContentChanged is the facade's sole outgoing event, fired with no
// payload whenever the widget reports a document mutation. Consumers
// re-query state if they need specifics.
const EventContentChanged = "content-changed"

// ErrEditorNotFound is returned when the editor widget can no longer be
// located inside its mount container, which indicates the editor failed to
// initialize or was torn down behind the facade's back.
var ErrEditorNotFound = errors.New("richtext: editor widget not found in mount container")

// Selection is a selection range as a start index and length.
type Selection struct {
	Index  int
	Length int
}

// Editor wraps one editor widget and one event bus, exposing a narrowed,
// application-friendly method set. The mount container stays owned by the
// caller; the widget and the bus live as long as the facade.
type Editor struct {
	mount   *fyne.Container
	widget  *fyneedit.Editor
	emitter *events.Emitter
}

// New constructs the editor widget bound to the mount container using the
// given configuration. The configuration is opaque to the facade and passed
// through unmodified; errors from the widget are propagated untranslated.
// The change notification is wired before New returns, so no caller can
// observe a missed event.
func New(mount *fyne.Container, cfg fyneedit.Config) (*Editor, error) {
	w, err := fyneedit.New(mount, cfg)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		mount:   mount,
		widget:  w,
		emitter: events.NewEmitter(),
	}
	w.SetOnChanged(func() {
		e.emitter.Emit(EventContentChanged)
	})
	return e, nil
}

// ContentAsHTML returns the serialized HTML content of the editable region.
// Every paragraph-level block carries explicit zero margin and padding so
// the exported HTML visually matches the in-editor rendering. Returns
// ErrEditorNotFound when the widget is no longer inside the mount container.
func (e *Editor) ContentAsHTML() (string, error) {
	if !e.widgetMounted() {
		return "", ErrEditorNotFound
	}
	return normalizeExport(serializeSegments(e.widget.Segments()))
}

// SetContentFromHTML replaces the full content of the editable region with
// the given HTML fragment. An empty fragment empties the region.
func (e *Editor) SetContentFromHTML(src string) error {
	segs, err := parseFragment(src)
	if err != nil {
		return err
	}
	e.widget.SetSegments(segs)
	return nil
}

// SetContentFromMarkdown replaces the content with the given Markdown,
// converted to HTML first. Links get the same destination rewrite as HTML
// content.
func (e *Editor) SetContentFromMarkdown(src string) error {
	out, err := markdownToHTML(src)
	if err != nil {
		return err
	}
	return e.SetContentFromHTML(out)
}

// InsertHTML inserts an HTML fragment after the current end of content.
func (e *Editor) InsertHTML(src string) error {
	return e.InsertHTMLAt(src, e.widget.Length())
}

// InsertHTMLAt inserts an HTML fragment at a character index.
func (e *Editor) InsertHTMLAt(src string, index int) error {
	segs, err := parseFragment(src)
	if err != nil {
		return err
	}
	e.widget.InsertSegments(index, segs)
	return nil
}

// InsertText inserts plain text wrapped in the named inline format after
// the current end of content.
func (e *Editor) InsertText(text, format string) {
	e.InsertTextAt(text, format, e.widget.Length())
}

// InsertTextAt inserts plain text wrapped in the named inline format at a
// character index, silently overriding any format already present there.
func (e *Editor) InsertTextAt(text, format string, index int) {
	e.widget.InsertText(index, text, format)
}

// InsertLink inserts a hyperlink after the current end of content. The
// destination is rewritten by SanitizeHref before it is stored.
func (e *Editor) InsertLink(text, href string) error {
	return e.InsertLinkAt(text, href, e.widget.Length())
}

// InsertLinkAt inserts a hyperlink at a character index, rewriting the
// destination the same way.
func (e *Editor) InsertLinkAt(text, href string, index int) error {
	return e.widget.InsertLink(index, text, SanitizeHref(href))
}

// DeleteText removes length characters starting at index.
func (e *Editor) DeleteText(index, length int) {
	e.widget.Delete(index, length)
}

// RemoveFormat strips formatting, but not text, over the given range.
func (e *Editor) RemoveFormat(index, length int) {
	e.widget.RemoveFormat(index, length)
}

// Text returns the plain text content with all formatting stripped.
func (e *Editor) Text() string {
	return e.widget.Text()
}

// Length returns the character length of the content.
func (e *Editor) Length() int {
	return e.widget.Length()
}

// IsBlank reports whether the editable region has no meaningful content.
func (e *Editor) IsBlank() bool {
	return e.widget.IsBlank()
}

// Selection returns the current selection, or nil while the editor does not
// hold focus. With forceFocus set, focus is moved onto the editor first so a
// value is always obtained, and the editor stays focused.
func (e *Editor) Selection(forceFocus bool) *Selection {
	if forceFocus {
		e.widget.RequestFocus()
	}
	r := e.widget.Selection()
	if r == nil {
		return nil
	}
	return &Selection{Index: r.Index, Length: r.Length}
}

// SetSelection sets the active selection range.
func (e *Editor) SetSelection(index, length int) {
	e.widget.Select(index, length)
}

// On subscribes a handler to the named event and returns its subscription
// id. Handlers run synchronously in subscription order.
func (e *Editor) On(name string, fn func()) int {
	return e.emitter.On(name, fn)
}

// Off removes a subscription by id.
func (e *Editor) Off(name string, id int) {
	e.emitter.Off(name, id)
}

// Once subscribes a handler that is removed after its first invocation.
func (e *Editor) Once(name string, fn func()) int {
	return e.emitter.Once(name, fn)
}

// Widget exposes the underlying editor widget, for host code that needs to
// lay it out or feed it keyboard focus.
func (e *Editor) Widget() *fyneedit.Editor {
	return e.widget
}

// widgetMounted reports whether the widget is still somewhere inside the
// mount container.
func (e *Editor) widgetMounted() bool {
	return containsObject(e.mount, e.widget)
}

func containsObject(c *fyne.Container, target fyne.CanvasObject) bool {
	for _, obj := range c.Objects {
		if obj == target {
			return true
		}
		if nested, ok := obj.(*fyne.Container); ok && containsObject(nested, target) {
			return true
		}
	}
	return false
}
