package fyneedit

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// editorRenderer implements the renderer for the editor widget. The rich
// text view does the heavy lifting; this only handles scrolling and sizing.
type editorRenderer struct {
	editor *Editor
	scroll *container.Scroll
}

// newEditorRenderer creates a new renderer for the editor
func newEditorRenderer(editor *Editor) *editorRenderer {
	return &editorRenderer{
		editor: editor,
		scroll: container.NewScroll(editor.view),
	}
}

// Layout positions the scrolling view
func (r *editorRenderer) Layout(size fyne.Size) {
	r.scroll.Resize(size)
}

// MinSize returns the minimum size for the widget
func (r *editorRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 100)
}

// Refresh updates the visual representation
func (r *editorRenderer) Refresh() {
	r.scroll.Refresh()
}

// Objects returns all canvas objects that make up the widget
func (r *editorRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.scroll}
}

// Destroy cleans up renderer resources
func (r *editorRenderer) Destroy() {
}
