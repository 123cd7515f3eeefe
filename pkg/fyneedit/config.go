package fyneedit

import "fyne.io/fyne/v2"

// Config holds the construction options recognized by the editor widget.
// Callers that do not care can pass the zero value.
type Config struct {
	// Placeholder is shown in the placeholder color while the document is
	// empty. It is a view hint only and never part of the content.
	Placeholder string

	// ReadOnly disables keyboard mutation. Programmatic mutation through
	// the widget API still works.
	ReadOnly bool

	// Wrapping controls line wrapping of the rendered text.
	Wrapping fyne.TextWrap

	// HighlightCode enables syntax highlighting of code blocks.
	HighlightCode bool

	// CodeLanguage selects the lexer used when HighlightCode is set.
	// Empty means plain text.
	CodeLanguage string
}
