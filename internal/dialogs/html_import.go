package dialogs

import (
	"fmt"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ispapp/richedit/pkg/richtext"
)

// ShowImportDialog shows a dialog to load an HTML or Markdown file into the
// editor, replacing the current content
func ShowImportDialog(parent fyne.Window, editor *richtext.Editor) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to read file: %v", err), parent)
			return
		}

		ext := strings.ToLower(reader.URI().Extension())
		if ext == ".md" || ext == ".markdown" {
			err = editor.SetContentFromMarkdown(string(data))
		} else {
			err = editor.SetContentFromHTML(string(data))
		}
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to import %s: %v", reader.URI().Name(), err), parent)
		}
	}, parent)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".html", ".htm", ".md", ".markdown"}))
	fileDialog.Show()
}
