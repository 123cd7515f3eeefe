package dialogs

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ispapp/richedit/pkg/richtext"
)

// ShowHTMLExportDialog shows a dialog to export the editor content to an
// HTML file
func ShowHTMLExportDialog(parent fyne.Window, editor *richtext.Editor) {
	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if editor.IsBlank() {
			dialog.ShowInformation("Export Skipped", "There is no content to export.", parent)
			return
		}

		content, err := editor.ContentAsHTML()
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to read editor content: %v", err), parent)
			return
		}

		if _, err := writer.Write([]byte(content)); err != nil {
			dialog.ShowError(fmt.Errorf("failed to write HTML file: %v", err), parent)
			return
		}

		dialog.ShowInformation("Export Successful",
			fmt.Sprintf("Exported document to %s", writer.URI().Name()), parent)

	}, parent)

	fileDialog.SetFileName("document.html")
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".html", ".htm"}))
	fileDialog.Show()
}
