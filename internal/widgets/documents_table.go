package widgets

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ispapp/richedit/internal/data"
	"github.com/ispapp/richedit/internal/database"
)

// CreateDocumentsTab builds the stored documents table with open and
// delete actions. openDoc is called when the user opens a document.
func CreateDocumentsTab(parentWindow fyne.Window, openDoc func(doc database.Document)) fyne.CanvasObject {
	selected := -1

	table := widget.NewTable(
		func() (int, int) {
			return data.DocumentList.Length() + 1, 3 // +1 for header
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("document title placeholder")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			label := cell.(*widget.Label)
			label.TextStyle = fyne.TextStyle{}

			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				switch id.Col {
				case 0:
					label.SetText("ID")
				case 1:
					label.SetText("Title")
				case 2:
					label.SetText("Updated")
				}
				return
			}

			doc, ok := documentAt(id.Row - 1)
			if !ok {
				label.SetText("")
				return
			}

			switch id.Col {
			case 0:
				label.SetText(fmt.Sprintf("%d", doc.ID))
			case 1:
				label.SetText(doc.Title)
			case 2:
				label.SetText(doc.UpdatedAt.Format("2006-01-02 15:04"))
			}
		},
	)

	table.SetColumnWidth(0, 60)
	table.SetColumnWidth(1, 320)
	table.SetColumnWidth(2, 160)

	table.OnSelected = func(id widget.TableCellID) {
		if id.Row == 0 {
			table.UnselectAll()
			return
		}
		selected = id.Row - 1
	}

	data.DocumentList.AddListener(binding.NewDataListener(func() {
		table.Refresh()
	}))

	openBtn := widget.NewButton("Open", func() {
		doc, ok := documentAt(selected)
		if !ok {
			dialog.ShowInformation("No Selection", "Select a document first.", parentWindow)
			return
		}
		openDoc(doc)
	})

	deleteBtn := widget.NewButton("Delete", func() {
		doc, ok := documentAt(selected)
		if !ok {
			dialog.ShowInformation("No Selection", "Select a document first.", parentWindow)
			return
		}
		dialog.ShowConfirm("Delete Document",
			fmt.Sprintf("Delete %q? This cannot be undone.", doc.Title),
			func(confirm bool) {
				if !confirm {
					return
				}
				if err := data.DeleteDocument(doc.ID); err != nil {
					dialog.ShowError(err, parentWindow)
					return
				}
				selected = -1
				table.UnselectAll()
			}, parentWindow)
	})

	refreshBtn := widget.NewButton("Refresh", func() {
		data.ReloadDocuments()
	})

	toolbar := container.NewHBox(openBtn, deleteBtn, refreshBtn)
	return container.NewBorder(toolbar, nil, nil, nil, table)
}

func documentAt(index int) (database.Document, bool) {
	if index < 0 || index >= data.DocumentList.Length() {
		return database.Document{}, false
	}
	item, err := data.DocumentList.GetValue(index)
	if err != nil {
		return database.Document{}, false
	}
	doc, ok := item.(database.Document)
	return doc, ok
}
