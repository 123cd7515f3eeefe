package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ispapp/richedit/internal/data"
	"github.com/ispapp/richedit/internal/database"
	"github.com/ispapp/richedit/internal/dialogs"
	"github.com/ispapp/richedit/internal/settings"
	"github.com/ispapp/richedit/internal/widgets"
	"github.com/ispapp/richedit/pkg/fyneedit"
	"github.com/ispapp/richedit/pkg/richtext"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

func NewMainUI(app fyne.App) fyne.Window {
	// Initialize settings first
	if err := settings.Initialize(); err != nil {
		log.Printf("Failed to initialize settings: %v", err)
		// Continue with defaults
	}

	// Initialize global data bindings
	data.Init()

	MainWindow := app.NewWindow("Rich Editor")

	wrapping := fyne.TextWrapOff
	if settings.Current.WordWrap {
		wrapping = fyne.TextWrapWord
	}

	mount := container.NewStack()
	editor, err := richtext.New(mount, fyneedit.Config{
		Placeholder:   settings.Current.Placeholder,
		Wrapping:      wrapping,
		HighlightCode: settings.Current.HighlightCode,
		CodeLanguage:  settings.Current.CodeLanguage,
	})
	if err != nil {
		log.Printf("Failed to create editor: %v", err)
	}

	// Currently opened document, zero ID means unsaved
	var current database.Document

	statusLabel := widget.NewLabelWithData(data.StatusText)
	data.StatusText.Set("Ready")

	editor.On(richtext.EventContentChanged, func() {
		data.Dirty.Set(true)
		data.StatusText.Set(fmt.Sprintf("%d characters", editor.Length()))
	})

	saveCurrent := func() {
		if editor.IsBlank() {
			return
		}
		html, err := editor.ContentAsHTML()
		if err != nil {
			log.Printf("Failed to read editor content: %v", err)
			return
		}
		current.HTML = html
		if current.Title == "" {
			current.Title = documentTitle(editor.Text())
		}
		data.SaveDocument(&current)
		data.Dirty.Set(false)
		data.StatusText.Set(fmt.Sprintf("Saved %q", current.Title))
	}

	boldBtn := widget.NewButton("Bold", func() {
		editor.InsertText("bold", fyneedit.FormatBold)
	})
	italicBtn := widget.NewButton("Italic", func() {
		editor.InsertText("italic", fyneedit.FormatItalic)
	})
	codeBtn := widget.NewButton("Code", func() {
		editor.InsertText("code", fyneedit.FormatCode)
	})
	linkBtn := widget.NewButton("Link", func() {
		showInsertLinkDialog(MainWindow, editor)
	})
	placeholderBtn := widget.NewButton("Placeholder", func() {
		editor.InsertText("{{field}}", fyneedit.FormatPlaceholder)
	})
	clearFmtBtn := widget.NewButton("Clear Format", func() {
		editor.RemoveFormat(0, editor.Length())
	})

	buttonRow := container.NewHBox(boldBtn, italicBtn, codeBtn, linkBtn, placeholderBtn, clearFmtBtn)

	editorTab := container.NewBorder(buttonRow, statusLabel, nil, nil, mount)

	documentsTab := widgets.CreateDocumentsTab(MainWindow, func(doc database.Document) {
		if err := editor.SetContentFromHTML(doc.HTML); err != nil {
			dialog.ShowError(err, MainWindow)
			return
		}
		current = doc
		data.Dirty.Set(false)
		data.StatusText.Set(fmt.Sprintf("Opened %q", doc.Title))
	})

	settingsTab := widgets.CreateSettingsTab(MainWindow)

	tabs := container.NewAppTabs(
		container.NewTabItem("Editor", editorTab),
		container.NewTabItem("Documents", documentsTab),
		container.NewTabItem("Settings", settingsTab),
	)

	// Create File menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New", func() {
			editor.SetContentFromHTML("")
			current = database.Document{}
			data.Dirty.Set(false)
			data.StatusText.Set("New document")
		}),
		fyne.NewMenuItem("Save", func() {
			saveCurrent()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import HTML/Markdown", func() {
			dialogs.ShowImportDialog(MainWindow, editor)
		}),
		fyne.NewMenuItem("Export HTML", func() {
			dialogs.ShowHTMLExportDialog(MainWindow, editor)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", func() {
			app.Quit()
		}),
	)

	// Create help menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About", "visit ispapp.co for more information", MainWindow)
		}),
	)

	// Create the main menu
	mainMenu := fyne.NewMainMenu(
		fileMenu,
		helpMenu,
	)
	MainWindow.SetMainMenu(mainMenu)

	// Autosave drafts on the configured interval until the window closes
	autosaveDone := make(chan struct{})
	if settings.Current.AutosaveDrafts {
		go func() {
			ticker := time.NewTicker(settings.Current.GetAutosaveInterval())
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					dirty, _ := data.Dirty.Get()
					if dirty {
						fyne.Do(saveCurrent)
					}
				case <-autosaveDone:
					return
				}
			}
		}()
	}

	MainWindow.SetContent(tabs)
	MainWindow.Resize(fyne.NewSize(float32(settings.Current.WindowWidth), float32(settings.Current.WindowHeight)))
	MainWindow.SetPadded(true)
	// Set up cleanup when the main window closes
	MainWindow.SetOnClosed(func() {
		close(autosaveDone)
		dirty, _ := data.Dirty.Get()
		if dirty {
			saveCurrent()
		}
		// Close database connection
		data.Close()
	})

	return MainWindow
}

// documentTitle derives a title from the first line of the document text,
// truncated to 60 characters on a rune boundary.
func documentTitle(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if runes := []rune(text); len(runes) > 60 {
		text = string(runes[:60])
	}
	if text == "" {
		return "Untitled"
	}
	return text
}

func showInsertLinkDialog(parent fyne.Window, editor *richtext.Editor) {
	textEntry := widget.NewEntry()
	textEntry.SetPlaceHolder("Link text")
	hrefEntry := widget.NewEntry()
	hrefEntry.SetPlaceHolder("example.com/page")

	items := []*widget.FormItem{
		widget.NewFormItem("Text", textEntry),
		widget.NewFormItem("Address", hrefEntry),
	}

	dialog.ShowForm("Insert Link", "Insert", "Cancel", items, func(ok bool) {
		if !ok || textEntry.Text == "" {
			return
		}
		if err := editor.InsertLink(textEntry.Text, hrefEntry.Text); err != nil {
			dialog.ShowError(err, parent)
		}
	}, parent)
}
