package widgets

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ispapp/richedit/internal/settings"
)

// CreateSettingsTab creates the settings tab content
func CreateSettingsTab(parentWindow fyne.Window) *container.Scroll {
	// Editor Settings
	placeholderEntry := widget.NewEntry()
	placeholderEntry.SetText(settings.Current.Placeholder)

	wordWrapCheck := widget.NewCheck("Wrap long lines", func(checked bool) {
		settings.Current.WordWrap = checked
	})
	wordWrapCheck.SetChecked(settings.Current.WordWrap)

	highlightCheck := widget.NewCheck("Highlight code blocks", func(checked bool) {
		settings.Current.HighlightCode = checked
	})
	highlightCheck.SetChecked(settings.Current.HighlightCode)

	languageSelect := widget.NewSelect(
		[]string{"go", "python", "javascript", "json", "bash", "sql"},
		func(value string) {
			settings.Current.CodeLanguage = value
		})
	languageSelect.SetSelected(settings.Current.CodeLanguage)

	autosaveEntry := widget.NewEntry()
	autosaveEntry.SetText(strconv.Itoa(settings.Current.AutosaveSeconds))

	// Database Settings
	dbPathEntry := widget.NewEntry()
	dbPathEntry.SetText(settings.Current.DatabasePath)

	dbPathBtn := widget.NewButton("Browse", func() {
		fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, parentWindow)
				return
			}
			if writer == nil {
				return // User cancelled
			}
			defer writer.Close()

			dbPathEntry.SetText(writer.URI().Path())
		}, parentWindow)

		fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".db"}))
		fileDialog.SetFileName("documents.db")
		fileDialog.Show()
	})

	autosaveDraftsCheck := widget.NewCheck("Auto-save drafts to database", func(checked bool) {
		settings.Current.AutosaveDrafts = checked
	})
	autosaveDraftsCheck.SetChecked(settings.Current.AutosaveDrafts)

	saveBtn := widget.NewButton("Save Settings", func() {
		settings.Current.Placeholder = placeholderEntry.Text
		settings.Current.DatabasePath = dbPathEntry.Text

		if seconds, err := strconv.Atoi(autosaveEntry.Text); err == nil {
			settings.Current.AutosaveSeconds = seconds
		}

		if problems := settings.Current.Validate(); len(problems) > 0 {
			msg := ""
			for _, p := range problems {
				msg += p + "\n"
			}
			dialog.ShowError(fmt.Errorf("invalid settings:\n%s", msg), parentWindow)
			return
		}

		if err := settings.Save(); err != nil {
			dialog.ShowError(err, parentWindow)
			return
		}
		dialog.ShowInformation("Settings Saved",
			"Editor settings take effect for newly opened windows.", parentWindow)
	})

	resetBtn := widget.NewButton("Reset to Defaults", func() {
		dialog.ShowConfirm("Reset Settings", "Reset all settings to defaults?", func(ok bool) {
			if !ok {
				return
			}
			settings.Current = settings.DefaultSettings()
			placeholderEntry.SetText(settings.Current.Placeholder)
			wordWrapCheck.SetChecked(settings.Current.WordWrap)
			highlightCheck.SetChecked(settings.Current.HighlightCode)
			languageSelect.SetSelected(settings.Current.CodeLanguage)
			autosaveEntry.SetText(strconv.Itoa(settings.Current.AutosaveSeconds))
			dbPathEntry.SetText(settings.Current.DatabasePath)
			autosaveDraftsCheck.SetChecked(settings.Current.AutosaveDrafts)
		}, parentWindow)
	})

	form := container.NewVBox(
		widget.NewCard("Editor", "", container.NewVBox(
			widget.NewLabel("Placeholder text:"),
			placeholderEntry,
			wordWrapCheck,
			highlightCheck,
			widget.NewLabel("Code block language:"),
			languageSelect,
			widget.NewLabel("Autosave interval (seconds):"),
			autosaveEntry,
		)),
		widget.NewCard("Storage", "", container.NewVBox(
			widget.NewLabel("Database path:"),
			container.NewBorder(nil, nil, nil, dbPathBtn, dbPathEntry),
			autosaveDraftsCheck,
		)),
		container.NewHBox(saveBtn, resetBtn),
	)

	return container.NewScroll(form)
}
