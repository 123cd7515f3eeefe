package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ispapp/richedit/pkg/fyneedit"
	"github.com/ispapp/richedit/pkg/richtext"
)

// Minimal standalone demo showing the editor facade without the
// database or settings layers.
func main() {
	myApp := app.New()
	myWindow := myApp.NewWindow("Editor Demo")
	myWindow.Resize(fyne.NewSize(700, 500))

	mount := container.NewStack()
	editor, err := richtext.New(mount, fyneedit.Config{
		Placeholder: "Start typing...",
		Wrapping:    fyne.TextWrapWord,
	})
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}

	editor.On(richtext.EventContentChanged, func() {
		log.Printf("content changed, length=%d", editor.Length())
	})

	sampleBtn := widget.NewButton("Load Sample", func() {
		err := editor.SetContentFromHTML(
			"<h1>Demo Document</h1>" +
				"<p>Plain text with <b>bold</b> and <i>italic</i> runs.</p>" +
				"<p>A link to <a href=\"ispapp.co\">ispapp.co</a>.</p>")
		if err != nil {
			dialog.ShowError(err, myWindow)
		}
	})

	dumpBtn := widget.NewButton("Dump HTML", func() {
		html, err := editor.ContentAsHTML()
		if err != nil {
			dialog.ShowError(err, myWindow)
			return
		}
		log.Printf("exported HTML:\n%s", html)
	})

	insertBtn := widget.NewButton("Insert Text", func() {
		editor.InsertText("inserted at end", fyneedit.FormatPlain)
	})

	clearBtn := widget.NewButton("Clear", func() {
		editor.SetContentFromHTML("")
	})

	buttons := container.NewHBox(sampleBtn, dumpBtn, insertBtn, clearBtn)
	myWindow.SetContent(container.NewBorder(buttons, nil, nil, nil, mount))
	myWindow.ShowAndRun()
}
