package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// NewApp must be called before NewBoard so widgets have an app to attach to.
func NewApp() fyne.App {
	return app.NewWithID("io.localsketch.sketchboard")
}

// RunApp shows the board and blocks until the window closes. shareLink is
// shown in the status bar when this process hosts.
func RunApp(a fyne.App, b *Board, shareLink string) {
	w := a.NewWindow("SketchBoard")
	w.Resize(fyne.NewSize(1024, 768))
	w.SetContent(b.Layout())
	if shareLink != "" {
		b.status.SetText("Share this link: " + shareLink)
	}
	w.ShowAndRun()
}
