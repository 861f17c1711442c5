package ui

import (
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"NeonBoard/internal/export"
	"NeonBoard/internal/logging"
)

var errNoRecording = errors.New("no recorded strokes")

// toggleRecording starts a session, or stops the current one and copies
// its expression to the clipboard.
func (a *App) toggleRecording() {
	defer a.updateStatus()
	defer a.tools.syncRecording()

	if !a.controller.Recording() {
		a.controller.StartRecording()
		logging.Logger().Info("[UI] recording started")
		return
	}

	expr, ok := a.controller.StopRecording()
	if !ok {
		logging.Logger().Info("[UI] recording stopped, nothing drawn")
		dialog.ShowInformation("Recording", "Nothing was drawn while recording.", a.window)
		return
	}
	a.window.Clipboard().SetContent(expr)
	logging.Logger().Info("[UI] expression copied to clipboard", "bytes", len(expr))
	dialog.ShowInformation("Recording", "Path expression copied to the clipboard.", a.window)
}

// exportPDF asks for a destination and writes a preview of the last
// recording there.
func (a *App) exportPDF() {
	if len(a.controller.RecordedStrokes()) == 0 {
		dialog.ShowInformation("Export PDF", "Record a drawing first.", a.window)
		return
	}

	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if w == nil {
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				logging.Logger().Error("[EXPORT] close failed", "uri", w.URI().String(), "err", err)
			}
		}()
		if err := a.writeRecording(w); err != nil {
			logging.Logger().Error("[EXPORT] pdf failed", "err", err)
			dialog.ShowError(err, a.window)
			return
		}
		a.status.SetText(fmt.Sprintf("Exported %s", w.URI().Name()))
	}, a.window)
	d.SetFileName("recording.pdf")
	d.Show()
}

func (a *App) writeRecording(w io.Writer) error {
	strokes := a.controller.RecordedStrokes()
	if len(strokes) == 0 {
		return errNoRecording
	}
	opts := export.Options{
		Width:  float64(a.surface.Width()),
		Height: float64(a.surface.Height()),
		Color:  a.controller.Palette().Current(),
	}
	if s := a.controller.Session(); s != nil {
		opts.SessionID = s.ID
		opts.Created = s.Start
	}
	return export.WritePDF(w, strokes, opts)
}
