package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"NeonBoard/internal/board"
	"NeonBoard/internal/config"
	"NeonBoard/internal/logging"
	"NeonBoard/internal/state"
	"NeonBoard/internal/surface"
)

const appID = "io.neonboard.app"

// App is the desktop window around one board.
type App struct {
	fyne       fyne.App
	window     fyne.Window
	cfg        config.Config
	surface    *surface.Surface
	controller *board.Controller
	board      *BoardWidget
	tools      *toolbar
	status     *widget.Label
}

// RunApp opens the window and blocks until it is closed. cfg supplies the
// defaults that stored preferences override.
func RunApp(cfg config.Config) {
	a := newApp(app.NewWithID(appID), cfg)
	a.window.ShowAndRun()
}

func newApp(fa fyne.App, cfg config.Config) *App {
	cfg = config.FromPreferences(fa.Preferences(), cfg)

	a := &App{fyne: fa, cfg: cfg}
	a.surface = surface.New(cfg.Width, cfg.Height, state.Background)
	a.controller = board.New(a.surface, board.Options{
		Brush:       cfg.Brush(),
		Glow:        cfg.Glow(),
		HistorySize: cfg.HistorySize,
		Background:  state.Background,
	})

	a.window = fa.NewWindow("Neon Board")
	a.window.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	a.board = NewBoardWidget(a.surface, a.controller)
	a.board.OnChange = a.updateStatus
	a.status = widget.NewLabel("")
	a.tools = newToolbar(a)

	content := container.NewBorder(a.tools.object, a.status, nil, nil, a.board)
	a.window.SetContent(content)
	a.addShortcuts()
	a.updateStatus()

	logging.Logger().Info("[UI] window ready", "width", cfg.Width, "height", cfg.Height)
	return a
}

func (a *App) addShortcuts() {
	c := a.window.Canvas()
	undo := func(fyne.Shortcut) { a.undo() }
	redo := func(fyne.Shortcut) { a.redo() }

	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierControl, fyne.KeyModifierSuper} {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: mod}, undo)
		c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: mod | fyne.KeyModifierShift}, redo)
	}
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}, redo)

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyC {
			a.nextColor()
		}
	})
}

func (a *App) undo() { a.board.Handle(board.Undo{}) }
func (a *App) redo() { a.board.Handle(board.Redo{}) }

func (a *App) nextColor() {
	a.controller.Palette().Next()
	a.tools.syncColor()
	a.updateStatus()
}

// savePreferences persists the slider-controlled values.
func (a *App) savePreferences() {
	a.cfg.MaxWidth = a.controller.Brush().MaxWidth
	a.cfg.UniformityFactor = a.controller.Brush().UniformityFactor
	a.cfg.GlowLevel = a.controller.Glow().GlowLevel
	a.cfg.Save(a.fyne.Preferences())
}

func (a *App) updateStatus() {
	h := a.controller.History()
	text := fmt.Sprintf("%s  |  history %d/%d", a.controller.Palette().Current().Name, h.Index()+1, h.Len())
	if a.controller.Recording() {
		text += "  |  recording"
	}
	a.status.SetText(text)
	a.tools.syncHistory()
}
