package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"NeonBoard/internal/config"
	"NeonBoard/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	selected bool
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	r := &swatchRenderer{swatch: s, rect: rect, border: canvas.NewRectangle(color.Transparent)}
	r.Refresh()
	return r
}

type swatchRenderer struct {
	swatch *colorSwatch
	rect   *canvas.Rectangle
	border *canvas.Rectangle
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect, r.border}
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
	r.border.Resize(size)
}

func (r *swatchRenderer) MinSize() fyne.Size { return r.rect.MinSize() }

func (r *swatchRenderer) Refresh() {
	r.border.StrokeColor = color.Gray{Y: 150}
	r.border.StrokeWidth = 1
	if r.swatch.selected {
		r.border.StrokeColor = color.White
		r.border.StrokeWidth = 3
	}
	r.border.Refresh()
}

func (r *swatchRenderer) Destroy() {}

func (s *colorSwatch) SetSelected(v bool) {
	if s.selected == v {
		return
	}
	s.selected = v
	s.Refresh()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// toolbar holds the controls so shortcuts can keep them in sync.
type toolbar struct {
	app      *App
	swatches []*colorSwatch
	undo     *widget.ToolbarAction
	redo     *widget.ToolbarAction
	size     *widget.Slider
	unif     *widget.Slider
	glow     *widget.Slider
	record   *widget.Button
	object   fyne.CanvasObject
}

func newToolbar(a *App) *toolbar {
	t := &toolbar{app: a}
	c := a.controller

	// --- History ---
	t.undo = widget.NewToolbarAction(theme.ContentUndoIcon(), a.undo)
	t.redo = widget.NewToolbarAction(theme.ContentRedoIcon(), a.redo)
	tb := widget.NewToolbar(t.undo, t.redo)

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for i, nc := range c.Palette().Colors() {
		s := newColorSwatch(nc.Main, func() { t.selectColor(i) })
		t.swatches = append(t.swatches, s)
		colorBox.Add(s)
	}

	// --- Sliders ---
	t.size = widget.NewSlider(config.MinMaxWidth, config.MaxMaxWidth)
	t.size.Step = 1
	t.size.SetValue(c.Brush().MaxWidth)
	t.size.OnChanged = func(v float64) {
		if v < c.Brush().MinWidth {
			v = c.Brush().MinWidth
		}
		c.Brush().MaxWidth = v
		a.savePreferences()
	}

	t.unif = widget.NewSlider(0, 100)
	t.unif.Step = 1
	t.unif.SetValue(c.Brush().UniformityFactor)
	t.unif.OnChanged = func(v float64) {
		c.Brush().UniformityFactor = v
		a.savePreferences()
	}

	t.glow = widget.NewSlider(0, state.MaxGlowLevel)
	t.glow.Step = 1
	t.glow.SetValue(c.Glow().GlowLevel)
	t.glow.OnChanged = func(v float64) {
		c.Glow().GlowLevel = v
		a.savePreferences()
	}

	slider := func(s *widget.Slider) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), s)
	}

	// --- Recording ---
	t.record = widget.NewButtonWithIcon("Record", theme.MediaRecordIcon(), a.toggleRecording)
	pdf := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), a.exportPDF)

	t.syncColor()

	// --- Assemble everything ---
	t.object = container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		slider(t.size),
		widget.NewLabel("Speed:"),
		slider(t.unif),
		widget.NewLabel("Glow:"),
		slider(t.glow),
		layout.NewSpacer(),
		t.record,
		pdf,
	)
	return t
}

func (t *toolbar) selectColor(i int) {
	t.app.controller.SetColor(i)
	t.syncColor()
}

func (t *toolbar) syncColor() {
	cur := t.app.controller.Palette().Index()
	for i, s := range t.swatches {
		s.SetSelected(i == cur)
	}
}

// syncHistory enables undo and redo only when the history can move.
func (t *toolbar) syncHistory() {
	h := t.app.controller.History()
	setEnabled(t.undo, h.CanUndo())
	setEnabled(t.redo, h.CanRedo())
}

func setEnabled(a *widget.ToolbarAction, on bool) {
	if on == !a.Disabled() {
		return
	}
	if on {
		a.Enable()
	} else {
		a.Disable()
	}
}

func (t *toolbar) syncRecording() {
	if t.app.controller.Recording() {
		t.record.SetText("Stop")
		t.record.SetIcon(theme.MediaStopIcon())
		t.record.Importance = widget.DangerImportance
	} else {
		t.record.SetText("Record")
		t.record.SetIcon(theme.MediaRecordIcon())
		t.record.Importance = widget.MediumImportance
	}
	t.record.Refresh()
}
