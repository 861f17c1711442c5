package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"NeonBoard/internal/board"
	"NeonBoard/internal/logging"
	"NeonBoard/internal/surface"
)

// BoardWidget shows the raster surface and feeds pointer input to the
// controller.
type BoardWidget struct {
	widget.BaseWidget
	surface  *surface.Surface
	board    *board.Controller
	image    *canvas.Image
	now      func() time.Time
	OnChange func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(s *surface.Surface, c *board.Controller) *BoardWidget {
	img := canvas.NewImageFromImage(s.Image())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels

	b := &BoardWidget{
		surface: s,
		board:   c,
		image:   img,
		now:     time.Now,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Handle forwards ev to the controller and repaints what changed.
func (b *BoardWidget) Handle(ev board.Event) bool {
	if !b.board.Handle(ev) {
		return false
	}
	if damage := b.surface.TakeDamage(); !damage.Empty() {
		b.image.Refresh()
	}
	if b.OnChange != nil {
		b.OnChange()
	}
	return true
}

// toSurface maps a widget position to surface pixels.
func (b *BoardWidget) toSurface(pos fyne.Position) (float64, float64) {
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return float64(pos.X), float64(pos.Y)
	}
	x := float64(pos.X) * float64(b.surface.Width()) / float64(size.Width)
	y := float64(pos.Y) * float64(b.surface.Height()) / float64(size.Height)
	return x, y
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := b.toSurface(e.Position)
	b.Handle(board.PointerDown{X: x, Y: y, At: b.now()})
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Handle(board.PointerUp{At: b.now()})
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	x, y := b.toSurface(e.Position)
	b.Handle(board.PointerMove{X: x, Y: y, At: b.now()})
}

func (b *BoardWidget) DragEnd() {
	b.Handle(board.PointerUp{At: b.now()})
}

// MouseOut ends the stroke like a release.
func (b *BoardWidget) MouseOut() {
	if b.board.Drawing() {
		logging.Logger().Debug("[UI] pointer left the board mid-stroke")
	}
	b.Handle(board.PointerCancel{At: b.now()})
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.Black)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.image}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.image.Resize(size)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.image.Refresh()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
