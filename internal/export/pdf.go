// Package export writes a printable preview of a recorded session.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"NeonBoard/internal/logging"
	"NeonBoard/internal/recorder"
	"NeonBoard/internal/state"
)

const (
	lineWidth  = 2.0
	dotRadius  = 1.5
	titleSize  = 14
	bodySize   = 10
	margin     = 36.0
	lineHeight = 14.0
)

// Options describes the page and metadata of a preview.
type Options struct {
	Width, Height float64 // page size in points, usually the surface size
	Color         state.NeonColor
	SessionID     string
	Created       time.Time
}

// WritePDF draws strokes on a black page the size of the surface, followed
// by a page summarising the session, and writes the document to w.
func WritePDF(w io.Writer, strokes []recorder.Stroke, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("export pdf: invalid page size %gx%g", opts.Width, opts.Height)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: opts.Width, Ht: opts.Height},
	})
	pdf.SetTitle("NeonBoard recording "+opts.SessionID, false)
	pdf.SetCreator("NeonBoard", false)
	if !opts.Created.IsZero() {
		pdf.SetCreationDate(opts.Created)
	}
	pdf.SetAutoPageBreak(false, 0)

	drawStrokes(pdf, strokes, opts)
	writeSummary(pdf, strokes, opts)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	logging.Logger().Info("[EXPORT] pdf written", "session", opts.SessionID, "strokes", len(strokes))
	return nil
}

func drawStrokes(pdf *gofpdf.Fpdf, strokes []recorder.Stroke, opts Options) {
	pdf.AddPage()
	pdf.SetFillColor(int(state.Background.R), int(state.Background.G), int(state.Background.B))
	pdf.Rect(0, 0, opts.Width, opts.Height, "F")

	c := opts.Color.Main
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.SetLineWidth(lineWidth)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	for _, st := range strokes {
		pts := st.Points
		if len(pts) == 1 {
			pdf.Circle(pts[0].X, pts[0].Y, dotRadius, "F")
			continue
		}
		for i := 1; i < len(pts); i++ {
			pdf.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
		}
	}
}

func writeSummary(pdf *gofpdf.Fpdf, strokes []recorder.Stroke, opts Options) {
	pdf.AddPage()
	pdf.SetTextColor(0, 0, 0)

	y := margin
	line := func(size float64, format string, args ...any) {
		pdf.SetFont("Helvetica", "", size)
		pdf.Text(margin, y, fmt.Sprintf(format, args...))
		y += lineHeight
	}

	line(titleSize, "NeonBoard recording")
	y += lineHeight / 2
	if opts.SessionID != "" {
		line(bodySize, "Session: %s", opts.SessionID)
	}
	if !opts.Created.IsZero() {
		line(bodySize, "Created: %s", opts.Created.Format("2006-01-02 15:04:05"))
	}
	line(bodySize, "Total strokes: %d", len(strokes))
	y += lineHeight / 2

	for i, st := range strokes {
		if y > opts.Height-margin {
			pdf.AddPage()
			y = margin
		}
		if len(st.Points) == 0 {
			continue
		}
		first, last := st.Points[0], st.Points[len(st.Points)-1]
		line(bodySize, "Stroke %d: %d points, %.3fs to %.3fs, (%.2f, %.2f) to (%.2f, %.2f)",
			i+1, len(st.Points), first.T, last.T, first.X, first.Y, last.X, last.Y)
	}
}
