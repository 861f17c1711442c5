package state

// Palette tracks which preset color is selected.
type Palette struct {
	colors  []NeonColor
	current int
}

// NewPalette selects the first of colors. An empty list falls back to
// NeonColors.
func NewPalette(colors []NeonColor) *Palette {
	if len(colors) == 0 {
		colors = NeonColors
	}
	return &Palette{colors: colors}
}

func (p *Palette) Current() NeonColor { return p.colors[p.current] }
func (p *Palette) Index() int         { return p.current }

// Colors returns the presets in display order.
func (p *Palette) Colors() []NeonColor {
	out := make([]NeonColor, len(p.colors))
	copy(out, p.colors)
	return out
}

// Set selects preset i. Out-of-range indices are ignored.
func (p *Palette) Set(i int) {
	if i >= 0 && i < len(p.colors) {
		p.current = i
	}
}

// Next advances to the following preset, wrapping around.
func (p *Palette) Next() {
	p.current = (p.current + 1) % len(p.colors)
}
