package mlbuf

import colorful "github.com/lucasb-eyer/go-colorful"

// Palette resolves the numeric fg/bg pairs a Style carries into concrete
// colors a renderer can draw with. The core engine never consults a
// Palette; it exists purely so a frontend can turn Style values into
// pixels without inventing its own color table.
type Palette struct {
	colors map[uint16]colorful.Color
}

// NewPalette returns an empty Palette.
func NewPalette() *Palette {
	return &Palette{colors: make(map[uint16]colorful.Color)}
}

// Set registers the color a given numeric style slot resolves to. Slot 0
// (unstyled) may be registered like any other.
func (p *Palette) Set(slot uint16, c colorful.Color) {
	p.colors[slot] = c
}

// Resolve looks up the fg and bg colors for a Style. ok is false if either
// slot has not been registered.
func (p *Palette) Resolve(s Style) (fg, bg colorful.Color, ok bool) {
	fg, fgOK := p.colors[s.FG]
	bg, bgOK := p.colors[s.BG]
	return fg, bg, fgOK && bgOK
}
