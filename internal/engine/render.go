package engine

import (
	"bufio"
	"io"
	"rlg327/internal/systems"

	"codeberg.org/anaseto/gruid"
)

// Render печатает доску: '@' игрок, hex-цифра монстр, остальное по рельефу.
func (s *Simulation) Render(w io.Writer) error {
	return s.renderRows(w, s.Glyph)
}

// RenderField печатает поле расстояний: цифра = расстояние mod 10,
// недостижимые клетки пустые, игрок '@'.
func (s *Simulation) RenderField(w io.Writer, tunneling bool) error {
	f := s.fields.NonTunneling()
	if tunneling {
		f = s.fields.Tunneling()
	}
	player := s.PlayerPos()
	return s.renderRows(w, func(p gruid.Point) rune {
		if p == player {
			return '@'
		}
		d := f.At(p)
		if d == systems.Unreachable {
			return ' '
		}
		return rune('0' + d%10)
	})
}

func (s *Simulation) renderRows(w io.Writer, glyph func(gruid.Point) rune) error {
	bw := bufio.NewWriter(w)
	grid := s.level.Grid
	for y := range grid.Height() {
		for x := range grid.Width() {
			bw.WriteRune(glyph(gruid.Point{X: x, Y: y}))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
