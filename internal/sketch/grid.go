package sketch

import "fmt"

// Grid is the voices × columns mover layout, allocated once. Row i belongs to
// voice i; column 0 of each row drives that voice's volume.
type Grid struct {
	voices  int
	columns int
	movers  []*Mover
}

// NewGrid fills the grid row by row with movers from build.
func NewGrid(voices, columns int, build func(voice, column int) *Mover) (*Grid, error) {
	if voices <= 0 || columns <= 0 {
		return nil, fmt.Errorf("grid: invalid shape %dx%d", voices, columns)
	}
	g := &Grid{
		voices:  voices,
		columns: columns,
		movers:  make([]*Mover, voices*columns),
	}
	for i := 0; i < voices; i++ {
		for j := 0; j < columns; j++ {
			m := build(i, j)
			if m == nil {
				return nil, fmt.Errorf("grid: no mover for [%d][%d]", i, j)
			}
			g.movers[i*columns+j] = m
		}
	}
	return g, nil
}

func (g *Grid) Voices() int  { return g.voices }
func (g *Grid) Columns() int { return g.columns }
func (g *Grid) Len() int     { return len(g.movers) }

func (g *Grid) At(voice, column int) *Mover {
	if voice < 0 || voice >= g.voices || column < 0 || column >= g.columns {
		panic(fmt.Sprintf("grid: index [%d][%d] out of range %dx%d", voice, column, g.voices, g.columns))
	}
	return g.movers[voice*g.columns+column]
}

// Row returns the movers of one voice. The slice aliases the grid.
func (g *Grid) Row(voice int) []*Mover {
	start := voice * g.columns
	return g.movers[start : start+g.columns]
}

// Each visits every mover in row-major order.
func (g *Grid) Each(fn func(m *Mover)) {
	for _, m := range g.movers {
		fn(m)
	}
}
