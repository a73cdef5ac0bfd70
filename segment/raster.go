// File: raster.go
// Rasterizes a fibre network's nodes and edges onto an integer pixel grid
// via Bresenham line drawing (spec.md §4.7 shg-only pipeline).
package segment

import (
	"github.com/fibrenet/pyfibre-go/model"
)

// Rasterize draws every edge of g as a Bresenham line and every node as a
// single pixel onto a rows×cols mask.
func Rasterize(g *model.Graph, rows, cols int) *Mask {
	m := NewMask(rows, cols)
	for _, id := range g.NodeIDs() {
		n := g.Node(id)
		m.set(int(n.XY.Row), int(n.XY.Col), true)
	}
	for _, eid := range g.EdgeIDs() {
		e := g.Edge(eid)
		a := g.Node(e.A).XY
		b := g.Node(e.B).XY
		bresenhamLine(m, int(a.Row), int(a.Col), int(b.Row), int(b.Col))
	}
	return m
}

// bresenhamLine draws a line from (r0,c0) to (r1,c1) onto m using the
// standard integer Bresenham algorithm.
func bresenhamLine(m *Mask, r0, c0, r1, c1 int) {
	dr := abs(r1 - r0)
	dc := -abs(c1 - c0)
	sr := sign(r1 - r0)
	sc := sign(c1 - c0)
	err := dr + dc

	r, c := r0, c0
	for {
		m.set(r, c, true)
		if r == r1 && c == c1 {
			break
		}
		e2 := 2 * err
		if e2 >= dc {
			err += dc
			r += sr
		}
		if e2 <= dr {
			err += dr
			c += sc
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
